package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

var (
	selectorTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	selectorActive     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	selectorDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// SelectorItem is one playable mode with its best score.
type SelectorItem struct {
	registry.GameInfo
	HighScore int
}

// SelectorModel lets the player pick a difficulty.
type SelectorModel struct {
	items          []SelectorItem
	cursor         int
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	selected       *SelectorItem
	quitting       bool
	openScoreboard bool
}

// NewSelectorModel lists the registered modes. The cursor starts on the
// mode with ID initial, if present.
func NewSelectorModel(store *storage.Store, cfg core.RuntimeConfig, initial string) SelectorModel {
	games := registry.List()
	items := make([]SelectorItem, 0, len(games))
	cursor := 0
	for i, g := range games {
		item := SelectorItem{GameInfo: g}
		if store != nil {
			if best, err := store.HighScore(g.ID); err == nil {
				item.HighScore = best
			}
		}
		if g.ID == initial {
			cursor = i
		}
		items = append(items, item)
	}

	return SelectorModel{
		items:     items,
		cursor:    cursor,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m SelectorModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m SelectorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		if len(m.items) > 0 {
			item := m.items[m.cursor]
			m.selected = &item
			return m, tea.Quit
		}
	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the selector.
func (m SelectorModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(selectorTitleStyle.Render("M A T C H  3"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("%-18s %s", item.Title, item.Description)
		if item.HighScore > 0 {
			line += fmt.Sprintf("  best %d", item.HighScore)
		}
		if i == m.cursor {
			b.WriteString(centerText(selectorActive.Render("> "+line), m.width))
		} else {
			b.WriteString(centerText("  "+line, m.width))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(selectorDimStyle.Render("Enter: Play  |  Tab: Scores  |  Q: Quit"), m.width))
	return b.String()
}

// Selected returns the chosen mode, or nil if none.
func (m SelectorModel) Selected() *SelectorItem {
	return m.selected
}

// IsQuitting returns true if the player wants to quit.
func (m SelectorModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if the player asked for the scoreboard.
func (m SelectorModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the runtime config, updated by resizes.
func (m SelectorModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring its printed width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// SelectorResult holds the outcome of running the selector.
type SelectorResult struct {
	GameID          string
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunSelector runs the difficulty selector.
func RunSelector(store *storage.Store, cfg core.RuntimeConfig, initial string) (SelectorResult, error) {
	p := tea.NewProgram(
		NewSelectorModel(store, cfg, initial),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return SelectorResult{Config: cfg}, err
	}

	m, ok := finalModel.(SelectorModel)
	if !ok {
		return SelectorResult{Config: cfg, Quit: true}, nil
	}

	result := SelectorResult{Config: m.Config()}
	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.Selected() != nil:
		result.GameID = m.Selected().ID
	default:
		result.Quit = true
	}
	return result, nil
}
