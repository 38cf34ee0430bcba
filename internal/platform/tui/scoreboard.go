package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

const (
	minWidthForSidebar = 90  // below this the mode list becomes tabs
	sidebarWidth       = 22  // width of the mode list
	maxScores          = 100 // rows loaded per mode
)

var (
	scoreTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	scoreDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	scoreTabActive   = scoreTitleStyle.Background(lipgloss.Color("57")).Padding(0, 1)
	scoreBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextGame, k.PrevGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next difficulty"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the leaderboard of each mode.
type ScoreboardModel struct {
	games       []registry.GameInfo
	gameCursor  int
	store       *storage.Store
	scores      []storage.ScoreEntry
	stats       *storage.GameStats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a scoreboard opened on the mode with ID
// initial, or the first mode.
func NewScoreboardModel(store *storage.Store, width, height int, initial string) ScoreboardModel {
	m := ScoreboardModel{
		games:       registry.List(),
		store:       store,
		keys:        DefaultScoreboardKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	for i, g := range m.games {
		if g.ID == initial {
			m.gameCursor = i
		}
	}

	m.table = m.createTable()
	m.reload()
	return m
}

// createTable sizes the columns to the available width.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := m.width - 6
	if m.showSidebar {
		tableWidth -= sidebarWidth + 4
	}

	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Matches", Width: 8},
		{Title: "Date", Width: 12},
	}
	if extra := tableWidth - 55; extra > 0 {
		columns[1].Width += min(extra, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// reload fetches scores and stats for the current mode.
func (m *ScoreboardModel) reload() {
	m.scores, m.stats, m.loadErr = nil, nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.gameCursor].ID
		m.scores, m.loadErr = m.store.TopScores(id, maxScores)
		if m.loadErr == nil {
			m.stats, m.loadErr = m.store.GetGameStats(id)
		}
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		player := s.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			player,
			fmt.Sprintf("%d", s.Score),
			fmt.Sprintf("%d", s.Matches),
			s.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.step(1)
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// step moves to the next or previous mode, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.gameCursor = (m.gameCursor + delta + len(m.games)) % len(m.games)
	m.reload()
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.gameCursor].Title
	}
	b.WriteString(centerText(scoreTitleStyle.Render(title), m.width))
	b.WriteString("\n\n")

	body := scoreBorderStyle.Render(m.renderTableContent())
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", body)
	} else {
		b.WriteString(centerText(m.renderTabs(), m.width))
		b.WriteString("\n\n")
	}
	b.WriteString(body)
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString(scoreDimStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString(scoreDimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Difficulty\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")

	for i, g := range m.games {
		if i == m.gameCursor {
			sb.WriteString(scoreTitleStyle.Render("> " + g.Title))
		} else {
			sb.WriteString("  " + g.Title)
		}
		sb.WriteString("\n")
	}

	return scoreBorderStyle.Width(sidebarWidth).Render(sb.String())
}

func (m ScoreboardModel) renderTabs() string {
	tabs := make([]string, len(m.games))
	for i, g := range m.games {
		if i == m.gameCursor {
			tabs[i] = scoreTabActive.Render(g.Title)
		} else {
			tabs[i] = scoreDimStyle.Render(" " + g.Title + " ")
		}
	}

	line := strings.Join(tabs, " ")
	if lipgloss.Width(line) > m.width-4 && len(m.games) > 0 {
		line = fmt.Sprintf("< %s >", m.games[m.gameCursor].Title)
	}
	return line
}

func (m ScoreboardModel) renderTableContent() string {
	if m.loadErr != nil {
		return scoreDimStyle.Italic(true).Padding(2, 4).Render("Could not load scores:\n" + m.loadErr.Error())
	}
	if len(m.scores) == 0 {
		return scoreDimStyle.Italic(true).Padding(2, 4).Render("No scores recorded yet.\nPlay a game to set a high score!")
	}
	return m.table.View()
}

func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return fmt.Sprintf("Games: %d  |  Best: %d  |  Average: %.0f  |  Last played: %s",
		m.stats.GamesCount, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02 15:04"))
}

// IsGoingBack returns true if the player wants the selector again.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the player wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if the player wants to go back, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, initial string) (goBack bool, err error) {
	p := tea.NewProgram(
		NewScoreboardModel(store, width, height, initial),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
