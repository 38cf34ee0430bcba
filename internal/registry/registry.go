// Package registry keeps the playable game modes. Games register their
// modes in init() so the platform can list and start them by ID without
// importing each one.
package registry

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
)

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Options is what the platform hands a factory when it starts a mode.
type Options struct {
	Config config.Match3Config
	Logger *log.Logger
}

// Factory creates a new instance of a mode.
type Factory func(opts Options) (core.Game, error)

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	order     []string
	mu        sync.RWMutex
)

// Register adds a mode. Panics if the ID is already taken.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}

	factories[info.ID] = f
	infos[info.ID] = info
	order = append(order, info.ID)
}

// List returns all registered modes in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, infos[id])
	}
	return result
}

// Info returns the metadata for id.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Create instantiates a mode by its ID.
func Create(id string, opts Options) (core.Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	g, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return g, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
