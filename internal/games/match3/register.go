package match3

import (
	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

func init() {
	for _, preset := range config.Presets() {
		p := preset
		registry.Register(registry.GameInfo{
			ID:          p.GameID(),
			Title:       "Match 3 (" + p.Title() + ")",
			Description: p.Description(),
		}, func(opts registry.Options) (core.Game, error) {
			return New(opts.Config, p, WithLogger(opts.Logger))
		})
	}
}
