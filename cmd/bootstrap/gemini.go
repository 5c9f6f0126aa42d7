package bootstrap

import (
	"context"

	"github.com/akshattiwarii/Peakster/internal/infra/gemini"
	"github.com/akshattiwarii/Peakster/internal/pkg/config"

	"go.uber.org/fx"
)

var GeminiModule = fx.Module("gemini",
	fx.Provide(
		NewGeminiClient,
	),
)

func NewGeminiClient(lc fx.Lifecycle, cfg config.Config) (*gemini.Client, error) {
	client, cleanup, err := gemini.New(cfg.Gemini)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	return client, nil
}
