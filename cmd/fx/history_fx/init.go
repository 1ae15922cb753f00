package history_fx

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tourguide/internal/config"
	"tourguide/internal/services"
	"tourguide/pkg/utils"
)

var Module = fx.Provide(
	ProvideTextGenerator,
	ProvideHistoryService)

// ProvideTextGenerator creates the generation client for the configured provider
// and closes it when the application stops.
func ProvideTextGenerator(lc fx.Lifecycle, cfg *config.Config, logger zerolog.Logger) (utils.TextGeneratorInterface, error) {
	gen := cfg.Generation
	logger.Info().Str("provider", gen.Provider).Str("model", gen.Model).Msg("Initializing text generation client")

	client, err := utils.NewTextGenerator(context.Background(), gen.Provider, gen.APIKey, gen.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", gen.Provider, err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func ProvideHistoryService(generator utils.TextGeneratorInterface) services.HistoryServiceInterface {
	return services.NewHistoryService(generator)
}
