package places_fx

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tourguide/internal/config"
	"tourguide/internal/services"
	"tourguide/pkg/utils"
)

var Module = fx.Provide(
	providePlacesClient, providePlacesService)

func providePlacesClient(cfg *config.Config, logger zerolog.Logger) utils.PlacesClientInterface {
	logger.Info().Str("base_url", cfg.Places.BaseURL).Dur("timeout", cfg.Places.Timeout).Msg("Initializing Google Places client")
	return utils.NewGooglePlacesClient(cfg.Places.APIKey, cfg.Places.BaseURL, cfg.Places.Timeout)
}

func providePlacesService(places utils.PlacesClientInterface) services.PlacesServiceInterface {
	return services.NewPlacesService(places)
}
