package config_fx

import (
	"go.uber.org/fx"

	"tourguide/internal/config"
)

var Module = fx.Provide(config.Load)
