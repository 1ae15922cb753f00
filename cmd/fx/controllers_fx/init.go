package controllers_fx

import (
	"go.uber.org/fx"

	"tourguide/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewHomeController),
	fx.Provide(controllers.NewPlacesController),
	fx.Provide(controllers.NewHistoryController))
