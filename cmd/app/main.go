package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"tourguide/cmd/fx/config_fx"
	"tourguide/cmd/fx/controllers_fx"
	"tourguide/cmd/fx/history_fx"
	"tourguide/cmd/fx/logger_fx"
	"tourguide/cmd/fx/places_fx"
	"tourguide/internal/api/controllers"
	"tourguide/internal/config"
	"tourguide/pkg/middleware"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		places_fx.Module,
		history_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, cfg *config.Config, engine *gin.Engine, logger zerolog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info().Str("addr", srv.Addr).Msg("Starting HTTP server")
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error().Err(err).Msg("HTTP server stopped unexpectedly")
					_ = shutdowner.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	logger zerolog.Logger,
	homeController *controllers.HomeController,
	placesController *controllers.PlacesController,
	historyController *controllers.HistoryController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, homeController, placesController, historyController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	homeController *controllers.HomeController,
	placesController *controllers.PlacesController,
	historyController *controllers.HistoryController) {

	r.GET("/", homeController.Root)
	r.POST("/tourist-locations/", placesController.GetNearbyTouristLocations)
	r.POST("/place-details/", historyController.GetPlaceHistory)
}
