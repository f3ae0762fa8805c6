package controllers_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripcraft/internal/api/controllers"
	"tripcraft/internal/config"
	"tripcraft/internal/services"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAuthController),
	fx.Provide(controllers.NewFlightController),
	fx.Provide(controllers.NewHotelController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(providePlaceController),
	fx.Provide(controllers.NewSystemController))

func providePlaceController(placeService services.PlaceServiceInterface, cfg config.Config, log *zap.Logger) *controllers.PlaceController {
	return controllers.NewPlaceController(placeService, cfg.Server.MaxUploadBytes, log)
}
