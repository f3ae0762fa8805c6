package search_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripcraft/internal/config"
	"tripcraft/internal/infra"
	"tripcraft/internal/services"
)

var Module = fx.Provide(
	provideSearchProvider, provideFlightService, provideHotelService)

func provideSearchProvider(cfg config.Config, log *zap.Logger) services.SearchProvider {
	return infra.NewSerpAPIClient(cfg.Search, cfg.Upstream, log)
}

func provideFlightService(search services.SearchProvider, log *zap.Logger) services.FlightServiceInterface {
	return services.NewFlightService(search, log)
}

func provideHotelService(search services.SearchProvider, log *zap.Logger) services.HotelServiceInterface {
	return services.NewHotelService(search, log)
}
