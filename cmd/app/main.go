package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"tripcraft/cmd/fx/auth_fx"
	"tripcraft/cmd/fx/config_fx"
	"tripcraft/cmd/fx/controllers_fx"
	"tripcraft/cmd/fx/memcache_fx"
	"tripcraft/cmd/fx/prompt_fx"
	"tripcraft/cmd/fx/search_fx"
	"tripcraft/internal/api/controllers"
	"tripcraft/internal/config"
	"tripcraft/pkg/logger"
	"tripcraft/pkg/middleware"
)

func main() {
	app := fx.New(
		Options(),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return logger.FxEventLogger(log)
		}),
	)

	if err := app.Err(); err != nil {
		if errors.Is(err, config.ErrMissingConfig) {
			log.Fatalf("configuration error: %v", err)
		}
		log.Fatalf("failed to build application: %v", err)
	}

	app.Run()
}

// Options is the whole application graph.
func Options() fx.Option {
	return fx.Options(
		config_fx.Module,
		memcache_fx.Module,
		search_fx.Module,
		prompt_fx.Module,
		auth_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

type Controllers struct {
	fx.In

	Auth      *controllers.AuthController
	Flight    *controllers.FlightController
	Hotel     *controllers.HotelController
	Itinerary *controllers.ItineraryController
	Place     *controllers.PlaceController
	System    *controllers.SystemController
}

func ProvideRouter(cfg config.Config, log *zap.Logger, ctrl Controllers) *gin.Engine {
	gin.SetMode(cfg.Server.GinMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log.Named("http")))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.MaxMultipartMemory = cfg.Server.MaxUploadBytes

	RegisterRoutes(r, ctrl)

	return r
}

func RegisterRoutes(r *gin.Engine, ctrl Controllers) {
	r.GET("/", ctrl.System.Root)
	r.GET("/demo", ctrl.System.Demo)
	r.GET("/health", ctrl.System.Health)
	r.GET("/metrics", ctrl.System.Metrics())

	r.GET("/login/google", ctrl.Auth.LoginGoogle)
	r.GET("/auth/google", ctrl.Auth.AuthGoogle)

	r.POST("/getFlights", ctrl.Flight.GetFlights)
	r.POST("/searchHotels", ctrl.Hotel.SearchHotels)
	r.POST("/getHotelInformation", ctrl.Hotel.GetHotelInformation)
	r.POST("/submitIternary", ctrl.Itinerary.SubmitItinerary)
	r.POST("/picture2Place", ctrl.Place.Picture2Place)
}
