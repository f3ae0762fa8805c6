// cmd/fx/prompt_fx/init.go
package prompt_fx

import (
	"context"
	"fmt"
	"math"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"tripcraft/internal/config"
	"tripcraft/internal/infra"
	"tripcraft/internal/models/trip_models"
	"tripcraft/internal/services"
	"tripcraft/pkg/workerpool"
)

var Module = fx.Provide(
	ProvideGenerator,
	ProvideEntityExtractor,
	ProvidePlacePool,
	ProvideBudgetAllocator,
	ProvideItineraryService,
	ProvidePlaceService)

// ProvideGenerator builds the text/vision client for the configured provider.
func ProvideGenerator(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (infra.Generator, error) {
	gen := cfg.Generation
	log.Info("initializing generator", zap.String("provider", gen.Provider), zap.String("model", gen.Model()))

	switch strings.ToLower(gen.Provider) {
	case config.ProviderOpenAI:
		return infra.NewOpenAIClient(gen.APIKey(), gen.Model(), gen.OpenAIBaseURL, cfg.Upstream.Timeout), nil
	case config.ProviderGemini:
		client, err := infra.NewGeminiClient(context.Background(), gen.APIKey(), gen.Model(), cfg.Upstream.Timeout)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return client.Close() },
		})
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", gen.Provider)
	}
}

func ProvideEntityExtractor() infra.EntityExtractor {
	return infra.NewProseExtractor()
}

func ProvidePlacePool(cfg config.Config, log *zap.Logger) *workerpool.Pool {
	pool := workerpool.New(cfg.Workers.PlaceLookup)
	log.Info("place lookup pool ready", zap.Int("workers", pool.Size()))
	return pool
}

func ProvideBudgetAllocator(log *zap.Logger) services.BudgetAllocatorInterface {
	weights := trip_models.DefaultCategoryWeights()
	for _, tag := range weights.Interests() {
		w, _ := weights.Lookup(tag)
		if sum := w.Sum(); math.Abs(sum-1) > 1e-9 {
			log.Debug("category weights do not sum to 1", zap.String("interest", tag), zap.Float64("sum", sum))
		}
	}
	return services.NewBudgetAllocator(weights)
}

func ProvideItineraryService(
	allocator services.BudgetAllocatorInterface,
	search services.SearchProvider,
	generator infra.Generator,
	log *zap.Logger,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(allocator, search, generator, log)
}

func ProvidePlaceService(
	generator infra.Generator,
	entities infra.EntityExtractor,
	pool *workerpool.Pool,
	cfg config.Config,
	log *zap.Logger,
) services.PlaceServiceInterface {
	return services.NewPlaceService(generator, entities, pool, cfg.Server.MaxImagePixels, log)
}
