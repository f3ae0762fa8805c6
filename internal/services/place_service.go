package services

import (
	"context"

	"go.uber.org/zap"

	"tripcraft/internal/infra"
	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/metrics"
	"tripcraft/pkg/workerpool"
)

type PlaceServiceInterface interface {
	LookupPlace(ctx context.Context, image []byte) (trip_models.PlaceExtraction, error)
}

type PlaceService struct {
	generator infra.Generator
	entities  infra.EntityExtractor
	pool      *workerpool.Pool
	maxPixels int64
	log       *zap.Logger
}

func NewPlaceService(generator infra.Generator, entities infra.EntityExtractor, pool *workerpool.Pool, maxPixels int64, log *zap.Logger) PlaceServiceInterface {
	return &PlaceService{
		generator: generator,
		entities:  entities,
		pool:      pool,
		maxPixels: maxPixels,
		log:       log.Named("place"),
	}
}

// LookupPlace describes the photo with the generator and names the first
// place mentioned in the description. Decoding and generation run on the
// shared pool and stop when ctx is done.
func (s *PlaceService) LookupPlace(ctx context.Context, image []byte) (trip_models.PlaceExtraction, error) {
	return workerpool.Run(ctx, s.pool, func(ctx context.Context) (trip_models.PlaceExtraction, error) {
		metrics.PlaceLookupsInFlight.Inc()
		defer metrics.PlaceLookupsInFlight.Dec()

		attachment, err := NormalizeImage(image, s.maxPixels)
		if err != nil {
			return trip_models.PlaceExtraction{}, err
		}

		text, err := s.generator.Generate(ctx, PlaceInstruction, attachment)
		if err != nil {
			s.log.Warn("image description failed", zap.String("provider", s.generator.Provider()), zap.Error(err))
			return trip_models.PlaceExtraction{}, err
		}

		ents, err := s.entities.Extract(text)
		if err != nil {
			return trip_models.PlaceExtraction{}, err
		}

		return trip_models.PlaceExtraction{RawText: text, Location: FirstPlace(ents)}, nil
	})
}

// FirstPlace returns the first GPE or LOC entity, or LocationNotFound.
func FirstPlace(ents []infra.Entity) string {
	for _, e := range ents {
		if e.Label == infra.LabelGPE || e.Label == infra.LabelLocation {
			return e.Text
		}
	}
	return trip_models.LocationNotFound
}
