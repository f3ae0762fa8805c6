package services

import (
	"context"

	"tripcraft/internal/infra"
	"tripcraft/internal/models/trip_models"
)

// SearchProvider is the subset of the search API the services call.
// *infra.SerpAPIClient satisfies it.
type SearchProvider interface {
	SearchFlights(ctx context.Context, q trip_models.FlightQuery) (infra.SearchResult, error)
	SearchHotels(ctx context.Context, q trip_models.HotelQuery) (infra.SearchResult, error)
	SearchImages(ctx context.Context, query string) (infra.SearchResult, error)
}

var _ SearchProvider = (*infra.SerpAPIClient)(nil)
