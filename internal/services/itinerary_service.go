package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"tripcraft/internal/infra"
	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/utils"
)

type ItineraryServiceInterface interface {
	SubmitItinerary(ctx context.Context, trip trip_models.TripRequest) (string, error)
}

type ItineraryService struct {
	allocator BudgetAllocatorInterface
	search    SearchProvider
	generator infra.Generator
	log       *zap.Logger
}

func NewItineraryService(allocator BudgetAllocatorInterface, search SearchProvider, generator infra.Generator, log *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		allocator: allocator,
		search:    search,
		generator: generator,
		log:       log.Named("itinerary"),
	}
}

// SubmitItinerary budgets the stay, shortlists hotels inside the nightly band
// and asks the generator for a day-wise plan. The text is returned as is.
func (s *ItineraryService) SubmitItinerary(ctx context.Context, trip trip_models.TripRequest) (string, error) {
	band, err := s.allocator.Allocate(trip.MinBudget, trip.MaxBudget, trip.Nights, trip.Interests)
	if err != nil {
		return "", err
	}

	checkout, err := utils.AddDays(trip.CheckIn, trip.Nights)
	if err != nil {
		return "", err
	}

	s.log.Debug("hotel price band",
		zap.String("destination", trip.Destination),
		zap.Int("min_per_night", band.MinPerNight),
		zap.Int("max_per_night", band.MaxPerNight),
	)

	results, err := s.search.SearchHotels(ctx, trip_models.HotelQuery{
		Query:     trip.Destination,
		CheckIn:   trip.CheckIn,
		CheckOut:  checkout,
		Adults:    trip.Adults,
		Children:  trip.Children,
		PriceBand: &band,
	})
	if err != nil {
		s.log.Warn("hotel shortlist search failed", zap.Error(err))
		return "", err
	}

	prompt := ComposeItineraryPrompt(trip, checkout, ShortlistHotels(results))

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.log.Warn("itinerary generation failed", zap.String("provider", s.generator.Provider()), zap.Error(err))
		return "", err
	}
	return text, nil
}

// ShortlistHotels projects a hotel search result to name and lowest nightly
// rate. Properties without a rate keep an empty price.
func ShortlistHotels(results infra.SearchResult) []trip_models.HotelOffer {
	props, _ := results["properties"].([]any)
	offers := make([]trip_models.HotelOffer, 0, len(props))
	for _, p := range props {
		prop, ok := p.(map[string]any)
		if !ok {
			continue
		}
		name, _ := prop["name"].(string)
		offers = append(offers, trip_models.HotelOffer{
			Name:          name,
			PricePerNight: lowestRate(prop["rate_per_night"]),
		})
	}
	return offers
}

func lowestRate(rate any) string {
	m, ok := rate.(map[string]any)
	if !ok {
		return ""
	}
	switch v := m["lowest"].(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}
