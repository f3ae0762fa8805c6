package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripcraft/internal/infra"
	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/utils"
)

func sampleTrip() trip_models.TripRequest {
	return trip_models.TripRequest{
		Destination: "Goa",
		CheckIn:     "2025-12-30",
		Nights:      4,
		Adults:      2,
		Children:    1,
		MinBudget:   40000,
		MaxBudget:   80000,
		Interests:   []string{trip_models.InterestRomantic, trip_models.InterestCultural},
		Description: "beach sunsets",
	}
}

func sampleHotels() infra.SearchResult {
	return infra.SearchResult{
		"properties": []any{
			map[string]any{"name": "Sea Breeze", "rate_per_night": map[string]any{"lowest": "₹4,500"}},
			map[string]any{"name": "No Rate Inn"},
			map[string]any{"name": "Numeric Rate", "rate_per_night": map[string]any{"lowest": 3200}},
		},
	}
}

func newItinerary(search *fakeSearch, gen *fakeGenerator) ItineraryServiceInterface {
	return NewItineraryService(NewBudgetAllocator(trip_models.DefaultCategoryWeights()), search, gen, zap.NewNop())
}

func TestSubmitItinerary_PassesBandAndCheckoutToSearch(t *testing.T) {
	search := &fakeSearch{hotels: sampleHotels()}
	gen := &fakeGenerator{text: "Day 1: arrive"}

	text, err := newItinerary(search, gen).SubmitItinerary(context.Background(), sampleTrip())
	require.NoError(t, err)
	assert.Equal(t, "Day 1: arrive", text)

	require.Len(t, search.hotelQueries, 1)
	q := search.hotelQueries[0]
	assert.Equal(t, "Goa", q.Query)
	assert.Equal(t, "2025-12-30", q.CheckIn)
	assert.Equal(t, "2026-01-03", q.CheckOut)
	assert.Equal(t, 2, q.Adults)
	assert.Equal(t, 1, q.Children)
	assert.Empty(t, q.PropertyToken)
	require.NotNil(t, q.PriceBand)
	// mean(0.25, 0.25) = 0.25
	assert.Equal(t, trip_models.HotelPriceBand{MinPerNight: 2500, MaxPerNight: 5000}, *q.PriceBand)
}

func TestSubmitItinerary_PromptCarriesTripAndShortlist(t *testing.T) {
	search := &fakeSearch{hotels: sampleHotels()}
	gen := &fakeGenerator{text: "plan"}

	_, err := newItinerary(search, gen).SubmitItinerary(context.Background(), sampleTrip())
	require.NoError(t, err)

	require.Equal(t, 1, gen.calls())
	prompt := gen.prompts[0]
	for _, want := range []string{
		"Destination: Goa",
		"Checkin Date: 2025-12-30",
		"Checkout Date: 2026-01-03",
		"Min. Budget for the trip: 40000",
		"Max. Budget for the trip: 80000",
		"There are 2 adults and 1 children",
		"Romantic, Cultural",
		"Hotel Name: Sea Breeze, Hotel Price: ₹4,500",
		"Hotel Name: No Rate Inn, Hotel Price: ",
		"Hotel Name: Numeric Rate, Hotel Price: 3200",
		"beach sunsets",
		"day-wise",
	} {
		assert.Contains(t, prompt, want)
	}
	assert.Empty(t, gen.attachments[0])
}

func TestSubmitItinerary_SearchFailureSkipsGeneration(t *testing.T) {
	upstream := utils.NewUpstreamError(infra.ProviderSerpAPI, 401, "Invalid API key")
	search := &fakeSearch{hotelsErr: upstream}
	gen := &fakeGenerator{text: "never"}

	_, err := newItinerary(search, gen).SubmitItinerary(context.Background(), sampleTrip())
	require.Error(t, err)

	var upstreamErr *utils.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, infra.ProviderSerpAPI, upstreamErr.Provider)
	assert.Equal(t, 0, gen.calls())
}

func TestSubmitItinerary_GenerationFailureSurfaces(t *testing.T) {
	search := &fakeSearch{hotels: sampleHotels()}
	gen := &fakeGenerator{err: utils.NewUpstreamError(infra.ProviderGemini, 429, "quota")}

	_, err := newItinerary(search, gen).SubmitItinerary(context.Background(), sampleTrip())
	var upstreamErr *utils.UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, infra.ProviderGemini, upstreamErr.Provider)
}

func TestSubmitItinerary_RejectsBeforeAnyUpstreamCall(t *testing.T) {
	cases := map[string]func(*trip_models.TripRequest){
		"unknown interest": func(tr *trip_models.TripRequest) { tr.Interests = []string{"Gambling"} },
		"zero nights":      func(tr *trip_models.TripRequest) { tr.Nights = 0 },
		"bad date":         func(tr *trip_models.TripRequest) { tr.CheckIn = "30/12/2025" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			search := &fakeSearch{hotels: sampleHotels()}
			gen := &fakeGenerator{text: "plan"}
			trip := sampleTrip()
			mutate(&trip)

			_, err := newItinerary(search, gen).SubmitItinerary(context.Background(), trip)
			require.Error(t, err)
			assert.True(t, errors.Is(err, utils.ErrInvalidInput) || errors.Is(err, utils.ErrUnknownInterest))
			assert.Empty(t, search.hotelQueries)
			assert.Equal(t, 0, gen.calls())
		})
	}
}

func TestShortlistHotels_MissingProperties(t *testing.T) {
	assert.Empty(t, ShortlistHotels(infra.SearchResult{}))
	assert.Empty(t, ShortlistHotels(infra.SearchResult{"properties": "oops"}))
	assert.NotNil(t, ShortlistHotels(nil))
}

func TestComposeItineraryPrompt_Deterministic(t *testing.T) {
	trip := sampleTrip()
	hotels := []trip_models.HotelOffer{{Name: "A", PricePerNight: "1"}}

	first := ComposeItineraryPrompt(trip, "2026-01-03", hotels)
	second := ComposeItineraryPrompt(trip, "2026-01-03", hotels)
	assert.Equal(t, first, second)
	assert.NotContains(t, first, "%!")
}

func TestSubmitItinerary_ConcurrentTripsKeepTheirOwnBands(t *testing.T) {
	search := &fakeSearch{hotels: sampleHotels()}
	gen := &fakeGenerator{text: "plan"}
	svc := newItinerary(search, gen)

	interests := []string{
		trip_models.InterestLuxury, trip_models.InterestBackpacking,
		trip_models.InterestCultural, trip_models.InterestAdventure,
	}
	weights := trip_models.DefaultCategoryWeights()

	const trips = 32
	want := make(map[string]trip_models.HotelPriceBand, trips)
	reqs := make([]trip_models.TripRequest, trips)
	for i := range reqs {
		trip := sampleTrip()
		trip.Destination = fmt.Sprintf("city-%02d", i)
		trip.MinBudget = 10000 * (i + 1)
		trip.MaxBudget = 25000 * (i + 1)
		trip.Nights = i%5 + 1
		trip.Interests = []string{interests[i%len(interests)]}
		reqs[i] = trip

		w, ok := weights.Lookup(trip.Interests[0])
		require.True(t, ok)
		want[trip.Destination] = expectedBand(w.Hotel, trip.MinBudget, trip.MaxBudget, trip.Nights)
	}

	var wg sync.WaitGroup
	errs := make([]error, trips)
	for i := range reqs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.SubmitItinerary(context.Background(), reqs[i])
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		require.NoError(t, err, "trip %d", i)
	}
	require.Len(t, search.hotelQueries, trips)
	for _, q := range search.hotelQueries {
		require.NotNil(t, q.PriceBand, q.Query)
		assert.Equal(t, want[q.Query], *q.PriceBand, q.Query)
	}
	assert.Equal(t, trips, gen.calls())
}
