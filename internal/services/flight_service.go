package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"tripcraft/internal/models/response_models"
	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/utils"
)

type FlightServiceInterface interface {
	SearchFlights(ctx context.Context, departure, arrival, date string) (response_models.FlightsResponse, error)
}

type FlightService struct {
	search SearchProvider
	log    *zap.Logger
}

func NewFlightService(search SearchProvider, log *zap.Logger) FlightServiceInterface {
	return &FlightService{search: search, log: log.Named("flights")}
}

// SearchFlights accepts airports as "<IATA> - <label>" and returns the best
// and other one-way options for the date.
func (f *FlightService) SearchFlights(ctx context.Context, departure, arrival, date string) (response_models.FlightsResponse, error) {
	from, to := IATACode(departure), IATACode(arrival)
	if from == "" || to == "" {
		return response_models.FlightsResponse{}, utils.InvalidInputf("departure and arrival airports are required")
	}
	if _, err := utils.ParseDate(date); err != nil {
		return response_models.FlightsResponse{}, err
	}

	results, err := f.search.SearchFlights(ctx, trip_models.FlightQuery{
		DepartureID:  from,
		ArrivalID:    to,
		OutboundDate: date,
	})
	if err != nil {
		f.log.Warn("flight search failed", zap.String("from", from), zap.String("to", to), zap.Error(err))
		return response_models.FlightsResponse{}, err
	}

	return response_models.FlightsResponse{
		BestFlights:  listOrEmpty(results["best_flights"]),
		OtherFlights: listOrEmpty(results["other_flights"]),
		Status:       response_models.StatusSuccess,
	}, nil
}

// IATACode returns the text before the first " - ".
func IATACode(airport string) string {
	code, _, _ := strings.Cut(airport, " - ")
	return strings.TrimSpace(code)
}

func listOrEmpty(v any) []any {
	if list, ok := v.([]any); ok {
		return list
	}
	return []any{}
}
