package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tripcraft/internal/infra"
	"tripcraft/internal/models/response_models"
	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/utils"
)

type HotelServiceInterface interface {
	SearchHotels(ctx context.Context, q trip_models.HotelQuery) (infra.SearchResult, error)
	GetHotelInformation(ctx context.Context, q trip_models.HotelQuery, name string) (response_models.HotelInformationResponse, error)
}

type HotelService struct {
	search SearchProvider
	log    *zap.Logger
}

func NewHotelService(search SearchProvider, log *zap.Logger) HotelServiceInterface {
	return &HotelService{search: search, log: log.Named("hotels")}
}

func (h *HotelService) SearchHotels(ctx context.Context, q trip_models.HotelQuery) (infra.SearchResult, error) {
	if err := validateStay(q); err != nil {
		return nil, err
	}
	q.PropertyToken = ""

	results, err := h.search.SearchHotels(ctx, q)
	if err != nil {
		h.log.Warn("hotel search failed", zap.String("query", q.Query), zap.Error(err))
		return nil, err
	}
	return results, nil
}

// GetHotelInformation fetches property details and an image search for the
// hotel name concurrently. Either failure fails the whole call.
func (h *HotelService) GetHotelInformation(ctx context.Context, q trip_models.HotelQuery, name string) (response_models.HotelInformationResponse, error) {
	if q.PropertyToken == "" {
		return response_models.HotelInformationResponse{}, utils.InvalidInputf("property_token is required")
	}
	if name == "" {
		return response_models.HotelInformationResponse{}, utils.InvalidInputf("name is required")
	}
	if err := validateStay(q); err != nil {
		return response_models.HotelInformationResponse{}, err
	}
	q.Query = name

	var (
		details infra.SearchResult
		images  []any
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		details, err = h.search.SearchHotels(gctx, q)
		return err
	})
	g.Go(func() error {
		res, err := h.search.SearchImages(gctx, name)
		if err != nil {
			return err
		}
		list, ok := res["images_results"].([]any)
		if !ok {
			return utils.NewUpstreamError(infra.ProviderSerpAPI, 0, "image search returned no images_results")
		}
		images = list
		return nil
	})
	if err := g.Wait(); err != nil {
		h.log.Warn("hotel information lookup failed", zap.String("name", name), zap.Error(err))
		return response_models.HotelInformationResponse{}, err
	}

	return response_models.HotelInformationResponse{
		HotelInformation: details,
		HotelImages:      images,
	}, nil
}

func validateStay(q trip_models.HotelQuery) error {
	checkIn, err := utils.ParseDate(q.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := utils.ParseDate(q.CheckOut)
	if err != nil {
		return err
	}
	if !checkOut.After(checkIn) {
		return utils.InvalidInputf("check-out %s must be after check-in %s", q.CheckOut, q.CheckIn)
	}
	if q.Adults < 1 || q.Adults > trip_models.MaxAdults {
		return utils.InvalidInputf("adults must be between 1 and %d", trip_models.MaxAdults)
	}
	if q.Children < 0 || q.Children > trip_models.MaxChildren {
		return utils.InvalidInputf("children must be between 0 and %d", trip_models.MaxChildren)
	}
	return nil
}
