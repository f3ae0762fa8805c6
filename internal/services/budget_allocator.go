package services

import (
	"fmt"

	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/utils"
)

type BudgetAllocatorInterface interface {
	Allocate(minBudget, maxBudget, nights int, interests []string) (trip_models.HotelPriceBand, error)
}

type BudgetAllocator struct {
	weights trip_models.CategoryWeights
}

func NewBudgetAllocator(weights trip_models.CategoryWeights) BudgetAllocatorInterface {
	return &BudgetAllocator{weights: weights}
}

// Allocate turns a whole-trip budget into a nightly hotel price band using the
// mean hotel weight of the selected interests.
func (b *BudgetAllocator) Allocate(minBudget, maxBudget, nights int, interests []string) (trip_models.HotelPriceBand, error) {
	if nights < 1 || nights > trip_models.MaxNights {
		return trip_models.HotelPriceBand{}, utils.InvalidInputf("nights must be between 1 and %d, got %d", trip_models.MaxNights, nights)
	}

	weight, err := b.HotelWeight(interests)
	if err != nil {
		return trip_models.HotelPriceBand{}, err
	}

	return trip_models.HotelPriceBand{
		MinPerNight: perNight(weight, minBudget, nights),
		MaxPerNight: perNight(weight, maxBudget, nights),
	}, nil
}

// HotelWeight is the arithmetic mean of the hotel weights of interests, or
// DefaultHotelWeight when none are given.
func (b *BudgetAllocator) HotelWeight(interests []string) (float64, error) {
	if len(interests) == 0 {
		return trip_models.DefaultHotelWeight, nil
	}

	var sum float64
	for _, tag := range interests {
		w, ok := b.weights.Lookup(tag)
		if !ok {
			return 0, fmt.Errorf("%w: %q", utils.ErrUnknownInterest, tag)
		}
		sum += w.Hotel
	}
	return sum / float64(len(interests)), nil
}

func perNight(weight float64, budget, nights int) int {
	return int(weight*float64(budget)) / nights
}
