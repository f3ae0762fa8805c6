package request_models

import (
	"tripcraft/internal/models/trip_models"
	"tripcraft/pkg/utils"
)

type FlightSearchParams struct {
	Departure string `json:"departure" binding:"required"`
	Arrival   string `json:"arrival" binding:"required"`
	Date      string `json:"date" binding:"required"`
}

type GetFlightsRequest struct {
	Params FlightSearchParams `json:"params"`
}

type SearchHotelsRequest struct {
	Destination  string  `json:"destination" binding:"required"`
	CheckinDate  string  `json:"checkinDate" binding:"required"`
	CheckoutDate string  `json:"checkoutDate" binding:"required"`
	Adults       FlexInt `json:"adults" binding:"min=1,max=30"`
	Children     FlexInt `json:"children" binding:"min=0,max=20"`
}

func (r SearchHotelsRequest) ToHotelQuery() trip_models.HotelQuery {
	return trip_models.HotelQuery{
		Query:    r.Destination,
		CheckIn:  r.CheckinDate,
		CheckOut: r.CheckoutDate,
		Adults:   r.Adults.Int(),
		Children: r.Children.Int(),
	}
}

type HotelStayPayload struct {
	CheckinDate  string  `json:"checkinDate" binding:"required"`
	CheckoutDate string  `json:"checkoutDate" binding:"required"`
	Adults       FlexInt `json:"adults" binding:"min=1,max=30"`
	Children     FlexInt `json:"children" binding:"min=0,max=20"`
}

type HotelInformationRequest struct {
	Payload       HotelStayPayload `json:"payload"`
	PropertyToken string           `json:"property_token" binding:"required"`
	Name          string           `json:"name" binding:"required"`
}

func (r HotelInformationRequest) ToHotelQuery() trip_models.HotelQuery {
	return trip_models.HotelQuery{
		Query:         r.Name,
		CheckIn:       r.Payload.CheckinDate,
		CheckOut:      r.Payload.CheckoutDate,
		Adults:        r.Payload.Adults.Int(),
		Children:      r.Payload.Children.Int(),
		PropertyToken: r.PropertyToken,
	}
}

type ItineraryParams struct {
	Destination string   `json:"destination" binding:"required"`
	Date        string   `json:"date" binding:"required"`
	Days        FlexInt  `json:"days" binding:"min=1,max=90"`
	Adults      FlexInt  `json:"adults" binding:"min=1,max=30"`
	Children    FlexInt  `json:"children" binding:"min=0,max=20"`
	MinBudget   *FlexInt `json:"minBudget" binding:"required,min=0"`
	MaxBudget   *FlexInt `json:"maxBudget" binding:"required,min=0"`
	Interests   []string `json:"interests"`
	Description string   `json:"description"`
}

type SubmitItineraryRequest struct {
	Params ItineraryParams `json:"params"`
}

// ToTripRequest applies the cross-field checks binding tags cannot express.
func (r SubmitItineraryRequest) ToTripRequest() (trip_models.TripRequest, error) {
	p := r.Params
	if _, err := utils.ParseDate(p.Date); err != nil {
		return trip_models.TripRequest{}, err
	}
	minBudget, maxBudget := IntOrZero(p.MinBudget), IntOrZero(p.MaxBudget)
	if maxBudget < minBudget {
		return trip_models.TripRequest{}, utils.InvalidInputf("maxBudget %d is below minBudget %d", maxBudget, minBudget)
	}

	return trip_models.TripRequest{
		Destination: p.Destination,
		CheckIn:     p.Date,
		Nights:      p.Days.Int(),
		Adults:      p.Adults.Int(),
		Children:    p.Children.Int(),
		MinBudget:   minBudget,
		MaxBudget:   maxBudget,
		Interests:   append([]string(nil), p.Interests...),
		Description: p.Description,
	}, nil
}
