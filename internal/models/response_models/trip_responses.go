package response_models

const StatusSuccess = "success"

type LoginURLResponse struct {
	URL string `json:"url"`
}

type FlightsResponse struct {
	BestFlights  []any  `json:"best_flights"`
	OtherFlights []any  `json:"other_flights"`
	Status       string `json:"status"`
}

type HotelInformationResponse struct {
	HotelInformation map[string]any `json:"hotel_information"`
	HotelImages      []any          `json:"hotel_images"`
}

type ItineraryResponse struct {
	Result string `json:"result"`
}

type PlaceResponse struct {
	Result   string `json:"result"`
	Location string `json:"Location"`
}
