package trip_models

// TripRequest is one itinerary submission, already validated and typed.
type TripRequest struct {
	Destination string
	CheckIn     string
	Nights      int
	Adults      int
	Children    int
	MinBudget   int
	MaxBudget   int
	Interests   []string
	Description string
}

// Party size and stay length limits. Request binding tags repeat these values.
const (
	MaxAdults   = 30
	MaxChildren = 20
	MaxNights   = 90
)

type HotelPriceBand struct {
	MinPerNight int
	MaxPerNight int
}

// HotelOffer is the slice of a hotel search result handed to the itinerary prompt.
type HotelOffer struct {
	Name          string `json:"Hotel Name"`
	PricePerNight string `json:"Hotel Price"`
}

// LocationNotFound is reported when the generated text names no place.
const LocationNotFound = "Location not found"

type PlaceExtraction struct {
	RawText  string
	Location string
}

type FlightQuery struct {
	DepartureID  string
	ArrivalID    string
	OutboundDate string
}

type HotelQuery struct {
	Query         string
	CheckIn       string
	CheckOut      string
	Adults        int
	Children      int
	PriceBand     *HotelPriceBand
	PropertyToken string
}

type UserProfile struct {
	Name  string
	Email string
}
