package services

import (
	"fmt"
	"strings"

	"tripcraft/internal/models/trip_models"
)

// PlaceInstruction is sent alongside an uploaded photo.
const PlaceInstruction = "Can you identify and describe the location of this image?"

const itineraryPromptTemplate = `Consider yourself as an automated travel itinerary planner which helps in planning travels for a user. Give just the itinerary in the response.
I have few details for your references to generate the itinerary.
Destination: %s
Checkin Date: %s
Checkout Date: %s
Min. Budget for the trip: %d
Max. Budget for the trip: %d
There are %d adults and %d children who would be travelling.
You can plan itinerary based on list of user-interests as follows: [%s]. Make sure to use this interests to plan the itinerary.
Below is the list of hotels fetched according to the user's budget:
%s
There is also some additional description for the trip as follows:
%s
You can use these hotels to plan the stay.
Give me a complete day-wise splitted travel itinerary.`

// ComposeItineraryPrompt renders the planning prompt. The output depends only
// on its arguments.
func ComposeItineraryPrompt(trip trip_models.TripRequest, checkout string, hotels []trip_models.HotelOffer) string {
	var list strings.Builder
	for _, h := range hotels {
		fmt.Fprintf(&list, "- Hotel Name: %s, Hotel Price: %s\n", h.Name, h.PricePerNight)
	}

	return fmt.Sprintf(itineraryPromptTemplate,
		trip.Destination,
		trip.CheckIn,
		checkout,
		trip.MinBudget,
		trip.MaxBudget,
		trip.Adults,
		trip.Children,
		strings.Join(trip.Interests, ", "),
		strings.TrimRight(list.String(), "\n"),
		trip.Description,
	)
}
