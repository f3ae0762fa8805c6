package trip_models

// Interest tags understood by the budget allocator.
const (
	InterestLuxury      = "Luxury"
	InterestAdventure   = "Adventure"
	InterestBackpacking = "Backpacking"
	InterestSpiritual   = "Spiritual"
	InterestBusiness    = "Business"
	InterestRomantic    = "Romantic"
	InterestCultural    = "Cultural"
)

// DefaultHotelWeight is the hotel share of the budget when no interest is selected.
const DefaultHotelWeight = 0.25

// CategoryWeight is the nominal share of the trip budget per spending category.
type CategoryWeight struct {
	Hotel      float64
	Transport  float64
	Food       float64
	Activities float64
	Misc       float64
}

func (w CategoryWeight) Sum() float64 {
	return w.Hotel + w.Transport + w.Food + w.Activities + w.Misc
}

// CategoryWeights is read-only after construction; lookups never mutate it.
type CategoryWeights struct {
	byInterest map[string]CategoryWeight
	order      []string
}

func NewCategoryWeights(rows map[string]CategoryWeight, order []string) CategoryWeights {
	copied := make(map[string]CategoryWeight, len(rows))
	for k, v := range rows {
		copied[k] = v
	}
	return CategoryWeights{byInterest: copied, order: append([]string(nil), order...)}
}

func (c CategoryWeights) Lookup(interest string) (CategoryWeight, bool) {
	w, ok := c.byInterest[interest]
	return w, ok
}

// Interests lists the known tags in display order.
func (c CategoryWeights) Interests() []string {
	return append([]string(nil), c.order...)
}

// DefaultCategoryWeights returns the production table. Several rows do not
// sum to 1.0 (Luxury sums to 1.90); the values are kept as published because
// only the Hotel column feeds the price band.
func DefaultCategoryWeights() CategoryWeights {
	return NewCategoryWeights(map[string]CategoryWeight{
		InterestLuxury:      {Hotel: 0.45, Transport: 0.25, Food: 0.20, Activities: 0.5, Misc: 0.5},
		InterestAdventure:   {Hotel: 0.30, Transport: 0.30, Food: 0.15, Activities: 0.20, Misc: 0.5},
		InterestBackpacking: {Hotel: 0.20, Transport: 0.40, Food: 0.15, Activities: 0.20, Misc: 0.5},
		InterestSpiritual:   {Hotel: 0.30, Transport: 0.30, Food: 0.15, Activities: 0.20, Misc: 0.5},
		InterestBusiness:    {Hotel: 0.30, Transport: 0.30, Food: 0.20, Activities: 0.15, Misc: 0.5},
		InterestRomantic:    {Hotel: 0.25, Transport: 0.25, Food: 0.20, Activities: 0.25, Misc: 0.5},
		InterestCultural:    {Hotel: 0.25, Transport: 0.20, Food: 0.20, Activities: 0.20, Misc: 0.15},
	}, []string{
		InterestLuxury, InterestAdventure, InterestBackpacking, InterestSpiritual,
		InterestBusiness, InterestRomantic, InterestCultural,
	})
}
