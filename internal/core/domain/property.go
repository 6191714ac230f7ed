package domain

// Furnishing is the categorical furnishing level of a property.
type Furnishing string

const (
	FullyFurnished Furnishing = "Fully Furnished"
	SemiFurnished  Furnishing = "Semi-Furnished"
	Unfurnished    Furnishing = "Unfurnished"
)

// Valid reports whether f is one of the three known categories.
func (f Furnishing) Valid() bool {
	switch f {
	case FullyFurnished, SemiFurnished, Unfurnished:
		return true
	}
	return false
}

// Amenities holds the six boolean property features the model knows about.
type Amenities struct {
	MainRoad        bool `json:"mainroad" bson:"mainroad"`
	GuestRoom       bool `json:"guestroom" bson:"guestroom"`
	Basement        bool `json:"basement" bson:"basement"`
	HotWaterHeating bool `json:"hotwaterheating" bson:"hotwaterheating"`
	AirConditioning bool `json:"airconditioning" bson:"airconditioning"`
	PreferredArea   bool `json:"prefarea" bson:"prefarea"`
}

// PropertyInput is the full attribute set submitted for a valuation.
type PropertyInput struct {
	Country    string     `json:"country" bson:"country"`
	State      string     `json:"state" bson:"state"`
	City       string     `json:"city" bson:"city"`
	Pincode    string     `json:"pincode" bson:"pincode"`
	Area       float64    `json:"area" bson:"area"`
	Bedrooms   int        `json:"bedrooms" bson:"bedrooms"`
	Bathrooms  int        `json:"bathrooms" bson:"bathrooms"`
	Stories    int        `json:"stories" bson:"stories"`
	Parking    int        `json:"parking" bson:"parking"`
	Amenities  Amenities  `json:"amenities" bson:"amenities"`
	Furnishing Furnishing `json:"furnishing" bson:"furnishing"`
}
