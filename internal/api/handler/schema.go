package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// valuationRequest carries the property attributes. Both JSON bodies and
// multipart forms (when media files ride along) bind into it.
type valuationRequest struct {
	Country string `json:"country" form:"country"`
	State   string `json:"state"   form:"state"`
	City    string `json:"city"    form:"city"`
	Pincode string `json:"pincode" form:"pincode"`

	Area      float64 `json:"area"      form:"area"      validate:"required,gte=100"`
	Bedrooms  int     `json:"bedrooms"  form:"bedrooms"  validate:"required,gte=1,lte=10"`
	Bathrooms int     `json:"bathrooms" form:"bathrooms" validate:"required,gte=1,lte=10"`
	Stories   int     `json:"stories"   form:"stories"   validate:"required,gte=1,lte=10"`
	Parking   int     `json:"parking"   form:"parking"   validate:"gte=0,lte=5"`

	Mainroad        bool `json:"mainroad"        form:"mainroad"`
	Guestroom       bool `json:"guestroom"       form:"guestroom"`
	Basement        bool `json:"basement"        form:"basement"`
	HotWaterHeating bool `json:"hotwaterheating" form:"hotwaterheating"`
	AirConditioning bool `json:"airconditioning" form:"airconditioning"`
	PrefArea        bool `json:"prefarea"        form:"prefarea"`

	Furnishing string `json:"furnishing" form:"furnishing" validate:"required,oneof='Fully Furnished' 'Semi-Furnished' 'Unfurnished'"`

	// Optional device GPS override. Both must be present to take effect.
	Lat *float64 `json:"lat" form:"lat"`
	Lon *float64 `json:"lon" form:"lon"`
}

// --- Response types ---
// Transport-owned so the JSON contract is not coupled to internal changes.

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

type authResponse struct {
	Token string        `json:"token,omitempty"`
	User  *userResponse `json:"user,omitempty"`
}

type coordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type valuationResponse struct {
	PredictionID   string               `json:"prediction_id"`
	PredictedPrice float64              `json:"predicted_price"`
	BandLow        float64              `json:"band_low"`
	BandHigh       float64              `json:"band_high"`
	PricePerArea   float64              `json:"price_per_area"`
	Segment        string               `json:"segment"`
	Coordinates    *coordinatesResponse `json:"coordinates,omitempty"`
	MediaRefs      []string             `json:"media_refs,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

type propertyResponse struct {
	Country         string  `json:"country"`
	State           string  `json:"state"`
	City            string  `json:"city"`
	Pincode         string  `json:"pincode,omitempty"`
	Area            float64 `json:"area"`
	Bedrooms        int     `json:"bedrooms"`
	Bathrooms       int     `json:"bathrooms"`
	Stories         int     `json:"stories"`
	Parking         int     `json:"parking"`
	Mainroad        bool    `json:"mainroad"`
	Guestroom       bool    `json:"guestroom"`
	Basement        bool    `json:"basement"`
	HotWaterHeating bool    `json:"hotwaterheating"`
	AirConditioning bool    `json:"airconditioning"`
	PrefArea        bool    `json:"prefarea"`
	Furnishing      string  `json:"furnishing"`
}

type predictionResponse struct {
	ID             string               `json:"id"`
	Username       string               `json:"username"`
	Property       propertyResponse     `json:"property"`
	PredictedPrice float64              `json:"predicted_price"`
	PricePerArea   float64              `json:"price_per_area"`
	Segment        string               `json:"segment"`
	Coordinates    *coordinatesResponse `json:"coordinates,omitempty"`
	MediaRefs      string               `json:"media_refs,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

type listPredictionsResponse struct {
	Total int                  `json:"total"`
	Data  []predictionResponse `json:"data"`
}

type segmentCountResponse struct {
	Segment string `json:"segment"`
	Count   int    `json:"count"`
}

type cityCountResponse struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

type summaryResponse struct {
	Total           int                    `json:"total"`
	AvgPrice        float64                `json:"avg_price"`
	AvgPricePerArea float64                `json:"avg_price_per_area"`
	Segments        []segmentCountResponse `json:"segments"`
	Cities          []cityCountResponse    `json:"cities"`
}

type mapPinResponse struct {
	City           string              `json:"city"`
	State          string              `json:"state"`
	PredictedPrice float64             `json:"predicted_price"`
	Segment        string              `json:"segment"`
	Coordinates    coordinatesResponse `json:"coordinates"`
	CreatedAt      time.Time           `json:"created_at"`
}

type placeResponse struct {
	City        string              `json:"city"`
	State       string              `json:"state"`
	Coordinates coordinatesResponse `json:"coordinates"`
}

type countriesResponse struct {
	Countries []countryResponse `json:"countries"`
}

type countryResponse struct {
	Name   string   `json:"name"`
	Code   string   `json:"code"`
	States []string `json:"states"`
}
