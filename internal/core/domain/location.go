package domain

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lon float64 `json:"lon" bson:"lon"`
}

// Place is a resolved location. City and State may be empty when the hit
// came from the free-text geocoder rather than a postal-code lookup.
type Place struct {
	City        string      `json:"city"`
	State       string      `json:"state"`
	Coordinates Coordinates `json:"coordinates"`
}

// countryCodes maps the supported country names to their two-letter codes
// used by postal-code lookups.
var countryCodes = map[string]string{
	"India":     "IN",
	"USA":       "US",
	"UK":        "GB",
	"Canada":    "CA",
	"UAE":       "AE",
	"Australia": "AU",
}

// CountryCode returns the two-letter code for a supported country name,
// defaulting to "IN" for anything unrecognised.
func CountryCode(country string) string {
	if cc, ok := countryCodes[country]; ok {
		return cc
	}
	return "IN"
}

// Countries returns the supported country names in a fixed order.
func Countries() []string {
	return []string{"India", "USA", "UK", "Canada", "UAE", "Australia"}
}

// CountryStates lists the selectable states or provinces per country.
var CountryStates = map[string][]string{
	"India": {"Andhra Pradesh", "Arunachal Pradesh", "Assam", "Bihar", "Chhattisgarh",
		"Goa", "Gujarat", "Haryana", "Himachal Pradesh", "Jharkhand", "Karnataka",
		"Kerala", "Madhya Pradesh", "Maharashtra", "Manipur", "Meghalaya", "Mizoram",
		"Nagaland", "Odisha", "Punjab", "Rajasthan", "Sikkim", "Tamil Nadu", "Telangana",
		"Tripura", "Uttar Pradesh", "Uttarakhand", "West Bengal", "Delhi", "Chandigarh", "Puducherry"},
	"USA": {"Alabama", "Alaska", "Arizona", "Arkansas", "California", "Colorado", "Connecticut",
		"Delaware", "Florida", "Georgia", "Hawaii", "Idaho", "Illinois", "Indiana", "Iowa",
		"Kansas", "Kentucky", "Louisiana", "Maine", "Maryland", "Massachusetts", "Michigan",
		"Minnesota", "Mississippi", "Missouri", "Montana", "Nebraska", "Nevada",
		"New Hampshire", "New Jersey", "New Mexico", "New York", "North Carolina",
		"North Dakota", "Ohio", "Oklahoma", "Oregon", "Pennsylvania", "Rhode Island",
		"South Carolina", "South Dakota", "Tennessee", "Texas", "Utah", "Vermont",
		"Virginia", "Washington", "West Virginia", "Wisconsin", "Wyoming"},
	"UK": {"England", "Scotland", "Wales", "Northern Ireland", "London", "South East",
		"South West", "East of England", "East Midlands", "West Midlands",
		"Yorkshire", "North West", "North East"},
	"Canada": {"Alberta", "British Columbia", "Manitoba", "New Brunswick",
		"Newfoundland and Labrador", "Nova Scotia", "Ontario",
		"Prince Edward Island", "Quebec", "Saskatchewan",
		"Northwest Territories", "Nunavut", "Yukon"},
	"UAE": {"Abu Dhabi", "Dubai", "Sharjah", "Ajman", "Umm Al Quwain", "Ras Al Khaimah", "Fujairah"},
	"Australia": {"New South Wales", "Victoria", "Queensland", "South Australia",
		"Western Australia", "Tasmania", "Australian Capital Territory", "Northern Territory"},
}
