package property

import "time"

// DefaultImage is used when a listing is created without a photo.
const DefaultImage = "https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=500&h=300&fit=crop"

// FacetAll is the type-facet sentinel meaning "no type restriction".
const FacetAll = "All"

// Types is the fixed set of listing types the client UI offers. The server
// intentionally accepts any non-empty type string, so unknown types coming
// from other writers still round-trip (see DESIGN.md).
var Types = []string{"House", "Apartment", "Condo", "Townhouse", "Villa"}

// Property is a single real-estate listing. Price is stored verbatim as
// either a number or free-form text ("$250k"); the optional numeric fields
// distinguish "unknown" from zero.
type Property struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Name        string         `json:"name" bson:"name"`
	Type        string         `json:"type" bson:"type"`
	Price       Price          `json:"price" bson:"price"`
	Location    string         `json:"location" bson:"location"`
	Description string         `json:"description" bson:"description"`
	Image       string         `json:"image" bson:"image"`
	Bedrooms    OptionalInt    `json:"bedrooms,omitzero" bson:"bedrooms,omitempty"`
	Bathrooms   OptionalNumber `json:"bathrooms,omitzero" bson:"bathrooms,omitempty"`
	Area        OptionalInt    `json:"area,omitzero" bson:"area,omitempty"`
	CreatedAt   time.Time      `json:"createdAt" bson:"createdAt"`
}

// Input is the request body for create and update. The same shape is used
// for both: update replaces every editable field at once.
type Input struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Price       Price          `json:"price"`
	Location    string         `json:"location"`
	Description string         `json:"description"`
	Image       string         `json:"image"`
	Bedrooms    OptionalInt    `json:"bedrooms"`
	Bathrooms   OptionalNumber `json:"bathrooms"`
	Area        OptionalInt    `json:"area"`
}

// Valid reports whether all required fields are present and non-empty.
// Image and the optional numerics are not required.
func (in *Input) Valid() bool {
	return in.Name != "" &&
		in.Type != "" &&
		!in.Price.IsZero() &&
		in.Location != "" &&
		in.Description != ""
}
