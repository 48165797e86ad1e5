package places

// LatLng is a WGS84 coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Prediction is one autocomplete suggestion.
type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// Place is a resolved place with its coordinate.
type Place struct {
	Name     string  `json:"name"`
	Location *LatLng `json:"location"`
}

// RouteEstimate is the driving estimate from one origin to the destination.
// Both fields are nil when the provider had no usable answer for that origin.
type RouteEstimate struct {
	DurationSec *int64 `json:"duration_sec"`
	DistanceM   *int64 `json:"distance_m"`
}

// Matrix is the decoded distance-matrix response. Rows is always the same
// length and order as the origins that were sent.
type Matrix struct {
	Rows []RouteEstimate `json:"rows"`
}
