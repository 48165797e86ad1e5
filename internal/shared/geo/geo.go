package geo

import (
	"math"
	"time"
)

const (
	// metersPerDegreeLat approximates one degree of latitude.
	metersPerDegreeLat = 111000.0

	// movementThresholdM is the minimum displacement between two samples
	// before a participant counts as moving.
	movementThresholdM = 50.0

	// recencyWindow is how fresh the latest sample must be for the movement
	// test to apply at all.
	recencyWindow = 2 * time.Minute
)

// Sample is a single reported coordinate with its report time.
type Sample struct {
	Lat float64
	Lng float64
	At  time.Time
}

// HaversineKm returns the great-circle distance between two points in kilometers.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * earthRadiusKm * math.Asin(math.Sqrt(a))
}

// PlanarDistanceM approximates the distance in meters between two nearby points
// on a flat projection: one degree of latitude is ~111km and longitude shrinks
// by cos(latitude). Good enough at city scale, where movement detection runs.
func PlanarDistanceM(lat1, lng1, lat2, lng2 float64) float64 {
	latM := (lat2 - lat1) * metersPerDegreeLat
	lngM := (lng2 - lng1) * metersPerDegreeLat * math.Cos(lat1*math.Pi/180)
	return math.Sqrt(latM*latM + lngM*lngM)
}

// IsMoving reports whether a participant is currently travelling, judged from
// the two most recent samples. Stale data never counts as movement: if the
// latest sample is older than the recency window the participant is stationary
// regardless of displacement. Otherwise the participant is moving when the two
// samples are more than 50m apart.
func IsMoving(last, prev *Sample, now time.Time) bool {
	if last == nil || prev == nil {
		return false
	}
	if now.Sub(last.At) > recencyWindow {
		return false
	}
	return PlanarDistanceM(prev.Lat, prev.Lng, last.Lat, last.Lng) > movementThresholdM
}
