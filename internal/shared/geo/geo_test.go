package geo

import (
	"testing"
	"time"
)

func TestHaversineKm(t *testing.T) {
	// Bengaluru (12.9716, 77.5946) to Mysuru (12.2958, 76.6394) ~ 125-130 km
	d := HaversineKm(12.9716, 77.5946, 12.2958, 76.6394)
	if d < 110 || d > 150 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestPlanarDistanceM(t *testing.T) {
	// 0.001 degrees of latitude is roughly 111 meters.
	d := PlanarDistanceM(12.9716, 77.5946, 12.9726, 77.5946)
	if d < 100 || d > 120 {
		t.Fatalf("unexpected distance: %v", d)
	}

	if PlanarDistanceM(12.9716, 77.5946, 12.9716, 77.5946) != 0 {
		t.Fatalf("expected zero distance for identical points")
	}
}

func TestIsMovingDisplacement(t *testing.T) {
	now := time.Date(2025, 1, 1, 17, 20, 0, 0, time.UTC)

	prev := &Sample{Lat: 12.9716, Lng: 77.5946, At: now.Add(-80 * time.Second)}
	last := &Sample{Lat: 12.9726, Lng: 77.5946, At: now.Add(-10 * time.Second)}

	if !IsMoving(last, prev, now) {
		t.Fatalf("expected moving for ~111m displacement with fresh sample")
	}
}

func TestIsMovingStationary(t *testing.T) {
	now := time.Date(2025, 1, 1, 17, 20, 0, 0, time.UTC)

	prev := &Sample{Lat: 12.9716, Lng: 77.5946, At: now.Add(-80 * time.Second)}
	last := &Sample{Lat: 12.9716, Lng: 77.5946, At: now.Add(-5 * time.Second)}

	if IsMoving(last, prev, now) {
		t.Fatalf("expected stationary for identical coordinates")
	}
}

func TestIsMovingStaleSample(t *testing.T) {
	now := time.Date(2025, 1, 1, 17, 20, 0, 0, time.UTC)

	prev := &Sample{Lat: 12.9716, Lng: 77.5946, At: now.Add(-10 * time.Minute)}
	last := &Sample{Lat: 12.9816, Lng: 77.6046, At: now.Add(-5 * time.Minute)}

	if IsMoving(last, prev, now) {
		t.Fatalf("expected stationary when latest sample is outside recency window")
	}
}

func TestIsMovingMissingSamples(t *testing.T) {
	now := time.Now()
	s := &Sample{Lat: 1, Lng: 1, At: now}

	if IsMoving(nil, s, now) || IsMoving(s, nil, now) || IsMoving(nil, nil, now) {
		t.Fatalf("expected stationary when a sample is missing")
	}
}
