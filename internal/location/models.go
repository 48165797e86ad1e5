package location

import (
	"time"

	"github.com/Yadav036/BeThere/internal/auth"
)

type ReportRequest struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Update is what gets persisted and broadcast for one location report.
type Update struct {
	ParticipantID string    `json:"participant_id"`
	EventID       string    `json:"event_id"`
	UserID        string    `json:"user_id"`
	Lat           float64   `json:"lat"`
	Lng           float64   `json:"lng"`
	ReportedAt    time.Time `json:"reported_at"`
}

// Coordinate is one stored sample.
type Coordinate struct {
	Lat float64   `json:"lat"`
	Lng float64   `json:"lng"`
	At  time.Time `json:"at"`
}

// ParticipantLocation is the read-side shape: the two retained samples plus
// the derived travelling flag.
type ParticipantLocation struct {
	User       auth.UserSummary `json:"user"`
	Last       *Coordinate      `json:"last"`
	Prev       *Coordinate      `json:"prev"`
	Travelling bool             `json:"travelling"`
}
