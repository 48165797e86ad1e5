package event

import (
	"time"

	"github.com/Yadav036/BeThere/internal/auth"
)

type Event struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	EventTime     time.Time `json:"event_time"`
	LocationName  string    `json:"location_name"`
	LocationLat   float64   `json:"location_lat"`
	LocationLng   float64   `json:"location_lng"`
	ShareLocation bool      `json:"share_location"`
	CreatedBy     string    `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateEventRequest struct {
	Name          string    `json:"name"`
	EventTime     time.Time `json:"event_time"`
	LocationName  string    `json:"location_name"`
	LocationLat   float64   `json:"location_lat"`
	LocationLng   float64   `json:"location_lng"`
	ShareLocation *bool     `json:"share_location"`
}

type Participant struct {
	ID             string           `json:"id"`
	EventID        string           `json:"event_id"`
	User           auth.UserSummary `json:"user"`
	LastLat        *float64         `json:"last_lat"`
	LastLng        *float64         `json:"last_lng"`
	LastLocationAt *time.Time       `json:"last_location_at"`
	JoinedAt       time.Time        `json:"joined_at"`
}
