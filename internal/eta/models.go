package eta

import (
	"time"

	"github.com/Yadav036/BeThere/internal/auth"
)

// Estimate is the per-participant ETA toward the event destination. The
// pointer fields stay nil when the provider had no usable answer for that
// participant.
type Estimate struct {
	User           auth.UserSummary `json:"user"`
	ETASeconds     *int64           `json:"eta_seconds"`
	DistanceMeters *int64           `json:"distance_meters"`
	Late           bool             `json:"late"`
}

// LeaveEstimate adds the recommended departure time to an estimate.
type LeaveEstimate struct {
	User       auth.UserSummary `json:"user"`
	ETASeconds *int64           `json:"eta_seconds"`
	LeaveAt    *time.Time       `json:"leave_at"`
}

// LeavePlan is the when-to-leave response for a whole event.
type LeavePlan struct {
	Results   []LeaveEstimate `json:"results"`
	EventTime time.Time       `json:"event_time"`
	BufferSec int64           `json:"buffer_sec"`
}
