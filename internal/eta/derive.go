package eta

import "time"

// BufferSeconds is the fixed safety margin added to the travel time when
// recommending a departure timestamp.
const BufferSeconds = 180

// IsLate reports whether arriving after travelSec from now misses the event:
// late iff now + travel is strictly after the scheduled time. Unknown travel
// time is optimistically not late.
func IsLate(now time.Time, travelSec *int64, eventTime time.Time) bool {
	if travelSec == nil {
		return false
	}
	return now.Add(time.Duration(*travelSec) * time.Second).After(eventTime)
}

// LeaveBy returns the latest departure time that still makes the event:
// eventTime - (travel + buffer). Unknown travel time yields nil.
func LeaveBy(eventTime time.Time, travelSec *int64) *time.Time {
	if travelSec == nil {
		return nil
	}
	leaveAt := eventTime.Add(-time.Duration(*travelSec+BufferSeconds) * time.Second)
	return &leaveAt
}
