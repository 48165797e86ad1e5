package location

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Yadav036/BeThere/internal/db"
	"github.com/Yadav036/BeThere/internal/shared/geo"
	"github.com/Yadav036/BeThere/internal/stream"

	"github.com/google/uuid"
)

type Service struct {
	db  db.Querier
	hub *stream.Hub
	now func() time.Time
}

func NewService(db db.Querier, hub *stream.Hub) *Service {
	return &Service{db: db, hub: hub, now: time.Now}
}

// Report upserts the caller's location for an event in a single statement:
// reporting before joining creates the participant row, and on update the
// previous sample shifts into the prev_* columns before being overwritten.
// Concurrent reports are last-write-wins.
func (s *Service) Report(ctx context.Context, eventID, userID string, lat, lng float64) (Update, error) {
	update := Update{
		EventID:    eventID,
		UserID:     userID,
		Lat:        lat,
		Lng:        lng,
		ReportedAt: s.now(),
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO event_participants (id, event_id, user_id, last_lat, last_lng, last_location_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (event_id, user_id) DO UPDATE SET
			prev_lat = event_participants.last_lat,
			prev_lng = event_participants.last_lng,
			prev_location_at = event_participants.last_location_at,
			last_lat = EXCLUDED.last_lat,
			last_lng = EXCLUDED.last_lng,
			last_location_at = EXCLUDED.last_location_at
		RETURNING id
	`, uuid.NewString(), eventID, userID, lat, lng, update.ReportedAt)
	if err := row.Scan(&update.ParticipantID); err != nil {
		return Update{}, err
	}

	if s.hub != nil {
		payload, _ := json.Marshal(update)
		s.hub.Broadcast(eventID, payload)
	}

	return update, nil
}

// Locations returns each participant's last two samples with the derived
// travelling flag.
func (s *Service) Locations(ctx context.Context, eventID string) ([]ParticipantLocation, error) {
	rows, err := s.db.Query(ctx, `
		SELECT u.id, u.username, u.email,
		       p.last_lat, p.last_lng, p.last_location_at,
		       p.prev_lat, p.prev_lng, p.prev_location_at
		FROM event_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.event_id = $1
		ORDER BY p.joined_at
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	now := s.now()
	var locations []ParticipantLocation
	for rows.Next() {
		var pl ParticipantLocation
		var lastLat, lastLng, prevLat, prevLng *float64
		var lastAt, prevAt *time.Time
		if err := rows.Scan(&pl.User.ID, &pl.User.Username, &pl.User.Email,
			&lastLat, &lastLng, &lastAt, &prevLat, &prevLng, &prevAt); err != nil {
			return nil, err
		}

		pl.Last = coordinate(lastLat, lastLng, lastAt)
		pl.Prev = coordinate(prevLat, prevLng, prevAt)
		pl.Travelling = geo.IsMoving(sample(pl.Last), sample(pl.Prev), now)
		locations = append(locations, pl)
	}
	return locations, nil
}

func coordinate(lat, lng *float64, at *time.Time) *Coordinate {
	if lat == nil || lng == nil || at == nil {
		return nil
	}
	return &Coordinate{Lat: *lat, Lng: *lng, At: *at}
}

func sample(c *Coordinate) *geo.Sample {
	if c == nil {
		return nil
	}
	return &geo.Sample{Lat: c.Lat, Lng: c.Lng, At: c.At}
}
