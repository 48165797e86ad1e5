package event

import (
	"context"

	"github.com/Yadav036/BeThere/internal/db"

	"github.com/google/uuid"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// CreateEvent stores a new event and joins its creator as the first
// participant.
func (s *Service) CreateEvent(ctx context.Context, creatorID string, req CreateEventRequest) (Event, error) {
	shareLocation := true
	if req.ShareLocation != nil {
		shareLocation = *req.ShareLocation
	}

	ev := Event{
		ID:            uuid.NewString(),
		Name:          req.Name,
		EventTime:     req.EventTime,
		LocationName:  req.LocationName,
		LocationLat:   req.LocationLat,
		LocationLng:   req.LocationLng,
		ShareLocation: shareLocation,
		CreatedBy:     creatorID,
	}

	row := s.db.QueryRow(ctx, `
		INSERT INTO events (id, name, event_time, location_name, location_lat, location_lng, share_location, created_by)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
		RETURNING created_at
	`, ev.ID, ev.Name, ev.EventTime, ev.LocationName, ev.LocationLat, ev.LocationLng, ev.ShareLocation, ev.CreatedBy)
	if err := row.Scan(&ev.CreatedAt); err != nil {
		return Event{}, err
	}

	if _, err := s.Join(ctx, ev.ID, creatorID); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// ListEvents returns the events the user participates in, newest first.
func (s *Service) ListEvents(ctx context.Context, userID string) ([]Event, error) {
	rows, err := s.db.Query(ctx, `
		SELECT e.id, e.name, e.event_time, e.location_name, e.location_lat, e.location_lng, e.share_location, e.created_by, e.created_at
		FROM events e
		JOIN event_participants p ON p.event_id = e.id
		WHERE p.user_id = $1
		ORDER BY e.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.ID, &ev.Name, &ev.EventTime, &ev.LocationName, &ev.LocationLat, &ev.LocationLng, &ev.ShareLocation, &ev.CreatedBy, &ev.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func (s *Service) GetEvent(ctx context.Context, id string) (Event, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, event_time, location_name, location_lat, location_lng, share_location, created_by, created_at
		FROM events WHERE id=$1
	`, id)
	var ev Event
	if err := row.Scan(&ev.ID, &ev.Name, &ev.EventTime, &ev.LocationName, &ev.LocationLat, &ev.LocationLng, &ev.ShareLocation, &ev.CreatedBy, &ev.CreatedAt); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// Join adds the user as a participant. Joining twice is a no-op that returns
// the existing row; the (event_id, user_id) pair stays unique.
func (s *Service) Join(ctx context.Context, eventID, userID string) (Participant, error) {
	p := Participant{EventID: eventID}
	p.User.ID = userID
	row := s.db.QueryRow(ctx, `
		INSERT INTO event_participants (id, event_id, user_id)
		VALUES ($1,$2,$3)
		ON CONFLICT (event_id, user_id) DO UPDATE SET user_id = EXCLUDED.user_id
		RETURNING id, joined_at
	`, uuid.NewString(), eventID, userID)
	if err := row.Scan(&p.ID, &p.JoinedAt); err != nil {
		return Participant{}, err
	}
	return p, nil
}

// Participants lists everyone on the event with their last known coordinate.
func (s *Service) Participants(ctx context.Context, eventID string) ([]Participant, error) {
	rows, err := s.db.Query(ctx, `
		SELECT p.id, p.event_id, u.id, u.username, u.email, p.last_lat, p.last_lng, p.last_location_at, p.joined_at
		FROM event_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.event_id = $1
		ORDER BY p.joined_at
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var participants []Participant
	for rows.Next() {
		var p Participant
		if err := rows.Scan(&p.ID, &p.EventID, &p.User.ID, &p.User.Username, &p.User.Email, &p.LastLat, &p.LastLng, &p.LastLocationAt, &p.JoinedAt); err != nil {
			return nil, err
		}
		participants = append(participants, p)
	}
	return participants, nil
}
