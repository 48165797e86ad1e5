package eta

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Yadav036/BeThere/internal/auth"
	"github.com/Yadav036/BeThere/internal/db"
	"github.com/Yadav036/BeThere/internal/places"

	"github.com/jackc/pgx/v5"
)

var ErrEventNotFound = errors.New("event not found")

// MatrixAPI is the slice of the places client the aggregator needs.
type MatrixAPI interface {
	DistanceMatrix(ctx context.Context, origins []places.LatLng, destination places.LatLng) (places.Matrix, error)
}

type Service struct {
	db     db.Querier
	matrix MatrixAPI
	now    func() time.Time
}

func NewService(db db.Querier, matrix MatrixAPI) *Service {
	return &Service{db: db, matrix: matrix, now: time.Now}
}

type origin struct {
	user  auth.UserSummary
	coord places.LatLng
}

type eventTarget struct {
	time        time.Time
	destination places.LatLng
}

// Estimates computes one ETA per coordinate-bearing participant of the event.
// All origins go to the provider in a single batched call; a provider failure
// degrades every estimate to unknown instead of failing the request.
func (s *Service) Estimates(ctx context.Context, eventID string) ([]Estimate, error) {
	target, origins, err := s.load(ctx, eventID)
	if err != nil {
		return nil, err
	}

	matrix := s.query(ctx, origins, target.destination)
	now := s.now()

	results := make([]Estimate, len(origins))
	for i, o := range origins {
		row := matrix.Rows[i]
		results[i] = Estimate{
			User:           o.user,
			ETASeconds:     row.DurationSec,
			DistanceMeters: row.DistanceM,
			Late:           IsLate(now, row.DurationSec, target.time),
		}
	}
	return results, nil
}

// WhenToLeave computes the recommended departure time per participant.
func (s *Service) WhenToLeave(ctx context.Context, eventID string) (LeavePlan, error) {
	target, origins, err := s.load(ctx, eventID)
	if err != nil {
		return LeavePlan{}, err
	}

	matrix := s.query(ctx, origins, target.destination)

	plan := LeavePlan{
		Results:   make([]LeaveEstimate, len(origins)),
		EventTime: target.time,
		BufferSec: BufferSeconds,
	}
	for i, o := range origins {
		row := matrix.Rows[i]
		plan.Results[i] = LeaveEstimate{
			User:       o.user,
			ETASeconds: row.DurationSec,
			LeaveAt:    LeaveBy(target.time, row.DurationSec),
		}
	}
	return plan, nil
}

// load fetches the event destination and the coordinate-bearing participants
// in a stable order. Participants without a full coordinate pair are filtered
// out here, before any provider traffic.
func (s *Service) load(ctx context.Context, eventID string) (eventTarget, []origin, error) {
	var target eventTarget
	err := s.db.QueryRow(ctx, `
		SELECT event_time, location_lat, location_lng FROM events WHERE id=$1
	`, eventID).Scan(&target.time, &target.destination.Lat, &target.destination.Lng)
	if errors.Is(err, pgx.ErrNoRows) {
		return eventTarget{}, nil, ErrEventNotFound
	}
	if err != nil {
		return eventTarget{}, nil, err
	}

	rows, err := s.db.Query(ctx, `
		SELECT u.id, u.username, u.email, p.last_lat, p.last_lng
		FROM event_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.event_id = $1 AND p.last_lat IS NOT NULL AND p.last_lng IS NOT NULL
		ORDER BY p.joined_at
	`, eventID)
	if err != nil {
		return eventTarget{}, nil, err
	}
	defer rows.Close()

	var origins []origin
	for rows.Next() {
		var o origin
		if err := rows.Scan(&o.user.ID, &o.user.Username, &o.user.Email, &o.coord.Lat, &o.coord.Lng); err != nil {
			return eventTarget{}, nil, err
		}
		origins = append(origins, o)
	}
	return target, origins, nil
}

// query makes the single batched provider call. The returned matrix always
// has one row per origin: when there are no origins the provider is never
// called, and when the whole call fails every row stays unknown.
func (s *Service) query(ctx context.Context, origins []origin, destination places.LatLng) places.Matrix {
	matrix := places.Matrix{Rows: make([]places.RouteEstimate, len(origins))}
	if len(origins) == 0 {
		return matrix
	}

	coords := make([]places.LatLng, len(origins))
	for i, o := range origins {
		coords[i] = o.coord
	}

	result, err := s.matrix.DistanceMatrix(ctx, coords, destination)
	if err != nil {
		log.Printf("distance matrix error: %v", err)
		return matrix
	}
	for i := range matrix.Rows {
		if i < len(result.Rows) {
			matrix.Rows[i] = result.Rows[i]
		}
	}
	return matrix
}
