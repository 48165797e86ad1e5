package invite

import (
	"context"
	"errors"

	"github.com/Yadav036/BeThere/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("only the event creator can invite")
)

type Service struct {
	db db.TxQuerier
}

func NewService(db db.TxQuerier) *Service {
	return &Service{db: db}
}

// Invite sends (or re-sends) an invite for an event. Only the event creator
// may invite; re-inviting a user who rejected resets the invite to pending.
func (s *Service) Invite(ctx context.Context, eventID, inviterID, inviteeID string) (Invite, error) {
	var createdBy string
	err := s.db.QueryRow(ctx, `SELECT created_by FROM events WHERE id=$1`, eventID).Scan(&createdBy)
	if errors.Is(err, pgx.ErrNoRows) {
		return Invite{}, ErrNotFound
	}
	if err != nil {
		return Invite{}, err
	}
	if createdBy != inviterID {
		return Invite{}, ErrForbidden
	}

	inv := Invite{
		EventID:       eventID,
		InvitedUserID: inviteeID,
		InvitedBy:     inviterID,
	}
	row := s.db.QueryRow(ctx, `
		INSERT INTO event_invites (id, event_id, invited_user_id, invited_by, status)
		VALUES ($1,$2,$3,$4,'pending')
		ON CONFLICT (event_id, invited_user_id) DO UPDATE SET status='pending'
		RETURNING id, status, created_at
	`, uuid.NewString(), eventID, inviteeID, inviterID)
	if err := row.Scan(&inv.ID, &inv.Status, &inv.CreatedAt); err != nil {
		return Invite{}, err
	}
	return inv, nil
}

// ListPending returns the user's open invites, newest first, with the event
// and its creator attached.
func (s *Service) ListPending(ctx context.Context, userID string) ([]PendingInvite, error) {
	rows, err := s.db.Query(ctx, `
		SELECT i.id, i.created_at,
		       e.id, e.name, e.event_time, e.location_name, e.location_lat, e.location_lng, e.share_location, e.created_by, e.created_at,
		       u.id, u.username, u.email
		FROM event_invites i
		JOIN events e ON e.id = i.event_id
		JOIN users u ON u.id = e.created_by
		WHERE i.invited_user_id = $1 AND i.status = 'pending'
		ORDER BY i.created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invites []PendingInvite
	for rows.Next() {
		var inv PendingInvite
		if err := rows.Scan(&inv.ID, &inv.CreatedAt,
			&inv.Event.ID, &inv.Event.Name, &inv.Event.EventTime, &inv.Event.LocationName,
			&inv.Event.LocationLat, &inv.Event.LocationLng, &inv.Event.ShareLocation,
			&inv.Event.CreatedBy, &inv.Event.CreatedAt,
			&inv.InvitedBy.ID, &inv.InvitedBy.Username, &inv.InvitedBy.Email); err != nil {
			return nil, err
		}
		invites = append(invites, inv)
	}
	return invites, nil
}

// Accept transitions a pending invite to accepted and joins the invitee as a
// participant. Both writes happen in one transaction so the invite can only
// be consumed once and never without the participant row.
func (s *Service) Accept(ctx context.Context, inviteID, userID string) (string, error) {
	var eventID string
	err := s.db.QueryRow(ctx, `
		SELECT event_id FROM event_invites
		WHERE id=$1 AND invited_user_id=$2 AND status='pending'
	`, inviteID, userID).Scan(&eventID)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return "", err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO event_participants (id, event_id, user_id)
		VALUES ($1,$2,$3)
		ON CONFLICT (event_id, user_id) DO NOTHING
	`, uuid.NewString(), eventID, userID); err != nil {
		_ = tx.Rollback(ctx)
		return "", err
	}

	tag, err := tx.Exec(ctx, `
		UPDATE event_invites SET status='accepted' WHERE id=$1 AND status='pending'
	`, inviteID)
	if err != nil {
		_ = tx.Rollback(ctx)
		return "", err
	}
	// a concurrent accept may have consumed the invite between the pending
	// check and this update; only the transition that flips the row wins
	if tag.RowsAffected() == 0 {
		_ = tx.Rollback(ctx)
		return "", ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return "", err
	}
	return eventID, nil
}

// Reject closes a pending invite. The invitee can be re-invited later.
func (s *Service) Reject(ctx context.Context, inviteID, userID string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE event_invites SET status='rejected'
		WHERE id=$1 AND invited_user_id=$2 AND status='pending'
	`, inviteID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
