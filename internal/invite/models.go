package invite

import (
	"time"

	"github.com/Yadav036/BeThere/internal/auth"
	"github.com/Yadav036/BeThere/internal/event"
)

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type Invite struct {
	ID            string    `json:"id"`
	EventID       string    `json:"event_id"`
	InvitedUserID string    `json:"invited_user_id"`
	InvitedBy     string    `json:"invited_by"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// PendingInvite is the invitee-facing shape: the invite plus the event it is
// for and who sent it.
type PendingInvite struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Event     event.Event      `json:"event"`
	InvitedBy auth.UserSummary `json:"invited_by"`
}

type InviteRequest struct {
	InviteeID string `json:"invitee_id"`
}
