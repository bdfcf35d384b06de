// Package queue defines the auth event payloads exchanged over the
// message broker and the background consumer that records them.
package queue

// Event types published on the auth.events queue.
const (
	EventUserRegistered = "user.registered"
	EventUserConfirmed  = "user.confirmed"
	EventPasswordReset  = "password.reset"
)

// AuthEvent is published after a successful auth state transition. It
// carries enough for downstream consumers to log or trigger analytics
// without querying the primary database.
type AuthEvent struct {
	Type       string `json:"type"`
	UserID     string `json:"user_id"`
	Email      string `json:"email"`
	OccurredAt string `json:"occurred_at"`
}
