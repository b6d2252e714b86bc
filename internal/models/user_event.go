package models

// User event types published to Kafka.
const (
	UserRegistered = "user.registered"
	UserUpdated    = "user.updated"
	UserDeleted    = "user.deleted"
)

// UserEvent is a user lifecycle event published to Kafka.
type UserEvent struct {
	EventID   string `json:"event_id"`  // Unique event ID
	Type      string `json:"type"`      // One of user.registered, user.updated, user.deleted
	UserID    int64  `json:"user_id"`   // Affected user ID
	Username  string `json:"username"`  // Username at event time
	Email     string `json:"email"`     // E-mail at event time
	Timestamp int64  `json:"timestamp"` // Unix seconds
}
