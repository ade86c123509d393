package models

// Guest lifecycle notification types published to the message broker.
const (
	GuestRegistered = "guest.registered"
	GuestUpdated    = "guest.updated"
	GuestCheckedIn  = "guest.checked_in"
)

// GuestEvent is a guest lifecycle notification, keyed by guest id.
type GuestEvent struct {
	ID         string `json:"id"`          // Unique id of this notification
	Type       string `json:"type"`        // GuestRegistered, GuestUpdated or GuestCheckedIn
	GuestID    string `json:"guest_id"`    // Guest the notification is about
	EventID    int64  `json:"event_id"`    // Event the guest belongs to
	Email      string `json:"email"`       // Guest email
	OccurredAt int64  `json:"occurred_at"` // Unix seconds
}
