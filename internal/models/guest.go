package models

import (
	"time"

	"github.com/google/uuid"
)

// RSVPStatus is a guest's stated attendance intention.
type RSVPStatus string

const (
	RSVPYes   RSVPStatus = "Y"
	RSVPNo    RSVPStatus = "N"
	RSVPMaybe RSVPStatus = "M"
)

// Label returns the human readable form of the status.
func (s RSVPStatus) Label() string {
	switch s {
	case RSVPYes:
		return "Yes"
	case RSVPNo:
		return "No"
	case RSVPMaybe:
		return "Maybe"
	default:
		return ""
	}
}

// GuestDB represents a guest record joined with its event name.
type GuestDB struct {
	GuestID     uuid.UUID  `db:"id"`
	EventID     int64      `db:"event_id"`
	EventName   string     `db:"event_name"`
	Name        string     `db:"name"`
	Email       string     `db:"email"`
	RSVPStatus  RSVPStatus `db:"rsvp_status"`
	CheckInTime *time.Time `db:"check_in_time"` // nil until the guest is checked in
}

// CheckedIn reports whether the guest has been checked in.
func (g *GuestDB) CheckedIn() bool {
	return g.CheckInTime != nil
}

// GuestResponse is the wire form of a guest.
// swagger:model GuestResponse
type GuestResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	EventName   string     `json:"event_name"`
	Event       int64      `json:"event"`
	Email       string     `json:"email"`
	RSVPStatus  RSVPStatus `json:"rsvp_status"`
	CheckInTime *time.Time `json:"check_in_time"`
}

// NewGuestResponse maps a stored guest to its wire form.
func NewGuestResponse(g *GuestDB) GuestResponse {
	return GuestResponse{
		ID:          g.GuestID.String(),
		Name:        g.Name,
		EventName:   g.EventName,
		Event:       g.EventID,
		Email:       g.Email,
		RSVPStatus:  g.RSVPStatus,
		CheckInTime: g.CheckInTime,
	}
}

// NewGuestResponses maps a slice of stored guests, never returning nil.
func NewGuestResponses(guests []GuestDB) []GuestResponse {
	out := make([]GuestResponse, 0, len(guests))
	for i := range guests {
		out = append(out, NewGuestResponse(&guests[i]))
	}
	return out
}

// CheckInResult is the outcome of a successful check-in attempt.
// AlreadyCheckedIn distinguishes a repeated scan from the first one.
type CheckInResult struct {
	Guest            *GuestDB
	AlreadyCheckedIn bool
}
