package models

import (
	"time"

	"github.com/google/uuid"
)

// EventDB represents an event record joined with its host username.
type EventDB struct {
	EventID      int64     `db:"id"`
	HostID       uuid.UUID `db:"host_id"`
	HostUsername string    `db:"host_username"`
	Name         string    `db:"name"`
	Location     string    `db:"location"`
	StartTime    time.Time `db:"start_time"`
	Description  string    `db:"description"`
	CoverImage   string    `db:"cover_image"`
}

// EventInput holds the client supplied, host independent event fields.
type EventInput struct {
	Name        string
	Location    string
	StartTime   time.Time
	Description string
	CoverImage  string
}

// EventResponse is the wire form of an event.
// swagger:model EventResponse
type EventResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	HostUsername string    `json:"host_username"`
	Date         string    `json:"date"` // YYYY-MM-DD part of start_time
	Time         string    `json:"time"` // HH:MM:SS part of start_time
	StartTime    time.Time `json:"start_time"`
	Description  string    `json:"description"`
	CoverImage   string    `json:"cover_image"`
}

// NewEventResponse maps a stored event to its wire form.
func NewEventResponse(e *EventDB) EventResponse {
	return EventResponse{
		ID:           e.EventID,
		Name:         e.Name,
		Location:     e.Location,
		HostUsername: e.HostUsername,
		Date:         e.StartTime.Format(time.DateOnly),
		Time:         e.StartTime.Format(time.TimeOnly),
		StartTime:    e.StartTime,
		Description:  e.Description,
		CoverImage:   e.CoverImage,
	}
}

// NewEventResponses maps a slice of stored events, never returning nil.
func NewEventResponses(events []EventDB) []EventResponse {
	out := make([]EventResponse, 0, len(events))
	for i := range events {
		out = append(out, NewEventResponse(&events[i]))
	}
	return out
}
