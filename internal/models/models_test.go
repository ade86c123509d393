package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewEventResponse_SplitsStartTime(t *testing.T) {
	e := &EventDB{
		EventID:      7,
		HostID:       uuid.New(),
		HostUsername: "host",
		Name:         "Launch",
		Location:     "Hall A",
		StartTime:    time.Date(2026, 3, 14, 18, 30, 5, 0, time.UTC),
	}

	resp := NewEventResponse(e)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "host", resp.HostUsername)
	assert.Equal(t, "2026-03-14", resp.Date)
	assert.Equal(t, "18:30:05", resp.Time)
}

func TestNewGuestResponse(t *testing.T) {
	id := uuid.New()
	g := &GuestDB{
		GuestID:    id,
		EventID:    3,
		EventName:  "Launch",
		Name:       "Ana",
		Email:      "ana@x.com",
		RSVPStatus: RSVPYes,
	}

	resp := NewGuestResponse(g)

	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, int64(3), resp.Event)
	assert.Equal(t, "Launch", resp.EventName)
	assert.Nil(t, resp.CheckInTime)
	assert.False(t, g.CheckedIn())
}

func TestNewResponses_EmptyIsNotNil(t *testing.T) {
	assert.NotNil(t, NewGuestResponses(nil))
	assert.NotNil(t, NewEventResponses(nil))
	assert.NotNil(t, NewUserResponses(nil))
}

func TestRSVPStatus_Label(t *testing.T) {
	tests := []struct {
		status RSVPStatus
		want   string
	}{
		{RSVPYes, "Yes"},
		{RSVPNo, "No"},
		{RSVPMaybe, "Maybe"},
		{RSVPStatus("X"), ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.status.Label())
	}
}
