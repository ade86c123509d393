package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
	"github.com/sbilibin2017/gw-event-checkin/internal/services"
)

//go:generate mockgen -source=events.go -destination=events_mock.go -package=handlers

// EventManager defines the interface that the event service must implement.
type EventManager interface {
	Create(ctx context.Context, hostID uuid.UUID, in models.EventInput) (*models.EventDB, error)
	List(ctx context.Context) ([]models.EventDB, error)
	ListMine(ctx context.Context, hostID uuid.UUID) ([]models.EventDB, error)
	Get(ctx context.Context, id int64) (*models.EventDB, error)
	Update(ctx context.Context, hostID uuid.UUID, id int64, in models.EventInput) (*models.EventDB, error)
	Delete(ctx context.Context, hostID uuid.UUID, id int64) error
}

// EventRequest represents the JSON body for creating or updating an event.
// The host is always the authenticated user; a host field in the body is ignored.
// swagger:model EventRequest
type EventRequest struct {
	// Event name
	// required: true
	// default: Launch party
	Name string `json:"name"`

	// Event location
	// required: true
	// default: Hall A
	Location string `json:"location"`

	// Start time in RFC 3339; alternatively date and time
	StartTime *time.Time `json:"start_time"`

	// Start date, YYYY-MM-DD, used when start_time is absent
	Date string `json:"date"`

	// Start time of day, HH:MM[:SS], used when start_time is absent
	Time string `json:"time"`

	// Free text description
	Description string `json:"description"`

	// Cover image URL
	CoverImage string `json:"cover_image"`
}

func (req EventRequest) input() (models.EventInput, error) {
	in := models.EventInput{
		Name:        req.Name,
		Location:    req.Location,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	}

	switch {
	case req.StartTime != nil:
		in.StartTime = req.StartTime.UTC()
	case req.Date != "":
		clock := strings.TrimSpace(req.Time)
		if clock == "" {
			clock = "00:00:00"
		}
		if len(clock) == len("15:04") {
			clock += ":00"
		}
		start, err := time.Parse(time.DateOnly+" "+time.TimeOnly, strings.TrimSpace(req.Date)+" "+clock)
		if err != nil {
			return in, services.ErrInvalidInput
		}
		in.StartTime = start
	}
	return in, nil
}

// NewCreateEventHandler returns an HTTP handler creating an event hosted by the caller.
// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Param eventRequest body handlers.EventRequest true "Event"
// @Success 201 {object} models.EventResponse "Created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /events/ [post]
// @Security BearerAuth
func NewCreateEventHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		var req EventRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		in, err := req.input()
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid input: date/time failed on format")
			return
		}

		event, err := svc.Create(r.Context(), claims.UserID, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.NewEventResponse(event))
	}
}

// NewListEventsHandler returns an HTTP handler listing all events.
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} models.EventResponse "Events"
// @Router /events/ [get]
func NewListEventsHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		events, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewEventResponses(events))
	}
}

// NewListMyEventsHandler returns an HTTP handler listing the caller's events.
// @Summary List my events
// @Tags events
// @Produce json
// @Success 200 {array} models.EventResponse "Events hosted by the caller"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /events/my_events/ [get]
// @Security BearerAuth
func NewListMyEventsHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		events, err := svc.ListMine(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewEventResponses(events))
	}
}

// NewGetEventHandler returns an HTTP handler for a single event.
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path int true "Event id"
// @Success 200 {object} models.EventResponse "Event"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /events/{id}/ [get]
func NewGetEventHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		event, err := svc.Get(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewEventResponse(event))
	}
}

// NewUpdateEventHandler returns an HTTP handler updating an event of the caller.
// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path int true "Event id"
// @Param eventRequest body handlers.EventRequest true "Event"
// @Success 200 {object} models.EventResponse "Updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 403 {object} handlers.ErrorResponse "Not the host"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /events/{id}/ [put]
// @Security BearerAuth
func NewUpdateEventHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		var req EventRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		in, err := req.input()
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid input: date/time failed on format")
			return
		}

		event, err := svc.Update(r.Context(), claims.UserID, id, in)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewEventResponse(event))
	}
}

// NewDeleteEventHandler returns an HTTP handler deleting an event of the caller and its guests.
// @Summary Delete an event
// @Tags events
// @Param id path int true "Event id"
// @Success 204 "Deleted"
// @Failure 403 {object} handlers.ErrorResponse "Not the host"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /events/{id}/ [delete]
// @Security BearerAuth
func NewDeleteEventHandler(svc EventManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}
		id, ok := int64Param(w, r, "id")
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, id); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
