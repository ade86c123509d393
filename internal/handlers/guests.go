package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
	"github.com/sbilibin2017/gw-event-checkin/internal/services"
	"github.com/sbilibin2017/gw-event-checkin/internal/tickets"
)

//go:generate mockgen -source=guests.go -destination=guests_mock.go -package=handlers

// GuestManager defines the interface that the guest service must implement.
type GuestManager interface {
	Register(ctx context.Context, eventID int64, name, email string, rsvp models.RSVPStatus) (*models.GuestDB, error)
	ListByEvent(ctx context.Context, eventID int64) ([]models.GuestDB, error)
	Get(ctx context.Context, id string) (*models.GuestDB, error)
	Update(ctx context.Context, id string, name, email string, rsvp models.RSVPStatus) (*models.GuestDB, error)
	Delete(ctx context.Context, id string) error
	CheckIn(ctx context.Context, guestID string, eventID int64, email string) (*models.CheckInResult, error)
	CheckInWithToken(ctx context.Context, code string) (*models.CheckInResult, error)
}

// Check-in response messages.
const (
	MsgCheckInSuccessful = "Check-in successful"
	MsgAlreadyCheckedIn  = "Guest already checked in"
	MsgMissingData       = "Missing data"
	MsgInvalidQRCode     = "Invalid QR code"
)

// GuestRequest represents the JSON body for guest registration
// swagger:model GuestRequest
type GuestRequest struct {
	// Event id
	// required: true
	// default: 1
	Event int64 `json:"event"`

	// Guest name
	// required: true
	// default: Ana
	Name string `json:"name"`

	// Guest email
	// required: true
	// default: ana@example.com
	Email string `json:"email"`

	// RSVP status, one of Y, N, M
	// required: true
	// default: Y
	RSVPStatus models.RSVPStatus `json:"rsvp_status"`
}

// GuestUpdateRequest represents the JSON body for changing a guest.
// PUT requires every field; PATCH keeps the stored value of omitted ones.
// swagger:model GuestUpdateRequest
type GuestUpdateRequest struct {
	// Guest name
	Name *string `json:"name"`

	// Guest email
	Email *string `json:"email"`

	// RSVP status, one of Y, N, M
	RSVPStatus *models.RSVPStatus `json:"rsvp_status"`
}

// TicketDeliveryErrorResponse is returned when the guest was stored but the ticket email failed
// swagger:model TicketDeliveryErrorResponse
type TicketDeliveryErrorResponse struct {
	// Error message
	Error string `json:"error"`
	// The stored guest
	Guest models.GuestResponse `json:"guest"`
}

// CheckInRequest represents the JSON body for check-in.
// Either token, qr_data or the guest_id, event_id and email triple is used.
// swagger:model CheckInRequest
type CheckInRequest struct {
	// Guest id from the QR payload
	GuestID string `json:"guest_id"`

	// Event id from the QR payload, a number or a numeric string
	EventID json.RawMessage `json:"event_id" swaggertype:"integer"`

	// Guest email from the QR payload
	Email string `json:"email"`

	// Signed check-in code from the ticket email
	Token string `json:"token"`

	// Raw scanned QR text
	QRData string `json:"qr_data"`
}

// CheckInResponse represents a successful check-in
// swagger:model CheckInResponse
type CheckInResponse struct {
	// Check-in successful or Guest already checked in
	Message string `json:"message"`
	// The checked in guest
	Guest models.GuestResponse `json:"guest"`
}

// NewRegisterGuestHandler returns an HTTP handler for guest registration.
// @Summary Register a guest
// @Description Stores a guest for an event and emails them a QR code ticket.
// @Tags guests
// @Accept json
// @Produce json
// @Param guestRequest body handlers.GuestRequest true "Guest registration request"
// @Success 201 {object} models.GuestResponse "Guest registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 502 {object} handlers.TicketDeliveryErrorResponse "Guest stored, ticket email failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /guests/ [post]
func NewRegisterGuestHandler(svc GuestManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GuestRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		guest, err := svc.Register(r.Context(), req.Event, req.Name, req.Email, req.RSVPStatus)
		if err != nil {
			if errors.Is(err, services.ErrTicketDelivery) && guest != nil {
				writeJSON(w, http.StatusBadGateway, TicketDeliveryErrorResponse{
					Error: err.Error(),
					Guest: models.NewGuestResponse(guest),
				})
				return
			}
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.NewGuestResponse(guest))
	}
}

// NewListGuestsByEventHandler returns an HTTP handler listing the guests of an event.
// @Summary List guests of an event
// @Tags guests
// @Produce json
// @Param event_id path int true "Event id"
// @Success 200 {array} models.GuestResponse "Guests"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /guests/by-event/{event_id}/ [get]
func NewListGuestsByEventHandler(svc GuestManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eventID, ok := int64Param(w, r, "event_id")
		if !ok {
			return
		}

		guests, err := svc.ListByEvent(r.Context(), eventID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.NewGuestResponses(guests))
	}
}

// NewGetGuestHandler returns an HTTP handler for a single guest.
// @Summary Get a guest
// @Tags guests
// @Produce json
// @Param id path string true "Guest id"
// @Success 200 {object} models.GuestResponse "Guest"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /guests/{id}/ [get]
func NewGetGuestHandler(svc GuestManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		guest, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewGuestResponse(guest))
	}
}

// NewUpdateGuestHandler returns an HTTP handler replacing a guest's name, email and RSVP status.
// @Summary Update a guest
// @Description The check-in time and event cannot be changed.
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest id"
// @Param guestUpdateRequest body handlers.GuestUpdateRequest true "Guest"
// @Success 200 {object} models.GuestResponse "Updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /guests/{id}/ [put]
func NewUpdateGuestHandler(svc GuestManager) http.HandlerFunc {
	return updateGuest(svc, false)
}

// NewPatchGuestHandler returns an HTTP handler changing only the given guest fields,
// typically the RSVP status.
// @Summary Partially update a guest
// @Tags guests
// @Accept json
// @Produce json
// @Param id path string true "Guest id"
// @Param guestUpdateRequest body handlers.GuestUpdateRequest true "Changed fields"
// @Success 200 {object} models.GuestResponse "Updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /guests/{id}/ [patch]
func NewPatchGuestHandler(svc GuestManager) http.HandlerFunc {
	return updateGuest(svc, true)
}

func updateGuest(svc GuestManager, partial bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req GuestUpdateRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		var name, email string
		var rsvp models.RSVPStatus
		if partial {
			current, err := svc.Get(r.Context(), id)
			if err != nil {
				writeServiceError(w, err)
				return
			}
			name, email, rsvp = current.Name, current.Email, current.RSVPStatus
		}
		if req.Name != nil {
			name = *req.Name
		}
		if req.Email != nil {
			email = *req.Email
		}
		if req.RSVPStatus != nil {
			rsvp = *req.RSVPStatus
		}

		guest, err := svc.Update(r.Context(), id, name, email, rsvp)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewGuestResponse(guest))
	}
}

// NewDeleteGuestHandler returns an HTTP handler removing a guest.
// @Summary Delete a guest
// @Tags guests
// @Param id path string true "Guest id"
// @Success 204 "Deleted"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /guests/{id}/ [delete]
// @Security BearerAuth
func NewDeleteGuestHandler(svc GuestManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// NewCheckInHandler returns an HTTP handler checking a guest in from a scanned QR code.
// @Summary Check a guest in
// @Description Accepts the scanned QR payload fields, the raw QR text or the signed code from the ticket email.
// @Description Repeated check-ins succeed with "Guest already checked in".
// @Tags guests
// @Accept json
// @Produce json
// @Param checkInRequest body handlers.CheckInRequest true "Scanned QR data"
// @Success 200 {object} handlers.CheckInResponse "Checked in"
// @Failure 400 {object} handlers.ErrorResponse "Missing data"
// @Failure 404 {object} handlers.ErrorResponse "Invalid QR code"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /guests/check-in/ [post]
func NewCheckInHandler(svc GuestManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CheckInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, MsgMissingData)
			return
		}

		var (
			res *models.CheckInResult
			err error
		)
		switch {
		case strings.TrimSpace(req.Token) != "":
			res, err = svc.CheckInWithToken(r.Context(), req.Token)

		case strings.TrimSpace(req.QRData) != "":
			payload, decErr := tickets.DecodePayload([]byte(req.QRData))
			if decErr != nil {
				writeError(w, http.StatusNotFound, MsgInvalidQRCode)
				return
			}
			res, err = svc.CheckIn(r.Context(), payload.GuestID, payload.EventID, payload.Email)

		default:
			rawEventID, present := eventIDText(req.EventID)
			if strings.TrimSpace(req.GuestID) == "" || !present || strings.TrimSpace(req.Email) == "" {
				writeError(w, http.StatusBadRequest, MsgMissingData)
				return
			}
			eventID, parseErr := strconv.ParseInt(rawEventID, 10, 64)
			if parseErr != nil {
				writeError(w, http.StatusNotFound, MsgInvalidQRCode)
				return
			}
			res, err = svc.CheckIn(r.Context(), req.GuestID, eventID, req.Email)
		}
		if err != nil {
			writeServiceError(w, err)
			return
		}

		msg := MsgCheckInSuccessful
		if res.AlreadyCheckedIn {
			msg = MsgAlreadyCheckedIn
		}
		writeJSON(w, http.StatusOK, CheckInResponse{
			Message: msg,
			Guest:   models.NewGuestResponse(res.Guest),
		})
	}
}

// eventIDText returns the event id as text whether it was sent as a JSON
// number or a string. Absent, null, empty and numeric zero values are
// reported as missing.
func eventIDText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", false
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		return s, s != ""
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		if f, err := n.Float64(); err == nil && f == 0 {
			return "", false
		}
		return n.String(), true
	}
	return string(raw), true
}
