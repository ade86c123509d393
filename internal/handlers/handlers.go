package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-event-checkin/internal/jwt"
	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
	"github.com/sbilibin2017/gw-event-checkin/internal/services"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse carries a plain status message
// swagger:model MessageResponse
type MessageResponse struct {
	// Status message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps service errors to HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, "A user with that username already exists.")
	case errors.Is(err, services.ErrInvalidCode):
		writeError(w, http.StatusNotFound, "Invalid QR code")
	case errors.Is(err, services.ErrEventNotFound),
		errors.Is(err, services.ErrGuestNotFound),
		errors.Is(err, services.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "You do not have permission to perform this action.")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "No active account found with the given credentials")
	case errors.Is(err, services.ErrInvalidRefreshToken):
		writeError(w, http.StatusUnauthorized, "Token is invalid or expired")
	case errors.Is(err, services.ErrTicketDelivery):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		logger.Log.Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// claimsOrUnauthorized returns the claims stored by the auth middleware.
func claimsOrUnauthorized(w http.ResponseWriter, r *http.Request) (*jwt.Claims, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Authentication credentials were not provided")
		return nil, false
	}
	return claims, true
}

// int64Param parses a numeric URL parameter. Anything else is reported as not found.
func int64Param(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found.")
		return 0, false
	}
	return id, true
}
