package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=handlers

// Authenticator defines the interface that the auth service must implement.
type Authenticator interface {
	Register(ctx context.Context, in models.UserInput) (*models.UserDB, error)
	Login(ctx context.Context, username, password string) (*models.TokenPair, error)
	Refresh(ctx context.Context, refresh string) (string, error)
	Logout(ctx context.Context, refresh string) error
}

// LoginRequest represents the JSON body for login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// RefreshRequest carries a refresh token
// swagger:model RefreshRequest
type RefreshRequest struct {
	// Refresh token
	// required: true
	Refresh string `json:"refresh"`
}

// AccessResponse carries a new access token
// swagger:model AccessResponse
type AccessResponse struct {
	// Access token
	Access string `json:"access"`
}

// NewSignupHandler returns an HTTP handler for user self-registration.
// @Summary Register a new user
// @Description Creates a new user account with a unique username. Password is hashed before storing.
// @Tags auth
// @Accept json
// @Produce json
// @Param userRequest body handlers.UserRequest true "User registration request"
// @Success 201 {object} models.UserResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username already exists / invalid request"
// @Router /auth/users/ [post]
func NewSignupHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Register(r.Context(), req.input())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.NewUserResponse(user))
	}
}

// NewLoginHandler returns an HTTP handler that authenticates a user.
// @Summary Login a user
// @Description Authenticates a user and returns an access and refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "User login request"
// @Success 200 {object} models.TokenPair "Successful login"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /auth/jwt/create/ [post]
func NewLoginHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		pair, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pair)
	}
}

// NewRefreshHandler returns an HTTP handler exchanging a refresh token for an access token.
// @Summary Refresh an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh token"
// @Success 200 {object} handlers.AccessResponse "New access token"
// @Failure 401 {object} handlers.ErrorResponse "Token is invalid or expired"
// @Router /auth/jwt/refresh/ [post]
func NewRefreshHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		access, err := svc.Refresh(r.Context(), req.Refresh)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, AccessResponse{Access: access})
	}
}

// NewLogoutHandler returns an HTTP handler revoking a refresh token.
// @Summary Logout
// @Tags auth
// @Accept json
// @Param refreshRequest body handlers.RefreshRequest true "Refresh token"
// @Success 205 "Refresh token revoked"
// @Failure 401 {object} handlers.ErrorResponse "Token is invalid or expired"
// @Router /auth/logout/ [post]
func NewLogoutHandler(svc Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RefreshRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		if err := svc.Logout(r.Context(), req.Refresh); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusResetContent)
	}
}
