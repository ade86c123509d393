package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserManager defines the interface that the user service must implement.
type UserManager interface {
	Create(ctx context.Context, in models.UserInput) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
	Get(ctx context.Context, id string) (*models.UserDB, error)
	Delete(ctx context.Context, actorID uuid.UUID, id string) error
}

// UserRequest represents the JSON body for creating a user
// swagger:model UserRequest
type UserRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username"`

	// Password, at least 8 characters
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Email
	// default: john@example.com
	Email string `json:"email"`

	// First name
	FirstName string `json:"first_name"`

	// Last name
	LastName string `json:"last_name"`
}

func (req UserRequest) input() models.UserInput {
	return models.UserInput{
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	}
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param userRequest body handlers.UserRequest true "User"
// @Success 201 {object} models.UserResponse "Created"
// @Failure 400 {object} handlers.ErrorResponse "Invalid input or username taken"
// @Router /users/ [post]
// @Security BearerAuth
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		user, err := svc.Create(r.Context(), req.input())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, models.NewUserResponse(user))
	}
}

// NewListUsersHandler returns an HTTP handler listing users, newest first.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserResponse "Users"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /users/ [get]
// @Security BearerAuth
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserResponses(users))
	}
}

// NewGetUserHandler returns an HTTP handler for a single user.
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UserResponse "User"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{id}/ [get]
// @Security BearerAuth
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, models.NewUserResponse(user))
	}
}

// NewDeleteUserHandler returns an HTTP handler deleting a user, their events and those events' guests.
// @Summary Delete a user
// @Tags users
// @Param id path string true "User id"
// @Success 204 "Deleted"
// @Failure 403 {object} handlers.ErrorResponse "Forbidden"
// @Failure 404 {object} handlers.ErrorResponse "Not found"
// @Router /users/{id}/ [delete]
// @Security BearerAuth
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsOrUnauthorized(w, r)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), claims.UserID, chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
