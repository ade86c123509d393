package models

import (
	"time"

	"github.com/google/uuid"
)

// UserDB represents a user record in the database
type UserDB struct {
	UserID       uuid.UUID `db:"id"`            // Primary key
	Username     string    `db:"username"`      // Unique username
	FirstName    string    `db:"first_name"`    // Given name
	LastName     string    `db:"last_name"`     // Family name
	Email        string    `db:"email"`         // Contact email
	PasswordHash string    `db:"password_hash"` // bcrypt hash
	IsSuperuser  bool      `db:"is_superuser"`  // Superuser flag
	DateJoined   time.Time `db:"date_joined"`   // Join timestamp
}

// UserResponse is the wire form of a user. The password hash never leaves the service.
// swagger:model UserResponse
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	IsSuperuser bool      `json:"is_superuser"`
	DateJoined  time.Time `json:"date_joined"`
}

// NewUserResponse maps a stored user to its wire form.
func NewUserResponse(u *UserDB) UserResponse {
	return UserResponse{
		ID:          u.UserID.String(),
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		IsSuperuser: u.IsSuperuser,
		DateJoined:  u.DateJoined,
	}
}

// NewUserResponses maps a slice of stored users, never returning nil.
func NewUserResponses(users []UserDB) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, NewUserResponse(&users[i]))
	}
	return out
}

// UserInput carries the fields of a user being created.
type UserInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}
