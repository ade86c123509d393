package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

const userColumns = `id, username, first_name, last_name, email, password_hash, is_superuser, date_joined`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByUsernameOrEmail returns the first user matching every non-nil filter, or nil.
func (r *UserReadRepository) GetByUsernameOrEmail(ctx context.Context, username, email *string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE ($1::VARCHAR IS NULL OR username = $1)
		  AND ($2::VARCHAR IS NULL OR email = $2)
		LIMIT 1
	`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username, email)
	logQuery(query, []any{username, email}, user.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user or nil when it does not exist.
func (r *UserReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, user.Username, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns all users, newest first.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY date_joined DESC`

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)
	logQuery(query, nil, len(users), err)

	return users, err
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Save inserts a new user. A taken username yields ErrDuplicate.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (id, username, first_name, last_name, email, password_hash, is_superuser, date_joined)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	args := []any{user.UserID, user.Username, user.FirstName, user.LastName, user.Email, user.PasswordHash, user.IsSuperuser, user.DateJoined}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	// the password hash stays out of the log
	logQuery(query, args[:5], rowsAffected, err)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// Delete removes a user; owned events and their guests go with it.
func (r *UserWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM users WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	return rowsAffected > 0, err
}
