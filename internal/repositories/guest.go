package repositories

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

const guestSelect = `
	SELECT g.id, g.event_id, e.name AS event_name, g.name, g.email,
	       g.rsvp_status, g.check_in_time
	FROM guests g
	JOIN events e ON e.id = g.event_id
`

// GuestReadRepository handles guest reads
type GuestReadRepository struct {
	db *sqlx.DB
}

func NewGuestReadRepository(db *sqlx.DB) *GuestReadRepository {
	return &GuestReadRepository{db: db}
}

// GetByID returns the guest or nil when it does not exist.
func (r *GuestReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.GuestDB, error) {
	query := guestSelect + `WHERE g.id = $1`

	var guest models.GuestDB
	err := r.db.GetContext(ctx, &guest, query, id)
	logQuery(query, []any{id}, guest.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// ListByEvent returns all guests of an event; an event without guests yields an empty slice.
func (r *GuestReadRepository) ListByEvent(ctx context.Context, eventID int64) ([]models.GuestDB, error) {
	query := guestSelect + `WHERE g.event_id = $1 ORDER BY g.name, g.id`

	guests := []models.GuestDB{}
	err := r.db.SelectContext(ctx, &guests, query, eventID)
	logQuery(query, []any{eventID}, len(guests), err)

	return guests, err
}

// FindByTriple looks a guest up by id and event, and by email when email is non-nil.
func (r *GuestReadRepository) FindByTriple(ctx context.Context, id uuid.UUID, eventID int64, email *string) (*models.GuestDB, error) {
	query := guestSelect + `
		WHERE g.id = $1
		  AND g.event_id = $2
		  AND ($3::TEXT IS NULL OR g.email = $3)
	`

	var guest models.GuestDB
	err := r.db.GetContext(ctx, &guest, query, id, eventID, email)
	logQuery(query, []any{id, eventID, email}, guest.CheckInTime, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// GuestWriteRepository handles guest writes
type GuestWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewGuestWriteRepository(db *sqlx.DB, txGetter TxGetter) *GuestWriteRepository {
	return &GuestWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a guest.
func (r *GuestWriteRepository) Save(ctx context.Context, guest *models.GuestDB) error {
	const query = `
		INSERT INTO guests (id, event_id, name, email, rsvp_status, check_in_time)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{guest.GuestID, guest.EventID, guest.Name, guest.Email, string(guest.RSVPStatus), guest.CheckInTime}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

// ClaimCheckIn sets check_in_time to at in a single conditional update that only
// matches a guest not yet checked in. It returns the updated guest, or nil when no
// row matched: either the triple is unknown or another request checked in first.
// Concurrent callers on the same guest serialize on the row lock, so at most one
// of them gets a non-nil result.
func (r *GuestWriteRepository) ClaimCheckIn(ctx context.Context, id uuid.UUID, eventID int64, email *string, at time.Time) (*models.GuestDB, error) {
	const query = `
		WITH claimed AS (
			UPDATE guests
			SET check_in_time = $4
			WHERE id = $1
			  AND event_id = $2
			  AND ($3::TEXT IS NULL OR email = $3)
			  AND check_in_time IS NULL
			RETURNING *
		)
		SELECT c.id, c.event_id, e.name AS event_name, c.name, c.email,
		       c.rsvp_status, c.check_in_time
		FROM claimed c
		JOIN events e ON e.id = c.event_id
	`
	args := []any{id, eventID, email, at}

	var guest models.GuestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &guest, query, args...)
	logQuery(query, args, guest.CheckInTime, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// Update overwrites the name, email and RSVP status of a guest and returns the
// stored row, or nil when the guest does not exist. check_in_time is never written.
func (r *GuestWriteRepository) Update(ctx context.Context, id uuid.UUID, name, email string, rsvp models.RSVPStatus) (*models.GuestDB, error) {
	const query = `
		WITH updated AS (
			UPDATE guests
			SET name = $2, email = $3, rsvp_status = $4
			WHERE id = $1
			RETURNING *
		)
		SELECT u.id, u.event_id, e.name AS event_name, u.name, u.email,
		       u.rsvp_status, u.check_in_time
		FROM updated u
		JOIN events e ON e.id = u.event_id
	`
	args := []any{id, name, email, string(rsvp)}

	var guest models.GuestDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &guest, query, args...)
	logQuery(query, args, guest.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guest, nil
}

// Delete removes a guest.
func (r *GuestWriteRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `DELETE FROM guests WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	return rowsAffected > 0, err
}
