package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

const eventSelect = `
	SELECT e.id, e.host_id, u.username AS host_username, e.name, e.location,
	       e.start_time, e.description, e.cover_image
	FROM events e
	JOIN users u ON u.id = e.host_id
`

// EventReadRepository handles event reads
type EventReadRepository struct {
	db *sqlx.DB
}

func NewEventReadRepository(db *sqlx.DB) *EventReadRepository {
	return &EventReadRepository{db: db}
}

// GetByID returns the event or nil when it does not exist.
func (r *EventReadRepository) GetByID(ctx context.Context, id int64) (*models.EventDB, error) {
	query := eventSelect + `WHERE e.id = $1`

	var event models.EventDB
	err := r.db.GetContext(ctx, &event, query, id)
	logQuery(query, []any{id}, event.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// List returns every event ordered by start time.
func (r *EventReadRepository) List(ctx context.Context) ([]models.EventDB, error) {
	query := eventSelect + `ORDER BY e.start_time, e.id`

	events := []models.EventDB{}
	err := r.db.SelectContext(ctx, &events, query)
	logQuery(query, nil, len(events), err)

	return events, err
}

// ListByHost returns the events hosted by hostID.
func (r *EventReadRepository) ListByHost(ctx context.Context, hostID uuid.UUID) ([]models.EventDB, error) {
	query := eventSelect + `WHERE e.host_id = $1 ORDER BY e.start_time, e.id`

	events := []models.EventDB{}
	err := r.db.SelectContext(ctx, &events, query, hostID)
	logQuery(query, []any{hostID}, len(events), err)

	return events, err
}

// EventWriteRepository handles event writes, joining the request transaction when present.
type EventWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewEventWriteRepository(db *sqlx.DB, txGetter TxGetter) *EventWriteRepository {
	return &EventWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts an event owned by hostID and returns the stored row.
func (r *EventWriteRepository) Save(ctx context.Context, hostID uuid.UUID, in models.EventInput) (*models.EventDB, error) {
	const query = `
		WITH inserted AS (
			INSERT INTO events (host_id, name, location, start_time, description, cover_image)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING *
		)
		SELECT i.id, i.host_id, u.username AS host_username, i.name, i.location,
		       i.start_time, i.description, i.cover_image
		FROM inserted i
		JOIN users u ON u.id = i.host_id
	`
	args := []any{hostID, in.Name, in.Location, in.StartTime, in.Description, in.CoverImage}

	var event models.EventDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &event, query, args...)
	logQuery(query, args, event.EventID, err)

	if err != nil {
		return nil, err
	}
	return &event, nil
}

// GetForUpdate reads and row-locks an event inside the request transaction.
func (r *EventWriteRepository) GetForUpdate(ctx context.Context, id int64) (*models.EventDB, error) {
	query := eventSelect + `WHERE e.id = $1 FOR UPDATE OF e`

	var event models.EventDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &event, query, id)
	logQuery(query, []any{id}, event.Name, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update overwrites the client editable fields. The host is never changed.
func (r *EventWriteRepository) Update(ctx context.Context, id int64, in models.EventInput) (*models.EventDB, error) {
	const query = `
		WITH updated AS (
			UPDATE events
			SET name = $2, location = $3, start_time = $4, description = $5, cover_image = $6
			WHERE id = $1
			RETURNING *
		)
		SELECT d.id, d.host_id, u.username AS host_username, d.name, d.location,
		       d.start_time, d.description, d.cover_image
		FROM updated d
		JOIN users u ON u.id = d.host_id
	`
	args := []any{id, in.Name, in.Location, in.StartTime, in.Description, in.CoverImage}

	var event models.EventDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &event, query, args...)
	logQuery(query, args, event.EventID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Delete removes an event together with its guests.
func (r *EventWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	const query = `DELETE FROM events WHERE id = $1`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	return rowsAffected > 0, err
}
