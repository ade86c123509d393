package services

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

//go:generate mockgen -source=event.go -destination=event_mock.go -package=services

// EventReader defines read-only operations for events.
type EventReader interface {
	GetByID(ctx context.Context, id int64) (*models.EventDB, error)
	List(ctx context.Context) ([]models.EventDB, error)
	ListByHost(ctx context.Context, hostID uuid.UUID) ([]models.EventDB, error)
}

// EventWriter defines write operations for events.
type EventWriter interface {
	Save(ctx context.Context, hostID uuid.UUID, in models.EventInput) (*models.EventDB, error)
	GetForUpdate(ctx context.Context, id int64) (*models.EventDB, error)
	Update(ctx context.Context, id int64, in models.EventInput) (*models.EventDB, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// EventService manages events on behalf of their hosts.
type EventService struct {
	reader EventReader
	writer EventWriter
}

// NewEventService creates a new EventService.
func NewEventService(reader EventReader, writer EventWriter) *EventService {
	return &EventService{reader: reader, writer: writer}
}

func validateEvent(in *models.EventInput) error {
	in.Name = strings.TrimSpace(in.Name)
	in.Location = strings.TrimSpace(in.Location)

	return checkAll(
		check("name", in.Name, "required,max=255"),
		check("location", in.Location, "required,max=255"),
		check("start_time", in.StartTime, "required"),
		check("cover_image", in.CoverImage, "max=255"),
	)
}

// Create stores a new event hosted by hostID.
func (s *EventService) Create(ctx context.Context, hostID uuid.UUID, in models.EventInput) (*models.EventDB, error) {
	if err := validateEvent(&in); err != nil {
		return nil, err
	}

	event, err := s.writer.Save(ctx, hostID, in)
	if err != nil {
		logger.Log.Errorw("failed to save event", "host_id", hostID, "error", err)
		return nil, err
	}
	return event, nil
}

// List returns every event.
func (s *EventService) List(ctx context.Context) ([]models.EventDB, error) {
	events, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list events", "error", err)
		return nil, err
	}
	return events, nil
}

// ListMine returns the events hosted by hostID.
func (s *EventService) ListMine(ctx context.Context, hostID uuid.UUID) ([]models.EventDB, error) {
	events, err := s.reader.ListByHost(ctx, hostID)
	if err != nil {
		logger.Log.Errorw("failed to list host events", "host_id", hostID, "error", err)
		return nil, err
	}
	return events, nil
}

// Get returns a single event.
func (s *EventService) Get(ctx context.Context, id int64) (*models.EventDB, error) {
	event, err := s.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get event", "event_id", id, "error", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Update replaces the editable fields of an event. Only its host may update it.
func (s *EventService) Update(ctx context.Context, hostID uuid.UUID, id int64, in models.EventInput) (*models.EventDB, error) {
	if err := validateEvent(&in); err != nil {
		return nil, err
	}

	if err := s.ownedForUpdate(ctx, hostID, id); err != nil {
		return nil, err
	}

	event, err := s.writer.Update(ctx, id, in)
	if err != nil {
		logger.Log.Errorw("failed to update event", "event_id", id, "error", err)
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	return event, nil
}

// Delete removes an event and its guests. Only its host may delete it.
func (s *EventService) Delete(ctx context.Context, hostID uuid.UUID, id int64) error {
	if err := s.ownedForUpdate(ctx, hostID, id); err != nil {
		return err
	}

	deleted, err := s.writer.Delete(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to delete event", "event_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrEventNotFound
	}
	return nil
}

func (s *EventService) ownedForUpdate(ctx context.Context, hostID uuid.UUID, id int64) error {
	event, err := s.writer.GetForUpdate(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to lock event", "event_id", id, "error", err)
		return err
	}
	if event == nil {
		return ErrEventNotFound
	}
	if event.HostID != hostID {
		logger.Log.Warnw("event change by non-host rejected", "event_id", id, "user_id", hostID)
		return ErrForbidden
	}
	return nil
}
