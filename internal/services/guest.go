package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-event-checkin/internal/clock"
	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
	"github.com/sbilibin2017/gw-event-checkin/internal/metrics"
	"github.com/sbilibin2017/gw-event-checkin/internal/models"
	"github.com/sbilibin2017/gw-event-checkin/internal/tickets"
)

//go:generate mockgen -source=guest.go -destination=guest_mock.go -package=services

// GuestReader defines read-only operations for guests.
type GuestReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.GuestDB, error)
	ListByEvent(ctx context.Context, eventID int64) ([]models.GuestDB, error)
	FindByTriple(ctx context.Context, id uuid.UUID, eventID int64, email *string) (*models.GuestDB, error)
}

// GuestWriter defines write operations for guests.
type GuestWriter interface {
	Save(ctx context.Context, guest *models.GuestDB) error
	ClaimCheckIn(ctx context.Context, id uuid.UUID, eventID int64, email *string, at time.Time) (*models.GuestDB, error)
	Update(ctx context.Context, id uuid.UUID, name, email string, rsvp models.RSVPStatus) (*models.GuestDB, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// EventGetter looks up a single event.
type EventGetter interface {
	GetByID(ctx context.Context, id int64) (*models.EventDB, error)
}

// TicketRenderer renders the QR image of a ticket.
type TicketRenderer interface {
	Render(p tickets.QRPayload) (*tickets.Image, error)
}

// TicketSigner issues and verifies signed check-in codes.
type TicketSigner interface {
	Sign(guestID uuid.UUID, eventID int64) (string, error)
	Verify(code string) (uuid.UUID, int64, error)
}

// TicketSender delivers a rendered ticket to the guest.
type TicketSender interface {
	SendTicket(ctx context.Context, guest *models.GuestDB, image *tickets.Image, code string) error
}

// GuestEventPublisher publishes guest lifecycle notifications.
type GuestEventPublisher interface {
	Publish(ctx context.Context, evt models.GuestEvent)
}

// GuestService handles guest registration and check-in.
type GuestService struct {
	reader    GuestReader
	writer    GuestWriter
	events    EventGetter
	renderer  TicketRenderer
	signer    TicketSigner
	sender    TicketSender
	publisher GuestEventPublisher
	clock     clock.Clock
}

// NewGuestService creates a new GuestService.
func NewGuestService(
	reader GuestReader,
	writer GuestWriter,
	events EventGetter,
	renderer TicketRenderer,
	signer TicketSigner,
	sender TicketSender,
	publisher GuestEventPublisher,
	clk clock.Clock,
) *GuestService {
	if clk == nil {
		clk = clock.NewSystem()
	}
	return &GuestService{
		reader:    reader,
		writer:    writer,
		events:    events,
		renderer:  renderer,
		signer:    signer,
		sender:    sender,
		publisher: publisher,
		clock:     clk,
	}
}

// Register stores a new guest of eventID and emails the guest a QR ticket.
//
// The guest is persisted before the ticket is sent. When delivery fails the
// stored guest is returned together with an error wrapping ErrTicketDelivery;
// the record is not rolled back.
func (s *GuestService) Register(ctx context.Context, eventID int64, name, email string, rsvp models.RSVPStatus) (*models.GuestDB, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateGuest(name, email, rsvp); err != nil {
		return nil, err
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		logger.Log.Errorw("failed to get event", "event_id", eventID, "error", err)
		return nil, err
	}
	if event == nil {
		return nil, fmt.Errorf("%w: event %d does not exist", ErrInvalidInput, eventID)
	}

	guest := &models.GuestDB{
		GuestID:    uuid.New(),
		EventID:    event.EventID,
		EventName:  event.Name,
		Name:       name,
		Email:      email,
		RSVPStatus: rsvp,
	}
	if err := s.writer.Save(ctx, guest); err != nil {
		logger.Log.Errorw("failed to save guest", "event_id", eventID, "error", err)
		return nil, err
	}
	metrics.GuestsRegistered.Inc()

	if err := s.deliverTicket(ctx, guest); err != nil {
		metrics.TicketDeliveryFailures.Inc()
		logger.Log.Errorw("failed to deliver ticket", "guest_id", guest.GuestID, "error", err)
		return guest, fmt.Errorf("%w: %v", ErrTicketDelivery, err)
	}

	s.publish(ctx, models.GuestRegistered, guest)
	return guest, nil
}

func (s *GuestService) deliverTicket(ctx context.Context, guest *models.GuestDB) error {
	image, err := s.renderer.Render(tickets.NewPayload(guest))
	if err != nil {
		return err
	}

	code, err := s.signer.Sign(guest.GuestID, guest.EventID)
	if err != nil {
		return err
	}

	return s.sender.SendTicket(ctx, guest, image, code)
}

func validateGuest(name, email string, rsvp models.RSVPStatus) error {
	return checkAll(
		check("name", name, "required,max=255"),
		check("email", email, "required,email,max=254"),
		check("rsvp_status", string(rsvp), "oneof=Y N M"),
	)
}

// Update replaces the name, email and RSVP status of a guest. The event and
// the check-in time are left as they are, so a checked in guest stays checked in.
// No new ticket is sent; after an email change only the signed code keeps working.
func (s *GuestService) Update(ctx context.Context, id string, name, email string, rsvp models.RSVPStatus) (*models.GuestDB, error) {
	guestID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrGuestNotFound
	}

	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateGuest(name, email, rsvp); err != nil {
		return nil, err
	}

	guest, err := s.writer.Update(ctx, guestID, name, email, rsvp)
	if err != nil {
		logger.Log.Errorw("failed to update guest", "guest_id", id, "error", err)
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}

	s.publish(ctx, models.GuestUpdated, guest)
	return guest, nil
}

// ListByEvent returns the guests of an event, an empty slice when there are none.
func (s *GuestService) ListByEvent(ctx context.Context, eventID int64) ([]models.GuestDB, error) {
	guests, err := s.reader.ListByEvent(ctx, eventID)
	if err != nil {
		logger.Log.Errorw("failed to list guests", "event_id", eventID, "error", err)
		return nil, err
	}
	return guests, nil
}

// Get returns a single guest.
func (s *GuestService) Get(ctx context.Context, id string) (*models.GuestDB, error) {
	guestID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrGuestNotFound
	}

	guest, err := s.reader.GetByID(ctx, guestID)
	if err != nil {
		logger.Log.Errorw("failed to get guest", "guest_id", id, "error", err)
		return nil, err
	}
	if guest == nil {
		return nil, ErrGuestNotFound
	}
	return guest, nil
}

// Delete removes a guest.
func (s *GuestService) Delete(ctx context.Context, id string) error {
	guestID, err := uuid.Parse(id)
	if err != nil {
		return ErrGuestNotFound
	}

	deleted, err := s.writer.Delete(ctx, guestID)
	if err != nil {
		logger.Log.Errorw("failed to delete guest", "guest_id", id, "error", err)
		return err
	}
	if !deleted {
		return ErrGuestNotFound
	}
	return nil
}

// CheckIn marks the guest identified by the scanned guest id, event id and
// email as arrived. Scanning an already checked in guest succeeds with
// AlreadyCheckedIn set and the stored time unchanged. A triple matching no
// guest yields ErrInvalidCode.
func (s *GuestService) CheckIn(ctx context.Context, guestID string, eventID int64, email string) (*models.CheckInResult, error) {
	id, err := uuid.Parse(strings.TrimSpace(guestID))
	if err != nil {
		metrics.CheckIns.WithLabelValues(metrics.CheckInInvalid).Inc()
		return nil, ErrInvalidCode
	}
	return s.checkIn(ctx, id, eventID, &email)
}

// CheckInWithToken checks a guest in using a signed check-in code instead of
// the plaintext QR triple.
func (s *GuestService) CheckInWithToken(ctx context.Context, code string) (*models.CheckInResult, error) {
	id, eventID, err := s.signer.Verify(strings.TrimSpace(code))
	if err != nil {
		metrics.CheckIns.WithLabelValues(metrics.CheckInInvalid).Inc()
		return nil, ErrInvalidCode
	}
	return s.checkIn(ctx, id, eventID, nil)
}

func (s *GuestService) checkIn(ctx context.Context, id uuid.UUID, eventID int64, email *string) (*models.CheckInResult, error) {
	guest, err := s.writer.ClaimCheckIn(ctx, id, eventID, email, s.clock.Now())
	if err != nil {
		logger.Log.Errorw("failed to check in guest", "guest_id", id, "event_id", eventID, "error", err)
		return nil, err
	}
	if guest != nil {
		metrics.CheckIns.WithLabelValues(metrics.CheckInFirst).Inc()
		s.publish(ctx, models.GuestCheckedIn, guest)
		return &models.CheckInResult{Guest: guest}, nil
	}

	guest, err = s.reader.FindByTriple(ctx, id, eventID, email)
	if err != nil {
		logger.Log.Errorw("failed to find guest", "guest_id", id, "event_id", eventID, "error", err)
		return nil, err
	}
	if guest == nil {
		metrics.CheckIns.WithLabelValues(metrics.CheckInInvalid).Inc()
		return nil, ErrInvalidCode
	}

	metrics.CheckIns.WithLabelValues(metrics.CheckInRepeat).Inc()
	return &models.CheckInResult{Guest: guest, AlreadyCheckedIn: true}, nil
}

func (s *GuestService) publish(ctx context.Context, eventType string, guest *models.GuestDB) {
	if s.publisher == nil {
		return
	}
	s.publisher.Publish(ctx, models.GuestEvent{
		ID:         uuid.NewString(),
		Type:       eventType,
		GuestID:    guest.GuestID.String(),
		EventID:    guest.EventID,
		Email:      guest.Email,
		OccurredAt: s.clock.Now().Unix(),
	})
}
