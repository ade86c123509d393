package services

import (
	"bytes"
	"context"
	"fmt"
	"text/template"

	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
	"github.com/sbilibin2017/gw-event-checkin/internal/mailer"
	"github.com/sbilibin2017/gw-event-checkin/internal/models"
	"github.com/sbilibin2017/gw-event-checkin/internal/tickets"
)

//go:generate mockgen -source=notifier.go -destination=notifier_mock.go -package=services

// MailSender delivers a composed email.
type MailSender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

var ticketBody = template.Must(template.New("ticket").Parse(
	`Hi {{.Name}},

You're registered for {{.EventName}}.
Your ticket QR code is attached. Show it at the entrance to check in.

If the code cannot be scanned, staff can enter this check-in code instead:
{{.Code}}
`))

// TicketNotifier emails guests their QR ticket.
type TicketNotifier struct {
	mailer MailSender
	from   string
}

// NewTicketNotifier creates a notifier sending from the given address.
// An empty from lets the mailer use its configured sender.
func NewTicketNotifier(mailer MailSender, from string) *TicketNotifier {
	return &TicketNotifier{mailer: mailer, from: from}
}

// SendTicket emails the ticket image and check-in code to the guest.
// Transport errors are returned unchanged.
func (n *TicketNotifier) SendTicket(ctx context.Context, guest *models.GuestDB, image *tickets.Image, code string) error {
	var body bytes.Buffer
	err := ticketBody.Execute(&body, struct {
		Name      string
		EventName string
		Code      string
	}{guest.Name, guest.EventName, code})
	if err != nil {
		return fmt.Errorf("render ticket email: %w", err)
	}

	msg := mailer.Message{
		From:    n.from,
		To:      []string{guest.Email},
		Subject: fmt.Sprintf("Your QR Code for %s", guest.EventName),
		Body:    body.String(),
	}
	if image != nil {
		msg.Attachments = []mailer.Attachment{{
			Filename:    image.Filename,
			ContentType: image.ContentType,
			Data:        image.Data,
		}}
	}

	if err := n.mailer.Send(ctx, msg); err != nil {
		return err
	}

	logger.Log.Infow("ticket sent", "guest_id", guest.GuestID, "event_id", guest.EventID)
	return nil
}
