package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-event-checkin/internal/mailer"
	"github.com/sbilibin2017/gw-event-checkin/internal/models"
	"github.com/sbilibin2017/gw-event-checkin/internal/services"
	"github.com/sbilibin2017/gw-event-checkin/internal/tickets"
)

func TestTicketNotifier_SendTicket(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	sender := services.NewMockMailSender(ctrl)
	notifier := services.NewTicketNotifier(sender, "events@x.com")

	guest := &models.GuestDB{GuestID: uuid.New(), EventID: 3, EventName: "Launch", Name: "Ana", Email: "ana@x.com"}
	image := &tickets.Image{Filename: "guest_1.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}}

	sender.EXPECT().Send(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, msg mailer.Message) error {
		assert.Equal(t, "events@x.com", msg.From)
		assert.Equal(t, []string{"ana@x.com"}, msg.To)
		assert.Equal(t, "Your QR Code for Launch", msg.Subject)
		assert.Contains(t, msg.Body, "Hi Ana,")
		assert.Contains(t, msg.Body, "Launch")
		assert.Contains(t, msg.Body, "signed-code")

		require.Len(t, msg.Attachments, 1)
		assert.Equal(t, "guest_1.png", msg.Attachments[0].Filename)
		assert.Equal(t, "image/png", msg.Attachments[0].ContentType)
		assert.Equal(t, image.Data, msg.Attachments[0].Data)
		return nil
	})

	assert.NoError(t, notifier.SendTicket(ctx, guest, image, "signed-code"))
}

func TestTicketNotifier_PropagatesTransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sender := services.NewMockMailSender(ctrl)
	sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return(mailer.ErrSMTPDisabled)

	err := services.NewTicketNotifier(sender, "").SendTicket(context.Background(), &models.GuestDB{Email: "a@x.com"}, nil, "c")
	assert.True(t, errors.Is(err, mailer.ErrSMTPDisabled))
}
