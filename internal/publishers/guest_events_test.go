package publishers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

func TestGuestEventPublisher_Publish(t *testing.T) {
	ctx := context.Background()
	evt := models.GuestEvent{
		ID:         "n-1",
		Type:       models.GuestCheckedIn,
		GuestID:    "guest-1",
		EventID:    3,
		Email:      "ana@x.com",
		OccurredAt: 1700000000,
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, msgs ...kafka.Message) error {
			assert.Len(t, msgs, 1)
			assert.Equal(t, "guest-1", string(msgs[0].Key))

			var got models.GuestEvent
			assert.NoError(t, json.Unmarshal(msgs[0].Value, &got))
			assert.Equal(t, evt, got)
			return nil
		})

	NewGuestEventPublisher(writer).Publish(ctx, evt)
}

func TestGuestEventPublisher_ErrorsAreSwallowed(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	writer := NewMockKafkaWriter(ctrl)
	writer.EXPECT().WriteMessages(ctx, gomock.Any()).Return(errors.New("kafka error"))

	assert.NotPanics(t, func() {
		NewGuestEventPublisher(writer).Publish(ctx, models.GuestEvent{GuestID: "g"})
	})
}

func TestGuestEventPublisher_NilWriter(t *testing.T) {
	assert.NotPanics(t, func() {
		NewGuestEventPublisher(nil).Publish(context.Background(), models.GuestEvent{GuestID: "g"})
	})
}
