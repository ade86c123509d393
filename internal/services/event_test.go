package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-event-checkin/internal/models"
	"github.com/sbilibin2017/gw-event-checkin/internal/services"
)

func newEventService(t *testing.T) (*services.EventService, *services.MockEventReader, *services.MockEventWriter) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	reader := services.NewMockEventReader(ctrl)
	writer := services.NewMockEventWriter(ctrl)
	return services.NewEventService(reader, writer), reader, writer
}

func validEventInput() models.EventInput {
	return models.EventInput{
		Name:      "Launch",
		Location:  "Hall A",
		StartTime: time.Date(2026, 3, 14, 18, 30, 0, 0, time.UTC),
	}
}

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()

	t.Run("host comes from caller", func(t *testing.T) {
		svc, _, writer := newEventService(t)
		in := validEventInput()
		in.Name = "  Launch  "

		want := validEventInput()
		writer.EXPECT().Save(ctx, hostID, want).Return(&models.EventDB{EventID: 1, HostID: hostID, Name: "Launch"}, nil)

		event, err := svc.Create(ctx, hostID, in)
		require.NoError(t, err)
		assert.Equal(t, hostID, event.HostID)
	})

	t.Run("cover image is a stored path", func(t *testing.T) {
		for _, cover := range []string{"events/covers/launch.png", "launch.png", "/media/launch.png", "https://cdn.example.com/launch.png"} {
			svc, _, writer := newEventService(t)
			in := validEventInput()
			in.CoverImage = cover

			writer.EXPECT().Save(ctx, hostID, in).Return(&models.EventDB{EventID: 1, HostID: hostID, CoverImage: cover}, nil)

			event, err := svc.Create(ctx, hostID, in)
			require.NoError(t, err, cover)
			assert.Equal(t, cover, event.CoverImage)
		}
	})

	t.Run("validation", func(t *testing.T) {
		svc, _, _ := newEventService(t)

		for _, mutate := range []func(*models.EventInput){
			func(in *models.EventInput) { in.Name = "" },
			func(in *models.EventInput) { in.Location = " " },
			func(in *models.EventInput) { in.StartTime = time.Time{} },
			func(in *models.EventInput) { in.CoverImage = strings.Repeat("c", 256) },
		} {
			in := validEventInput()
			mutate(&in)

			_, err := svc.Create(ctx, hostID, in)
			assert.ErrorIs(t, err, services.ErrInvalidInput)
		}
	})
}

func TestEventService_Reads(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	svc, reader, _ := newEventService(t)

	reader.EXPECT().List(ctx).Return([]models.EventDB{{EventID: 1}, {EventID: 2}}, nil)
	reader.EXPECT().ListByHost(ctx, hostID).Return([]models.EventDB{{EventID: 2, HostID: hostID}}, nil)
	reader.EXPECT().GetByID(ctx, int64(2)).Return(&models.EventDB{EventID: 2}, nil)
	reader.EXPECT().GetByID(ctx, int64(9)).Return(nil, nil)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.ListMine(ctx, hostID)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	event, err := svc.Get(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), event.EventID)

	_, err = svc.Get(ctx, 9)
	assert.ErrorIs(t, err, services.ErrEventNotFound)
}

func TestEventService_Update(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()
	in := validEventInput()

	tests := []struct {
		name    string
		locked  *models.EventDB
		lockErr error
		wantErr error
	}{
		{name: "host updates", locked: &models.EventDB{EventID: 1, HostID: hostID}},
		{name: "other user", locked: &models.EventDB{EventID: 1, HostID: uuid.New()}, wantErr: services.ErrForbidden},
		{name: "missing", wantErr: services.ErrEventNotFound},
		{name: "lock error", lockErr: errors.New("db error"), wantErr: errors.New("db error")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, writer := newEventService(t)

			writer.EXPECT().GetForUpdate(ctx, int64(1)).Return(tt.locked, tt.lockErr)
			if tt.wantErr == nil {
				writer.EXPECT().Update(ctx, int64(1), in).Return(&models.EventDB{EventID: 1, HostID: hostID, Name: in.Name}, nil)
			}

			event, err := svc.Update(ctx, hostID, 1, in)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, hostID, event.HostID)
		})
	}
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()
	hostID := uuid.New()

	t.Run("host deletes", func(t *testing.T) {
		svc, _, writer := newEventService(t)
		writer.EXPECT().GetForUpdate(ctx, int64(1)).Return(&models.EventDB{EventID: 1, HostID: hostID}, nil)
		writer.EXPECT().Delete(ctx, int64(1)).Return(true, nil)

		assert.NoError(t, svc.Delete(ctx, hostID, 1))
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		svc, _, writer := newEventService(t)
		writer.EXPECT().GetForUpdate(ctx, int64(1)).Return(&models.EventDB{EventID: 1, HostID: uuid.New()}, nil)

		assert.ErrorIs(t, svc.Delete(ctx, hostID, 1), services.ErrForbidden)
	})
}
