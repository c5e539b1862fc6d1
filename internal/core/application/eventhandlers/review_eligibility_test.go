package eventhandlers_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"marketplace/internal/core/application/eventhandlers"
	"marketplace/internal/core/application/sideeffects"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/notification"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockNotificationRepository struct{ mock.Mock }

func (m *MockNotificationRepository) Add(ctx context.Context, n *notification.Notification) error {
	return m.Called(ctx, n).Error(0)
}

func (m *MockNotificationRepository) DeleteByOrderAndType(
	ctx context.Context,
	orderID kernel.UUID,
	kind notification.Type,
) (int64, error) {
	args := m.Called(ctx, orderID, kind)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) ExistsByOrderAndType(
	ctx context.Context,
	orderID kernel.UUID,
	kind notification.Type,
) (bool, error) {
	args := m.Called(ctx, orderID, kind)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) LockOrder(ctx context.Context, orderID kernel.UUID) error {
	return m.Called(ctx, orderID).Error(0)
}

type MockUoW struct {
	mock.Mock
	notifications *MockNotificationRepository
}

func (m *MockUoW) Begin(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) NotificationRepository() ports.NotificationRepository { return m.notifications }
func (m *MockUoW) DeviceTokenRepository() ports.DeviceTokenRepository { return nil }

func (m *MockUoW) Create() sideeffects.UoW { return m }

type MockPusher struct{ mock.Mock }

func (m *MockPusher) Push(ctx context.Context, n *notification.Notification) {
	m.Called(ctx, n)
}

func deliveredPayload(t *testing.T, orderID, userID kernel.UUID, items int) []byte {
	t.Helper()
	event := order.DeliveredEvent{
		EventID:     kernel.NewUUID().String(),
		OrderID:     orderID.String(),
		UserID:      userID.String(),
		DeliveredAt: time.Now().UTC(),
	}
	for range items {
		event.Items = append(event.Items, order.DeliveredEventItem{
			OrderItemID: kernel.NewUUID().String(),
			ProductID:   kernel.NewUUID().String(),
			ProducerID:  kernel.NewUUID().String(),
		})
	}
	payload, err := event.Marshal()
	require.NoError(t, err)
	return payload
}

func newHandler() (*eventhandlers.ReviewEligibilityHandler, *MockUoW, *MockPusher) {
	uow := &MockUoW{notifications: new(MockNotificationRepository)}
	pusher := new(MockPusher)
	return eventhandlers.NewReviewEligibilityHandler(uow, pusher, slog.New(slog.DiscardHandler)), uow, pusher
}

func TestReviewEligibilityHandler_InvitesBuyerOnce(t *testing.T) {
	ctx := t.Context()
	orderID, userID := kernel.NewUUID(), kernel.NewUUID()
	h, uow, pusher := newHandler()

	isInvitation := mock.MatchedBy(func(n *notification.Notification) bool {
		return n.Type() == notification.ReviewAvailable &&
			n.UserID().IsEqual(userID) &&
			n.OrderID().IsEqual(orderID) &&
			n.Data()["itemCount"] == "2"
	})
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.notifications.On("ExistsByOrderAndType", ctx, orderID, notification.ReviewAvailable).Return(false, nil).Once(),
		uow.notifications.On("Add", ctx, isInvitation).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
		pusher.On("Push", ctx, isInvitation).Return().Once(),
	)

	err := h.Handle(ctx, deliveredPayload(t, orderID, userID, 2))

	require.NoError(t, err)
	uow.AssertExpectations(t)
	uow.notifications.AssertExpectations(t)
	pusher.AssertExpectations(t)
}

func TestReviewEligibilityHandler_RedeliveredEventIsIgnored(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	h, uow, pusher := newHandler()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.notifications.On("ExistsByOrderAndType", ctx, orderID, notification.ReviewAvailable).Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := h.Handle(ctx, deliveredPayload(t, orderID, kernel.NewUUID(), 1))

	require.NoError(t, err)
	uow.AssertExpectations(t)
	uow.notifications.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	pusher.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
}

func TestReviewEligibilityHandler_ConcurrentDuplicateIsAcknowledged(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	h, uow, pusher := newHandler()

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.notifications.On("ExistsByOrderAndType", ctx, orderID, notification.ReviewAvailable).Return(false, nil).Once(),
		uow.notifications.On("Add", ctx, mock.Anything).
			Return(errs.NewConflictError("notification")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := h.Handle(ctx, deliveredPayload(t, orderID, kernel.NewUUID(), 1))

	require.NoError(t, err)
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	pusher.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
}

func TestReviewEligibilityHandler_StorageErrorRequestsRedelivery(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	h, uow, pusher := newHandler()
	dbErr := errors.New("connection refused")

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.notifications.On("ExistsByOrderAndType", ctx, orderID, notification.ReviewAvailable).Return(false, dbErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	err := h.Handle(ctx, deliveredPayload(t, orderID, kernel.NewUUID(), 1))

	require.ErrorIs(t, err, dbErr)
	pusher.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
}

func TestReviewEligibilityHandler_MalformedPayloadIsAcknowledged(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"not json", []byte("{")},
		{"bad order id", []byte(`{"orderId":"nope","userId":"` + kernel.NewUUID().String() + `"}`)},
		{"missing user", []byte(`{"orderId":"` + kernel.NewUUID().String() + `"}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uow, pusher := newHandler()

			err := h.Handle(t.Context(), tt.payload)

			assert.NoError(t, err)
			uow.AssertNotCalled(t, "Begin", mock.Anything)
			pusher.AssertNotCalled(t, "Push", mock.Anything, mock.Anything)
		})
	}
}
