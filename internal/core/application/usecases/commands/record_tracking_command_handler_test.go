package commands_test

import (
	"errors"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/delivery"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecordTrackingCommandHandler_AssignedAgentRecordsPosition(t *testing.T) {
	ctx := t.Context()
	agent := mustActor(t, kernel.RoleDeliveryAgent)
	o := storedOrder(t, order.Shipped, kernel.NewUUID(), kernel.NewUUID())
	assignment := delivery.RestoreAssignment(o.ID(), agent.ID(), time.Now().UTC())

	cmd, err := commands.NewRecordTrackingCommand(agent, o.ID(), -23.5505, -46.6333)
	require.NoError(t, err)

	uow := newMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once(),
		uow.assignments.On("GetByOrder", ctx, o.ID()).Return(assignment, nil).Once(),
		uow.tracking.On("Add", ctx, mock.AnythingOfType("*delivery.TrackingPoint")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewRecordTrackingCommandHandler(trackingFactory(uow))
	point, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, point.OrderID().IsEqual(o.ID()))
	assert.True(t, point.AgentID().IsEqual(agent.ID()))
	assert.Equal(t, order.Shipped, point.Status())
	assert.Equal(t, kernel.Degrees(-23.5505), point.Location().Latitude())
	assert.Equal(t, kernel.Degrees(-46.6333), point.Location().Longitude())
	uow.assertAll(t)
}

func TestRecordTrackingCommandHandler_Rejections(t *testing.T) {
	agent := mustActor(t, kernel.RoleDeliveryAgent)

	tests := []struct {
		name       string
		status     order.Status
		assignment func(orderID kernel.UUID) (*delivery.Assignment, error)
		wantErr    error
	}{
		{
			name:   "order carried by another agent",
			status: order.Shipped,
			assignment: func(orderID kernel.UUID) (*delivery.Assignment, error) {
				return delivery.RestoreAssignment(orderID, kernel.NewUUID(), time.Now().UTC()), nil
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:   "order without agent",
			status: order.Processing,
			assignment: func(orderID kernel.UUID) (*delivery.Assignment, error) {
				return nil, errs.NewObjectNotFoundError("delivery assignment", orderID.String())
			},
			wantErr: errs.ErrForbidden,
		},
		{
			name:   "order already delivered",
			status: order.Delivered,
			assignment: func(orderID kernel.UUID) (*delivery.Assignment, error) {
				return delivery.RestoreAssignment(orderID, agent.ID(), time.Now().UTC()), nil
			},
			wantErr: errs.ErrValueIsInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			o := storedOrder(t, tt.status, kernel.NewUUID(), kernel.NewUUID())
			cmd, err := commands.NewRecordTrackingCommand(agent, o.ID(), 1, 1)
			require.NoError(t, err)

			uow := newMockUoW()
			uow.expectAbortedTx(ctx)
			uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
			uow.assignments.On("GetByOrder", ctx, o.ID()).Return(tt.assignment(o.ID())).Once()

			h := commands.NewRecordTrackingCommandHandler(trackingFactory(uow))
			_, err = h.Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			uow.tracking.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			uow.assertAll(t)
		})
	}
}

func TestRecordTrackingCommandHandler_StorageFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	agent := mustActor(t, kernel.RoleDeliveryAgent)
	o := storedOrder(t, order.Shipped, kernel.NewUUID(), kernel.NewUUID())
	cmd, err := commands.NewRecordTrackingCommand(agent, o.ID(), 10, 20)
	require.NoError(t, err)

	uow := newMockUoW()
	uow.expectAbortedTx(ctx)
	uow.orders.On("GetForUpdate", ctx, o.ID()).Return(o, nil).Once()
	uow.assignments.On("GetByOrder", ctx, o.ID()).
		Return(delivery.RestoreAssignment(o.ID(), agent.ID(), time.Now().UTC()), nil).Once()
	uow.tracking.On("Add", ctx, mock.Anything).Return(errors.New("disk full")).Once()

	h := commands.NewRecordTrackingCommandHandler(trackingFactory(uow))
	_, err = h.Handle(ctx, cmd)

	require.EqualError(t, err, "disk full")
	uow.assertAll(t)
}

func TestNewRecordTrackingCommand(t *testing.T) {
	orderID := kernel.NewUUID()

	t.Run("consumer_cannot_report", func(t *testing.T) {
		_, err := commands.NewRecordTrackingCommand(mustActor(t, kernel.RoleConsumer), orderID, 0, 0)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})

	t.Run("latitude_out_of_range", func(t *testing.T) {
		_, err := commands.NewRecordTrackingCommand(mustActor(t, kernel.RoleDeliveryAgent), orderID, 91, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero_value", func(t *testing.T) {
		require.ErrorIs(t, commands.RecordTrackingCommand{}.Validate(), commands.ErrRecordTrackingCommandIsNotConstructed)
	})
}
