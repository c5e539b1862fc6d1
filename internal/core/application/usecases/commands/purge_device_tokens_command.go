package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrPurgeDeviceTokensCommandIsNotConstructed = errors.New(
	"PurgeDeviceTokensCommand must be created via NewPurgeDeviceTokensCommand constructor",
)

// PurgeDeviceTokensCommand deletes device tokens deactivated longer than retention ago.
type PurgeDeviceTokensCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration
	guard     guard.ConstructorGuard
}

func NewPurgeDeviceTokensCommand(retention time.Duration) (PurgeDeviceTokensCommand, error) {
	if retention <= 0 {
		return PurgeDeviceTokensCommand{}, errs.NewValueIsOutOfRangeError("retention", retention, "1ns", "unbounded")
	}
	return PurgeDeviceTokensCommand{retention: retention, guard: guard.NewConstructorGuard()}, nil
}

func (c PurgeDeviceTokensCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeviceTokensCommandIsNotConstructed)
}

func (c PurgeDeviceTokensCommand) Retention() time.Duration {
	return c.retention
}

type PurgeDeviceTokensCommandHandler struct {
	uowFactory DeviceTokenUoWFactory
}

func NewPurgeDeviceTokensCommandHandler(uowFactory DeviceTokenUoWFactory) PurgeDeviceTokensCommandHandler {
	return PurgeDeviceTokensCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of purged tokens.
func (h *PurgeDeviceTokensCommandHandler) Handle(ctx context.Context, cmd PurgeDeviceTokensCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	uow := h.uowFactory.Create()
	return uow.DeviceTokenRepository().PurgeInactive(ctx, time.Now().UTC().Add(-cmd.Retention()))
}
