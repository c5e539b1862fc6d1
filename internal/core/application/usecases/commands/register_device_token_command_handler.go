package commands

import "context"

type RegisterDeviceTokenCommandHandler struct {
	uowFactory DeviceTokenUoWFactory
}

func NewRegisterDeviceTokenCommandHandler(uowFactory DeviceTokenUoWFactory) RegisterDeviceTokenCommandHandler {
	return RegisterDeviceTokenCommandHandler{uowFactory: uowFactory}
}

// Handle upserts the token; re-registering a deactivated token reactivates it.
func (h *RegisterDeviceTokenCommandHandler) Handle(ctx context.Context, cmd RegisterDeviceTokenCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	uow := h.uowFactory.Create()
	return uow.DeviceTokenRepository().Register(ctx, cmd.UserID(), cmd.Token(), cmd.Platform())
}
