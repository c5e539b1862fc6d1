package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRegisterDeviceTokenCommandIsNotConstructed = errors.New(
	"RegisterDeviceTokenCommand must be created via NewRegisterDeviceTokenCommand constructor",
)

type RegisterDeviceTokenCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	token    string
	platform string

	guard guard.ConstructorGuard
}

func NewRegisterDeviceTokenCommand(userID kernel.UUID, token, platform string) (RegisterDeviceTokenCommand, error) {
	if err := userID.Validate(); err != nil {
		return RegisterDeviceTokenCommand{}, errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return RegisterDeviceTokenCommand{}, errs.NewValueIsRequiredError("token")
	}
	platform = strings.ToLower(strings.TrimSpace(platform))
	switch platform {
	case "ios", "android", "web":
	default:
		return RegisterDeviceTokenCommand{}, errs.NewValueIsInvalidError("platform")
	}
	return RegisterDeviceTokenCommand{userID: userID, token: token, platform: platform, guard: guard.NewConstructorGuard()}, nil
}

func (c RegisterDeviceTokenCommand) Validate() error {
	return c.guard.Validate(ErrRegisterDeviceTokenCommandIsNotConstructed)
}

func (c RegisterDeviceTokenCommand) UserID() kernel.UUID {
	return c.userID
}

func (c RegisterDeviceTokenCommand) Token() string {
	return c.token
}

func (c RegisterDeviceTokenCommand) Platform() string {
	return c.platform
}
