package kernel

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Role is the capability an authenticated caller acts with.
type Role string

const (
	RoleConsumer      Role = "consumer"
	RoleProducer      Role = "producer"
	RoleDeliveryAgent Role = "delivery_agent"
	RolePlatform      Role = "platform"
)

// ParseRole accepts the role claim carried by an access token.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if err := r.Validate(); err != nil {
		return "", err
	}
	return r, nil
}

func (r Role) Validate() error {
	switch r {
	case RoleConsumer, RoleProducer, RoleDeliveryAgent, RolePlatform:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", string(r)))
	}
}

// Actor is the verified identity of whoever performs an operation. A producer
// acts with its own user id; products reference that id as their producer.
type Actor struct {
	id   UUID
	role Role
}

func NewActor(id UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, errs.NewValueIsRequiredErrorWithCause("actor id", err)
	}
	if err := role.Validate(); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) Is(role Role) bool {
	return a.role == role
}

func (a Actor) Validate() error {
	if err := a.id.Validate(); err != nil {
		return err
	}
	return a.role.Validate()
}
