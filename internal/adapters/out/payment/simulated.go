// Package payment holds the payment gateway adapters.
package payment

import (
	"context"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const (
	MethodCard = "card"
	MethodPix  = "pix"
)

// SimulatedAuthorizer stands in for a real gateway. Cards are approved up to
// DeclineAbove and declined beyond it; pix charges stay pending until the
// buyer pays the generated code. Latency is simulated and honors ctx.
type SimulatedAuthorizer struct {
	DeclineAbove decimal.Decimal
	Latency      time.Duration
}

func NewSimulatedAuthorizer() SimulatedAuthorizer {
	return SimulatedAuthorizer{
		DeclineAbove: decimal.NewFromInt(10000),
		Latency:      50 * time.Millisecond,
	}
}

func (a SimulatedAuthorizer) ProcessPayment(
	ctx context.Context,
	orderID kernel.UUID,
	amount decimal.Decimal,
	method string,
) (ports.PaymentResult, error) {
	method = strings.ToLower(strings.TrimSpace(method))
	if method != MethodCard && method != MethodPix {
		return ports.PaymentResult{}, errs.NewValueIsInvalidErrorWithCause("method",
			fmt.Errorf("unsupported payment method %q", method))
	}

	select {
	case <-ctx.Done():
		return ports.PaymentResult{}, ctx.Err()
	case <-time.After(a.Latency):
	}

	result := ports.PaymentResult{
		TransactionID: fmt.Sprintf("txn_%s_%d", strings.ReplaceAll(orderID.String(), "-", "")[:12], time.Now().UnixNano()),
	}
	switch {
	case method == MethodPix:
		result.Status = ports.PaymentPending
	case amount.GreaterThan(a.DeclineAbove):
		result.Status = ports.PaymentDeclined
	default:
		result.Status = ports.PaymentApproved
	}
	return result, nil
}
