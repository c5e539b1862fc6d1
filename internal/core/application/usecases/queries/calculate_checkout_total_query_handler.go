package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/checkout"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CalculateCheckoutTotalQueryHandler struct {
	db         *gorm.DB
	calculator services.PriceCalculator
}

func NewCalculateCheckoutTotalQueryHandler(
	db *gorm.DB,
	calculator services.PriceCalculator,
) CalculateCheckoutTotalQueryHandler {
	return CalculateCheckoutTotalQueryHandler{db: db, calculator: calculator}
}

// Handle prices the subtotal stored on the checkout of the buyer's order.
// Orders of other buyers are reported as not found.
func (h CalculateCheckoutTotalQueryHandler) Handle(
	ctx context.Context,
	query CalculateCheckoutTotalQuery,
) (checkout.Pricing, error) {
	if err := query.Validate(); err != nil {
		return checkout.Pricing{}, err
	}

	var subtotal decimal.Decimal
	err := h.db.WithContext(ctx).Raw(`
		SELECT c.subtotal
		FROM checkouts c
		JOIN orders o ON o.id = c.order_id
		WHERE c.order_id = ? AND o.user_id = ?
	`, query.OrderID().Bytes(), query.UserID().Bytes()).Row().Scan(&subtotal)
	if errors.Is(err, sql.ErrNoRows) {
		return checkout.Pricing{}, errs.NewObjectNotFoundErrorWithCause("checkout", query.OrderID().String(), err)
	}
	if err != nil {
		return checkout.Pricing{}, err
	}

	return h.calculator.Calculate(subtotal, query.AddressID(), query.DeliveryMethod(), query.CouponCode())
}
