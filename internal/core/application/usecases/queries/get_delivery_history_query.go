package queries

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	DefaultHistoryPageSize = 20
	MaxHistoryPageSize     = 100
)

var ErrGetDeliveryHistoryQueryIsNotConstructed = errors.New(
	"GetDeliveryHistoryQuery must be created via NewGetDeliveryHistoryQuery constructor",
)

// GetDeliveryHistoryQuery pages through the orders an agent delivered, most
// recent delivery first. Pages start at 1.
type GetDeliveryHistoryQuery struct {
	agentID kernel.UUID
	page    int
	limit   int
	guard   guard.ConstructorGuard
}

// NewGetDeliveryHistoryQuery treats a zero page or limit as "use the default".
func NewGetDeliveryHistoryQuery(agentID kernel.UUID, page, limit int) (GetDeliveryHistoryQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetDeliveryHistoryQuery{}, errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = DefaultHistoryPageSize
	}
	if page < 1 {
		return GetDeliveryHistoryQuery{}, errs.NewValueIsOutOfRangeError("page", page, 1, "unbounded")
	}
	if limit < 1 || limit > MaxHistoryPageSize {
		return GetDeliveryHistoryQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxHistoryPageSize)
	}
	return GetDeliveryHistoryQuery{agentID: agentID, page: page, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryHistoryQueryIsNotConstructed)
}

func (q GetDeliveryHistoryQuery) AgentID() kernel.UUID {
	return q.agentID
}

func (q GetDeliveryHistoryQuery) Page() int {
	return q.page
}

func (q GetDeliveryHistoryQuery) Limit() int {
	return q.limit
}

type DeliveryHistoryEntry struct {
	OrderID         kernel.UUID
	TrackingCode    string
	CustomerName    string
	CustomerPhone   string
	ShippingAddress string
	TotalPrice      decimal.Decimal
	DeliveryFee     decimal.Decimal
	AcceptedAt      time.Time
	DeliveredAt     time.Time
	CreatedAt       time.Time
	Items           []OrderItemView
}

type Pagination struct {
	Page       int
	Limit      int
	Total      int64
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

func newPagination(page, limit int, total int64) Pagination {
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
}

type DeliveryHistoryPage struct {
	Deliveries []DeliveryHistoryEntry
	Pagination Pagination
}
