package queries

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDeliveryEarningsQueryIsNotConstructed = errors.New(
	"GetDeliveryEarningsQuery must be created via NewGetDeliveryEarningsQuery constructor",
)

// EarningsPeriod is the look-back window of an earnings report.
type EarningsPeriod string

const (
	PeriodWeek  EarningsPeriod = "week"
	PeriodMonth EarningsPeriod = "month"
	PeriodAll   EarningsPeriod = "all"
)

// Since is the start of the window ending at now. "all" reaches back one year.
func (p EarningsPeriod) Since(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, 0, -30)
	default:
		return now.AddDate(-1, 0, 0)
	}
}

func ParseEarningsPeriod(s string) (EarningsPeriod, error) {
	switch p := EarningsPeriod(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodAll, nil
	case PeriodWeek, PeriodMonth, PeriodAll:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("period", fmt.Errorf("%q must be week, month or all", s))
	}
}

// GetDeliveryEarningsQuery reports the delivery fees an agent earned in a
// window ending at asOf.
type GetDeliveryEarningsQuery struct {
	agentID kernel.UUID
	period  EarningsPeriod
	asOf    time.Time
	guard   guard.ConstructorGuard
}

func NewGetDeliveryEarningsQuery(agentID kernel.UUID, period string, asOf time.Time) (GetDeliveryEarningsQuery, error) {
	if err := agentID.Validate(); err != nil {
		return GetDeliveryEarningsQuery{}, errs.NewValueIsRequiredErrorWithCause("agentId", err)
	}
	p, err := ParseEarningsPeriod(period)
	if err != nil {
		return GetDeliveryEarningsQuery{}, err
	}
	if asOf.IsZero() {
		return GetDeliveryEarningsQuery{}, errs.NewValueIsRequiredError("asOf")
	}
	return GetDeliveryEarningsQuery{agentID: agentID, period: p, asOf: asOf.UTC(), guard: guard.NewConstructorGuard()}, nil
}

func (q GetDeliveryEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryEarningsQueryIsNotConstructed)
}

func (q GetDeliveryEarningsQuery) AgentID() kernel.UUID {
	return q.agentID
}

func (q GetDeliveryEarningsQuery) Period() EarningsPeriod {
	return q.period
}

func (q GetDeliveryEarningsQuery) AsOf() time.Time {
	return q.asOf
}

// EarnedDelivery is one paid delivery inside a daily bucket.
type EarnedDelivery struct {
	OrderID         kernel.UUID
	CustomerName    string
	ShippingAddress string
	DeliveryFee     decimal.Decimal
	DeliveredAt     time.Time
}

// DailyEarnings buckets deliveries by UTC calendar day (YYYY-MM-DD).
type DailyEarnings struct {
	Date          string
	Total         decimal.Decimal
	DeliveryCount int
	Deliveries    []EarnedDelivery
}

// EarningsStats summarizes the window. AveragePerDelivery is rounded to cents;
// CurrentMonth sums the deliveries of the window that fall in asOf's month.
type EarningsStats struct {
	TotalEarnings      decimal.Decimal
	TotalDeliveries    int
	AveragePerDelivery decimal.Decimal
	CurrentMonth       decimal.Decimal
}

type DeliveryEarnings struct {
	Period EarningsPeriod
	Daily  []DailyEarnings
	Stats  EarningsStats
}
