package engine

import (
	"github.com/shopspring/decimal"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

// PeriodStatus classifies a rent period by how much of its rent was collected.
type PeriodStatus string

const (
	PeriodPaid    PeriodStatus = "paid"
	PeriodPartial PeriodStatus = "partial"
	PeriodUnpaid  PeriodStatus = "unpaid"
)

// AcceptedTotal sums the amounts of the accepted payments in the list.
// Pending and rejected submissions never count toward collected funds.
func AcceptedTotal(payments []models.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		if p.Status == models.PaymentAccepted {
			total = total.Add(p.Amount)
		}
	}
	return total
}

// ClassifyPeriod derives the status of a period from its accepted total.
// Overpayment is still "paid": the excess is a closed credit on the period and
// does not roll over.
func ClassifyPeriod(rent, acceptedTotal decimal.Decimal) PeriodStatus {
	switch {
	case acceptedTotal.GreaterThanOrEqual(rent):
		return PeriodPaid
	case acceptedTotal.IsPositive():
		return PeriodPartial
	default:
		return PeriodUnpaid
	}
}

// Outstanding returns rent minus the accepted total for a period. A negative
// result is an overpayment credit and is reported as-is, not clamped.
func Outstanding(rent, acceptedTotal decimal.Decimal) decimal.Decimal {
	return rent.Sub(acceptedTotal)
}
