package engine

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

// CompletionDelay returns how many days late a period's rent obligation was, or
// currently is, relative to its due date. The result is never negative.
//
// When the period is fully covered by accepted payments, the delay is measured
// to the completion payment: walking the accepted payments in submission order,
// the first one whose running total reaches the rent. An early partial payment
// followed by a late completing one therefore reports the late completion, not
// an average. A period with no payments, or an incomplete one, is late by the
// days elapsed since its due date.
func CompletionDelay(payments []models.Payment, rent decimal.Decimal, dueDate, today time.Time) int {
	if len(payments) == 0 {
		return maxInt(0, daysBetween(dueDate, today))
	}

	accepted := make([]models.Payment, 0, len(payments))
	for _, p := range payments {
		if p.Status == models.PaymentAccepted {
			accepted = append(accepted, p)
		}
	}
	sort.SliceStable(accepted, func(i, j int) bool {
		return accepted[i].SubmittedAt.Before(accepted[j].SubmittedAt)
	})

	running := decimal.Zero
	for _, p := range accepted {
		running = running.Add(p.Amount)
		if running.GreaterThanOrEqual(rent) {
			return maxInt(0, daysBetween(dueDate, p.SubmittedAt))
		}
	}

	// Partially covered and still open.
	return maxInt(0, daysBetween(dueDate, today))
}

// AverageDelay returns the mean completion delay across every past period of
// the contract, rounded half up to one decimal place. It is 0.0 when no period
// has come due yet.
func AverageDelay(c *models.Contract, paymentsByPeriod map[int][]models.Payment, today time.Time) float64 {
	past := PastPeriodNumbers(c, today)
	if len(past) == 0 {
		return 0.0
	}

	total := 0
	for _, n := range past {
		total += CompletionDelay(paymentsByPeriod[n], c.Rent, DueDate(c, n), today)
	}
	mean := float64(total) / float64(len(past))
	return math.Round(mean*10) / 10
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
