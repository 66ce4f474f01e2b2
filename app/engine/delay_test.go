package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

func TestCompletionDelay_NoPayments(t *testing.T) {
	rent := decimal.RequireFromString("1000")
	due := date(2026, time.March, 1)

	assert.Equal(t, 10, CompletionDelay(nil, rent, due, date(2026, time.March, 11)))
	// Not yet due: never negative.
	assert.Equal(t, 0, CompletionDelay(nil, rent, due, date(2026, time.February, 20)))
}

func TestCompletionDelay_LateCompletionNotAveraged(t *testing.T) {
	// $600 five days early, $400 three days late against $1000: the obligation
	// was satisfied by the second payment, so the delay is 3.
	rent := decimal.RequireFromString("1000")
	due := date(2026, time.March, 1)
	payments := []models.Payment{
		payment("600", models.PaymentAccepted, date(2026, time.February, 24)),
		payment("400", models.PaymentAccepted, date(2026, time.March, 4)),
	}

	assert.Equal(t, 3, CompletionDelay(payments, rent, due, date(2026, time.March, 20)))
}

func TestCompletionDelay_EarlyFullPaymentClampsToZero(t *testing.T) {
	rent := decimal.RequireFromString("1000")
	due := date(2026, time.March, 1)
	payments := []models.Payment{
		payment("1000", models.PaymentAccepted, date(2026, time.February, 20)),
	}

	assert.Equal(t, 0, CompletionDelay(payments, rent, due, date(2026, time.April, 1)))
}

func TestCompletionDelay_SubmissionOrderDecidesCompletion(t *testing.T) {
	// Out-of-slice-order input: accumulation follows submission time.
	rent := decimal.RequireFromString("1000")
	due := date(2026, time.March, 1)
	payments := []models.Payment{
		payment("500", models.PaymentAccepted, date(2026, time.March, 8)),
		payment("500", models.PaymentAccepted, date(2026, time.March, 2)),
	}

	assert.Equal(t, 7, CompletionDelay(payments, rent, due, date(2026, time.March, 30)))
}

func TestCompletionDelay_PaymentsAfterCompletionIgnored(t *testing.T) {
	rent := decimal.RequireFromString("1000")
	due := date(2026, time.March, 1)
	payments := []models.Payment{
		payment("1000", models.PaymentAccepted, date(2026, time.March, 3)),
		payment("200", models.PaymentAccepted, date(2026, time.March, 25)),
	}

	assert.Equal(t, 2, CompletionDelay(payments, rent, due, date(2026, time.March, 30)))
}

func TestCompletionDelay_PartialStillOpen(t *testing.T) {
	rent := decimal.RequireFromString("1000")
	due := date(2026, time.March, 1)
	payments := []models.Payment{
		payment("600", models.PaymentAccepted, date(2026, time.February, 24)),
	}

	assert.Equal(t, 14, CompletionDelay(payments, rent, due, date(2026, time.March, 15)))
}

func TestCompletionDelay_NonAcceptedDoNotComplete(t *testing.T) {
	// A pending and a rejected submission cover the rent on paper; the period
	// is still open, so the delay keeps running.
	rent := decimal.RequireFromString("1000")
	due := date(2026, time.March, 1)
	payments := []models.Payment{
		payment("500", models.PaymentPending, date(2026, time.March, 2)),
		payment("500", models.PaymentRejected, date(2026, time.March, 2)),
	}

	assert.Equal(t, 9, CompletionDelay(payments, rent, due, date(2026, time.March, 10)))
}

func TestAverageDelay_NoPastPeriods(t *testing.T) {
	c := testContract(date(2026, time.June, 1), date(2027, time.May, 31), 15, "1000")
	assert.Equal(t, 0.0, AverageDelay(c, nil, date(2026, time.June, 10)))
}

func TestAverageDelay_RoundedHalfUpToOneDecimal(t *testing.T) {
	// Two past periods paid 0 and 1 days late: mean 0.5 keeps the half up.
	c := testContract(date(2026, time.January, 1), date(2026, time.December, 31), 10, "1000")
	byPeriod := map[int][]models.Payment{
		1: {payment("1000", models.PaymentAccepted, date(2026, time.January, 10))},
		2: {payment("1000", models.PaymentAccepted, date(2026, time.February, 11))},
	}

	assert.Equal(t, 0.5, AverageDelay(c, byPeriod, date(2026, time.February, 20)))
}

func TestAverageDelay_MixedPeriods(t *testing.T) {
	// Delays 2, 5 and an unpaid period 10 days overdue at the reference date:
	// mean of (2, 5, 10) = 5.666... rounds to 5.7.
	c := testContract(date(2026, time.January, 1), date(2026, time.December, 31), 10, "1000")
	byPeriod := map[int][]models.Payment{
		1: {payment("1000", models.PaymentAccepted, date(2026, time.January, 12))},
		2: {payment("1000", models.PaymentAccepted, date(2026, time.February, 15))},
	}

	assert.Equal(t, 5.7, AverageDelay(c, byPeriod, date(2026, time.March, 20)))
}
