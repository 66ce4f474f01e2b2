package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

func payment(amount string, status models.PaymentStatus, submitted time.Time) models.Payment {
	p := models.Payment{
		ID:            "pay-1",
		ContractID:    "c-1",
		PaymentNumber: 1,
		Amount:        decimal.RequireFromString(amount),
		Status:        status,
		SubmittedAt:   submitted,
	}
	if status == models.PaymentRejected {
		reason := "insufficient proof"
		p.RejectionReason = &reason
	}
	return p
}

func TestAcceptedTotal_OnlyAcceptedCount(t *testing.T) {
	submitted := date(2026, time.March, 3)
	payments := []models.Payment{
		payment("400", models.PaymentAccepted, submitted),
		payment("250", models.PaymentPending, submitted),
		payment("1000", models.PaymentRejected, submitted),
		payment("100.50", models.PaymentAccepted, submitted),
	}

	assert.True(t, AcceptedTotal(payments).Equal(decimal.RequireFromString("500.50")))
}

func TestAcceptedTotal_Empty(t *testing.T) {
	assert.True(t, AcceptedTotal(nil).IsZero())
}

func TestClassifyPeriod(t *testing.T) {
	rent := decimal.RequireFromString("1000")

	tests := []struct {
		name     string
		accepted string
		want     PeriodStatus
	}{
		{"nothing collected", "0", PeriodUnpaid},
		{"partial", "0.01", PeriodPartial},
		{"almost covered", "999.99", PeriodPartial},
		{"exactly covered", "1000", PeriodPaid},
		{"overpaid is still paid", "1200", PeriodPaid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPeriod(rent, decimal.RequireFromString(tt.accepted))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOutstanding_NegativeCreditNotClamped(t *testing.T) {
	rent := decimal.RequireFromString("1000")

	assert.True(t, Outstanding(rent, decimal.RequireFromString("400")).Equal(decimal.RequireFromString("600")))
	assert.True(t, Outstanding(rent, decimal.RequireFromString("1200")).Equal(decimal.RequireFromString("-200")))
}

func TestRejectionThenResubmission(t *testing.T) {
	// A rejected submission is replaced by a fresh accepted one; only the
	// accepted payment participates in the totals.
	rent := decimal.RequireFromString("1000")
	payments := []models.Payment{
		payment("1000", models.PaymentRejected, date(2026, time.March, 2)),
		payment("1000", models.PaymentAccepted, date(2026, time.March, 6)),
	}

	total := AcceptedTotal(payments)
	assert.True(t, total.Equal(rent))
	assert.Equal(t, PeriodPaid, ClassifyPeriod(rent, total))
	assert.True(t, Outstanding(rent, total).IsZero())
}
