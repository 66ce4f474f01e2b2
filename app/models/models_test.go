package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContract() Contract {
	return Contract{
		PropertyID:    "p-1",
		TenantID:      "t-1",
		OwnerID:       "o-1",
		StartDate:     time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		ExpirationDay: 10,
		Rent:          decimal.RequireFromString("1000"),
	}
}

func TestContractValidate_Valid(t *testing.T) {
	c := validContract()
	assert.Nil(t, c.Validate())
}

func TestContractValidate_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Contract)
		field  string
	}{
		{"missing property", func(c *Contract) { c.PropertyID = "" }, "property_id"},
		{"missing tenant", func(c *Contract) { c.TenantID = "" }, "tenant_id"},
		{"end before start", func(c *Contract) { c.EndDate = c.StartDate.AddDate(0, 0, -1) }, "end_date"},
		{"end equals start", func(c *Contract) { c.EndDate = c.StartDate }, "end_date"},
		{"expiration day zero", func(c *Contract) { c.ExpirationDay = 0 }, "expiration_day"},
		{"expiration day above cap", func(c *Contract) { c.ExpirationDay = 21 }, "expiration_day"},
		{"expiration day way above cap", func(c *Contract) { c.ExpirationDay = 31 }, "expiration_day"},
		{"zero rent", func(c *Contract) { c.Rent = decimal.Zero }, "rent"},
		{"negative rent", func(c *Contract) { c.Rent = decimal.RequireFromString("-1") }, "rent"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validContract()
			tt.mutate(&c)
			errs := c.Validate()
			require.True(t, errs.HasErrors())
			assert.Contains(t, errs, tt.field)
		})
	}
}

func TestPaymentValidate_ReasonIffRejected(t *testing.T) {
	reason := "wrong amount"
	base := Payment{
		ContractID:    "c-1",
		PaymentNumber: 1,
		Amount:        decimal.RequireFromString("500"),
		SubmittedAt:   time.Now(),
	}

	rejected := base
	rejected.Status = PaymentRejected
	errs := rejected.Validate()
	require.True(t, errs.HasErrors())
	assert.Contains(t, errs, "rejection_reason")

	rejected.RejectionReason = &reason
	assert.Nil(t, rejected.Validate())

	accepted := base
	accepted.Status = PaymentAccepted
	accepted.RejectionReason = &reason
	errs = accepted.Validate()
	require.True(t, errs.HasErrors())
	assert.Contains(t, errs, "rejection_reason")
}

func TestPaymentValidate_FieldErrors(t *testing.T) {
	p := Payment{Status: PaymentStatus("bogus")}
	errs := p.Validate()
	require.True(t, errs.HasErrors())
	assert.Contains(t, errs, "contract_id")
	assert.Contains(t, errs, "payment_number")
	assert.Contains(t, errs, "amount")
	assert.Contains(t, errs, "status")
}

func TestValidationErrors_ErrorString(t *testing.T) {
	errs := ValidationErrors{"rent": "must be greater than zero", "end_date": "must be after start date"}
	assert.Equal(t, "end_date: must be after start date; rent: must be greater than zero", errs.Error())
}
