package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents one tenant submission toward one rent period of a contract.
// A period may accumulate several submissions (partial installments); only
// accepted ones count toward collected totals.
type Payment struct {
	ID              string          `json:"id"`
	ContractID      string          `json:"contract_id"`
	PaymentNumber   int             `json:"payment_number"`
	Amount          decimal.Decimal `json:"amount"`
	Status          PaymentStatus   `json:"status"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
	SubmittedAt     time.Time       `json:"submitted_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Validate checks the submission fields, including the invariant that a
// rejection reason is present exactly when the status is rejected.
func (p *Payment) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.ContractID == "" {
		errs["contract_id"] = "is required"
	}
	if p.PaymentNumber < 1 {
		errs["payment_number"] = "must be at least 1"
	}
	if !p.Amount.IsPositive() {
		errs["amount"] = "must be greater than zero"
	}
	if !p.Status.IsValid() {
		errs["status"] = "is not a known status"
	}
	switch {
	case p.Status == PaymentRejected && (p.RejectionReason == nil || *p.RejectionReason == ""):
		errs["rejection_reason"] = "is required when rejecting"
	case p.Status != PaymentRejected && p.RejectionReason != nil:
		errs["rejection_reason"] = "is only allowed when rejecting"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
