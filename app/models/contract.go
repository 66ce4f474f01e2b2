package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expiration day is capped at 20 so a due day always exists in every month;
// the shortest month has 28 days.
const (
	MinExpirationDay = 1
	MaxExpirationDay = 20
)

// Contract binds a tenant to a property for a date range at a monthly rent.
// Rent terms are immutable once active: a renegotiation archives the contract
// and creates a new one, preserving the payment history of the old terms.
type Contract struct {
	ID            string          `json:"id"`
	PropertyID    string          `json:"property_id"`
	TenantID      string          `json:"tenant_id"`
	OwnerID       string          `json:"owner_id"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       time.Time       `json:"end_date"`
	ExpirationDay int             `json:"expiration_day"`
	Rent          decimal.Decimal `json:"rent"`
	Archived      bool            `json:"archived"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Validate checks the rent terms before insertion.
func (c *Contract) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if c.PropertyID == "" {
		errs["property_id"] = "is required"
	}
	if c.TenantID == "" {
		errs["tenant_id"] = "is required"
	}
	if c.StartDate.IsZero() {
		errs["start_date"] = "is required"
	}
	if c.EndDate.IsZero() {
		errs["end_date"] = "is required"
	}
	if !c.StartDate.IsZero() && !c.EndDate.IsZero() && !c.EndDate.After(c.StartDate) {
		errs["end_date"] = "must be after start date"
	}
	if c.ExpirationDay < MinExpirationDay || c.ExpirationDay > MaxExpirationDay {
		errs["expiration_day"] = "must be between 1 and 20"
	}
	if !c.Rent.IsPositive() {
		errs["rent"] = "must be greater than zero"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
