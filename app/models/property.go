package models

import "time"

// Property represents a rental unit owned by a landlord account.
type Property struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Validate checks the fields a caller must supply before insertion.
func (p *Property) Validate() ValidationErrors {
	errs := ValidationErrors{}
	if p.Name == "" {
		errs["name"] = "is required"
	}
	if p.Address == "" {
		errs["address"] = "is required"
	}
	if p.OwnerID == "" {
		errs["owner_id"] = "is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
