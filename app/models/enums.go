package models

// PaymentStatus defines the review status of a tenant payment submission.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentAccepted PaymentStatus = "accepted"
	PaymentRejected PaymentStatus = "rejected"
)

// IsValid reports whether the status is one of the known values.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentAccepted, PaymentRejected:
		return true
	}
	return false
}

// IsTerminal reports whether the status ends the review of a submission.
// A rejected submission may be followed by a fresh one for the same period.
func (s PaymentStatus) IsTerminal() bool {
	return s == PaymentAccepted || s == PaymentRejected
}

// ContractState defines where a contract sits relative to a reference date.
type ContractState string

const (
	ContractUpcoming ContractState = "upcoming"
	ContractActive   ContractState = "active"
	ContractExpired  ContractState = "expired"
)

// OccupancyState defines how a property is reported on the owner dashboard.
type OccupancyState string

const (
	PropertyVacant   OccupancyState = "vacant"
	PropertyUpcoming OccupancyState = "upcoming"
	PropertyOccupied OccupancyState = "occupied"
)
