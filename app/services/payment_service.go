package services

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/CimimUxMaio/vivvo-sub000/app/database"
	"github.com/CimimUxMaio/vivvo-sub000/app/models"
)

// ErrNotOwner is returned when the acting scope does not own the contract a
// mutation targets. Distinct from database.ErrNotFound on purpose.
var ErrNotOwner = errors.New("contract belongs to another owner")

// ErrAlreadyReviewed is returned when a payment is no longer pending.
var ErrAlreadyReviewed = errors.New("payment has already been reviewed")

// SubmitPayment validates and records a tenant's payment toward one rent
// period. The submission starts pending and awaits the owner's review.
func SubmitPayment(db *sql.DB, emitter EventEmitter, payment *models.Payment) error {
	payment.Status = models.PaymentPending
	payment.RejectionReason = nil
	if errs := payment.Validate(); errs.HasErrors() {
		return errs
	}

	if _, err := database.GetContract(db, payment.ContractID); err != nil {
		return err
	}

	if err := database.CreatePayment(db, payment); err != nil {
		return err
	}

	emitter.Emit("payment.submitted", map[string]interface{}{
		"payment_id":     payment.ID,
		"contract_id":    payment.ContractID,
		"payment_number": payment.PaymentNumber,
	})
	return nil
}

// ReviewPayment applies an owner's accept or reject verdict to a pending
// payment. Only the owner of the payment's contract may review it, and a
// rejection requires a reason.
func ReviewPayment(db *sql.DB, emitter EventEmitter, ownerID, paymentID string, verdict models.PaymentStatus, reason string) error {
	if !verdict.IsTerminal() {
		return fmt.Errorf("invalid verdict %q", verdict)
	}

	payment, err := database.GetPayment(db, paymentID)
	if err != nil {
		return err
	}

	contract, err := database.GetContract(db, payment.ContractID)
	if err != nil {
		return err
	}
	if contract.OwnerID != ownerID {
		return ErrNotOwner
	}

	if payment.Status != models.PaymentPending {
		return ErrAlreadyReviewed
	}

	var reasonPtr *string
	if verdict == models.PaymentRejected {
		if reason == "" {
			return models.ValidationErrors{"rejection_reason": "is required when rejecting"}
		}
		reasonPtr = &reason
	}

	if err := database.UpdatePaymentStatus(db, paymentID, verdict, reasonPtr); err != nil {
		return err
	}

	payload := map[string]interface{}{
		"payment_id":  paymentID,
		"contract_id": payment.ContractID,
		"tenant_id":   contract.TenantID,
	}
	if verdict == models.PaymentAccepted {
		emitter.Emit("payment.accepted", payload)
	} else {
		payload["reason"] = reason
		emitter.Emit("payment.rejected", payload)
	}
	return nil
}
