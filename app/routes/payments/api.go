package payments

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/CimimUxMaio/vivvo-sub000/app/database"
	"github.com/CimimUxMaio/vivvo-sub000/app/models"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/scope"
	"github.com/CimimUxMaio/vivvo-sub000/app/services"
)

// SubmitPaymentRequest is the payload for a tenant's payment submission
type SubmitPaymentRequest struct {
	ContractID    string `json:"contract_id"`
	PaymentNumber int    `json:"payment_number"`
	Amount        string `json:"amount"`
}

// RejectPaymentRequest carries the mandatory reason for a rejection
type RejectPaymentRequest struct {
	Reason string `json:"reason"`
}

// SubmitPaymentAPI records a pending payment toward one rent period
func SubmitPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req SubmitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"errors":  models.ValidationErrors{"amount": "must be a decimal amount"},
		})
	}

	payment := &models.Payment{
		ContractID:    req.ContractID,
		PaymentNumber: req.PaymentNumber,
		Amount:        amount,
		SubmittedAt:   time.Now().UTC(),
	}

	err = services.SubmitPayment(db, emitter, payment)
	var fieldErrs models.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"errors":  fieldErrs,
		})
	}
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Contract not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to submit payment")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    payment,
	})
}

// AcceptPaymentAPI marks a pending payment as accepted
func AcceptPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	err := services.ReviewPayment(db, emitter, scope.OwnerID(c), c.Params("id"), models.PaymentAccepted, "")
	return reviewResponse(c, err)
}

// RejectPaymentAPI marks a pending payment as rejected, with a reason
func RejectPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req RejectPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	err := services.ReviewPayment(db, emitter, scope.OwnerID(c), c.Params("id"), models.PaymentRejected, req.Reason)
	return reviewResponse(c, err)
}

func reviewResponse(c *fiber.Ctx, err error) error {
	var fieldErrs models.ValidationErrors
	switch {
	case err == nil:
		return c.JSON(fiber.Map{"success": true})
	case errors.As(err, &fieldErrs):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"errors":  fieldErrs,
		})
	case err == database.ErrNotFound:
		return fiber.NewError(fiber.StatusNotFound, "Payment not found")
	case err == services.ErrNotOwner:
		return fiber.NewError(fiber.StatusForbidden, "Payment belongs to another owner's contract")
	case err == services.ErrAlreadyReviewed:
		return fiber.NewError(fiber.StatusConflict, "Payment has already been reviewed")
	default:
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to review payment")
	}
}
