package contracts

import (
	"database/sql"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/CimimUxMaio/vivvo-sub000/app/database"
	"github.com/CimimUxMaio/vivvo-sub000/app/engine"
	"github.com/CimimUxMaio/vivvo-sub000/app/models"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/scope"
	"github.com/CimimUxMaio/vivvo-sub000/app/services"
)

// CreateContractRequest is the payload for assigning a tenant to a property
type CreateContractRequest struct {
	PropertyID    string `json:"property_id"`
	TenantID      string `json:"tenant_id"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	ExpirationDay int    `json:"expiration_day"`
	Rent          string `json:"rent"`
}

// CreateContractAPI creates a contract, superseding any active one on the property
func CreateContractAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreateContractRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	contract, errs := contractFromRequest(req)
	if errs.HasErrors() {
		return validationResponse(c, errs)
	}

	err := services.CreateContract(db, emitter, scope.OwnerID(c), contract)
	var fieldErrs models.ValidationErrors
	if errors.As(err, &fieldErrs) {
		return validationResponse(c, fieldErrs)
	}
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Property not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create contract")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    contract,
	})
}

// GetContractAPI returns a single contract owned by the acting scope
func GetContractAPI(c *fiber.Ctx, db *sql.DB) error {
	contract, err := ownedContract(c, db)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    contract,
	})
}

// GetContractMetricsAPI returns the point-in-time financial summary of a contract
func GetContractMetricsAPI(c *fiber.Ctx, db *sql.DB) error {
	contract, err := ownedContract(c, db)
	if err != nil {
		return err
	}
	today, err := asOfDate(c)
	if err != nil {
		return err
	}

	byPeriod, err := database.GetPaymentsByPeriod(db, contract.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    engine.MetricsForContract(contract, byPeriod, today),
		"as_of":   today.Format("2006-01-02"),
	})
}

// GetContractPeriodsAPI returns the per-period status table of a contract,
// past periods first, then the upcoming ones through the contract end
func GetContractPeriodsAPI(c *fiber.Ctx, db *sql.DB) error {
	contract, err := ownedContract(c, db)
	if err != nil {
		return err
	}
	today, err := asOfDate(c)
	if err != nil {
		return err
	}

	byPeriod, err := database.GetPaymentsByPeriod(db, contract.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"data":     engine.PeriodTable(contract, byPeriod, today),
		"upcoming": engine.UpcomingPeriods(contract, today),
		"as_of":    today.Format("2006-01-02"),
	})
}

// GetContractPaymentsAPI returns every payment recorded against a contract
func GetContractPaymentsAPI(c *fiber.Ctx, db *sql.DB) error {
	contract, err := ownedContract(c, db)
	if err != nil {
		return err
	}

	payments, err := database.GetPaymentsForContract(db, contract.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    payments,
	})
}

// ownedContract loads the contract in :id and checks it belongs to the acting
// owner, keeping missing and unauthorized distinguishable.
func ownedContract(c *fiber.Ctx, db *sql.DB) (*models.Contract, error) {
	contract, err := database.GetContract(db, c.Params("id"))
	if err == database.ErrNotFound {
		return nil, fiber.NewError(fiber.StatusNotFound, "Contract not found")
	}
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch contract")
	}
	if contract.OwnerID != scope.OwnerID(c) {
		return nil, fiber.NewError(fiber.StatusForbidden, "Contract belongs to another owner")
	}
	return contract, nil
}

func contractFromRequest(req CreateContractRequest) (*models.Contract, models.ValidationErrors) {
	errs := models.ValidationErrors{}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		errs["start_date"] = "must be formatted YYYY-MM-DD"
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		errs["end_date"] = "must be formatted YYYY-MM-DD"
	}
	rent, err := decimal.NewFromString(req.Rent)
	if err != nil {
		errs["rent"] = "must be a decimal amount"
	}
	if errs.HasErrors() {
		return nil, errs
	}

	return &models.Contract{
		PropertyID:    req.PropertyID,
		TenantID:      req.TenantID,
		StartDate:     start,
		EndDate:       end,
		ExpirationDay: req.ExpirationDay,
		Rent:          rent,
	}, nil
}

func validationResponse(c *fiber.Ctx, errs models.ValidationErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"success": false,
		"errors":  errs,
	})
}
