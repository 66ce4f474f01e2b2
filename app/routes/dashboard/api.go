package dashboard

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/CimimUxMaio/vivvo-sub000/app/database"
	"github.com/CimimUxMaio/vivvo-sub000/app/engine"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/scope"
	"github.com/CimimUxMaio/vivvo-sub000/app/services"
)

const defaultTrendMonths = 6

// GetPortfolioMetricsAPI returns one summary row per property of the acting owner
func GetPortfolioMetricsAPI(c *fiber.Ctx, db *sql.DB) error {
	today, err := asOfDate(c)
	if err != nil {
		return err
	}

	properties, err := database.GetProperties(db, scope.OwnerID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch properties")
	}
	ledgers, err := services.LoadPropertyLedgers(db, scope.OwnerID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch contracts")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    engine.PropertySummaries(properties, ledgers, today),
		"as_of":   today.Format("2006-01-02"),
	})
}

// GetOutstandingAgingAPI returns the aging buckets across the owner's active contracts
func GetOutstandingAgingAPI(c *fiber.Ctx, db *sql.DB) error {
	today, err := asOfDate(c)
	if err != nil {
		return err
	}

	ledgers, err := services.LoadActiveLedgers(db, scope.OwnerID(c), today)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch contracts")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    engine.OutstandingAging(ledgers, today),
		"as_of":   today.Format("2006-01-02"),
	})
}

// GetIncomeTrendAPI returns the trailing expected-versus-received series
func GetIncomeTrendAPI(c *fiber.Ctx, db *sql.DB) error {
	today, err := asOfDate(c)
	if err != nil {
		return err
	}

	months := defaultTrendMonths
	if raw := c.Query("months"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 36 {
			return fiber.NewError(fiber.StatusBadRequest, "months must be an integer between 1 and 36")
		}
		months = parsed
	}

	ledgers, err := services.LoadActiveLedgers(db, scope.OwnerID(c), today)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch contracts")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    engine.IncomeTrend(ledgers, today, months),
		"as_of":   today.Format("2006-01-02"),
	})
}

// asOfDate resolves the reference date from the as_of query parameter,
// defaulting to wall-clock today. Dates only enter the system here.
func asOfDate(c *fiber.Ctx) (time.Time, error) {
	raw := c.Query("as_of")
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	parsed, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, "as_of must be formatted YYYY-MM-DD")
	}
	return parsed, nil
}
