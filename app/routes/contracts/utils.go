package contracts

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// asOfDate resolves the reference date for date-sensitive calculations: the
// as_of query parameter when present, wall-clock today otherwise. The clock is
// only ever read here at the boundary, never inside the engine.
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
