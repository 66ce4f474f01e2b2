package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CimimUxMaio/vivvo-sub000/app/config"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/scope"
)

// SetupDashboardRoutes sets up the owner dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(scope.RequireOwner)

	api.Get("/metrics", func(c *fiber.Ctx) error {
		return GetPortfolioMetricsAPI(c, config.GetDB())
	})

	api.Get("/aging", func(c *fiber.Ctx) error {
		return GetOutstandingAgingAPI(c, config.GetDB())
	})

	api.Get("/trend", func(c *fiber.Ctx) error {
		return GetIncomeTrendAPI(c, config.GetDB())
	})
}
