package contracts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CimimUxMaio/vivvo-sub000/app/config"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/scope"
	"github.com/CimimUxMaio/vivvo-sub000/app/services"
)

var emitter services.EventEmitter = services.LogEmitter{}

// SetupContractsRoutes sets up the contracts routes
func SetupContractsRoutes(app *fiber.App) {
	api := app.Group("/api/contracts")
	api.Use(scope.RequireOwner)

	api.Post("/", func(c *fiber.Ctx) error {
		return CreateContractAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetContractAPI(c, config.GetDB())
	})

	api.Get("/:id/metrics", func(c *fiber.Ctx) error {
		return GetContractMetricsAPI(c, config.GetDB())
	})

	api.Get("/:id/periods", func(c *fiber.Ctx) error {
		return GetContractPeriodsAPI(c, config.GetDB())
	})

	api.Get("/:id/payments", func(c *fiber.Ctx) error {
		return GetContractPaymentsAPI(c, config.GetDB())
	})
}
