package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CimimUxMaio/vivvo-sub000/app/config"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/scope"
	"github.com/CimimUxMaio/vivvo-sub000/app/services"
)

var emitter services.EventEmitter = services.LogEmitter{}

// SetupPaymentsRoutes sets up the payments routes
func SetupPaymentsRoutes(app *fiber.App) {
	api := app.Group("/api/payments")

	// Tenant-facing submission; review endpoints require the owner scope.
	api.Post("/", func(c *fiber.Ctx) error {
		return SubmitPaymentAPI(c, config.GetDB())
	})

	api.Post("/:id/accept", scope.RequireOwner, func(c *fiber.Ctx) error {
		return AcceptPaymentAPI(c, config.GetDB())
	})

	api.Post("/:id/reject", scope.RequireOwner, func(c *fiber.Ctx) error {
		return RejectPaymentAPI(c, config.GetDB())
	})
}
