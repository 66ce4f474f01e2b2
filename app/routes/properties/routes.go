package properties

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CimimUxMaio/vivvo-sub000/app/config"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/scope"
)

// SetupPropertiesRoutes sets up the properties routes
func SetupPropertiesRoutes(app *fiber.App) {
	api := app.Group("/api/properties")
	api.Use(scope.RequireOwner)

	api.Get("/", func(c *fiber.Ctx) error {
		return GetPropertiesAPI(c, config.GetDB())
	})

	api.Post("/", func(c *fiber.Ctx) error {
		return CreatePropertyAPI(c, config.GetDB())
	})

	api.Get("/:id", func(c *fiber.Ctx) error {
		return GetPropertyAPI(c, config.GetDB())
	})

	api.Delete("/:id", func(c *fiber.Ctx) error {
		return ArchivePropertyAPI(c, config.GetDB())
	})
}
