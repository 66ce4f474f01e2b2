package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/CimimUxMaio/vivvo-sub000/app/config"
	"github.com/CimimUxMaio/vivvo-sub000/app/database"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/contracts"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/dashboard"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/payments"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/properties"
	"github.com/CimimUxMaio/vivvo-sub000/app/services"
)

// customErrorHandler renders every handler error as the API's JSON envelope
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	config.InitDB()

	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	app.Use(cors.New())
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "status": "ok"})
	})

	properties.SetupPropertiesRoutes(app)
	contracts.SetupContractsRoutes(app)
	payments.SetupPaymentsRoutes(app)
	dashboard.SetupDashboardRoutes(app)

	services.StartScheduler(config.GetDB())

	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
