package properties

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/CimimUxMaio/vivvo-sub000/app/database"
	"github.com/CimimUxMaio/vivvo-sub000/app/models"
	"github.com/CimimUxMaio/vivvo-sub000/app/routes/scope"
)

// CreatePropertyRequest is the payload for registering a property
type CreatePropertyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// GetPropertiesAPI returns all non-archived properties of the acting owner
func GetPropertiesAPI(c *fiber.Ctx, db *sql.DB) error {
	properties, err := database.GetProperties(db, scope.OwnerID(c))
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch properties")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    properties,
	})
}

// GetPropertyAPI returns a single property by ID
func GetPropertyAPI(c *fiber.Ctx, db *sql.DB) error {
	property, err := database.GetProperty(db, scope.OwnerID(c), c.Params("id"))
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Property not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch property")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    property,
	})
}

// CreatePropertyAPI registers a new property for the acting owner
func CreatePropertyAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CreatePropertyRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	property := &models.Property{
		OwnerID: scope.OwnerID(c),
		Name:    req.Name,
		Address: req.Address,
	}
	if errs := property.Validate(); errs.HasErrors() {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"success": false,
			"errors":  errs,
		})
	}

	if err := database.CreateProperty(db, property); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create property")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    property,
	})
}

// ArchivePropertyAPI soft-deletes a property, keeping its history
func ArchivePropertyAPI(c *fiber.Ctx, db *sql.DB) error {
	err := database.ArchiveProperty(db, scope.OwnerID(c), c.Params("id"))
	if err == database.ErrNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Property not found")
	}
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to archive property")
	}

	return c.JSON(fiber.Map{
		"success": true,
	})
}
