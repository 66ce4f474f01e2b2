package scope

import "github.com/gofiber/fiber/v2"

const ownerKey = "owner_id"

// RequireOwner makes the acting owner scope available to handlers. The scope
// arrives as an opaque identifier in the X-Owner-ID header; establishing who
// may send which identifier is handled upstream of this service.
func RequireOwner(c *fiber.Ctx) error {
	owner := c.Get("X-Owner-ID")
	if owner == "" {
		return fiber.NewError(fiber.StatusUnauthorized, "X-Owner-ID header is required")
	}
	c.Locals(ownerKey, owner)
	return c.Next()
}

// OwnerID returns the acting owner scope stored by RequireOwner.
func OwnerID(c *fiber.Ctx) string {
	owner, _ := c.Locals(ownerKey).(string)
	return owner
}
