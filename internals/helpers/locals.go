package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the auth/tenant middlewares.
const (
	LocUserID   = "user_id"
	LocUserName = "user_name"
	LocUserRole = "user_role"
	LocTenantID = "tenant_id"
)

// GetAdminID returns the authenticated admin id, or uuid.Nil for the
// anonymous demo actor.
func GetAdminID(c *fiber.Ctx) uuid.UUID {
	if v, ok := c.Locals(LocUserID).(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil {
			return id
		}
	}
	return uuid.Nil
}

// GetTenantID returns the tenant resolved for this request. The tenant
// middleware guarantees it is set on every scoped route.
func GetTenantID(c *fiber.Ctx) (uuid.UUID, error) {
	if v, ok := c.Locals(LocTenantID).(string); ok {
		if id, err := uuid.Parse(strings.TrimSpace(v)); err == nil {
			return id, nil
		}
	}
	return uuid.Nil, fiber.NewError(fiber.StatusNotFound, "Tenant not resolved")
}
