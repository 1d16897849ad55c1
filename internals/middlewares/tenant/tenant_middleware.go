// file: internals/middlewares/tenant/tenant_middleware.go
package tenant

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	helper "madrasaku_backend/internals/helpers"
)

// TenantMiddleware resolves which tenant partition a request belongs to:
// X-Tenant-Id header → subdomain → custom domain → the single active default
// tenant. Every scoped route depends on it; an unresolved tenant is a 404.
func TenantMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1) Explicit header wins.
		if h := strings.TrimSpace(c.Get("X-Tenant-Id")); h != "" {
			id, err := uuid.Parse(h)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid X-Tenant-Id header")
			}
			if err := ensureActive(db, "tenant_id = ?", id.String()); err != nil {
				return tenantNotFound(err)
			}
			c.Locals(helper.LocTenantID, id.String())
			return c.Next()
		}

		host := hostname(c)

		// 2) Subdomain (first label of a 3+ label host).
		if sub := subdomain(host); sub != "" {
			if id, err := lookup(db, "tenant_subdomain = ?", sub); err == nil {
				c.Locals(helper.LocTenantID, id)
				return c.Next()
			} else if err != gorm.ErrRecordNotFound {
				return tenantNotFound(err)
			}
		}

		// 3) Full custom domain.
		if host != "" {
			if id, err := lookup(db, "tenant_domain = ?", host); err == nil {
				c.Locals(helper.LocTenantID, id)
				return c.Next()
			} else if err != gorm.ErrRecordNotFound {
				return tenantNotFound(err)
			}
		}

		// 4) Default: the single active tenant.
		id, err := lookup(db, "tenant_is_active = ?", true)
		if err != nil {
			log.Printf("[TENANT] no default tenant resolvable: %v", err)
			return tenantNotFound(err)
		}
		c.Locals(helper.LocTenantID, id)
		return c.Next()
	}
}

func hostname(c *fiber.Ctx) string {
	host := strings.ToLower(strings.TrimSpace(c.Hostname()))
	if i := strings.IndexByte(host, ':'); i > 0 {
		host = host[:i]
	}
	return host
}

func subdomain(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}
	if parts[0] == "www" {
		return ""
	}
	return parts[0]
}

func lookup(db *gorm.DB, cond string, arg any) (string, error) {
	var row struct {
		TenantID uuid.UUID
	}
	err := db.Table("tenants").
		Select("tenant_id").
		Where("tenant_is_active = ?", true).
		Where(cond, arg).
		Order("tenant_created_at ASC").
		First(&row).Error
	if err != nil {
		return "", err
	}
	return row.TenantID.String(), nil
}

func ensureActive(db *gorm.DB, cond string, arg any) error {
	_, err := lookup(db, cond, arg)
	return err
}

func tenantNotFound(err error) error {
	if err == gorm.ErrRecordNotFound {
		return fiber.NewError(fiber.StatusNotFound, "Tenant not found")
	}
	return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
}
