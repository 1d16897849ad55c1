package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tenantController "madrasaku_backend/internals/features/tenants/controller"
)

// TenantRoutes: mounted inside the admin-guarded group.
func TenantRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := tenantController.NewTenantController(db)

	tenant := router.Group("/tenant")
	tenant.Get("/", ctrl.GetTenant)
	tenant.Put("/", ctrl.UpdateTenant)
	tenant.Post("/demo", ctrl.DemoAction)
	tenant.Get("/demo", ctrl.GetDemoStatus)
}
