package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "madrasaku_backend/internals/features/dashboard/controller"
)

// DashboardRoutes: mounted inside the admin-guarded group.
func DashboardRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	dashboard := router.Group("/dashboard")
	dashboard.Get("/stats", ctrl.GetStats)
}
