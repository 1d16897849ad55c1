package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kitchenController "madrasaku_backend/internals/features/kitchen/controller"
)

// KitchenRoutes: mounted inside the admin-guarded group.
func KitchenRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := kitchenController.NewKitchenExpenseController(db)

	kitchen := router.Group("/kitchen")
	kitchen.Get("/", ctrl.GetAllExpenses)
	kitchen.Post("/", ctrl.CreateExpense)
	kitchen.Get("/summary", ctrl.GetMonthlySummary)
	kitchen.Put("/:id", ctrl.UpdateExpense)
	kitchen.Delete("/:id", ctrl.DeleteExpense)
}
