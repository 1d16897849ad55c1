package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	feeController "madrasaku_backend/internals/features/fees/controller"
)

// FeeRoutes: mounted inside the admin-guarded group.
func FeeRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := feeController.NewFeeController(db)

	fees := router.Group("/fees")
	fees.Get("/", ctrl.GetAllFees)
	fees.Post("/", ctrl.RecordFee)
	fees.Get("/reports", ctrl.GetFeeReports)
	fees.Put("/:id", ctrl.UpdateFee)
	fees.Delete("/:id", ctrl.DeleteFee)
}
