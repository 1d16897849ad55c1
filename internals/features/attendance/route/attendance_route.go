package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceController "madrasaku_backend/internals/features/attendance/controller"
)

// AttendanceRoutes: mounted inside the admin-guarded group.
func AttendanceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	attendance := router.Group("/attendance")
	attendance.Get("/", ctrl.GetAllAttendance)
	attendance.Post("/", ctrl.MarkAttendance)
	attendance.Get("/summary", ctrl.GetMonthlySummary)
	attendance.Put("/:id", ctrl.UpdateAttendance)
	attendance.Delete("/:id", ctrl.DeleteAttendance)
}
