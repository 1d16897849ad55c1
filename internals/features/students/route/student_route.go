package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "madrasaku_backend/internals/features/students/controller"
)

// StudentRoutes: mounted inside the admin-guarded group.
func StudentRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)

	students := router.Group("/students")
	students.Get("/", ctrl.GetAllStudents)
	students.Post("/", ctrl.CreateStudent)
	students.Get("/:id", ctrl.GetStudentByID)
	students.Put("/:id", ctrl.UpdateStudent)
	students.Delete("/:id", ctrl.DeleteStudent)
}
