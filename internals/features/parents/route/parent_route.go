package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	parentController "madrasaku_backend/internals/features/parents/controller"
	authMiddleware "madrasaku_backend/internals/middlewares/auth"
)

// ParentRoutes: public reads with optional auth.
func ParentRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := parentController.NewParentController(db)

	parents := router.Group("/parents", authMiddleware.OptionalAuth(db))
	parents.Get("/search", ctrl.SearchStudents)
	parents.Get("/student/:id", ctrl.GetStudentProfile)
}
