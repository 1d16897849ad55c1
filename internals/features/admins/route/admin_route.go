package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasaku_backend/internals/configs"
	"madrasaku_backend/internals/constants"
	adminController "madrasaku_backend/internals/features/admins/controller"
	authMiddleware "madrasaku_backend/internals/middlewares/auth"
	"madrasaku_backend/internals/middlewares"
)

// AuthRoutes: login/logout are public (rate-limited), me is strict.
func AuthRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAuthController(db)

	auth := router.Group("/auth")
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/logout", ctrl.Logout)
	auth.Get("/me",
		authMiddleware.Guard(db, authMiddleware.GuardOpts{Secret: configs.JWTSecret}),
		ctrl.Me,
	)
}

// AdminRoutes: admin account management is always strict, never demo-tolerant.
func AdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := adminController.NewAdminController(db)

	admins := router.Group("/admins",
		authMiddleware.Guard(db, authMiddleware.GuardOpts{
			Secret:        configs.JWTSecret,
			RequiredRoles: constants.AdminOnly,
		}),
	)
	admins.Get("/", ctrl.GetAllAdmins)
	admins.Post("/", ctrl.CreateAdmin)
	admins.Put("/:id", ctrl.UpdateAdmin)
	admins.Delete("/:id", ctrl.DeleteAdmin)
}
