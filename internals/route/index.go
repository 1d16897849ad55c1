// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasaku_backend/internals/configs"
	adminRoute "madrasaku_backend/internals/features/admins/route"
	attendanceRoute "madrasaku_backend/internals/features/attendance/route"
	dashboardRoute "madrasaku_backend/internals/features/dashboard/route"
	feeRoute "madrasaku_backend/internals/features/fees/route"
	kitchenRoute "madrasaku_backend/internals/features/kitchen/route"
	parentRoute "madrasaku_backend/internals/features/parents/route"
	studentRoute "madrasaku_backend/internals/features/students/route"
	tenantRoute "madrasaku_backend/internals/features/tenants/route"
	authMiddleware "madrasaku_backend/internals/middlewares/auth"
	localeMiddleware "madrasaku_backend/internals/middlewares/locale"
	tenantMiddleware "madrasaku_backend/internals/middlewares/tenant"
)

// SetupRoutes mounts every feature. All business routes run behind locale +
// tenant resolution; the admin group is lenient by configuration (demo mode)
// while /admins and /auth/me stay strict inside their own route files.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	base := app.Group("",
		localeMiddleware.LocaleMiddleware(),
		tenantMiddleware.TenantMiddleware(db),
	)

	// ===================== PUBLIC =====================
	log.Println("[INFO] Mounting auth routes...")
	adminRoute.AuthRoutes(base, db)

	log.Println("[INFO] Mounting parent routes...")
	parentRoute.ParentRoutes(base, db)

	// ===================== STRICT ADMIN =====================
	log.Println("[INFO] Mounting admin account routes...")
	adminRoute.AdminRoutes(base, db)

	// ===================== ADMIN (lenient per config) =====================
	log.Println("[INFO] Mounting admin feature routes...")
	admin := base.Group("",
		authMiddleware.Guard(db, authMiddleware.GuardOpts{
			Secret:         configs.JWTSecret,
			AllowAnonymous: configs.AllowAnonymous,
		}),
	)

	studentRoute.StudentRoutes(admin, db)
	attendanceRoute.AttendanceRoutes(admin, db)
	feeRoute.FeeRoutes(admin, db)
	kitchenRoute.KitchenRoutes(admin, db)
	dashboardRoute.DashboardRoutes(admin, db)
	tenantRoute.TenantRoutes(admin, db)
}
