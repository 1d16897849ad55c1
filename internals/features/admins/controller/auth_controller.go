package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"madrasaku_backend/internals/configs"
	"madrasaku_backend/internals/features/admins/dto"
	"madrasaku_backend/internals/features/admins/model"
	helper "madrasaku_backend/internals/helpers"
	authMiddleware "madrasaku_backend/internals/middlewares/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =============================
// Login
// =============================
// POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := helper.ValidateStruct(&body); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var admin model.AdminModel
	if err := ctrl.DB.
		Where("admin_tenant_id = ?", tenantID).
		Where("admin_username = ? OR admin_email = ?", body.Username, body.Username).
		First(&admin).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.AdminPassword), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	token, expiresAt, err := issueToken(admin)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.CookieName,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   configs.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})

	return helper.JsonOK(c, "Login successful", dto.LoginResponse{
		Token: token,
		Admin: dto.ToAdminDTO(admin),
	})
}

// =============================
// Me
// =============================
// GET /auth/me (strict)
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	adminID := helper.GetAdminID(c)

	var admin model.AdminModel
	if err := ctrl.DB.First(&admin, "admin_id = ?", adminID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Admin not found")
	}
	return helper.JsonOK(c, "", dto.ToAdminDTO(admin))
}

// =============================
// Logout
// =============================
// POST /auth/logout
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authMiddleware.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   configs.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
	return helper.JsonOK(c, "Logged out", nil)
}

func issueToken(admin model.AdminModel) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(time.Duration(configs.TokenTTLHours) * time.Hour)
	claims := jwt.MapClaims{
		"id":       admin.AdminID.String(),
		"username": admin.AdminUsername,
		"role":     admin.AdminRole,
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
	return token, expiresAt, err
}
