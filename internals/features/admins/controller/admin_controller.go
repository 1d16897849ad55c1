package controller

import (
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"madrasaku_backend/internals/features/admins/dto"
	"madrasaku_backend/internals/features/admins/model"
	helper "madrasaku_backend/internals/helpers"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// =============================
// List Admins
// =============================
// GET /admins (strict, admin role)
func (ctrl *AdminController) GetAllAdmins(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var admins []model.AdminModel
	if err := ctrl.DB.
		Where("admin_tenant_id = ?", tenantID).
		Order("admin_created_at ASC").
		Find(&admins).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve admins")
	}

	result := make([]dto.AdminDTO, 0, len(admins))
	for _, a := range admins {
		result = append(result, dto.ToAdminDTO(a))
	}
	return helper.JsonList(c, "", result, nil)
}

// =============================
// Create Admin
// =============================
// POST /admins (strict, admin role)
func (ctrl *AdminController) CreateAdmin(c *fiber.Ctx) error {
	var body dto.CreateAdminRequest
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

	hash, err := bcrypt.GenerateFromPassword([]byte(body.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	admin := model.AdminModel{
		AdminTenantID:    tenantID,
		AdminUsername:    body.AdminUsername,
		AdminEmail:       body.AdminEmail,
		AdminPassword:    string(hash),
		AdminDisplayName: body.AdminDisplayName,
		AdminRole:        body.AdminRole,
	}
	if err := ctrl.DB.Create(&admin).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Username or email already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create admin")
	}

	return helper.JsonCreated(c, "Admin created", dto.ToAdminDTO(admin))
}

// =============================
// Update Admin
// =============================
// PUT /admins/:id (strict, admin role)
func (ctrl *AdminController) UpdateAdmin(c *fiber.Ctx) error {
	id := c.Params("id")

	var body dto.UpdateAdminRequest
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
		First(&admin, "admin_id = ? AND admin_tenant_id = ?", id, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
	}

	if body.AdminEmail != nil {
		admin.AdminEmail = *body.AdminEmail
	}
	if body.AdminDisplayName != nil {
		admin.AdminDisplayName = *body.AdminDisplayName
	}
	if body.AdminRole != nil {
		admin.AdminRole = *body.AdminRole
	}
	if body.AdminPassword != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*body.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		admin.AdminPassword = string(hash)
	}

	if err := ctrl.DB.Save(&admin).Error; err != nil {
		if helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update admin")
	}
	return helper.JsonUpdated(c, "Admin updated", dto.ToAdminDTO(admin))
}

// =============================
// Delete Admin
// =============================
// DELETE /admins/:id (strict, admin role)
func (ctrl *AdminController) DeleteAdmin(c *fiber.Ctx) error {
	id := c.Params("id")

	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	res := ctrl.DB.Delete(&model.AdminModel{}, "admin_id = ? AND admin_tenant_id = ?", id, tenantID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete admin")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Admin not found")
	}
	return helper.JsonDeleted(c, "Admin deleted", fiber.Map{"admin_id": id})
}
