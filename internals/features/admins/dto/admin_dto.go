package dto

import (
	"time"

	"madrasaku_backend/internals/features/admins/model"
)

// ============================
// Request DTO
// ============================

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type CreateAdminRequest struct {
	AdminUsername    string `json:"admin_username" validate:"required,min=3,max=100"`
	AdminEmail       string `json:"admin_email" validate:"required,email"`
	AdminPassword    string `json:"admin_password" validate:"required,min=6"`
	AdminDisplayName string `json:"admin_display_name" validate:"required,min=2,max=150"`
	AdminRole        string `json:"admin_role" validate:"required,oneof=admin parent"`
}

type UpdateAdminRequest struct {
	AdminEmail       *string `json:"admin_email,omitempty" validate:"omitempty,email"`
	AdminPassword    *string `json:"admin_password,omitempty" validate:"omitempty,min=6"`
	AdminDisplayName *string `json:"admin_display_name,omitempty" validate:"omitempty,min=2,max=150"`
	AdminRole        *string `json:"admin_role,omitempty" validate:"omitempty,oneof=admin parent"`
}

// ============================
// Response DTO
// ============================

type AdminDTO struct {
	AdminID          string    `json:"admin_id"`
	AdminUsername    string    `json:"admin_username"`
	AdminEmail       string    `json:"admin_email"`
	AdminDisplayName string    `json:"admin_display_name"`
	AdminRole        string    `json:"admin_role"`
	AdminCreatedAt   time.Time `json:"admin_created_at"`
}

type LoginResponse struct {
	Token string   `json:"token"`
	Admin AdminDTO `json:"admin"`
}

// ============================
// Converter
// ============================

func ToAdminDTO(m model.AdminModel) AdminDTO {
	return AdminDTO{
		AdminID:          m.AdminID.String(),
		AdminUsername:    m.AdminUsername,
		AdminEmail:       m.AdminEmail,
		AdminDisplayName: m.AdminDisplayName,
		AdminRole:        m.AdminRole,
		AdminCreatedAt:   m.AdminCreatedAt,
	}
}
