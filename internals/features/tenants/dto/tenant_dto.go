package dto

import (
	"time"

	"gorm.io/datatypes"

	"madrasaku_backend/internals/features/tenants/model"
)

// ============================
// Request DTO
// ============================

type UpdateTenantRequest struct {
	TenantName           *string            `json:"tenant_name,omitempty" validate:"omitempty,min=2,max=150"`
	TenantSettings       *datatypes.JSONMap `json:"tenant_settings,omitempty"`
	TenantEnabledModules *[]string          `json:"tenant_enabled_modules,omitempty" validate:"omitempty,dive,oneof=students attendance fees kitchen dashboard parents"`
}

// DemoActionRequest drives the demo-data lifecycle.
type DemoActionRequest struct {
	Action string `json:"action" validate:"required,oneof=enable disable load clear reset"`
}

// ============================
// Response DTO
// ============================

type TenantDTO struct {
	TenantID             string            `json:"tenant_id"`
	TenantName           string            `json:"tenant_name"`
	TenantSubdomain      *string           `json:"tenant_subdomain,omitempty"`
	TenantDomain         *string           `json:"tenant_domain,omitempty"`
	TenantIsActive       bool              `json:"tenant_is_active"`
	TenantDemoMode       bool              `json:"tenant_demo_mode"`
	TenantDemoDataLoaded bool              `json:"tenant_demo_data_loaded"`
	TenantSettings       datatypes.JSONMap `json:"tenant_settings"`
	TenantEnabledModules []string          `json:"tenant_enabled_modules"`
	TenantPlan           string            `json:"tenant_plan"`
	TenantPlanStartsAt   *time.Time        `json:"tenant_plan_starts_at,omitempty"`
	TenantPlanEndsAt     *time.Time        `json:"tenant_plan_ends_at,omitempty"`
}

type DemoStatusDTO struct {
	TenantDemoMode       bool           `json:"tenant_demo_mode"`
	TenantDemoDataLoaded bool           `json:"tenant_demo_data_loaded"`
	DemoRecordCounts     map[string]int `json:"demo_record_counts"`
}

// ============================
// Converter
// ============================

func ToTenantDTO(m model.TenantModel) TenantDTO {
	return TenantDTO{
		TenantID:             m.TenantID.String(),
		TenantName:           m.TenantName,
		TenantSubdomain:      m.TenantSubdomain,
		TenantDomain:         m.TenantDomain,
		TenantIsActive:       m.TenantIsActive,
		TenantDemoMode:       m.TenantDemoMode,
		TenantDemoDataLoaded: m.TenantDemoDataLoaded,
		TenantSettings:       m.TenantSettings,
		TenantEnabledModules: m.TenantEnabledModules,
		TenantPlan:           m.TenantPlan,
		TenantPlanStartsAt:   m.TenantPlanStartsAt,
		TenantPlanEndsAt:     m.TenantPlanEndsAt,
	}
}
