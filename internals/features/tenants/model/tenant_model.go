package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

type TenantModel struct {
	TenantID   uuid.UUID `gorm:"column:tenant_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"tenant_id"`
	TenantName string    `gorm:"column:tenant_name;type:varchar(150);not null" json:"tenant_name"`

	TenantSubdomain *string `gorm:"column:tenant_subdomain;type:varchar(63);uniqueIndex" json:"tenant_subdomain,omitempty"`
	TenantDomain    *string `gorm:"column:tenant_domain;type:varchar(255);uniqueIndex" json:"tenant_domain,omitempty"`

	TenantIsActive       bool `gorm:"column:tenant_is_active;not null;default:true" json:"tenant_is_active"`
	TenantDemoMode       bool `gorm:"column:tenant_demo_mode;not null;default:false" json:"tenant_demo_mode"`
	TenantDemoDataLoaded bool `gorm:"column:tenant_demo_data_loaded;not null;default:false" json:"tenant_demo_data_loaded"`

	// settings: primary_language, timezone, currency, academic_year
	TenantSettings       datatypes.JSONMap `gorm:"column:tenant_settings;type:jsonb" json:"tenant_settings"`
	TenantEnabledModules pq.StringArray    `gorm:"column:tenant_enabled_modules;type:text[]" json:"tenant_enabled_modules"`

	TenantPlan         string     `gorm:"column:tenant_plan;type:varchar(30);not null;default:free" json:"tenant_plan"`
	TenantPlanStartsAt *time.Time `gorm:"column:tenant_plan_starts_at" json:"tenant_plan_starts_at,omitempty"`
	TenantPlanEndsAt   *time.Time `gorm:"column:tenant_plan_ends_at" json:"tenant_plan_ends_at,omitempty"`

	TenantCreatedAt time.Time `gorm:"column:tenant_created_at;autoCreateTime" json:"tenant_created_at"`
	TenantUpdatedAt time.Time `gorm:"column:tenant_updated_at;autoUpdateTime" json:"tenant_updated_at"`
}

func (TenantModel) TableName() string {
	return "tenants"
}
