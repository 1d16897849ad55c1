package model

import (
	"time"

	"github.com/google/uuid"
)

type AdminModel struct {
	AdminID       uuid.UUID `gorm:"column:admin_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"admin_id"`
	AdminTenantID uuid.UUID `gorm:"column:admin_tenant_id;type:uuid;not null;index;uniqueIndex:uq_admin_username,priority:1;uniqueIndex:uq_admin_email,priority:1" json:"admin_tenant_id"`

	AdminUsername    string `gorm:"column:admin_username;type:varchar(100);not null;uniqueIndex:uq_admin_username,priority:2" json:"admin_username"`
	AdminEmail       string `gorm:"column:admin_email;type:varchar(255);not null;uniqueIndex:uq_admin_email,priority:2" json:"admin_email"`
	AdminPassword    string `gorm:"column:admin_password;type:text;not null" json:"-"`
	AdminDisplayName string `gorm:"column:admin_display_name;type:varchar(150)" json:"admin_display_name"`
	AdminRole        string `gorm:"column:admin_role;type:varchar(20);not null;default:admin" json:"admin_role"`

	AdminCreatedAt time.Time `gorm:"column:admin_created_at;autoCreateTime" json:"admin_created_at"`
	AdminUpdatedAt time.Time `gorm:"column:admin_updated_at;autoUpdateTime" json:"admin_updated_at"`
}

func (AdminModel) TableName() string {
	return "admins"
}
