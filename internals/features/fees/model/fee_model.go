package model

import (
	"time"

	"github.com/google/uuid"

	"madrasaku_backend/internals/helpers/dbtime"
)

const (
	FeeStatusPaid    = "Paid"
	FeeStatusPending = "Pending"
)

// At most one row per (tenant, student, month, year); POST is record-or-update.
type FeeModel struct {
	FeeID        uuid.UUID `gorm:"column:fee_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"fee_id"`
	FeeTenantID  uuid.UUID `gorm:"column:fee_tenant_id;type:uuid;not null;index;uniqueIndex:uq_fee,priority:1" json:"fee_tenant_id"`
	FeeStudentID uuid.UUID `gorm:"column:fee_student_id;type:uuid;not null;index;uniqueIndex:uq_fee,priority:2" json:"fee_student_id"`

	FeeMonth int `gorm:"column:fee_month;not null;uniqueIndex:uq_fee,priority:3" json:"fee_month"`
	FeeYear  int `gorm:"column:fee_year;not null;uniqueIndex:uq_fee,priority:4" json:"fee_year"`

	FeeAmount     int `gorm:"column:fee_amount;not null" json:"fee_amount"`
	FeePaidAmount int `gorm:"column:fee_paid_amount;not null;default:0" json:"fee_paid_amount"`
	// Derived on every write: max(0, amount - paid). Never trusted from input.
	FeeDueAmount int `gorm:"column:fee_due_amount;not null;default:0" json:"fee_due_amount"`

	FeePaymentDate *dbtime.Date `gorm:"column:fee_payment_date" json:"fee_payment_date"`
	FeePaymentMode string       `gorm:"column:fee_payment_mode;type:varchar(20)" json:"fee_payment_mode"`
	FeeStatus      string       `gorm:"column:fee_status;type:varchar(10);not null;default:Pending" json:"fee_status"`

	FeeIsDemo bool `gorm:"column:fee_is_demo;not null;default:false" json:"fee_is_demo"`

	FeeCreatedAt time.Time `gorm:"column:fee_created_at;autoCreateTime" json:"fee_created_at"`
	FeeUpdatedAt time.Time `gorm:"column:fee_updated_at;autoUpdateTime" json:"fee_updated_at"`
}

func (FeeModel) TableName() string {
	return "fees"
}
