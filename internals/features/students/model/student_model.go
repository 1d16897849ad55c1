package model

import (
	"time"

	"github.com/google/uuid"

	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

const (
	StudentStatusActive   = "Active"
	StudentStatusInactive = "Inactive"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"column:student_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"student_id"`
	StudentTenantID uuid.UUID `gorm:"column:student_tenant_id;type:uuid;not null;index;uniqueIndex:uq_student_code,priority:1" json:"student_tenant_id"`

	// Year-prefixed sequence, unique per tenant+year (e.g. STU-2026-0001).
	StudentCode string `gorm:"column:student_code;type:varchar(20);not null;uniqueIndex:uq_student_code,priority:2" json:"student_code"`

	StudentName       locale.Text `gorm:"column:student_name;type:jsonb;not null" json:"student_name"`
	StudentFatherName locale.Text `gorm:"column:student_father_name;type:jsonb" json:"student_father_name"`
	StudentMotherName locale.Text `gorm:"column:student_mother_name;type:jsonb" json:"student_mother_name"`
	StudentAddress    locale.Text `gorm:"column:student_address;type:jsonb" json:"student_address"`

	StudentClass   string      `gorm:"column:student_class;type:varchar(50);not null;index" json:"student_class"`
	StudentSection string      `gorm:"column:student_section;type:varchar(20)" json:"student_section"`
	StudentDOB     dbtime.Date `gorm:"column:student_dob" json:"student_dob"`
	StudentPhone   string      `gorm:"column:student_phone;type:varchar(20)" json:"student_phone"`

	StudentAdmissionDate dbtime.Date `gorm:"column:student_admission_date;not null" json:"student_admission_date"`
	StudentStatus        string      `gorm:"column:student_status;type:varchar(10);not null;default:Active" json:"student_status"`

	StudentIsDemo bool `gorm:"column:student_is_demo;not null;default:false" json:"student_is_demo"`

	StudentCreatedAt time.Time `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}
