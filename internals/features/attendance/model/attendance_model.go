package model

import (
	"time"

	"github.com/google/uuid"

	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

const (
	AttendanceStatusPresent = "Present"
	AttendanceStatusAbsent  = "Absent"
)

// At most one row per (tenant, student, date); POST is mark-or-update.
type AttendanceModel struct {
	AttendanceID        uuid.UUID `gorm:"column:attendance_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"attendance_id"`
	AttendanceTenantID  uuid.UUID `gorm:"column:attendance_tenant_id;type:uuid;not null;index;uniqueIndex:uq_attendance,priority:1" json:"attendance_tenant_id"`
	AttendanceStudentID uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;index;uniqueIndex:uq_attendance,priority:2" json:"attendance_student_id"`

	AttendanceDate    dbtime.Date `gorm:"column:attendance_date;not null;uniqueIndex:uq_attendance,priority:3" json:"attendance_date"`
	AttendanceStatus  string      `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`
	AttendanceRemarks locale.Text `gorm:"column:attendance_remarks;type:jsonb" json:"attendance_remarks"`

	AttendanceIsDemo bool `gorm:"column:attendance_is_demo;not null;default:false" json:"attendance_is_demo"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
