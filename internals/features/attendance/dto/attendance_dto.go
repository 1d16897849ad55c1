package dto

import (
	"madrasaku_backend/internals/features/attendance/model"
	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

// ============================
// Request DTO
// ============================

type MarkAttendanceRequest struct {
	AttendanceStudentID string            `json:"attendance_student_id" validate:"required,uuid"`
	AttendanceDate      dbtime.Date       `json:"attendance_date"`
	AttendanceStatus    string            `json:"attendance_status" validate:"required,oneof=Present Absent"`
	AttendanceRemarks   *locale.TextPatch `json:"attendance_remarks,omitempty"`
}

type UpdateAttendanceRequest struct {
	AttendanceStatus  *string           `json:"attendance_status,omitempty" validate:"omitempty,oneof=Present Absent"`
	AttendanceRemarks *locale.TextPatch `json:"attendance_remarks,omitempty"`
}

// ============================
// Response DTO (localized + denormalized student)
// ============================

type AttendanceDTO struct {
	AttendanceID        string      `json:"attendance_id"`
	AttendanceStudentID string      `json:"attendance_student_id"`
	StudentName         string      `json:"student_name"`
	StudentClass        string      `json:"student_class"`
	StudentCode         string      `json:"student_code"`
	AttendanceDate      dbtime.Date `json:"attendance_date"`
	AttendanceStatus    string      `json:"attendance_status"`
	AttendanceRemarks   string      `json:"attendance_remarks,omitempty"`
}

// AttendanceRow is the join shape the list query scans into.
type AttendanceRow struct {
	model.AttendanceModel
	StudentName  locale.Text `gorm:"column:student_name"`
	StudentClass string      `gorm:"column:student_class"`
	StudentCode  string      `gorm:"column:student_code"`
}

// ============================
// Converter
// ============================

func ToAttendanceDTO(r AttendanceRow, lang string) AttendanceDTO {
	return AttendanceDTO{
		AttendanceID:        r.AttendanceID.String(),
		AttendanceStudentID: r.AttendanceStudentID.String(),
		StudentName:         r.StudentName.Resolve(lang),
		StudentClass:        r.StudentClass,
		StudentCode:         r.StudentCode,
		AttendanceDate:      r.AttendanceDate,
		AttendanceStatus:    r.AttendanceStatus,
		AttendanceRemarks:   r.AttendanceRemarks.Resolve(lang),
	}
}

func ToAttendanceDTOList(rows []AttendanceRow, lang string) []AttendanceDTO {
	result := make([]AttendanceDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, ToAttendanceDTO(r, lang))
	}
	return result
}

// DaySummary is one bucket of the monthly summary report.
type DaySummary struct {
	Date    dbtime.Date `json:"date" gorm:"column:attendance_date"`
	Present int         `json:"present" gorm:"column:present"`
	Absent  int         `json:"absent" gorm:"column:absent"`
}
