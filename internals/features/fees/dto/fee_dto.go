package dto

import (
	"madrasaku_backend/internals/features/fees/model"
	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

// ============================
// Request DTO
// ============================

type RecordFeeRequest struct {
	FeeStudentID   string       `json:"fee_student_id" validate:"required,uuid"`
	FeeMonth       int          `json:"fee_month" validate:"required,gte=1,lte=12"`
	FeeYear        int          `json:"fee_year" validate:"required,gte=2000,lte=2100"`
	FeeAmount      int          `json:"fee_amount" validate:"required,gte=0"`
	FeePaidAmount  int          `json:"fee_paid_amount" validate:"gte=0"`
	FeePaymentDate *dbtime.Date `json:"fee_payment_date,omitempty"`
	FeePaymentMode string       `json:"fee_payment_mode" validate:"omitempty,oneof=Cash Online Cheque"`
	FeeStatus      string       `json:"fee_status" validate:"omitempty,oneof=Paid Pending"`
}

type UpdateFeeRequest struct {
	FeeAmount      *int         `json:"fee_amount,omitempty" validate:"omitempty,gte=0"`
	FeePaidAmount  *int         `json:"fee_paid_amount,omitempty" validate:"omitempty,gte=0"`
	FeePaymentDate *dbtime.Date `json:"fee_payment_date,omitempty"`
	FeePaymentMode *string      `json:"fee_payment_mode,omitempty" validate:"omitempty,oneof=Cash Online Cheque"`
	FeeStatus      *string      `json:"fee_status,omitempty" validate:"omitempty,oneof=Paid Pending"`
}

// ============================
// Response DTO (localized + denormalized student)
// ============================

type FeeDTO struct {
	FeeID          string       `json:"fee_id"`
	FeeStudentID   string       `json:"fee_student_id"`
	StudentName    string       `json:"student_name"`
	StudentClass   string       `json:"student_class"`
	StudentCode    string       `json:"student_code"`
	FeeMonth       int          `json:"fee_month"`
	FeeYear        int          `json:"fee_year"`
	FeeAmount      int          `json:"fee_amount"`
	FeePaidAmount  int          `json:"fee_paid_amount"`
	FeeDueAmount   int          `json:"fee_due_amount"`
	FeePaymentDate *dbtime.Date `json:"fee_payment_date,omitempty"`
	FeePaymentMode string       `json:"fee_payment_mode,omitempty"`
	FeeStatus      string       `json:"fee_status"`
}

// FeeRow is the join shape the list query scans into.
type FeeRow struct {
	model.FeeModel
	StudentName  locale.Text `gorm:"column:student_name"`
	StudentClass string      `gorm:"column:student_class"`
	StudentCode  string      `gorm:"column:student_code"`
}

// ============================
// Converter
// ============================

func ToFeeDTO(r FeeRow, lang string) FeeDTO {
	return FeeDTO{
		FeeID:          r.FeeID.String(),
		FeeStudentID:   r.FeeStudentID.String(),
		StudentName:    r.StudentName.Resolve(lang),
		StudentClass:   r.StudentClass,
		StudentCode:    r.StudentCode,
		FeeMonth:       r.FeeMonth,
		FeeYear:        r.FeeYear,
		FeeAmount:      r.FeeAmount,
		FeePaidAmount:  r.FeePaidAmount,
		FeeDueAmount:   r.FeeDueAmount,
		FeePaymentDate: r.FeePaymentDate,
		FeePaymentMode: r.FeePaymentMode,
		FeeStatus:      r.FeeStatus,
	}
}

func ToFeeDTOList(rows []FeeRow, lang string) []FeeDTO {
	result := make([]FeeDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, ToFeeDTO(r, lang))
	}
	return result
}

// ============================
// Reports
// ============================

type MonthlyFeeReport struct {
	FeeMonth  int `json:"fee_month" gorm:"column:fee_month"`
	FeeYear   int `json:"fee_year" gorm:"column:fee_year"`
	Total     int `json:"total" gorm:"column:total"`
	Collected int `json:"collected" gorm:"column:collected"`
	Due       int `json:"due" gorm:"column:due"`
	Records   int `json:"records" gorm:"column:records"`
}

type StudentFeeReport struct {
	FeeStudentID string      `json:"fee_student_id" gorm:"column:fee_student_id"`
	StudentName  locale.Text `json:"-" gorm:"column:student_name"`
	Name         string      `json:"student_name" gorm:"-"`
	StudentCode  string      `json:"student_code" gorm:"column:student_code"`
	Total        int         `json:"total" gorm:"column:total"`
	Collected    int         `json:"collected" gorm:"column:collected"`
	Due          int         `json:"due" gorm:"column:due"`
}
