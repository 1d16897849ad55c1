package dto

import (
	"time"

	"madrasaku_backend/internals/features/students/model"
	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

// ============================
// Create & Update Request DTO
// ============================

// LocalizedInput requires all three language variants on create.
type LocalizedInput struct {
	En string `json:"en" validate:"required,min=1,max=255"`
	Hi string `json:"hi" validate:"required,min=1,max=255"`
	Ur string `json:"ur" validate:"required,min=1,max=255"`
}

func (l LocalizedInput) Text() locale.Text {
	return locale.Text{En: l.En, Hi: l.Hi, Ur: l.Ur}
}

type CreateStudentRequest struct {
	StudentName       LocalizedInput  `json:"student_name" validate:"required"`
	StudentFatherName LocalizedInput  `json:"student_father_name" validate:"required"`
	StudentMotherName *LocalizedInput `json:"student_mother_name,omitempty"`
	StudentAddress    *LocalizedInput `json:"student_address,omitempty"`

	StudentClass   string `json:"student_class" validate:"required,min=1,max=50"`
	StudentSection string `json:"student_section" validate:"omitempty,max=20"`
	StudentPhone   string `json:"student_phone" validate:"omitempty,min=7,max=20"`

	StudentDOB           dbtime.Date `json:"student_dob"`
	StudentAdmissionDate dbtime.Date `json:"student_admission_date"`
	StudentStatus        string      `json:"student_status" validate:"omitempty,oneof=Active Inactive"`
}

type UpdateStudentRequest struct {
	StudentName       *locale.TextPatch `json:"student_name,omitempty"`
	StudentFatherName *locale.TextPatch `json:"student_father_name,omitempty"`
	StudentMotherName *locale.TextPatch `json:"student_mother_name,omitempty"`
	StudentAddress    *locale.TextPatch `json:"student_address,omitempty"`

	StudentClass   *string `json:"student_class,omitempty" validate:"omitempty,min=1,max=50"`
	StudentSection *string `json:"student_section,omitempty" validate:"omitempty,max=20"`
	StudentPhone   *string `json:"student_phone,omitempty" validate:"omitempty,min=7,max=20"`

	StudentDOB           *dbtime.Date `json:"student_dob,omitempty"`
	StudentAdmissionDate *dbtime.Date `json:"student_admission_date,omitempty"`
	StudentStatus        *string      `json:"student_status,omitempty" validate:"omitempty,oneof=Active Inactive"`
}

// ============================
// Response DTO (localized)
// ============================

type StudentDTO struct {
	StudentID            string      `json:"student_id"`
	StudentCode          string      `json:"student_code"`
	StudentName          string      `json:"student_name"`
	StudentFatherName    string      `json:"student_father_name"`
	StudentMotherName    string      `json:"student_mother_name,omitempty"`
	StudentAddress       string      `json:"student_address,omitempty"`
	StudentClass         string      `json:"student_class"`
	StudentSection       string      `json:"student_section,omitempty"`
	StudentDOB           dbtime.Date `json:"student_dob"`
	StudentPhone         string      `json:"student_phone,omitempty"`
	StudentAdmissionDate dbtime.Date `json:"student_admission_date"`
	StudentStatus        string      `json:"student_status"`
	StudentIsDemo        bool        `json:"student_is_demo,omitempty"`
	StudentCreatedAt     time.Time   `json:"student_created_at"`
}

// StudentDetailDTO keeps the full bundles for edit forms.
type StudentDetailDTO struct {
	StudentDTO
	StudentNameBundle       locale.Text `json:"student_name_bundle"`
	StudentFatherNameBundle locale.Text `json:"student_father_name_bundle"`
	StudentMotherNameBundle locale.Text `json:"student_mother_name_bundle"`
	StudentAddressBundle    locale.Text `json:"student_address_bundle"`
}

// ============================
// Converter
// ============================

func ToStudentDTO(m model.StudentModel, lang string) StudentDTO {
	return StudentDTO{
		StudentID:            m.StudentID.String(),
		StudentCode:          m.StudentCode,
		StudentName:          m.StudentName.Resolve(lang),
		StudentFatherName:    m.StudentFatherName.Resolve(lang),
		StudentMotherName:    m.StudentMotherName.Resolve(lang),
		StudentAddress:       m.StudentAddress.Resolve(lang),
		StudentClass:         m.StudentClass,
		StudentSection:       m.StudentSection,
		StudentDOB:           m.StudentDOB,
		StudentPhone:         m.StudentPhone,
		StudentAdmissionDate: m.StudentAdmissionDate,
		StudentStatus:        m.StudentStatus,
		StudentIsDemo:        m.StudentIsDemo,
		StudentCreatedAt:     m.StudentCreatedAt,
	}
}

func ToStudentDetailDTO(m model.StudentModel, lang string) StudentDetailDTO {
	return StudentDetailDTO{
		StudentDTO:              ToStudentDTO(m, lang),
		StudentNameBundle:       m.StudentName,
		StudentFatherNameBundle: m.StudentFatherName,
		StudentMotherNameBundle: m.StudentMotherName,
		StudentAddressBundle:    m.StudentAddress,
	}
}

func ToStudentDTOList(ms []model.StudentModel, lang string) []StudentDTO {
	result := make([]StudentDTO, 0, len(ms))
	for _, m := range ms {
		result = append(result, ToStudentDTO(m, lang))
	}
	return result
}
