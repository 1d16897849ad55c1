package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceDTO "madrasaku_backend/internals/features/attendance/dto"
	feeDTO "madrasaku_backend/internals/features/fees/dto"
	studentDTO "madrasaku_backend/internals/features/students/dto"
	studentModel "madrasaku_backend/internals/features/students/model"
	helper "madrasaku_backend/internals/helpers"
	"madrasaku_backend/internals/locale"
)

// Parent-facing read surface. Routes run with optional auth: a valid parent
// token adds nothing today, anonymous access is fine.
type ParentController struct {
	DB *gorm.DB
}

func NewParentController(db *gorm.DB) *ParentController {
	return &ParentController{DB: db}
}

const (
	searchMinChars  = 2
	searchMaxResult = 20
	recentDays      = 30
)

// =============================
// Search Students
// =============================
// GET /parents/search?search= — matches any name variant, or the exact
// student code. Short queries are rejected rather than returning everything.
func (ctrl *ParentController) SearchStudents(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)

	search := strings.TrimSpace(c.Query("search"))
	if len([]rune(search)) < searchMinChars {
		return helper.JsonError(c, fiber.StatusBadRequest, "search: must be at least 2 characters")
	}

	p := "%" + search + "%"
	var students []studentModel.StudentModel
	err = ctrl.DB.
		Where("student_tenant_id = ?", tenantID).
		Where("student_status = ?", studentModel.StudentStatusActive).
		Where(`(student_name->>'en' ILIKE ?
			OR student_name->>'hi' ILIKE ?
			OR student_name->>'ur' ILIKE ?
			OR student_code = ?)`, p, p, p, search).
		Order("student_name->>'en' ASC").
		Limit(searchMaxResult).
		Find(&students).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Search failed")
	}

	return helper.JsonOK(c, "", studentDTO.ToStudentDTOList(students, lang))
}

// =============================
// Student Profile
// =============================
// GET /parents/student/:id — profile plus recent attendance and the
// current year's fee rows.
func (ctrl *ParentController) GetStudentProfile(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)
	id := c.Params("id")

	var student studentModel.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_tenant_id = ?", id, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var attendance []attendanceDTO.AttendanceRow
	err = ctrl.DB.Table("attendance").
		Select("attendance.*, students.student_name, students.student_class, students.student_code").
		Joins("JOIN students ON students.student_id = attendance.attendance_student_id").
		Where("attendance_tenant_id = ? AND attendance_student_id = ?", tenantID, student.StudentID).
		Where("attendance_date >= CURRENT_DATE - ?::int", recentDays).
		Order("attendance_date DESC").
		Scan(&attendance).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	var fees []feeDTO.FeeRow
	err = ctrl.DB.Table("fees").
		Select("fees.*, students.student_name, students.student_class, students.student_code").
		Joins("JOIN students ON students.student_id = fees.fee_student_id").
		Where("fee_tenant_id = ? AND fee_student_id = ?", tenantID, student.StudentID).
		Where("fee_year = EXTRACT(YEAR FROM CURRENT_DATE)").
		Order("fee_month DESC").
		Scan(&fees).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fees")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"student":    studentDTO.ToStudentDTO(student, lang),
		"attendance": attendanceDTO.ToAttendanceDTOList(attendance, lang),
		"fees":       feeDTO.ToFeeDTOList(fees, lang),
	})
}
