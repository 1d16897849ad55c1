package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasaku_backend/internals/features/students/dto"
	"madrasaku_backend/internals/features/students/model"
	"madrasaku_backend/internals/features/students/service"
	helper "madrasaku_backend/internals/helpers"
	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// =============================
// List Students
// =============================
// GET /students?class=&section=&status=&search=&page=&per_page=
func (ctrl *StudentController) GetAllStudents(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.StudentModel{}).
		Where("student_tenant_id = ?", tenantID)

	if class := strings.TrimSpace(c.Query("class")); class != "" {
		q = q.Where("student_class = ?", class)
	}
	if section := strings.TrimSpace(c.Query("section")); section != "" {
		q = q.Where("student_section = ?", section)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("student_status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where(nameSearchClause("student_name"), nameSearchArgs(search)...)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	var students []model.StudentModel
	if err := q.
		Order("student_admission_date DESC, student_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve students")
	}

	return helper.JsonList(c, "", dto.ToStudentDTOList(students, lang),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// Get Student By ID
// =============================
// GET /students/:id
func (ctrl *StudentController) GetStudentByID(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)

	var student model.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_tenant_id = ?", c.Params("id"), tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}
	return helper.JsonOK(c, "", dto.ToStudentDetailDTO(student, lang))
}

// =============================
// Create Student
// =============================
// POST /students
func (ctrl *StudentController) CreateStudent(c *fiber.Ctx) error {
	var body dto.CreateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := helper.ValidateStruct(&body); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)

	admission := body.StudentAdmissionDate
	if admission.IsZero() {
		admission = dbtime.Today()
	}
	status := body.StudentStatus
	if status == "" {
		status = model.StudentStatusActive
	}

	student := model.StudentModel{
		StudentTenantID:      tenantID,
		StudentName:          body.StudentName.Text(),
		StudentFatherName:    body.StudentFatherName.Text(),
		StudentClass:         body.StudentClass,
		StudentSection:       body.StudentSection,
		StudentDOB:           body.StudentDOB,
		StudentPhone:         body.StudentPhone,
		StudentAdmissionDate: admission,
		StudentStatus:        status,
	}
	if body.StudentMotherName != nil {
		student.StudentMotherName = body.StudentMotherName.Text()
	}
	if body.StudentAddress != nil {
		student.StudentAddress = body.StudentAddress.Text()
	}

	// Allocate the year-scoped code; retry when a concurrent create grabbed
	// the same sequence number.
	year := admission.Time.Year()
	for attempt := 0; attempt < 3; attempt++ {
		code, err := service.NextStudentCode(ctrl.DB, tenantID, year)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to allocate student code")
		}
		student.StudentCode = code
		err = ctrl.DB.Create(&student).Error
		if err == nil {
			return helper.JsonCreated(c, "Student created", dto.ToStudentDetailDTO(student, lang))
		}
		if !helper.IsDuplicateKey(err) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
		}
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to allocate student code")
}

// =============================
// Update Student
// =============================
// PUT /students/:id — partial; only supplied fields (and bundle variants) change.
func (ctrl *StudentController) UpdateStudent(c *fiber.Ctx) error {
	var body dto.UpdateStudentRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := helper.ValidateStruct(&body); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)

	var student model.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_tenant_id = ?", c.Params("id"), tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	student.StudentName = student.StudentName.Merge(body.StudentName)
	student.StudentFatherName = student.StudentFatherName.Merge(body.StudentFatherName)
	student.StudentMotherName = student.StudentMotherName.Merge(body.StudentMotherName)
	student.StudentAddress = student.StudentAddress.Merge(body.StudentAddress)

	if body.StudentClass != nil {
		student.StudentClass = *body.StudentClass
	}
	if body.StudentSection != nil {
		student.StudentSection = *body.StudentSection
	}
	if body.StudentPhone != nil {
		student.StudentPhone = *body.StudentPhone
	}
	if body.StudentDOB != nil {
		student.StudentDOB = *body.StudentDOB
	}
	if body.StudentAdmissionDate != nil {
		student.StudentAdmissionDate = *body.StudentAdmissionDate
	}
	if body.StudentStatus != nil {
		student.StudentStatus = *body.StudentStatus
	}
	student.StudentUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated", dto.ToStudentDetailDTO(student, lang))
}

// =============================
// Delete Student
// =============================
// DELETE /students/:id — cascades attendance and fee rows in one transaction.
func (ctrl *StudentController) DeleteStudent(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id := c.Params("id")

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		var student model.StudentModel
		if err := tx.First(&student, "student_id = ? AND student_tenant_id = ?", id, tenantID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Student not found")
		}
		if err := tx.Exec("DELETE FROM attendance WHERE attendance_student_id = ?", student.StudentID).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM fees WHERE fee_student_id = ?", student.StudentID).Error; err != nil {
			return err
		}
		return tx.Delete(&student).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}

/* ===============================
   Search over localized bundles
=================================*/

// nameSearchClause: case-insensitive substring OR across all three language
// variants of a jsonb bundle column.
func nameSearchClause(col string) string {
	return "(" + col + "->>'en' ILIKE ? OR " + col + "->>'hi' ILIKE ? OR " + col + "->>'ur' ILIKE ?)"
}

func nameSearchArgs(search string) []any {
	p := "%" + search + "%"
	return []any{p, p, p}
}
