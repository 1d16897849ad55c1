package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasaku_backend/internals/features/attendance/dto"
	"madrasaku_backend/internals/features/attendance/model"
	studentModel "madrasaku_backend/internals/features/students/model"
	helper "madrasaku_backend/internals/helpers"
	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// =============================
// List Attendance
// =============================
// GET /attendance?student_id=&status=&date=&date_from=&date_to=
func (ctrl *AttendanceController) GetAllAttendance(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)
	paging := helper.ResolvePaging(c, 30, 200)

	q := ctrl.DB.Table("attendance").
		Select("attendance.*, students.student_name, students.student_class, students.student_code").
		Joins("JOIN students ON students.student_id = attendance.attendance_student_id").
		Where("attendance_tenant_id = ?", tenantID)

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		if _, err := uuid.Parse(sid); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id: must be a valid uuid")
		}
		q = q.Where("attendance_student_id = ?", sid)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("attendance_status = ?", status)
	}
	if day := strings.TrimSpace(c.Query("date")); day != "" {
		d, err := dbtime.Parse(day)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date: "+err.Error())
		}
		q = q.Where("attendance_date = ?", d)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		d, err := dbtime.Parse(from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from: "+err.Error())
		}
		q = q.Where("attendance_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		d, err := dbtime.Parse(to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to: "+err.Error())
		}
		q = q.Where("attendance_date <= ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	var rows []dto.AttendanceRow
	if err := q.
		Order("attendance_date DESC, attendance_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	return helper.JsonList(c, "", dto.ToAttendanceDTOList(rows, lang),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// Mark Attendance (upsert)
// =============================
// POST /attendance — a payload matching an existing (student, date) updates
// that row in place; no duplicate-key error ever surfaces here.
func (ctrl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	var body dto.MarkAttendanceRequest
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
	studentID, _ := uuid.Parse(body.AttendanceStudentID)
	day := body.AttendanceDate
	if day.IsZero() {
		day = dbtime.Today()
	}

	var student studentModel.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_tenant_id = ?", studentID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var existing model.AttendanceModel
	err = ctrl.DB.
		Where("attendance_tenant_id = ? AND attendance_student_id = ? AND attendance_date = ?",
			tenantID, studentID, day).
		First(&existing).Error

	switch {
	case err == nil:
		existing.AttendanceStatus = body.AttendanceStatus
		existing.AttendanceRemarks = existing.AttendanceRemarks.Merge(body.AttendanceRemarks)
		existing.AttendanceUpdatedAt = time.Now()
		if err := ctrl.DB.Save(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance")
		}
		return helper.JsonUpdated(c, "Attendance updated", toDTO(existing, student, c))

	case err == gorm.ErrRecordNotFound:
		row := model.AttendanceModel{
			AttendanceTenantID:  tenantID,
			AttendanceStudentID: studentID,
			AttendanceDate:      day,
			AttendanceStatus:    body.AttendanceStatus,
			AttendanceRemarks:   locale.Text{}.Merge(body.AttendanceRemarks),
		}
		if err := ctrl.DB.Create(&row).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				// Raced with a concurrent mark: fall back to update-in-place.
				return ctrl.mergeAfterRace(c, tenantID, studentID, day, body, student)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
		}
		return helper.JsonCreated(c, "Attendance marked", toDTO(row, student, c))

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}
}

func (ctrl *AttendanceController) mergeAfterRace(c *fiber.Ctx, tenantID, studentID uuid.UUID, day dbtime.Date, body dto.MarkAttendanceRequest, student studentModel.StudentModel) error {
	var row model.AttendanceModel
	if err := ctrl.DB.
		Where("attendance_tenant_id = ? AND attendance_student_id = ? AND attendance_date = ?",
			tenantID, studentID, day).
		First(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}
	row.AttendanceStatus = body.AttendanceStatus
	row.AttendanceRemarks = row.AttendanceRemarks.Merge(body.AttendanceRemarks)
	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark attendance")
	}
	return helper.JsonUpdated(c, "Attendance updated", toDTO(row, student, c))
}

// =============================
// Update Attendance
// =============================
// PUT /attendance/:id
func (ctrl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	var body dto.UpdateAttendanceRequest
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

	var row model.AttendanceModel
	if err := ctrl.DB.
		First(&row, "attendance_id = ? AND attendance_tenant_id = ?", c.Params("id"), tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
	}

	if body.AttendanceStatus != nil {
		row.AttendanceStatus = *body.AttendanceStatus
	}
	row.AttendanceRemarks = row.AttendanceRemarks.Merge(body.AttendanceRemarks)
	row.AttendanceUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance")
	}

	var student studentModel.StudentModel
	_ = ctrl.DB.First(&student, "student_id = ?", row.AttendanceStudentID).Error
	return helper.JsonUpdated(c, "Attendance updated", toDTO(row, student, c))
}

// =============================
// Delete Attendance
// =============================
// DELETE /attendance/:id — returns the deleted id only.
func (ctrl *AttendanceController) DeleteAttendance(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.AttendanceModel{}, "attendance_id = ? AND attendance_tenant_id = ?", id, tenantID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete attendance")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
	}
	return helper.JsonDeleted(c, "Attendance deleted", fiber.Map{"attendance_id": id})
}

// =============================
// Monthly Summary
// =============================
// GET /attendance/summary?month=&year=
func (ctrl *AttendanceController) GetMonthlySummary(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	month := c.QueryInt("month", int(time.Now().UTC().Month()))
	year := c.QueryInt("year", time.Now().UTC().Year())
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "month: must be between 1 and 12")
	}

	var days []dto.DaySummary
	err = ctrl.DB.Table("attendance").
		Select(`attendance_date,
			COUNT(*) FILTER (WHERE attendance_status = 'Present') AS present,
			COUNT(*) FILTER (WHERE attendance_status = 'Absent')  AS absent`).
		Where("attendance_tenant_id = ?", tenantID).
		Where("EXTRACT(MONTH FROM attendance_date) = ? AND EXTRACT(YEAR FROM attendance_date) = ?", month, year).
		Group("attendance_date").
		Order("attendance_date ASC").
		Scan(&days).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build summary")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"month": month,
		"year":  year,
		"days":  days,
	})
}

func toDTO(row model.AttendanceModel, student studentModel.StudentModel, c *fiber.Ctx) dto.AttendanceDTO {
	lang := locale.FromLocals(c)
	return dto.ToAttendanceDTO(dto.AttendanceRow{
		AttendanceModel: row,
		StudentName:     student.StudentName,
		StudentClass:    student.StudentClass,
		StudentCode:     student.StudentCode,
	}, lang)
}
