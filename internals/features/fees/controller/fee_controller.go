package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasaku_backend/internals/features/fees/dto"
	"madrasaku_backend/internals/features/fees/model"
	"madrasaku_backend/internals/features/fees/service"
	studentModel "madrasaku_backend/internals/features/students/model"
	helper "madrasaku_backend/internals/helpers"
	"madrasaku_backend/internals/locale"
)

type FeeController struct {
	DB *gorm.DB
}

func NewFeeController(db *gorm.DB) *FeeController {
	return &FeeController{DB: db}
}

// =============================
// List Fees
// =============================
// GET /fees?student_id=&month=&year=&status=
func (ctrl *FeeController) GetAllFees(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)
	paging := helper.ResolvePaging(c, 30, 200)

	q := ctrl.DB.Table("fees").
		Select("fees.*, students.student_name, students.student_class, students.student_code").
		Joins("JOIN students ON students.student_id = fees.fee_student_id").
		Where("fee_tenant_id = ?", tenantID)

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		if _, err := uuid.Parse(sid); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id: must be a valid uuid")
		}
		q = q.Where("fee_student_id = ?", sid)
	}
	if month := c.QueryInt("month", 0); month != 0 {
		if month < 1 || month > 12 {
			return helper.JsonError(c, fiber.StatusBadRequest, "month: must be between 1 and 12")
		}
		q = q.Where("fee_month = ?", month)
	}
	if year := c.QueryInt("year", 0); year != 0 {
		q = q.Where("fee_year = ?", year)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("fee_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fees")
	}

	var rows []dto.FeeRow
	if err := q.
		Order("fee_year DESC, fee_month DESC, fee_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve fees")
	}

	return helper.JsonList(c, "", dto.ToFeeDTOList(rows, lang),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// Record Fee (upsert)
// =============================
// POST /fees — a payload matching an existing (student, month, year) updates
// that row; due and status are always recomputed server-side.
func (ctrl *FeeController) RecordFee(c *fiber.Ctx) error {
	var body dto.RecordFeeRequest
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
	studentID, _ := uuid.Parse(body.FeeStudentID)

	var student studentModel.StudentModel
	if err := ctrl.DB.
		First(&student, "student_id = ? AND student_tenant_id = ?", studentID, tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var existing model.FeeModel
	err = ctrl.DB.
		Where("fee_tenant_id = ? AND fee_student_id = ? AND fee_month = ? AND fee_year = ?",
			tenantID, studentID, body.FeeMonth, body.FeeYear).
		First(&existing).Error

	switch {
	case err == nil:
		existing.FeeAmount = body.FeeAmount
		existing.FeePaidAmount = body.FeePaidAmount
		existing.FeePaymentDate = body.FeePaymentDate
		if body.FeePaymentMode != "" {
			existing.FeePaymentMode = body.FeePaymentMode
		}
		service.Apply(&existing, body.FeeStatus)
		existing.FeeUpdatedAt = time.Now()
		if err := ctrl.DB.Save(&existing).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee")
		}
		return helper.JsonUpdated(c, "Fee updated", ctrl.toDTO(existing, student, c))

	case err == gorm.ErrRecordNotFound:
		fee := model.FeeModel{
			FeeTenantID:    tenantID,
			FeeStudentID:   studentID,
			FeeMonth:       body.FeeMonth,
			FeeYear:        body.FeeYear,
			FeeAmount:      body.FeeAmount,
			FeePaidAmount:  body.FeePaidAmount,
			FeePaymentDate: body.FeePaymentDate,
			FeePaymentMode: body.FeePaymentMode,
		}
		service.Apply(&fee, body.FeeStatus)
		if err := ctrl.DB.Create(&fee).Error; err != nil {
			if helper.IsDuplicateKey(err) {
				// Raced with a concurrent record: fall back to update-in-place.
				return ctrl.mergeAfterRace(c, tenantID, studentID, body, student)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record fee")
		}
		return helper.JsonCreated(c, "Fee recorded", ctrl.toDTO(fee, student, c))

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record fee")
	}
}

func (ctrl *FeeController) mergeAfterRace(c *fiber.Ctx, tenantID, studentID uuid.UUID, body dto.RecordFeeRequest, student studentModel.StudentModel) error {
	var fee model.FeeModel
	if err := ctrl.DB.
		Where("fee_tenant_id = ? AND fee_student_id = ? AND fee_month = ? AND fee_year = ?",
			tenantID, studentID, body.FeeMonth, body.FeeYear).
		First(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record fee")
	}
	fee.FeeAmount = body.FeeAmount
	fee.FeePaidAmount = body.FeePaidAmount
	fee.FeePaymentDate = body.FeePaymentDate
	if body.FeePaymentMode != "" {
		fee.FeePaymentMode = body.FeePaymentMode
	}
	service.Apply(&fee, body.FeeStatus)
	if err := ctrl.DB.Save(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to record fee")
	}
	return helper.JsonUpdated(c, "Fee updated", ctrl.toDTO(fee, student, c))
}

// =============================
// Update Fee
// =============================
// PUT /fees/:id — partial; due and status recomputed before persisting.
func (ctrl *FeeController) UpdateFee(c *fiber.Ctx) error {
	var body dto.UpdateFeeRequest
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

	var fee model.FeeModel
	if err := ctrl.DB.
		First(&fee, "fee_id = ? AND fee_tenant_id = ?", c.Params("id"), tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
	}

	if body.FeeAmount != nil {
		fee.FeeAmount = *body.FeeAmount
	}
	if body.FeePaidAmount != nil {
		fee.FeePaidAmount = *body.FeePaidAmount
	}
	if body.FeePaymentDate != nil {
		fee.FeePaymentDate = body.FeePaymentDate
	}
	if body.FeePaymentMode != nil {
		fee.FeePaymentMode = *body.FeePaymentMode
	}
	override := ""
	if body.FeeStatus != nil {
		override = *body.FeeStatus
	}
	service.Apply(&fee, override)
	fee.FeeUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&fee).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update fee")
	}

	var student studentModel.StudentModel
	_ = ctrl.DB.First(&student, "student_id = ?", fee.FeeStudentID).Error
	return helper.JsonUpdated(c, "Fee updated", ctrl.toDTO(fee, student, c))
}

// =============================
// Delete Fee
// =============================
// DELETE /fees/:id
func (ctrl *FeeController) DeleteFee(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.FeeModel{}, "fee_id = ? AND fee_tenant_id = ?", id, tenantID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete fee")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Fee record not found")
	}
	return helper.JsonDeleted(c, "Fee deleted", fiber.Map{"fee_id": id})
}

// =============================
// Reports
// =============================
// GET /fees/reports?type=monthly|pending|student&month=&year=&student_id=
func (ctrl *FeeController) GetFeeReports(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)

	switch strings.TrimSpace(c.Query("type")) {
	case "monthly":
		return ctrl.monthlyReport(c, tenantID)
	case "pending":
		return ctrl.pendingReport(c, tenantID, lang)
	case "student":
		return ctrl.studentReport(c, tenantID, lang)
	default:
		return helper.JsonError(c, fiber.StatusBadRequest, "type: must be one of [monthly pending student]")
	}
}

func (ctrl *FeeController) monthlyReport(c *fiber.Ctx, tenantID uuid.UUID) error {
	year := c.QueryInt("year", time.Now().UTC().Year())

	var rows []dto.MonthlyFeeReport
	err := ctrl.DB.Table("fees").
		Select(`fee_month, fee_year,
			COALESCE(SUM(fee_amount), 0)      AS total,
			COALESCE(SUM(fee_paid_amount), 0) AS collected,
			COALESCE(SUM(fee_due_amount), 0)  AS due,
			COUNT(*)                          AS records`).
		Where("fee_tenant_id = ? AND fee_year = ?", tenantID, year).
		Group("fee_month, fee_year").
		Order("fee_month ASC").
		Scan(&rows).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.JsonOK(c, "", fiber.Map{"year": year, "months": rows})
}

func (ctrl *FeeController) pendingReport(c *fiber.Ctx, tenantID uuid.UUID, lang string) error {
	q := ctrl.DB.Table("fees").
		Select("fees.*, students.student_name, students.student_class, students.student_code").
		Joins("JOIN students ON students.student_id = fees.fee_student_id").
		Where("fee_tenant_id = ? AND fee_status = ?", tenantID, model.FeeStatusPending)

	if month := c.QueryInt("month", 0); month != 0 {
		q = q.Where("fee_month = ?", month)
	}
	if year := c.QueryInt("year", 0); year != 0 {
		q = q.Where("fee_year = ?", year)
	}

	var rows []dto.FeeRow
	if err := q.Order("fee_year DESC, fee_month DESC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	return helper.JsonOK(c, "", dto.ToFeeDTOList(rows, lang))
}

func (ctrl *FeeController) studentReport(c *fiber.Ctx, tenantID uuid.UUID, lang string) error {
	q := ctrl.DB.Table("fees").
		Select(`fee_student_id, students.student_name, students.student_code,
			COALESCE(SUM(fee_amount), 0)      AS total,
			COALESCE(SUM(fee_paid_amount), 0) AS collected,
			COALESCE(SUM(fee_due_amount), 0)  AS due`).
		Joins("JOIN students ON students.student_id = fees.fee_student_id").
		Where("fee_tenant_id = ?", tenantID).
		Group("fee_student_id, students.student_name, students.student_code")

	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		if _, err := uuid.Parse(sid); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id: must be a valid uuid")
		}
		q = q.Where("fee_student_id = ?", sid)
	}

	var rows []dto.StudentFeeReport
	if err := q.Order("due DESC").Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}
	for i := range rows {
		rows[i].Name = rows[i].StudentName.Resolve(lang)
	}
	return helper.JsonOK(c, "", rows)
}

func (ctrl *FeeController) toDTO(fee model.FeeModel, student studentModel.StudentModel, c *fiber.Ctx) dto.FeeDTO {
	lang := locale.FromLocals(c)
	return dto.ToFeeDTO(dto.FeeRow{
		FeeModel:     fee,
		StudentName:  student.StudentName,
		StudentClass: student.StudentClass,
		StudentCode:  student.StudentCode,
	}, lang)
}
