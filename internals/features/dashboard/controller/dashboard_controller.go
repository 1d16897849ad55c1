package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "madrasaku_backend/internals/features/students/model"
	helper "madrasaku_backend/internals/helpers"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type dashboardStats struct {
	StudentsTotal  int64 `json:"students_total"`
	StudentsActive int64 `json:"students_active"`

	TodayPresent int `json:"today_present"`
	TodayAbsent  int `json:"today_absent"`

	MonthFeeCollected int `json:"month_fee_collected"`
	MonthFeePending   int `json:"month_fee_pending"`

	MonthKitchenSpend float64 `json:"month_kitchen_spend"`
}

// =============================
// Dashboard Stats
// =============================
// GET /dashboard/stats — one aggregate snapshot for the landing page.
func (ctrl *DashboardController) GetStats(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	now := time.Now().UTC()

	var stats dashboardStats

	if err := ctrl.DB.Table("students").
		Where("student_tenant_id = ?", tenantID).
		Count(&stats.StudentsTotal).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build stats")
	}
	if err := ctrl.DB.Table("students").
		Where("student_tenant_id = ? AND student_status = ?", tenantID, studentModel.StudentStatusActive).
		Count(&stats.StudentsActive).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build stats")
	}

	var today struct {
		Present int `gorm:"column:present"`
		Absent  int `gorm:"column:absent"`
	}
	err = ctrl.DB.Table("attendance").
		Select(`COUNT(*) FILTER (WHERE attendance_status = 'Present') AS present,
			COUNT(*) FILTER (WHERE attendance_status = 'Absent') AS absent`).
		Where("attendance_tenant_id = ? AND attendance_date = CURRENT_DATE", tenantID).
		Scan(&today).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build stats")
	}
	stats.TodayPresent = today.Present
	stats.TodayAbsent = today.Absent

	var fee struct {
		Collected int `gorm:"column:collected"`
		Pending   int `gorm:"column:pending"`
	}
	err = ctrl.DB.Table("fees").
		Select("COALESCE(SUM(fee_paid_amount), 0) AS collected, COALESCE(SUM(fee_due_amount), 0) AS pending").
		Where("fee_tenant_id = ? AND fee_month = ? AND fee_year = ?", tenantID, int(now.Month()), now.Year()).
		Scan(&fee).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build stats")
	}
	stats.MonthFeeCollected = fee.Collected
	stats.MonthFeePending = fee.Pending

	var kitchen struct {
		Total float64 `gorm:"column:total"`
	}
	err = ctrl.DB.Table("kitchen_expenses").
		Select("COALESCE(SUM(kitchen_expense_total_amount), 0) AS total").
		Where("kitchen_expense_tenant_id = ?", tenantID).
		Where("EXTRACT(MONTH FROM kitchen_expense_date) = ? AND EXTRACT(YEAR FROM kitchen_expense_date) = ?",
			int(now.Month()), now.Year()).
		Scan(&kitchen).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build stats")
	}
	stats.MonthKitchenSpend = kitchen.Total

	return helper.JsonOK(c, "", stats)
}
