package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"madrasaku_backend/internals/features/kitchen/dto"
	"madrasaku_backend/internals/features/kitchen/model"
	helper "madrasaku_backend/internals/helpers"
	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

type KitchenExpenseController struct {
	DB *gorm.DB
}

func NewKitchenExpenseController(db *gorm.DB) *KitchenExpenseController {
	return &KitchenExpenseController{DB: db}
}

// =============================
// List Kitchen Expenses
// =============================
// GET /kitchen?date=&date_from=&date_to=&search=
func (ctrl *KitchenExpenseController) GetAllExpenses(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	lang := locale.FromLocals(c)
	paging := helper.ResolvePaging(c, 30, 200)

	q := ctrl.DB.Table("kitchen_expenses").
		Select("kitchen_expenses.*, admins.admin_display_name AS added_by_name").
		Joins("LEFT JOIN admins ON admins.admin_id = kitchen_expenses.kitchen_expense_added_by").
		Where("kitchen_expense_tenant_id = ?", tenantID)

	if day := strings.TrimSpace(c.Query("date")); day != "" {
		d, err := dbtime.Parse(day)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date: "+err.Error())
		}
		q = q.Where("kitchen_expense_date = ?", d)
	}
	if from := strings.TrimSpace(c.Query("date_from")); from != "" {
		d, err := dbtime.Parse(from)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_from: "+err.Error())
		}
		q = q.Where("kitchen_expense_date >= ?", d)
	}
	if to := strings.TrimSpace(c.Query("date_to")); to != "" {
		d, err := dbtime.Parse(to)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "date_to: "+err.Error())
		}
		q = q.Where("kitchen_expense_date <= ?", d)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		p := "%" + search + "%"
		q = q.Where(`(kitchen_expense_item_name->>'en' ILIKE ?
			OR kitchen_expense_item_name->>'hi' ILIKE ?
			OR kitchen_expense_item_name->>'ur' ILIKE ?)`, p, p, p)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expenses")
	}

	var rows []dto.KitchenExpenseRow
	if err := q.
		Order("kitchen_expense_date DESC, kitchen_expense_created_at DESC").
		Offset(paging.Offset).Limit(paging.Limit).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve expenses")
	}

	return helper.JsonList(c, "", dto.ToKitchenExpenseDTOList(rows, lang),
		helper.BuildPagination(total, paging.Page, paging.PerPage))
}

// =============================
// Create Kitchen Expense
// =============================
// POST /kitchen
func (ctrl *KitchenExpenseController) CreateExpense(c *fiber.Ctx) error {
	var body dto.CreateKitchenExpenseRequest
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

	day := body.KitchenExpenseDate
	if day.IsZero() {
		day = dbtime.Today()
	}

	expense := model.KitchenExpenseModel{
		KitchenExpenseTenantID: tenantID,
		KitchenExpenseDate:     day,
		KitchenExpenseItemName: body.KitchenExpenseItemName.Text(),
		KitchenExpenseQuantity: body.KitchenExpenseQuantity,
		KitchenExpenseUnitCost: body.KitchenExpenseUnitCost,
	}
	if adminID := helper.GetAdminID(c); adminID != uuid.Nil {
		expense.KitchenExpenseAddedBy = &adminID
	}
	expense.ComputeTotal()

	if err := ctrl.DB.Create(&expense).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create expense")
	}
	return helper.JsonCreated(c, "Expense logged", ctrl.toDTO(expense, c))
}

// =============================
// Update Kitchen Expense
// =============================
// PUT /kitchen/:id — partial; total recomputed before persisting.
func (ctrl *KitchenExpenseController) UpdateExpense(c *fiber.Ctx) error {
	var body dto.UpdateKitchenExpenseRequest
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

	var expense model.KitchenExpenseModel
	if err := ctrl.DB.
		First(&expense, "kitchen_expense_id = ? AND kitchen_expense_tenant_id = ?", c.Params("id"), tenantID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Expense not found")
	}

	if body.KitchenExpenseDate != nil {
		expense.KitchenExpenseDate = *body.KitchenExpenseDate
	}
	expense.KitchenExpenseItemName = expense.KitchenExpenseItemName.Merge(body.KitchenExpenseItemName)
	if body.KitchenExpenseQuantity != nil {
		expense.KitchenExpenseQuantity = *body.KitchenExpenseQuantity
	}
	if body.KitchenExpenseUnitCost != nil {
		expense.KitchenExpenseUnitCost = *body.KitchenExpenseUnitCost
	}
	expense.ComputeTotal()
	expense.KitchenExpenseUpdatedAt = time.Now()

	if err := ctrl.DB.Save(&expense).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update expense")
	}
	return helper.JsonUpdated(c, "Expense updated", ctrl.toDTO(expense, c))
}

// =============================
// Delete Kitchen Expense
// =============================
// DELETE /kitchen/:id
func (ctrl *KitchenExpenseController) DeleteExpense(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id := c.Params("id")

	res := ctrl.DB.Delete(&model.KitchenExpenseModel{}, "kitchen_expense_id = ? AND kitchen_expense_tenant_id = ?", id, tenantID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete expense")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Expense not found")
	}
	return helper.JsonDeleted(c, "Expense deleted", fiber.Map{"kitchen_expense_id": id})
}

// =============================
// Monthly Summary
// =============================
// GET /kitchen/summary?month=&year=
func (ctrl *KitchenExpenseController) GetMonthlySummary(c *fiber.Ctx) error {
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	month := c.QueryInt("month", int(time.Now().UTC().Month()))
	year := c.QueryInt("year", time.Now().UTC().Year())
	if month < 1 || month > 12 {
		return helper.JsonError(c, fiber.StatusBadRequest, "month: must be between 1 and 12")
	}

	var out struct {
		Total   float64 `gorm:"column:total"`
		Records int     `gorm:"column:records"`
	}
	err = ctrl.DB.Table("kitchen_expenses").
		Select("COALESCE(SUM(kitchen_expense_total_amount), 0) AS total, COUNT(*) AS records").
		Where("kitchen_expense_tenant_id = ?", tenantID).
		Where("EXTRACT(MONTH FROM kitchen_expense_date) = ? AND EXTRACT(YEAR FROM kitchen_expense_date) = ?", month, year).
		Scan(&out).Error
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build summary")
	}

	return helper.JsonOK(c, "", fiber.Map{
		"month":   month,
		"year":    year,
		"total":   out.Total,
		"records": out.Records,
	})
}

func (ctrl *KitchenExpenseController) toDTO(expense model.KitchenExpenseModel, c *fiber.Ctx) dto.KitchenExpenseDTO {
	lang := locale.FromLocals(c)
	row := dto.KitchenExpenseRow{KitchenExpenseModel: expense}
	if expense.KitchenExpenseAddedBy != nil {
		var admin struct {
			AdminDisplayName string
		}
		if err := ctrl.DB.Table("admins").
			Select("admin_display_name").
			Where("admin_id = ?", *expense.KitchenExpenseAddedBy).
			First(&admin).Error; err == nil {
			row.AddedByName = admin.AdminDisplayName
		}
	}
	return dto.ToKitchenExpenseDTO(row, lang)
}
