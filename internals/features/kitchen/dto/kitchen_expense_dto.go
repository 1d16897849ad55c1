package dto

import (
	"madrasaku_backend/internals/features/kitchen/model"
	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

// ============================
// Request DTO
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

// CreateKitchenExpenseRequest carries no total field on purpose: the stored
// total is always quantity × unit cost, whatever the caller sends.
type CreateKitchenExpenseRequest struct {
	KitchenExpenseDate     dbtime.Date    `json:"kitchen_expense_date"`
	KitchenExpenseItemName LocalizedInput `json:"kitchen_expense_item_name" validate:"required"`
	KitchenExpenseQuantity float64        `json:"kitchen_expense_quantity" validate:"required,gt=0"`
	KitchenExpenseUnitCost float64        `json:"kitchen_expense_unit_cost" validate:"required,gte=0"`
}

type UpdateKitchenExpenseRequest struct {
	KitchenExpenseDate     *dbtime.Date      `json:"kitchen_expense_date,omitempty"`
	KitchenExpenseItemName *locale.TextPatch `json:"kitchen_expense_item_name,omitempty"`
	KitchenExpenseQuantity *float64          `json:"kitchen_expense_quantity,omitempty" validate:"omitempty,gt=0"`
	KitchenExpenseUnitCost *float64          `json:"kitchen_expense_unit_cost,omitempty" validate:"omitempty,gte=0"`
}

// ============================
// Response DTO
// ============================

type KitchenExpenseDTO struct {
	KitchenExpenseID          string      `json:"kitchen_expense_id"`
	KitchenExpenseDate        dbtime.Date `json:"kitchen_expense_date"`
	KitchenExpenseItemName    string      `json:"kitchen_expense_item_name"`
	KitchenExpenseQuantity    float64     `json:"kitchen_expense_quantity"`
	KitchenExpenseUnitCost    float64     `json:"kitchen_expense_unit_cost"`
	KitchenExpenseTotalAmount float64     `json:"kitchen_expense_total_amount"`
	AddedByName               string      `json:"added_by_name,omitempty"`
}

// KitchenExpenseRow is the join shape the list query scans into.
type KitchenExpenseRow struct {
	model.KitchenExpenseModel
	AddedByName string `gorm:"column:added_by_name"`
}

// ============================
// Converter
// ============================

func ToKitchenExpenseDTO(r KitchenExpenseRow, lang string) KitchenExpenseDTO {
	return KitchenExpenseDTO{
		KitchenExpenseID:          r.KitchenExpenseID.String(),
		KitchenExpenseDate:        r.KitchenExpenseDate,
		KitchenExpenseItemName:    r.KitchenExpenseItemName.Resolve(lang),
		KitchenExpenseQuantity:    r.KitchenExpenseQuantity,
		KitchenExpenseUnitCost:    r.KitchenExpenseUnitCost,
		KitchenExpenseTotalAmount: r.KitchenExpenseTotalAmount,
		AddedByName:               r.AddedByName,
	}
}

func ToKitchenExpenseDTOList(rows []KitchenExpenseRow, lang string) []KitchenExpenseDTO {
	result := make([]KitchenExpenseDTO, 0, len(rows))
	for _, r := range rows {
		result = append(result, ToKitchenExpenseDTO(r, lang))
	}
	return result
}
