package model

import (
	"time"

	"github.com/google/uuid"

	"madrasaku_backend/internals/helpers/dbtime"
	"madrasaku_backend/internals/locale"
)

type KitchenExpenseModel struct {
	KitchenExpenseID       uuid.UUID `gorm:"column:kitchen_expense_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"kitchen_expense_id"`
	KitchenExpenseTenantID uuid.UUID `gorm:"column:kitchen_expense_tenant_id;type:uuid;not null;index" json:"kitchen_expense_tenant_id"`

	KitchenExpenseDate     dbtime.Date `gorm:"column:kitchen_expense_date;not null;index" json:"kitchen_expense_date"`
	KitchenExpenseItemName locale.Text `gorm:"column:kitchen_expense_item_name;type:jsonb;not null" json:"kitchen_expense_item_name"`

	KitchenExpenseQuantity float64 `gorm:"column:kitchen_expense_quantity;not null" json:"kitchen_expense_quantity"`
	KitchenExpenseUnitCost float64 `gorm:"column:kitchen_expense_unit_cost;not null" json:"kitchen_expense_unit_cost"`
	// Always quantity × unit cost, recomputed server-side on every write.
	KitchenExpenseTotalAmount float64 `gorm:"column:kitchen_expense_total_amount;not null" json:"kitchen_expense_total_amount"`

	// Admin who logged the expense; nil for the anonymous demo actor.
	KitchenExpenseAddedBy *uuid.UUID `gorm:"column:kitchen_expense_added_by;type:uuid" json:"kitchen_expense_added_by"`

	KitchenExpenseIsDemo bool `gorm:"column:kitchen_expense_is_demo;not null;default:false" json:"kitchen_expense_is_demo"`

	KitchenExpenseCreatedAt time.Time `gorm:"column:kitchen_expense_created_at;autoCreateTime" json:"kitchen_expense_created_at"`
	KitchenExpenseUpdatedAt time.Time `gorm:"column:kitchen_expense_updated_at;autoUpdateTime" json:"kitchen_expense_updated_at"`
}

func (KitchenExpenseModel) TableName() string {
	return "kitchen_expenses"
}

// ComputeTotal derives the stored total; caller-supplied totals are ignored.
func (m *KitchenExpenseModel) ComputeTotal() {
	m.KitchenExpenseTotalAmount = m.KitchenExpenseQuantity * m.KitchenExpenseUnitCost
}
