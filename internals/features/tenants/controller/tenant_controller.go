package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"madrasaku_backend/internals/features/tenants/dto"
	"madrasaku_backend/internals/features/tenants/model"
	"madrasaku_backend/internals/features/tenants/service"
	helper "madrasaku_backend/internals/helpers"
)

type TenantController struct {
	DB *gorm.DB
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db}
}

func (ctrl *TenantController) currentTenant(c *fiber.Ctx) (model.TenantModel, error) {
	var tenant model.TenantModel
	tenantID, err := helper.GetTenantID(c)
	if err != nil {
		return tenant, err
	}
	if err := ctrl.DB.First(&tenant, "tenant_id = ?", tenantID).Error; err != nil {
		return tenant, fiber.NewError(fiber.StatusNotFound, "Tenant not found")
	}
	return tenant, nil
}

// =============================
// Tenant Profile
// =============================
// GET /tenant
func (ctrl *TenantController) GetTenant(c *fiber.Ctx) error {
	tenant, err := ctrl.currentTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "", dto.ToTenantDTO(tenant))
}

// PUT /tenant — partial settings update.
func (ctrl *TenantController) UpdateTenant(c *fiber.Ctx) error {
	var body dto.UpdateTenantRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := helper.ValidateStruct(&body); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	tenant, err := ctrl.currentTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	if body.TenantName != nil {
		tenant.TenantName = *body.TenantName
	}
	if body.TenantSettings != nil {
		if tenant.TenantSettings == nil {
			tenant.TenantSettings = map[string]interface{}{}
		}
		for k, v := range *body.TenantSettings {
			tenant.TenantSettings[k] = v
		}
	}
	if body.TenantEnabledModules != nil {
		tenant.TenantEnabledModules = *body.TenantEnabledModules
	}

	if err := ctrl.DB.Save(&tenant).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update tenant")
	}
	return helper.JsonUpdated(c, "Tenant updated", dto.ToTenantDTO(tenant))
}

// =============================
// Demo Data Lifecycle
// =============================
// POST /tenant/demo {action: enable|disable|load|clear|reset}
func (ctrl *TenantController) DemoAction(c *fiber.Ctx) error {
	var body dto.DemoActionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if msg := helper.ValidateStruct(&body); msg != "" {
		return helper.JsonError(c, fiber.StatusBadRequest, msg)
	}

	tenant, err := ctrl.currentTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	switch body.Action {
	case "enable":
		// Turning demo mode on loads the dataset too, once.
		err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
			if !tenant.TenantDemoDataLoaded {
				if err := service.LoadDemoData(tx, tenant.TenantID); err != nil {
					return err
				}
				tenant.TenantDemoDataLoaded = true
			}
			tenant.TenantDemoMode = true
			return tx.Save(&tenant).Error
		})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to enable demo mode")
		}
		return helper.JsonOK(c, "Demo mode enabled", dto.ToTenantDTO(tenant))

	case "disable":
		tenant.TenantDemoMode = false
		if err := ctrl.DB.Save(&tenant).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to disable demo mode")
		}
		return helper.JsonOK(c, "Demo mode disabled", dto.ToTenantDTO(tenant))

	case "load":
		if tenant.TenantDemoDataLoaded {
			return helper.JsonError(c, fiber.StatusConflict, "Demo data already loaded; clear it first")
		}
		err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
			if err := service.LoadDemoData(tx, tenant.TenantID); err != nil {
				return err
			}
			tenant.TenantDemoDataLoaded = true
			return tx.Save(&tenant).Error
		})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load demo data")
		}
		return helper.JsonOK(c, "Demo data loaded", dto.ToTenantDTO(tenant))

	case "clear":
		err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
			if err := service.ClearDemoData(tx, tenant.TenantID); err != nil {
				return err
			}
			tenant.TenantDemoDataLoaded = false
			return tx.Save(&tenant).Error
		})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to clear demo data")
		}
		return helper.JsonOK(c, "Demo data cleared", dto.ToTenantDTO(tenant))

	case "reset":
		err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
			if err := service.ClearDemoData(tx, tenant.TenantID); err != nil {
				return err
			}
			if err := service.LoadDemoData(tx, tenant.TenantID); err != nil {
				return err
			}
			tenant.TenantDemoDataLoaded = true
			return tx.Save(&tenant).Error
		})
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reset demo data")
		}
		return helper.JsonOK(c, "Demo data reset", dto.ToTenantDTO(tenant))
	}

	return helper.JsonError(c, fiber.StatusBadRequest, "action: must be one of enable, disable, load, clear, reset")
}

// GET /tenant/demo — flags plus per-table demo row counts.
func (ctrl *TenantController) GetDemoStatus(c *fiber.Ctx) error {
	tenant, err := ctrl.currentTenant(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	counts, err := service.CountDemoData(ctrl.DB, tenant.TenantID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count demo records")
	}
	return helper.JsonOK(c, "", dto.DemoStatusDTO{
		TenantDemoMode:       tenant.TenantDemoMode,
		TenantDemoDataLoaded: tenant.TenantDemoDataLoaded,
		DemoRecordCounts:     counts,
	})
}
