package controller

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	helper "madrasaku_backend/internals/helpers"
	"madrasaku_backend/internals/locale"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gdb, mock
}

func recordApp(db *gorm.DB, tenantID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocTenantID, tenantID.String())
		c.Locals(locale.LocLang, locale.LangEnglish)
		return c.Next()
	})
	ctrl := NewFeeController(db)
	app.Post("/fees", ctrl.RecordFee)
	return app
}

// Recording a fee for an existing (student, month, year) must update that row
// in place with freshly derived due/status, never insert a second row.
func TestRecordFeeUpdatesExistingRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	tenantID := uuid.New()
	studentID := uuid.New()
	feeID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"student_id", "student_tenant_id", "student_code", "student_name", "student_class"}).
			AddRow(studentID.String(), tenantID.String(), "STU-2026-0001",
				`{"en":"Ahmed Khan","hi":"अहमद खान","ur":"احمد خان"}`, "Hifz 1"))

	mock.ExpectQuery(`SELECT \* FROM "fees"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"fee_id", "fee_tenant_id", "fee_student_id", "fee_month", "fee_year",
				"fee_amount", "fee_paid_amount", "fee_due_amount", "fee_status"}).
			AddRow(feeID.String(), tenantID.String(), studentID.String(), 3, 2026,
				500, 500, 0, "Paid"))

	// dedup key matched: an UPDATE, never a second INSERT
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "fees" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payload, err := json.Marshal(fiber.Map{
		"fee_student_id":  studentID.String(),
		"fee_month":       3,
		"fee_year":        2026,
		"fee_amount":      500,
		"fee_paid_amount": 200,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/fees", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := recordApp(gdb, tenantID).Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Fee updated", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, feeID.String(), data["fee_id"])
	// derivation ran on the new amounts: due = 500 - 200, status back to Pending
	assert.EqualValues(t, 300, data["fee_due_amount"])
	assert.Equal(t, "Pending", data["fee_status"])

	require.NoError(t, mock.ExpectationsWereMet())
}
