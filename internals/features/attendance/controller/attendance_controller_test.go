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

func markApp(db *gorm.DB, tenantID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocTenantID, tenantID.String())
		c.Locals(locale.LocLang, locale.LangEnglish)
		return c.Next()
	})
	ctrl := NewAttendanceController(db)
	app.Post("/attendance", ctrl.MarkAttendance)
	return app
}

// Marking an already-marked (student, date) must update the existing row in
// place: one row per (student, date) always holds, and the response reports
// an update, not a create.
func TestMarkAttendanceUpdatesExistingRow(t *testing.T) {
	gdb, mock := newMockDB(t)
	tenantID := uuid.New()
	studentID := uuid.New()
	attendanceID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "students"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"student_id", "student_tenant_id", "student_code", "student_name", "student_class"}).
			AddRow(studentID.String(), tenantID.String(), "STU-2026-0001",
				`{"en":"Ahmed Khan","hi":"अहमद खान","ur":"احمد خان"}`, "Hifz 1"))

	mock.ExpectQuery(`SELECT \* FROM "attendance"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"attendance_id", "attendance_tenant_id", "attendance_student_id", "attendance_date", "attendance_status"}).
			AddRow(attendanceID.String(), tenantID.String(), studentID.String(), "2026-03-15", "Absent"))

	// the second mark is an UPDATE; any INSERT would fail the mock
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "attendance" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	payload, err := json.Marshal(fiber.Map{
		"attendance_student_id": studentID.String(),
		"attendance_date":       "2026-03-15",
		"attendance_status":     "Present",
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/attendance", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := markApp(gdb, tenantID).Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Attendance updated", body["message"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, attendanceID.String(), data["attendance_id"])
	assert.Equal(t, "Present", data["attendance_status"])

	require.NoError(t, mock.ExpectationsWereMet())
}
