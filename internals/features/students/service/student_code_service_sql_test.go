package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
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

func TestNextStudentCodeSkipsGaps(t *testing.T) {
	gdb, mock := newMockDB(t)

	// codes 0001 and 0003 exist after 0002 was deleted: two rows, max suffix 3.
	// the allocator must issue 0004, not re-issue the taken 0003
	mock.ExpectQuery(`SELECT COALESCE\(MAX\(split_part\(student_code, '-', 3\)::int\), 0\) FROM "students"`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(3))

	code, err := NextStudentCode(gdb, uuid.New(), 2026)
	require.NoError(t, err)
	assert.Equal(t, "STU-2026-0004", code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNextStudentCodeFirstOfYear(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT COALESCE\(MAX\(split_part`).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(0))

	code, err := NextStudentCode(gdb, uuid.New(), 2026)
	require.NoError(t, err)
	assert.Equal(t, "STU-2026-0001", code)
	require.NoError(t, mock.ExpectationsWereMet())
}
