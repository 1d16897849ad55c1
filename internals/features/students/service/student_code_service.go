package service

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FormatStudentCode renders the year-prefixed sequence: STU-2026-0001.
func FormatStudentCode(year, seq int) string {
	return fmt.Sprintf("STU-%d-%04d", year, seq)
}

// NextStudentCode allocates the next code for tenant+year from the highest
// suffix already issued. Deletes leave gaps in the sequence, so a row count
// would land on a taken code and stay stuck there; MAX+1 always moves past
// every issued code. Concurrent creates can still race to the same MAX; the
// caller retries on the unique index (uq_student_code).
func NextStudentCode(db *gorm.DB, tenantID uuid.UUID, year int) (string, error) {
	var maxSeq int
	err := db.Table("students").
		Select("COALESCE(MAX(split_part(student_code, '-', 3)::int), 0)").
		Where("student_tenant_id = ?", tenantID).
		Where("student_code LIKE ?", fmt.Sprintf("STU-%d-%%", year)).
		Scan(&maxSeq).Error
	if err != nil {
		return "", err
	}
	return FormatStudentCode(year, maxSeq+1), nil
}
