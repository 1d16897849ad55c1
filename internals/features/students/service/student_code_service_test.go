package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStudentCode(t *testing.T) {
	assert.Equal(t, "STU-2026-0001", FormatStudentCode(2026, 1))
	assert.Equal(t, "STU-2026-0042", FormatStudentCode(2026, 42))
	// sequence wider than the pad still renders
	assert.Equal(t, "STU-2026-12345", FormatStudentCode(2026, 12345))
}
