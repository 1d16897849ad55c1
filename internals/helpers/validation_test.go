package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	StudentName  string `validate:"required,min=2"`
	StudentClass string `validate:"required"`
	FeeMonth     int    `validate:"gte=1,lte=12"`
	Status       string `validate:"omitempty,oneof=Active Inactive"`
}

func TestValidateStruct(t *testing.T) {
	ok := samplePayload{StudentName: "Ahmed", StudentClass: "Hifz 1", FeeMonth: 3}
	assert.Equal(t, "", ValidateStruct(&ok))

	missing := samplePayload{FeeMonth: 3}
	msg := ValidateStruct(&missing)
	assert.Contains(t, msg, "student_name: is required")
	assert.Contains(t, msg, "student_class: is required")

	bad := samplePayload{StudentName: "A", StudentClass: "Hifz 1", FeeMonth: 13, Status: "Gone"}
	msg = ValidateStruct(&bad)
	assert.Contains(t, msg, "student_name: must be at least 2")
	assert.Contains(t, msg, "fee_month: must be <= 12")
	assert.Contains(t, msg, "status: must be one of [Active Inactive]")
}

func TestValidateStructNestedPath(t *testing.T) {
	type inner struct {
		En string `validate:"required"`
	}
	type outer struct {
		StudentName inner `validate:"required"`
	}
	msg := ValidateStruct(&outer{})
	assert.Contains(t, msg, "student_name.en: is required")
}
