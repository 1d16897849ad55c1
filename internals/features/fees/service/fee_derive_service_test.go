package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"madrasaku_backend/internals/features/fees/model"
)

func TestComputeDue(t *testing.T) {
	assert.Equal(t, 200, ComputeDue(500, 300))
	assert.Equal(t, 0, ComputeDue(500, 500))
	// overpayment never goes negative
	assert.Equal(t, 0, ComputeDue(500, 700))
	assert.Equal(t, 500, ComputeDue(500, 0))
}

func TestDeriveStatus(t *testing.T) {
	// outstanding due always forces Pending, even with a Paid claim
	assert.Equal(t, model.FeeStatusPending, DeriveStatus(200, ""))
	assert.Equal(t, model.FeeStatusPending, DeriveStatus(200, model.FeeStatusPaid))

	// settled: Paid unless explicitly held Pending
	assert.Equal(t, model.FeeStatusPaid, DeriveStatus(0, ""))
	assert.Equal(t, model.FeeStatusPaid, DeriveStatus(0, model.FeeStatusPaid))
	assert.Equal(t, model.FeeStatusPending, DeriveStatus(0, model.FeeStatusPending))
}

func TestApply(t *testing.T) {
	fee := model.FeeModel{FeeAmount: 500, FeePaidAmount: 250, FeeDueAmount: 999, FeeStatus: model.FeeStatusPaid}
	Apply(&fee, "")
	assert.Equal(t, 250, fee.FeeDueAmount)
	assert.Equal(t, model.FeeStatusPending, fee.FeeStatus)

	fee.FeePaidAmount = 500
	Apply(&fee, "")
	assert.Equal(t, 0, fee.FeeDueAmount)
	assert.Equal(t, model.FeeStatusPaid, fee.FeeStatus)
}
