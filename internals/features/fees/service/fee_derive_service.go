package service

import "madrasaku_backend/internals/features/fees/model"

// ComputeDue: max(0, amount - paid). Never negative by construction.
func ComputeDue(amount, paid int) int {
	due := amount - paid
	if due < 0 {
		return 0
	}
	return due
}

// DeriveStatus: Paid iff nothing is due. An explicit Pending override is
// honored only while due is zero (a record settled but flagged for review);
// any outstanding due always forces Pending, and an explicit Paid claim with
// outstanding due is ignored.
func DeriveStatus(due int, override string) string {
	if due > 0 {
		return model.FeeStatusPending
	}
	if override == model.FeeStatusPending {
		return model.FeeStatusPending
	}
	return model.FeeStatusPaid
}

// Apply recomputes the derived fields on a fee row before persisting.
func Apply(fee *model.FeeModel, statusOverride string) {
	fee.FeeDueAmount = ComputeDue(fee.FeeAmount, fee.FeePaidAmount)
	fee.FeeStatus = DeriveStatus(fee.FeeDueAmount, statusOverride)
}
