package core

import (
	"testing"
	"time"

	"attendly.com/attendly/model"
	"attendly.com/attendly/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidateCheckIn(t *testing.T) {
	checkIn := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		existing *model.AttendanceRecord
		expected error
	}{
		{
			name:     "no record for the day",
			existing: nil,
			expected: nil,
		},
		{
			name: "pending check-in is a duplicate",
			existing: &model.AttendanceRecord{
				CheckInTime:    utils.Ptr(checkIn),
				ApprovalStatus: model.ApprovalPending,
			},
			expected: ErrDuplicateRequest,
		},
		{
			name: "approved check-in is a duplicate",
			existing: &model.AttendanceRecord{
				CheckInTime:    utils.Ptr(checkIn),
				ApprovalStatus: model.ApprovalApproved,
			},
			expected: ErrDuplicateRequest,
		},
		{
			name: "rejected attempt can be retried",
			existing: &model.AttendanceRecord{
				ApprovalStatus: model.ApprovalRejected,
				Status:         model.StatusAbsent,
			},
			expected: nil,
		},
		{
			name: "synthesized absent record blocks a late check-in",
			existing: &model.AttendanceRecord{
				Status:         model.StatusAbsent,
				ApprovalStatus: model.ApprovalApproved,
				Method:         model.MethodAuto,
			},
			expected: ErrDuplicateRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckIn(tt.existing)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestApplyApproval(t *testing.T) {
	checkIn := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 3, 3, 17, 30, 0, 0, time.UTC)

	checkoutRecord := func() *model.AttendanceRecord {
		return &model.AttendanceRecord{
			CheckInTime:    utils.Ptr(checkIn),
			CheckOutTime:   utils.Ptr(checkOut),
			BreakTime:      1,
			ApprovalStatus: model.ApprovalPending,
			RequestType:    utils.Ptr(model.RequestCheckOut),
		}
	}

	t.Run("approving a checkout recomputes pay at the current rate", func(t *testing.T) {
		rec := checkoutRecord()
		emp := &model.Employee{HourlyRate: 100}

		assert.NoError(t, ApplyApproval(rec, emp, ActionApprove, ""))
		assert.Equal(t, model.ApprovalApproved, rec.ApprovalStatus)
		assert.Equal(t, model.StatusPresent, rec.Status)
		assert.Equal(t, 7.5, rec.WorkingHours)
		assert.Equal(t, 750.0, rec.TotalPay)
		assert.Nil(t, rec.RequestType)
	})

	t.Run("approving a checkout without the employee fails", func(t *testing.T) {
		rec := checkoutRecord()

		assert.ErrorIs(t, ApplyApproval(rec, nil, ActionApprove, ""), ErrEmployeeNotFound)
		assert.Equal(t, 0.0, rec.TotalPay)
	})

	t.Run("approving a check-in takes the target status", func(t *testing.T) {
		rec := &model.AttendanceRecord{
			CheckInTime:    utils.Ptr(checkIn),
			ApprovalStatus: model.ApprovalPending,
			RequestType:    utils.Ptr(model.RequestCheckIn),
		}

		assert.NoError(t, ApplyApproval(rec, nil, ActionApprove, model.StatusLate))
		assert.Equal(t, model.StatusLate, rec.Status)
		assert.Nil(t, rec.RequestType)
	})

	t.Run("rejecting a checkout wipes the checkout half", func(t *testing.T) {
		rec := checkoutRecord()
		rec.TotalPay = 750

		assert.NoError(t, ApplyApproval(rec, nil, ActionReject, ""))
		assert.Equal(t, model.ApprovalRejected, rec.ApprovalStatus)
		assert.Equal(t, model.StatusAbsent, rec.Status)
		assert.Nil(t, rec.CheckOutTime)
		assert.Equal(t, 0.0, rec.TotalPay)
		assert.NotNil(t, rec.CheckInTime)
	})

	t.Run("unknown action is rejected", func(t *testing.T) {
		assert.Error(t, ApplyApproval(checkoutRecord(), nil, "escalate", ""))
	})
}

func TestValidateCheckOut(t *testing.T) {
	checkIn := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)

	tests := []struct {
		name     string
		record   *model.AttendanceRecord
		expected error
	}{
		{
			name:     "no record for the day",
			record:   nil,
			expected: ErrNoApprovedCheckIn,
		},
		{
			name: "check-in still pending",
			record: &model.AttendanceRecord{
				CheckInTime:    utils.Ptr(checkIn),
				ApprovalStatus: model.ApprovalPending,
			},
			expected: ErrNoApprovedCheckIn,
		},
		{
			name: "check-in rejected",
			record: &model.AttendanceRecord{
				ApprovalStatus: model.ApprovalRejected,
			},
			expected: ErrNoApprovedCheckIn,
		},
		{
			name: "approved check-in, not yet out",
			record: &model.AttendanceRecord{
				CheckInTime:    utils.Ptr(checkIn),
				ApprovalStatus: model.ApprovalApproved,
			},
			expected: nil,
		},
		{
			name: "already checked out",
			record: &model.AttendanceRecord{
				CheckInTime:    utils.Ptr(checkIn),
				CheckOutTime:   utils.Ptr(checkOut),
				ApprovalStatus: model.ApprovalApproved,
			},
			expected: ErrAlreadyCheckedOut,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCheckOut(tt.record)
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}
