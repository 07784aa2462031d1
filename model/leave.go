package model

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LeavePending  = "Pending"
	LeaveApproved = "Approved"
	LeaveRejected = "Rejected"
)

var LeaveTypes = []string{
	"Annual",
	"Sick",
	"Casual",
	"Maternity",
	"Unpaid",
}

// ValidLeaveType reports whether t is one of the accepted LeaveTypes.
func ValidLeaveType(t string) bool {
	return slices.Contains(LeaveTypes, t)
}

type LeaveRequest struct {
	ID         uuid.UUID `gorm:"type:char(36);primaryKey" json:"id"`
	EmployeeID uint      `gorm:"column:employee_id;index;not null" json:"employeeId"`

	EmployeeSnapshot `gorm:"embedded"`

	LeaveType string    `gorm:"size:30;not null" json:"leaveType"`
	StartDate time.Time `gorm:"type:date;not null" json:"startDate"`
	EndDate   time.Time `gorm:"type:date;not null" json:"endDate"`
	TotalDays int       `gorm:"not null" json:"totalDays"`
	Reason    string    `gorm:"size:500" json:"reason"`

	Status      string     `gorm:"size:20;not null;default:'Pending';index" json:"status"`
	AppliedDate time.Time  `gorm:"type:date;not null" json:"appliedDate"`
	ApprovedBy  *string    `gorm:"size:100" json:"approvedBy,omitempty"`
	ApprovedAt  *time.Time `json:"approvedAt,omitempty"`
	RejectedBy  *string    `gorm:"size:100" json:"rejectedBy,omitempty"`
	RejectedAt  *time.Time `json:"rejectedAt,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

func (l *LeaveRequest) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
