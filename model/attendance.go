package model

import "time"

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusHalfDay = "Half Day"
	StatusLate    = "Late"
	StatusOnLeave = "On Leave"
	StatusOffDay  = "Off Day"
)

const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

const (
	MethodManual   = "manual"
	MethodLocation = "location"
	MethodAuto     = "auto"
)

const (
	RequestCheckIn  = "checkin"
	RequestCheckOut = "checkout"
)

// AttendanceRecord is one row per employee per calendar day. The composite
// unique index is the only thing standing between two near-simultaneous
// check-in requests; callers translate the duplicate-key error.
type AttendanceRecord struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	EmployeeID uint `gorm:"column:employee_id;not null;uniqueIndex:idx_employee_date" json:"employeeId"`

	EmployeeSnapshot `gorm:"embedded"`

	Date time.Time `gorm:"type:date;not null;uniqueIndex:idx_employee_date" json:"date"`

	CheckInTime  *time.Time `json:"checkInTime"`
	CheckOutTime *time.Time `json:"checkOutTime"`
	CheckIn      string     `gorm:"size:20" json:"checkIn"`
	CheckOut     string     `gorm:"size:20" json:"checkOut"`

	TotalHours   float64 `gorm:"type:decimal(10,2)" json:"totalHours"`
	WorkingHours float64 `gorm:"type:decimal(10,2)" json:"workingHours"`
	RegularPay   float64 `gorm:"type:decimal(10,2)" json:"regularPay"`
	TotalPay     float64 `gorm:"type:decimal(10,2)" json:"totalPay"`
	BreakTime    float64 `gorm:"type:decimal(4,2);not null;default:1" json:"breakTime"`

	Status         string   `gorm:"size:20;not null;default:'Present'" json:"status"`
	ApprovalStatus string   `gorm:"size:20;not null;default:'pending'" json:"approvalStatus"`
	Method         string   `gorm:"size:20;not null;default:'manual'" json:"method"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	RequestType    *string  `gorm:"size:10" json:"requestType,omitempty"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

// CheckInApproved reports whether the day's check-in cleared approval.
func (r *AttendanceRecord) CheckInApproved() bool {
	return r.CheckInTime != nil && r.ApprovalStatus == ApprovalApproved
}
