package model

import "time"

// User is an admin dashboard account. Employees authenticate with their
// employee code on the portal and never get a row here.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserName     string `gorm:"size:50;uniqueIndex;not null" json:"userName"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:100;not null" json:"-"`
	Role         string `gorm:"size:20;not null;default:'admin'" json:"role"`

	CreatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`
	UpdatedAt time.Time `gorm:"type:timestamp;not null;default:CURRENT_TIMESTAMP on update CURRENT_TIMESTAMP" json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
