package core

import (
	"errors"
	"fmt"

	"attendly.com/attendly/model"
	"gorm.io/gorm"
)

// NextEmployeeCode derives the next sequential "EMP###" directory code
// from the highest primary key, so codes survive deletions without reuse.
func NextEmployeeCode(db *gorm.DB) (string, error) {
	var last model.Employee
	err := db.Order("id DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "EMP001", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to fetch last employee: %w", err)
	}
	return fmt.Sprintf("EMP%03d", last.ID+1), nil
}

// CreateEmployee assigns the directory code and inserts the employee.
// The unique email index backstops concurrent creates with the same
// address.
func CreateEmployee(db *gorm.DB, emp *model.Employee) error {
	code, err := NextEmployeeCode(db)
	if err != nil {
		return err
	}
	emp.EmployeeID = code
	if emp.Status == "" {
		emp.Status = model.EmployeeStatusActive
	}

	if err := db.Create(emp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}
	return nil
}

// UpdateEmployee applies the non-nil fields of updates, surfacing a unique
// email collision the same way CreateEmployee does.
func UpdateEmployee(db *gorm.DB, emp *model.Employee, updates any) error {
	if err := db.Model(emp).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}
	return nil
}

func FindEmployeeByID(db *gorm.DB, id uint) (*model.Employee, error) {
	var emp model.Employee
	if err := db.First(&emp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return &emp, nil
}
