package models

import (
	"time"

	"github.com/google/uuid"
)

// Employee is the employees table. Department and manager are plain nullable
// references; the relationship engine keeps them consistent.
type Employee struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email          string     `gorm:"size:255;not null;uniqueIndex:uq_employees_email"`
	FullName       string     `gorm:"size:200;not null"`
	Phone          string     `gorm:"size:30"`
	RoleID         uuid.UUID  `gorm:"type:uuid;not null;index"`
	Role           Role       `gorm:"foreignKey:RoleID"`
	DepartmentID   *uuid.UUID `gorm:"type:uuid;index"`
	ManagerID      *uuid.UUID `gorm:"type:uuid;index"`
	IsActive       bool       `gorm:"not null"`
	EmploymentType string     `gorm:"size:20;not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
