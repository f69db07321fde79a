// Package models defines the core domain models of the organization:
// employees, departments, roles and the requests that change how they relate.
package models

import (
	"time"

	"github.com/google/uuid"
)

// EmploymentType represents how an employee is contracted.
type EmploymentType string

const (
	FullTime EmploymentType = "FULL_TIME"
	PartTime EmploymentType = "PART_TIME"
)

// Employee defines the domain model for an employee.
type Employee struct {
	// ID is the unique identifier of the employee.
	ID uuid.UUID
	// Email is unique across employees.
	Email    string
	FullName string
	Phone    string
	// Role is always loaded together with the employee.
	Role Role
	// DepartmentID is nil when the employee belongs to no department.
	DepartmentID *uuid.UUID
	// ManagerID points at the employee's direct manager, if any.
	ManagerID *uuid.UUID
	// IsActive is false for soft-deleted employees.
	IsActive       bool
	EmploymentType EmploymentType
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsHeadKind reports whether the employee holds the department-head role kind.
func (e *Employee) IsHeadKind() bool {
	return e.Role.Kind() == KindDepartmentHead
}

// IsTopKind reports whether the employee holds the top-level manager role kind.
func (e *Employee) IsTopKind() bool {
	return e.Role.Kind() == KindTopManager
}

// InDepartment reports whether the employee currently belongs to departmentID.
func (e *Employee) InDepartment(departmentID uuid.UUID) bool {
	return e.DepartmentID != nil && *e.DepartmentID == departmentID
}

// CreateEmployee carries the fields needed to create an employee.
type CreateEmployee struct {
	Email          string
	FullName       string
	Phone          string
	RoleName       string
	DepartmentID   *uuid.UUID
	EmploymentType EmploymentType
}

// EmployeeUpdate represents the identity fields that can be updated.
// Pointer types are used to allow partial updates.
type EmployeeUpdate struct {
	ID             uuid.UUID
	FullName       *string
	Phone          *string
	EmploymentType *EmploymentType
	RoleName       *string
}

// EmployeeFilter narrows ListEmployees.
type EmployeeFilter struct {
	DepartmentID *uuid.UUID
	ManagerID    *uuid.UUID
	ActiveOnly   bool
	// Roles keeps employees holding one of the named roles.
	Roles []string
}
