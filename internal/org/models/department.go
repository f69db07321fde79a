package models

import (
	"time"

	"github.com/google/uuid"
)

// Department defines the domain model for a department.
type Department struct {
	ID          uuid.UUID
	Name        string
	Code        string
	Description string
	// ManagerID references the department head, if any.
	ManagerID *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DepartmentStatistics summarises the members of a department.
type DepartmentStatistics struct {
	TotalEmployees    int
	ActiveEmployees   int
	FullTimeEmployees int
	PartTimeEmployees int
}

// DepartmentDetail is a department together with its head and members.
type DepartmentDetail struct {
	Department *Department
	Manager    *Employee
	Employees  []*Employee
	Statistics DepartmentStatistics
}

// CreateDepartment carries the fields needed to create a department.
type CreateDepartment struct {
	Name        string
	Code        string
	Description string
}

// DepartmentUpdate represents the fields that can be updated for a Department.
// The manager is changed through AssignManagerRequest when ManagerSet is true.
type DepartmentUpdate struct {
	ID          uuid.UUID
	Name        *string
	Code        *string
	Description *string
	ManagerSet  bool
	ManagerID   *uuid.UUID
}

// Statistics computes the member summary of employees.
func Statistics(employees []*Employee) DepartmentStatistics {
	stats := DepartmentStatistics{TotalEmployees: len(employees)}
	for _, e := range employees {
		if !e.IsActive {
			continue
		}
		stats.ActiveEmployees++
		switch e.EmploymentType {
		case FullTime:
			stats.FullTimeEmployees++
		case PartTime:
			stats.PartTimeEmployees++
		}
	}
	return stats
}
