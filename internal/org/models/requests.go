package models

import (
	"github.com/google/uuid"
)

// DeleteDepartmentRequest deletes a department. Without Force the department
// must have no active members other than its head.
type DeleteDepartmentRequest struct {
	ID    uuid.UUID
	Force bool
}

// DeleteResult confirms a deletion.
type DeleteResult struct {
	Message string
	// Detached lists the employees whose department reference was cleared.
	Detached []uuid.UUID
}

// AssignManagerRequest sets or clears (ManagerID == nil) a department's head.
type AssignManagerRequest struct {
	DepartmentID uuid.UUID
	ManagerID    *uuid.UUID
}

// BulkAssignRequest moves a set of employees into a department.
type BulkAssignRequest struct {
	DepartmentID uuid.UUID
	EmployeeIDs  []uuid.UUID
	// AutoAssignManager makes the department head the direct manager of
	// every assigned employee that is not a head itself.
	AutoAssignManager bool
}

// NewBulkAssignRequest builds a BulkAssignRequest with AutoAssignManager enabled.
func NewBulkAssignRequest(departmentID uuid.UUID, employeeIDs ...uuid.UUID) BulkAssignRequest {
	return BulkAssignRequest{
		DepartmentID:      departmentID,
		EmployeeIDs:       employeeIDs,
		AutoAssignManager: true,
	}
}

// BulkAssignResult reports the outcome of a BulkAssignRequest.
type BulkAssignResult struct {
	Department *Department
	Assigned   []*Employee
	// AutoAssignedManager is the head set as manager, nil when none was.
	AutoAssignedManager *uuid.UUID
}

// BulkRemoveRequest detaches a set of employees from a department.
type BulkRemoveRequest struct {
	DepartmentID uuid.UUID
	EmployeeIDs  []uuid.UUID
}

// BulkRemoveResult reports the outcome of a BulkRemoveRequest.
type BulkRemoveResult struct {
	Department *Department
	Removed    []*Employee
}

// TransferRequest moves one employee to another department, or out of any
// department when DepartmentID is nil.
type TransferRequest struct {
	EmployeeID   uuid.UUID
	DepartmentID *uuid.UUID
}

// TransferResult reports the outcome of a TransferRequest.
type TransferResult struct {
	Employee *Employee
	// PreviousDepartmentID is where the employee was before the transfer.
	PreviousDepartmentID *uuid.UUID
	// AutoAssignedManager is true when the transfer installed a new manager.
	AutoAssignedManager bool
}

// AssignEmployeeManagerRequest sets or clears an employee's direct manager.
type AssignEmployeeManagerRequest struct {
	EmployeeID uuid.UUID
	ManagerID  *uuid.UUID
}
