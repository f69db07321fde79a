package db

import (
	dbmodels "github.com/gartstein/orgchart/internal/org/db/models"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/google/uuid"
)

func departmentToRow(d *models.Department) *dbmodels.Department {
	return &dbmodels.Department{
		ID:          d.ID,
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		ManagerID:   d.ManagerID,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

func departmentFromRow(row *dbmodels.Department) *models.Department {
	return &models.Department{
		ID:          row.ID,
		Name:        row.Name,
		Code:        row.Code,
		Description: row.Description,
		ManagerID:   row.ManagerID,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func employeeToRow(emp *models.Employee) *dbmodels.Employee {
	return &dbmodels.Employee{
		ID:             emp.ID,
		Email:          emp.Email,
		FullName:       emp.FullName,
		Phone:          emp.Phone,
		RoleID:         emp.Role.ID,
		DepartmentID:   emp.DepartmentID,
		ManagerID:      emp.ManagerID,
		IsActive:       emp.IsActive,
		EmploymentType: string(emp.EmploymentType),
		CreatedAt:      emp.CreatedAt,
		UpdatedAt:      emp.UpdatedAt,
	}
}

func employeeFromRow(row *dbmodels.Employee) *models.Employee {
	return &models.Employee{
		ID:             row.ID,
		Email:          row.Email,
		FullName:       row.FullName,
		Phone:          row.Phone,
		Role:           roleFromRow(&row.Role),
		DepartmentID:   row.DepartmentID,
		ManagerID:      row.ManagerID,
		IsActive:       row.IsActive,
		EmploymentType: models.EmploymentType(row.EmploymentType),
		CreatedAt:      row.CreatedAt,
		UpdatedAt:      row.UpdatedAt,
	}
}

func employeesFromRows(rows []dbmodels.Employee) []*models.Employee {
	out := make([]*models.Employee, 0, len(rows))
	for i := range rows {
		out = append(out, employeeFromRow(&rows[i]))
	}
	return out
}

func roleFromRow(row *dbmodels.Role) models.Role {
	perms := make([]string, 0, len(row.Permissions))
	for _, p := range row.Permissions {
		perms = append(perms, p.Name)
	}
	return models.Role{
		ID:          row.ID,
		Name:        row.Name,
		DisplayName: row.DisplayName,
		Level:       row.Level,
		Permissions: perms,
	}
}

func activityFromRow(row *dbmodels.ActivityLog) *models.Activity {
	return &models.Activity{
		ID:          row.ID,
		SubjectID:   row.SubjectID,
		Actor:       row.Actor,
		Action:      row.Action,
		Entity:      row.Entity,
		Description: row.Description,
		CreatedAt:   row.CreatedAt,
	}
}

// nullableID turns a nil reference into an untyped nil so every driver
// writes NULL.
func nullableID(id *uuid.UUID) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
