package db

import (
	"context"
	"errors"
	"fmt"

	dbmodels "github.com/gartstein/orgchart/internal/org/db/models"
	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// employees preloads the role and its permissions for every employee query.
func (r *Repository) employees(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&dbmodels.Employee{}).Preload("Role.Permissions")
}

// CreateEmployee inserts the employee. The role must already be resolved.
func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	row := employeeToRow(employee)
	if err := r.db.WithContext(ctx).Omit("Role").Create(row).Error; err != nil {
		return translateError(err)
	}
	employee.CreatedAt = row.CreatedAt
	employee.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *Repository) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var row dbmodels.Employee
	result := r.employees(ctx).First(&row, "employees.id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: employee %s", e.ErrNotFound, id)
		}
		return nil, result.Error
	}
	return employeeFromRow(&row), nil
}

// GetEmployees returns the employees among ids that exist, in no particular order.
func (r *Repository) GetEmployees(ctx context.Context, ids []uuid.UUID) ([]*models.Employee, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []dbmodels.Employee
	if err := r.employees(ctx).Where("employees.id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return employeesFromRows(rows), nil
}

func (r *Repository) ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error) {
	query := r.employees(ctx)
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.ManagerID != nil {
		query = query.Where("manager_id = ?", *filter.ManagerID)
	}
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if len(filter.Roles) > 0 {
		roles := r.db.WithContext(ctx).Model(&dbmodels.Role{}).Select("id").Where("name IN ?", filter.Roles)
		query = query.Where("role_id IN (?)", roles)
	}

	var rows []dbmodels.Employee
	if err := query.Order("full_name ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return employeesFromRows(rows), nil
}

// ListDepartmentEmployees returns every member of the department, active or not.
func (r *Repository) ListDepartmentEmployees(ctx context.Context, departmentID uuid.UUID) ([]*models.Employee, error) {
	return r.ListEmployees(ctx, models.EmployeeFilter{DepartmentID: &departmentID})
}

// ListEmployeesByManager returns every employee reporting to managerID.
func (r *Repository) ListEmployeesByManager(ctx context.Context, managerID uuid.UUID) ([]*models.Employee, error) {
	return r.ListEmployees(ctx, models.EmployeeFilter{ManagerID: &managerID})
}

// UpdateEmployee applies the non-nil identity fields of update.
func (r *Repository) UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) error {
	updates := map[string]interface{}{}
	if update.FullName != nil {
		updates["full_name"] = *update.FullName
	}
	if update.Phone != nil {
		updates["phone"] = *update.Phone
	}
	if update.EmploymentType != nil {
		updates["employment_type"] = string(*update.EmploymentType)
	}
	if update.RoleName != nil {
		role, err := r.GetRoleByName(ctx, *update.RoleName)
		if err != nil {
			return err
		}
		updates["role_id"] = role.ID
	}

	if len(updates) == 0 {
		_, err := r.GetEmployee(ctx, update.ID)
		return err
	}

	result := r.db.WithContext(ctx).Model(&dbmodels.Employee{}).
		Where("id = ?", update.ID).
		Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: employee %s", e.ErrNotFound, update.ID)
	}
	return nil
}

// UpdateEmployeeRelations overwrites both the department and the manager
// reference of one employee. Nil clears the reference.
func (r *Repository) UpdateEmployeeRelations(ctx context.Context, id uuid.UUID, departmentID, managerID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"department_id": nullableID(departmentID),
			"manager_id":    nullableID(managerID),
		})
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: employee %s", e.ErrNotFound, id)
	}
	return nil
}

func (r *Repository) SetEmployeeActive(ctx context.Context, id uuid.UUID, active bool) error {
	result := r.db.WithContext(ctx).Model(&dbmodels.Employee{}).
		Where("id = ?", id).
		Update("is_active", active)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: employee %s", e.ErrNotFound, id)
	}
	return nil
}
