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

func (r *Repository) CreateDepartment(ctx context.Context, department *models.Department) error {
	row := departmentToRow(department)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return translateError(err)
	}
	department.CreatedAt = row.CreatedAt
	department.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *Repository) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	var row dbmodels.Department
	result := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: department %s", e.ErrNotFound, id)
		}
		return nil, result.Error
	}
	return departmentFromRow(&row), nil
}

// FindDepartmentByManager returns the department headed by managerID.
func (r *Repository) FindDepartmentByManager(ctx context.Context, managerID uuid.UUID) (*models.Department, error) {
	var row dbmodels.Department
	result := r.db.WithContext(ctx).Where("manager_id = ?", managerID).Limit(1).Find(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: no department headed by %s", e.ErrNotFound, managerID)
	}
	return departmentFromRow(&row), nil
}

func (r *Repository) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	var rows []dbmodels.Department
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]*models.Department, 0, len(rows))
	for i := range rows {
		out = append(out, departmentFromRow(&rows[i]))
	}
	return out, nil
}

// UpdateDepartment applies the non-nil descriptive fields of update.
// The manager reference is left alone.
func (r *Repository) UpdateDepartment(ctx context.Context, update *models.DepartmentUpdate) error {
	updates := map[string]interface{}{}
	if update.Name != nil {
		updates["name"] = *update.Name
	}
	if update.Code != nil {
		updates["code"] = *update.Code
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}

	if len(updates) == 0 {
		_, err := r.GetDepartment(ctx, update.ID)
		return err
	}

	result := r.db.WithContext(ctx).Model(&dbmodels.Department{}).
		Where("id = ?", update.ID).
		Updates(updates)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: department %s", e.ErrNotFound, update.ID)
	}
	return nil
}

// SetDepartmentManager writes the head reference. A head already heading
// another department trips the unique constraint on manager_id.
func (r *Repository) SetDepartmentManager(ctx context.Context, id uuid.UUID, managerID *uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&dbmodels.Department{}).
		Where("id = ?", id).
		Update("manager_id", nullableID(managerID))
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: department %s", e.ErrNotFound, id)
	}
	return nil
}

func (r *Repository) DeleteDepartment(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&dbmodels.Department{}, "id = ?", id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: department %s", e.ErrNotFound, id)
	}
	return nil
}

// DepartmentExists reports whether a department other than excludeID uses
// the given column value. Only "code" and "name" are accepted.
func (r *Repository) DepartmentExists(ctx context.Context, column, value string, excludeID *uuid.UUID) (bool, error) {
	if column != "code" && column != "name" {
		return false, fmt.Errorf("%w: unsupported column %q", e.ErrInvalidInput, column)
	}

	query := r.db.WithContext(ctx).Model(&dbmodels.Department{}).
		Where(column+" = ?", value)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
