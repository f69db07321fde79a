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

// SeedRoles upserts the static permission and role catalogues. Existing rows
// keep their ids, so running it twice leaves the tables unchanged.
func (r *Repository) SeedRoles(ctx context.Context) error {
	return r.WithTransaction(ctx, func(repo *Repository) error {
		tx := repo.db.WithContext(ctx)

		byName := make(map[string]dbmodels.Permission)
		for _, p := range models.DefaultPermissions() {
			var row dbmodels.Permission
			if err := tx.Where(dbmodels.Permission{Name: p.Name}).
				Attrs(dbmodels.Permission{ID: uuid.New()}).
				Assign(dbmodels.Permission{DisplayName: p.DisplayName, Resource: p.Resource, Action: p.Action}).
				FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed permission %s: %w", p.Name, err)
			}
			byName[p.Name] = row
		}

		for _, role := range models.DefaultRoles() {
			var row dbmodels.Role
			if err := tx.Where(dbmodels.Role{Name: role.Name}).
				Attrs(dbmodels.Role{ID: uuid.New()}).
				Assign(dbmodels.Role{DisplayName: role.DisplayName, Level: role.Level}).
				FirstOrCreate(&row).Error; err != nil {
				return fmt.Errorf("seed role %s: %w", role.Name, err)
			}

			granted := make([]dbmodels.Permission, 0, len(role.Permissions))
			for _, name := range role.Permissions {
				granted = append(granted, byName[name])
			}
			if err := tx.Model(&row).Association("Permissions").Replace(granted); err != nil {
				return fmt.Errorf("seed role %s permissions: %w", role.Name, err)
			}
		}
		return nil
	})
}

func (r *Repository) ListRoles(ctx context.Context) ([]models.Role, error) {
	var rows []dbmodels.Role
	if err := r.db.WithContext(ctx).Preload("Permissions").Order("level DESC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Role, 0, len(rows))
	for i := range rows {
		out = append(out, roleFromRow(&rows[i]))
	}
	return out, nil
}

func (r *Repository) GetRoleByName(ctx context.Context, name string) (*models.Role, error) {
	var row dbmodels.Role
	result := r.db.WithContext(ctx).Preload("Permissions").First(&row, "name = ?", name)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: role %s", e.ErrNotFound, name)
		}
		return nil, result.Error
	}
	role := roleFromRow(&row)
	return &role, nil
}
