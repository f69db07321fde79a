// Package dbtest opens throwaway SQLite-backed repositories for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/gartstein/orgchart/internal/org/db"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
)

// NewRepository returns a migrated repository over a private in-memory
// database. Roles are seeded when seed is true.
func NewRepository(t testing.TB, seed bool) *db.Repository {
	t.Helper()

	// A named shared-cache database survives connection churn inside the pool;
	// the random name keeps tests isolated from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	repo, err := db.Open(sqlite.Open(dsn))
	require.NoError(t, err, "failed to open test database")

	sqlDB, err := repo.DB().DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		_ = repo.Close()
	})

	if seed {
		require.NoError(t, repo.SeedRoles(context.Background()), "failed to seed roles")
	}
	return repo
}

// NewDepartment inserts a department without a head.
func NewDepartment(t testing.TB, repo *db.Repository, name, code string) *models.Department {
	t.Helper()

	dept := &models.Department{ID: uuid.New(), Name: name, Code: code}
	require.NoError(t, repo.CreateDepartment(context.Background(), dept), "failed to create department %s", code)
	return dept
}

// NewEmployee inserts an active full-time employee with the named role.
// Roles must have been seeded.
func NewEmployee(t testing.TB, repo *db.Repository, fullName, roleName string, departmentID, managerID *uuid.UUID) *models.Employee {
	t.Helper()
	ctx := context.Background()

	role, err := repo.GetRoleByName(ctx, roleName)
	require.NoError(t, err, "unknown role %s", roleName)

	emp := &models.Employee{
		ID:             uuid.New(),
		Email:          strings.ToLower(strings.ReplaceAll(fullName, " ", ".")) + "@example.com",
		FullName:       fullName,
		Role:           *role,
		DepartmentID:   departmentID,
		ManagerID:      managerID,
		IsActive:       true,
		EmploymentType: models.FullTime,
	}
	require.NoError(t, repo.CreateEmployee(ctx, emp), "failed to create employee %s", fullName)
	return emp
}

// Reload fetches the current state of an employee.
func Reload(t testing.TB, repo *db.Repository, id uuid.UUID) *models.Employee {
	t.Helper()

	emp, err := repo.GetEmployee(context.Background(), id)
	require.NoError(t, err)
	return emp
}
