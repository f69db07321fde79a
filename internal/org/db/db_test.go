package db_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gartstein/orgchart/internal/org/db"
	"github.com/gartstein/orgchart/internal/org/db/dbtest"
	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/gartstein/orgchart/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateDepartment tests the creation of a department record.
func TestCreateDepartment(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	ctx := context.Background()

	dept := &models.Department{ID: uuid.New(), Name: "Sales", Code: "SALES", Description: "Sells things"}
	require.NoError(t, repo.CreateDepartment(ctx, dept))
	assert.False(t, dept.CreatedAt.IsZero(), "CreatedAt should be filled in")

	retrieved, err := repo.GetDepartment(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sales", retrieved.Name)
	assert.Equal(t, "SALES", retrieved.Code)
	assert.Equal(t, "Sells things", retrieved.Description)
	assert.Nil(t, retrieved.ManagerID)
}

// TestGetDepartmentNotFound verifies error handling when the department does not exist.
func TestGetDepartmentNotFound(t *testing.T) {
	repo := dbtest.NewRepository(t, false)

	_, err := repo.GetDepartment(context.Background(), uuid.New())
	assert.ErrorIs(t, err, e.ErrNotFound)
}

// TestDepartmentUniqueConstraints checks that duplicate codes and names map onto conflicts.
func TestDepartmentUniqueConstraints(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	ctx := context.Background()
	dbtest.NewDepartment(t, repo, "Sales", "SALES")

	err := repo.CreateDepartment(ctx, &models.Department{ID: uuid.New(), Name: "Other", Code: "SALES"})
	assert.ErrorIs(t, err, e.ErrDuplicateCode)
	assert.ErrorIs(t, err, e.ErrConflict)

	err = repo.CreateDepartment(ctx, &models.Department{ID: uuid.New(), Name: "Sales", Code: "OTHER"})
	assert.ErrorIs(t, err, e.ErrDuplicateName)
}

// TestUpdateDepartment checks partial updates.
func TestUpdateDepartment(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	ctx := context.Background()
	dept := dbtest.NewDepartment(t, repo, "Sales", "SALES")

	err := repo.UpdateDepartment(ctx, &models.DepartmentUpdate{ID: dept.ID, Description: utils.Ptr("Revenue")})
	require.NoError(t, err)

	updated, err := repo.GetDepartment(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sales", updated.Name, "Name should be unchanged")
	assert.Equal(t, "Revenue", updated.Description)

	err = repo.UpdateDepartment(ctx, &models.DepartmentUpdate{ID: uuid.New(), Name: utils.Ptr("x")})
	assert.ErrorIs(t, err, e.ErrNotFound)

	err = repo.UpdateDepartment(ctx, &models.DepartmentUpdate{ID: uuid.New()})
	assert.ErrorIs(t, err, e.ErrNotFound, "An empty update should still report a missing department")
}

// TestDeleteDepartment ensures departments are deleted correctly.
func TestDeleteDepartment(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	ctx := context.Background()
	dept := dbtest.NewDepartment(t, repo, "Sales", "SALES")

	require.NoError(t, repo.DeleteDepartment(ctx, dept.ID))

	_, err := repo.GetDepartment(ctx, dept.ID)
	assert.ErrorIs(t, err, e.ErrNotFound)

	err = repo.DeleteDepartment(ctx, dept.ID)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestDepartmentExists(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	ctx := context.Background()
	dept := dbtest.NewDepartment(t, repo, "Sales", "SALES")

	exists, err := repo.DepartmentExists(ctx, "code", "SALES", nil)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.DepartmentExists(ctx, "code", "SALES", &dept.ID)
	require.NoError(t, err)
	assert.False(t, exists, "The department itself should be excluded")

	exists, err = repo.DepartmentExists(ctx, "name", "Marketing", nil)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = repo.DepartmentExists(ctx, "description", "x", nil)
	assert.ErrorIs(t, err, e.ErrBadRequest)
}

// TestDepartmentManagerUnique checks that one employee heads at most one department.
func TestDepartmentManagerUnique(t *testing.T) {
	repo := dbtest.NewRepository(t, true)
	ctx := context.Background()
	sales := dbtest.NewDepartment(t, repo, "Sales", "SALES")
	support := dbtest.NewDepartment(t, repo, "Support", "SUPPORT")
	head := dbtest.NewEmployee(t, repo, "Mia Head", models.RoleDeptManager, &sales.ID, nil)

	require.NoError(t, repo.SetDepartmentManager(ctx, sales.ID, &head.ID))

	found, err := repo.FindDepartmentByManager(ctx, head.ID)
	require.NoError(t, err)
	assert.Equal(t, sales.ID, found.ID)

	err = repo.SetDepartmentManager(ctx, support.ID, &head.ID)
	assert.ErrorIs(t, err, e.ErrManagerAlreadyAssigned)

	require.NoError(t, repo.SetDepartmentManager(ctx, sales.ID, nil))
	_, err = repo.FindDepartmentByManager(ctx, head.ID)
	assert.ErrorIs(t, err, e.ErrNotFound)

	// Two departments without a head do not collide.
	require.NoError(t, repo.SetDepartmentManager(ctx, support.ID, nil))
}

func TestCreateEmployee(t *testing.T) {
	repo := dbtest.NewRepository(t, true)
	ctx := context.Background()
	dept := dbtest.NewDepartment(t, repo, "Sales", "SALES")

	emp := dbtest.NewEmployee(t, repo, "Eve Staff", models.RoleStaff, &dept.ID, nil)

	retrieved, err := repo.GetEmployee(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "eve.staff@example.com", retrieved.Email)
	assert.Equal(t, models.RoleStaff, retrieved.Role.Name)
	assert.True(t, retrieved.Role.HasPermission(models.PermViewOwnProfile), "Permissions should be preloaded")
	assert.Equal(t, dept.ID, *retrieved.DepartmentID)
	assert.Nil(t, retrieved.ManagerID)
	assert.True(t, retrieved.IsActive)
	assert.Equal(t, models.FullTime, retrieved.EmploymentType)
}

func TestCreateEmployeeDuplicateEmail(t *testing.T) {
	repo := dbtest.NewRepository(t, true)
	emp := dbtest.NewEmployee(t, repo, "Eve Staff", models.RoleStaff, nil, nil)

	dup := *emp
	dup.ID = uuid.New()
	err := repo.CreateEmployee(context.Background(), &dup)
	assert.ErrorIs(t, err, e.ErrDuplicateEmail)
}

func TestGetEmployees(t *testing.T) {
	repo := dbtest.NewRepository(t, true)
	a := dbtest.NewEmployee(t, repo, "Ann", models.RoleStaff, nil, nil)
	b := dbtest.NewEmployee(t, repo, "Bob", models.RoleStaff, nil, nil)

	found, err := repo.GetEmployees(context.Background(), []uuid.UUID{a.ID, b.ID, uuid.New()})
	require.NoError(t, err)
	assert.Len(t, found, 2, "Missing ids are silently skipped")

	found, err = repo.GetEmployees(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestListEmployeesFilters(t *testing.T) {
	repo := dbtest.NewRepository(t, true)
	ctx := context.Background()
	dept := dbtest.NewDepartment(t, repo, "Sales", "SALES")
	head := dbtest.NewEmployee(t, repo, "Mia Head", models.RoleDeptManager, &dept.ID, nil)
	ann := dbtest.NewEmployee(t, repo, "Ann", models.RoleStaff, &dept.ID, &head.ID)
	bob := dbtest.NewEmployee(t, repo, "Bob", models.RoleStaff, &dept.ID, &head.ID)
	dbtest.NewEmployee(t, repo, "Zed", models.RoleStaff, nil, nil)
	require.NoError(t, repo.SetEmployeeActive(ctx, bob.ID, false))

	all, err := repo.ListEmployees(ctx, models.EmployeeFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "Ann", all[0].FullName, "Employees should be ordered by name")

	members, err := repo.ListDepartmentEmployees(ctx, dept.ID)
	require.NoError(t, err)
	assert.Len(t, members, 3, "Inactive members are still members")

	active, err := repo.ListEmployees(ctx, models.EmployeeFilter{DepartmentID: &dept.ID, ActiveOnly: true})
	require.NoError(t, err)
	assert.Len(t, active, 2)

	reports, err := repo.ListEmployeesByManager(ctx, head.ID)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, ann.ID, reports[0].ID)

	candidates, err := repo.ListEmployees(ctx, models.EmployeeFilter{
		Roles:      []string{models.RoleManager, models.RoleDeptManager},
		ActiveOnly: true,
	})
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, head.ID, candidates[0].ID)

	staff, err := repo.ListEmployees(ctx, models.EmployeeFilter{DepartmentID: &dept.ID, Roles: []string{models.RoleStaff}})
	require.NoError(t, err)
	assert.Len(t, staff, 2)
}

func TestUpdateEmployee(t *testing.T) {
	repo := dbtest.NewRepository(t, true)
	ctx := context.Background()
	emp := dbtest.NewEmployee(t, repo, "Eve Staff", models.RoleStaff, nil, nil)

	err := repo.UpdateEmployee(ctx, &models.EmployeeUpdate{
		ID:             emp.ID,
		Phone:          utils.Ptr("+1 555 0100"),
		EmploymentType: utils.Ptr(models.PartTime),
		RoleName:       utils.Ptr(models.RoleTeamLead),
	})
	require.NoError(t, err)

	updated := dbtest.Reload(t, repo, emp.ID)
	assert.Equal(t, "Eve Staff", updated.FullName)
	assert.Equal(t, "+1 555 0100", updated.Phone)
	assert.Equal(t, models.PartTime, updated.EmploymentType)
	assert.Equal(t, models.RoleTeamLead, updated.Role.Name)

	err = repo.UpdateEmployee(ctx, &models.EmployeeUpdate{ID: emp.ID, RoleName: utils.Ptr("CEO")})
	assert.ErrorIs(t, err, e.ErrNotFound, "Unknown roles should be reported")

	err = repo.UpdateEmployee(ctx, &models.EmployeeUpdate{ID: uuid.New(), FullName: utils.Ptr("x")})
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestUpdateEmployeeRelations(t *testing.T) {
	repo := dbtest.NewRepository(t, true)
	ctx := context.Background()
	dept := dbtest.NewDepartment(t, repo, "Sales", "SALES")
	head := dbtest.NewEmployee(t, repo, "Mia Head", models.RoleDeptManager, &dept.ID, nil)
	emp := dbtest.NewEmployee(t, repo, "Eve Staff", models.RoleStaff, nil, nil)

	require.NoError(t, repo.UpdateEmployeeRelations(ctx, emp.ID, &dept.ID, &head.ID))
	updated := dbtest.Reload(t, repo, emp.ID)
	assert.Equal(t, dept.ID, *updated.DepartmentID)
	assert.Equal(t, head.ID, *updated.ManagerID)

	require.NoError(t, repo.UpdateEmployeeRelations(ctx, emp.ID, nil, nil))
	updated = dbtest.Reload(t, repo, emp.ID)
	assert.Nil(t, updated.DepartmentID)
	assert.Nil(t, updated.ManagerID)

	err := repo.UpdateEmployeeRelations(ctx, uuid.New(), nil, nil)
	assert.ErrorIs(t, err, e.ErrNotFound)
}

// TestWithTransactionRollback ensures a failing callback leaves no trace.
func TestWithTransactionRollback(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	ctx := context.Background()
	id := uuid.New()
	boom := errors.New("boom")

	err := repo.WithTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.CreateDepartment(ctx, &models.Department{ID: id, Name: "Sales", Code: "SALES"}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = repo.GetDepartment(ctx, id)
	assert.ErrorIs(t, err, e.ErrNotFound, "The insert should have been rolled back")

	err = repo.WithTransaction(ctx, func(tx *db.Repository) error {
		return tx.CreateDepartment(ctx, &models.Department{ID: id, Name: "Sales", Code: "SALES"})
	})
	require.NoError(t, err)
	_, err = repo.GetDepartment(ctx, id)
	assert.NoError(t, err)
}

// TestSeedRolesIdempotent runs the seed twice and checks the catalogue.
func TestSeedRolesIdempotent(t *testing.T) {
	repo := dbtest.NewRepository(t, true)
	ctx := context.Background()

	before, err := repo.ListRoles(ctx)
	require.NoError(t, err)

	require.NoError(t, repo.SeedRoles(ctx), "Seeding an already seeded database should succeed")
	require.NoError(t, repo.SeedRoles(ctx))

	roles, err := repo.ListRoles(ctx)
	require.NoError(t, err)
	require.Len(t, roles, len(models.DefaultRoles()))
	for i := range before {
		assert.Equal(t, before[i].ID, roles[i].ID, "Role %s should keep its id", roles[i].Name)
	}
	assert.Equal(t, models.RoleManager, roles[0].Name, "Roles should be ordered by level")

	for _, want := range models.DefaultRoles() {
		got, err := repo.GetRoleByName(ctx, want.Name)
		require.NoError(t, err)
		assert.ElementsMatch(t, want.Permissions, got.Permissions, "permissions of %s", want.Name)
	}
}

func TestActivityLog(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	ctx := context.Background()
	subject := uuid.New()

	for _, action := range []string{"department_created", "department_updated"} {
		require.NoError(t, repo.RecordActivity(ctx, &models.Activity{
			SubjectID: subject,
			Actor:     "admin",
			Action:    action,
			Entity:    "department",
		}))
	}
	require.NoError(t, repo.RecordActivity(ctx, &models.Activity{SubjectID: uuid.New(), Action: "employee_created", Entity: "employee"}))

	all, err := repo.ListActivity(ctx, nil, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	scoped, err := repo.ListActivity(ctx, &subject, 10)
	require.NoError(t, err)
	require.Len(t, scoped, 2)
	for _, a := range scoped {
		assert.Equal(t, subject, a.SubjectID)
		assert.Equal(t, "admin", a.Actor)
	}

	limited, err := repo.ListActivity(ctx, nil, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestPing(t *testing.T) {
	repo := dbtest.NewRepository(t, false)
	assert.NoError(t, repo.Ping(context.Background()))
}
