package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleKind(t *testing.T) {
	tests := []struct {
		name string
		want RoleKind
	}{
		{RoleManager, KindTopManager},
		{RoleDeptManager, KindDepartmentHead},
		{RoleTeamLead, KindTeamLead},
		{RoleStaff, KindStaff},
		{"INTERN", KindStaff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Role{Name: tt.name}.Kind())
		})
	}
}

func TestDefaultRoles(t *testing.T) {
	manager, ok := LookupDefaultRole(RoleManager)
	require.True(t, ok)
	assert.Len(t, manager.Permissions, len(DefaultPermissions()))
	for _, p := range DefaultPermissions() {
		assert.True(t, manager.HasPermission(p.Name), p.Name)
	}

	staff, ok := LookupDefaultRole(RoleStaff)
	require.True(t, ok)
	assert.True(t, staff.HasPermission(PermViewOwnProfile))
	assert.False(t, staff.HasPermission(PermManageDepartments))

	_, ok = LookupDefaultRole("INTERN")
	assert.False(t, ok)
}

func TestEmployeeKinds(t *testing.T) {
	dept := uuid.New()
	head := &Employee{Role: Role{Name: RoleDeptManager}, DepartmentID: &dept}
	top := &Employee{Role: Role{Name: RoleManager}}

	assert.True(t, head.IsHeadKind())
	assert.False(t, head.IsTopKind())
	assert.True(t, top.IsTopKind())
	assert.True(t, head.InDepartment(dept))
	assert.False(t, head.InDepartment(uuid.New()))
	assert.False(t, top.InDepartment(dept))
}

func TestStatistics(t *testing.T) {
	stats := Statistics([]*Employee{
		{IsActive: true, EmploymentType: FullTime},
		{IsActive: true, EmploymentType: PartTime},
		{IsActive: true, EmploymentType: FullTime},
		{IsActive: false, EmploymentType: FullTime},
	})

	assert.Equal(t, DepartmentStatistics{
		TotalEmployees:    4,
		ActiveEmployees:   3,
		FullTimeEmployees: 2,
		PartTimeEmployees: 1,
	}, stats)
}

func TestNewBulkAssignRequest(t *testing.T) {
	dept, a, b := uuid.New(), uuid.New(), uuid.New()
	req := NewBulkAssignRequest(dept, a, b)

	assert.Equal(t, dept, req.DepartmentID)
	assert.Equal(t, []uuid.UUID{a, b}, req.EmployeeIDs)
	assert.True(t, req.AutoAssignManager)
}
