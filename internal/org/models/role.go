package models

import (
	"github.com/google/uuid"
)

// RoleKind is the semantic category of a Role, derived from its name.
type RoleKind int

const (
	// KindStaff covers every role without managerial duties.
	KindStaff RoleKind = iota
	// KindTeamLead leads a team inside a department.
	KindTeamLead
	// KindDepartmentHead may be referenced as a department's manager.
	KindDepartmentHead
	// KindTopManager manages everything and never reports to anyone.
	KindTopManager
)

// Role names seeded into the store.
const (
	RoleManager     = "MANAGER"
	RoleDeptManager = "DEPT_MANAGER"
	RoleTeamLead    = "TEAM_LEAD"
	RoleStaff       = "STAFF"
)

// Permission names.
const (
	PermManageAllEmployees  = "manage_all_employees"
	PermManageDeptEmployees = "manage_dept_employees"
	PermManageTeamMembers   = "manage_team_members"
	PermViewAllEmployees    = "view_all_employees"
	PermViewDeptEmployees   = "view_dept_employees"
	PermViewTeamMembers     = "view_team_members"
	PermViewOwnProfile      = "view_own_profile"
	PermManageDepartments   = "manage_departments"
	PermManageTeams         = "manage_teams"
)

// Role groups a set of granted permissions under a name and level.
type Role struct {
	ID          uuid.UUID
	Name        string
	DisplayName string
	Level       int
	Permissions []string
}

// Kind maps the role name onto its RoleKind.
func (r Role) Kind() RoleKind {
	switch r.Name {
	case RoleManager:
		return KindTopManager
	case RoleDeptManager:
		return KindDepartmentHead
	case RoleTeamLead:
		return KindTeamLead
	default:
		return KindStaff
	}
}

// HasPermission reports whether the role grants the named permission.
func (r Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p == name {
			return true
		}
	}
	return false
}

// Permission is a named capability that roles may grant.
type Permission struct {
	Name        string
	DisplayName string
	Resource    string
	Action      string
}

// DefaultPermissions is the static permission catalogue.
func DefaultPermissions() []Permission {
	return []Permission{
		{Name: PermManageAllEmployees, DisplayName: "Manage all employees", Resource: "employee", Action: "manage_all"},
		{Name: PermManageDeptEmployees, DisplayName: "Manage department employees", Resource: "employee", Action: "manage_dept"},
		{Name: PermManageTeamMembers, DisplayName: "Manage team members", Resource: "employee", Action: "manage_team"},
		{Name: PermViewAllEmployees, DisplayName: "View all employees", Resource: "employee", Action: "read_all"},
		{Name: PermViewDeptEmployees, DisplayName: "View department employees", Resource: "employee", Action: "read_dept"},
		{Name: PermViewTeamMembers, DisplayName: "View team members", Resource: "employee", Action: "read_team"},
		{Name: PermViewOwnProfile, DisplayName: "View own profile", Resource: "employee", Action: "read_own"},
		{Name: PermManageDepartments, DisplayName: "Manage departments", Resource: "department", Action: "manage"},
		{Name: PermManageTeams, DisplayName: "Manage teams", Resource: "team", Action: "manage"},
	}
}

// DefaultRoles is the static role catalogue. MANAGER holds every permission.
func DefaultRoles() []Role {
	all := make([]string, 0, len(DefaultPermissions()))
	for _, p := range DefaultPermissions() {
		all = append(all, p.Name)
	}

	return []Role{
		{Name: RoleManager, DisplayName: "Manager", Level: 4, Permissions: all},
		{Name: RoleDeptManager, DisplayName: "Department manager", Level: 3, Permissions: []string{
			PermManageDeptEmployees,
			PermManageTeamMembers,
			PermViewDeptEmployees,
			PermViewTeamMembers,
			PermViewOwnProfile,
			PermManageTeams,
		}},
		{Name: RoleTeamLead, DisplayName: "Team lead", Level: 2, Permissions: []string{
			PermManageTeamMembers,
			PermViewTeamMembers,
			PermViewOwnProfile,
		}},
		{Name: RoleStaff, DisplayName: "Staff", Level: 1, Permissions: []string{
			PermViewOwnProfile,
		}},
	}
}

// LookupDefaultRole returns the catalogue entry for name.
func LookupDefaultRole(name string) (Role, bool) {
	for _, r := range DefaultRoles() {
		if r.Name == name {
			return r, true
		}
	}
	return Role{}, false
}
