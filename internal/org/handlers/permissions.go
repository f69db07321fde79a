package handlers

import (
	"net/http"

	pb "github.com/gartstein/orgchart/api/gen/org/v1"
	"github.com/gartstein/orgchart/internal/org/auth"
	"github.com/gartstein/orgchart/internal/org/models"
)

// ServiceName is the fully qualified gRPC service name, as reported by the
// health service.
const ServiceName = "org.v1.OrgService"

// methodPermissions lists the methods that need a token. GetMyDepartment is
// here because it resolves the caller from the token.
var methodPermissions = map[string]string{
	pb.OrgService_DeleteDepartment_FullMethodName:        models.PermManageDepartments,
	pb.OrgService_AssignDepartmentManager_FullMethodName: models.PermManageDepartments,
	pb.OrgService_AssignEmployees_FullMethodName:         models.PermManageDepartments,
	pb.OrgService_RemoveEmployees_FullMethodName:         models.PermManageDepartments,
	pb.OrgService_TransferEmployee_FullMethodName:        models.PermManageDepartments,
	pb.OrgService_AssignEmployeeManager_FullMethodName:   models.PermManageDepartments,
	pb.OrgService_CreateDepartment_FullMethodName:        models.PermManageDepartments,
	pb.OrgService_UpdateDepartment_FullMethodName:        models.PermManageDepartments,
	pb.OrgService_GetMyDepartment_FullMethodName:         models.PermViewDeptEmployees,
	pb.OrgService_CreateEmployee_FullMethodName:          models.PermManageAllEmployees,
	pb.OrgService_UpdateEmployee_FullMethodName:          models.PermManageAllEmployees,
	pb.OrgService_ActivateEmployee_FullMethodName:        models.PermManageAllEmployees,
	pb.OrgService_DeactivateEmployee_FullMethodName:      models.PermManageAllEmployees,
}

// ProtectedMethods maps the full name of every protected method to the
// permission it requires. Other reads are left open.
func ProtectedMethods() map[string]string {
	protected := make(map[string]string, len(methodPermissions))
	for method, permission := range methodPermissions {
		protected[method] = permission
	}
	return protected
}

// route mirrors a google.api.http binding from api/org/v1/org.proto.
type route struct {
	method  string
	pattern string
	rpc     string
}

var routes = []route{
	{http.MethodPost, "/v1/departments", pb.OrgService_CreateDepartment_FullMethodName},
	{http.MethodGet, "/v1/departments", pb.OrgService_ListDepartments_FullMethodName},
	{http.MethodGet, "/v1/departments/mine", pb.OrgService_GetMyDepartment_FullMethodName},
	{http.MethodGet, "/v1/departments/{id}", pb.OrgService_GetDepartment_FullMethodName},
	{http.MethodPatch, "/v1/departments/{id}", pb.OrgService_UpdateDepartment_FullMethodName},
	{http.MethodDelete, "/v1/departments/{id}", pb.OrgService_DeleteDepartment_FullMethodName},
	{http.MethodPut, "/v1/departments/{department_id}/manager", pb.OrgService_AssignDepartmentManager_FullMethodName},
	{http.MethodPost, "/v1/departments/{department_id}/employees", pb.OrgService_AssignEmployees_FullMethodName},
	{http.MethodDelete, "/v1/departments/{department_id}/employees", pb.OrgService_RemoveEmployees_FullMethodName},
	{http.MethodPost, "/v1/employees", pb.OrgService_CreateEmployee_FullMethodName},
	{http.MethodGet, "/v1/employees", pb.OrgService_ListEmployees_FullMethodName},
	{http.MethodGet, "/v1/employees/{id}", pb.OrgService_GetEmployee_FullMethodName},
	{http.MethodPatch, "/v1/employees/{id}", pb.OrgService_UpdateEmployee_FullMethodName},
	{http.MethodPost, "/v1/employees/{employee_id}/transfer", pb.OrgService_TransferEmployee_FullMethodName},
	{http.MethodPut, "/v1/employees/{employee_id}/manager", pb.OrgService_AssignEmployeeManager_FullMethodName},
	{http.MethodPost, "/v1/employees/{id}/activate", pb.OrgService_ActivateEmployee_FullMethodName},
	{http.MethodPost, "/v1/employees/{id}/deactivate", pb.OrgService_DeactivateEmployee_FullMethodName},
	{http.MethodGet, "/v1/roles", pb.OrgService_ListRoles_FullMethodName},
	{http.MethodGet, "/v1/activity", pb.OrgService_ListActivity_FullMethodName},
}

// ProtectedRoutes is the HTTP counterpart of ProtectedMethods, checked by
// auth.HTTPMiddleware before the gateway forwards the call.
func ProtectedRoutes() []auth.Route {
	var protected []auth.Route
	for _, r := range routes {
		permission, ok := methodPermissions[r.rpc]
		if !ok {
			continue
		}
		protected = append(protected, auth.Route{
			Method:     r.method,
			Pattern:    r.pattern,
			Permission: permission,
		})
	}
	return protected
}
