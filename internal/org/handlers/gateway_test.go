package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	pb "github.com/gartstein/orgchart/api/gen/org/v1"
	"github.com/gartstein/orgchart/internal/org/handlers"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (h *harness) do(t *testing.T, method, path string, header http.Header, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, h.gateway.URL+path, reader)
	require.NoError(t, err)
	for k, v := range header {
		req.Header[k] = v
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.gateway.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = resp.Body.Close()
	})
	return resp
}

// decode reads a gateway response body into a fresh T.
func decode[T any, P interface {
	*T
	proto.Message
}](t *testing.T, resp *http.Response) P {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := P(new(T))
	require.NoError(t, protojson.Unmarshal(raw, out), string(raw))
	return out
}

func decodeError(t *testing.T, resp *http.Response) errorResponse {
	t.Helper()
	var out errorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestGateway_DepartmentLifecycle(t *testing.T) {
	h := newHarness(t)
	admin := bearer(token(t, models.RoleManager))
	create := map[string]any{"name": "Ops", "code": "ops"}

	resp := h.do(t, http.MethodPost, "/v1/departments", nil, create)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = h.do(t, http.MethodPost, "/v1/departments", bearer(token(t, models.RoleTeamLead)), create)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = h.do(t, http.MethodPost, "/v1/departments", admin, create)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	created := decode[pb.DepartmentResponse](t, resp)
	assert.Equal(t, "OPS", created.GetDepartment().GetCode())
	assert.Nil(t, created.GetDepartment().ManagerId)
	id := created.GetDepartment().GetId()

	resp = h.do(t, http.MethodGet, "/v1/departments/"+id, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decode[pb.GetDepartmentResponse](t, resp)
	assert.Equal(t, "Ops", detail.GetDepartment().GetName())
	require.NotNil(t, detail.GetStatistics())
	assert.Zero(t, detail.GetStatistics().GetTotalEmployees())

	resp = h.do(t, http.MethodPatch, "/v1/departments/"+id, admin, map[string]any{"description": "Keeps the lights on"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[pb.DepartmentResponse](t, resp)
	assert.Equal(t, "Keeps the lights on", updated.GetDepartment().GetDescription())

	resp = h.do(t, http.MethodGet, "/v1/departments", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[pb.ListDepartmentsResponse](t, resp).GetDepartments(), 1)

	resp = h.do(t, http.MethodDelete, "/v1/departments/"+id+"?force=maybe", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.do(t, http.MethodDelete, "/v1/departments/"+id+"?force=true", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deleted := decode[pb.DeleteDepartmentResponse](t, resp)
	assert.Equal(t, "department OPS deleted, 0 employees detached", deleted.GetMessage())

	resp = h.do(t, http.MethodGet, "/v1/departments/"+id, nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	notFound := decodeError(t, resp)
	assert.Equal(t, int(codes.NotFound), notFound.Code)
	assert.Contains(t, notFound.Message, "not found")
}

func TestGateway_EmployeeRoutes(t *testing.T) {
	h := newHarness(t)
	admin := bearer(token(t, models.RoleManager))

	resp := h.do(t, http.MethodPost, "/v1/departments", admin, map[string]any{"name": "Sales", "code": "SALES"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deptID := decode[pb.DepartmentResponse](t, resp).GetDepartment().GetId()

	resp = h.do(t, http.MethodPost, "/v1/employees", admin, map[string]any{
		"email": "Helen.Head@Example.com", "fullName": "Helen Head", "role": "dept_manager",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	head := decode[pb.EmployeeResponse](t, resp).GetEmployee()
	assert.Equal(t, "helen.head@example.com", head.GetEmail())

	resp = h.do(t, http.MethodPut, "/v1/departments/"+deptID+"/manager", admin, map[string]any{"managerId": head.GetId()})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.do(t, http.MethodPost, "/v1/employees", admin, map[string]any{
		"email": "sam@example.com", "fullName": "Sam Staff", "departmentId": deptID,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	staff := decode[pb.EmployeeResponse](t, resp).GetEmployee()
	require.NotNil(t, staff.ManagerId)
	assert.Equal(t, head.GetId(), staff.GetManagerId())
	assert.Equal(t, pb.EmploymentType_FULL_TIME, staff.GetEmploymentType())

	resp = h.do(t, http.MethodGet, "/v1/employees?departmentId="+deptID+"&activeOnly=true", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[pb.ListEmployeesResponse](t, resp).GetEmployees(), 2)

	resp = h.do(t, http.MethodGet, "/v1/employees?departmentId="+deptID+"&roles=DEPT_MANAGER&roles=MANAGER", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	heads := decode[pb.ListEmployeesResponse](t, resp).GetEmployees()
	require.Len(t, heads, 1)
	assert.Equal(t, head.GetId(), heads[0].GetId())

	resp = h.do(t, http.MethodPut, "/v1/employees/"+staff.GetId()+"/manager", admin, map[string]any{"managerId": staff.GetId()})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.do(t, http.MethodPut, "/v1/employees/"+staff.GetId()+"/manager", admin, map[string]any{"managerId": nil})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Nil(t, decode[pb.EmployeeResponse](t, resp).GetEmployee().ManagerId)

	resp = h.do(t, http.MethodPost, "/v1/departments/"+deptID+"/employees", admin, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "employeeIds are required")

	resp = h.do(t, http.MethodPost, "/v1/departments/"+deptID+"/employees", admin, map[string]any{"employeeIds": []string{staff.GetId()}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	bulk := decode[pb.AssignEmployeesResponse](t, resp)
	require.NotNil(t, bulk.AutoAssignedManagerId)
	assert.Equal(t, head.GetId(), bulk.GetAutoAssignedManagerId())

	resp = h.do(t, http.MethodDelete, "/v1/departments/"+deptID+"/employees", admin, map[string]any{"employeeIds": []string{staff.GetId()}})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	removed := decode[pb.RemoveEmployeesResponse](t, resp)
	require.Len(t, removed.GetRemoved(), 1)
	assert.Nil(t, removed.GetRemoved()[0].DepartmentId)
	assert.Nil(t, removed.GetRemoved()[0].ManagerId)

	resp = h.do(t, http.MethodPost, "/v1/employees/"+staff.GetId()+"/transfer", admin, map[string]any{"departmentId": deptID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	transfer := decode[pb.TransferEmployeeResponse](t, resp)
	assert.True(t, transfer.GetAutoAssignedManager())
	assert.Nil(t, transfer.PreviousDepartmentId)

	resp = h.do(t, http.MethodPatch, "/v1/employees/"+staff.GetId(), admin, map[string]any{"employmentType": "PART_TIME"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, pb.EmploymentType_PART_TIME, decode[pb.EmployeeResponse](t, resp).GetEmployee().GetEmploymentType())

	resp = h.do(t, http.MethodPost, "/v1/employees/"+staff.GetId()+"/deactivate", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, decode[pb.EmployeeResponse](t, resp).GetEmployee().GetIsActive())

	resp = h.do(t, http.MethodPost, "/v1/employees/"+staff.GetId()+"/activate", admin, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, decode[pb.EmployeeResponse](t, resp).GetEmployee().GetIsActive())

	resp = h.do(t, http.MethodGet, "/v1/employees/"+uuid.NewString(), nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/v1/employees/not-a-uuid", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/v1/activity?subjectId="+staff.GetId()+"&limit=2", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[pb.ListActivityResponse](t, resp).GetActivity(), 2)

	resp = h.do(t, http.MethodGet, "/v1/activity?limit=lots", nil, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGateway_MyDepartment(t *testing.T) {
	h := newHarness(t)
	admin := bearer(token(t, models.RoleManager))

	resp := h.do(t, http.MethodPost, "/v1/departments", admin, map[string]any{"name": "Sales", "code": "SALES"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	deptID := decode[pb.DepartmentResponse](t, resp).GetDepartment().GetId()

	resp = h.do(t, http.MethodPost, "/v1/employees", admin, map[string]any{
		"email": "helen@example.com", "fullName": "Helen Head", "role": models.RoleDeptManager,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	headID := decode[pb.EmployeeResponse](t, resp).GetEmployee().GetId()

	resp = h.do(t, http.MethodPut, "/v1/departments/"+deptID+"/manager", admin, map[string]any{"managerId": headID})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/v1/departments/mine", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/v1/departments/mine", bearer(tokenFor(t, headID, models.RoleStaff)), nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/v1/departments/mine", bearer(tokenFor(t, headID, models.RoleDeptManager)), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mine := decode[pb.GetDepartmentResponse](t, resp)
	assert.Equal(t, deptID, mine.GetDepartment().GetId())
	assert.Equal(t, headID, mine.GetManager().GetId())
	assert.EqualValues(t, 1, mine.GetStatistics().GetTotalEmployees())

	resp = h.do(t, http.MethodGet, "/v1/departments/mine", bearer(tokenFor(t, uuid.NewString(), models.RoleDeptManager)), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestGateway_RolesAndMetrics(t *testing.T) {
	h := newHarness(t)

	resp := h.do(t, http.MethodGet, "/v1/roles", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, decode[pb.ListRolesResponse](t, resp).GetRoles(), len(models.DefaultRoles()))

	resp = h.do(t, http.MethodPost, "/v1/departments", bearer(token(t, models.RoleManager)), map[string]any{"name": "Legal", "code": "LEGAL"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = h.do(t, http.MethodGet, "/metrics", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), "orgchart_operations_total"), "service metrics are exported")
}

func TestProtectedRoutes(t *testing.T) {
	routes := handlers.ProtectedRoutes()
	methods := handlers.ProtectedMethods()

	assert.Len(t, routes, len(methods), "every protected method has exactly one route")
	for _, r := range routes {
		if r.Pattern == "/v1/departments/mine" {
			assert.Equal(t, models.PermViewDeptEmployees, r.Permission)
			continue
		}
		assert.NotEqual(t, http.MethodGet, r.Method, "reads stay open: %s", r.Pattern)
	}
	assert.Equal(t, models.PermManageAllEmployees, methods[pb.OrgService_CreateEmployee_FullMethodName])
	assert.Equal(t, models.PermManageDepartments, methods[pb.OrgService_TransferEmployee_FullMethodName])
	assert.NotContains(t, methods, pb.OrgService_GetDepartment_FullMethodName)
}
