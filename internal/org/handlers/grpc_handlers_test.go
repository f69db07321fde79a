package handlers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	pb "github.com/gartstein/orgchart/api/gen/org/v1"
	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/gartstein/orgchart/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// mockOrgController implements OrgController through optional function
// fields. Calling a method whose field is nil fails the test.
type mockOrgController struct {
	t *testing.T

	deleteDepartmentFunc      func(ctx context.Context, req models.DeleteDepartmentRequest) (*models.DeleteResult, error)
	assignManagerFunc         func(ctx context.Context, req models.AssignManagerRequest) (*models.Department, error)
	assignEmployeesFunc       func(ctx context.Context, req models.BulkAssignRequest) (*models.BulkAssignResult, error)
	removeEmployeesFunc       func(ctx context.Context, req models.BulkRemoveRequest) (*models.BulkRemoveResult, error)
	transferEmployeeFunc      func(ctx context.Context, req models.TransferRequest) (*models.TransferResult, error)
	assignEmployeeManagerFunc func(ctx context.Context, req models.AssignEmployeeManagerRequest) (*models.Employee, error)
	createDepartmentFunc      func(ctx context.Context, req *models.CreateDepartment) (*models.Department, error)
	getDepartmentFunc         func(ctx context.Context, id uuid.UUID) (*models.DepartmentDetail, error)
	getMyDepartmentFunc       func(ctx context.Context) (*models.DepartmentDetail, error)
	updateDepartmentFunc      func(ctx context.Context, update *models.DepartmentUpdate) (*models.Department, error)
	listEmployeesFunc         func(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error)
	updateEmployeeFunc        func(ctx context.Context, update *models.EmployeeUpdate) (*models.Employee, error)
	deactivateEmployeeFunc    func(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	listActivityFunc          func(ctx context.Context, subjectID *uuid.UUID, limit int) ([]*models.Activity, error)
}

func (m *mockOrgController) unexpected(name string) {
	m.t.Helper()
	m.t.Fatalf("unexpected call to %s", name)
}

func (m *mockOrgController) DeleteDepartment(ctx context.Context, req models.DeleteDepartmentRequest) (*models.DeleteResult, error) {
	if m.deleteDepartmentFunc == nil {
		m.unexpected("DeleteDepartment")
	}
	return m.deleteDepartmentFunc(ctx, req)
}

func (m *mockOrgController) AssignManager(ctx context.Context, req models.AssignManagerRequest) (*models.Department, error) {
	if m.assignManagerFunc == nil {
		m.unexpected("AssignManager")
	}
	return m.assignManagerFunc(ctx, req)
}

func (m *mockOrgController) AssignEmployees(ctx context.Context, req models.BulkAssignRequest) (*models.BulkAssignResult, error) {
	if m.assignEmployeesFunc == nil {
		m.unexpected("AssignEmployees")
	}
	return m.assignEmployeesFunc(ctx, req)
}

func (m *mockOrgController) RemoveEmployees(ctx context.Context, req models.BulkRemoveRequest) (*models.BulkRemoveResult, error) {
	if m.removeEmployeesFunc == nil {
		m.unexpected("RemoveEmployees")
	}
	return m.removeEmployeesFunc(ctx, req)
}

func (m *mockOrgController) TransferEmployee(ctx context.Context, req models.TransferRequest) (*models.TransferResult, error) {
	if m.transferEmployeeFunc == nil {
		m.unexpected("TransferEmployee")
	}
	return m.transferEmployeeFunc(ctx, req)
}

func (m *mockOrgController) AssignEmployeeManager(ctx context.Context, req models.AssignEmployeeManagerRequest) (*models.Employee, error) {
	if m.assignEmployeeManagerFunc == nil {
		m.unexpected("AssignEmployeeManager")
	}
	return m.assignEmployeeManagerFunc(ctx, req)
}

func (m *mockOrgController) CreateDepartment(ctx context.Context, req *models.CreateDepartment) (*models.Department, error) {
	if m.createDepartmentFunc == nil {
		m.unexpected("CreateDepartment")
	}
	return m.createDepartmentFunc(ctx, req)
}

func (m *mockOrgController) GetDepartment(ctx context.Context, id uuid.UUID) (*models.DepartmentDetail, error) {
	if m.getDepartmentFunc == nil {
		m.unexpected("GetDepartment")
	}
	return m.getDepartmentFunc(ctx, id)
}

func (m *mockOrgController) GetMyDepartment(ctx context.Context) (*models.DepartmentDetail, error) {
	if m.getMyDepartmentFunc == nil {
		m.unexpected("GetMyDepartment")
	}
	return m.getMyDepartmentFunc(ctx)
}

func (m *mockOrgController) ListDepartments(context.Context) ([]*models.Department, error) {
	return nil, nil
}

func (m *mockOrgController) UpdateDepartment(ctx context.Context, update *models.DepartmentUpdate) (*models.Department, error) {
	if m.updateDepartmentFunc == nil {
		m.unexpected("UpdateDepartment")
	}
	return m.updateDepartmentFunc(ctx, update)
}

func (m *mockOrgController) CreateEmployee(context.Context, *models.CreateEmployee) (*models.Employee, error) {
	m.unexpected("CreateEmployee")
	return nil, nil
}

func (m *mockOrgController) GetEmployee(context.Context, uuid.UUID) (*models.Employee, error) {
	m.unexpected("GetEmployee")
	return nil, nil
}

func (m *mockOrgController) ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error) {
	if m.listEmployeesFunc == nil {
		m.unexpected("ListEmployees")
	}
	return m.listEmployeesFunc(ctx, filter)
}

func (m *mockOrgController) UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) (*models.Employee, error) {
	if m.updateEmployeeFunc == nil {
		m.unexpected("UpdateEmployee")
	}
	return m.updateEmployeeFunc(ctx, update)
}

func (m *mockOrgController) ActivateEmployee(context.Context, uuid.UUID) (*models.Employee, error) {
	m.unexpected("ActivateEmployee")
	return nil, nil
}

func (m *mockOrgController) DeactivateEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	if m.deactivateEmployeeFunc == nil {
		m.unexpected("DeactivateEmployee")
	}
	return m.deactivateEmployeeFunc(ctx, id)
}

func (m *mockOrgController) ListRoles(context.Context) ([]models.Role, error) {
	return models.DefaultRoles(), nil
}

func (m *mockOrgController) ListActivity(ctx context.Context, subjectID *uuid.UUID, limit int) ([]*models.Activity, error) {
	if m.listActivityFunc == nil {
		m.unexpected("ListActivity")
	}
	return m.listActivityFunc(ctx, subjectID, limit)
}

func requireCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected a status error, got %v", err)
	assert.Equal(t, code, st.Code(), st.Message())
}

func TestOrgHandler_Validation(t *testing.T) {
	ctx := context.Background()
	h := NewOrgHandler(&mockOrgController{t: t}, zaptest.NewLogger(t))
	valid := uuid.NewString()

	tests := []struct {
		name string
		call func() error
	}{
		{"delete without id", func() error {
			_, err := h.DeleteDepartment(ctx, &pb.DeleteDepartmentRequest{})
			return err
		}},
		{"delete malformed id", func() error {
			_, err := h.DeleteDepartment(ctx, &pb.DeleteDepartmentRequest{Id: "not-a-uuid"})
			return err
		}},
		{"manager malformed id", func() error {
			_, err := h.AssignDepartmentManager(ctx, &pb.AssignDepartmentManagerRequest{DepartmentId: valid, ManagerId: utils.Ptr("x")})
			return err
		}},
		{"assign empty list", func() error {
			_, err := h.AssignEmployees(ctx, &pb.AssignEmployeesRequest{DepartmentId: valid})
			return err
		}},
		{"assign malformed member", func() error {
			_, err := h.AssignEmployees(ctx, &pb.AssignEmployeesRequest{DepartmentId: valid, EmployeeIds: []string{valid, "bad"}})
			return err
		}},
		{"remove empty list", func() error {
			_, err := h.RemoveEmployees(ctx, &pb.RemoveEmployeesRequest{DepartmentId: valid, EmployeeIds: []string{}})
			return err
		}},
		{"transfer malformed department", func() error {
			_, err := h.TransferEmployee(ctx, &pb.TransferEmployeeRequest{EmployeeId: valid, DepartmentId: utils.Ptr("bad")})
			return err
		}},
		{"create department without code", func() error {
			_, err := h.CreateDepartment(ctx, &pb.CreateDepartmentRequest{Name: "Sales"})
			return err
		}},
		{"create employee bad email", func() error {
			_, err := h.CreateEmployee(ctx, &pb.CreateEmployeeRequest{Email: "nope", FullName: "A"})
			return err
		}},
		{"create employee bad employment type", func() error {
			_, err := h.CreateEmployee(ctx, &pb.CreateEmployeeRequest{Email: "a@example.com", FullName: "A", EmploymentType: pb.EmploymentType(7)})
			return err
		}},
		{"update department name too long", func() error {
			_, err := h.UpdateDepartment(ctx, &pb.UpdateDepartmentRequest{Id: valid, Name: utils.Ptr(strings.Repeat("x", 101))})
			return err
		}},
		{"list employees blank role", func() error {
			_, err := h.ListEmployees(ctx, &pb.ListEmployeesRequest{Roles: []string{""}})
			return err
		}},
		{"activity limit too large", func() error {
			_, err := h.ListActivity(ctx, &pb.ListActivityRequest{Limit: 5000})
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireCode(t, tt.call(), codes.InvalidArgument)
		})
	}
}

func TestOrgHandler_DeleteDepartment(t *testing.T) {
	id := uuid.New()
	detached := uuid.New()
	ctrl := &mockOrgController{t: t,
		deleteDepartmentFunc: func(_ context.Context, req models.DeleteDepartmentRequest) (*models.DeleteResult, error) {
			assert.Equal(t, id, req.ID)
			assert.True(t, req.Force)
			return &models.DeleteResult{Message: "department SALES deleted, 1 employees detached", Detached: []uuid.UUID{detached}}, nil
		},
	}
	h := NewOrgHandler(ctrl, zaptest.NewLogger(t))

	resp, err := h.DeleteDepartment(context.Background(), &pb.DeleteDepartmentRequest{Id: id.String(), Force: true})
	require.NoError(t, err)
	assert.Equal(t, "department SALES deleted, 1 employees detached", resp.GetMessage())
	assert.Equal(t, []string{detached.String()}, resp.GetDetached())
}

func TestOrgHandler_AssignEmployeesAutoAssignDefault(t *testing.T) {
	deptID := uuid.New()
	headID := uuid.New()
	member := &models.Employee{ID: uuid.New(), Role: models.Role{Name: models.RoleStaff}, DepartmentID: &deptID, ManagerID: &headID}

	var got []bool
	ctrl := &mockOrgController{t: t,
		assignEmployeesFunc: func(_ context.Context, req models.BulkAssignRequest) (*models.BulkAssignResult, error) {
			got = append(got, req.AutoAssignManager)
			assert.Equal(t, []uuid.UUID{member.ID}, req.EmployeeIDs)
			return &models.BulkAssignResult{
				Department:          &models.Department{ID: deptID, ManagerID: &headID},
				Assigned:            []*models.Employee{member},
				AutoAssignedManager: &headID,
			}, nil
		},
	}
	h := NewOrgHandler(ctrl, zaptest.NewLogger(t))
	ctx := context.Background()

	resp, err := h.AssignEmployees(ctx, &pb.AssignEmployeesRequest{DepartmentId: deptID.String(), EmployeeIds: []string{member.ID.String()}})
	require.NoError(t, err)
	require.Len(t, resp.GetAssigned(), 1)
	assert.Equal(t, headID.String(), resp.GetAutoAssignedManagerId())
	assert.Equal(t, headID.String(), resp.GetAssigned()[0].GetManagerId())
	assert.Equal(t, deptID.String(), resp.GetAssigned()[0].GetDepartmentId())

	_, err = h.AssignEmployees(ctx, &pb.AssignEmployeesRequest{
		DepartmentId:      deptID.String(),
		EmployeeIds:       []string{member.ID.String()},
		AutoAssignManager: utils.Ptr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false}, got)
}

func TestOrgHandler_UpdateDepartmentManager(t *testing.T) {
	id := uuid.New()
	managerID := uuid.New()

	tests := []struct {
		name        string
		req         *pb.UpdateDepartmentRequest
		wantSet     bool
		wantManager *uuid.UUID
	}{
		{"name only ignores managerId", &pb.UpdateDepartmentRequest{Id: id.String(), Name: utils.Ptr("Ops"), ManagerId: utils.Ptr(managerID.String())}, false, nil},
		{"set manager", &pb.UpdateDepartmentRequest{Id: id.String(), UpdateManager: true, ManagerId: utils.Ptr(managerID.String())}, true, &managerID},
		{"clear manager", &pb.UpdateDepartmentRequest{Id: id.String(), UpdateManager: true}, true, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := &mockOrgController{t: t,
				updateDepartmentFunc: func(_ context.Context, update *models.DepartmentUpdate) (*models.Department, error) {
					assert.Equal(t, tt.wantSet, update.ManagerSet)
					assert.Equal(t, tt.wantManager, update.ManagerID)
					return &models.Department{ID: id, ManagerID: update.ManagerID}, nil
				},
			}
			h := NewOrgHandler(ctrl, zaptest.NewLogger(t))

			resp, err := h.UpdateDepartment(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, id.String(), resp.GetDepartment().GetId())
		})
	}
}

func TestOrgHandler_UpdateEmployee(t *testing.T) {
	id := uuid.New()
	ctrl := &mockOrgController{t: t,
		updateEmployeeFunc: func(_ context.Context, update *models.EmployeeUpdate) (*models.Employee, error) {
			require.NotNil(t, update.EmploymentType)
			assert.Equal(t, models.PartTime, *update.EmploymentType)
			assert.Equal(t, "team_lead", *update.RoleName)
			assert.Nil(t, update.FullName)
			return &models.Employee{ID: id, Role: models.Role{Name: models.RoleTeamLead}, EmploymentType: models.PartTime}, nil
		},
	}
	h := NewOrgHandler(ctrl, zaptest.NewLogger(t))

	resp, err := h.UpdateEmployee(context.Background(), &pb.UpdateEmployeeRequest{
		Id:             id.String(),
		EmploymentType: pb.EmploymentType_PART_TIME.Enum(),
		Role:           utils.Ptr("team_lead"),
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleTeamLead, resp.GetEmployee().GetRole())
	assert.Equal(t, pb.EmploymentType_PART_TIME, resp.GetEmployee().GetEmploymentType())
}

func TestOrgHandler_GetDepartment(t *testing.T) {
	dept := &models.Department{ID: uuid.New(), Name: "Sales", Code: "SALES", CreatedAt: time.Now()}
	head := &models.Employee{ID: uuid.New(), Role: models.Role{Name: models.RoleDeptManager}, DepartmentID: &dept.ID, IsActive: true, EmploymentType: models.FullTime}
	dept.ManagerID = &head.ID

	ctrl := &mockOrgController{t: t,
		getDepartmentFunc: func(_ context.Context, id uuid.UUID) (*models.DepartmentDetail, error) {
			if id != dept.ID {
				return nil, fmt.Errorf("%w: department %s", e.ErrNotFound, id)
			}
			employees := []*models.Employee{head}
			return &models.DepartmentDetail{
				Department: dept,
				Manager:    head,
				Employees:  employees,
				Statistics: models.Statistics(employees),
			}, nil
		},
	}
	h := NewOrgHandler(ctrl, zaptest.NewLogger(t))

	resp, err := h.GetDepartment(context.Background(), &pb.GetDepartmentRequest{Id: dept.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, head.ID.String(), resp.GetManager().GetId())
	assert.Equal(t, head.ID.String(), resp.GetDepartment().GetManagerId())
	assert.EqualValues(t, 1, resp.GetStatistics().GetTotalEmployees())
	assert.EqualValues(t, 1, resp.GetStatistics().GetActiveEmployees())
	assert.EqualValues(t, 1, resp.GetStatistics().GetFullTimeEmployees())
	assert.Zero(t, resp.GetStatistics().GetPartTimeEmployees())

	_, err = h.GetDepartment(context.Background(), &pb.GetDepartmentRequest{Id: uuid.NewString()})
	requireCode(t, err, codes.NotFound)
}

func TestOrgHandler_ListEmployeesFilter(t *testing.T) {
	deptID := uuid.New()
	ctrl := &mockOrgController{t: t,
		listEmployeesFunc: func(_ context.Context, filter models.EmployeeFilter) ([]*models.Employee, error) {
			require.NotNil(t, filter.DepartmentID)
			assert.Equal(t, deptID, *filter.DepartmentID)
			assert.Nil(t, filter.ManagerID)
			assert.True(t, filter.ActiveOnly)
			assert.Equal(t, []string{models.RoleDeptManager}, filter.Roles)
			return []*models.Employee{}, nil
		},
	}
	h := NewOrgHandler(ctrl, zaptest.NewLogger(t))

	resp, err := h.ListEmployees(context.Background(), &pb.ListEmployeesRequest{
		DepartmentId: utils.Ptr(deptID.String()),
		ActiveOnly:   true,
		Roles:        []string{models.RoleDeptManager},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.GetEmployees())
}

func TestOrgHandler_ListRoles(t *testing.T) {
	h := NewOrgHandler(&mockOrgController{t: t}, zaptest.NewLogger(t))

	resp, err := h.ListRoles(context.Background(), &pb.ListRolesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.GetRoles(), len(models.DefaultRoles()))
	assert.Equal(t, models.RoleManager, resp.GetRoles()[0].GetName())
	assert.EqualValues(t, 4, resp.GetRoles()[0].GetLevel())
}

func TestOrgHandler_MapServiceError(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	h := NewOrgHandler(&mockOrgController{t: t}, zap.New(core))

	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"not found", fmt.Errorf("%w: employee x", e.ErrNotFound), codes.NotFound},
		{"duplicate code", e.ErrDuplicateCode, codes.AlreadyExists},
		{"manager conflict", e.ErrManagerAlreadyAssigned, codes.AlreadyExists},
		{"head removal", e.ErrHeadRemoval, codes.InvalidArgument},
		{"cycle", e.ErrManagerCycle, codes.InvalidArgument},
		{"bad request", e.ErrBadRequest, codes.InvalidArgument},
		{"canceled", context.Canceled, codes.Canceled},
		{"unknown", errors.New("boom"), codes.Internal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireCode(t, h.mapServiceError(tt.err), tt.want)
		})
	}

	require.Equal(t, 1, logs.Len(), "only unknown errors are logged")
	assert.Equal(t, "Internal server error", logs.All()[0].Message)
}

func TestOrgHandler_DeactivateHeadRejected(t *testing.T) {
	ctrl := &mockOrgController{t: t,
		deactivateEmployeeFunc: func(context.Context, uuid.UUID) (*models.Employee, error) {
			return nil, fmt.Errorf("%w: reassign the head of SALES first", e.ErrHeadRemoval)
		},
	}
	h := NewOrgHandler(ctrl, zaptest.NewLogger(t))

	_, err := h.DeactivateEmployee(context.Background(), &pb.DeactivateEmployeeRequest{Id: uuid.NewString()})
	requireCode(t, err, codes.InvalidArgument)
	assert.Contains(t, status.Convert(err).Message(), "reassign the head")
}

func TestOrgHandler_GetMyDepartment(t *testing.T) {
	dept := &models.Department{ID: uuid.New(), Name: "Sales", Code: "SALES"}
	ctrl := &mockOrgController{t: t,
		getMyDepartmentFunc: func(context.Context) (*models.DepartmentDetail, error) {
			return &models.DepartmentDetail{Department: dept, Employees: []*models.Employee{}}, nil
		},
	}
	h := NewOrgHandler(ctrl, zaptest.NewLogger(t))

	resp, err := h.GetMyDepartment(context.Background(), &pb.GetMyDepartmentRequest{})
	require.NoError(t, err)
	assert.Equal(t, dept.ID.String(), resp.GetDepartment().GetId())
	assert.Nil(t, resp.GetManager())
	assert.NotNil(t, resp.GetStatistics())

	ctrl.getMyDepartmentFunc = func(context.Context) (*models.DepartmentDetail, error) {
		return nil, fmt.Errorf("%w: no department headed by caller", e.ErrNotFound)
	}
	_, err = h.GetMyDepartment(context.Background(), &pb.GetMyDepartmentRequest{})
	requireCode(t, err, codes.NotFound)
}
