package handlers_test

import (
	"context"
	"testing"

	pb "github.com/gartstein/orgchart/api/gen/org/v1"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/gartstein/orgchart/internal/pkg/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func requireStatus(t *testing.T, err error, code codes.Code) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, status.Code(err), status.Convert(err).Message())
}

func TestGRPC_Authorization(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()
	req := &pb.CreateDepartmentRequest{Name: "Sales", Code: "sales"}

	_, err := h.client.CreateDepartment(ctx, req)
	requireStatus(t, err, codes.Unauthenticated)

	_, err = h.client.CreateDepartment(withToken(ctx, "garbage"), req)
	requireStatus(t, err, codes.Unauthenticated)

	_, err = h.client.CreateDepartment(withToken(ctx, token(t, models.RoleStaff)), req)
	requireStatus(t, err, codes.PermissionDenied)

	resp, err := h.client.CreateDepartment(withToken(ctx, token(t, models.RoleManager)), req)
	require.NoError(t, err)
	assert.Equal(t, "SALES", resp.GetDepartment().GetCode())

	roles, err := h.client.ListRoles(ctx, &pb.ListRolesRequest{})
	require.NoError(t, err, "reads need no token")
	assert.Len(t, roles.GetRoles(), len(models.DefaultRoles()))

	_, err = h.client.GetMyDepartment(ctx, &pb.GetMyDepartmentRequest{})
	requireStatus(t, err, codes.Unauthenticated)
}

func TestGRPC_RelationshipFlow(t *testing.T) {
	h := newHarness(t)
	ctx := withToken(context.Background(), token(t, models.RoleManager))

	dept, err := h.client.CreateDepartment(ctx, &pb.CreateDepartmentRequest{Name: "Sales", Code: "SALES"})
	require.NoError(t, err)
	deptID := dept.GetDepartment().GetId()

	head, err := h.client.CreateEmployee(ctx, &pb.CreateEmployeeRequest{
		Email: "helen.head@example.com", FullName: "Helen Head", Role: models.RoleDeptManager,
	})
	require.NoError(t, err)
	headID := head.GetEmployee().GetId()
	staff, err := h.client.CreateEmployee(ctx, &pb.CreateEmployeeRequest{
		Email: "sam.staff@example.com", FullName: "Sam Staff", EmploymentType: pb.EmploymentType_PART_TIME,
	})
	require.NoError(t, err)
	staffID := staff.GetEmployee().GetId()
	assert.Equal(t, models.RoleStaff, staff.GetEmployee().GetRole())
	assert.Equal(t, pb.EmploymentType_PART_TIME, staff.GetEmployee().GetEmploymentType())

	assigned, err := h.client.AssignDepartmentManager(ctx, &pb.AssignDepartmentManagerRequest{
		DepartmentId: deptID,
		ManagerId:    utils.Ptr(headID),
	})
	require.NoError(t, err)
	require.NotNil(t, assigned.GetDepartment().ManagerId)
	assert.Equal(t, headID, assigned.GetDepartment().GetManagerId())

	bulk, err := h.client.AssignEmployees(ctx, &pb.AssignEmployeesRequest{
		DepartmentId: deptID,
		EmployeeIds:  []string{staffID},
	})
	require.NoError(t, err)
	require.Len(t, bulk.GetAssigned(), 1)
	assert.Equal(t, headID, bulk.GetAssigned()[0].GetManagerId())

	detail, err := h.client.GetDepartment(ctx, &pb.GetDepartmentRequest{Id: deptID})
	require.NoError(t, err)
	assert.EqualValues(t, 2, detail.GetStatistics().GetTotalEmployees())
	assert.EqualValues(t, 1, detail.GetStatistics().GetPartTimeEmployees())
	assert.Equal(t, headID, detail.GetManager().GetId())

	mine, err := h.client.GetMyDepartment(withToken(context.Background(), tokenFor(t, headID, models.RoleDeptManager)), &pb.GetMyDepartmentRequest{})
	require.NoError(t, err)
	assert.Equal(t, deptID, mine.GetDepartment().GetId())

	staffOnly, err := h.client.ListEmployees(ctx, &pb.ListEmployeesRequest{
		DepartmentId: utils.Ptr(deptID),
		Roles:        []string{models.RoleStaff},
	})
	require.NoError(t, err)
	require.Len(t, staffOnly.GetEmployees(), 1)
	assert.Equal(t, staffID, staffOnly.GetEmployees()[0].GetId())

	_, err = h.client.RemoveEmployees(ctx, &pb.RemoveEmployeesRequest{
		DepartmentId: deptID,
		EmployeeIds:  []string{headID},
	})
	requireStatus(t, err, codes.InvalidArgument)

	_, err = h.client.DeactivateEmployee(ctx, &pb.DeactivateEmployeeRequest{Id: headID})
	requireStatus(t, err, codes.InvalidArgument)

	moved, err := h.client.TransferEmployee(ctx, &pb.TransferEmployeeRequest{EmployeeId: staffID})
	require.NoError(t, err)
	assert.Nil(t, moved.GetEmployee().DepartmentId)
	assert.Nil(t, moved.GetEmployee().ManagerId, "a head of another department is not kept")
	require.NotNil(t, moved.PreviousDepartmentId)
	assert.Equal(t, deptID, moved.GetPreviousDepartmentId())

	deleted, err := h.client.DeleteDepartment(ctx, &pb.DeleteDepartmentRequest{Id: deptID})
	require.NoError(t, err)
	assert.Equal(t, []string{headID}, deleted.GetDetached())

	_, err = h.client.GetDepartment(ctx, &pb.GetDepartmentRequest{Id: deptID})
	requireStatus(t, err, codes.NotFound)

	activity, err := h.client.ListActivity(ctx, &pb.ListActivityRequest{SubjectId: utils.Ptr(deptID)})
	require.NoError(t, err)
	require.NotEmpty(t, activity.GetActivity())
	for _, a := range activity.GetActivity() {
		assert.Equal(t, testActor, a.GetActor())
		assert.Equal(t, deptID, a.GetSubjectId())
	}
}

func TestGRPC_Errors(t *testing.T) {
	h := newHarness(t)
	ctx := withToken(context.Background(), token(t, models.RoleManager))

	_, err := h.client.GetEmployee(ctx, &pb.GetEmployeeRequest{Id: uuid.NewString()})
	requireStatus(t, err, codes.NotFound)

	_, err = h.client.GetEmployee(ctx, &pb.GetEmployeeRequest{Id: "42"})
	requireStatus(t, err, codes.InvalidArgument)

	_, err = h.client.CreateDepartment(ctx, &pb.CreateDepartmentRequest{Name: "Ops", Code: "OPS"})
	require.NoError(t, err)
	_, err = h.client.CreateDepartment(ctx, &pb.CreateDepartmentRequest{Name: "Operations", Code: "ops"})
	requireStatus(t, err, codes.AlreadyExists)

	_, err = h.client.CreateEmployee(ctx, &pb.CreateEmployeeRequest{
		Email: "x@example.com", FullName: "X", Role: "ASTRONAUT",
	})
	requireStatus(t, err, codes.InvalidArgument)

	_, err = h.client.CreateEmployee(ctx, &pb.CreateEmployeeRequest{
		Email: "y@example.com", FullName: "Y", EmploymentType: pb.EmploymentType(9),
	})
	requireStatus(t, err, codes.InvalidArgument)

	_, err = h.client.GetMyDepartment(ctx, &pb.GetMyDepartmentRequest{})
	requireStatus(t, err, codes.InvalidArgument)
}
