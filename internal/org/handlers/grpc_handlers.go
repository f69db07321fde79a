package handlers

import (
	"context"
	"errors"

	pb "github.com/gartstein/orgchart/api/gen/org/v1"
	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// OrgController defines the business logic the gRPC handlers invoke.
type OrgController interface {
	DeleteDepartment(ctx context.Context, req models.DeleteDepartmentRequest) (*models.DeleteResult, error)
	AssignManager(ctx context.Context, req models.AssignManagerRequest) (*models.Department, error)
	AssignEmployees(ctx context.Context, req models.BulkAssignRequest) (*models.BulkAssignResult, error)
	RemoveEmployees(ctx context.Context, req models.BulkRemoveRequest) (*models.BulkRemoveResult, error)
	TransferEmployee(ctx context.Context, req models.TransferRequest) (*models.TransferResult, error)
	AssignEmployeeManager(ctx context.Context, req models.AssignEmployeeManagerRequest) (*models.Employee, error)
	CreateDepartment(ctx context.Context, req *models.CreateDepartment) (*models.Department, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*models.DepartmentDetail, error)
	GetMyDepartment(ctx context.Context) (*models.DepartmentDetail, error)
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	UpdateDepartment(ctx context.Context, update *models.DepartmentUpdate) (*models.Department, error)
	CreateEmployee(ctx context.Context, req *models.CreateEmployee) (*models.Employee, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error)
	UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) (*models.Employee, error)
	ActivateEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	DeactivateEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	ListActivity(ctx context.Context, subjectID *uuid.UUID, limit int) ([]*models.Activity, error)
}

var _ pb.OrgServiceServer = (*OrgHandler)(nil)

// OrgHandler provides the gRPC methods of org.v1.OrgService, mapping requests
// to an OrgController.
type OrgHandler struct {
	pb.UnimplementedOrgServiceServer
	service  OrgController
	validate *validator.Validate
	logger   *zap.Logger
}

// NewOrgHandler constructs a new OrgHandler with the given service and logger.
func NewOrgHandler(service OrgController, logger *zap.Logger) *OrgHandler {
	return &OrgHandler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.Named("grpc_handler"),
	}
}

// DeleteDepartment removes a department, detaching its members.
func (h *OrgHandler) DeleteDepartment(ctx context.Context, req *pb.DeleteDepartmentRequest) (*pb.DeleteDepartmentResponse, error) {
	id, err := parseID("department ID", req.GetId())
	if err != nil {
		return nil, err
	}

	res, err := h.service.DeleteDepartment(ctx, models.DeleteDepartmentRequest{ID: id, Force: req.GetForce()})
	if err != nil {
		return nil, h.mapServiceError(err)
	}

	return &pb.DeleteDepartmentResponse{
		Message:  res.Message,
		Detached: idsToStrings(res.Detached),
	}, nil
}

// AssignDepartmentManager sets or clears the head of a department.
func (h *OrgHandler) AssignDepartmentManager(ctx context.Context, req *pb.AssignDepartmentManagerRequest) (*pb.DepartmentResponse, error) {
	deptID, err := parseID("department ID", req.GetDepartmentId())
	if err != nil {
		return nil, err
	}
	managerID, err := parseOptionalID("manager ID", req.ManagerId)
	if err != nil {
		return nil, err
	}

	dept, err := h.service.AssignManager(ctx, models.AssignManagerRequest{DepartmentID: deptID, ManagerID: managerID})
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return &pb.DepartmentResponse{Department: departmentToProto(dept)}, nil
}

// AssignEmployees moves employees into a department.
func (h *OrgHandler) AssignEmployees(ctx context.Context, req *pb.AssignEmployeesRequest) (*pb.AssignEmployeesResponse, error) {
	if err := h.check(rule{"employee IDs", req.GetEmployeeIds(), "required,min=1"}); err != nil {
		return nil, err
	}
	deptID, err := parseID("department ID", req.GetDepartmentId())
	if err != nil {
		return nil, err
	}
	ids, err := parseIDs("employee ID", req.GetEmployeeIds())
	if err != nil {
		return nil, err
	}

	bulk := models.NewBulkAssignRequest(deptID, ids...)
	if req.AutoAssignManager != nil {
		bulk.AutoAssignManager = req.GetAutoAssignManager()
	}
	res, err := h.service.AssignEmployees(ctx, bulk)
	if err != nil {
		return nil, h.mapServiceError(err)
	}

	return &pb.AssignEmployeesResponse{
		Department:            departmentToProto(res.Department),
		Assigned:              employeesToProto(res.Assigned),
		AutoAssignedManagerId: idToString(res.AutoAssignedManager),
	}, nil
}

// RemoveEmployees detaches employees from a department.
func (h *OrgHandler) RemoveEmployees(ctx context.Context, req *pb.RemoveEmployeesRequest) (*pb.RemoveEmployeesResponse, error) {
	if err := h.check(rule{"employee IDs", req.GetEmployeeIds(), "required,min=1"}); err != nil {
		return nil, err
	}
	deptID, err := parseID("department ID", req.GetDepartmentId())
	if err != nil {
		return nil, err
	}
	ids, err := parseIDs("employee ID", req.GetEmployeeIds())
	if err != nil {
		return nil, err
	}

	res, err := h.service.RemoveEmployees(ctx, models.BulkRemoveRequest{DepartmentID: deptID, EmployeeIDs: ids})
	if err != nil {
		return nil, h.mapServiceError(err)
	}

	return &pb.RemoveEmployeesResponse{
		Department: departmentToProto(res.Department),
		Removed:    employeesToProto(res.Removed),
	}, nil
}

// TransferEmployee moves one employee to another department or out of any.
func (h *OrgHandler) TransferEmployee(ctx context.Context, req *pb.TransferEmployeeRequest) (*pb.TransferEmployeeResponse, error) {
	empID, err := parseID("employee ID", req.GetEmployeeId())
	if err != nil {
		return nil, err
	}
	deptID, err := parseOptionalID("department ID", req.DepartmentId)
	if err != nil {
		return nil, err
	}

	res, err := h.service.TransferEmployee(ctx, models.TransferRequest{EmployeeID: empID, DepartmentID: deptID})
	if err != nil {
		return nil, h.mapServiceError(err)
	}

	return &pb.TransferEmployeeResponse{
		Employee:             employeeToProto(res.Employee),
		PreviousDepartmentId: idToString(res.PreviousDepartmentID),
		AutoAssignedManager:  res.AutoAssignedManager,
	}, nil
}

// AssignEmployeeManager sets or clears an employee's direct manager.
func (h *OrgHandler) AssignEmployeeManager(ctx context.Context, req *pb.AssignEmployeeManagerRequest) (*pb.EmployeeResponse, error) {
	empID, err := parseID("employee ID", req.GetEmployeeId())
	if err != nil {
		return nil, err
	}
	managerID, err := parseOptionalID("manager ID", req.ManagerId)
	if err != nil {
		return nil, err
	}

	emp, err := h.service.AssignEmployeeManager(ctx, models.AssignEmployeeManagerRequest{EmployeeID: empID, ManagerID: managerID})
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return &pb.EmployeeResponse{Employee: employeeToProto(emp)}, nil
}

func (h *OrgHandler) CreateDepartment(ctx context.Context, req *pb.CreateDepartmentRequest) (*pb.DepartmentResponse, error) {
	err := h.check(
		rule{"name", req.GetName(), "required,max=100"},
		rule{"code", req.GetCode(), "required,max=20"},
		rule{"description", req.GetDescription(), "max=500"},
	)
	if err != nil {
		return nil, err
	}

	dept, err := h.service.CreateDepartment(ctx, &models.CreateDepartment{
		Name:        req.GetName(),
		Code:        req.GetCode(),
		Description: req.GetDescription(),
	})
	if err != nil {
		h.logger.Error("Create department failed", zap.Error(err))
		return nil, h.mapServiceError(err)
	}
	return &pb.DepartmentResponse{Department: departmentToProto(dept)}, nil
}

func (h *OrgHandler) GetDepartment(ctx context.Context, req *pb.GetDepartmentRequest) (*pb.GetDepartmentResponse, error) {
	id, err := parseID("department ID", req.GetId())
	if err != nil {
		return nil, err
	}

	detail, err := h.service.GetDepartment(ctx, id)
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return detailToProto(detail), nil
}

// GetMyDepartment returns the department headed by the authenticated caller.
func (h *OrgHandler) GetMyDepartment(ctx context.Context, _ *pb.GetMyDepartmentRequest) (*pb.GetDepartmentResponse, error) {
	detail, err := h.service.GetMyDepartment(ctx)
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return detailToProto(detail), nil
}

func (h *OrgHandler) ListDepartments(ctx context.Context, _ *pb.ListDepartmentsRequest) (*pb.ListDepartmentsResponse, error) {
	list, err := h.service.ListDepartments(ctx)
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return &pb.ListDepartmentsResponse{Departments: departmentsToProto(list)}, nil
}

func (h *OrgHandler) UpdateDepartment(ctx context.Context, req *pb.UpdateDepartmentRequest) (*pb.DepartmentResponse, error) {
	err := h.check(
		rule{"name", req.Name, "omitempty,max=100"},
		rule{"code", req.Code, "omitempty,max=20"},
		rule{"description", req.Description, "omitempty,max=500"},
	)
	if err != nil {
		return nil, err
	}
	id, err := parseID("department ID", req.GetId())
	if err != nil {
		return nil, err
	}
	update := &models.DepartmentUpdate{
		ID:          id,
		Name:        req.Name,
		Code:        req.Code,
		Description: req.Description,
		ManagerSet:  req.GetUpdateManager(),
	}
	if req.GetUpdateManager() {
		if update.ManagerID, err = parseOptionalID("manager ID", req.ManagerId); err != nil {
			return nil, err
		}
	}

	dept, err := h.service.UpdateDepartment(ctx, update)
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return &pb.DepartmentResponse{Department: departmentToProto(dept)}, nil
}

func (h *OrgHandler) CreateEmployee(ctx context.Context, req *pb.CreateEmployeeRequest) (*pb.EmployeeResponse, error) {
	err := h.check(
		rule{"email", req.GetEmail(), "required,email,max=255"},
		rule{"full name", req.GetFullName(), "required,max=200"},
		rule{"phone", req.GetPhone(), "max=30"},
		rule{"role", req.GetRole(), "max=50"},
	)
	if err != nil {
		return nil, err
	}
	deptID, err := parseOptionalID("department ID", req.DepartmentId)
	if err != nil {
		return nil, err
	}
	employment, err := protoToEmploymentType(req.GetEmploymentType())
	if err != nil {
		return nil, err
	}

	emp, err := h.service.CreateEmployee(ctx, &models.CreateEmployee{
		Email:          req.GetEmail(),
		FullName:       req.GetFullName(),
		Phone:          req.GetPhone(),
		RoleName:       req.GetRole(),
		DepartmentID:   deptID,
		EmploymentType: employment,
	})
	if err != nil {
		h.logger.Error("Create employee failed", zap.Error(err))
		return nil, h.mapServiceError(err)
	}
	return &pb.EmployeeResponse{Employee: employeeToProto(emp)}, nil
}

func (h *OrgHandler) GetEmployee(ctx context.Context, req *pb.GetEmployeeRequest) (*pb.EmployeeResponse, error) {
	id, err := parseID("employee ID", req.GetId())
	if err != nil {
		return nil, err
	}

	emp, err := h.service.GetEmployee(ctx, id)
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return &pb.EmployeeResponse{Employee: employeeToProto(emp)}, nil
}

func (h *OrgHandler) ListEmployees(ctx context.Context, req *pb.ListEmployeesRequest) (*pb.ListEmployeesResponse, error) {
	if err := h.check(rule{"roles", req.GetRoles(), "omitempty,dive,required,max=50"}); err != nil {
		return nil, err
	}
	filter := models.EmployeeFilter{ActiveOnly: req.GetActiveOnly(), Roles: req.GetRoles()}
	var err error
	if filter.DepartmentID, err = parseOptionalID("department ID", req.DepartmentId); err != nil {
		return nil, err
	}
	if filter.ManagerID, err = parseOptionalID("manager ID", req.ManagerId); err != nil {
		return nil, err
	}

	list, err := h.service.ListEmployees(ctx, filter)
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return &pb.ListEmployeesResponse{Employees: employeesToProto(list)}, nil
}

func (h *OrgHandler) UpdateEmployee(ctx context.Context, req *pb.UpdateEmployeeRequest) (*pb.EmployeeResponse, error) {
	err := h.check(
		rule{"full name", req.FullName, "omitempty,max=200"},
		rule{"phone", req.Phone, "omitempty,max=30"},
		rule{"role", req.Role, "omitempty,max=50"},
	)
	if err != nil {
		return nil, err
	}
	id, err := parseID("employee ID", req.GetId())
	if err != nil {
		return nil, err
	}
	update := &models.EmployeeUpdate{
		ID:       id,
		FullName: req.FullName,
		Phone:    req.Phone,
		RoleName: req.Role,
	}
	if req.EmploymentType != nil {
		employment, err := protoToEmploymentType(req.GetEmploymentType())
		if err != nil {
			return nil, err
		}
		if employment != "" {
			update.EmploymentType = &employment
		}
	}

	emp, err := h.service.UpdateEmployee(ctx, update)
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return &pb.EmployeeResponse{Employee: employeeToProto(emp)}, nil
}

func (h *OrgHandler) ActivateEmployee(ctx context.Context, req *pb.ActivateEmployeeRequest) (*pb.EmployeeResponse, error) {
	return h.toggleEmployee(ctx, req.GetId(), h.service.ActivateEmployee)
}

func (h *OrgHandler) DeactivateEmployee(ctx context.Context, req *pb.DeactivateEmployeeRequest) (*pb.EmployeeResponse, error) {
	return h.toggleEmployee(ctx, req.GetId(), h.service.DeactivateEmployee)
}

func (h *OrgHandler) toggleEmployee(
	ctx context.Context,
	rawID string,
	toggle func(context.Context, uuid.UUID) (*models.Employee, error),
) (*pb.EmployeeResponse, error) {
	id, err := parseID("employee ID", rawID)
	if err != nil {
		return nil, err
	}

	emp, err := toggle(ctx, id)
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	return &pb.EmployeeResponse{Employee: employeeToProto(emp)}, nil
}

func (h *OrgHandler) ListRoles(ctx context.Context, _ *pb.ListRolesRequest) (*pb.ListRolesResponse, error) {
	roles, err := h.service.ListRoles(ctx)
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	out := make([]*pb.Role, 0, len(roles))
	for _, r := range roles {
		out = append(out, roleToProto(r))
	}
	return &pb.ListRolesResponse{Roles: out}, nil
}

func (h *OrgHandler) ListActivity(ctx context.Context, req *pb.ListActivityRequest) (*pb.ListActivityResponse, error) {
	if err := h.check(rule{"limit", req.GetLimit(), "min=0,max=1000"}); err != nil {
		return nil, err
	}
	subjectID, err := parseOptionalID("subject ID", req.SubjectId)
	if err != nil {
		return nil, err
	}

	list, err := h.service.ListActivity(ctx, subjectID, int(req.GetLimit()))
	if err != nil {
		return nil, h.mapServiceError(err)
	}
	out := make([]*pb.Activity, 0, len(list))
	for _, a := range list {
		out = append(out, activityToProto(a))
	}
	return &pb.ListActivityResponse{Activity: out}, nil
}

// rule pairs a request value with the validator tag it must satisfy.
type rule struct {
	name  string
	value any
	tag   string
}

// check validates rules in order and reports the first failure as InvalidArgument.
func (h *OrgHandler) check(rules ...rule) error {
	for _, f := range rules {
		err := h.validate.Var(f.value, f.tag)
		if err == nil {
			continue
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return status.Errorf(codes.InvalidArgument, "invalid %s: failed on %q", f.name, verrs[0].Tag())
		}
		return status.Errorf(codes.InvalidArgument, "invalid %s", f.name)
	}
	return nil
}

// mapServiceError converts service-layer errors into gRPC status errors.
func (h *OrgHandler) mapServiceError(err error) error {
	switch {
	case errors.Is(err, e.ErrNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, e.ErrConflict):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, e.ErrBadRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		h.logger.Error("Internal server error", zap.Error(err))
		return status.Error(codes.Internal, "internal server error")
	}
}
