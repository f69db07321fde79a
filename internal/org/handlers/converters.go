package handlers

import (
	"fmt"

	pb "github.com/gartstein/orgchart/api/gen/org/v1"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func departmentToProto(d *models.Department) *pb.Department {
	if d == nil {
		return nil
	}
	return &pb.Department{
		Id:          d.ID.String(),
		Name:        d.Name,
		Code:        d.Code,
		Description: d.Description,
		ManagerId:   idToString(d.ManagerID),
		CreatedAt:   timestamppb.New(d.CreatedAt),
		UpdatedAt:   timestamppb.New(d.UpdatedAt),
	}
}

func departmentsToProto(list []*models.Department) []*pb.Department {
	out := make([]*pb.Department, 0, len(list))
	for _, d := range list {
		out = append(out, departmentToProto(d))
	}
	return out
}

func detailToProto(detail *models.DepartmentDetail) *pb.GetDepartmentResponse {
	return &pb.GetDepartmentResponse{
		Department: departmentToProto(detail.Department),
		Manager:    employeeToProto(detail.Manager),
		Employees:  employeesToProto(detail.Employees),
		Statistics: statisticsToProto(detail.Statistics),
	}
}

func employeeToProto(emp *models.Employee) *pb.Employee {
	if emp == nil {
		return nil
	}
	return &pb.Employee{
		Id:             emp.ID.String(),
		Email:          emp.Email,
		FullName:       emp.FullName,
		Phone:          emp.Phone,
		Role:           emp.Role.Name,
		DepartmentId:   idToString(emp.DepartmentID),
		ManagerId:      idToString(emp.ManagerID),
		IsActive:       emp.IsActive,
		EmploymentType: pb.EmploymentType(pb.EmploymentType_value[string(emp.EmploymentType)]),
		CreatedAt:      timestamppb.New(emp.CreatedAt),
		UpdatedAt:      timestamppb.New(emp.UpdatedAt),
	}
}

func employeesToProto(list []*models.Employee) []*pb.Employee {
	out := make([]*pb.Employee, 0, len(list))
	for _, emp := range list {
		out = append(out, employeeToProto(emp))
	}
	return out
}

func roleToProto(r models.Role) *pb.Role {
	return &pb.Role{
		Name:        r.Name,
		DisplayName: r.DisplayName,
		Level:       int32(r.Level),
		Permissions: r.Permissions,
	}
}

func activityToProto(a *models.Activity) *pb.Activity {
	return &pb.Activity{
		Id:          a.ID.String(),
		SubjectId:   a.SubjectID.String(),
		Actor:       a.Actor,
		Action:      a.Action,
		Entity:      a.Entity,
		Description: a.Description,
		CreatedAt:   timestamppb.New(a.CreatedAt),
	}
}

func statisticsToProto(s models.DepartmentStatistics) *pb.Statistics {
	return &pb.Statistics{
		TotalEmployees:    int32(s.TotalEmployees),
		ActiveEmployees:   int32(s.ActiveEmployees),
		FullTimeEmployees: int32(s.FullTimeEmployees),
		PartTimeEmployees: int32(s.PartTimeEmployees),
	}
}

// protoToEmploymentType maps the wire enum onto the model. UNSPECIFIED maps to
// the empty value so the service applies its default.
func protoToEmploymentType(t pb.EmploymentType) (models.EmploymentType, error) {
	switch t {
	case pb.EmploymentType_EMPLOYMENT_TYPE_UNSPECIFIED:
		return "", nil
	case pb.EmploymentType_FULL_TIME:
		return models.FullTime, nil
	case pb.EmploymentType_PART_TIME:
		return models.PartTime, nil
	default:
		return "", status.Error(codes.InvalidArgument, "invalid employment type")
	}
}

func idToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func idsToStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}

// parseID returns an InvalidArgument status naming field when value is not a UUID.
func parseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid %s", field))
	}
	return id, nil
}

func parseOptionalID(field string, value *string) (*uuid.UUID, error) {
	if value == nil {
		return nil, nil
	}
	id, err := parseID(field, *value)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func parseIDs(field string, values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		id, err := parseID(field, v)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
