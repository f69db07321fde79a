// Package controller implements the service layer of the organization
// service: it validates requests, runs every relationship change inside one
// transaction, records metrics and emits events once the change committed.
package controller

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gartstein/orgchart/internal/org/auth"
	"github.com/gartstein/orgchart/internal/org/db"
	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/gartstein/orgchart/internal/org/events"
	"github.com/gartstein/orgchart/internal/org/metrics"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/gartstein/orgchart/internal/org/relationships"
	"github.com/gartstein/orgchart/internal/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxNameLength        = 100
	maxCodeLength        = 20
	maxDescriptionLength = 500
)

// EventProducer publishes events once the change behind them has committed.
type EventProducer interface {
	Produce(event events.Event)
}

// Repository defines the storage the service reads from outside transactions.
type Repository interface {
	CreateDepartment(ctx context.Context, department *models.Department) error
	GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error)
	FindDepartmentByManager(ctx context.Context, managerID uuid.UUID) (*models.Department, error)
	ListDepartments(ctx context.Context) ([]*models.Department, error)
	DepartmentExists(ctx context.Context, column, value string, excludeID *uuid.UUID) (bool, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error)
	GetRoleByName(ctx context.Context, name string) (*models.Role, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	ListActivity(ctx context.Context, subjectID *uuid.UUID, limit int) ([]*models.Activity, error)
	WithTransaction(ctx context.Context, fn func(repo *db.Repository) error) error
	Close() error
}

// OrgService manages departments, employees and the relationships between them.
type OrgService struct {
	repo     Repository
	engine   *relationships.Engine
	producer EventProducer
	logger   *zap.Logger
}

// NewOrgService creates an OrgService over repo that reports changes to producer.
func NewOrgService(repo Repository, producer EventProducer, logger *zap.Logger) *OrgService {
	return &OrgService{
		repo:     repo,
		engine:   relationships.NewEngine(logger),
		producer: producer,
		logger:   logger.Named("org_service"),
	}
}

// DeleteDepartment detaches every member and deletes the department.
func (s *OrgService) DeleteDepartment(ctx context.Context, req models.DeleteDepartmentRequest) (res *models.DeleteResult, err error) {
	const op = "delete_department"
	defer observe(op, time.Now(), &err)

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		res, err = s.engine.DeleteDepartment(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, zap.String("department_id", req.ID.String()))
	}

	s.emit(ctx, events.DepartmentDeleted, events.EntityDepartment, req.ID, res.Message)
	return res, nil
}

// AssignManager sets or clears the head of a department.
func (s *OrgService) AssignManager(ctx context.Context, req models.AssignManagerRequest) (dept *models.Department, err error) {
	const op = "assign_department_manager"
	defer observe(op, time.Now(), &err)

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		dept, err = s.engine.AssignManager(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err,
			zap.String("department_id", req.DepartmentID.String()),
			zap.String("manager_id", idString(req.ManagerID)),
		)
	}

	s.emit(ctx, events.DepartmentManagerAssigned, events.EntityDepartment, dept.ID, managerDescription(dept))
	return dept, nil
}

// AssignEmployees moves a batch of employees into a department.
func (s *OrgService) AssignEmployees(ctx context.Context, req models.BulkAssignRequest) (res *models.BulkAssignResult, err error) {
	const op = "assign_employees"
	defer observe(op, time.Now(), &err)

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		res, err = s.engine.AssignEmployees(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, zap.String("department_id", req.DepartmentID.String()))
	}

	s.emit(ctx, events.EmployeesAssigned, events.EntityDepartment, res.Department.ID,
		fmt.Sprintf("%d employees assigned to %s", len(res.Assigned), res.Department.Code))
	return res, nil
}

// RemoveEmployees detaches a batch of employees from a department.
func (s *OrgService) RemoveEmployees(ctx context.Context, req models.BulkRemoveRequest) (res *models.BulkRemoveResult, err error) {
	const op = "remove_employees"
	defer observe(op, time.Now(), &err)

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		res, err = s.engine.RemoveEmployees(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, zap.String("department_id", req.DepartmentID.String()))
	}

	s.emit(ctx, events.EmployeesRemoved, events.EntityDepartment, res.Department.ID,
		fmt.Sprintf("%d employees removed from %s", len(res.Removed), res.Department.Code))
	return res, nil
}

// TransferEmployee moves one employee to another department or out of any.
func (s *OrgService) TransferEmployee(ctx context.Context, req models.TransferRequest) (res *models.TransferResult, err error) {
	const op = "transfer_employee"
	defer observe(op, time.Now(), &err)

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		res, err = s.engine.TransferEmployee(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, zap.String("employee_id", req.EmployeeID.String()))
	}

	s.emit(ctx, events.EmployeeTransferred, events.EntityEmployee, req.EmployeeID,
		fmt.Sprintf("transferred from %s to %s", idOrNone(res.PreviousDepartmentID), idOrNone(req.DepartmentID)))
	return res, nil
}

// AssignEmployeeManager sets or clears the direct manager of one employee.
func (s *OrgService) AssignEmployeeManager(ctx context.Context, req models.AssignEmployeeManagerRequest) (emp *models.Employee, err error) {
	const op = "assign_employee_manager"
	defer observe(op, time.Now(), &err)

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		emp, err = s.engine.AssignEmployeeManager(ctx, tx, req)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, zap.String("employee_id", req.EmployeeID.String()))
	}

	s.emit(ctx, events.EmployeeManagerAssigned, events.EntityEmployee, emp.ID,
		fmt.Sprintf("manager set to %s", idOrNone(emp.ManagerID)))
	return emp, nil
}

// CreateDepartment adds a department without a head. The code is stored upper case.
func (s *OrgService) CreateDepartment(ctx context.Context, req *models.CreateDepartment) (dept *models.Department, err error) {
	const op = "create_department"
	defer observe(op, time.Now(), &err)

	name := strings.TrimSpace(req.Name)
	code := normalizeCode(req.Code)
	if err := validateDepartmentFields(&name, &code, &req.Description); err != nil {
		return nil, err
	}
	if err := s.checkDepartmentUnique(ctx, name, code, nil); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	dept = &models.Department{
		ID:          uuid.New(),
		Name:        name,
		Code:        code,
		Description: req.Description,
	}
	if err := s.repo.CreateDepartment(ctx, dept); err != nil {
		return nil, s.fail(ctx, op, err, zap.String("code", code))
	}

	s.emit(ctx, events.DepartmentCreated, events.EntityDepartment, dept.ID, "department "+dept.Code+" created")
	return dept, nil
}

// GetDepartment returns the department with its head, members and statistics.
func (s *OrgService) GetDepartment(ctx context.Context, id uuid.UUID) (*models.DepartmentDetail, error) {
	dept, err := s.repo.GetDepartment(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get_department", err, zap.String("department_id", id.String()))
	}

	members, err := s.repo.ListEmployees(ctx, models.EmployeeFilter{DepartmentID: &dept.ID})
	if err != nil {
		return nil, s.fail(ctx, "get_department", err, zap.String("department_id", id.String()))
	}

	detail := &models.DepartmentDetail{
		Department: dept,
		Employees:  members,
		Statistics: models.Statistics(members),
	}
	if dept.ManagerID != nil {
		manager, err := s.repo.GetEmployee(ctx, *dept.ManagerID)
		switch {
		case err == nil:
			detail.Manager = manager
		case !errors.Is(err, e.ErrNotFound):
			return nil, s.fail(ctx, "get_department", err, zap.String("department_id", id.String()))
		}
	}
	return detail, nil
}

// GetMyDepartment returns the detail of the department headed by the caller.
func (s *OrgService) GetMyDepartment(ctx context.Context) (*models.DepartmentDetail, error) {
	actorID, err := uuid.Parse(auth.ActorID(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: caller is not an employee", e.ErrInvalidInput)
	}
	dept, err := s.repo.FindDepartmentByManager(ctx, actorID)
	if err != nil {
		return nil, s.fail(ctx, "get_my_department", err)
	}
	return s.GetDepartment(ctx, dept.ID)
}

func (s *OrgService) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	depts, err := s.repo.ListDepartments(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list_departments", err)
	}
	return depts, nil
}

// UpdateDepartment applies descriptive changes and, when ManagerSet, reassigns
// the head in the same transaction.
func (s *OrgService) UpdateDepartment(ctx context.Context, update *models.DepartmentUpdate) (dept *models.Department, err error) {
	const op = "update_department"
	defer observe(op, time.Now(), &err)

	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid department ID", e.ErrInvalidInput)
	}
	if update.Name != nil {
		update.Name = trimmed(*update.Name)
	}
	if update.Code != nil {
		code := normalizeCode(*update.Code)
		update.Code = &code
	}
	if err := validateDepartmentFields(update.Name, update.Code, update.Description); err != nil {
		return nil, err
	}
	if err := s.checkDepartmentUnique(ctx, utils.Deref(update.Name), utils.Deref(update.Code), &update.ID); err != nil {
		return nil, s.fail(ctx, op, err)
	}

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.UpdateDepartment(ctx, update); err != nil {
			return err
		}
		if update.ManagerSet {
			if _, err := s.engine.AssignManager(ctx, tx, models.AssignManagerRequest{
				DepartmentID: update.ID,
				ManagerID:    update.ManagerID,
			}); err != nil {
				return err
			}
		}
		dept, err = tx.GetDepartment(ctx, update.ID)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, zap.String("department_id", update.ID.String()))
	}

	s.emit(ctx, events.DepartmentUpdated, events.EntityDepartment, dept.ID, "department "+dept.Code+" updated")
	if update.ManagerSet {
		s.emit(ctx, events.DepartmentManagerAssigned, events.EntityDepartment, dept.ID, managerDescription(dept))
	}
	return dept, nil
}

// CreateEmployee adds an active employee. A department, when given, is joined
// through the relationship engine so its head becomes the manager.
func (s *OrgService) CreateEmployee(ctx context.Context, req *models.CreateEmployee) (emp *models.Employee, err error) {
	const op = "create_employee"
	defer observe(op, time.Now(), &err)

	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: invalid email", e.ErrInvalidInput)
	}
	if fullName == "" || len(fullName) > 200 {
		return nil, fmt.Errorf("%w: invalid full name", e.ErrInvalidInput)
	}
	employmentType := req.EmploymentType
	if employmentType == "" {
		employmentType = models.FullTime
	}
	if employmentType != models.FullTime && employmentType != models.PartTime {
		return nil, fmt.Errorf("%w: unknown employment type %q", e.ErrInvalidInput, employmentType)
	}

	role, err := s.lookupRole(ctx, req.RoleName)
	if err != nil {
		return nil, s.fail(ctx, op, err)
	}

	emp = &models.Employee{
		ID:             uuid.New(),
		Email:          email,
		FullName:       fullName,
		Phone:          strings.TrimSpace(req.Phone),
		Role:           *role,
		IsActive:       true,
		EmploymentType: employmentType,
	}
	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		if err := tx.CreateEmployee(ctx, emp); err != nil {
			return err
		}
		if req.DepartmentID != nil {
			if _, err := s.engine.TransferEmployee(ctx, tx, models.TransferRequest{
				EmployeeID:   emp.ID,
				DepartmentID: req.DepartmentID,
			}); err != nil {
				return err
			}
		}
		emp, err = tx.GetEmployee(ctx, emp.ID)
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, zap.String("email", email))
	}

	s.emit(ctx, events.EmployeeCreated, events.EntityEmployee, emp.ID, "employee "+emp.Email+" created")
	return emp, nil
}

func (s *OrgService) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	emp, err := s.repo.GetEmployee(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "get_employee", err, zap.String("employee_id", id.String()))
	}
	return emp, nil
}

func (s *OrgService) ListEmployees(ctx context.Context, filter models.EmployeeFilter) ([]*models.Employee, error) {
	list, err := s.repo.ListEmployees(ctx, filter)
	if err != nil {
		return nil, s.fail(ctx, "list_employees", err)
	}
	return list, nil
}

// UpdateEmployee changes identity fields and the role. A role change must keep
// the relationship rules: a current head keeps the head role, a top-level
// manager cannot sit in a department, and heads and top managers report to nobody.
func (s *OrgService) UpdateEmployee(ctx context.Context, update *models.EmployeeUpdate) (emp *models.Employee, err error) {
	const op = "update_employee"
	defer observe(op, time.Now(), &err)

	if update.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: invalid employee ID", e.ErrInvalidInput)
	}
	if update.FullName != nil {
		update.FullName = trimmed(*update.FullName)
		if *update.FullName == "" {
			return nil, fmt.Errorf("%w: invalid full name", e.ErrInvalidInput)
		}
	}
	if update.RoleName != nil {
		update.RoleName = utils.Ptr(strings.ToUpper(strings.TrimSpace(*update.RoleName)))
	}
	if t := update.EmploymentType; t != nil && *t != models.FullTime && *t != models.PartTime {
		return nil, fmt.Errorf("%w: unknown employment type %q", e.ErrInvalidInput, *t)
	}

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		current, err := tx.GetEmployee(ctx, update.ID)
		if err != nil {
			return err
		}
		if update.RoleName != nil && *update.RoleName != current.Role.Name {
			if err := s.checkRoleChange(ctx, tx, current, *update.RoleName); err != nil {
				return err
			}
		}
		if err := tx.UpdateEmployee(ctx, update); err != nil {
			return err
		}

		emp, err = tx.GetEmployee(ctx, update.ID)
		if err != nil {
			return err
		}
		if emp.Role.Name != current.Role.Name {
			if err := s.engine.ReconcileReports(ctx, tx, emp.ID); err != nil {
				return err
			}
		}
		if (emp.IsHeadKind() || emp.IsTopKind()) && emp.ManagerID != nil {
			emp, err = s.engine.AssignEmployeeManager(ctx, tx, models.AssignEmployeeManagerRequest{EmployeeID: emp.ID})
		}
		return err
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, zap.String("employee_id", update.ID.String()))
	}

	s.emit(ctx, events.EmployeeUpdated, events.EntityEmployee, emp.ID, "employee "+emp.Email+" updated")
	return emp, nil
}

// ActivateEmployee re-enables a soft-deleted employee.
func (s *OrgService) ActivateEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return s.setActive(ctx, id, true)
}

// DeactivateEmployee soft-deletes an employee and clears the manager of
// everyone reporting to them. A department head must be replaced first.
func (s *OrgService) DeactivateEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	return s.setActive(ctx, id, false)
}

func (s *OrgService) setActive(ctx context.Context, id uuid.UUID, active bool) (emp *models.Employee, err error) {
	op, eventType := "deactivate_employee", events.EmployeeDeactivated
	if active {
		op, eventType = "activate_employee", events.EmployeeActivated
	}
	defer observe(op, time.Now(), &err)

	err = s.repo.WithTransaction(ctx, func(tx *db.Repository) error {
		emp, err = tx.GetEmployee(ctx, id)
		if err != nil {
			return err
		}
		if emp.IsTopKind() {
			return fmt.Errorf("%w: %s cannot be activated or deactivated", e.ErrTopManager, emp.FullName)
		}
		if !active {
			headed, err := tx.FindDepartmentByManager(ctx, id)
			switch {
			case err == nil:
				return fmt.Errorf("%w: %s heads %q", e.ErrHeadRemoval, emp.FullName, headed.Name)
			case !errors.Is(err, e.ErrNotFound):
				return err
			}
		}
		if err := tx.SetEmployeeActive(ctx, id, active); err != nil {
			return err
		}
		emp.IsActive = active
		if !active {
			return s.engine.ReconcileReports(ctx, tx, id)
		}
		return nil
	})
	if err != nil {
		return nil, s.fail(ctx, op, err, zap.String("employee_id", id.String()))
	}

	s.emit(ctx, eventType, events.EntityEmployee, emp.ID, "employee "+emp.Email+" "+string(eventType[len("employee_"):]))
	return emp, nil
}

func (s *OrgService) ListRoles(ctx context.Context) ([]models.Role, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list_roles", err)
	}
	return roles, nil
}

// ListActivity returns recent activity, newest first.
func (s *OrgService) ListActivity(ctx context.Context, subjectID *uuid.UUID, limit int) ([]*models.Activity, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: negative limit", e.ErrInvalidInput)
	}
	list, err := s.repo.ListActivity(ctx, subjectID, limit)
	if err != nil {
		return nil, s.fail(ctx, "list_activity", err)
	}
	return list, nil
}

func (s *OrgService) lookupRole(ctx context.Context, name string) (*models.Role, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "" {
		name = models.RoleStaff
	}
	role, err := s.repo.GetRoleByName(ctx, name)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown role %q", e.ErrInvalidInput, name)
		}
		return nil, err
	}
	return role, nil
}

func (s *OrgService) checkRoleChange(ctx context.Context, tx *db.Repository, current *models.Employee, roleName string) error {
	next, err := tx.GetRoleByName(ctx, roleName)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return fmt.Errorf("%w: unknown role %q", e.ErrInvalidInput, roleName)
		}
		return err
	}

	if next.Kind() != models.KindDepartmentHead {
		headed, err := tx.FindDepartmentByManager(ctx, current.ID)
		switch {
		case err == nil:
			return fmt.Errorf("%w: %s heads %q", e.ErrHeadRemoval, current.FullName, headed.Name)
		case !errors.Is(err, e.ErrNotFound):
			return err
		}
	}
	if next.Kind() == models.KindTopManager && current.DepartmentID != nil {
		return fmt.Errorf("%w: remove %s from the department first", e.ErrTopManager, current.FullName)
	}
	return nil
}

func (s *OrgService) checkDepartmentUnique(ctx context.Context, name, code string, excludeID *uuid.UUID) error {
	if code != "" {
		exists, err := s.repo.DepartmentExists(ctx, "code", code, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check code existence: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", e.ErrDuplicateCode, code)
		}
	}
	if name != "" {
		exists, err := s.repo.DepartmentExists(ctx, "name", name, excludeID)
		if err != nil {
			return fmt.Errorf("failed to check name existence: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: %s", e.ErrDuplicateName, name)
		}
	}
	return nil
}

// fail passes domain errors through and hides anything else behind a generic
// bad request after logging it.
func (s *OrgService) fail(ctx context.Context, op string, err error, fields ...zap.Field) error {
	if errors.Is(err, e.ErrNotFound) || errors.Is(err, e.ErrBadRequest) || errors.Is(err, e.ErrConflict) {
		return err
	}
	s.logger.Error("Operation failed",
		append(fields,
			zap.String("operation", op),
			zap.String("actor", auth.ActorID(ctx)),
			zap.Error(err),
		)...,
	)
	return fmt.Errorf("%w: %s could not be completed", e.ErrBadRequest, strings.ReplaceAll(op, "_", " "))
}

func (s *OrgService) emit(ctx context.Context, eventType events.EventType, entity string, subjectID uuid.UUID, description string) {
	s.producer.Produce(events.NewEvent(eventType, entity, subjectID, auth.ActorID(ctx), description))
}

func observe(op string, started time.Time, err *error) {
	metrics.Observe(op, started, *err)
}

func validateDepartmentFields(name, code, description *string) error {
	if name != nil && (*name == "" || len(*name) > maxNameLength) {
		return fmt.Errorf("%w: invalid name", e.ErrInvalidInput)
	}
	if code != nil && (*code == "" || len(*code) > maxCodeLength) {
		return fmt.Errorf("%w: invalid code", e.ErrInvalidInput)
	}
	if description != nil && len(*description) > maxDescriptionLength {
		return fmt.Errorf("%w: description too long", e.ErrInvalidInput)
	}
	return nil
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func trimmed(s string) *string {
	s = strings.TrimSpace(s)
	return &s
}

func managerDescription(dept *models.Department) string {
	if dept.ManagerID == nil {
		return "head of " + dept.Code + " cleared"
	}
	return "head of " + dept.Code + " set to " + dept.ManagerID.String()
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

func idOrNone(id *uuid.UUID) string {
	if id == nil {
		return "none"
	}
	return id.String()
}
