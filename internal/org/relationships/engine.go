// Package relationships keeps the department / employee / manager graph
// consistent whenever departments, heads or memberships change.
//
// Every operation receives a transaction-scoped Store and must be called
// inside a single transaction: the engine performs several writes per
// operation and relies on the caller to commit or roll back all of them.
//
// Manager policy: a manager reference is valid when the manager is a
// top-level manager or belongs to the same department as the employee
// (both without a department counts as the same). Any mismatch clears the
// reference instead of leaving a cross-department pointer behind.
package relationships

import (
	"context"
	"errors"
	"fmt"
	"strings"

	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/gartstein/orgchart/internal/org/models"
	"github.com/gartstein/orgchart/internal/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Store is the transaction-scoped storage the engine works against.
type Store interface {
	GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error)
	FindDepartmentByManager(ctx context.Context, managerID uuid.UUID) (*models.Department, error)
	SetDepartmentManager(ctx context.Context, id uuid.UUID, managerID *uuid.UUID) error
	DeleteDepartment(ctx context.Context, id uuid.UUID) error
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	GetEmployees(ctx context.Context, ids []uuid.UUID) ([]*models.Employee, error)
	ListDepartmentEmployees(ctx context.Context, departmentID uuid.UUID) ([]*models.Employee, error)
	ListEmployeesByManager(ctx context.Context, managerID uuid.UUID) ([]*models.Employee, error)
	UpdateEmployeeRelations(ctx context.Context, id uuid.UUID, departmentID, managerID *uuid.UUID) error
}

// Engine applies relationship fix-ups.
type Engine struct {
	logger *zap.Logger
}

// NewEngine constructs an Engine.
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{logger: logger.Named("relationships")}
}

// DeleteDepartment detaches every member and deletes the department.
// Members keep their manager unless it was the department head.
func (en *Engine) DeleteDepartment(ctx context.Context, store Store, req models.DeleteDepartmentRequest) (*models.DeleteResult, error) {
	dept, err := store.GetDepartment(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	members, err := store.ListDepartmentEmployees(ctx, dept.ID)
	if err != nil {
		return nil, err
	}

	if !req.Force {
		active := 0
		for _, m := range members {
			if m.IsActive && !utils.EqualPtr(&m.ID, dept.ManagerID) {
				active++
			}
		}
		if active > 0 {
			return nil, fmt.Errorf("%w: %d active employees left in %s", e.ErrDepartmentNotEmpty, active, dept.Code)
		}
	}

	detached := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		manager := m.ManagerID
		if dept.ManagerID != nil && utils.EqualPtr(manager, dept.ManagerID) {
			manager = nil
		}
		if err := en.apply(ctx, store, m, nil, manager); err != nil {
			return nil, err
		}
		detached = append(detached, m.ID)
	}

	if dept.ManagerID != nil {
		head, err := store.GetEmployee(ctx, *dept.ManagerID)
		switch {
		case errors.Is(err, e.ErrNotFound):
		case err != nil:
			return nil, err
		default:
			if head.InDepartment(dept.ID) {
				if err := en.apply(ctx, store, head, nil, nil); err != nil {
					return nil, err
				}
			}
			if err := en.clearReports(ctx, store, head.ID); err != nil {
				return nil, err
			}
		}
	}

	if err := store.DeleteDepartment(ctx, dept.ID); err != nil {
		return nil, err
	}

	return &models.DeleteResult{
		Message:  fmt.Sprintf("department %s deleted, %d employees detached", dept.Code, len(detached)),
		Detached: detached,
	}, nil
}

// AssignManager sets or clears the head of a department and points every
// regular member at the new head.
func (en *Engine) AssignManager(ctx context.Context, store Store, req models.AssignManagerRequest) (*models.Department, error) {
	dept, err := store.GetDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}

	var head *models.Employee
	if req.ManagerID != nil {
		head, err = store.GetEmployee(ctx, *req.ManagerID)
		if err != nil {
			return nil, err
		}
		if !head.IsActive {
			return nil, fmt.Errorf("%w: %s", e.ErrInactiveEmployee, head.FullName)
		}
		if !head.IsHeadKind() {
			return nil, fmt.Errorf("%w: %s has role %s", e.ErrInvalidManagerRole, head.FullName, head.Role.Name)
		}

		other, err := store.FindDepartmentByManager(ctx, head.ID)
		switch {
		case err == nil && other.ID != dept.ID:
			return nil, fmt.Errorf("%w: %s already manages %q", e.ErrManagerAlreadyAssigned, head.FullName, other.Name)
		case err != nil && !errors.Is(err, e.ErrNotFound):
			return nil, err
		}
	}

	previous := dept.ManagerID
	if err := store.SetDepartmentManager(ctx, dept.ID, req.ManagerID); err != nil {
		return nil, err
	}
	dept.ManagerID = req.ManagerID

	switch {
	case head != nil:
		moved := !head.InDepartment(dept.ID)
		if err := en.apply(ctx, store, head, &dept.ID, nil); err != nil {
			return nil, err
		}
		if moved {
			if err := en.detachStaleReports(ctx, store, head.ID); err != nil {
				return nil, err
			}
		}
	case previous != nil:
		prev, err := store.GetEmployee(ctx, *previous)
		switch {
		case errors.Is(err, e.ErrNotFound):
		case err != nil:
			return nil, err
		case prev.InDepartment(dept.ID):
			if err := en.apply(ctx, store, prev, nil, nil); err != nil {
				return nil, err
			}
		}
	}

	members, err := store.ListDepartmentEmployees(ctx, dept.ID)
	if err != nil {
		return nil, err
	}
	for _, m := range members {
		if m.IsHeadKind() || m.IsTopKind() || utils.EqualPtr(m.ManagerID, req.ManagerID) {
			continue
		}
		if err := en.apply(ctx, store, m, &dept.ID, req.ManagerID); err != nil {
			return nil, err
		}
	}

	if previous != nil && !utils.EqualPtr(previous, req.ManagerID) {
		if err := en.detachStaleReports(ctx, store, *previous); err != nil {
			return nil, err
		}
	}
	return dept, nil
}

// AssignEmployees moves a batch of employees into a department.
func (en *Engine) AssignEmployees(ctx context.Context, store Store, req models.BulkAssignRequest) (*models.BulkAssignResult, error) {
	ids, err := normalizeIDs(req.EmployeeIDs)
	if err != nil {
		return nil, err
	}
	dept, err := store.GetDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	employees, err := loadEmployees(ctx, store, ids)
	if err != nil {
		return nil, err
	}

	for _, emp := range employees {
		if emp.IsTopKind() {
			return nil, fmt.Errorf("%w: %s cannot join a department", e.ErrTopManager, emp.FullName)
		}
		if err := ensureNotHeadingElsewhere(ctx, store, emp, &dept.ID); err != nil {
			return nil, err
		}
	}

	var autoHead *uuid.UUID
	if req.AutoAssignManager && dept.ManagerID != nil {
		autoHead = dept.ManagerID
	}

	batch := idSet(ids)
	moved := make([]uuid.UUID, 0, len(employees))
	for _, emp := range employees {
		previousDept := emp.DepartmentID

		var manager *uuid.UUID
		switch {
		case emp.IsHeadKind():
		case autoHead != nil && *autoHead != emp.ID:
			manager = autoHead
		default:
			manager, err = en.keepManager(ctx, store, emp.ManagerID, &dept.ID, batch)
			if err != nil {
				return nil, err
			}
		}

		if err := en.apply(ctx, store, emp, &dept.ID, manager); err != nil {
			return nil, err
		}
		if !utils.EqualPtr(previousDept, &dept.ID) {
			moved = append(moved, emp.ID)
		}
	}

	for _, id := range moved {
		if err := en.detachStaleReports(ctx, store, id); err != nil {
			return nil, err
		}
	}

	return &models.BulkAssignResult{
		Department:          dept,
		Assigned:            employees,
		AutoAssignedManager: autoHead,
	}, nil
}

// RemoveEmployees detaches a batch of employees from a department. The whole
// batch is rejected when any member is the current head.
func (en *Engine) RemoveEmployees(ctx context.Context, store Store, req models.BulkRemoveRequest) (*models.BulkRemoveResult, error) {
	ids, err := normalizeIDs(req.EmployeeIDs)
	if err != nil {
		return nil, err
	}
	dept, err := store.GetDepartment(ctx, req.DepartmentID)
	if err != nil {
		return nil, err
	}
	employees, err := loadEmployees(ctx, store, ids)
	if err != nil {
		return nil, err
	}

	for _, emp := range employees {
		if utils.EqualPtr(&emp.ID, dept.ManagerID) {
			return nil, fmt.Errorf("%w: %s heads %q", e.ErrHeadRemoval, emp.FullName, dept.Name)
		}
		if emp.IsTopKind() {
			return nil, fmt.Errorf("%w: %s", e.ErrTopManager, emp.FullName)
		}
		if !emp.InDepartment(dept.ID) {
			return nil, fmt.Errorf("%w: %s is not in %q", e.ErrNotInDepartment, emp.FullName, dept.Name)
		}
	}

	batch := idSet(ids)
	for _, emp := range employees {
		var manager *uuid.UUID
		if !utils.EqualPtr(emp.ManagerID, dept.ManagerID) {
			manager, err = en.keepManager(ctx, store, emp.ManagerID, nil, batch)
			if err != nil {
				return nil, err
			}
		}
		if err := en.apply(ctx, store, emp, nil, manager); err != nil {
			return nil, err
		}
	}

	for _, emp := range employees {
		if err := en.detachStaleReports(ctx, store, emp.ID); err != nil {
			return nil, err
		}
	}

	return &models.BulkRemoveResult{Department: dept, Removed: employees}, nil
}

// TransferEmployee moves one employee to another department or out of any.
// The target department's head becomes the manager of regular employees.
func (en *Engine) TransferEmployee(ctx context.Context, store Store, req models.TransferRequest) (*models.TransferResult, error) {
	emp, err := store.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	var dept *models.Department
	if req.DepartmentID != nil {
		dept, err = store.GetDepartment(ctx, *req.DepartmentID)
		if err != nil {
			return nil, err
		}
		if emp.IsTopKind() {
			return nil, fmt.Errorf("%w: %s cannot join a department", e.ErrTopManager, emp.FullName)
		}
	}
	if err := ensureNotHeadingElsewhere(ctx, store, emp, req.DepartmentID); err != nil {
		return nil, err
	}

	previousDept := emp.DepartmentID
	previousManager := emp.ManagerID

	var manager *uuid.UUID
	switch {
	case emp.IsHeadKind() || emp.IsTopKind():
	case dept != nil && dept.ManagerID != nil && *dept.ManagerID != emp.ID:
		manager = dept.ManagerID
	default:
		manager, err = en.keepManager(ctx, store, emp.ManagerID, req.DepartmentID, nil)
		if err != nil {
			return nil, err
		}
	}

	if err := en.apply(ctx, store, emp, req.DepartmentID, manager); err != nil {
		return nil, err
	}
	if !utils.EqualPtr(previousDept, req.DepartmentID) {
		if err := en.detachStaleReports(ctx, store, emp.ID); err != nil {
			return nil, err
		}
	}

	return &models.TransferResult{
		Employee:             emp,
		PreviousDepartmentID: previousDept,
		AutoAssignedManager:  manager != nil && !utils.EqualPtr(manager, previousManager),
	}, nil
}

// AssignEmployeeManager sets or clears the direct manager of one employee.
func (en *Engine) AssignEmployeeManager(ctx context.Context, store Store, req models.AssignEmployeeManagerRequest) (*models.Employee, error) {
	emp, err := store.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if req.ManagerID == nil {
		if err := en.apply(ctx, store, emp, emp.DepartmentID, nil); err != nil {
			return nil, err
		}
		return emp, nil
	}

	if *req.ManagerID == emp.ID {
		return nil, fmt.Errorf("%w: an employee cannot manage themselves", e.ErrInvalidInput)
	}
	if emp.IsHeadKind() || emp.IsTopKind() {
		return nil, fmt.Errorf("%w: %s has role %s and reports to nobody", e.ErrInvalidInput, emp.FullName, emp.Role.Name)
	}

	manager, err := store.GetEmployee(ctx, *req.ManagerID)
	if err != nil {
		return nil, err
	}
	if !manager.IsActive {
		return nil, fmt.Errorf("%w: %s", e.ErrInactiveEmployee, manager.FullName)
	}
	if manager.Role.Kind() == models.KindStaff {
		return nil, fmt.Errorf("%w: %s has role %s", e.ErrInvalidManagerRole, manager.FullName, manager.Role.Name)
	}
	if !managerFits(emp.DepartmentID, manager) {
		return nil, fmt.Errorf("%w: %s is outside the department of %s", e.ErrInvalidInput, manager.FullName, emp.FullName)
	}

	if err := en.apply(ctx, store, emp, emp.DepartmentID, req.ManagerID); err != nil {
		return nil, err
	}
	return emp, nil
}

// ReconcileReports re-checks everyone reporting to managerID after the
// manager's role or active flag changed. An inactive or staff manager loses
// all reports; otherwise only reports the manager no longer fits are cleared.
func (en *Engine) ReconcileReports(ctx context.Context, store Store, managerID uuid.UUID) error {
	manager, err := store.GetEmployee(ctx, managerID)
	if err != nil {
		return err
	}
	if !manager.IsActive || manager.Role.Kind() == models.KindStaff {
		return en.clearReports(ctx, store, managerID)
	}
	return en.detachStaleReports(ctx, store, managerID)
}

// apply writes both references of emp and mirrors them on the struct.
func (en *Engine) apply(ctx context.Context, store Store, emp *models.Employee, departmentID, managerID *uuid.UUID) error {
	if managerID != nil {
		if err := ensureAcyclic(ctx, store, emp.ID, *managerID); err != nil {
			return err
		}
	}
	if err := store.UpdateEmployeeRelations(ctx, emp.ID, departmentID, managerID); err != nil {
		return err
	}

	en.logger.Debug("relationship fix-up",
		zap.String("employee_id", emp.ID.String()),
		zap.String("department_id", idString(departmentID)),
		zap.String("manager_id", idString(managerID)),
	)
	emp.DepartmentID = cloneID(departmentID)
	emp.ManagerID = cloneID(managerID)
	return nil
}

// keepManager returns current when it still fits departmentID, nil otherwise.
// Managers in batch are about to land in departmentID and therefore fit.
func (en *Engine) keepManager(ctx context.Context, store Store, current, departmentID *uuid.UUID, batch map[uuid.UUID]struct{}) (*uuid.UUID, error) {
	if current == nil {
		return nil, nil
	}
	if _, ok := batch[*current]; ok {
		return current, nil
	}

	manager, err := store.GetEmployee(ctx, *current)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if managerFits(departmentID, manager) {
		return current, nil
	}
	return nil, nil
}

// detachStaleReports clears the manager of everyone reporting to managerID
// whose department no longer matches the manager's.
func (en *Engine) detachStaleReports(ctx context.Context, store Store, managerID uuid.UUID) error {
	manager, err := store.GetEmployee(ctx, managerID)
	if err != nil {
		return err
	}
	reports, err := store.ListEmployeesByManager(ctx, managerID)
	if err != nil {
		return err
	}
	for _, r := range reports {
		if managerFits(r.DepartmentID, manager) {
			continue
		}
		if err := en.apply(ctx, store, r, r.DepartmentID, nil); err != nil {
			return err
		}
	}
	return nil
}

// clearReports drops managerID from everyone still reporting to it.
func (en *Engine) clearReports(ctx context.Context, store Store, managerID uuid.UUID) error {
	reports, err := store.ListEmployeesByManager(ctx, managerID)
	if err != nil {
		return err
	}
	for _, r := range reports {
		if err := en.apply(ctx, store, r, r.DepartmentID, nil); err != nil {
			return err
		}
	}
	return nil
}

func managerFits(departmentID *uuid.UUID, manager *models.Employee) bool {
	if manager.IsTopKind() {
		return true
	}
	return utils.EqualPtr(departmentID, manager.DepartmentID)
}

// ensureNotHeadingElsewhere rejects moving a department head anywhere but
// the department it heads.
func ensureNotHeadingElsewhere(ctx context.Context, store Store, emp *models.Employee, target *uuid.UUID) error {
	if !emp.IsHeadKind() {
		return nil
	}
	headed, err := store.FindDepartmentByManager(ctx, emp.ID)
	if err != nil {
		if errors.Is(err, e.ErrNotFound) {
			return nil
		}
		return err
	}
	if target != nil && headed.ID == *target {
		return nil
	}
	return fmt.Errorf("%w: %s heads %q", e.ErrHeadRemoval, emp.FullName, headed.Name)
}

// ensureAcyclic walks the manager chain upwards from managerID and fails when
// it reaches employeeID or any node twice.
func ensureAcyclic(ctx context.Context, store Store, employeeID, managerID uuid.UUID) error {
	visited := map[uuid.UUID]struct{}{employeeID: {}}
	current := &managerID
	for current != nil {
		if _, seen := visited[*current]; seen {
			return fmt.Errorf("%w: %s via %s", e.ErrManagerCycle, employeeID, *current)
		}
		visited[*current] = struct{}{}

		next, err := store.GetEmployee(ctx, *current)
		if err != nil {
			if errors.Is(err, e.ErrNotFound) {
				return nil
			}
			return err
		}
		current = next.ManagerID
	}
	return nil
}

func loadEmployees(ctx context.Context, store Store, ids []uuid.UUID) ([]*models.Employee, error) {
	found, err := store.GetEmployees(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]*models.Employee, len(found))
	for _, emp := range found {
		byID[emp.ID] = emp
	}

	out := make([]*models.Employee, 0, len(ids))
	var missing []string
	for _, id := range ids {
		emp, ok := byID[id]
		if !ok {
			missing = append(missing, id.String())
			continue
		}
		out = append(out, emp)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: employees %s", e.ErrNotFound, strings.Join(missing, ", "))
	}
	return out, nil
}

// normalizeIDs drops duplicates, keeping the first occurrence.
func normalizeIDs(ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one employee id is required", e.ErrInvalidInput)
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			return nil, fmt.Errorf("%w: nil employee id", e.ErrInvalidInput)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out, nil
}

func idSet(ids []uuid.UUID) map[uuid.UUID]struct{} {
	set := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func cloneID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	return utils.Ptr(*id)
}

func idString(id *uuid.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
