// Package errors declares the error taxonomy of the organization service.
// Every error returned by the service wraps exactly one of ErrNotFound,
// ErrBadRequest or ErrConflict.
package errors

import (
	"fmt"
)

var (
	ErrNotFound   = fmt.Errorf("not found")
	ErrBadRequest = fmt.Errorf("bad request")
	ErrConflict   = fmt.Errorf("conflict")
)

var (
	ErrInvalidInput       = fmt.Errorf("%w: invalid input", ErrBadRequest)
	ErrInvalidManagerRole = fmt.Errorf("%w: role cannot hold this manager position", ErrBadRequest)
	ErrInactiveEmployee   = fmt.Errorf("%w: employee is not active", ErrBadRequest)
	ErrHeadRemoval        = fmt.Errorf("%w: department head must be reassigned first", ErrBadRequest)
	ErrManagerCycle       = fmt.Errorf("%w: manager chain would form a cycle", ErrBadRequest)
	ErrTopManager         = fmt.Errorf("%w: operation not allowed on a top-level manager", ErrBadRequest)
	ErrNotInDepartment    = fmt.Errorf("%w: employee does not belong to the department", ErrBadRequest)
	ErrDepartmentNotEmpty = fmt.Errorf("%w: department still has active employees", ErrBadRequest)
)

var (
	ErrDuplicateCode          = fmt.Errorf("%w: department code already exists", ErrConflict)
	ErrDuplicateName          = fmt.Errorf("%w: department name already exists", ErrConflict)
	ErrDuplicateEmail         = fmt.Errorf("%w: email already exists", ErrConflict)
	ErrManagerAlreadyAssigned = fmt.Errorf("%w: employee already manages another department", ErrConflict)
	ErrDuplicate              = fmt.Errorf("%w: record already exists", ErrConflict)
)
