package db

import (
	"errors"
	"strings"

	e "github.com/gartstein/orgchart/internal/org/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// uniqueColumns are matched against the violated constraint, longest first.
var uniqueColumns = []string{"manager_id", "email", "code", "name"}

// translateError maps driver errors onto the service error taxonomy.
// Unrecognised errors are returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return e.ErrNotFound
	}
	if column, ok := uniqueViolation(err); ok {
		switch column {
		case "code":
			return e.ErrDuplicateCode
		case "name":
			return e.ErrDuplicateName
		case "email":
			return e.ErrDuplicateEmail
		case "manager_id":
			return e.ErrManagerAlreadyAssigned
		default:
			return e.ErrDuplicate
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return e.ErrInvalidInput
	}
	return err
}

// uniqueViolation reports whether err is a unique constraint violation and,
// when the driver tells, which column was violated.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code != pgUniqueViolation {
			return "", false
		}
		if pgErr.ColumnName != "" {
			return pgErr.ColumnName, true
		}
		return columnFromConstraint(pgErr.ConstraintName), true
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		if liteErr.ExtendedCode != sqlite3.ErrConstraintUnique {
			return "", false
		}
		return columnFromMessage(liteErr.Error()), true
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return "", true
	}
	return "", false
}

// columnFromConstraint handles names such as "uq_departments_manager_id".
func columnFromConstraint(name string) string {
	for _, column := range uniqueColumns {
		if strings.HasSuffix(name, "_"+column) {
			return column
		}
	}
	return ""
}

// columnFromMessage handles SQLite messages such as
// "UNIQUE constraint failed: departments.code".
func columnFromMessage(msg string) string {
	_, target, found := strings.Cut(msg, "failed: ")
	if !found {
		return ""
	}
	first, _, _ := strings.Cut(target, ",")
	_, column, found := strings.Cut(strings.TrimSpace(first), ".")
	if !found {
		return ""
	}
	return column
}
