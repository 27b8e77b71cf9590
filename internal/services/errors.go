package services

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Failure kinds. Handlers map them to HTTP status codes with errors.Is.
var (
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrConflict           = errors.New("already exists")
	ErrNotFound           = errors.New("not found")
	ErrSchema             = errors.New("database schema mismatch")
	ErrStore              = errors.New("database error")
)

// serviceError carries a client-safe message, its kind and the
// underlying cause.
type serviceError struct {
	kind  error
	msg   string
	cause error
}

func (e *serviceError) Error() string        { return e.msg }
func (e *serviceError) Is(target error) bool { return target == e.kind }
func (e *serviceError) Unwrap() error        { return e.cause }

func newError(kind error, msg string, cause error) error {
	return &serviceError{kind: kind, msg: msg, cause: cause}
}

func validationError(msg string) error {
	return newError(ErrValidation, msg, nil)
}

func notFound(msg string) error {
	return newError(ErrNotFound, msg, nil)
}

// storeError classifies a failed statement as a schema mismatch or a
// generic store failure. msg is used for the generic case.
func storeError(err error, table, msg string) error {
	if isSchemaError(err) {
		return newError(ErrSchema, "Database schema mismatch. Check '"+table+"' table columns.", err)
	}
	return newError(ErrStore, msg, err)
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// Handles opened without TranslateError still return driver errors.
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isSchemaError(err error) bool {
	// The postgres dialector translates 42703 to ErrInvalidField.
	if errors.Is(err, gorm.ErrInvalidField) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1054, 1064, 1146:
			return true
		}
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42703", "42P01", "42601":
			return true
		}
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "no such column") ||
		strings.Contains(msg, "no such table") ||
		strings.Contains(msg, "has no column named")
}
