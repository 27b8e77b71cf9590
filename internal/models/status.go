package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// AccountStatus is a user's standing. NULL and empty values read as Active
// (see User.AfterFind for the NULL case).
type AccountStatus string

const (
	StatusActive  AccountStatus = "Active"
	StatusBlocked AccountStatus = "Blocked"
)

// ParseAccountStatus accepts either status case-insensitively.
func ParseAccountStatus(s string) (AccountStatus, bool) {
	switch {
	case strings.EqualFold(strings.TrimSpace(s), string(StatusActive)):
		return StatusActive, true
	case strings.EqualFold(strings.TrimSpace(s), string(StatusBlocked)):
		return StatusBlocked, true
	}
	return "", false
}

// Toggled flips Active and Blocked.
func (s AccountStatus) Toggled() AccountStatus {
	if s == StatusBlocked {
		return StatusActive
	}
	return StatusBlocked
}

func (s *AccountStatus) Scan(src interface{}) error {
	var raw string
	switch v := src.(type) {
	case nil:
		*s = StatusActive
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("unsupported account status type %T", src)
	}

	if parsed, ok := ParseAccountStatus(raw); ok {
		*s = parsed
		return nil
	}
	// Unknown legacy values behave like the default.
	*s = StatusActive
	return nil
}

func (s AccountStatus) Value() (driver.Value, error) {
	if s == "" {
		return string(StatusActive), nil
	}
	return string(s), nil
}
