package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrDuplicateUser      = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTaskNotFound       = errors.New("task not found")

	// ErrStorageFailure reports that the store refused a write. The
	// adapter itself never raises faults; this is the typed signal the
	// repository surfaces so callers do not trust local state after a
	// failed persist.
	ErrStorageFailure = errors.New("storage write failed")
)

// ValidationError carries one message per failing field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return fmt.Sprintf("validation failed: %s", strings.Join(names, ", "))
}
