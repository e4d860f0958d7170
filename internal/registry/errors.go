package registry

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// UnknownEntityError is returned when an entity name does not match any
// EntityType.
type UnknownEntityError struct {
	Value string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("%q is not a valid entity type (expected one of: %s)", e.Value, strings.Join(entityNames(), ", "))
}

// EntityNotAvailableError is returned when the entity is valid but has no
// registered provider, usually because it is disabled in configuration.
type EntityNotAvailableError struct {
	Entity EntityType
}

func (e *EntityNotAvailableError) Error() string {
	return fmt.Sprintf("entity %q is not available (not enabled or no provider registered)", string(e.Entity))
}

// OperationNotFoundError is returned when a provider has no operation with
// the requested name.
type OperationNotFoundError struct {
	Entity    EntityType
	Operation string
}

func (e *OperationNotFoundError) Error() string {
	return fmt.Sprintf("operation %q not found for entity %q", e.Operation, string(e.Entity))
}

// FieldIssue describes one problem found while validating a request.
type FieldIssue struct {
	Path    string
	Message string
}

func (i *FieldIssue) Error() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError aggregates every FieldIssue found for one request.
type ValidationError struct {
	Shape string
	Err   error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0)
	for _, issue := range e.Issues() {
		msgs = append(msgs, issue.Error())
	}
	return fmt.Sprintf("invalid %s request: %s", e.Shape, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Issues returns the individual field problems in the order they were found.
func (e *ValidationError) Issues() []*FieldIssue {
	var out []*FieldIssue
	for _, err := range multierr.Errors(e.Err) {
		var issue *FieldIssue
		if errors.As(err, &issue) {
			out = append(out, issue)
			continue
		}
		out = append(out, &FieldIssue{Message: err.Error()})
	}
	return out
}

// RegistryError wraps unexpected failures raised while executing an
// operation. The original error stays reachable through Unwrap.
type RegistryError struct {
	Entity    EntityType
	Operation string
	Err       error
}

func (e *RegistryError) Error() string {
	return fmt.Sprintf("execution error in %s.%s: %v", string(e.Entity), e.Operation, e.Err)
}

func (e *RegistryError) Unwrap() error {
	return e.Err
}

// IsDispatchError reports whether err is one of the registry's own error
// kinds, which are surfaced to callers unchanged.
func IsDispatchError(err error) bool {
	var (
		unknown  *UnknownEntityError
		missing  *EntityNotAvailableError
		notFound *OperationNotFoundError
		invalid  *ValidationError
		wrapped  *RegistryError
	)
	return errors.As(err, &unknown) ||
		errors.As(err, &missing) ||
		errors.As(err, &notFound) ||
		errors.As(err, &invalid) ||
		errors.As(err, &wrapped)
}

func issue(path, format string, args ...any) error {
	return &FieldIssue{Path: path, Message: fmt.Sprintf(format, args...)}
}
