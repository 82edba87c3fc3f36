package models

import "fmt"

// ValidationError reports a missing or invalid field on a request.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// InvalidStateError reports an operation attempted from a disallowed status,
// e.g. reviewing a non-pending modification request or paying a settled invoice.
type InvalidStateError struct {
	Entity string
	From   string
	Op     string
}

func (e InvalidStateError) Error() string {
	return fmt.Sprintf("%s cannot %s from status %q", e.Entity, e.Op, e.From)
}

// AuthError reports a credential mismatch at login. The message is intentionally
// generic so callers cannot learn which emails exist.
type AuthError struct{}

func (e AuthError) Error() string {
	return "invalid email or password"
}

// NotFoundError reports a lookup for an entity that does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}
