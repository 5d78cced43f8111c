package domain

import (
	"errors"
	"strings"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested contact or group does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAccessDenied indicates Contacts access is not authorized.
	ErrAccessDenied = errors.New("contacts access denied")
)

// ScriptError reports that osascript exited non-zero while executing a
// generated script. It carries the interpreter's diagnostic output.
// Script executions are never retried; the Contacts database state after
// a failed mutation is undefined and must be re-read if certainty is
// required.
type ScriptError struct {
	Stderr string
}

// Error returns the trimmed interpreter diagnostics.
func (e *ScriptError) Error() string {
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "script execution failed"
	}
	return "applescript: " + msg
}
