// Package errors provides structured error types for notedeck.
// These errors carry the operation that failed and a coarse category so
// callers can decide how to present them.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindPermission
	KindIO
	KindNetwork
	KindConfig
	KindTimeout
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindPermission:
		return "permission denied"
	case KindIO:
		return "I/O error"
	case KindNetwork:
		return "network error"
	case KindConfig:
		return "configuration error"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for notedeck.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...interface{}) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Collection errors
func EmptyCollection() error {
	return E(Op("document.NewCollection"), KindConfig, "document collection is empty")
}

func DuplicateDocument(id string) error {
	return E(Op("document.NewCollection"), KindConfig, fmt.Sprintf("duplicate document id %q", id))
}

func MissingDocumentID(index int) error {
	return E(Op("document.NewCollection"), KindConfig, fmt.Sprintf("document at position %d has no id", index))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}

// Sandbox errors
func UnknownSandboxToken(token string) error {
	return E(Op("sandbox.Parse"), KindInvalid, fmt.Sprintf("unknown sandbox token %q", token))
}

// Load errors
func LocatorForbidden(locator string) error {
	return E(Op("surface.Load"), KindPermission, fmt.Sprintf("%s is outside the surface origin (allow-same-origin is off)", locator))
}

func DocumentLoadFailed(locator string, err error) error {
	return E(Op("surface.Load"), KindIO, fmt.Sprintf("failed to load %s", locator), err)
}

func DocumentFetchFailed(locator string, err error) error {
	return E(Op("surface.Load"), KindNetwork, fmt.Sprintf("failed to fetch %s", locator), err)
}

func DocumentLoadTimeout(locator string) error {
	return E(Op("surface.Load"), KindTimeout, fmt.Sprintf("timed out loading %s", locator))
}
