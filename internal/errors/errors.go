// Package errors provides the error taxonomy for remembrar.
// Callers check categories with errors.Is against the sentinels below
// or with the Is* helpers.
package errors

import (
	"errors"
	"fmt"
)

// Is and As are re-exported so callers do not need both packages.
var (
	Is = errors.Is
	As = errors.As
)

// Sentinel errors.
var (
	// ErrLoad indicates the catalog source is missing or malformed.
	ErrLoad = errors.New("catalog load failed")

	// ErrPersist indicates a store could not be read or written.
	ErrPersist = errors.New("persist failed")

	// ErrLookup indicates a catalog position outside [1, N].
	ErrLookup = errors.New("position out of range")

	// ErrUnauthorized indicates the user may not perform the action.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrAlreadyBookmarked indicates the position was bookmarked before the insert ran.
	ErrAlreadyBookmarked = errors.New("already bookmarked")

	// ErrInvalidInput indicates that provided input was invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// LoadError is returned when the catalog cannot be built. No partial
// catalog accompanies it.
type LoadError struct {
	Source string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load catalog %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("load catalog %s: %s", e.Source, e.Reason)
}

// Unwrap implements errors.Unwrap.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// NewLoadError creates a new LoadError.
func NewLoadError(source, reason string, err error) *LoadError {
	return &LoadError{Source: source, Reason: reason, Err: err}
}

// PersistError wraps an I/O failure in the cursor or bookmark store.
type PersistError struct {
	Store string // "cursor" or "bookmark"
	Op    string // "read", "write", "create"
	Err   error
}

// Error implements the error interface.
func (e *PersistError) Error() string {
	return fmt.Sprintf("%s store %s: %v", e.Store, e.Op, e.Err)
}

// Unwrap implements errors.Unwrap.
func (e *PersistError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support.
func (e *PersistError) Is(target error) bool {
	return target == ErrPersist
}

// NewPersistError creates a new PersistError.
func NewPersistError(store, op string, err error) *PersistError {
	return &PersistError{Store: store, Op: op, Err: err}
}

// LookupError reports a position that does not resolve in the catalog.
// Reaching it means a navigation guard let an invalid position through.
type LookupError struct {
	Position int
	Size     int
}

// Error implements the error interface.
func (e *LookupError) Error() string {
	return fmt.Sprintf("position %d outside catalog range [1, %d]", e.Position, e.Size)
}

// Is implements errors.Is support.
func (e *LookupError) Is(target error) bool {
	return target == ErrLookup
}

// NewLookupError creates a new LookupError.
func NewLookupError(position, size int) *LookupError {
	return &LookupError{Position: position, Size: size}
}

// IsLoad checks if an error is a catalog load error.
func IsLoad(err error) bool {
	return errors.Is(err, ErrLoad)
}

// IsPersist checks if an error is a persistence error.
func IsPersist(err error) bool {
	return errors.Is(err, ErrPersist)
}

// IsLookup checks if an error is a catalog lookup error.
func IsLookup(err error) bool {
	return errors.Is(err, ErrLookup)
}

// IsUnauthorized checks if an error is an authorization failure.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}
