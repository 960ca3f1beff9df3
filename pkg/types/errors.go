package types

import "errors"

// Record errors.
var (
	ErrNotFound      = errors.New("ad configuration not found")
	ErrInvalidID     = errors.New("invalid ad configuration ID")
	ErrDuplicateID   = errors.New("duplicate ad configuration ID")
	ErrInvalidName   = errors.New("invalid name")
	ErrInvalidFormat = errors.New("invalid ad format")
	ErrInvalidStatus = errors.New("invalid status")
)

// View state errors.
var (
	ErrInvalidSort     = errors.New("invalid sort directive")
	ErrInvalidPage     = errors.New("page must not be negative")
	ErrInvalidPageSize = errors.New("rows per page must be positive")
)

// ErrNotImplemented is returned by the placeholder row actions.
var ErrNotImplemented = errors.New("not implemented")
