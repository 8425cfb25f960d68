package sbmlerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Status is the integer operation status reported by setters, unsetters
// and the generic attribute accessors.
type Status int

const (
	OperationSuccess      Status = 0
	IndexExceedsSize      Status = -1
	UnexpectedAttribute   Status = -2
	OperationFailed       Status = -3
	InvalidAttributeValue Status = -4
	InvalidObject         Status = -5
	DuplicateObjectID     Status = -6
	LevelMismatch         Status = -7
	VersionMismatch       Status = -8
	PkgVersionMismatch    Status = -22
)

func (s Status) String() string {
	switch s {
	case OperationSuccess:
		return "operation succeeded"
	case IndexExceedsSize:
		return "index exceeds size"
	case UnexpectedAttribute:
		return "unexpected attribute"
	case OperationFailed:
		return "operation failed"
	case InvalidAttributeValue:
		return "invalid attribute value"
	case InvalidObject:
		return "invalid object"
	case DuplicateObjectID:
		return "duplicate object id"
	case LevelMismatch:
		return "level mismatch"
	case VersionMismatch:
		return "version mismatch"
	case PkgVersionMismatch:
		return "package version mismatch"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// StatusError is an error carrying an operation Status.
type StatusError struct{ Status Status }

func (e *StatusError) Error() string { return e.Status.String() }

var (
	ErrIndexExceedsSize      = &StatusError{IndexExceedsSize}
	ErrUnexpectedAttribute   = &StatusError{UnexpectedAttribute}
	ErrOperationFailed       = &StatusError{OperationFailed}
	ErrInvalidAttributeValue = &StatusError{InvalidAttributeValue}
	ErrInvalidObject         = &StatusError{InvalidObject}
	ErrDuplicateObjectID     = &StatusError{DuplicateObjectID}
	ErrLevelMismatch         = &StatusError{LevelMismatch}
	ErrVersionMismatch       = &StatusError{VersionMismatch}
	ErrPkgVersionMismatch    = &StatusError{PkgVersionMismatch}
)

// StatusOf returns the Status carried by err. A nil error is
// OperationSuccess; errors without a Status are OperationFailed.
func StatusOf(err error) Status {
	if err == nil {
		return OperationSuccess
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return OperationFailed
}
