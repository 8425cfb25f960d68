package attr

import (
	"github.com/andaru/sbmlbind/sbmlerr"
	"github.com/pkg/errors"
)

// Errors returned by Value accessors and Field setters. Each carries the
// sbmlerr status reported to callers of the generic attribute accessors.
var (
	ErrKind         = errors.WithMessage(sbmlerr.ErrOperationFailed, "attr: value kind mismatch")
	ErrEmpty        = errors.WithMessage(sbmlerr.ErrInvalidAttributeValue, "attr: empty value")
	ErrSyntax       = errors.WithMessage(sbmlerr.ErrInvalidAttributeValue, "attr: invalid syntax")
	ErrRange        = errors.WithMessage(sbmlerr.ErrInvalidAttributeValue, "attr: value out of range")
	ErrInvalidToken = errors.WithMessage(sbmlerr.ErrInvalidAttributeValue, "attr: not a valid option")
)

func kindError(want, got Kind) error {
	return errors.Wrapf(ErrKind, "want %s, got %s", want, got)
}
