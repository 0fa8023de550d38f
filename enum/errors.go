package enum

import (
	"errors"
	"fmt"
)

// Specification errors. Every error returned by Define or DeriveSuper wraps
// one of these; data that fails to classify is never reported as an error.
var (
	ErrNoName           = errors.New("enumeration has no name")
	ErrNoVariants       = errors.New("no variants declared")
	ErrEmptyVariantName = errors.New("variant has no name")
	ErrDuplicateName    = errors.New("duplicate variant name")
	ErrDuplicateValue   = errors.New("duplicate variant value")
	// ErrOutOfDomain only accompanies ErrRepresentation: when E and T share
	// a kind every value of E fits T.
	ErrOutOfDomain     = errors.New("variant value not representable by the field type")
	ErrInvalidInterval = errors.New("interval low bound exceeds high bound")
	ErrOutsideInterval = errors.New("variant value outside the validation interval")
	ErrContainer       = errors.New("container does not fit the specification")
	ErrRepresentation  = errors.New("enumeration and field types differ in representation")
)

// SpecError describes one problem in a specification.
type SpecError struct {
	// Enum is the name of the enumeration being defined.
	Enum string
	// Variant is the offending variant name, if any.
	Variant string
	// Detail adds context to Err.
	Detail string
	// Err is one of the Err* sentinels of this package.
	Err error
}

func (e *SpecError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Detail)
	}

	if e.Variant != "" {
		msg = fmt.Sprintf("%s: variant %s: %s", e.Enum, e.Variant, msg)
	} else if e.Enum != "" {
		msg = e.Enum + ": " + msg
	}

	return "constenum: " + msg
}

func (e *SpecError) Unwrap() error {
	return e.Err
}

// specErrors accumulates SpecErrors for one enumeration.
type specErrors struct {
	enum string
	errs []error
}

func (s *specErrors) add(variant string, err error, detail string, args ...any) {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}

	s.errs = append(s.errs, &SpecError{Enum: s.enum, Variant: variant, Detail: detail, Err: err})
}

func (s *specErrors) err() error {
	return errors.Join(s.errs...)
}
