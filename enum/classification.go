package enum

import (
	"fmt"

	"constenum/utils"
)

// Integer is the set of primitive types a classified field may hold.
type Integer = utils.Integer

// Classification is the result of classifying a raw value: either a declared
// variant (Known) or the untouched raw value (Unknown).
//
// The zero Classification is Unknown(0).
type Classification[E, T Integer] struct {
	variant E
	raw     T
	known   bool
}

// Known returns a Known classification of v. The raw type T comes first so
// callers only spell it out: enum.Known[uint8](HellosV3).
func Known[T, E Integer](v E) Classification[E, T] {
	return Classification[E, T]{variant: v, raw: T(v), known: true}
}

// Unknown returns an Unknown classification carrying raw.
func Unknown[E, T Integer](raw T) Classification[E, T] {
	return Classification[E, T]{raw: raw}
}

func (c Classification[E, T]) IsKnown() bool { return c.known }

func (c Classification[E, T]) IsUnknown() bool { return !c.known }

// Variant returns the classified variant and true, or the zero variant and
// false for Unknown.
func (c Classification[E, T]) Variant() (E, bool) {
	if !c.known {
		var zero E
		return zero, false
	}

	return c.variant, true
}

// Raw returns the raw value the classification was made from.
func (c Classification[E, T]) Raw() T {
	return c.raw
}

// Unwrap returns the variant of a Known classification and panics on Unknown.
// It is the one place where untrusted input can stop the program; callers
// opt in by calling it.
func (c Classification[E, T]) Unwrap() E {
	if !c.known {
		panic(fmt.Sprintf("constenum: unknown value %v", c.raw))
	}

	return c.variant
}

// UnwrapOr returns the variant of a Known classification or def.
func (c Classification[E, T]) UnwrapOr(def E) E {
	if !c.known {
		return def
	}

	return c.variant
}

// String renders Known(V3) or Unknown(33).
func (c Classification[E, T]) String() string {
	if c.known {
		return fmt.Sprintf("Known(%v)", c.variant)
	}

	return fmt.Sprintf("Unknown(%v)", c.raw)
}

// Match calls known or unknown depending on the case of c and returns its
// result. Both arms are required, so every call site handles both cases.
func Match[E, T Integer, R any](c Classification[E, T], known func(E) R, unknown func(T) R) R {
	if c.known {
		return known(c.variant)
	}

	return unknown(c.raw)
}

// Classifiable is implemented by containers with a generated classifier.
type Classifiable[E, T Integer] interface {
	Classify() Classification[E, T]
}
