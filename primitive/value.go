package primitive

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrInvalidLiteral reports text that is not an integer literal.
	ErrInvalidLiteral = errors.New("invalid integer literal")
	// ErrOutOfDomain reports a literal that the kind cannot represent.
	ErrOutOfDomain = errors.New("value out of domain")
)

// Value is an integer of a given kind. Signed values are stored as two's
// complement bits so both halves of the 64-bit space fit one representation.
type Value struct {
	kind KindEnum
	bits uint64
}

// ParseValue parses a Go integer literal (decimal, 0x, 0o, 0b, with optional
// underscores and leading sign) as a value of kind k.
func ParseValue(k KindEnum, text string) (Value, error) {
	if !k.IsValid() {
		return Value{}, fmt.Errorf("parse %q: unsupported kind %s", text, k)
	}

	s := strings.TrimSpace(text)
	if s == "" {
		return Value{}, fmt.Errorf("parse %q: %w", text, ErrInvalidLiteral)
	}

	if k.IsSigned() {
		n, err := strconv.ParseInt(s, 0, k.Bits())
		if err != nil {
			return Value{}, literalError(text, k, err)
		}

		return Value{kind: k, bits: uint64(n)}, nil
	}

	n, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 0, k.Bits())
	if err != nil {
		// A well-formed negative literal is a domain problem, not a syntax one.
		if strings.HasPrefix(s, "-") {
			if _, ierr := strconv.ParseInt(s, 0, 64); ierr == nil || errors.Is(ierr, strconv.ErrRange) {
				return Value{}, fmt.Errorf("parse %q: %w for %s", text, ErrOutOfDomain, k.GoName())
			}
		}

		return Value{}, literalError(text, k, err)
	}

	return Value{kind: k, bits: n}, nil
}

func literalError(text string, k KindEnum, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("parse %q: %w for %s", text, ErrOutOfDomain, k.GoName())
	}

	return fmt.Errorf("parse %q: %w", text, ErrInvalidLiteral)
}

// IntValue builds a value of a signed kind. It does not check the domain.
func IntValue(k KindEnum, n int64) Value {
	return Value{kind: k, bits: uint64(n)}
}

// UintValue builds a value of an unsigned kind. It does not check the domain.
func UintValue(k KindEnum, n uint64) Value {
	return Value{kind: k, bits: n}
}

// MinValue returns the smallest value representable by k.
func MinValue(k KindEnum) Value {
	if k.IsUnsigned() {
		return Value{kind: k}
	}

	return IntValue(k, -1<<(k.Bits()-1))
}

// MaxValue returns the largest value representable by k.
func MaxValue(k KindEnum) Value {
	if k.IsUnsigned() {
		return UintValue(k, math.MaxUint64>>(64-k.Bits()))
	}

	return IntValue(k, 1<<(k.Bits()-1)-1)
}

func (v Value) Kind() KindEnum { return v.kind }

func (v Value) Int64() int64 { return int64(v.bits) }

func (v Value) Uint64() uint64 { return v.bits }

// Compare returns -1, 0 or +1. Both values must share a signedness.
func (v Value) Compare(o Value) int {
	if v.kind.IsSigned() {
		a, b := v.Int64(), o.Int64()
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}

		return 0
	}

	switch {
	case v.bits < o.bits:
		return -1
	case v.bits > o.bits:
		return 1
	}

	return 0
}

func (v Value) Less(o Value) bool { return v.Compare(o) < 0 }

func (v Value) String() string {
	if v.kind.IsSigned() {
		return strconv.FormatInt(v.Int64(), 10)
	}

	return strconv.FormatUint(v.bits, 10)
}
