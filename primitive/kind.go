package primitive

import (
	"go/types"
	"math"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the representation of a classified field: an integer kind with
// a fixed width and signedness.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var goNames = map[KindEnum]string{
	KindInt:    "int",
	KindInt8:   "int8",
	KindInt16:  "int16",
	KindInt32:  "int32",
	KindInt64:  "int64",
	KindUint:   "uint",
	KindUint8:  "uint8",
	KindUint16: "uint16",
	KindUint32: "uint32",
	KindUint64: "uint64",
}

func (k KindEnum) IsValid() bool {
	return k > 0 && int(k) < KindTotal
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

// Bits returns the width of the kind. KindInt and KindUint report the width
// of the host platform.
func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only integer kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	}
}

// GoName returns the predeclared Go type name of the kind, e.g. "uint8".
func (k KindEnum) GoName() string {
	if name, ok := goNames[k]; ok {
		return name
	}

	return ""
}

// ParseKind maps a predeclared Go type name to its kind. "byte" and "rune"
// are accepted as aliases.
func ParseKind(name string) (KindEnum, bool) {
	switch name {
	case "byte":
		return KindUint8, true
	case "rune":
		return KindInt32, true
	}

	for k, n := range goNames {
		if n == name {
			return k, true
		}
	}

	return 0, false
}

func FromReflectKind(kind reflect.Kind) KindEnum {
	switch kind {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	}
}

// FromReflectType returns the kind of the type, following named integer
// types to their underlying kind.
func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	return FromReflectKind(rtype.Kind())
}

// FromGoType returns the kind of the underlying type of t, or 0 when it is
// not an integer.
func FromGoType(t types.Type) KindEnum {
	if t == nil {
		return 0
	}

	basic, ok := t.Underlying().(*types.Basic)
	if !ok {
		return 0
	}

	switch basic.Kind() {
	default:
		return 0
	case types.Int:
		return KindInt
	case types.Int8:
		return KindInt8
	case types.Int16:
		return KindInt16
	case types.Int32:
		return KindInt32
	case types.Int64:
		return KindInt64
	case types.Uint:
		return KindUint
	case types.Uint8:
		return KindUint8
	case types.Uint16:
		return KindUint16
	case types.Uint32:
		return KindUint32
	case types.Uint64:
		return KindUint64
	}
}
