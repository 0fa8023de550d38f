package primitive_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"constenum/primitive"
)

func Example() {
	type Opcode int16
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uint8(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Opcode(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	// Output:
	// KindInt
	// KindUint8
	// KindInt16
	// KindEnum(0)
	// KindEnum(0)
}

func TestKindEnum_Properties(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind   primitive.KindEnum
		name   string
		bits   int
		signed bool
	}{
		{primitive.KindInt8, "int8", 8, true},
		{primitive.KindInt16, "int16", 16, true},
		{primitive.KindInt32, "int32", 32, true},
		{primitive.KindInt64, "int64", 64, true},
		{primitive.KindUint8, "uint8", 8, false},
		{primitive.KindUint16, "uint16", 16, false},
		{primitive.KindUint32, "uint32", 32, false},
		{primitive.KindUint64, "uint64", 64, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.True(t, tt.kind.IsValid())
			assert.Equal(t, tt.name, tt.kind.GoName())
			assert.Equal(t, tt.bits, tt.kind.Bits())
			assert.Equal(t, tt.signed, tt.kind.IsSigned())
			assert.Equal(t, !tt.signed, tt.kind.IsUnsigned())

			parsed, ok := primitive.ParseKind(tt.name)
			assert.True(t, ok)
			assert.Equal(t, tt.kind, parsed)
		})
	}
}

func TestParseKind_Aliases(t *testing.T) {
	k, ok := primitive.ParseKind("byte")
	assert.True(t, ok)
	assert.Equal(t, primitive.KindUint8, k)

	k, ok = primitive.ParseKind("rune")
	assert.True(t, ok)
	assert.Equal(t, primitive.KindInt32, k)

	_, ok = primitive.ParseKind("float64")
	assert.False(t, ok)

	assert.False(t, primitive.KindEnum(0).IsValid())
	assert.Equal(t, "", primitive.KindEnum(0).GoName())
}

func TestKindEnum_BitsPanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { _ = primitive.KindEnum(0).Bits() })
}
