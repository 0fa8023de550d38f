package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constenum/primitive"
)

func TestParseValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind    primitive.KindEnum
		text    string
		want    string
		wantErr error
	}{
		{primitive.KindUint8, "0", "0", nil},
		{primitive.KindUint8, "255", "255", nil},
		{primitive.KindUint8, "0x16", "22", nil},
		{primitive.KindUint8, "0b1101", "13", nil},
		{primitive.KindUint8, " 12 ", "12", nil},
		{primitive.KindUint8, "256", "", primitive.ErrOutOfDomain},
		{primitive.KindUint8, "-1", "", primitive.ErrOutOfDomain},
		{primitive.KindUint8, "abc", "", primitive.ErrInvalidLiteral},
		{primitive.KindUint8, "", "", primitive.ErrInvalidLiteral},
		{primitive.KindInt8, "-128", "-128", nil},
		{primitive.KindInt8, "127", "127", nil},
		{primitive.KindInt8, "128", "", primitive.ErrOutOfDomain},
		{primitive.KindInt8, "-0x10", "-16", nil},
		{primitive.KindInt64, "-9223372036854775808", "-9223372036854775808", nil},
		{primitive.KindUint64, "18446744073709551615", "18446744073709551615", nil},
		{primitive.KindUint64, "1_000", "1000", nil},
	}

	for _, tt := range tests {
		t.Run(tt.kind.GoName()+"/"+tt.text, func(t *testing.T) {
			t.Parallel()

			v, err := primitive.ParseValue(tt.kind, tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, v.String())
			assert.Equal(t, tt.kind, v.Kind())
		})
	}
}

func TestParseValue_InvalidKind(t *testing.T) {
	_, err := primitive.ParseValue(0, "1")
	require.Error(t, err)
}

func TestMinMaxValue(t *testing.T) {
	assert.Equal(t, "0", primitive.MinValue(primitive.KindUint8).String())
	assert.Equal(t, "255", primitive.MaxValue(primitive.KindUint8).String())
	assert.Equal(t, "-128", primitive.MinValue(primitive.KindInt8).String())
	assert.Equal(t, "127", primitive.MaxValue(primitive.KindInt8).String())
	assert.Equal(t, "-32768", primitive.MinValue(primitive.KindInt16).String())
	assert.Equal(t, "9223372036854775807", primitive.MaxValue(primitive.KindInt64).String())
	assert.Equal(t, "18446744073709551615", primitive.MaxValue(primitive.KindUint64).String())
}

func TestValue_Compare(t *testing.T) {
	minus := primitive.IntValue(primitive.KindInt8, -3)
	plus := primitive.IntValue(primitive.KindInt8, 4)

	assert.Equal(t, -1, minus.Compare(plus))
	assert.Equal(t, 1, plus.Compare(minus))
	assert.Equal(t, 0, plus.Compare(primitive.IntValue(primitive.KindInt8, 4)))
	assert.True(t, minus.Less(plus))

	big := primitive.UintValue(primitive.KindUint64, 1<<63)
	small := primitive.UintValue(primitive.KindUint64, 1)
	assert.True(t, small.Less(big), "unsigned values compare without sign")
}
