package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	Kind uint8
}

type frameKind uint8

// The interval gates admissibility before any variant is consulted. Define
// never lets a variant outside the interval exist, so the lookup table is
// widened by hand to observe the order.
func TestClassifyRaw_IntervalCheckedFirst(t *testing.T) {
	e, err := Define(Spec[frame, frameKind, uint8]{
		Name:     "frameKind",
		Field:    "Kind",
		Interval: Closed[uint8](1, 9),
		Variants: []Variant[frameKind]{{Name: "Ping", Value: 1}, {Name: "Pong", Value: 2}},
	})
	require.NoError(t, err)

	e.variants = append(e.variants, Variant[frameKind]{Name: "Stray", Value: 40})
	e.byValue[40] = len(e.variants) - 1

	assert.Equal(t, Unknown[frameKind](uint8(40)), e.ClassifyRaw(40))
	assert.Equal(t, Known[uint8](frameKind(2)), e.ClassifyRaw(2))

	e.interval = nil
	assert.Equal(t, Known[uint8](frameKind(40)), e.ClassifyRaw(40))
}

func TestClassification_ZeroValue(t *testing.T) {
	var c Classification[frameKind, uint8]

	assert.True(t, c.IsUnknown())
	assert.Equal(t, uint8(0), c.Raw())
	assert.Equal(t, "Unknown(0)", c.String())
}
