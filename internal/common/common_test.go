package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "enum", PkgAlias(EnumPkgPath))
	assert.Equal(t, "", PkgAlias(""))
}

func TestIsGenerated(t *testing.T) {
	assert.True(t, IsGenerated("/src/hello/hellos_constenum.go"))
	assert.True(t, IsGenerated("op_codes_constenum.go"))
	assert.False(t, IsGenerated("/src/hello/hello.go"))
	assert.False(t, IsGenerated("/src/hello/_constenum.go/hello.go"))
}

func TestFirstSeen(t *testing.T) {
	seen := FirstSeen[string]{}

	_, dup := seen.Check("V0", 0)
	assert.False(t, dup)

	_, dup = seen.Check("V1", 1)
	assert.False(t, dup)

	prev, dup := seen.Check("V0", 2)
	assert.True(t, dup)
	assert.Equal(t, 0, prev)
}
