package spec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
package: hello
enums:
  - name: Hellos
    container: Hello
    field: Data
    type: uint8
    range: [0, 22]
    super: HelloRecord
    doc: "  Hellos classifies Hello.Data.  "
    variants:
      V0: 0
      V1: 1
      V2: 0x0c
      V3: 13
      V4: 22
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, f)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "hello", f.Package)
	require.Len(t, f.Enums, 1)

	d := f.Enums[0]
	assert.Equal(t, "Hellos", d.Name)
	assert.Equal(t, "Hello", d.Container)
	assert.Equal(t, "Data", d.Field)
	assert.Equal(t, "uint8", d.Type)
	assert.Equal(t, "HelloRecord", d.Super)
	assert.Equal(t, "Hellos classifies Hello.Data.", d.Doc)
	require.NotNil(t, d.Range)
	assert.Equal(t, Range{Low: "0", High: "22"}, *d.Range)

	require.Len(t, d.Variants, 5)
	assert.Equal(t, VariantDef{Name: "V0", Value: "0"}, d.Variants[0])
	// literals keep their spelling
	assert.Equal(t, VariantDef{Name: "V2", Value: "0x0c"}, d.Variants[2])
	assert.Equal(t, "V4", d.Variants[4].Name)
}

func TestParse_VariantNotations(t *testing.T) {
	tests := []struct {
		name     string
		variants string
		want     Variants
	}{
		{
			name:     "mapping",
			variants: "{Nop: 0, Pop: -1}",
			want:     Variants{{Name: "Nop", Value: "0"}, {Name: "Pop", Value: "-1"}},
		},
		{
			name:     "objects",
			variants: "[{name: Nop, value: 0, doc: does nothing}, {name: Pop, value: -1}]",
			want:     Variants{{Name: "Nop", Value: "0", Doc: "does nothing"}, {Name: "Pop", Value: "-1"}},
		},
		{
			name:     "single key maps",
			variants: "[{Nop: 0}, {Pop: -1}]",
			want:     Variants{{Name: "Nop", Value: "0"}, {Name: "Pop", Value: "-1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := "enums:\n  - name: Ops\n    container: Instr\n    field: Op\n    variants: " + tt.variants + "\n"

			f, err := Parse([]byte(yaml))
			require.NoError(t, err)
			require.Len(t, f.Enums, 1)
			assert.Equal(t, tt.want, f.Enums[0].Variants)
			assert.Equal(t, CurrentVersion, f.Version)
		})
	}
}

func TestParse_KeepsDuplicateVariantNames(t *testing.T) {
	yaml := `
enums:
  - name: Hellos
    container: Hello
    field: Data
    variants:
      V0: 0
      V0: 1
`

	f, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, f.Enums[0].Variants, 2)
	assert.Equal(t, "V0", f.Enums[0].Variants[1].Name)
}

func TestParse_RangeNotations(t *testing.T) {
	tests := []struct {
		name  string
		rng   string
		want  Range
		isErr bool
	}{
		{name: "sequence", rng: "[-8, 8]", want: Range{Low: "-8", High: "8"}},
		{name: "inclusive text", rng: `"0..=22"`, want: Range{Low: "0", High: "22"}},
		{name: "negative text", rng: "-8..=8", want: Range{Low: "-8", High: "8"}},
		{name: "half-open text", rng: "0..22", isErr: true},
		{name: "missing bound", rng: `"0..="`, isErr: true},
		{name: "mapping", rng: "{low: 1, high: 0x10}", want: Range{Low: "1", High: "0x10"}},
		{name: "three bounds", rng: "[1, 2, 3]", isErr: true},
		{name: "missing high", rng: "{low: 1}", isErr: true},
		{name: "no dots", rng: "7", isErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yaml := "enums:\n  - name: E\n    container: C\n    field: F\n    range: " + tt.rng + "\n    variants: {A: 1}\n"

			f, err := Parse([]byte(yaml))
			if tt.isErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, f.Enums[0].Range)
			assert.Equal(t, tt.want, *f.Enums[0].Range)
		})
	}
}

func TestParseRange(t *testing.T) {
	r, err := ParseRange(" 0 ..= 22 ")
	require.NoError(t, err)
	assert.Equal(t, Range{Low: "0", High: "22"}, r)

	for _, text := range []string{"0..22", "0...22", "..=22", "0..=", "22"} {
		_, err := ParseRange(text)
		assert.ErrorIs(t, err, ErrRangeSyntax, text)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "unknown key", yaml: "enums:\n  - name: E\n    kontainer: C\n"},
		{name: "variants scalar", yaml: "enums:\n  - name: E\n    variants: 3\n"},
		{name: "value is mapping", yaml: "enums:\n  - name: E\n    variants: {A: {b: 1}}\n"},
		{name: "not yaml", yaml: "enums: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	f := &File{
		Version: CurrentVersion,
		Enums: []EnumDef{{
			Name:      "Hellos",
			Container: "Hello",
			Field:     "Data",
			Range:     &Range{Low: "0", High: "22"},
			Variants:  Variants{{Name: "V0", Value: "0"}, {Name: "V1", Value: "0x01"}},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "range: [0, 22]")
	assert.Contains(t, string(data), "V1: 0x01")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestMarshal_ObjectFormWithDocs(t *testing.T) {
	f := &File{
		Version: CurrentVersion,
		Enums: []EnumDef{{
			Name:      "Ops",
			Container: "Instr",
			Field:     "Op",
			Variants:  Variants{{Name: "Nop", Value: "0", Doc: "does nothing"}},
		}},
	}

	data, err := Marshal(f)
	require.NoError(t, err)
	assert.Contains(t, string(data), "doc: does nothing")

	back, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, f, back)
}

func TestLoadFile_WriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hellos.yaml")

	f := &File{
		Version: CurrentVersion,
		Enums: []EnumDef{{
			Name: "Hellos", Container: "Hello", Field: "Data",
			Variants: Variants{{Name: "V0", Value: "0"}},
		}},
	}
	require.NoError(t, WriteFile(f, path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
