package match

import (
	"math"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"Data", "Data", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},  // substitution
		{"a", "ab", 1}, // insertion
		{"ab", "a", 1}, // deletion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},

		// Case-sensitive
		{"Hello", "hello", 1},

		// Field and type names seen in specifications
		{"Data", "Date", 1},
		{"Opcode", "OpCode", 1},
		{"HelloRecord", "HelloRecords", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"abc", "abc", 1.0},
		{"abc", "xyz", 0.0},
		{"Data", "Date", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNormalizedLevenshteinScore(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		minScore float64 // minimum expected score
	}{
		// Exact match after normalization
		{"NotFound", "not_found", 1.0},
		{"op_code", "OpCode", 1.0},

		// Similar names
		{"Payload", "PayLoads", 0.8},

		// Different names
		{"Data", "Length", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := NormalizedLevenshteinScore(tt.a, tt.b)
			if result < tt.minScore {
				t.Errorf("NormalizedLevenshteinScore(%q, %q) = %f, want >= %f",
					tt.a, tt.b, result, tt.minScore)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	fields := []string{"Length", "Date", "Data", "Flags"}

	got := Suggest("data", fields, 3)
	if len(got) == 0 || got[0] != "Data" {
		t.Fatalf("Suggest(data) = %v, want Data first", got)
	}

	got = Suggest("Dat", fields, 1)
	if len(got) != 1 {
		t.Fatalf("Suggest(Dat) returned %d names, want 1", len(got))
	}

	if got := Suggest("Checksum", fields, 3); len(got) != 0 {
		t.Errorf("Suggest(Checksum) = %v, want none", got)
	}

	if got := Suggest("Data", []string{"Data"}, 3); len(got) != 0 {
		t.Errorf("Suggest must skip exact matches, got %v", got)
	}
}
