package match

import (
	"testing"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"NotFound", "notfound"},
		{"not_found", "notfound"},
		{"not-found", "notfound"},
		{"notFound", "notfound"},
		{"NOTFOUND", "notfound"},
		{"HTTPVersion", "httpversion"},
		{"push pop", "pushpop"},
		{"", ""},
		{"V", "v"},
		{"v0", "v0"},
		{"op_code-ID", "opcodeid"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := NormalizeIdent(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExportedIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"V0", "V0"},
		{"v0", "V0"},
		{"not_found", "NotFound"},
		{"not-found", "NotFound"},
		{"notFound", "NotFound"},
		{"HTTP-error", "HTTPError"},
		{"push pop", "PushPop"},
		{"", ""},
		{"1st", ""},
		{"-", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := ExportedIdent(tt.input)
			if result != tt.expected {
				t.Errorf("ExportedIdent(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestIsIdent(t *testing.T) {
	for _, s := range []string{"Hellos", "_x", "v0"} {
		if !IsIdent(s) {
			t.Errorf("IsIdent(%q) = false, want true", s)
		}
	}

	for _, s := range []string{"", "0v", "func", "a-b"} {
		if IsIdent(s) {
			t.Errorf("IsIdent(%q) = true, want false", s)
		}
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"NotFound", []string{"Not", "Found"}},
		{"badRequest", []string{"bad", "Request"}},
		{"HTTPVersion", []string{"HTTP", "Version"}},
		{"readTCPFrame", []string{"read", "TCP", "Frame"}},
		{"op_code", []string{"op", "code"}},
		{"NOP", []string{"NOP"}},
		{"push", []string{"push"}},
		{"", nil},
		{"V", []string{"V"}},
		{"V0", []string{"V0"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := tokenizeCamelCase(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("tokenizeCamelCase(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestTokenizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"NotFound", []string{"not", "found"}},
		{"HTTPVersion", []string{"http", "version"}},
		{"op_code", []string{"op", "code"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			result := TokenizeIdent(tt.input)
			if !stringSliceEqual(result, tt.expected) {
				t.Errorf("TokenizeIdent(%q) = %v, want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
