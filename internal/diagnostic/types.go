package diagnostic

import (
	"errors"
	"fmt"
	"strings"

	"constenum/internal/common"
)

// Diagnostics holds everything found while checking a specification file.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// Diagnostic represents a single diagnostic message.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity DiagnosticSeverity
	// Code is a unique identifier for this type of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// Enum names the enumeration this relates to (if any).
	Enum string
	// Variant names the variant this relates to (if any).
	Variant string
	// Suggestions are potential fixes or alternatives.
	Suggestions []string
}

// DiagnosticSeverity represents the severity level of a diagnostic.
type DiagnosticSeverity int

const (
	DiagnosticInfo DiagnosticSeverity = iota
	DiagnosticWarning
	DiagnosticError
)

// String returns a human-readable severity name.
func (s DiagnosticSeverity) String() string {
	switch s {
	case DiagnosticInfo:
		return "info"
	case DiagnosticWarning:
		return "warning"
	case DiagnosticError:
		return "error"
	default:
		return common.UnknownStr
	}
}

func (d *Diagnostics) add(sev DiagnosticSeverity, code, message, enum, variant string) *Diagnostic {
	diag := Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  message,
		Enum:     enum,
		Variant:  variant,
	}

	var list *[]Diagnostic

	switch sev {
	case DiagnosticError:
		list = &d.Errors
	case DiagnosticWarning:
		list = &d.Warnings
	default:
		list = &d.Infos
	}

	*list = append(*list, diag)

	return &(*list)[len(*list)-1]
}

// AddError adds an error diagnostic. The returned pointer stays valid until
// the next error is added and may be used to attach suggestions.
func (d *Diagnostics) AddError(code, message, enum, variant string) *Diagnostic {
	return d.add(DiagnosticError, code, message, enum, variant)
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, enum, variant string) *Diagnostic {
	return d.add(DiagnosticWarning, code, message, enum, variant)
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, enum, variant string) *Diagnostic {
	return d.add(DiagnosticInfo, code, message, enum, variant)
}

// Suggest attaches suggestions to the diagnostic.
func (d *Diagnostic) Suggest(s ...string) {
	d.Suggestions = append(d.Suggestions, s...)
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// HasCode reports whether any diagnostic carries code.
func (d *Diagnostics) HasCode(code string) bool {
	for _, list := range [][]Diagnostic{d.Errors, d.Warnings, d.Infos} {
		for _, diag := range list {
			if diag.Code == code {
				return true
			}
		}
	}

	return false
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.Enum != "" {
		prefix = append(prefix, "["+d.Enum+"]")
	}

	if d.Variant != "" {
		prefix = append(prefix, d.Variant)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(d.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(d.Suggestions, ", ") + "?)"
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}
