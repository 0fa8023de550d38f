// Package diagnostic collects the errors, warnings and notes produced while
// checking enumeration definitions.
//
// Every diagnostic carries a stable code and the enumeration (and variant)
// it concerns, so callers can assert on codes and tools can group output.
package diagnostic
