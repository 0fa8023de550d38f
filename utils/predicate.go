package utils

// Integer is the set of Go integer kinds a classified field may use.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T Integer](min T, value T, max T) bool {
	return min <= value && value <= max
}

// SameSign reports whether a and b are both negative or both non-negative.
// Conversions between integer kinds that keep the bits but flip the sign are
// caught by this check.
func SameSign[A, B Integer](a A, b B) bool {
	return (a < 0) == (b < 0)
}
