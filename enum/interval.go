package enum

import (
	"fmt"

	"constenum/utils"
)

// Interval is an inclusive range of raw values admitted for classification.
type Interval[T Integer] struct {
	Low  T
	High T
}

// Closed returns a pointer to the interval [low, high], ready for Spec.Interval.
func Closed[T Integer](low, high T) *Interval[T] {
	return &Interval[T]{Low: low, High: high}
}

// Contains reports whether low <= v <= high.
func (i Interval[T]) Contains(v T) bool {
	return utils.IsInRange(i.Low, v, i.High)
}

// IsEmpty reports whether no value can satisfy the interval.
func (i Interval[T]) IsEmpty() bool {
	return i.Low > i.High
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", i.Low, i.High)
}
