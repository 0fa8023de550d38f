package enum

import "reflect"

// Classify classifies the field of c. A declared interval is checked first:
// values outside it are Unknown even when they equal a declared variant.
func (e *Enum[C, E, T]) Classify(c C) Classification[E, T] {
	return e.ClassifyRaw(e.Raw(c))
}

// ClassifyRaw classifies a bare raw value.
func (e *Enum[C, E, T]) ClassifyRaw(raw T) Classification[E, T] {
	if e.interval != nil && !e.interval.Contains(raw) {
		return Unknown[E](raw)
	}

	if i, ok := e.byValue[E(raw)]; ok {
		return Known[T](e.variants[i].Value)
	}

	return Unknown[E](raw)
}

// Raw reads the classified field of c.
func (e *Enum[C, E, T]) Raw(c C) T {
	f := reflect.ValueOf(&c).Elem().FieldByIndex(e.index)
	if e.signed {
		return T(f.Int())
	}

	return T(f.Uint())
}

// Container returns a zero C whose classified field holds the raw value of v.
// Classifying the result yields Known(v) for every declared v.
func (e *Enum[C, E, T]) Container(v E) C {
	var c C

	f := reflect.ValueOf(&c).Elem().FieldByIndex(e.index)
	if e.signed {
		f.SetInt(int64(T(v)))
	} else {
		f.SetUint(uint64(T(v)))
	}

	return c
}

// Constant returns the container of the variant called name.
func (e *Enum[C, E, T]) Constant(name string) (C, bool) {
	v, ok := e.Lookup(name)
	if !ok {
		var zero C
		return zero, false
	}

	return e.Container(v), true
}

// Constants returns the container of every variant in declaration order.
func (e *Enum[C, E, T]) Constants() []C {
	out := make([]C, 0, len(e.variants))
	for _, v := range e.variants {
		out = append(out, e.Container(v.Value))
	}

	return out
}

// Lookup returns the variant called name.
func (e *Enum[C, E, T]) Lookup(name string) (E, bool) {
	i, ok := e.byName[name]
	if !ok {
		var zero E
		return zero, false
	}

	return e.variants[i].Value, true
}

// NameOf returns the declared name of v.
func (e *Enum[C, E, T]) NameOf(v E) (string, bool) {
	i, ok := e.byValue[v]
	if !ok {
		return "", false
	}

	return e.variants[i].Name, true
}

// Valid reports whether v is a declared variant.
func (e *Enum[C, E, T]) Valid(v E) bool {
	_, ok := e.byValue[v]
	return ok
}
