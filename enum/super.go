package enum

import "reflect"

// Super reconstructs variants into S, a container that carries the
// classified field of an Enum under the same name and representation,
// typically a larger record the classified container is a view of.
type Super[S any, E Integer] struct {
	index  []int
	signed bool
	lookup func(string) (E, bool)
}

// DeriveSuper derives the supertype reconstructor of def. It needs nothing
// beyond def: the field name and representation come from the definition.
func DeriveSuper[S, C any, E, T Integer](def *Enum[C, E, T]) (*Super[S, E], error) {
	index, err := fieldIndex[S, T](def.field)
	if err != nil {
		return nil, &SpecError{Enum: def.name, Detail: err.Error(), Err: ErrContainer}
	}

	return &Super[S, E]{
		index:  index,
		signed: def.signed,
		lookup: def.Lookup,
	}, nil
}

// MustDeriveSuper is like DeriveSuper but panics if S does not fit.
func MustDeriveSuper[S, C any, E, T Integer](def *Enum[C, E, T]) *Super[S, E] {
	s, err := DeriveSuper[S](def)
	if err != nil {
		panic(err)
	}

	return s
}

// Container returns a zero S whose field holds the raw value of v.
func (s *Super[S, E]) Container(v E) S {
	var out S

	f := reflect.ValueOf(&out).Elem().FieldByIndex(s.index)
	if s.signed {
		f.SetInt(int64(v))
	} else {
		f.SetUint(uint64(v))
	}

	return out
}

// Constant returns the S of the variant called name.
func (s *Super[S, E]) Constant(name string) (S, bool) {
	v, ok := s.lookup(name)
	if !ok {
		var zero S
		return zero, false
	}

	return s.Container(v), true
}
