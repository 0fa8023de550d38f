package enum

import (
	"fmt"
	"reflect"

	"constenum/primitive"
	"constenum/utils"
)

// Variant binds a name to one value of the enumeration.
type Variant[E Integer] struct {
	Name  string
	Value E
}

// Spec declares a closed enumeration E over the integer field Field of the
// container struct C, whose type has the representation T.
type Spec[C any, E, T Integer] struct {
	// Name of the enumeration, used in errors.
	Name string
	// Field is the name of the classified field of C.
	Field string
	// Interval, when set, rejects raw values outside it before any variant
	// is consulted.
	Interval *Interval[T]
	// Variants in declaration order.
	Variants []Variant[E]
}

// Enum is a validated specification. It is immutable and safe for concurrent
// use.
type Enum[C any, E, T Integer] struct {
	name     string
	field    string
	index    []int
	signed   bool
	interval *Interval[T]
	variants []Variant[E]
	byValue  map[E]int
	byName   map[string]int
}

// Define validates spec and returns the enumeration it describes. The
// returned error joins one *SpecError per problem found.
func Define[C any, E, T Integer](spec Spec[C, E, T]) (*Enum[C, E, T], error) {
	errs := &specErrors{enum: spec.Name}

	if spec.Name == "" {
		errs.add("", ErrNoName, "")
	}

	fieldKind := primitive.FromReflectType(reflect.TypeFor[T]())
	if enumKind := primitive.FromReflectType(reflect.TypeFor[E]()); enumKind != fieldKind {
		errs.add("", ErrRepresentation, "%s is %s, %s is %s",
			reflect.TypeFor[E](), enumKind.GoName(), reflect.TypeFor[T](), fieldKind.GoName())
	}

	index, err := fieldIndex[C, T](spec.Field)
	if err != nil {
		errs.add("", ErrContainer, "%v", err)
	}

	e := &Enum[C, E, T]{
		name:     spec.Name,
		field:    spec.Field,
		index:    index,
		signed:   fieldKind.IsSigned(),
		variants: append([]Variant[E](nil), spec.Variants...),
		byValue:  make(map[E]int, len(spec.Variants)),
		byName:   make(map[string]int, len(spec.Variants)),
	}

	if spec.Interval != nil {
		interval := *spec.Interval
		if interval.IsEmpty() {
			errs.add("", ErrInvalidInterval, "%s", interval)
		}

		e.interval = &interval
	}

	if len(spec.Variants) == 0 {
		errs.add("", ErrNoVariants, "")
	}

	for i, v := range spec.Variants {
		e.checkVariant(errs, i, v)
	}

	if err := errs.err(); err != nil {
		return nil, err
	}

	return e, nil
}

// MustDefine is like Define but panics on an invalid specification. Use it
// for package-level variables so a broken specification stops the program
// before any input is classified.
func MustDefine[C any, E, T Integer](spec Spec[C, E, T]) *Enum[C, E, T] {
	e, err := Define(spec)
	if err != nil {
		panic(err)
	}

	return e
}

func (e *Enum[C, E, T]) checkVariant(errs *specErrors, i int, v Variant[E]) {
	if v.Name == "" {
		errs.add("", ErrEmptyVariantName, "variant #%d (value %v)", i, v.Value)
		return
	}

	if first, ok := e.byName[v.Name]; ok {
		errs.add(v.Name, ErrDuplicateName, "first declared as variant #%d", first)
		return
	}

	e.byName[v.Name] = i

	raw := T(v.Value)
	if E(raw) != v.Value || !utils.SameSign(raw, v.Value) {
		errs.add(v.Name, ErrOutOfDomain, "%v", v.Value)
		return
	}

	if e.interval != nil && !e.interval.Contains(raw) {
		errs.add(v.Name, ErrOutsideInterval, "%v not in %s", v.Value, e.interval)
	}

	if first, ok := e.byValue[v.Value]; ok {
		errs.add(v.Name, ErrDuplicateValue, "%v already bound to %s", v.Value, e.variants[first].Name)
		return
	}

	e.byValue[v.Value] = i
}

// fieldIndex locates the classified field of C and checks it can hold T.
func fieldIndex[C any, T Integer](name string) ([]int, error) {
	ct := reflect.TypeFor[C]()
	if ct.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%s is not a struct", ct)
	}

	sf, ok := ct.FieldByName(name)
	if !ok {
		return nil, fmt.Errorf("%s has no field %q", ct, name)
	}

	if len(sf.Index) != 1 {
		return nil, fmt.Errorf("field %s.%s is promoted from an embedded struct", ct, name)
	}

	if !sf.IsExported() {
		return nil, fmt.Errorf("field %s.%s is not exported", ct, name)
	}

	if got, want := primitive.FromReflectType(sf.Type), primitive.FromReflectType(reflect.TypeFor[T]()); got != want {
		return nil, fmt.Errorf("field %s.%s has type %s, want %s representation", ct, name, sf.Type, want.GoName())
	}

	return sf.Index, nil
}

func (e *Enum[C, E, T]) Name() string { return e.name }

func (e *Enum[C, E, T]) Field() string { return e.field }

// Interval returns the validation interval, if one was declared.
func (e *Enum[C, E, T]) Interval() (Interval[T], bool) {
	if e.interval == nil {
		return Interval[T]{}, false
	}

	return *e.interval, true
}

// Variants returns a copy of the declared variants in declaration order.
func (e *Enum[C, E, T]) Variants() []Variant[E] {
	return append([]Variant[E](nil), e.variants...)
}
