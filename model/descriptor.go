package model

import (
	"fmt"
	"reflect"
)

// TypeKind classifies a type in the model.
type TypeKind int

const (
	PrimitiveKind TypeKind = iota
	ComplexKind
	BackboneKind
	ResourceKind
)

func (k TypeKind) String() string {
	switch k {
	case PrimitiveKind:
		return "primitive"
	case ComplexKind:
		return "complex"
	case BackboneKind:
		return "backbone"
	case ResourceKind:
		return "resource"
	}
	return fmt.Sprintf("TypeKind(%d)", int(k))
}

// FieldKind classifies a declared field.
type FieldKind int

const (
	// FieldValue is a scalar Go value: element ids, extension urls and primitive values.
	FieldValue FieldKind = iota
	// FieldElement holds elements of a single declared type.
	FieldElement
	// FieldChoice holds an element of one type out of a closed set.
	FieldChoice
	// FieldResource holds nested resources, e.g. contained.
	FieldResource
)

// Constraint is an invariant declared on a type but not enforced on construction.
//
// The expression is FHIRPath, evaluated against the resource root.
type Constraint struct {
	Key        string
	Severity   string
	Human      string
	Expression string
}

// FieldDescriptor declares one field of a type.
type FieldDescriptor struct {
	Name     string
	Kind     FieldKind
	Repeated bool
	Required bool
	// Types holds the declared type name, or the closed set of a choice field.
	Types []string
	// Targets is the allow-list of reference target types, empty if unconstrained.
	Targets []string

	value func(Element) (any, bool)
	one   func(Element) Element
	many  func(Element) []Element
}

// Require marks the field as required.
func (f FieldDescriptor) Require() FieldDescriptor {
	f.Required = true
	return f
}

// WithTargets sets the reference target allow-list.
func (f FieldDescriptor) WithTargets(targets ...string) FieldDescriptor {
	f.Targets = targets
	return f
}

// Value returns the scalar of a FieldValue field.
func (f FieldDescriptor) Value(e Element) (any, bool) {
	if f.value == nil {
		return nil, false
	}
	return f.value(e)
}

// Element returns the child of a non-repeated field, nil if absent.
func (f FieldDescriptor) Element(e Element) Element {
	if f.one == nil {
		return nil
	}
	return f.one(e)
}

// Elements returns the children of the field in order.
//
// Non-repeated fields yield at most one element.
func (f FieldDescriptor) Elements(e Element) []Element {
	switch {
	case f.many != nil:
		return f.many(e)
	case f.one != nil:
		if c := f.one(e); c != nil {
			return []Element{c}
		}
	}
	return nil
}

// IsEmpty reports whether the field holds nothing on e.
func (f FieldDescriptor) IsEmpty(e Element) bool {
	if f.Kind == FieldValue {
		_, ok := f.Value(e)
		return !ok
	}
	return len(f.Elements(e)) == 0
}

// ValueField declares a scalar field.
func ValueField[T Element](name string, get func(T) (any, bool)) FieldDescriptor {
	return FieldDescriptor{
		Name: name,
		Kind: FieldValue,
		value: func(e Element) (any, bool) {
			return get(e.(T))
		},
	}
}

// ElementField declares a non-repeated field of a single type.
func ElementField[T Element, V Element](name, typeName string, get func(T) V) FieldDescriptor {
	return FieldDescriptor{
		Name:  name,
		Kind:  FieldElement,
		Types: []string{typeName},
		one:   oneOf(get),
	}
}

// ListField declares a repeated field of a single type.
func ListField[T Element, V Element](name, typeName string, get func(T) []V) FieldDescriptor {
	return FieldDescriptor{
		Name:     name,
		Kind:     FieldElement,
		Repeated: true,
		Types:    []string{typeName},
		many:     manyOf(get),
	}
}

// ChoiceField declares a field holding one type out of types.
func ChoiceField[T Element, V Element](name string, get func(T) V, types ...string) FieldDescriptor {
	return FieldDescriptor{
		Name:  name,
		Kind:  FieldChoice,
		Types: types,
		one:   oneOf(get),
	}
}

// ResourceField declares a field holding a nested resource of any type.
func ResourceField[T Element](name string, get func(T) Resource) FieldDescriptor {
	return FieldDescriptor{
		Name:  name,
		Kind:  FieldResource,
		Types: []string{"Resource"},
		one:   oneOf(get),
	}
}

// ResourceListField declares a repeated field of nested resources.
func ResourceListField[T Element](name string, get func(T) []Resource) FieldDescriptor {
	return FieldDescriptor{
		Name:     name,
		Kind:     FieldResource,
		Repeated: true,
		Types:    []string{"Resource"},
		many:     manyOf(get),
	}
}

func oneOf[T Element, V Element](get func(T) V) func(Element) Element {
	return func(e Element) Element {
		v := get(e.(T))
		if IsNil(v) {
			return nil
		}
		return v
	}
}

func manyOf[T Element, V Element](get func(T) []V) func(Element) []Element {
	return func(e Element) []Element {
		vs := get(e.(T))
		if len(vs) == 0 {
			return nil
		}
		out := make([]Element, 0, len(vs))
		for _, v := range vs {
			if !IsNil(v) {
				out = append(out, v)
			}
		}
		return out
	}
}

// Descriptor is the declarative field table of a type.
//
// Fields are kept in declaration order, which is also the traversal order.
type Descriptor struct {
	Name        string
	Kind        TypeKind
	Fields      []FieldDescriptor
	Constraints []Constraint

	index map[string]int
}

// NewDescriptor creates a descriptor. It panics on duplicate field names.
func NewDescriptor(name string, kind TypeKind, fields ...FieldDescriptor) *Descriptor {
	d := &Descriptor{
		Name:   name,
		Kind:   kind,
		Fields: fields,
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if _, ok := d.index[f.Name]; ok {
			panic(fmt.Sprintf("duplicate field %s.%s", name, f.Name))
		}
		d.index[f.Name] = i
	}
	return d
}

// WithConstraints attaches declared invariants and returns d.
func (d *Descriptor) WithConstraints(constraints ...Constraint) *Descriptor {
	d.Constraints = append(d.Constraints, constraints...)
	return d
}

// Field looks up a field by name.
func (d *Descriptor) Field(name string) (FieldDescriptor, bool) {
	i, ok := d.index[name]
	if !ok {
		return FieldDescriptor{}, false
	}
	return d.Fields[i], true
}

// IsNil reports whether v is nil or a typed nil pointer, interface, map or slice.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return rv.IsNil()
	}
	return false
}
