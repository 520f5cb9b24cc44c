package validation

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels matched by the error types of this package via errors.Is.
var (
	ErrMissingRequiredField = errors.New("missing required field")
	ErrInvalidElementType   = errors.New("invalid element type")
	ErrInvalidChoiceType    = errors.New("invalid choice type")
	ErrInvalidReferenceType = errors.New("invalid reference type")
	ErrInvalidCodeValue     = errors.New("invalid code value")
	ErrEmptyElement         = errors.New("empty element")
	ErrInvalidValue         = errors.New("invalid value")
	ErrUnknownField         = errors.New("unknown field")
)

// MissingRequiredFieldError reports an absent required field.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

func (e *MissingRequiredFieldError) Is(target error) bool { return target == ErrMissingRequiredField }
func (e *MissingRequiredFieldError) FieldName() string { return e.Field }

// InvalidElementTypeError reports a nil list member or a value of the wrong type.
type InvalidElementTypeError struct {
	Field string
	// Index of the offending list member, -1 for non-repeated fields.
	Index int
	// Type is the type received, empty for nil members.
	Type string
	// Want is the declared type.
	Want string
}

func (e *InvalidElementTypeError) Error() string {
	pos := fmt.Sprintf("field %q", e.Field)
	if e.Index >= 0 {
		pos = fmt.Sprintf("field %q at index %d", e.Field, e.Index)
	}
	if e.Type == "" {
		return fmt.Sprintf("invalid element type in %s: element is nil", pos)
	}
	return fmt.Sprintf("invalid element type in %s: got %s, want %s", pos, e.Type, e.Want)
}

func (e *InvalidElementTypeError) Is(target error) bool { return target == ErrInvalidElementType }
func (e *InvalidElementTypeError) FieldName() string { return e.Field }

// InvalidChoiceTypeError reports a choice value outside the declared type set.
type InvalidChoiceTypeError struct {
	Field   string
	Type    string
	Allowed []string
}

func (e *InvalidChoiceTypeError) Error() string {
	return fmt.Sprintf("invalid type %s for choice field %q: must be one of [%s]",
		e.Type, e.Field, strings.Join(e.Allowed, ", "))
}

func (e *InvalidChoiceTypeError) Is(target error) bool { return target == ErrInvalidChoiceType }
func (e *InvalidChoiceTypeError) FieldName() string { return e.Field }

// InvalidReferenceTypeError reports a reference whose target type is not allowed.
type InvalidReferenceTypeError struct {
	Field   string
	Target  string
	Allowed []string
	// Reason is set when the reference is inconsistent in itself,
	// e.g. Reference.type disagrees with the literal reference.
	Reason string
}

func (e *InvalidReferenceTypeError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid reference in field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid reference target type %s for field %q: must be one of [%s]",
		e.Target, e.Field, strings.Join(e.Allowed, ", "))
}

func (e *InvalidReferenceTypeError) Is(target error) bool { return target == ErrInvalidReferenceType }
func (e *InvalidReferenceTypeError) FieldName() string { return e.Field }

// InvalidCodeValueError reports a code outside a required value set binding.
type InvalidCodeValueError struct {
	Field    string
	Code     string
	ValueSet string
}

func (e *InvalidCodeValueError) Error() string {
	return fmt.Sprintf("code %q in field %q is not a member of value set %s", e.Code, e.Field, e.ValueSet)
}

func (e *InvalidCodeValueError) Is(target error) bool { return target == ErrInvalidCodeValue }
func (e *InvalidCodeValueError) FieldName() string { return e.Field }

// EmptyElementError reports an element without value and without children.
type EmptyElementError struct {
	Type string
}

func (e *EmptyElementError) Error() string {
	return fmt.Sprintf("element of type %s must have a value or at least one child element", e.Type)
}

func (e *EmptyElementError) Is(target error) bool { return target == ErrEmptyElement }
func (e *EmptyElementError) FieldName() string { return "" }

// InvalidValueError reports a primitive value violating its lexical space.
type InvalidValueError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for field %q: %s", e.Value, e.Field, e.Reason)
}

func (e *InvalidValueError) Is(target error) bool { return target == ErrInvalidValue }
func (e *InvalidValueError) FieldName() string { return e.Field }

// UnknownFieldError reports a field that is not declared on a type.
type UnknownFieldError struct {
	Type  string
	Field string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q on type %s", e.Field, e.Type)
}

func (e *UnknownFieldError) Is(target error) bool { return target == ErrUnknownField }
func (e *UnknownFieldError) FieldName() string { return e.Field }

// BuildError names the type whose build failed.
type BuildError struct {
	Type string
	Err  error
}

func (e *BuildError) Error() string { return e.Type + ": " + e.Err.Error() }
func (e *BuildError) Unwrap() error { return e.Err }

// WrapBuild wraps a non-nil err in a BuildError for typeName.
func WrapBuild(typeName string, err error) error {
	if err == nil {
		return nil
	}
	return &BuildError{Type: typeName, Err: err}
}

// FieldOf returns the field name an error of this package refers to.
func FieldOf(err error) (string, bool) {
	var f interface{ FieldName() string }
	if errors.As(err, &f) && f.FieldName() != "" {
		return f.FieldName(), true
	}
	return "", false
}
