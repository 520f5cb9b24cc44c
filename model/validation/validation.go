// Package validation holds the structural rules every type of the model is built with.
//
// Builders call these functions from Build, so an element that exists is
// always structurally valid. Cross-field invariants are not checked here,
// see package constraint.
package validation

import (
	"slices"

	"github.com/damedic/fhir-model-go/model"
)

// RequireNonNull fails if a required field is absent.
func RequireNonNull(value any, field string) error {
	if model.IsNil(value) {
		return &MissingRequiredFieldError{Field: field}
	}
	return nil
}

// RequireNonEmpty fails if a required scalar string is empty.
func RequireNonEmpty(value string, field string) error {
	if value == "" {
		return &MissingRequiredFieldError{Field: field}
	}
	return nil
}

// CheckList fails if a member of list is nil and returns an owned copy.
//
// A nil list is normalized to an empty one.
func CheckList[T any](list []T, field string) ([]T, error) {
	for i, v := range list {
		if model.IsNil(v) {
			return nil, &InvalidElementTypeError{Field: field, Index: i}
		}
	}
	if list == nil {
		return []T{}, nil
	}
	return slices.Clip(slices.Clone(list)), nil
}

// CheckNonEmptyList is CheckList for fields with a minimum cardinality of 1.
func CheckNonEmptyList[T any](list []T, field string) ([]T, error) {
	if len(list) == 0 {
		return nil, &MissingRequiredFieldError{Field: field}
	}
	return CheckList(list, field)
}

// ChoiceElement fails if value is present and its type is not one of allowed.
func ChoiceElement(value model.Element, field string, allowed ...string) error {
	if model.IsNil(value) {
		return nil
	}
	if !slices.Contains(allowed, value.TypeName()) {
		return &InvalidChoiceTypeError{Field: field, Type: value.TypeName(), Allowed: allowed}
	}
	return nil
}

// RequireChoiceElement is ChoiceElement for required choice fields.
func RequireChoiceElement(value model.Element, field string, allowed ...string) error {
	if model.IsNil(value) {
		return &MissingRequiredFieldError{Field: field}
	}
	return ChoiceElement(value, field, allowed...)
}

// CodeValue is a code, optionally qualified by its code system.
type CodeValue struct {
	System string
	Code   string
}

// Coded is implemented by elements carrying codes: code, Coding and CodeableConcept.
type Coded interface {
	model.Element
	CodeValues() []CodeValue
}

// CheckValueSetBinding enforces a required binding to a value set drawn from a single code system.
//
// Codes of other code systems are not checked. Unqualified codes (the code
// primitive) are always checked.
func CheckValueSetBinding(value Coded, field, valueSet, system string, codes ...string) error {
	if model.IsNil(value) {
		return nil
	}
	for _, cv := range value.CodeValues() {
		if cv.Code == "" || (cv.System != "" && cv.System != system) {
			continue
		}
		if !slices.Contains(codes, cv.Code) {
			return &InvalidCodeValueError{Field: field, Code: cv.Code, ValueSet: valueSet}
		}
	}
	return nil
}

// CheckValueSetBindings is CheckValueSetBinding for repeated fields.
func CheckValueSetBindings[T Coded](values []T, field, valueSet, system string, codes ...string) error {
	for _, v := range values {
		if err := CheckValueSetBinding(v, field, valueSet, system, codes...); err != nil {
			return err
		}
	}
	return nil
}

// RequireChildren fails if e has no child element.
func RequireChildren(e model.Element) error {
	if !e.HasChildren() {
		return &EmptyElementError{Type: e.TypeName()}
	}
	return nil
}

// RequireValueOrChildren fails if e has neither a value nor a child element.
func RequireValueOrChildren(e model.Element, hasValue bool) error {
	if !hasValue && !e.HasChildren() {
		return &EmptyElementError{Type: e.TypeName()}
	}
	return nil
}
