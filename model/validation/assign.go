package validation

import (
	"fmt"
	"reflect"

	"github.com/damedic/fhir-model-go/model"
)

// Assign stores value into dst if it has type V. A nil value clears dst.
//
// Builders use it to implement model.Builder.SetField.
func Assign[V any](dst *V, field string, value any) error {
	if model.IsNil(value) {
		var zero V
		*dst = zero
		return nil
	}
	v, ok := value.(V)
	if !ok {
		return &InvalidElementTypeError{Field: field, Index: -1, Type: typeName(value), Want: typeName(reflect.TypeFor[V]())}
	}
	*dst = v
	return nil
}

// AssignChoice is Assign for choice fields, additionally checking the closed type set.
func AssignChoice[V model.Element](dst *V, field string, value any, allowed ...string) error {
	var v V
	if err := Assign(&v, field, value); err != nil {
		if e, ok := value.(model.Element); ok {
			return &InvalidChoiceTypeError{Field: field, Type: e.TypeName(), Allowed: allowed}
		}
		return err
	}
	if err := ChoiceElement(v, field, allowed...); err != nil {
		return err
	}
	*dst = v
	return nil
}

// AppendTo appends value, a V or a []V, to dst.
func AppendTo[V any](dst *[]V, field string, value any) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []V:
		*dst = append(*dst, v...)
		return nil
	case V:
		*dst = append(*dst, v)
		return nil
	}
	return &InvalidElementTypeError{Field: field, Index: len(*dst), Type: typeName(value), Want: typeName(reflect.TypeFor[V]())}
}

func typeName(v any) string {
	switch v := v.(type) {
	case model.Element:
		if !model.IsNil(v) {
			return v.TypeName()
		}
	case reflect.Type:
		return v.String()
	}
	return fmt.Sprintf("%T", v)
}
