package validation_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/validation"
)

func TestRequireNonNull(t *testing.T) {
	var typedNil *r4.Code

	tests := []struct {
		name    string
		value   any
		wantErr bool
	}{
		{"nil", nil, true},
		{"typed nil", typedNil, true},
		{"present", r4.MustCode("active"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.RequireNonNull(tt.value, "status")
			if (err != nil) != tt.wantErr {
				t.Fatalf("RequireNonNull() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			var missing *validation.MissingRequiredFieldError
			if !errors.As(err, &missing) || missing.Field != "status" {
				t.Errorf("got %v, want MissingRequiredFieldError for status", err)
			}
		})
	}
}

func TestRequireNonEmpty(t *testing.T) {
	if err := validation.RequireNonEmpty("", "url"); !errors.Is(err, validation.ErrMissingRequiredField) {
		t.Errorf("RequireNonEmpty(\"\") = %v", err)
	}
	if err := validation.RequireNonEmpty("http://x", "url"); err != nil {
		t.Errorf("RequireNonEmpty() = %v", err)
	}
}

func TestCheckList(t *testing.T) {
	a, b := r4.NewString("a"), r4.NewString("b")

	t.Run("nil member", func(t *testing.T) {
		_, err := validation.CheckList([]*r4.String{a, nil, b}, "given")
		want := &validation.InvalidElementTypeError{Field: "given", Index: 1}
		if diff := cmp.Diff(error(want), err, cmpErrors); diff != "" {
			t.Errorf("error mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("owned copy", func(t *testing.T) {
		in := []*r4.String{a, b}
		out, err := validation.CheckList(in, "given")
		if err != nil {
			t.Fatal(err)
		}
		in[0] = b
		if out[0] != a {
			t.Error("returned list shares its backing array with the input")
		}
		if cap(out) != len(out) {
			t.Errorf("cap = %d, want %d", cap(out), len(out))
		}
	})

	t.Run("empty", func(t *testing.T) {
		out, err := validation.CheckList[*r4.String](nil, "given")
		if err != nil || out == nil || len(out) != 0 {
			t.Errorf("CheckList(nil) = %#v, %v, want an empty list", out, err)
		}
		if _, err := validation.CheckNonEmptyList[*r4.String](nil, "issue"); !errors.Is(err, validation.ErrMissingRequiredField) {
			t.Errorf("CheckNonEmptyList(nil) = %v", err)
		}
	})
}

func TestChoiceElement(t *testing.T) {
	allowed := []string{"boolean", "CodeableConcept"}

	tests := []struct {
		name     string
		value    model.Element
		required bool
		want     error
	}{
		{"absent", nil, false, nil},
		{"allowed", r4.NewBoolean(true), false, nil},
		{"not allowed", r4.NewString("x"), false, &validation.InvalidChoiceTypeError{Field: "asNeeded", Type: "string", Allowed: allowed}},
		{"required absent", nil, true, &validation.MissingRequiredFieldError{Field: "asNeeded"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.required {
				err = validation.RequireChoiceElement(tt.value, "asNeeded", allowed...)
			} else {
				err = validation.ChoiceElement(tt.value, "asNeeded", allowed...)
			}
			if diff := cmp.Diff(tt.want, err, cmpErrors); diff != "" {
				t.Errorf("error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func reference(t *testing.T, literal, typ string) *r4.Reference {
	t.Helper()
	b := r4.NewReferenceBuilder()
	if literal != "" {
		b.SetReference(r4.NewString(literal))
	}
	if typ != "" {
		b.SetType(r4.NewUri(typ))
	}
	if literal == "" && typ == "" {
		b.SetDisplay(r4.NewString("unresolved"))
	}
	ref, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return ref
}

func TestCheckReferenceType(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		typ     string
		allowed []string
		want    error
	}{
		{name: "relative allowed", literal: "Patient/1", allowed: []string{"Patient", "Group"}},
		{name: "versioned", literal: "Patient/1/_history/2", allowed: []string{"Patient"}},
		{name: "absolute allowed", literal: "https://example.org/fhir/Group/g1", allowed: []string{"Patient", "Group"}},
		{name: "contained", literal: "#p1", allowed: []string{"Patient"}},
		{name: "urn", literal: "urn:uuid:b5e3ad2e-0fe4-4d6b-8c0d-3e5e6a0e4a7b", allowed: []string{"Patient"}},
		{name: "logical only", allowed: []string{"Patient"}},
		{name: "unconstrained", literal: "Observation/1"},
		{name: "any resource", literal: "Observation/1", allowed: []string{"Resource"}},
		{name: "not a resource type", literal: "Foo/1", allowed: []string{"Patient"}},
		{name: "profile url as type", literal: "Patient/1", typ: "http://example.org/StructureDefinition/my-patient", allowed: []string{"Patient"}},
		{
			name:    "relative not allowed",
			literal: "Observation/1",
			allowed: []string{"Patient", "Group"},
			want:    &validation.InvalidReferenceTypeError{Field: "subject", Target: "Observation", Allowed: []string{"Patient", "Group"}},
		},
		{
			name:    "absolute not allowed",
			literal: "http://example.org/fhir/Device/d1",
			allowed: []string{"Patient"},
			want:    &validation.InvalidReferenceTypeError{Field: "subject", Target: "Device", Allowed: []string{"Patient"}},
		},
		{
			name:    "type not allowed",
			typ:     "Device",
			allowed: []string{"Patient"},
			want:    &validation.InvalidReferenceTypeError{Field: "subject", Target: "Device", Allowed: []string{"Patient"}},
		},
		{
			name:    "canonical type url",
			typ:     "http://hl7.org/fhir/StructureDefinition/Device",
			allowed: []string{"Patient"},
			want:    &validation.InvalidReferenceTypeError{Field: "subject", Target: "Device", Allowed: []string{"Patient"}},
		},
		{
			name:    "type contradicts literal",
			literal: "Group/1",
			typ:     "Patient",
			allowed: []string{"Patient", "Group"},
			want: &validation.InvalidReferenceTypeError{
				Field:  "subject",
				Target: "Patient",
				Reason: "type Patient does not match reference Group/1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.CheckReferenceType(reference(t, tt.literal, tt.typ), "subject", tt.allowed...)
			if diff := cmp.Diff(tt.want, err, cmpErrors); diff != "" {
				t.Errorf("error mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCheckReferenceTypes(t *testing.T) {
	refs := []*r4.Reference{reference(t, "Practitioner/1", ""), reference(t, "Patient/2", "")}
	err := validation.CheckReferenceTypes(refs, "performer", "Practitioner")
	if !errors.Is(err, validation.ErrInvalidReferenceType) {
		t.Errorf("CheckReferenceTypes() = %v", err)
	}
	if err := validation.CheckReferenceType(nil, "performer", "Practitioner"); err != nil {
		t.Errorf("CheckReferenceType(nil) = %v", err)
	}
}

func TestReferenceTargetType(t *testing.T) {
	tests := []struct {
		literal string
		want    string
		ok      bool
	}{
		{"Patient/123", "Patient", true},
		{"ServiceRequest/a.b-c", "ServiceRequest", true},
		{"http://example.org/fhir/Encounter/e1/_history/3", "Encounter", true},
		{"#contained", "", false},
		{"urn:oid:1.2.3", "", false},
		{"patient/123", "", false},
		{"Patient", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := validation.ReferenceTargetType(tt.literal)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ReferenceTargetType(%q) = %q, %v, want %q, %v", tt.literal, got, ok, tt.want, tt.ok)
		}
	}
}

func coding(t *testing.T, system, code string) *r4.Coding {
	t.Helper()
	b := r4.NewCodingBuilder().SetCode(r4.MustCode(code))
	if system != "" {
		b.SetSystem(r4.NewUri(system))
	}
	c, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestCheckValueSetBinding(t *testing.T) {
	const (
		valueSet = "http://hl7.org/fhir/ValueSet/administrative-gender|4.0.1"
		system   = "http://hl7.org/fhir/administrative-gender"
	)
	codes := []string{"male", "female", "other", "unknown"}

	tests := []struct {
		name  string
		value validation.Coded
		want  error
	}{
		{"absent", nil, nil},
		{"code member", r4.MustCode("female"), nil},
		{"code not a member", r4.MustCode("f"), &validation.InvalidCodeValueError{Field: "gender", Code: "f", ValueSet: valueSet}},
		{"coding of the system", coding(t, system, "male"), nil},
		{"coding of the system not a member", coding(t, system, "m"), &validation.InvalidCodeValueError{Field: "gender", Code: "m", ValueSet: valueSet}},
		{"coding of another system", coding(t, "http://example.org/gender", "m"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.CheckValueSetBinding(tt.value, "gender", valueSet, system, codes...)
			if diff := cmp.Diff(tt.want, err, cmpErrors); diff != "" {
				t.Errorf("error mismatch (-want +got):\n%s", diff)
			}
		})
	}

	err := validation.CheckValueSetBindings([]*r4.Code{r4.MustCode("male"), r4.MustCode("x")}, "gender", valueSet, system, codes...)
	if !errors.Is(err, validation.ErrInvalidCodeValue) {
		t.Errorf("CheckValueSetBindings() = %v", err)
	}
}

func TestAssign(t *testing.T) {
	var dst *r4.Code

	if err := validation.Assign(&dst, "status", r4.MustCode("active")); err != nil || dst == nil {
		t.Fatalf("Assign() = %v", err)
	}
	if err := validation.Assign(&dst, "status", nil); err != nil || dst != nil {
		t.Errorf("Assign(nil) did not clear, err = %v", err)
	}

	err := validation.Assign(&dst, "status", r4.NewString("active"))
	want := &validation.InvalidElementTypeError{Field: "status", Index: -1, Type: "string", Want: "*r4.Code"}
	if diff := cmp.Diff(error(want), err, cmpErrors); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}
}

func TestAssignChoice(t *testing.T) {
	var dst r4.ServiceRequestAsNeeded
	allowed := []string{"boolean", "CodeableConcept"}

	if err := validation.AssignChoice(&dst, "asNeeded", r4.NewBoolean(true), allowed...); err != nil {
		t.Fatalf("AssignChoice() = %v", err)
	}
	err := validation.AssignChoice(&dst, "asNeeded", r4.NewString("x"), allowed...)
	want := &validation.InvalidChoiceTypeError{Field: "asNeeded", Type: "string", Allowed: allowed}
	if diff := cmp.Diff(error(want), err, cmpErrors); diff != "" {
		t.Errorf("error mismatch (-want +got):\n%s", diff)
	}
	if dst.TypeName() != "boolean" {
		t.Errorf("failed assignment changed the field to %s", dst.TypeName())
	}
}

func TestAppendTo(t *testing.T) {
	var dst []*r4.String
	a, b, c := r4.NewString("a"), r4.NewString("b"), r4.NewString("c")

	for _, v := range []any{a, []*r4.String{b, c}, nil} {
		if err := validation.AppendTo(&dst, "given", v); err != nil {
			t.Fatalf("AppendTo(%v) = %v", v, err)
		}
	}
	if diff := cmp.Diff([]*r4.String{a, b, c}, dst, cmpElements); diff != "" {
		t.Errorf("list mismatch (-want +got):\n%s", diff)
	}

	err := validation.AppendTo(&dst, "given", r4.NewBoolean(true))
	if !errors.Is(err, validation.ErrInvalidElementType) {
		t.Errorf("AppendTo(boolean) = %v", err)
	}
	var typeErr *validation.InvalidElementTypeError
	if errors.As(err, &typeErr) && typeErr.Index != 3 {
		t.Errorf("Index = %d, want 3", typeErr.Index)
	}
}

func TestErrors(t *testing.T) {
	build := validation.WrapBuild("ServiceRequest", &validation.MissingRequiredFieldError{Field: "intent"})

	if got, want := build.Error(), `ServiceRequest: missing required field "intent"`; got != want {
		t.Errorf("Error() = %s, want %s", got, want)
	}
	if !errors.Is(build, validation.ErrMissingRequiredField) {
		t.Error("BuildError does not unwrap to its cause")
	}
	if field, ok := validation.FieldOf(build); !ok || field != "intent" {
		t.Errorf("FieldOf() = %s, %v", field, ok)
	}
	if _, ok := validation.FieldOf(&validation.EmptyElementError{Type: "Coding"}); ok {
		t.Error("FieldOf(EmptyElementError) reported a field")
	}
	if validation.WrapBuild("Coding", nil) != nil {
		t.Error("WrapBuild(nil) != nil")
	}

	sentinels := []struct {
		err  error
		want error
	}{
		{&validation.InvalidElementTypeError{}, validation.ErrInvalidElementType},
		{&validation.InvalidChoiceTypeError{}, validation.ErrInvalidChoiceType},
		{&validation.InvalidReferenceTypeError{}, validation.ErrInvalidReferenceType},
		{&validation.InvalidCodeValueError{}, validation.ErrInvalidCodeValue},
		{&validation.EmptyElementError{}, validation.ErrEmptyElement},
		{&validation.InvalidValueError{}, validation.ErrInvalidValue},
		{&validation.UnknownFieldError{}, validation.ErrUnknownField},
	}
	for _, s := range sentinels {
		if !errors.Is(s.err, s.want) {
			t.Errorf("%T does not match %v", s.err, s.want)
		}
		if errors.Is(s.err, validation.ErrMissingRequiredField) {
			t.Errorf("%T matches ErrMissingRequiredField", s.err)
		}
	}
}

var cmpErrors = cmp.Comparer(func(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Error() == b.Error()
})

var cmpElements = cmp.Comparer(func(a, b *r4.String) bool { return model.Equal(a, b) })
