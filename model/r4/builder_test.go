package r4_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/validation"
)

func concept(t *testing.T, text string) *r4.CodeableConcept {
	t.Helper()
	c, err := r4.NewCodeableConceptBuilder().SetText(r4.NewString(text)).Build()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func minimalServiceRequest() *r4.ServiceRequestBuilder {
	return r4.NewServiceRequestBuilder().
		SetStatus(r4.RequestStatusActive).
		SetIntent(r4.RequestIntentOrder).
		SetSubject(r4.NewReference("Patient/1"))
}

func TestServiceRequest(t *testing.T) {
	sr, err := minimalServiceRequest().Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if status, _ := sr.Status().Value(); status != "active" {
		t.Errorf("Status() = %s", status)
	}
	if ref := sr.Subject().LiteralReference(); ref != "Patient/1" {
		t.Errorf("Subject() = %s", ref)
	}
	if !sr.HasChildren() {
		t.Error("HasChildren() = false")
	}
	if _, ok := sr.ResourceId(); ok {
		t.Error("ResourceId() reported an id")
	}
	if c := sr.Category(); c == nil || len(c) != 0 {
		t.Errorf("Category() = %#v, want an empty list", c)
	}

	other, err := minimalServiceRequest().Build()
	if err != nil {
		t.Fatal(err)
	}
	if !sr.Equal(other) || sr.Hash() != other.Hash() {
		t.Error("identically built service requests differ")
	}
	if !strings.Contains(sr.String(), `"resourceType": "ServiceRequest"`) {
		t.Errorf("String() = %s", sr.String())
	}
}

func TestServiceRequestBuildErrors(t *testing.T) {
	tests := []struct {
		name      string
		configure func(b *r4.ServiceRequestBuilder)
		wantIs    error
		wantField string
	}{
		{
			name:      "missing status",
			configure: func(b *r4.ServiceRequestBuilder) { b.SetStatus(nil) },
			wantIs:    validation.ErrMissingRequiredField,
			wantField: "status",
		},
		{
			name:      "missing intent",
			configure: func(b *r4.ServiceRequestBuilder) { b.SetIntent(nil) },
			wantIs:    validation.ErrMissingRequiredField,
			wantField: "intent",
		},
		{
			name:      "missing subject",
			configure: func(b *r4.ServiceRequestBuilder) { b.SetSubject(nil) },
			wantIs:    validation.ErrMissingRequiredField,
			wantField: "subject",
		},
		{
			name:      "subject of wrong type",
			configure: func(b *r4.ServiceRequestBuilder) { b.SetSubject(r4.NewReference("Observation/1")) },
			wantIs:    validation.ErrInvalidReferenceType,
			wantField: "subject",
		},
		{
			name:      "status outside value set",
			configure: func(b *r4.ServiceRequestBuilder) { b.SetStatus(r4.MustCode("done")) },
			wantIs:    validation.ErrInvalidCodeValue,
			wantField: "status",
		},
		{
			name:      "nil list member",
			configure: func(b *r4.ServiceRequestBuilder) { b.AddCategory(nil) },
			wantIs:    validation.ErrInvalidElementType,
			wantField: "category",
		},
		{
			name:      "invalid id",
			configure: func(b *r4.ServiceRequestBuilder) { b.SetId("not valid!") },
			wantIs:    validation.ErrInvalidValue,
			wantField: "id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := minimalServiceRequest()
			tt.configure(b)
			sr, err := b.Build()
			if err == nil {
				t.Fatalf("Build() = %v, want error", sr)
			}
			if sr != nil {
				t.Error("Build() returned an element together with an error")
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("error %v does not match %v", err, tt.wantIs)
			}
			if field, _ := validation.FieldOf(err); field != tt.wantField {
				t.Errorf("field = %s, want %s", field, tt.wantField)
			}
			var buildErr *validation.BuildError
			if !errors.As(err, &buildErr) || buildErr.Type != "ServiceRequest" {
				t.Errorf("error %v is not a BuildError of ServiceRequest", err)
			}
		})
	}
}

func TestImmutability(t *testing.T) {
	a, b := concept(t, "a"), concept(t, "b")

	builder := minimalServiceRequest().AddCategory(a)
	sr, err := builder.Build()
	if err != nil {
		t.Fatal(err)
	}
	hash := sr.Hash()

	t.Run("builder changes after Build", func(t *testing.T) {
		builder.AddCategory(b)
		if got := len(sr.Category()); got != 1 {
			t.Errorf("len(Category()) = %d, want 1", got)
		}
	})

	t.Run("getter result changes", func(t *testing.T) {
		cats := sr.Category()
		cats[0] = b
		if sr.Category()[0] != a {
			t.Error("modifying the getter result changed the element")
		}
	})

	t.Run("ToBuilder", func(t *testing.T) {
		changed, err := sr.ToBuilder().AddCategory(b).SetPriority(r4.RequestPriorityUrgent).Build()
		if err != nil {
			t.Fatal(err)
		}
		if len(sr.Category()) != 1 || sr.Priority() != nil {
			t.Error("ToBuilder changes leaked into the original")
		}
		if len(changed.Category()) != 2 {
			t.Errorf("len(Category()) = %d, want 2", len(changed.Category()))
		}

		same, err := sr.ToBuilder().Build()
		if err != nil {
			t.Fatal(err)
		}
		if !same.Equal(sr) {
			t.Error("ToBuilder().Build() differs from the original")
		}
	})

	if sr.Hash() != hash {
		t.Error("hash changed")
	}
}

func TestConcurrentReads(t *testing.T) {
	sr, err := minimalServiceRequest().AddCategory(concept(t, "a")).Build()
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	hashes := make([]uint64, 8)
	for i := range hashes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hashes[i] = sr.Hash()
			_ = sr.String()
		}()
	}
	wg.Wait()

	for _, h := range hashes {
		if h != hashes[0] {
			t.Fatalf("concurrent hashes differ: %v", hashes)
		}
	}
}

func TestEmptyElements(t *testing.T) {
	ext, err := r4.NewExtensionBuilder().
		SetUrl("http://example.org/fhir/StructureDefinition/data-absent").
		SetValue(r4.MustCode("unknown")).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		build   func() (model.Element, error)
		wantErr bool
	}{
		{"empty coding", r4.NewCodingBuilder().BuildElement, true},
		{"coding with id only", r4.NewCodingBuilder().SetId("c1").BuildElement, true},
		{"coding with extension", r4.NewCodingBuilder().AddExtension(ext).BuildElement, false},
		{"empty string", r4.NewStringBuilder().BuildElement, true},
		{"string with extension only", r4.NewStringBuilder().AddExtension(ext).BuildElement, false},
		{"empty backbone", r4.NewQuestionnaireResponseItemAnswerBuilder().BuildElement, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := tt.build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Build() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, validation.ErrEmptyElement) {
				t.Errorf("error %v is not an EmptyElementError", err)
			}
			if !tt.wantErr && !e.HasChildren() {
				t.Error("HasChildren() = false")
			}
		})
	}
}

func TestExtension(t *testing.T) {
	_, err := r4.NewExtensionBuilder().SetValue(r4.NewString("x")).Build()
	var missing *validation.MissingRequiredFieldError
	if !errors.As(err, &missing) || missing.Field != "url" {
		t.Errorf("Build() error = %v, want missing url", err)
	}
}

func TestChoiceFields(t *testing.T) {
	period, err := r4.NewPeriodBuilder().SetStart(r4.MustDateTime("2024-01-01")).Build()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("typed setter", func(t *testing.T) {
		sr, err := minimalServiceRequest().SetOccurrence(period).Build()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := sr.Occurrence().(*r4.Period); !ok {
			t.Errorf("Occurrence() = %T, want *r4.Period", sr.Occurrence())
		}
		f, _ := sr.Descriptor().Field("occurrence")
		if diff := cmp.Diff([]string{"dateTime", "Period", "Timing"}, f.Types); diff != "" {
			t.Errorf("occurrence types mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("generic setter", func(t *testing.T) {
		b := minimalServiceRequest()
		err := b.SetField("occurrence", r4.NewString("tomorrow"))
		var choiceErr *validation.InvalidChoiceTypeError
		if !errors.As(err, &choiceErr) || choiceErr.Type != "string" || choiceErr.Field != "occurrence" {
			t.Errorf("SetField() error = %v, want InvalidChoiceTypeError", err)
		}
		if err := b.SetField("occurrence", period); err != nil {
			t.Fatalf("SetField() error = %v", err)
		}
		sr, err := b.Build()
		if err != nil {
			t.Fatal(err)
		}
		if !model.Equal(sr.Occurrence(), period) {
			t.Error("occurrence not set")
		}
	})

	t.Run("answer value reference", func(t *testing.T) {
		answer, err := r4.NewQuestionnaireResponseItemAnswerBuilder().
			SetValue(r4.NewReference("Practitioner/f201")).
			Build()
		if err != nil {
			t.Fatal(err)
		}
		ref, ok := answer.Value().(*r4.Reference)
		if !ok || ref.LiteralReference() != "Practitioner/f201" {
			t.Errorf("Value() = %v", answer.Value())
		}
	})

	t.Run("choice reference targets", func(t *testing.T) {
		_, err := r4.NewAnnotationBuilder().
			SetAuthor(r4.NewReference("Observation/1")).
			SetText(r4.NewMarkdown("note")).
			Build()
		if !errors.Is(err, validation.ErrInvalidReferenceType) {
			t.Errorf("Build() error = %v, want invalid reference type", err)
		}
		_, err = r4.NewAnnotationBuilder().
			SetAuthor(r4.NewString("Dr. Careful")).
			SetText(r4.NewMarkdown("note")).
			Build()
		if err != nil {
			t.Errorf("Build() error = %v", err)
		}
	})
}

func TestSetField(t *testing.T) {
	tests := []struct {
		name   string
		field  string
		value  any
		wantIs error
	}{
		{"element", "status", r4.RequestStatusDraft, nil},
		{"list element", "category", concept(t, "x"), nil},
		{"list slice", "category", []*r4.CodeableConcept{concept(t, "x")}, nil},
		{"resource id", "id", "sr-1", nil},
		{"wrong element type", "status", r4.NewString("active"), validation.ErrInvalidElementType},
		{"wrong list type", "category", r4.NewString("x"), validation.ErrInvalidElementType},
		{"wrong id type", "id", 42, validation.ErrInvalidElementType},
		{"unknown", "label", "x", validation.ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := minimalServiceRequest().SetField(tt.field, tt.value)
			if tt.wantIs == nil {
				if err != nil {
					t.Errorf("SetField() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("SetField() error = %v, want %v", err, tt.wantIs)
			}
		})
	}
}

func TestContained(t *testing.T) {
	patient, err := r4.NewPatientBuilder().SetId("p1").SetActive(r4.NewBoolean(true)).Build()
	if err != nil {
		t.Fatal(err)
	}
	sr, err := minimalServiceRequest().
		AddContained(patient).
		SetSubject(r4.NewReference("#p1")).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	got, ok := r4.ResolveContained(sr, sr.Subject())
	if !ok || !model.Equal(got, patient) {
		t.Errorf("ResolveContained() = %v, %v", got, ok)
	}
	if _, ok := r4.ResolveContained(sr, r4.NewReference("#other")); ok {
		t.Error("resolved unknown contained id")
	}
	if _, ok := r4.ResolveContained(sr, r4.NewReference("Patient/p1")); ok {
		t.Error("resolved a non-local reference")
	}
}

func TestRegistry(t *testing.T) {
	for _, name := range r4.TypeNames() {
		desc, ok := r4.Registry.Descriptor(name)
		if !ok || desc.Name != name {
			t.Errorf("Descriptor(%s) = %v, %v", name, desc, ok)
			continue
		}
		if _, ok := r4.Registry.NewBuilder(name); !ok {
			t.Errorf("NewBuilder(%s) missing", name)
		}
		for _, f := range desc.Fields {
			if f.Kind == model.FieldValue {
				continue
			}
			for _, typ := range f.Types {
				if _, ok := r4.Registry.Descriptor(typ); !ok && typ != "Resource" {
					t.Errorf("%s.%s refers to unknown type %s", name, f.Name, typ)
				}
			}
		}
	}

	if _, ok := r4.Registry.NewBuilder("Observation"); ok {
		t.Error("NewBuilder(Observation) should not exist")
	}
	want := []string{"OperationOutcome", "Patient", "QuestionnaireResponse", "ServiceRequest"}
	if diff := cmp.Diff(want, r4.ResourceTypes()); diff != "" {
		t.Errorf("ResourceTypes() mismatch (-want +got):\n%s", diff)
	}
}
