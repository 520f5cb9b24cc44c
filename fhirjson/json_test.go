package fhirjson_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/damedic/fhir-model-go/fhirjson"
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/validation"
	"github.com/damedic/fhir-model-go/testdata"
	"github.com/damedic/fhir-model-go/testdata/assert"
)

func TestRoundtripExamples(t *testing.T) {
	for name, jsonIn := range testdata.GetExamples() {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			r, err := fhirjson.Unmarshal(r4.Registry, jsonIn)
			if err != nil {
				t.Fatalf("Failed to unmarshal JSON: %v", err)
			}

			jsonOut, err := fhirjson.Marshal(r)
			if err != nil {
				t.Fatalf("Failed to marshal JSON: %v", err)
			}
			assert.JSONEqual(t, string(jsonIn), string(jsonOut))

			again, err := fhirjson.Unmarshal(r4.Registry, jsonOut)
			if err != nil {
				t.Fatalf("Failed to unmarshal marshaled JSON: %v", err)
			}
			if !model.Equal(r, again) {
				t.Errorf("resource changed on second roundtrip")
			}
			if r.Hash() != again.Hash() {
				t.Errorf("hash changed on second roundtrip")
			}
		})
	}
}

func mustExtension(t *testing.T, url string, value r4.ExtensionValue) *r4.Extension {
	t.Helper()
	ext, err := r4.NewExtensionBuilder().SetUrl(url).SetValue(value).Build()
	if err != nil {
		t.Fatal(err)
	}
	return ext
}

func TestMarshal(t *testing.T) {
	ext := mustExtension(t, "http://example.org/source", r4.MustCode("registry"))
	extOnly, err := r4.NewStringBuilder().AddExtension(ext).Build()
	if err != nil {
		t.Fatal(err)
	}
	name, err := r4.NewHumanNameBuilder().
		SetFamily(r4.NewString("Chalmers")).
		AddGiven(r4.NewString("Peter"), extOnly).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	patient, err := r4.NewPatientBuilder().
		SetId("p1").
		AddName(name).
		SetGender(r4.AdministrativeGenderFemale).
		SetDeceased(r4.NewBoolean(false)).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	valueAndExt, err := r4.NewStringBuilder().SetValue("x").AddExtension(ext).Build()
	if err != nil {
		t.Fatal(err)
	}
	value, err := r4.ParseDecimal("1.50")
	if err != nil {
		t.Fatal(err)
	}
	quantity, err := r4.NewQuantityBuilder().
		SetValue(value).
		SetUnit(r4.NewString("mg")).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		in   model.Element
		want string
	}{
		{
			name: "primitive",
			in:   r4.NewString("a<b & \"c\""),
			want: `"a<b & \"c\""`,
		},
		{
			name: "boolean",
			in:   r4.NewBoolean(true),
			want: `true`,
		},
		{
			name: "primitive with extension only",
			in:   extOnly,
			want: `{"extension":[{"url":"http://example.org/source","valueCode":"registry"}]}`,
		},
		{
			name: "primitive with value and extension",
			in:   valueAndExt,
			want: `{"extension":[{"url":"http://example.org/source","valueCode":"registry"}],"value":"x"}`,
		},
		{
			name: "decimal keeps scale",
			in:   quantity,
			want: `{"value":1.50,"unit":"mg"}`,
		},
		{
			name: "resource with choice and primitive extensions",
			in:   patient,
			want: `{"resourceType":"Patient","id":"p1",` +
				`"name":[{"family":"Chalmers","given":["Peter",null],"_given":[null,{"extension":[{"url":"http://example.org/source","valueCode":"registry"}]}]}],` +
				`"gender":"female","deceasedBoolean":false}`,
		},
		{
			name: "extension url",
			in:   ext,
			want: `{"url":"http://example.org/source","valueCode":"registry"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fhirjson.Marshal(tt.in)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestEncoderIndent(t *testing.T) {
	var buf bytes.Buffer
	enc := fhirjson.NewEncoder(&buf, fhirjson.WithIndent("", "  "))
	coding, err := r4.NewCodingBuilder().SetCode(r4.MustCode("x")).Build()
	if err != nil {
		t.Fatal(err)
	}
	if err := enc.Encode(coding); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"code\": \"x\"\n}\n"
	if buf.String() != want {
		t.Errorf("Encode() = %q, want %q", buf.String(), want)
	}
}

const minimalServiceRequest = `"resourceType":"ServiceRequest","status":"active","intent":"order","subject":{"reference":"Patient/1"}`

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantIs   error
		wantPath string
	}{
		{
			name:     "unknown choice type",
			in:       `{` + minimalServiceRequest + `,"occurrenceFoo":"2024"}`,
			wantIs:   validation.ErrInvalidChoiceType,
			wantPath: "ServiceRequest",
		},
		{
			name:     "two choice types",
			in:       `{` + minimalServiceRequest + `,"asNeededBoolean":true,"asNeededCodeableConcept":{"text":"pain"}}`,
			wantIs:   validation.ErrInvalidChoiceType,
			wantPath: "ServiceRequest.asNeeded",
		},
		{
			name:     "unknown field",
			in:       `{` + minimalServiceRequest + `,"label":"x"}`,
			wantIs:   validation.ErrUnknownField,
			wantPath: "ServiceRequest",
		},
		{
			name:   "missing required field",
			in:     `{"resourceType":"ServiceRequest","status":"active","subject":{"reference":"Patient/1"}}`,
			wantIs: validation.ErrMissingRequiredField,
		},
		{
			name:     "invalid nested value",
			in:       `{` + minimalServiceRequest + `,"identifier":[{"period":{"start":"not-a-date"}}]}`,
			wantIs:   validation.ErrInvalidValue,
			wantPath: "ServiceRequest.identifier[0].period.start",
		},
		{
			name:     "value of wrong JSON type",
			in:       `{` + minimalServiceRequest + `,"doNotPerform":"yes"}`,
			wantIs:   validation.ErrInvalidElementType,
			wantPath: "ServiceRequest.doNotPerform",
		},
		{
			name:   "wrong reference target",
			in:     `{` + minimalServiceRequest + `,"encounter":{"reference":"Patient/2"}}`,
			wantIs: validation.ErrInvalidReferenceType,
		},
		{
			name:   "code outside required binding",
			in:     `{"resourceType":"ServiceRequest","status":"bogus","intent":"order","subject":{"reference":"Patient/1"}}`,
			wantIs: validation.ErrInvalidCodeValue,
		},
		{
			name:     "missing resourceType",
			in:       `{"status":"active"}`,
			wantIs:   validation.ErrMissingRequiredField,
			wantPath: "Resource",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fhirjson.Unmarshal(r4.Registry, []byte(tt.in))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.wantIs) {
				t.Errorf("error %v does not match %v", err, tt.wantIs)
			}
			var pathErr *fhirjson.Error
			if tt.wantPath == "" {
				return
			}
			if !errors.As(err, &pathErr) {
				t.Fatalf("error %v carries no path", err)
			}
			if pathErr.Path != tt.wantPath {
				t.Errorf("path = %s, want %s", pathErr.Path, tt.wantPath)
			}
		})
	}
}

func TestUnmarshalInvalidChoiceTypeDetails(t *testing.T) {
	_, err := fhirjson.Unmarshal(r4.Registry, []byte(`{`+minimalServiceRequest+`,"occurrenceFoo":"2024"}`))

	var choiceErr *validation.InvalidChoiceTypeError
	if !errors.As(err, &choiceErr) {
		t.Fatalf("expected InvalidChoiceTypeError, got %v", err)
	}
	if choiceErr.Field != "occurrence" || choiceErr.Type != "Foo" {
		t.Errorf("got field %s type %s, want occurrence Foo", choiceErr.Field, choiceErr.Type)
	}
}

func TestUnmarshalLenient(t *testing.T) {
	var logs bytes.Buffer
	logger := zerolog.New(&logs)

	r, err := fhirjson.Unmarshal(r4.Registry,
		[]byte(`{`+minimalServiceRequest+`,"label":"x"}`),
		fhirjson.WithLenient(), fhirjson.WithLogger(logger))
	if err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if r.ResourceType() != "ServiceRequest" {
		t.Errorf("ResourceType() = %s", r.ResourceType())
	}
	if !strings.Contains(logs.String(), `"property":"label"`) {
		t.Errorf("expected warning for skipped property, got %s", logs.String())
	}
}

func TestUnmarshalElement(t *testing.T) {
	tests := []struct {
		name     string
		typeName string
		in       string
		want     string
	}{
		{"primitive", "dateTime", `"2024-01-02"`, `"2024-01-02"`},
		{"integer", "integer", `42`, `42`},
		{
			"primitive with extension", "string",
			`{"extension":[{"url":"http://example.org/source","valueCode":"registry"}]}`,
			`{"extension":[{"url":"http://example.org/source","valueCode":"registry"}]}`,
		},
		{
			"primitive with value and extension", "string",
			`{"extension":[{"url":"http://example.org/source","valueCode":"registry"}],"value":"x"}`,
			`{"extension":[{"url":"http://example.org/source","valueCode":"registry"}],"value":"x"}`,
		},
		{"complex", "Period", `{"start":"2024","end":"2025"}`, `{"start":"2024","end":"2025"}`},
		{"choice", "QuestionnaireResponse.Item.Answer", `{"valueString":"x"}`, `{"valueString":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := fhirjson.UnmarshalElement(r4.Registry, tt.typeName, []byte(tt.in))
			if err != nil {
				t.Fatalf("UnmarshalElement() error = %v", err)
			}
			if e.TypeName() != tt.typeName {
				t.Errorf("TypeName() = %s, want %s", e.TypeName(), tt.typeName)
			}
			got, err := fhirjson.Marshal(e)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.want {
				t.Errorf("Marshal() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestUnmarshalEmptyString(t *testing.T) {
	for _, in := range []string{`{"linkId":""}`, `{"linkId":"1","text":""}`} {
		_, err := fhirjson.UnmarshalElement(r4.Registry, "QuestionnaireResponse.Item", []byte(in))
		if !errors.Is(err, validation.ErrInvalidValue) {
			t.Errorf("UnmarshalElement(%s) error = %v, want %v", in, err, validation.ErrInvalidValue)
		}
	}
}

func TestStringWithExtensionOnly(t *testing.T) {
	ext := mustExtension(t, "http://example.org/source", r4.MustCode("registry"))
	s, err := r4.NewStringBuilder().AddExtension(ext).Build()
	if err != nil {
		t.Fatal(err)
	}
	if got := s.String(); got == "null" || !strings.Contains(got, "http://example.org/source") {
		t.Errorf("String() = %s, want the extension", got)
	}
}

func TestUnmarshalContainedReference(t *testing.T) {
	r, err := fhirjson.Unmarshal(r4.Registry, testdata.GetExample("servicerequest-example.json"))
	if err != nil {
		t.Fatal(err)
	}
	sr := r.(*r4.ServiceRequest)

	contained, ok := r4.ResolveContained(sr, sr.Subject())
	if !ok {
		t.Fatal("contained subject not resolved")
	}
	if contained.ResourceType() != "Patient" {
		t.Errorf("ResourceType() = %s, want Patient", contained.ResourceType())
	}
}
