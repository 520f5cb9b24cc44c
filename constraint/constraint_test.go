package constraint_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/damedic/fhir-model-go/constraint"
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
)

func serviceRequest(t *testing.T, configure func(b *r4.ServiceRequestBuilder)) *r4.ServiceRequest {
	t.Helper()
	b := r4.NewServiceRequestBuilder().
		SetStatus(r4.RequestStatusActive).
		SetIntent(r4.RequestIntentOrder).
		SetSubject(r4.NewReference("Patient/1"))
	if configure != nil {
		configure(b)
	}
	sr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return sr
}

func concept(t *testing.T, text string) *r4.CodeableConcept {
	t.Helper()
	c, err := r4.NewCodeableConceptBuilder().SetText(r4.NewString(text)).Build()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func issuesByKey(issues []constraint.Issue, key string) []constraint.Issue {
	var found []constraint.Issue
	for _, i := range issues {
		if i.Key == key {
			found = append(found, i)
		}
	}
	return found
}

func TestValidateResourceInvariant(t *testing.T) {
	tests := []struct {
		name      string
		configure func(b *r4.ServiceRequestBuilder)
		want      []constraint.Issue
	}{
		{
			name: "orderDetail without code",
			configure: func(b *r4.ServiceRequestBuilder) {
				b.AddOrderDetail(concept(t, "fasting"))
			},
			want: []constraint.Issue{{
				Key:        "prr-1",
				Severity:   "error",
				Human:      "orderDetail SHALL only be present if code is present",
				Expression: "orderDetail.empty() or code.exists()",
				Path:       "ServiceRequest",
			}},
		},
		{
			name: "orderDetail with code",
			configure: func(b *r4.ServiceRequestBuilder) {
				b.SetCode(concept(t, "Lipid panel")).AddOrderDetail(concept(t, "fasting"))
			},
		},
		{
			name: "no orderDetail",
		},
	}

	eval := constraint.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues, err := eval.Validate(serviceRequest(t, tt.configure))
			if err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, issuesByKey(issues, "prr-1")); diff != "" {
				t.Errorf("issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateNestedInvariant(t *testing.T) {
	value, err := r4.ParseDecimal("5")
	if err != nil {
		t.Fatal(err)
	}
	quantity, err := r4.NewQuantityBuilder().
		SetValue(value).
		SetCode(r4.MustCode("mg")).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	sr := serviceRequest(t, func(b *r4.ServiceRequestBuilder) { b.SetQuantity(quantity) })

	issues, err := constraint.New().Validate(sr)
	if err != nil {
		t.Fatal(err)
	}
	got := issuesByKey(issues, "qty-3")
	if len(got) != 1 {
		t.Fatalf("expected one qty-3 issue, got %v", issues)
	}
	if got[0].Path != "ServiceRequest.quantity" {
		t.Errorf("Path = %s, want ServiceRequest.quantity", got[0].Path)
	}
}

func TestValidateExtraConstraints(t *testing.T) {
	var logs bytes.Buffer
	eval := constraint.New(constraint.WithLogger(zerolog.New(&logs)))

	issues, err := eval.Validate(serviceRequest(t, nil),
		model.Constraint{Key: "draft-only", Severity: "error", Human: "must be draft", Expression: "status = 'draft'"},
		model.Constraint{Key: "broken", Severity: "error", Human: "does not compile", Expression: "status.where(("},
	)
	if err != nil {
		t.Fatal(err)
	}

	if got := issuesByKey(issues, "draft-only"); len(got) != 1 || got[0].Severity != "error" || got[0].Path != "ServiceRequest" {
		t.Errorf("draft-only issues = %v", got)
	}
	broken := issuesByKey(issues, "broken")
	if len(broken) != 1 || broken[0].Severity != "warning" {
		t.Errorf("broken issues = %v", broken)
	}
	if !bytes.Contains(logs.Bytes(), []byte(`"key":"broken"`)) {
		t.Errorf("expected compile failure to be logged, got %s", logs.String())
	}
}

func TestValidateNil(t *testing.T) {
	issues, err := constraint.New().Validate(nil)
	if err != nil || issues != nil {
		t.Errorf("Validate(nil) = %v, %v", issues, err)
	}
}
