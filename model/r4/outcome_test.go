package r4_test

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model/r4"
)

type issueSummary struct {
	Severity    string
	Code        string
	Diagnostics string
	Expression  []string
}

func summarize(t *testing.T, oo *r4.OperationOutcome) []issueSummary {
	t.Helper()
	var got []issueSummary
	for _, i := range oo.Issue() {
		s := issueSummary{}
		s.Severity, _ = i.Severity().Value()
		s.Code, _ = i.Code().Value()
		if d := i.Diagnostics(); d != nil {
			s.Diagnostics, _ = d.Value()
		}
		for _, e := range i.Expression() {
			v, _ := e.Value()
			s.Expression = append(s.Expression, v)
		}
		got = append(got, s)
	}
	return got
}

func TestOperationOutcomeFromError(t *testing.T) {
	_, missingIntent := r4.NewServiceRequestBuilder().
		SetStatus(r4.RequestStatusActive).
		SetSubject(r4.NewReference("Patient/1")).
		Build()
	_, missingLinkId := r4.NewQuestionnaireResponseItemBuilder().
		SetText(r4.NewString("Weight")).
		Build()
	_, badCode := r4.NewServiceRequestBuilder().
		SetStatus(r4.MustCode("bogus")).
		SetIntent(r4.RequestIntentOrder).
		SetSubject(r4.NewReference("Patient/1")).
		Build()

	tests := []struct {
		name string
		err  error
		want []issueSummary
	}{
		{
			name: "missing required field",
			err:  missingIntent,
			want: []issueSummary{{
				Severity:    "error",
				Code:        "required",
				Diagnostics: `ServiceRequest: missing required field "intent"`,
				Expression:  []string{"ServiceRequest.intent"},
			}},
		},
		{
			name: "wrapped backbone error",
			err:  fmt.Errorf("item 3: %w", missingLinkId),
			want: []issueSummary{{
				Severity:    "error",
				Code:        "required",
				Diagnostics: `item 3: QuestionnaireResponse.Item: missing required field "linkId"`,
				Expression:  []string{"QuestionnaireResponse.Item.linkId"},
			}},
		},
		{
			name: "code outside value set",
			err:  badCode,
			want: []issueSummary{{
				Severity:    "error",
				Code:        "code-invalid",
				Diagnostics: badCode.Error(),
				Expression:  []string{"ServiceRequest.status"},
			}},
		},
		{
			name: "foreign error",
			err:  fmt.Errorf("connection reset"),
			want: []issueSummary{{
				Severity:    "error",
				Code:        "invalid",
				Diagnostics: "connection reset",
			}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			oo, err := r4.OperationOutcomeFromError(tt.err)
			if err != nil {
				t.Fatalf("OperationOutcomeFromError() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, summarize(t, oo)); diff != "" {
				t.Errorf("issues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOperationOutcomeFromNil(t *testing.T) {
	oo, err := r4.OperationOutcomeFromError(nil)
	if oo != nil || err != nil {
		t.Errorf("OperationOutcomeFromError(nil) = %v, %v", oo, err)
	}
}
