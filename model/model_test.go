package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
)

type recorder struct {
	events   []string
	skip     string
	prune    string
	failOn   string
	failWith error
}

func (r *recorder) PreVisit(e model.Element) bool {
	return e.TypeName() != r.skip
}

func (r *recorder) VisitStart(name string, index int, e model.Element) error {
	r.events = append(r.events, fmt.Sprintf("start %s[%d] %s", name, index, e.TypeName()))
	if name == r.failOn {
		return r.failWith
	}
	return nil
}

func (r *recorder) Visit(name string, _ int, _ model.Element) (bool, error) {
	return name != r.prune, nil
}

func (r *recorder) VisitValue(name string, value any) error {
	r.events = append(r.events, fmt.Sprintf("value %s=%v", name, value))
	return nil
}

func (r *recorder) VisitEnd(name string, index int, _ model.Element) error {
	r.events = append(r.events, fmt.Sprintf("end %s[%d]", name, index))
	return nil
}

func (r *recorder) PostVisit(model.Element) {}

func concept(t *testing.T, text string) *r4.CodeableConcept {
	t.Helper()
	c, err := r4.NewCodeableConceptBuilder().SetText(r4.NewString(text)).Build()
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func newServiceRequest(t *testing.T, categories ...string) *r4.ServiceRequest {
	t.Helper()
	b := r4.NewServiceRequestBuilder().
		SetId("sr1").
		SetStatus(r4.RequestStatusActive).
		SetIntent(r4.RequestIntentOrder).
		SetSubject(r4.NewReference("Patient/1"))
	for _, c := range categories {
		b.AddCategory(concept(t, c))
	}
	sr, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return sr
}

func TestWalk(t *testing.T) {
	sr := newServiceRequest(t, "a", "b")

	tests := []struct {
		name string
		rec  *recorder
		want []string
	}{
		{
			name: "declaration order",
			rec:  &recorder{},
			want: []string{
				"start ServiceRequest[-1] ServiceRequest",
				"value id=sr1",
				"start status[-1] code",
				"value value=active",
				"end status[-1]",
				"start intent[-1] code",
				"value value=order",
				"end intent[-1]",
				"start category[0] CodeableConcept",
				"start text[-1] string",
				"value value=a",
				"end text[-1]",
				"end category[0]",
				"start category[1] CodeableConcept",
				"start text[-1] string",
				"value value=b",
				"end text[-1]",
				"end category[1]",
				"start subject[-1] Reference",
				"start reference[-1] string",
				"value value=Patient/1",
				"end reference[-1]",
				"end subject[-1]",
				"end ServiceRequest[-1]",
			},
		},
		{
			name: "PreVisit skips element",
			rec:  &recorder{skip: "CodeableConcept"},
			want: []string{
				"start ServiceRequest[-1] ServiceRequest",
				"value id=sr1",
				"start status[-1] code",
				"value value=active",
				"end status[-1]",
				"start intent[-1] code",
				"value value=order",
				"end intent[-1]",
				"start subject[-1] Reference",
				"start reference[-1] string",
				"value value=Patient/1",
				"end reference[-1]",
				"end subject[-1]",
				"end ServiceRequest[-1]",
			},
		},
		{
			name: "Visit prunes children",
			rec:  &recorder{prune: "ServiceRequest"},
			want: []string{
				"start ServiceRequest[-1] ServiceRequest",
				"end ServiceRequest[-1]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := model.Walk(tt.rec, sr.TypeName(), -1, sr); err != nil {
				t.Fatalf("Walk() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, tt.rec.events); diff != "" {
				t.Errorf("events mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// topLevel records the names of the root's fields as Walk visits them.
type topLevel struct {
	model.BaseVisitor
	depth int
	names []string
}

func (v *topLevel) VisitStart(name string, _ int, _ model.Element) error {
	if v.depth == 1 {
		v.names = append(v.names, name)
	}
	v.depth++
	return nil
}

func (v *topLevel) VisitValue(name string, _ any) error {
	if v.depth == 1 {
		v.names = append(v.names, name)
	}
	return nil
}

func (v *topLevel) VisitEnd(string, int, model.Element) error {
	v.depth--
	return nil
}

func TestWalkFollowsDescriptor(t *testing.T) {
	sr, err := newServiceRequest(t, "a", "b").ToBuilder().
		SetOccurrence(r4.MustDateTime("2024-05-01")).
		AddOrderDetail(concept(t, "fasting")).
		Build()
	if err != nil {
		t.Fatal(err)
	}

	var want []string
	for _, f := range sr.Descriptor().Fields {
		if f.Kind == model.FieldValue {
			if _, ok := f.Value(sr); ok {
				want = append(want, f.Name)
			}
			continue
		}
		for range f.Elements(sr) {
			want = append(want, f.Name)
		}
	}

	v := &topLevel{}
	if err := model.Walk(v, sr.TypeName(), -1, sr); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, v.names); diff != "" {
		t.Errorf("visited fields mismatch (-descriptor +walk):\n%s", diff)
	}
}

func TestWalkAbort(t *testing.T) {
	stop := errors.New("stop")
	rec := &recorder{failOn: "intent", failWith: stop}

	err := model.Walk(rec, "ServiceRequest", -1, newServiceRequest(t))
	if err != stop {
		t.Fatalf("Walk() error = %v, want %v", err, stop)
	}
	if last := rec.events[len(rec.events)-1]; last != "start intent[-1] code" {
		t.Errorf("last event = %s", last)
	}
}

func TestWalkNil(t *testing.T) {
	rec := &recorder{}
	var sr *r4.ServiceRequest
	if err := model.Walk(rec, "ServiceRequest", -1, sr); err != nil {
		t.Fatal(err)
	}
	if len(rec.events) != 0 {
		t.Errorf("expected no events, got %v", rec.events)
	}
}

func rebuild(t *testing.T, sr *r4.ServiceRequest) *r4.ServiceRequest {
	t.Helper()
	rebuilt, err := sr.ToBuilder().Build()
	if err != nil {
		t.Fatal(err)
	}
	return rebuilt
}

func TestEqualAndHash(t *testing.T) {
	a := newServiceRequest(t, "a", "b")

	tests := []struct {
		name  string
		other model.Element
		equal bool
	}{
		{"same content", newServiceRequest(t, "a", "b"), true},
		{"rebuilt", rebuild(t, a), true},
		{"list order", newServiceRequest(t, "b", "a"), false},
		{"list length", newServiceRequest(t, "a"), false},
		{"different type", concept(t, "a"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.Equal(a, tt.other); got != tt.equal {
				t.Errorf("Equal() = %v, want %v", got, tt.equal)
			}
			if tt.equal && a.Hash() != tt.other.Hash() {
				t.Errorf("equal elements with different hash %d != %d", a.Hash(), tt.other.Hash())
			}
		})
	}
}

func TestEqualNil(t *testing.T) {
	var a, b *r4.ServiceRequest
	if !model.Equal(a, b) {
		t.Error("two nil elements must be equal")
	}
	if !model.Equal(nil, nil) {
		t.Error("nil must equal nil")
	}
}

func TestValueEqual(t *testing.T) {
	tests := []struct {
		a, b any
		want bool
	}{
		{"x", "x", true},
		{"1", int32(1), false},
		{int32(1), int32(1), true},
		{uint32(1), int32(1), false},
		{true, true, true},
	}
	for _, tt := range tests {
		if got := model.ValueEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("ValueEqual(%#v, %#v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestHashCache(t *testing.T) {
	var c model.HashCache
	calls := 0
	compute := func() uint64 {
		calls++
		return 0
	}

	if got := c.Get(compute); got != 1 {
		t.Errorf("Get() = %d, want zero hash mapped to 1", got)
	}
	c.Get(compute)
	if calls != 1 {
		t.Errorf("compute called %d times, want 1", calls)
	}
}

func TestHasChildren(t *testing.T) {
	withoutChildren, err := r4.NewCodingBuilder().SetId("c1").AddExtension().Build()
	if err == nil {
		t.Fatalf("expected coding with only an id to fail, got %v", withoutChildren)
	}

	sr := newServiceRequest(t)
	if !sr.HasChildren() {
		t.Error("service request with status must have children")
	}
}
