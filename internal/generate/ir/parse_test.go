package ir

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/internal/generate/sd"
)

func readBundle(t *testing.T, name string) *sd.Bundle {
	t.Helper()
	data, err := os.ReadFile("../testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	var b sd.Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatal(err)
	}
	return &b
}

func find(t *testing.T, types []ResourceOrType, typeName string) Struct {
	t.Helper()
	for _, rt := range types {
		for _, s := range rt.Structs {
			if s.TypeName == typeName {
				return s
			}
		}
	}
	t.Fatalf("type %s not found", typeName)
	return Struct{}
}

func fieldNames(s Struct) []string {
	var names []string
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

func typeNames(f StructField) []string {
	var names []string
	for _, t := range f.PossibleTypes {
		names = append(names, t.Name)
	}
	return names
}

func field(t *testing.T, s Struct, name string) StructField {
	t.Helper()
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	t.Fatalf("field %s.%s not found", s.TypeName, name)
	return StructField{}
}

func TestParse(t *testing.T) {
	types := Parse(readBundle(t, "profiles.json"))

	var names []string
	for _, rt := range types {
		names = append(names, rt.Name)
	}
	want := []string{
		"boolean", "string", "code", "uri", "instant", "dateTime", "positiveInt", "xhtml",
		"Extension", "Meta", "Narrative", "Coding", "Reference", "Quantity", "Period", "Timing",
		"QuestionnaireResponse",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("parsed types mismatch (-want +got):\n%s", diff)
	}

	qr := find(t, types, "QuestionnaireResponse")
	if qr.Base != DomainResourceBase || qr.Name != "QuestionnaireResponse" {
		t.Errorf("QuestionnaireResponse: base %v, name %s", qr.Base, qr.Name)
	}
	if diff := cmp.Diff([]string{"basedOn", "status", "subject", "author", "item"}, fieldNames(qr)); diff != "" {
		t.Errorf("base fields must be skipped (-want +got):\n%s", diff)
	}
	var keys []string
	for _, c := range qr.Constraints {
		keys = append(keys, c.Key)
	}
	if diff := cmp.Diff([]string{"qrs-1"}, keys); diff != "" {
		t.Errorf("constraint keys mismatch (-want +got):\n%s", diff)
	}
	if got := field(t, qr, "subject").Targets; got != nil {
		t.Errorf("Reference(Resource) targets = %v, want none", got)
	}
	if diff := cmp.Diff([]string{"Patient", "Practitioner"}, field(t, qr, "author").Targets); diff != "" {
		t.Errorf("author targets mismatch (-want +got):\n%s", diff)
	}
	if f := field(t, qr, "status"); f.Optional || f.Multiple || f.Binding == nil || f.Binding.Strength != "required" {
		t.Errorf("status = %+v", f)
	}

	item := find(t, types, "QuestionnaireResponse.Item")
	if item.Name != "QuestionnaireResponseItem" || item.Base != BackboneElementBase || !item.IsBackbone {
		t.Errorf("item = %+v", item)
	}
	if diff := cmp.Diff([]string{"QuestionnaireResponse.Item"}, typeNames(field(t, item, "item"))); diff != "" {
		t.Errorf("content reference mismatch (-want +got):\n%s", diff)
	}

	answer := find(t, types, "QuestionnaireResponse.Item.Answer")
	value := field(t, answer, "value")
	if !value.Polymorph {
		t.Error("value[x] must be a choice")
	}
	if diff := cmp.Diff([]string{"boolean", "string", "Coding", "Reference"}, typeNames(value)); diff != "" {
		t.Errorf("choice options mismatch, profiles must be dropped (-want +got):\n%s", diff)
	}

	timing := find(t, types, "Timing")
	if timing.Base != BackboneElementBase {
		t.Errorf("Timing base = %v", timing.Base)
	}
	repeat := find(t, types, "Timing.Repeat")
	if repeat.Base != ElementBase || !repeat.IsBackbone {
		t.Errorf("Timing.Repeat = %+v", repeat)
	}
	if diff := cmp.Diff([]string{"Period"}, typeNames(field(t, repeat, "bounds"))); diff != "" {
		t.Errorf("bounds options mismatch (-want +got):\n%s", diff)
	}

	url := field(t, find(t, types, "Extension"), "url")
	if !url.PossibleTypes[0].IsSystem || url.Optional {
		t.Errorf("Extension.url = %+v", url)
	}
}

func TestSelect(t *testing.T) {
	all := Parse(readBundle(t, "profiles.json"))

	selected, err := Select(all, "QuestionnaireResponse")
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, rt := range selected {
		names = append(names, rt.Name)
	}
	want := []string{
		"boolean", "string", "code", "uri", "instant", "dateTime", "positiveInt", "xhtml",
		"Extension", "Meta", "Narrative", "Coding", "Reference",
		"QuestionnaireResponse",
	}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("selected types mismatch (-want +got):\n%s", diff)
	}

	value := field(t, find(t, selected, "Extension"), "value")
	if diff := cmp.Diff([]string{"boolean", "string", "code", "Coding", "Reference"}, typeNames(value)); diff != "" {
		t.Errorf("unselected choice options must be dropped (-want +got):\n%s", diff)
	}
	if got := typeNames(field(t, find(t, all, "Extension"), "value")); len(got) != 6 {
		t.Errorf("Select modified its input: %v", got)
	}

	if _, err := Select(all, "Observation"); err == nil {
		t.Error("selecting an unknown type must fail")
	}
}

func TestResolveBindings(t *testing.T) {
	types := Parse(readBundle(t, "profiles.json"))
	ResolveBindings(types, readBundle(t, "valuesets.json"))

	tests := []struct {
		typeName, field string
		wantName        string
		wantSystem      string
		wantCodes       []Code
	}{
		{
			typeName:   "Narrative",
			field:      "status",
			wantName:   "NarrativeStatus",
			wantSystem: "http://hl7.org/fhir/narrative-status",
			wantCodes: []Code{
				{"generated", "Generated"},
				{"extensions", "Extensions"},
				{"additional", "Additional"},
				{"empty", "Empty"},
			},
		},
		{
			typeName:   "QuestionnaireResponse",
			field:      "status",
			wantName:   "QuestionnaireResponseStatus",
			wantSystem: "http://hl7.org/fhir/questionnaire-answers-status",
			wantCodes: []Code{
				{"in-progress", "In Progress"},
				{"completed", "Completed"},
				{"amended", "Amended"},
				{"entered-in-error", "Entered in Error"},
				{"stopped", "Stopped"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.typeName, func(t *testing.T) {
			b := field(t, find(t, types, tt.typeName), tt.field).Binding
			if !b.Resolved() {
				t.Fatalf("binding %+v not resolved", b)
			}
			if b.Name != tt.wantName || b.System != tt.wantSystem {
				t.Errorf("binding = %s %s", b.Name, b.System)
			}
			if diff := cmp.Diff(tt.wantCodes, b.Codes); diff != "" {
				t.Errorf("codes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGoNames(t *testing.T) {
	tests := []struct {
		field    string
		goName   string
		accessor string
	}{
		{"linkId", "linkId", "LinkId"},
		{"type", "typ", "Type"},
		{"hash", "dataHash", "DataHash"},
		{"func", "funcValue", "Func"},
	}
	for _, tt := range tests {
		f := StructField{Name: tt.field}
		if got := f.GoName(); got != tt.goName {
			t.Errorf("GoName(%s) = %s, want %s", tt.field, got, tt.goName)
		}
		if got := f.Accessor(); got != tt.accessor {
			t.Errorf("Accessor(%s) = %s, want %s", tt.field, got, tt.accessor)
		}
	}

	if got := typeNameOf("QuestionnaireResponse.item.answer"); got != "QuestionnaireResponse.Item.Answer" {
		t.Errorf("typeNameOf() = %s", got)
	}
	if got := goNameOf("QuestionnaireResponse.Item.Answer"); got != "QuestionnaireResponseItemAnswer" {
		t.Errorf("goNameOf() = %s", got)
	}
}
