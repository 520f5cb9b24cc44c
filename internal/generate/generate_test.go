package generate

import (
	"bytes"
	"encoding/json"
	"go/ast"
	"go/parser"
	"go/token"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	"github.com/damedic/fhir-model-go/internal/generate/sd"
)

func readBundle(t *testing.T, name string) *sd.Bundle {
	t.Helper()
	data, err := os.ReadFile("testdata/" + name)
	if err != nil {
		t.Fatal(err)
	}
	var b sd.Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		t.Fatal(err)
	}
	return &b
}

func questionnaireResponseTypes(t *testing.T) []ir.ResourceOrType {
	t.Helper()
	types, err := ir.Select(ir.Parse(readBundle(t, "profiles.json")), "QuestionnaireResponse")
	if err != nil {
		t.Fatal(err)
	}
	ir.ResolveBindings(types, readBundle(t, "valuesets.json"))
	return types
}

// parse renders f and parses the result, failing on invalid Go.
func parse(t *testing.T, name string, f *jen.File) *ast.File {
	t.Helper()
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		t.Fatalf("render %s: %v", name, err)
	}
	file, err := parser.ParseFile(token.NewFileSet(), name+".go", buf.Bytes(), parser.ParseComments)
	if err != nil {
		t.Fatalf("parse %s: %v\n%s", name, err, buf.String())
	}
	return file
}

// declared returns the names of the top-level declarations, methods as Type.Method.
func declared(file *ast.File) map[string]bool {
	names := map[string]bool{}
	for _, d := range file.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			name := d.Name.Name
			if d.Recv != nil {
				typ := d.Recv.List[0].Type
				if star, ok := typ.(*ast.StarExpr); ok {
					typ = star.X
				}
				name = typ.(*ast.Ident).Name + "." + name
			}
			names[name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch spec := spec.(type) {
				case *ast.TypeSpec:
					names[spec.Name.Name] = true
				case *ast.ValueSpec:
					for _, n := range spec.Names {
						names[n.Name] = true
					}
				}
			}
		}
	}
	return names
}

func TestFiles(t *testing.T) {
	files := Files("github.com/damedic/fhir-model-go/model/r4", "R4", questionnaireResponseTypes(t), DefaultGenerators()...)

	got := slices.Sorted(maps.Keys(files))
	want := []string{"datatypes", "doc", "questionnaire_response", "registry", "value_sets"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("files mismatch (-want +got):\n%s", diff)
	}

	tests := []struct {
		file string
		want []string
	}{
		{
			file: "questionnaire_response",
			want: []string{
				"QuestionnaireResponse",
				"questionnaireResponseDescriptor",
				"QuestionnaireResponse.ResourceType",
				"QuestionnaireResponse.Status",
				"QuestionnaireResponse.Item",
				"QuestionnaireResponse.ToBuilder",
				"QuestionnaireResponseBuilder",
				"NewQuestionnaireResponseBuilder",
				"QuestionnaireResponseBuilder.AddBasedOn",
				"QuestionnaireResponseBuilder.SetStatus",
				"QuestionnaireResponseBuilder.AddContained",
				"QuestionnaireResponseBuilder.SetField",
				"QuestionnaireResponseBuilder.Build",
				"QuestionnaireResponseItem",
				"QuestionnaireResponseItemBuilder.SetLinkId",
				"QuestionnaireResponseItemAnswer",
				"QuestionnaireResponseItemAnswerValue",
				"questionnaireResponseItemAnswerValueTypes",
				"QuestionnaireResponseItemAnswerBuilder.SetValue",
			},
		},
		{
			file: "datatypes",
			want: []string{
				"Extension",
				"ExtensionValue",
				"extensionValueTypes",
				"Boolean.isExtensionValue",
				"Coding.isExtensionValue",
				"Meta",
				"MetaBuilder.AddTag",
				"Narrative",
				"NarrativeBuilder.SetDiv",
				"Reference",
				"CodingBuilder.Build",
			},
		},
		{
			file: "value_sets",
			want: []string{
				"binding",
				"binding.check",
				"checkBindings",
				"narrativeStatusBinding",
				"NarrativeStatusGenerated",
				"questionnaireResponseStatusBinding",
				"QuestionnaireResponseStatusEnteredInError",
			},
		},
		{
			file: "registry",
			want: []string{"typeEntry", "types", "registry", "Registry", "registry.Descriptor", "registry.NewBuilder", "TypeNames", "ResourceTypes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			names := declared(parse(t, tt.file, files[tt.file]))
			for _, n := range tt.want {
				if !names[n] {
					t.Errorf("%s does not declare %s", tt.file, n)
				}
			}
		})
	}
}

func TestFilesSkipsPrimitives(t *testing.T) {
	files := Files("github.com/damedic/fhir-model-go/model/r4", "R4", questionnaireResponseTypes(t), TypesGenerator{})
	names := declared(parse(t, "datatypes", files["datatypes"]))
	for _, n := range []string{"Boolean", "String", "Code", "Xhtml"} {
		if names[n] {
			t.Errorf("primitive %s must not be generated", n)
		}
	}
	if names["Timing"] || names["Period"] {
		t.Error("unselected types must not be generated")
	}
}

func TestGeneratedChoiceOptions(t *testing.T) {
	files := Files("github.com/damedic/fhir-model-go/model/r4", "R4", questionnaireResponseTypes(t), TypesGenerator{})
	names := declared(parse(t, "datatypes", files["datatypes"]))
	if names["Timing.isExtensionValue"] {
		t.Error("choice option Timing was not selected")
	}
	if names["Duration.isExtensionValue"] {
		t.Error("profile Duration must not be a choice option")
	}
}

func TestGeneratedSystemValueField(t *testing.T) {
	files := Files("github.com/damedic/fhir-model-go/model/r4", "R4", questionnaireResponseTypes(t), TypesGenerator{})
	var buf bytes.Buffer
	if err := files["datatypes"].Render(&buf); err != nil {
		t.Fatal(err)
	}
	want := `model.ValueField("url", func(e *Extension) (any, bool) { return e.url, e.url != "" })`
	if !strings.Contains(buf.String(), want) {
		t.Errorf("datatypes does not contain %s", want)
	}
}

func TestGeneratedDocs(t *testing.T) {
	files := Files("github.com/damedic/fhir-model-go/model/r4", "R4", questionnaireResponseTypes(t), DefaultGenerators()...)

	doc := parse(t, "doc", files["doc"])
	if doc.Name.Name != "r4" || doc.Doc == nil || !strings.HasPrefix(doc.Doc.Text(), "Package r4 holds the FHIR R4 object model.") {
		t.Errorf("package doc = %q", doc.Doc.Text())
	}

	var buf bytes.Buffer
	if err := files["questionnaire_response"].Render(&buf); err != nil {
		t.Fatal(err)
	}
	src := buf.String()
	for _, want := range []string{
		"// Code generated by fhirgen. DO NOT EDIT.",
		`"qrs-1"`,
		`validation.CheckReferenceTypes(r.basedOn, "basedOn", "CarePlan", "ServiceRequest")`,
		`questionnaireResponseStatusBinding.check(&c, r.status, "status")`,
		`validation.RequireNonNull(e.linkId, "linkId")`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("questionnaire_response does not contain %s", want)
		}
	}
	if strings.Contains(src, `"dom-2"`) {
		t.Error("dom-2 belongs to the domain resource base")
	}
}

func TestWriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "r4")
	files := Files("github.com/damedic/fhir-model-go/model/r4", "R4", questionnaireResponseTypes(t), DefaultGenerators()...)
	if err := WriteAll(dir, files); err != nil {
		t.Fatal(err)
	}
	for name := range files {
		if _, err := os.Stat(filepath.Join(dir, name+".go")); err != nil {
			t.Error(err)
		}
	}
}
