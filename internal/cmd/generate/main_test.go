package main

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

// writeDefinitions packs the generator test bundles the way definitions.json.zip
// lays them out.
func writeDefinitions(t *testing.T, prefix string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "definitions.json.zip")
	out, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer out.Close()

	w := zip.NewWriter(out)
	for name, src := range map[string]string{
		"profiles-resources.json": "../../generate/testdata/profiles.json",
		"profiles-types.json":     "",
		"valuesets.json":          "../../generate/testdata/valuesets.json",
	} {
		data := []byte(`{"resourceType": "Bundle", "entry": []}`)
		if src != "" {
			if data, err = os.ReadFile(src); err != nil {
				t.Fatal(err)
			}
		}
		f, err := w.Create(prefix + name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := f.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadJSONFromZIP(t *testing.T) {
	for _, prefix := range []string{"", "definitions.json/"} {
		t.Run("prefix "+prefix, func(t *testing.T) {
			b, err := readJSONFromZIP(writeDefinitions(t, prefix), zerolog.Nop())
			if err != nil {
				t.Fatal(err)
			}
			if len(b.resources.Entry) == 0 || len(b.valueSets.Entry) != 3 || len(b.types.Entry) != 0 {
				t.Errorf("bundles = %d resources, %d value sets, %d types",
					len(b.resources.Entry), len(b.valueSets.Entry), len(b.types.Entry))
			}
		})
	}
}

func TestReadJSONFromZIP_Missing(t *testing.T) {
	if _, err := readJSONFromZIP(filepath.Join(t.TempDir(), "missing.zip"), zerolog.Nop()); err == nil {
		t.Fatal("expected error for a missing archive")
	}
}

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "r4")
	cfg := &Config{
		Definitions: writeDefinitions(t, ""),
		Out:         out,
		Package:     "github.com/damedic/fhir-model-go/model/r4",
		Release:     "R4",
		Types:       []string{"QuestionnaireResponse"},
	}
	if err := run(cfg, zerolog.Nop()); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"datatypes.go", "questionnaire_response.go", "value_sets.go", "registry.go", "doc.go"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Error(err)
		}
	}
}

func TestRun_UnknownType(t *testing.T) {
	cfg := &Config{
		Definitions: writeDefinitions(t, ""),
		Out:         t.TempDir(),
		Package:     "github.com/damedic/fhir-model-go/model/r4",
		Release:     "R4",
		Types:       []string{"Observation"},
	}
	if err := run(cfg, zerolog.Nop()); err == nil {
		t.Fatal("expected error for a type missing from the definitions")
	}
}

func TestRootCmd(t *testing.T) {
	t.Setenv("FHIRGEN_DEFINITIONS", writeDefinitions(t, ""))
	out := filepath.Join(t.TempDir(), "r4")

	var logs bytes.Buffer
	cmd := rootCmd()
	cmd.SetErr(&logs)
	cmd.SetArgs([]string{"--out", out, "--types", "QuestionnaireResponse"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v\n%s", err, logs.String())
	}
	if _, err := os.Stat(filepath.Join(out, "questionnaire_response.go")); err != nil {
		t.Error(err)
	}
	if _, err := os.Stat(filepath.Join(out, "patient.go")); !os.IsNotExist(err) {
		t.Errorf("flag --types must replace the default types, stat patient.go: %v", err)
	}
}

func TestRootCmd_MissingDefinitions(t *testing.T) {
	t.Setenv("FHIRGEN_DEFINITIONS", "")
	cmd := rootCmd()
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--out", t.TempDir()})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error when definitions is missing")
	}
}
