package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/viper"
)

func TestLoad_RequiresDefinitions(t *testing.T) {
	t.Setenv("FHIRGEN_DEFINITIONS", "")
	if _, err := Load(viper.New()); err == nil {
		t.Fatal("expected error when definitions is missing")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("FHIRGEN_DEFINITIONS", "definitions.json.zip")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &Config{
		Definitions: "definitions.json.zip",
		Out:         "model/r4",
		Package:     "github.com/damedic/fhir-model-go/model/r4",
		Release:     "R4",
		Types:       defaultTypes,
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("FHIRGEN_DEFINITIONS", "r4.zip")
	t.Setenv("FHIRGEN_VERBOSE", "true")
	t.Setenv("FHIRGEN_TYPES", "Patient")

	cfg, err := Load(viper.New())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Definitions != "r4.zip" || !cfg.Verbose {
		t.Errorf("config = %+v, want definitions and verbose from the environment", cfg)
	}
	if diff := cmp.Diff([]string{"Patient"}, cfg.Types); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	t.Setenv("FHIRGEN_DEFINITIONS", "")
	t.Setenv("FHIRGEN_OUT", "gen/r4")

	file := filepath.Join(t.TempDir(), "fhirgen.yaml")
	data := "definitions: r4.zip\nout: model/r4\ntypes:\n  - Patient\n"
	if err := os.WriteFile(file, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	v := viper.New()
	v.Set("config", file)
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Definitions != "r4.zip" {
		t.Errorf("definitions = %s, want r4.zip", cfg.Definitions)
	}
	if cfg.Out != "gen/r4" {
		t.Errorf("environment must override the config file, out = %s", cfg.Out)
	}
	if diff := cmp.Diff([]string{"Patient"}, cfg.Types); diff != "" {
		t.Errorf("types mismatch (-want +got):\n%s", diff)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Definitions: "r4.zip",
		Out:         "model/r4",
		Package:     "example.com/model/r4",
		Release:     "R4",
		Types:       []string{"Patient"},
	}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"no out", func(c *Config) { c.Out = "" }, true},
		{"no types", func(c *Config) { c.Types = nil }, true},
		{"package mismatch", func(c *Config) { c.Release = "R5" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			if err := c.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
