package main

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/viper"
)

// Config is the generator configuration, read from flags, FHIRGEN_* environment
// variables and an optional config file, in that order of precedence.
type Config struct {
	Definitions string   `mapstructure:"definitions"`
	Out         string   `mapstructure:"out"`
	Package     string   `mapstructure:"package"`
	Release     string   `mapstructure:"release"`
	Types       []string `mapstructure:"types"`
	Verbose     bool     `mapstructure:"verbose"`
}

// types the hand-maintained model package is generated from
var defaultTypes = []string{
	"ServiceRequest",
	"QuestionnaireResponse",
	"Patient",
	"OperationOutcome",
	"Annotation",
	"Attachment",
	"CodeableConcept",
	"HumanName",
	"Identifier",
	"Period",
	"Quantity",
	"Range",
	"Ratio",
	"Timing",
}

// Load reads the configuration from v and validates it.
func Load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("FHIRGEN")
	v.AutomaticEnv()

	v.SetDefault("out", "model/r4")
	v.SetDefault("package", "github.com/damedic/fhir-model-go/model/r4")
	v.SetDefault("release", "R4")
	v.SetDefault("types", defaultTypes)
	// keys without a default are unknown to Unmarshal unless bound
	for _, key := range []string{"definitions", "verbose"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration names an input, an output and a
// package matching the release.
func (c *Config) Validate() error {
	if c.Definitions == "" {
		return errors.New("definitions is required")
	}
	if c.Out == "" {
		return errors.New("out is required")
	}
	if len(c.Types) == 0 {
		return errors.New("types must name at least one type")
	}
	if pkg := path.Base(c.Package); pkg != strings.ToLower(c.Release) {
		return fmt.Errorf("package %s does not match release %s", c.Package, c.Release)
	}
	return nil
}
