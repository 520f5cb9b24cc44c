// Package fhirjson implements the FHIR JSON representation of the model.
//
// Encoding drives a model.Visitor over the element, decoding drives the
// builders of a model.Registry, so both work for any type that provides a
// descriptor.
package fhirjson

import "github.com/rs/zerolog"

type config struct {
	lenient bool
	logger  zerolog.Logger
	prefix  string
	indent  string
}

func newConfig(opts []Option) config {
	c := config{logger: zerolog.Nop()}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Option configures an Encoder or a Decoder.
type Option func(*config)

// WithLenient makes the Decoder skip unknown properties instead of failing.
//
// Skipped properties are logged at warn level.
func WithLenient() Option {
	return func(c *config) { c.lenient = true }
}

// WithLogger sets the logger of a Decoder.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithIndent makes the Encoder indent its output like json.Indent.
func WithIndent(prefix, indent string) Option {
	return func(c *config) {
		c.prefix = prefix
		c.indent = indent
	}
}
