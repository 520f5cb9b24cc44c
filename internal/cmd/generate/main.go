// Command fhirgen generates a FHIR model package from the official definitions
// ZIP (definitions.json.zip of a FHIR release).
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/damedic/fhir-model-go/internal/generate"
	"github.com/damedic/fhir-model-go/internal/generate/ir"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "fhirgen",
		Short:        "Generate FHIR model types and builders from StructureDefinitions",
		SilenceUsage: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return v.BindPFlags(cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Load(v)
			if err != nil {
				return err
			}
			return run(cfg, newLogger(cmd.ErrOrStderr(), cfg.Verbose))
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "config file (yaml, json or toml)")
	flags.String("definitions", "", "path to definitions.json.zip")
	flags.String("out", "", "output directory (default model/r4)")
	flags.String("package", "", "import path of the generated package")
	flags.String("release", "", "FHIR release, e.g. R4")
	flags.StringSlice("types", nil, "types to generate, the types they use are included")
	flags.BoolP("verbose", "v", false, "log debug output")

	return cmd
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w}).Level(level).With().Timestamp().Logger()
}

func run(cfg *Config, log zerolog.Logger) error {
	defs, err := readJSONFromZIP(cfg.Definitions, log)
	if err != nil {
		return err
	}

	log.Info().Msg("parsing structure definitions...")
	all := ir.Parse(&defs.types, &defs.resources)
	types, err := ir.Select(all, cfg.Types...)
	if err != nil {
		return err
	}
	ir.ResolveBindings(types, &defs.valueSets)
	for _, rt := range types {
		log.Debug().Str("type", rt.Name).Int("structs", len(rt.Structs)).Msg("selected")
	}

	log.Info().Msg("generating code...")
	files := generate.Files(cfg.Package, cfg.Release, types, generate.DefaultGenerators()...)

	log.Info().Str("dir", cfg.Out).Int("files", len(files)).Msg("writing files...")
	return generate.WriteAll(cfg.Out, files)
}
