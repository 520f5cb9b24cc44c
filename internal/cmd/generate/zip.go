package main

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/damedic/fhir-model-go/internal/generate/sd"
)

type bundles struct {
	resources sd.Bundle
	types     sd.Bundle
	valueSets sd.Bundle
}

func readJSONFromZIP(path string, log zerolog.Logger) (*bundles, error) {
	log.Info().Str("path", path).Msg("opening zip archive...")
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer archive.Close()

	log.Info().Msg("unmarshalling JSON...")
	var b bundles
	for name, dst := range map[string]*sd.Bundle{
		"profiles-resources.json": &b.resources,
		"profiles-types.json":     &b.types,
		"valuesets.json":          &b.valueSets,
	} {
		if err := readAndParseJSON(&archive.Reader, name, dst); err != nil {
			return nil, err
		}
		log.Debug().Str("file", name).Int("entries", len(dst.Entry)).Msg("read bundle")
	}
	return &b, nil
}

func readAndParseJSON(archive *zip.Reader, name string, bundle *sd.Bundle) error {
	file, err := archive.Open(name)
	if err != nil {
		file, err = archive.Open("definitions.json/" + name)
	}
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, bundle); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}
