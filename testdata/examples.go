// Package testdata provides FHIR example resources for tests.
package testdata

import (
	"embed"
	"io/fs"
	"log"
	"path"
)

//go:embed examples/*.json
var examplesFS embed.FS

// GetExamples returns the JSON examples by file name.
func GetExamples() map[string][]byte {
	entries, err := fs.ReadDir(examplesFS, "examples")
	if err != nil {
		log.Fatal(err)
	}

	examples := map[string][]byte{}
	for _, e := range entries {
		data, err := examplesFS.ReadFile(path.Join("examples", e.Name()))
		if err != nil {
			log.Fatal(err)
		}
		examples[e.Name()] = data
	}
	return examples
}

// GetExample returns a single example, it panics if the file does not exist.
func GetExample(name string) []byte {
	data, err := examplesFS.ReadFile(path.Join("examples", name))
	if err != nil {
		panic(err)
	}
	return data
}
