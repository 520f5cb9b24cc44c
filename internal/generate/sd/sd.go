// Package sd models the parts of the FHIR definition bundles the generator reads:
// StructureDefinitions, ValueSets and CodeSystems.
package sd

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/buger/jsonparser"
)

type Bundle struct {
	Entry []BundleEntry `json:"entry"`
}

// BundleEntry holds a *StructureDefinition, *ValueSet or *CodeSystem.
// Other resources are kept as nil.
type BundleEntry struct {
	Resource any
}

func (e *BundleEntry) UnmarshalJSON(data []byte) error {
	raw, _, _, err := jsonparser.Get(data, "resource")
	if errors.Is(err, jsonparser.KeyPathNotFoundError) {
		return nil
	} else if err != nil {
		return err
	}
	resourceType, err := jsonparser.GetString(raw, "resourceType")
	if err != nil {
		return fmt.Errorf("bundle entry without resourceType: %w", err)
	}

	switch resourceType {
	case "StructureDefinition":
		e.Resource = &StructureDefinition{}
	case "ValueSet":
		e.Resource = &ValueSet{}
	case "CodeSystem":
		e.Resource = &CodeSystem{}
	default:
		return nil
	}
	return json.Unmarshal(raw, e.Resource)
}

type StructureDefinition struct {
	URL            string   `json:"url"`
	Name           string   `json:"name"`
	Kind           string   `json:"kind"`
	Abstract       bool     `json:"abstract"`
	Type           string   `json:"type"`
	BaseDefinition string   `json:"baseDefinition"`
	Derivation     string   `json:"derivation"`
	Description    string   `json:"description"`
	Purpose        string   `json:"purpose"`
	Snapshot       Snapshot `json:"snapshot"`
}

type Snapshot struct {
	Element []ElementDefinition `json:"element"`
}

type ElementDefinition struct {
	Path             string              `json:"path"`
	Short            string              `json:"short"`
	Definition       string              `json:"definition"`
	Min              int                 `json:"min"`
	Max              string              `json:"max"`
	Type             []TypeRef           `json:"type"`
	ContentReference string              `json:"contentReference"`
	Binding          *ElementBinding     `json:"binding"`
	Constraint       []ElementConstraint `json:"constraint"`
}

type TypeRef struct {
	Code          string   `json:"code"`
	TargetProfile []string `json:"targetProfile"`
}

type ElementBinding struct {
	Strength string `json:"strength"`
	ValueSet string `json:"valueSet"`
}

type ElementConstraint struct {
	Key        string `json:"key"`
	Severity   string `json:"severity"`
	Human      string `json:"human"`
	Expression string `json:"expression"`
	Source     string `json:"source"`
}

type ValueSet struct {
	URL     string  `json:"url"`
	Name    string  `json:"name"`
	Version string  `json:"version"`
	Compose Compose `json:"compose"`
}

type Compose struct {
	Include []Include `json:"include"`
}

type Include struct {
	System  string    `json:"system"`
	Concept []Concept `json:"concept"`
}

type CodeSystem struct {
	URL     string    `json:"url"`
	Name    string    `json:"name"`
	Concept []Concept `json:"concept"`
}

// Concept is a code, possibly with nested child codes.
type Concept struct {
	Code    string    `json:"code"`
	Display string    `json:"display"`
	Concept []Concept `json:"concept"`
}

// Flatten returns the concepts depth-first, parents before children.
func Flatten(concepts []Concept) []Concept {
	var flat []Concept
	for _, c := range concepts {
		flat = append(flat, c)
		flat = append(flat, Flatten(c.Concept)...)
	}
	return flat
}

// StructureDefinitions returns the StructureDefinitions of the bundles in order.
func StructureDefinitions(bundles ...*Bundle) []*StructureDefinition {
	var defs []*StructureDefinition
	for _, b := range bundles {
		for _, e := range b.Entry {
			if d, ok := e.Resource.(*StructureDefinition); ok {
				defs = append(defs, d)
			}
		}
	}
	return defs
}
