// Package ir holds the intermediate representation the generators work on.
package ir

import (
	"go/token"
	"strings"

	"github.com/iancoleman/strcase"
)

// Base is the hand-maintained base struct a generated type embeds.
type Base int

const (
	ElementBase Base = iota
	BackboneElementBase
	ResourceBase
	DomainResourceBase
)

// ResourceOrType is one StructureDefinition, with its backbone elements.
type ResourceOrType struct {
	Name        string
	FileName    string
	IsResource  bool
	IsPrimitive bool
	Structs     []Struct
}

// Struct is one generated type.
type Struct struct {
	// Name is the Go type name, e.g. QuestionnaireResponseItem.
	Name string
	// TypeName is the FHIR type name, e.g. QuestionnaireResponse.Item.
	TypeName    string
	Base        Base
	IsBackbone  bool
	DocComment  string
	Fields      []StructField
	Constraints []Constraint
}

func (s Struct) IsResource() bool {
	return s.Base == ResourceBase || s.Base == DomainResourceBase
}

// StructField is one field beyond those of the base struct.
type StructField struct {
	// Name is the FHIR field name without [x].
	Name          string
	PossibleTypes []FieldType
	Polymorph     bool
	Multiple      bool
	Optional      bool
	// Targets is the reference target allow-list, nil if unconstrained.
	Targets []string
	Binding *Binding
}

// GoName is the unexported Go field name.
func (f StructField) GoName() string {
	switch f.Name {
	case "hash":
		return "dataHash"
	}
	if !token.IsKeyword(f.Name) {
		return f.Name
	}
	if n, ok := keywordFieldNames[f.Name]; ok {
		return n
	}
	return f.Name + "Value"
}

// Accessor is the exported name of the getter, setter suffix included.
func (f StructField) Accessor() string {
	if f.Name == "hash" {
		return "DataHash"
	}
	return toGoTypeCasing(f.Name)
}

var keywordFieldNames = map[string]string{
	"type":    "typ",
	"package": "pkg",
	"range":   "rng",
}

// HasType reports whether any of the possible types of f is name.
func (f StructField) HasType(name string) bool {
	for _, t := range f.PossibleTypes {
		if t.Name == name {
			return true
		}
	}
	return false
}

// FieldType is one possible type of a field.
type FieldType struct {
	// Name is the FHIR type name, e.g. dateTime or QuestionnaireResponse.Item.
	Name string
	// GoName is the Go type name, e.g. DateTime or QuestionnaireResponseItem.
	GoName      string
	IsPrimitive bool
	// IsSystem marks FHIRPath system types, held as Go strings.
	IsSystem         bool
	IsNestedResource bool
}

// Binding is a value set binding of a coded field.
type Binding struct {
	Strength string
	ValueSet string

	// Set by ResolveBindings for required bindings to a single code system.
	Name   string
	System string
	Codes  []Code
}

// Resolved reports whether the binding can be checked on build.
func (b *Binding) Resolved() bool {
	return b != nil && b.Strength == "required" && b.Name != "" && len(b.Codes) > 0
}

type Code struct {
	Code    string
	Display string
}

type Constraint struct {
	Key        string
	Severity   string
	Human      string
	Expression string
}

func toGoTypeCasing(s string) string {
	return strcase.ToCamel(s)
}

func toGoFileCasing(s string) string {
	return strcase.ToSnake(s)
}

// typeNameOf turns an element path into a FHIR type name:
// QuestionnaireResponse.item.answer becomes QuestionnaireResponse.Item.Answer.
func typeNameOf(path string) string {
	parts := strings.Split(path, ".")
	for i := 1; i < len(parts); i++ {
		parts[i] = toGoTypeCasing(parts[i])
	}
	return strings.Join(parts, ".")
}

// goNameOf turns a FHIR type name into a Go type name.
func goNameOf(typeName string) string {
	return toGoTypeCasing(strings.ReplaceAll(typeName, ".", "_"))
}
