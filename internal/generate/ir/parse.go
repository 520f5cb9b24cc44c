package ir

import (
	"slices"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/sd"
)

var (
	primitives = []string{
		"base64Binary",
		"boolean",
		"canonical",
		"code",
		"date",
		"dateTime",
		"decimal",
		"id",
		"instant",
		"integer",
		"integer64",
		"markdown",
		"oid",
		"positiveInt",
		"string",
		"time",
		"unsignedInt",
		"uri",
		"url",
		"uuid",
		"xhtml",
	}
	notDomainResources = []string{"Binary", "Bundle", "Parameters"}

	// fields held by the base structs
	baseFields = map[Base][]string{
		ElementBase:         {"id", "extension"},
		BackboneElementBase: {"id", "extension", "modifierExtension"},
		ResourceBase:        {"id", "meta", "implicitRules", "language"},
		DomainResourceBase:  {"id", "meta", "implicitRules", "language", "text", "contained", "extension", "modifierExtension"},
	}
)

type parser struct {
	// profiles maps constraint profiles like SimpleQuantity to their base type.
	profiles map[string]string
}

// Parse parses the StructureDefinitions of the bundles into the intermediate representation.
//
// Constraint profiles such as SimpleQuantity or Duration are not parsed. Fields
// typed with a profile get the profiled type, choice options naming a profile
// are dropped.
func Parse(bundles ...*sd.Bundle) []ResourceOrType {
	defs := sd.StructureDefinitions(bundles...)

	p := parser{profiles: map[string]string{}}
	for _, s := range defs {
		if s.Derivation == "constraint" && s.Kind != "logical" {
			p.profiles[s.Name] = s.Type
		}
	}

	var resourcesOrTypes []ResourceOrType
	for _, s := range defs {
		if s.Kind == "logical" || s.Abstract || s.Derivation == "constraint" {
			continue
		}
		if s.Name == "Element" || s.Name == "BackboneElement" {
			continue
		}

		isResource := s.Kind == "resource"
		base := ElementBase
		if strings.HasSuffix(s.BaseDefinition, "/BackboneElement") {
			// complex types with modifier extensions, like Timing
			base = BackboneElementBase
		}
		if isResource {
			base = DomainResourceBase
			if slices.Contains(notDomainResources, s.Type) {
				base = ResourceBase
			}
		}

		resourcesOrTypes = append(resourcesOrTypes, ResourceOrType{
			Name:        s.Type,
			FileName:    toGoFileCasing(s.Type),
			IsResource:  isResource,
			IsPrimitive: slices.Contains(primitives, s.Type),
			Structs:     p.parseStructs(s.Type, base, false, s.Snapshot.Element, s.Type),
		})
	}

	return resourcesOrTypes
}

func (p parser) parseStructs(
	typeName string,
	base Base,
	isBackbone bool,
	elementDefinitions []sd.ElementDefinition,
	elementPathStripPrefix string,
) []Struct {
	parsedStructs := []Struct{{
		Name:       goNameOf(typeName),
		TypeName:   typeName,
		Base:       base,
		IsBackbone: isBackbone,
	}}
	if len(elementDefinitions) > 0 && elementDefinitions[0].Path == elementPathStripPrefix {
		parsedStructs[0].DocComment = elementDefinitions[0].Short
		parsedStructs[0].Constraints = parseConstraints(elementDefinitions[0].Constraint)
	}

	for _, g := range groupElementDefinitionsByPrefix(elementDefinitions, elementPathStripPrefix) {
		d := g.definitions[0]
		if d.Max == "0" || slices.Contains(baseFields[base], g.fieldName) {
			continue
		}

		if len(g.definitions) > 1 {
			nestedBase := BackboneElementBase
			if len(d.Type) > 0 && d.Type[0].Code == "Element" {
				nestedBase = ElementBase
			}
			parsedStructs = append(parsedStructs, p.parseStructs(
				typeNameOf(d.Path),
				nestedBase,
				true,
				g.definitions,
				d.Path,
			)...)
		}

		parsedStructs[0].Fields = append(parsedStructs[0].Fields, p.parseField(d, elementPathStripPrefix))
	}

	return parsedStructs
}

type definitionsGroup struct {
	fieldName   string
	definitions []sd.ElementDefinition
}

func groupElementDefinitionsByPrefix(elementDefinitions []sd.ElementDefinition, stripPrefix string) []definitionsGroup {
	var grouped []definitionsGroup

	for _, d := range elementDefinitions {
		rest, ok := strings.CutPrefix(d.Path, stripPrefix+".")
		if !ok {
			continue
		}

		fieldName := strings.SplitN(rest, ".", 2)[0]

		if len(grouped) == 0 || grouped[len(grouped)-1].fieldName != fieldName {
			grouped = append(grouped, definitionsGroup{
				fieldName: fieldName,
			})
		}

		grouped[len(grouped)-1].definitions = append(grouped[len(grouped)-1].definitions, d)
	}

	return grouped
}

func (p parser) parseField(d sd.ElementDefinition, elementPathStripPrefix string) StructField {
	fieldName := d.Path[len(elementPathStripPrefix)+1:]
	fieldName, polymorph := strings.CutSuffix(fieldName, "[x]")

	var (
		fieldTypes []FieldType
		targets    []string
	)
	switch {
	case polymorph:
		for _, t := range d.Type {
			if _, ok := p.profiles[t.Code]; ok {
				continue
			}
			fieldTypes = append(fieldTypes, p.matchFieldType(t.Code))
			targets = append(targets, targetsOf(t)...)
		}
	case len(d.Type) > 0:
		switch code := d.Type[0].Code; code {
		case "BackboneElement", "Element":
			fieldTypes = append(fieldTypes, namedType(typeNameOf(d.Path)))
		default:
			fieldTypes = append(fieldTypes, p.matchFieldType(code))
			targets = targetsOf(d.Type[0])
		}
	default:
		// content reference, e.g. #QuestionnaireResponse.item
		_, ref, _ := strings.Cut(d.ContentReference, "#")
		fieldTypes = append(fieldTypes, namedType(typeNameOf(ref)))
	}

	if slices.Contains(targets, "Resource") {
		targets = nil
	}

	var binding *Binding
	if d.Binding != nil {
		binding = &Binding{
			Strength: d.Binding.Strength,
			ValueSet: d.Binding.ValueSet,
		}
	}

	return StructField{
		Name:          fieldName,
		PossibleTypes: fieldTypes,
		Polymorph:     polymorph,
		Multiple:      d.Max != "1",
		Optional:      d.Min == 0,
		Targets:       targets,
		Binding:       binding,
	}
}

func (p parser) matchFieldType(code string) FieldType {
	// type like http://hl7.org/fhirpath/System.String
	t := code[strings.LastIndex(code, "/")+1:]

	switch {
	case strings.HasPrefix(t, "System."):
		return FieldType{Name: "string", GoName: "string", IsSystem: true}
	case t == "Resource":
		return FieldType{Name: "Resource", IsNestedResource: true}
	}

	if base, ok := p.profiles[t]; ok {
		t = base
	}
	ft := namedType(t)
	ft.IsPrimitive = slices.Contains(primitives, t)
	return ft
}

func namedType(typeName string) FieldType {
	return FieldType{Name: typeName, GoName: goNameOf(typeName)}
}

func targetsOf(t sd.TypeRef) []string {
	if t.Code != "Reference" {
		return nil
	}
	var targets []string
	for _, profile := range t.TargetProfile {
		target := profile[strings.LastIndex(profile, "/")+1:]
		if !slices.Contains(targets, target) {
			targets = append(targets, target)
		}
	}
	return targets
}

func parseConstraints(constraints []sd.ElementConstraint) []Constraint {
	var parsed []Constraint
	for _, c := range constraints {
		// ele-* hold for every element, dom-* are declared on the domain resource base
		if strings.HasPrefix(c.Key, "ele-") || strings.HasPrefix(c.Key, "dom-") {
			continue
		}
		parsed = append(parsed, Constraint{
			Key:        c.Key,
			Severity:   c.Severity,
			Human:      c.Human,
			Expression: c.Expression,
		})
	}
	return parsed
}
