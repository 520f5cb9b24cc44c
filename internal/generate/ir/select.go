package ir

import (
	"fmt"
	"slices"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/sd"
)

// always needed by the hand-maintained base structs
var baseTypes = []string{"Extension", "Meta", "Narrative", "code", "uri"}

// Select returns the named types together with every type their fields need,
// in the order of all. Primitive types are always selected.
//
// Choice options naming a type outside the selection are dropped, choice fields
// left without options are removed.
func Select(all []ResourceOrType, names ...string) ([]ResourceOrType, error) {
	byName := make(map[string]ResourceOrType, len(all))
	queue := append(slices.Clone(names), baseTypes...)
	for _, rt := range all {
		byName[rt.Name] = rt
		if rt.IsPrimitive {
			queue = append(queue, rt.Name)
		}
	}

	selected := map[string]bool{}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if selected[n] {
			continue
		}
		rt, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("unknown type %s", n)
		}
		selected[n] = true

		for _, s := range rt.Structs {
			for _, f := range s.Fields {
				if f.Polymorph {
					continue
				}
				for _, t := range f.PossibleTypes {
					if t.IsSystem || t.IsNestedResource {
						continue
					}
					queue = append(queue, topLevelName(t.Name))
				}
			}
		}
	}

	var result []ResourceOrType
	for _, rt := range all {
		if !selected[rt.Name] {
			continue
		}
		structs := make([]Struct, 0, len(rt.Structs))
		for _, s := range rt.Structs {
			var fields []StructField
			for _, f := range s.Fields {
				if f.Polymorph {
					f.PossibleTypes = slices.DeleteFunc(slices.Clone(f.PossibleTypes), func(t FieldType) bool {
						return !selected[topLevelName(t.Name)]
					})
					if len(f.PossibleTypes) == 0 {
						continue
					}
				}
				fields = append(fields, f)
			}
			s.Fields = fields
			structs = append(structs, s)
		}
		rt.Structs = structs
		result = append(result, rt)
	}
	return result, nil
}

// topLevelName is the StructureDefinition a type belongs to,
// QuestionnaireResponse for QuestionnaireResponse.Item.
func topLevelName(typeName string) string {
	n, _, _ := strings.Cut(typeName, ".")
	return n
}

// ResolveBindings looks up the value sets of required bindings on coded fields
// and fills in their codes. Bindings spanning more than one code system stay
// unresolved and are not checked.
func ResolveBindings(types []ResourceOrType, bundles ...*sd.Bundle) {
	valueSets := map[string]*sd.ValueSet{}
	codeSystems := map[string]*sd.CodeSystem{}
	for _, b := range bundles {
		for _, e := range b.Entry {
			switch r := e.Resource.(type) {
			case *sd.ValueSet:
				valueSets[r.URL] = r
			case *sd.CodeSystem:
				codeSystems[r.URL] = r
			}
		}
	}

	for i := range types {
		for j := range types[i].Structs {
			fields := types[i].Structs[j].Fields
			for k, f := range fields {
				if f.Binding == nil || f.Binding.Strength != "required" {
					continue
				}
				if !f.HasType("code") && !f.HasType("Coding") && !f.HasType("CodeableConcept") {
					continue
				}

				url, _, _ := strings.Cut(f.Binding.ValueSet, "|")
				vs, ok := valueSets[url]
				if !ok || len(vs.Compose.Include) != 1 {
					continue
				}
				include := vs.Compose.Include[0]

				concepts := sd.Flatten(include.Concept)
				if len(concepts) == 0 {
					if cs, ok := codeSystems[include.System]; ok {
						concepts = sd.Flatten(cs.Concept)
					}
				}
				if len(concepts) == 0 {
					continue
				}

				resolved := *f.Binding
				resolved.Name = vs.Name
				resolved.System = include.System
				resolved.Codes = nil
				for _, c := range concepts {
					resolved.Codes = append(resolved.Codes, Code{Code: c.Code, Display: c.Display})
				}
				fields[k].Binding = &resolved
			}
		}
	}
}
