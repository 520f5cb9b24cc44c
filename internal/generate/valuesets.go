package generate

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

// ValueSetConstant represents a single constant in a value set
type ValueSetConstant struct {
	Name    string // Go constant name
	Value   string // FHIR code value
	Comment string
}

// ValueSetInfo represents a complete value set for generation
type ValueSetInfo struct {
	Name      string             // Value set name
	URL       string             // Versioned canonical URL
	System    string             // Code system of all codes
	Codes     []string           // Codes in definition order
	Constants []ValueSetConstant // All constants in this value set
}

// version appended to value set URLs lacking one
const defaultValueSetVersion = "4.0.1"

type ValueSetsGenerator struct {
	NoOpGenerator
}

func (g ValueSetsGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	valueSets := collectValueSets(rt)
	if len(valueSets) == 0 {
		return
	}

	vf := f("value_sets", strings.ToLower(release))
	vf.Comment("Value set constants for required bindings")
	vf.Line()

	generateBindingType(vf)
	for _, vs := range valueSets {
		generateValueSet(vf, vs)
	}
}

// collectValueSets gathers the resolved bindings of all fields, one entry per value set.
func collectValueSets(types []ir.ResourceOrType) []ValueSetInfo {
	byName := map[string]ValueSetInfo{}

	for _, rt := range types {
		for _, s := range rt.Structs {
			for _, field := range s.Fields {
				b := field.Binding
				if !b.Resolved() || field.Polymorph {
					continue
				}
				if _, ok := byName[b.Name]; ok {
					continue
				}
				byName[b.Name] = valueSetInfo(b)
			}
		}
	}

	valueSets := slices.Collect(maps.Values(byName))
	// Sort value sets by name for consistent ordering
	slices.SortFunc(valueSets, func(a, b ValueSetInfo) int {
		return strings.Compare(a.Name, b.Name)
	})
	return valueSets
}

func valueSetInfo(b *ir.Binding) ValueSetInfo {
	url := b.ValueSet
	if !strings.Contains(url, "|") {
		url += "|" + defaultValueSetVersion
	}

	vs := ValueSetInfo{
		Name:   b.Name,
		URL:    url,
		System: b.System,
	}
	seen := map[string]bool{}
	for _, c := range b.Codes {
		vs.Codes = append(vs.Codes, c.Code)

		name := constantName(b.Name, c.Code)
		if seen[name] {
			continue
		}
		seen[name] = true
		vs.Constants = append(vs.Constants, ValueSetConstant{
			Name:    name,
			Value:   c.Code,
			Comment: c.Display,
		})
	}

	// Sort constants within each value set by name for consistent ordering
	slices.SortFunc(vs.Constants, func(a, b ValueSetConstant) int {
		return strings.Compare(a.Name, b.Name)
	})
	return vs
}

func generateBindingType(f *File) {
	f.Type().Id("binding").Struct(
		Id("valueSet").String(),
		Id("system").String(),
		Id("codes").Index().String(),
	)
	f.Line()

	f.Func().Params(Id("vs").Id("binding")).Id("check").Params(
		Id("c").Op("*").Id("checker"),
		Id("v").Qual(validationPkg, "Coded"),
		Id("field").String(),
	).Block(
		Id("c").Dot("check").Call(Qual(validationPkg, "CheckValueSetBinding").Call(
			Id("v"), Id("field"), Id("vs").Dot("valueSet"), Id("vs").Dot("system"), Id("vs").Dot("codes").Op("..."),
		)),
	)
	f.Line()

	f.Func().Id("checkBindings").Types(Id("T").Qual(validationPkg, "Coded")).Params(
		Id("c").Op("*").Id("checker"),
		Id("vs").Id("binding"),
		Id("values").Index().Id("T"),
		Id("field").String(),
	).Block(
		Id("c").Dot("check").Call(Qual(validationPkg, "CheckValueSetBindings").Call(
			Id("values"), Id("field"), Id("vs").Dot("valueSet"), Id("vs").Dot("system"), Id("vs").Dot("codes").Op("..."),
		)),
	)
	f.Line()
}

func generateValueSet(f *File, vs ValueSetInfo) {
	f.Var().Id(lowerFirst(toGoTypeCasing(vs.Name))+"Binding").Op("=").Id("binding").Custom(multiline("{", "}"),
		Id("valueSet").Op(":").Lit(vs.URL),
		Id("system").Op(":").Lit(vs.System),
		Id("codes").Op(":").Index().String().Values(lits(vs.Codes)...),
	)
	f.Line()

	f.Var().DefsFunc(func(g *Group) {
		for _, constant := range vs.Constants {
			g.Comment(fmt.Sprintf("%s %s", vs.Name, constant.Comment))
			g.Id(constant.Name).Op("=").Id("MustCode").Call(Lit(constant.Value))
		}
	})
	f.Line()
}

// UpperCamelCase conversion with minimal replacements
func constantName(valueSetName, concept string) string {
	replacer := strings.NewReplacer(
		"<=", "LessThanOrEqualTo",
		">=", "GreaterThanOrEqualTo",
		"<", "LessThan",
		">", "GreaterThan",
		"!=", "NotEqualTo",
		"=", "EqualTo",
	)

	return strcase.ToCamel(valueSetName) + strcase.ToCamel(replacer.Replace(concept))
}
