package generate

import (
	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

type BuilderGenerator struct {
	NoOpGenerator
}

func (g BuilderGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		generateBuilderStruct(f, s)
		generateBaseSetters(f, s)
		generateSetters(f, s)
		generateSetField(f, s)
		generateBuild(f, s)
	}
	return true
}

var baseBuilders = map[ir.Base]string{
	ir.ElementBase:         "elementBuilder",
	ir.BackboneElementBase: "backboneElementBuilder",
	ir.ResourceBase:        "resourceBuilder",
	ir.DomainResourceBase:  "domainResourceBuilder",
}

var baseSetFieldFuncs = map[ir.Base]string{
	ir.ElementBase:         "setElementField",
	ir.BackboneElementBase: "setBackboneField",
	ir.ResourceBase:        "setResourceField",
	ir.DomainResourceBase:  "setDomainResourceField",
}

type baseSetter struct {
	name, field string
	typ         *Statement
	list        bool
}

func baseSettersOf(base ir.Base) []baseSetter {
	extension := baseSetter{"AddExtension", "extension", Op("*").Id("Extension"), true}
	modifierExtension := baseSetter{"AddModifierExtension", "modifierExtension", Op("*").Id("Extension"), true}
	resource := []baseSetter{
		{"SetMeta", "meta", Op("*").Id("Meta"), false},
		{"SetImplicitRules", "implicitRules", Op("*").Id("Uri"), false},
		{"SetLanguage", "language", Op("*").Id("Code"), false},
	}

	switch base {
	case ir.BackboneElementBase:
		return []baseSetter{extension, modifierExtension}
	case ir.ResourceBase:
		return resource
	case ir.DomainResourceBase:
		return append(resource,
			baseSetter{"SetText", "text", Op("*").Id("Narrative"), false},
			baseSetter{"AddContained", "contained", Qual(modelPkg, "Resource"), true},
			extension,
			modifierExtension,
		)
	default:
		return []baseSetter{extension}
	}
}

func generateBuilderStruct(f *File, s ir.Struct) {
	name := s.Name + "Builder"
	f.Commentf("%s builds %s %s.", name, article(s.Name), s.Name)
	f.Type().Id(name).StructFunc(func(g *Group) {
		g.Id(baseBuilders[s.Base])
		for _, sf := range s.Fields {
			g.Id(sf.GoName()).Add(fieldType(s, sf))
		}
	})
	f.Line()

	f.Func().Id("New" + name).Params().Op("*").Id(name).Add(oneLine(Return(Op("&").Id(name).Values())))
	f.Line()
}

func builderRecv(s ir.Struct) *Statement {
	return Func().Params(Id("b").Op("*").Id(s.Name + "Builder"))
}

func generateBaseSetters(f *File, s ir.Struct) {
	name := s.Name + "Builder"

	f.Add(builderRecv(s).Id("SetId").Params(Id("id").String()).Op("*").Id(name).Block(
		Id("b").Dot("id").Op("=").Id("id"),
		Return(Id("b")),
	))
	f.Line()

	for _, setter := range baseSettersOf(s.Base) {
		f.Add(setterFunc(s, setter.name, setter.field, setter.typ, setter.list))
		f.Line()
	}
}

func generateSetters(f *File, s ir.Struct) {
	for _, sf := range s.Fields {
		typ := fieldType(s, sf)
		list := sf.Multiple && !sf.Polymorph
		prefix := "Set"
		if list {
			prefix = "Add"
			typ = elementType(s, sf)
		}
		f.Add(setterFunc(s, prefix+sf.Accessor(), sf.GoName(), typ, list))
		f.Line()
	}
}

// elementType is the type of one entry of a list field.
func elementType(s ir.Struct, sf ir.StructField) *Statement {
	single := sf
	single.Multiple = false
	return fieldType(s, single)
}

func setterFunc(s ir.Struct, name, field string, typ *Statement, list bool) *Statement {
	if list {
		return builderRecv(s).Id(name).Params(Id("v").Op("...").Add(typ)).Op("*").Id(s.Name+"Builder").Block(
			Id("b").Dot(field).Op("=").Append(Id("b").Dot(field), Id("v").Op("...")),
			Return(Id("b")),
		)
	}
	return builderRecv(s).Id(name).Params(Id("v").Add(typ)).Op("*").Id(s.Name+"Builder").Block(
		Id("b").Dot(field).Op("=").Id("v"),
		Return(Id("b")),
	)
}

func generateSetField(f *File, s ir.Struct) {
	f.Add(builderRecv(s).Id("SetField").Params(Id("name").String(), Id("value").Id("any")).Error().BlockFunc(func(g *Group) {
		if len(s.Fields) > 0 {
			g.Switch(Id("name")).BlockFunc(func(g *Group) {
				for _, sf := range s.Fields {
					dst := Op("&").Id("b").Dot(sf.GoName())
					var assign *Statement
					switch {
					case sf.Polymorph:
						assign = Qual(validationPkg, "AssignChoice").Call(dst, Id("name"), Id("value"), Id(choiceTypesVar(s, sf)).Op("..."))
					case sf.Multiple:
						assign = Qual(validationPkg, "AppendTo").Call(dst, Id("name"), Id("value"))
					default:
						assign = Qual(validationPkg, "Assign").Call(dst, Id("name"), Id("value"))
					}
					g.Case(Lit(sf.Name)).Block(Return(assign))
				}
			})
		}
		g.Return(Id("b").Dot(baseSetFieldFuncs[s.Base]).Call(Lit(s.TypeName), Id("name"), Id("value")))
	}))
	f.Line()
}

func generateBuild(f *File, s ir.Struct) {
	rcv := receiverOf(s)

	f.Add(builderRecv(s).Id("BuildElement").Params().Params(Qual(modelPkg, "Element"), Error()).Block(
		List(Id(rcv), Err()).Op(":=").Id("b").Dot("Build").Call(),
		If(Err().Op("!=").Nil()).Block(Return(Nil(), Err())),
		Return(Id(rcv), Nil()),
	))
	f.Line()

	f.Commentf("Build validates the builder state and returns the %s.", s.Name)
	f.Add(builderRecv(s).Id("Build").Params().Params(Op("*").Id(s.Name), Error()).BlockFunc(func(g *Group) {
		g.Var().Id("c").Id("checker")
		g.Id(rcv).Op(":=").Op("&").Id(s.Name).Custom(multiline("{", "}"), buildValues(s)...)
		generateChecks(g, s)
		g.If(Id("c").Dot("err").Op("!=").Nil()).Block(
			Return(Nil(), Id("c").Dot("result").Call(Lit(s.TypeName))),
		)
		g.Return(Id(rcv), Nil())
	}))
	f.Line()
}

func buildValues(s ir.Struct) []Code {
	values := []Code{
		Id(baseStructs[s.Base]).Op(":").Id("b").Dot(baseBuilders[s.Base]).Dot("build").Call(Op("&").Id("c")),
	}
	for _, sf := range s.Fields {
		value := Id("b").Dot(sf.GoName())
		if sf.Multiple && !sf.Polymorph {
			check := "checkList"
			if !sf.Optional {
				check = "checkNonEmptyList"
			}
			value = Id(check).Call(Op("&").Id("c"), Id("b").Dot(sf.GoName()), Lit(sf.Name))
		}
		values = append(values, Id(sf.GoName()).Op(":").Add(value))
	}
	return values
}

// generateChecks emits the checks in a fixed order: required fields, choice
// types, reference targets, value set bindings and finally empty elements.
func generateChecks(g *Group, s ir.Struct) {
	rcv := receiverOf(s)
	check := func(fn string, args ...Code) {
		g.Id("c").Dot("check").Call(Qual(validationPkg, fn).Call(args...))
	}

	for _, sf := range s.Fields {
		if sf.Optional || sf.Multiple {
			continue
		}
		field := Id(rcv).Dot(sf.GoName())
		switch {
		case sf.Polymorph:
			check("RequireChoiceElement", field, Lit(sf.Name), Id(choiceTypesVar(s, sf)).Op("..."))
		case sf.PossibleTypes[0].IsSystem:
			check("RequireNonEmpty", field, Lit(sf.Name))
		default:
			check("RequireNonNull", field, Lit(sf.Name))
		}
	}

	for _, sf := range s.Fields {
		if sf.Polymorph && sf.Optional {
			check("ChoiceElement", Id(rcv).Dot(sf.GoName()), Lit(sf.Name), Id(choiceTypesVar(s, sf)).Op("..."))
		}
	}

	for _, sf := range s.Fields {
		if len(sf.Targets) == 0 {
			continue
		}
		field := Id(rcv).Dot(sf.GoName())
		targets := lits(sf.Targets)
		switch {
		case sf.Polymorph:
			g.If(
				List(Id("ref"), Id("ok")).Op(":=").Add(field).Assert(Op("*").Id("Reference")),
				Id("ok"),
			).Block(
				Id("c").Dot("check").Call(Qual(validationPkg, "CheckReferenceType").Call(append([]Code{Id("ref"), Lit(sf.Name)}, targets...)...)),
			)
		case sf.Multiple:
			check("CheckReferenceTypes", append([]Code{field, Lit(sf.Name)}, targets...)...)
		default:
			check("CheckReferenceType", append([]Code{field, Lit(sf.Name)}, targets...)...)
		}
	}

	for _, sf := range s.Fields {
		if !sf.Binding.Resolved() || sf.Polymorph {
			continue
		}
		field := Id(rcv).Dot(sf.GoName())
		if sf.Multiple {
			g.Id("checkBindings").Call(Op("&").Id("c"), Id(bindingVar(sf.Binding)), field, Lit(sf.Name))
		} else {
			g.Id(bindingVar(sf.Binding)).Dot("check").Call(Op("&").Id("c"), field, Lit(sf.Name))
		}
	}

	if !s.IsResource() {
		check("RequireChildren", Id(rcv))
	}
}

func article(word string) string {
	switch word[0] {
	case 'A', 'E', 'I', 'O', 'U':
		return "an"
	}
	return "a"
}
