package generate

import (
	"fmt"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
	"github.com/iancoleman/strcase"
)

type TypesGenerator struct {
	NoOpGenerator
}

func (g TypesGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool {
	for _, s := range rt.Structs {
		generateStruct(f, s)
		generateChoiceInterfaces(f, s)
		generateDescriptor(f, s)
		generateMethods(f, s)
		generateGetters(f, s)
	}
	return true
}

var baseStructs = map[ir.Base]string{
	ir.ElementBase:         "elementBase",
	ir.BackboneElementBase: "backboneElementBase",
	ir.ResourceBase:        "resourceBase",
	ir.DomainResourceBase:  "domainResourceBase",
}

var baseFieldFuncs = map[ir.Base]string{
	ir.ElementBase:         "elementFields",
	ir.BackboneElementBase: "backboneElementFields",
	ir.ResourceBase:        "resourceFields",
	ir.DomainResourceBase:  "domainResourceFields",
}

func generateStruct(f *File, s ir.Struct) {
	if s.DocComment != "" {
		for _, line := range wrap(s.Name+" is "+sentence(s.DocComment), 100) {
			f.Comment(line)
		}
	}
	f.Type().Id(s.Name).StructFunc(func(g *Group) {
		g.Id(baseStructs[s.Base])
		for _, sf := range s.Fields {
			g.Id(sf.GoName()).Add(fieldType(s, sf))
		}
		g.Line()
		g.Id("hash").Qual(modelPkg, "HashCache")
	})
	f.Line()
}

// fieldType is the Go type of a field, shared by the struct and its builder.
func fieldType(s ir.Struct, sf ir.StructField) *Statement {
	if sf.Polymorph {
		return Id(choiceName(s, sf))
	}

	t := sf.PossibleTypes[0]
	stmt := &Statement{}
	if sf.Multiple {
		stmt.Index()
	}
	switch {
	case t.IsSystem:
		stmt.String()
	case t.IsNestedResource:
		stmt.Qual(modelPkg, "Resource")
	default:
		stmt.Op("*").Id(t.GoName)
	}
	return stmt
}

func generateChoiceInterfaces(f *File, s ir.Struct) {
	for _, sf := range s.Fields {
		if !sf.Polymorph {
			continue
		}
		name := choiceName(s, sf)

		var goNames, names []Code
		var options []string
		for _, t := range sf.PossibleTypes {
			options = append(options, t.GoName)
			names = append(names, Lit(t.Name))
			goNames = append(goNames, Id(t.GoName))
		}
		comment := fmt.Sprintf("%s is the closed set of types %s.%s[x] can hold: %s.", name, s.TypeName, sf.Name, enumerate(options))
		for _, line := range wrap(comment, 90) {
			f.Comment(line)
		}
		f.Type().Id(name).Interface(
			Qual(modelPkg, "Element"),
			Id("is"+name).Params(),
		)
		f.Line()

		f.Var().Id(choiceTypesVar(s, sf)).Op("=").Index().String().Values(names...)
		f.Line()

		for _, t := range goNames {
			f.Func().Params(Op("*").Add(t)).Id("is" + name).Params().Block()
		}
		f.Line()
	}
}

func generateDescriptor(f *File, s ir.Struct) {
	kind := "ComplexKind"
	switch {
	case s.IsResource():
		kind = "ResourceKind"
	case s.IsBackbone:
		kind = "BackboneKind"
	}

	fields := []Code{Id(baseFieldFuncs[s.Base]).Call()}
	for _, sf := range s.Fields {
		fields = append(fields, fieldDescriptor(s, sf))
	}

	stmt := Qual(modelPkg, "NewDescriptor").Call(
		Lit(s.TypeName),
		Qual(modelPkg, kind),
		Id("append").Custom(multiline("(", ")"), fields...).Op("..."),
	)
	if s.Base == ir.DomainResourceBase {
		stmt.Dot("WithConstraints").Call(Id("domainResourceConstraints").Op("..."))
	}
	if len(s.Constraints) > 0 {
		var constraints []Code
		for _, c := range s.Constraints {
			constraints = append(constraints, Qual(modelPkg, "Constraint").Custom(multiline("{", "}"),
				Id("Key").Op(":").Lit(c.Key),
				Id("Severity").Op(":").Lit(c.Severity),
				Id("Human").Op(":").Lit(c.Human),
				Id("Expression").Op(":").Lit(c.Expression),
			))
		}
		stmt.Dot("WithConstraints").Custom(multiline("(", ")"), constraints...)
	}

	f.Var().Id(descriptorVar(s)).Op("=").Add(stmt)
	f.Line()
}

func fieldDescriptor(s ir.Struct, sf ir.StructField) *Statement {
	rcv := receiverOf(s)
	param := Id(rcv).Op("*").Id(s.Name)
	field := Id(rcv).Dot(sf.GoName())
	t := sf.PossibleTypes[0]

	var stmt *Statement
	switch {
	case sf.Polymorph:
		stmt = Qual(modelPkg, "ChoiceField").Call(
			Lit(sf.Name),
			Func().Params(param).Id(choiceName(s, sf)).Add(oneLine(Return(field))),
			Id(choiceTypesVar(s, sf)).Op("..."),
		)
	case t.IsSystem:
		stmt = Qual(modelPkg, "ValueField").Call(
			Lit(sf.Name),
			Func().Params(param).Params(Id("any"), Bool()).Add(oneLine(Return(field, field.Clone().Op("!=").Lit("")))),
		)
	case t.IsNestedResource && sf.Multiple:
		stmt = Qual(modelPkg, "ResourceListField").Call(
			Lit(sf.Name),
			Func().Params(param).Index().Qual(modelPkg, "Resource").Add(oneLine(Return(field))),
		)
	case t.IsNestedResource:
		stmt = Qual(modelPkg, "ResourceField").Call(
			Lit(sf.Name),
			Func().Params(param).Qual(modelPkg, "Resource").Add(oneLine(Return(field))),
		)
	case sf.Multiple:
		stmt = Qual(modelPkg, "ListField").Call(
			Lit(sf.Name),
			Lit(t.Name),
			Func().Params(param).Add(fieldType(s, sf)).Add(oneLine(Return(field))),
		)
	default:
		stmt = Qual(modelPkg, "ElementField").Call(
			Lit(sf.Name),
			Lit(t.Name),
			Func().Params(param).Add(fieldType(s, sf)).Add(oneLine(Return(field))),
		)
	}

	if !sf.Optional {
		stmt.Dot("Require").Call()
	}
	if len(sf.Targets) > 0 {
		stmt.Dot("WithTargets").Call(lits(sf.Targets)...)
	}
	return stmt
}

func generateMethods(f *File, s ir.Struct) {
	rcv := receiverOf(s)
	recv := func() *Statement { return Func().Params(Id(rcv).Op("*").Id(s.Name)) }

	f.Add(recv().Id("TypeName").Params().String().Add(oneLine(Return(Lit(s.TypeName)))))
	if s.IsResource() {
		f.Add(recv().Id("ResourceType").Params().String().Add(oneLine(Return(Lit(s.TypeName)))))
	}
	f.Add(recv().Id("Descriptor").Params().Op("*").Qual(modelPkg, "Descriptor").Add(oneLine(Return(Id(descriptorVar(s))))))
	f.Add(recv().Id("HasChildren").Params().Bool().Add(oneLine(Return(Qual(modelPkg, "HasChildren").Call(Id(rcv))))))
	f.Add(recv().Id("Hash").Params().Uint64().Add(oneLine(Return(
		Id(rcv).Dot("hash").Dot("Get").Call(Func().Params().Uint64().Add(oneLine(Return(Qual(modelPkg, "ComputeHash").Call(Id(rcv)))))),
	))))
	f.Add(recv().Id("Equal").Params(Id("o").Op("*").Id(s.Name)).Bool().Add(oneLine(Return(Qual(modelPkg, "Equal").Call(Id(rcv), Id("o"))))))
	f.Add(recv().Id("String").Params().String().Add(oneLine(Return(Id("stringify").Call(Id(rcv))))))
	f.Line()
}

func generateGetters(f *File, s ir.Struct) {
	rcv := receiverOf(s)
	for _, sf := range s.Fields {
		field := Id(rcv).Dot(sf.GoName())
		ret := Return(field)
		if sf.Multiple && !sf.Polymorph {
			ret = Return(Qual("slices", "Clone").Call(field))
		}
		f.Func().Params(Id(rcv).Op("*").Id(s.Name)).Id(sf.Accessor()).Params().Add(fieldType(s, sf)).Add(oneLine(ret))
	}
	f.Line()

	f.Commentf("ToBuilder returns a builder initialized with the fields of %s.", rcv)
	f.Func().Params(Id(rcv).Op("*").Id(s.Name)).Id("ToBuilder").Params().Op("*").Id(s.Name + "Builder").Block(
		Return(Op("&").Id(s.Name + "Builder").Custom(multiline("{", "}"), toBuilderValues(s)...)),
	)
	f.Line()
}

func toBuilderValues(s ir.Struct) []Code {
	rcv := receiverOf(s)
	base := baseStructs[s.Base]
	values := []Code{
		Id(baseBuilders[s.Base]).Op(":").Id(rcv).Dot(base).Dot("toBuilder").Call(),
	}
	for _, sf := range s.Fields {
		field := Id(rcv).Dot(sf.GoName())
		if sf.Multiple && !sf.Polymorph {
			field = Qual("slices", "Clip").Call(field)
		}
		values = append(values, Id(sf.GoName()).Op(":").Add(field))
	}
	return values
}

// oneLine renders a function body on the line of its signature.
func oneLine(body Code) *Statement {
	return Custom(Options{Open: "{ ", Close: " }"}, body)
}

func lits(values []string) []Code {
	var codes []Code
	for _, v := range values {
		codes = append(codes, Lit(v))
	}
	return codes
}

// enumerate joins the words as "A, B or C".
func enumerate(words []string) string {
	if len(words) < 2 {
		return strings.Join(words, "")
	}
	return strings.Join(words[:len(words)-1], ", ") + " or " + words[len(words)-1]
}

// sentence turns a short description like "A human's name" into the rest of a
// doc comment sentence.
func sentence(short string) string {
	short = strings.TrimSpace(short)
	if len(short) > 1 && strings.ToUpper(short[1:2]) != short[1:2] {
		short = lowerFirst(short)
	}
	if !strings.HasSuffix(short, ".") {
		short += "."
	}
	return short
}

// wrap breaks text into lines of at most width bytes, at word boundaries.
func wrap(text string, width int) []string {
	var (
		lines []string
		line  string
	)
	for _, word := range strings.Fields(text) {
		if line != "" && len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = ""
		}
		if line != "" {
			line += " "
		}
		line += word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func toGoTypeCasing(s string) string {
	return strcase.ToCamel(s)
}
