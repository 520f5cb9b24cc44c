package generate

import (
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

// RegistryGenerator writes the lookup of descriptors and builders by FHIR type name.
// Primitive types are listed as well, their declarations are maintained by hand
// under the same naming scheme.
type RegistryGenerator struct {
	NoOpGenerator
}

func (g RegistryGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f("registry", strings.ToLower(release))

	file.Type().Id("typeEntry").Struct(
		Id("descriptor").Op("*").Qual(modelPkg, "Descriptor"),
		Id("builder").Func().Params().Qual(modelPkg, "Builder"),
	)
	file.Line()

	file.Var().Id("types").Op("=").Map(String()).Id("typeEntry").Custom(multiline("{", "}"), registryEntries(rt)...)
	file.Line()

	file.Type().Id("registry").Struct()
	file.Line()

	file.Comment("Registry resolves the FHIR type names of this package, including backbone")
	file.Comment(`element names such as "QuestionnaireResponse.Item".`)
	file.Var().Id("Registry").Qual(modelPkg, "Registry").Op("=").Id("registry").Values()
	file.Line()

	file.Func().Params(Id("registry")).Id("Descriptor").Params(Id("typeName").String()).Params(Op("*").Qual(modelPkg, "Descriptor"), Bool()).Block(
		List(Id("t"), Id("ok")).Op(":=").Id("types").Index(Id("typeName")),
		Return(Id("t").Dot("descriptor"), Id("ok")),
	)
	file.Line()

	file.Func().Params(Id("registry")).Id("NewBuilder").Params(Id("typeName").String()).Params(Qual(modelPkg, "Builder"), Bool()).Block(
		List(Id("t"), Id("ok")).Op(":=").Id("types").Index(Id("typeName")),
		If(Op("!").Id("ok")).Block(Return(Nil(), False())),
		Return(Id("t").Dot("builder").Call(), True()),
	)
	file.Line()

	file.Comment("TypeNames returns the sorted names of all types of this package.")
	file.Func().Id("TypeNames").Params().Index().String().Block(
		Return(Qual("slices", "Sorted").Call(Qual("maps", "Keys").Call(Id("types")))),
	)
	file.Line()

	file.Comment("ResourceTypes returns the sorted names of all resource types of this package.")
	file.Func().Id("ResourceTypes").Params().Index().String().Block(
		Var().Id("names").Index().String(),
		For(List(Id("_"), Id("n")).Op(":=").Range().Id("TypeNames").Call()).Block(
			If(Id("types").Index(Id("n")).Dot("descriptor").Dot("Kind").Op("==").Qual(modelPkg, "ResourceKind")).Block(
				Id("names").Op("=").Append(Id("names"), Id("n")),
			),
		),
		Return(Id("names")),
	)
}

func registryEntries(rt []ir.ResourceOrType) []Code {
	var entries []Code
	for _, t := range rt {
		if t.IsPrimitive {
			name := toGoTypeCasing(t.Name)
			entries = append(entries, registryEntry(t.Name, name))
			continue
		}
		for _, s := range t.Structs {
			entries = append(entries, registryEntry(s.TypeName, s.Name))
		}
	}
	return entries
}

func registryEntry(typeName, goName string) Code {
	return Lit(typeName).Op(":").Values(
		Id(lowerFirst(goName)+"Descriptor"),
		Func().Params().Qual(modelPkg, "Builder").Add(oneLine(Return(Id("New"+goName+"Builder").Call()))),
	)
}
