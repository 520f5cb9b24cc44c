package generate

import (
	"fmt"
	"strings"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

type ModelPkgDocGenerator struct {
	NoOpGenerator
}

func (g ModelPkgDocGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
	file := f("doc", strings.ToLower(release))
	file.PackageComment(fmt.Sprintf("Package %s holds the FHIR %s object model.", strings.ToLower(release), release))
	file.PackageComment("")
	file.PackageComment("Every type is immutable once built and can only be obtained through its")
	file.PackageComment("builder, which validates the structural rules of the type on Build.")
	file.PackageComment("Cross-field invariants are declared on the type descriptors but not")
	file.PackageComment("enforced, see package constraint.")
}
