// Package generate renders the model packages from the intermediate representation.
package generate

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"unicode"
	"unicode/utf8"

	"github.com/damedic/fhir-model-go/internal/generate/ir"
	. "github.com/dave/jennifer/jen"
)

const (
	moduleName    = "github.com/damedic/fhir-model-go"
	modelPkg      = moduleName + "/model"
	validationPkg = moduleName + "/model/validation"
)

// Generator contributes code to the generated files.
//
// GenerateType is called once per type with the file the type belongs to and
// reports whether it wrote anything. GenerateAdditional is called once with all
// types and may open further files.
type Generator interface {
	GenerateType(f *File, rt ir.ResourceOrType) bool
	GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType)
}

type NoOpGenerator struct{}

func (g NoOpGenerator) GenerateType(f *File, rt ir.ResourceOrType) bool { return false }
func (g NoOpGenerator) GenerateAdditional(f func(fileName string, pkgName string) *File, release string, rt []ir.ResourceOrType) {
}

// DefaultGenerators are the generators producing a complete model package.
func DefaultGenerators() []Generator {
	return []Generator{
		TypesGenerator{},
		BuilderGenerator{},
		ValueSetsGenerator{},
		RegistryGenerator{},
		ModelPkgDocGenerator{},
	}
}

// Files runs the generators over the types and returns the produced files by file name.
//
// Primitive types are skipped, their implementation is maintained by hand.
// Complex types share the datatypes file, every resource gets its own file.
func Files(pkgPath, release string, types []ir.ResourceOrType, generators ...Generator) map[string]*File {
	pkgName := path.Base(pkgPath)
	files := map[string]*File{}

	newFile := func(pkg string) *File {
		f := NewFilePathName(pkgPath, pkg)
		f.HeaderComment("Code generated by fhirgen. DO NOT EDIT.")
		return f
	}
	open := func(fileName, pkg string) *File {
		if f, ok := files[fileName]; ok {
			return f
		}
		f := newFile(pkg)
		files[fileName] = f
		return f
	}

	for _, g := range generators {
		for _, rt := range types {
			if rt.IsPrimitive {
				continue
			}
			fileName := fileNameOf(rt)
			f, ok := files[fileName]
			if !ok {
				f = newFile(pkgName)
			}
			if g.GenerateType(f, rt) && !ok {
				files[fileName] = f
			}
		}
		g.GenerateAdditional(open, release, types)
	}

	return files
}

// WriteAll renders the files into dir.
func WriteAll(dir string, files map[string]*File) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for name, f := range files {
		if err := f.Save(filepath.Join(dir, name+".go")); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

func fileNameOf(rt ir.ResourceOrType) string {
	if rt.IsResource {
		return rt.FileName
	}
	return "datatypes"
}

func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[n:]
}

func receiverOf(s ir.Struct) string {
	if s.IsResource() {
		return "r"
	}
	return "e"
}

func choiceName(s ir.Struct, f ir.StructField) string {
	return s.Name + f.Accessor()
}

func choiceTypesVar(s ir.Struct, f ir.StructField) string {
	return lowerFirst(choiceName(s, f)) + "Types"
}

func descriptorVar(s ir.Struct) string {
	return lowerFirst(s.Name) + "Descriptor"
}

func bindingVar(b *ir.Binding) string {
	return lowerFirst(toGoTypeCasing(b.Name)) + "Binding"
}

func multiline(open, close string) Options {
	return Options{Open: open, Close: close, Separator: ",", Multi: true}
}
