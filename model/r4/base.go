package r4

import (
	"slices"

	"github.com/damedic/fhir-model-go/fhirjson"
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

type elementHolder interface {
	model.Element
	element() *elementBase
}

type backboneHolder interface {
	elementHolder
	backbone() *backboneElementBase
}

type resourceHolder interface {
	model.Element
	resource() *resourceBase
}

type domainResourceHolder interface {
	resourceHolder
	domainResource() *domainResourceBase
}

// elementBase holds the fields every element carries.
type elementBase struct {
	id        string
	extension []*Extension
}

func (b *elementBase) element() *elementBase { return b }

// Id returns the element id, used for references within a resource.
func (b *elementBase) Id() (string, bool) { return b.id, b.id != "" }

// Extension returns a copy of the extensions.
func (b *elementBase) Extension() []*Extension { return slices.Clone(b.extension) }

// backboneElementBase adds modifier extensions to elementBase.
type backboneElementBase struct {
	elementBase
	modifierExtension []*Extension
}

func (b *backboneElementBase) backbone() *backboneElementBase { return b }

// ModifierExtension returns a copy of the modifier extensions.
func (b *backboneElementBase) ModifierExtension() []*Extension {
	return slices.Clone(b.modifierExtension)
}

// resourceBase holds the fields every resource carries.
type resourceBase struct {
	id            string
	meta          *Meta
	implicitRules *Uri
	language      *Code
}

func (b *resourceBase) resource() *resourceBase { return b }

// Id returns the logical id of the resource.
func (b *resourceBase) Id() (string, bool) { return b.id, b.id != "" }

// ResourceId returns the logical id of the resource.
func (b *resourceBase) ResourceId() (string, bool) { return b.Id() }

func (b *resourceBase) Meta() *Meta { return b.meta }
func (b *resourceBase) ImplicitRules() *Uri { return b.implicitRules }
func (b *resourceBase) Language() *Code { return b.language }

// domainResourceBase adds narrative, contained resources and extensions to resourceBase.
type domainResourceBase struct {
	resourceBase
	text              *Narrative
	contained         []model.Resource
	extension         []*Extension
	modifierExtension []*Extension
}

func (b *domainResourceBase) domainResource() *domainResourceBase { return b }

func (b *domainResourceBase) Text() *Narrative { return b.text }

// Contained returns a copy of the contained resources.
func (b *domainResourceBase) Contained() []model.Resource { return slices.Clone(b.contained) }

// Extension returns a copy of the extensions.
func (b *domainResourceBase) Extension() []*Extension { return slices.Clone(b.extension) }

// ModifierExtension returns a copy of the modifier extensions.
func (b *domainResourceBase) ModifierExtension() []*Extension {
	return slices.Clone(b.modifierExtension)
}

// DomainResource is implemented by all resources with narrative, contained resources and extensions.
type DomainResource interface {
	model.Resource
	Text() *Narrative
	Contained() []model.Resource
	Extension() []*Extension
	ModifierExtension() []*Extension
}

func elementFields() []model.FieldDescriptor {
	return []model.FieldDescriptor{
		model.ValueField("id", func(e elementHolder) (any, bool) {
			id := e.element().id
			return id, id != ""
		}),
		model.ListField("extension", "Extension", func(e elementHolder) []*Extension {
			return e.element().extension
		}),
	}
}

func backboneElementFields() []model.FieldDescriptor {
	return append(elementFields(),
		model.ListField("modifierExtension", "Extension", func(e backboneHolder) []*Extension {
			return e.backbone().modifierExtension
		}),
	)
}

func resourceFields() []model.FieldDescriptor {
	return []model.FieldDescriptor{
		model.ValueField("id", func(r resourceHolder) (any, bool) {
			id := r.resource().id
			return id, id != ""
		}),
		model.ElementField("meta", "Meta", func(r resourceHolder) *Meta { return r.resource().meta }),
		model.ElementField("implicitRules", "uri", func(r resourceHolder) *Uri { return r.resource().implicitRules }),
		model.ElementField("language", "code", func(r resourceHolder) *Code { return r.resource().language }),
	}
}

func domainResourceFields() []model.FieldDescriptor {
	return append(resourceFields(),
		model.ElementField("text", "Narrative", func(r domainResourceHolder) *Narrative {
			return r.domainResource().text
		}),
		model.ResourceListField("contained", func(r domainResourceHolder) []model.Resource {
			return r.domainResource().contained
		}),
		model.ListField("extension", "Extension", func(r domainResourceHolder) []*Extension {
			return r.domainResource().extension
		}),
		model.ListField("modifierExtension", "Extension", func(r domainResourceHolder) []*Extension {
			return r.domainResource().modifierExtension
		}),
	)
}

var domainResourceConstraints = []model.Constraint{
	{
		Key:        "dom-2",
		Severity:   "error",
		Human:      "If the resource is contained in another resource, it SHALL NOT contain nested Resources",
		Expression: "contained.contained.empty()",
	},
	{
		Key:        "dom-4",
		Severity:   "error",
		Human:      "If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated",
		Expression: "contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()",
	},
	{
		Key:        "dom-5",
		Severity:   "error",
		Human:      "If a resource is contained in another resource, it SHALL NOT have a security label",
		Expression: "contained.meta.security.empty()",
	},
	{
		Key:        "dom-6",
		Severity:   "warning",
		Human:      "A resource should have narrative for robust management",
		Expression: "text.`div`.exists()",
	},
}

// checker keeps the first error of a sequence of checks.
type checker struct {
	err error
}

func (c *checker) check(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *checker) result(typeName string) error {
	return validation.WrapBuild(typeName, c.err)
}

func checkList[T any](c *checker, list []T, field string) []T {
	l, err := validation.CheckList(list, field)
	c.check(err)
	return l
}

func checkNonEmptyList[T any](c *checker, list []T, field string) []T {
	l, err := validation.CheckNonEmptyList(list, field)
	c.check(err)
	return l
}

type elementBuilder struct {
	id        string
	extension []*Extension
}

func (b *elementBase) toBuilder() elementBuilder {
	return elementBuilder{
		id:        b.id,
		extension: slices.Clip(b.extension),
	}
}

func (b *elementBuilder) setElementField(typeName, name string, value any) error {
	switch name {
	case "id":
		return validation.Assign(&b.id, name, value)
	case "extension":
		return validation.AppendTo(&b.extension, name, value)
	}
	return &validation.UnknownFieldError{Type: typeName, Field: name}
}

func (b *elementBuilder) build(c *checker) elementBase {
	return elementBase{
		id:        b.id,
		extension: checkList(c, b.extension, "extension"),
	}
}

type backboneElementBuilder struct {
	elementBuilder
	modifierExtension []*Extension
}

func (b *backboneElementBase) toBuilder() backboneElementBuilder {
	return backboneElementBuilder{
		elementBuilder:    b.elementBase.toBuilder(),
		modifierExtension: slices.Clip(b.modifierExtension),
	}
}

func (b *backboneElementBuilder) setBackboneField(typeName, name string, value any) error {
	if name == "modifierExtension" {
		return validation.AppendTo(&b.modifierExtension, name, value)
	}
	return b.setElementField(typeName, name, value)
}

func (b *backboneElementBuilder) build(c *checker) backboneElementBase {
	return backboneElementBase{
		elementBase:       b.elementBuilder.build(c),
		modifierExtension: checkList(c, b.modifierExtension, "modifierExtension"),
	}
}

type resourceBuilder struct {
	id            string
	meta          *Meta
	implicitRules *Uri
	language      *Code
}

func (b *resourceBase) toBuilder() resourceBuilder {
	return resourceBuilder{
		id:            b.id,
		meta:          b.meta,
		implicitRules: b.implicitRules,
		language:      b.language,
	}
}

func (b *resourceBuilder) setResourceField(typeName, name string, value any) error {
	switch name {
	case "id":
		return validation.Assign(&b.id, name, value)
	case "meta":
		return validation.Assign(&b.meta, name, value)
	case "implicitRules":
		return validation.Assign(&b.implicitRules, name, value)
	case "language":
		return validation.Assign(&b.language, name, value)
	}
	return &validation.UnknownFieldError{Type: typeName, Field: name}
}

func (b *resourceBuilder) build(c *checker) resourceBase {
	if b.id != "" {
		c.check(checkId(b.id, "id"))
	}
	return resourceBase{
		id:            b.id,
		meta:          b.meta,
		implicitRules: b.implicitRules,
		language:      b.language,
	}
}

type domainResourceBuilder struct {
	resourceBuilder
	text              *Narrative
	contained         []model.Resource
	extension         []*Extension
	modifierExtension []*Extension
}

func (b *domainResourceBase) toBuilder() domainResourceBuilder {
	return domainResourceBuilder{
		resourceBuilder:   b.resourceBase.toBuilder(),
		text:              b.text,
		contained:         slices.Clip(b.contained),
		extension:         slices.Clip(b.extension),
		modifierExtension: slices.Clip(b.modifierExtension),
	}
}

func (b *domainResourceBuilder) setDomainResourceField(typeName, name string, value any) error {
	switch name {
	case "text":
		return validation.Assign(&b.text, name, value)
	case "contained":
		return validation.AppendTo(&b.contained, name, value)
	case "extension":
		return validation.AppendTo(&b.extension, name, value)
	case "modifierExtension":
		return validation.AppendTo(&b.modifierExtension, name, value)
	}
	return b.setResourceField(typeName, name, value)
}

func (b *domainResourceBuilder) build(c *checker) domainResourceBase {
	return domainResourceBase{
		resourceBase:      b.resourceBuilder.build(c),
		text:              b.text,
		contained:         checkList(c, b.contained, "contained"),
		extension:         checkList(c, b.extension, "extension"),
		modifierExtension: checkList(c, b.modifierExtension, "modifierExtension"),
	}
}

func stringify(e model.Element) string {
	buf, err := fhirjson.MarshalIndent(e, "", "  ")
	if err != nil {
		return "null"
	}
	return string(buf)
}
