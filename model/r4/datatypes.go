package r4

import (
	"slices"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

// Extension is an additional content defined by implementations, identified by url.
type Extension struct {
	elementBase
	url   string
	value ExtensionValue

	hash model.HashCache
}

// ExtensionValue is the closed set of types Extension.value[x] can hold: Base64Binary,
// Boolean, Canonical, Code, Date, DateTime, Decimal, Id, Instant, Integer, Markdown,
// PositiveInt, String, Time, UnsignedInt, Uri, Url, Uuid, Address, Annotation, Attachment,
// CodeableConcept, Coding, ContactPoint, HumanName, Identifier, Meta, Period, Quantity,
// Range, Ratio, Reference or Timing.
type ExtensionValue interface {
	model.Element
	isExtensionValue()
}

var extensionValueTypes = []string{"base64Binary", "boolean", "canonical", "code", "date", "dateTime", "decimal", "id", "instant", "integer", "markdown", "positiveInt", "string", "time", "unsignedInt", "uri", "url", "uuid", "Address", "Annotation", "Attachment", "CodeableConcept", "Coding", "ContactPoint", "HumanName", "Identifier", "Meta", "Period", "Quantity", "Range", "Ratio", "Reference", "Timing"}

func (*Base64Binary) isExtensionValue() {}
func (*Boolean) isExtensionValue() {}
func (*Canonical) isExtensionValue() {}
func (*Code) isExtensionValue() {}
func (*Date) isExtensionValue() {}
func (*DateTime) isExtensionValue() {}
func (*Decimal) isExtensionValue() {}
func (*Id) isExtensionValue() {}
func (*Instant) isExtensionValue() {}
func (*Integer) isExtensionValue() {}
func (*Markdown) isExtensionValue() {}
func (*PositiveInt) isExtensionValue() {}
func (*String) isExtensionValue() {}
func (*Time) isExtensionValue() {}
func (*UnsignedInt) isExtensionValue() {}
func (*Uri) isExtensionValue() {}
func (*Url) isExtensionValue() {}
func (*Uuid) isExtensionValue() {}
func (*Address) isExtensionValue() {}
func (*Annotation) isExtensionValue() {}
func (*Attachment) isExtensionValue() {}
func (*CodeableConcept) isExtensionValue() {}
func (*Coding) isExtensionValue() {}
func (*ContactPoint) isExtensionValue() {}
func (*HumanName) isExtensionValue() {}
func (*Identifier) isExtensionValue() {}
func (*Meta) isExtensionValue() {}
func (*Period) isExtensionValue() {}
func (*Quantity) isExtensionValue() {}
func (*Range) isExtensionValue() {}
func (*Ratio) isExtensionValue() {}
func (*Reference) isExtensionValue() {}
func (*Timing) isExtensionValue() {}

var extensionDescriptor = model.NewDescriptor("Extension", model.ComplexKind, append(elementFields(),
	model.ValueField("url", func(e *Extension) (any, bool) { return e.url, e.url != "" }).Require(),
	model.ChoiceField("value", func(e *Extension) ExtensionValue { return e.value }, extensionValueTypes...),
)...).WithConstraints(
	model.Constraint{
		Key:        "ext-1",
		Severity:   "error",
		Human:      "Must have either extensions or value[x], not both",
		Expression: "extension.exists() != value.exists()",
	},
)

func (e *Extension) TypeName() string { return "Extension" }
func (e *Extension) Descriptor() *model.Descriptor { return extensionDescriptor }
func (e *Extension) HasChildren() bool { return model.HasChildren(e) }
func (e *Extension) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Extension) Equal(o *Extension) bool { return model.Equal(e, o) }
func (e *Extension) String() string { return stringify(e) }

func (e *Extension) Url() string { return e.url }
func (e *Extension) Value() ExtensionValue { return e.value }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Extension) ToBuilder() *ExtensionBuilder {
	return &ExtensionBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		url:            e.url,
		value:          e.value,
	}
}

// ExtensionBuilder builds an Extension.
type ExtensionBuilder struct {
	elementBuilder
	url   string
	value ExtensionValue
}

func NewExtensionBuilder() *ExtensionBuilder { return &ExtensionBuilder{} }

func (b *ExtensionBuilder) SetId(id string) *ExtensionBuilder {
	b.id = id
	return b
}

func (b *ExtensionBuilder) AddExtension(v ...*Extension) *ExtensionBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *ExtensionBuilder) SetUrl(v string) *ExtensionBuilder {
	b.url = v
	return b
}

func (b *ExtensionBuilder) SetValue(v ExtensionValue) *ExtensionBuilder {
	b.value = v
	return b
}

func (b *ExtensionBuilder) SetField(name string, value any) error {
	switch name {
	case "url":
		return validation.Assign(&b.url, name, value)
	case "value":
		return validation.AssignChoice(&b.value, name, value, extensionValueTypes...)
	}
	return b.setElementField("Extension", name, value)
}

func (b *ExtensionBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Extension.
func (b *ExtensionBuilder) Build() (*Extension, error) {
	var c checker
	e := &Extension{
		elementBase: b.elementBuilder.build(&c),
		url:         b.url,
		value:       b.value,
	}
	c.check(validation.RequireNonEmpty(e.url, "url"))
	c.check(validation.ChoiceElement(e.value, "value", extensionValueTypes...))
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Extension")
	}
	return e, nil
}

// Coding is a reference to a code defined by a terminology system.
type Coding struct {
	elementBase
	system       *Uri
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean

	hash model.HashCache
}

var codingDescriptor = model.NewDescriptor("Coding", model.ComplexKind, append(elementFields(),
	model.ElementField("system", "uri", func(e *Coding) *Uri { return e.system }),
	model.ElementField("version", "string", func(e *Coding) *String { return e.version }),
	model.ElementField("code", "code", func(e *Coding) *Code { return e.code }),
	model.ElementField("display", "string", func(e *Coding) *String { return e.display }),
	model.ElementField("userSelected", "boolean", func(e *Coding) *Boolean { return e.userSelected }),
)...)

func (e *Coding) TypeName() string { return "Coding" }
func (e *Coding) Descriptor() *model.Descriptor { return codingDescriptor }
func (e *Coding) HasChildren() bool { return model.HasChildren(e) }
func (e *Coding) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Coding) Equal(o *Coding) bool { return model.Equal(e, o) }
func (e *Coding) String() string { return stringify(e) }

func (e *Coding) System() *Uri { return e.system }
func (e *Coding) Version() *String { return e.version }
func (e *Coding) Code() *Code { return e.code }
func (e *Coding) Display() *String { return e.display }
func (e *Coding) UserSelected() *Boolean { return e.userSelected }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Coding) ToBuilder() *CodingBuilder {
	return &CodingBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		system:         e.system,
		version:        e.version,
		code:           e.code,
		display:        e.display,
		userSelected:   e.userSelected,
	}
}

// CodingBuilder builds a Coding.
type CodingBuilder struct {
	elementBuilder
	system       *Uri
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
}

func NewCodingBuilder() *CodingBuilder { return &CodingBuilder{} }

func (b *CodingBuilder) SetId(id string) *CodingBuilder {
	b.id = id
	return b
}

func (b *CodingBuilder) AddExtension(v ...*Extension) *CodingBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *CodingBuilder) SetSystem(v *Uri) *CodingBuilder {
	b.system = v
	return b
}

func (b *CodingBuilder) SetVersion(v *String) *CodingBuilder {
	b.version = v
	return b
}

func (b *CodingBuilder) SetCode(v *Code) *CodingBuilder {
	b.code = v
	return b
}

func (b *CodingBuilder) SetDisplay(v *String) *CodingBuilder {
	b.display = v
	return b
}

func (b *CodingBuilder) SetUserSelected(v *Boolean) *CodingBuilder {
	b.userSelected = v
	return b
}

func (b *CodingBuilder) SetField(name string, value any) error {
	switch name {
	case "system":
		return validation.Assign(&b.system, name, value)
	case "version":
		return validation.Assign(&b.version, name, value)
	case "code":
		return validation.Assign(&b.code, name, value)
	case "display":
		return validation.Assign(&b.display, name, value)
	case "userSelected":
		return validation.Assign(&b.userSelected, name, value)
	}
	return b.setElementField("Coding", name, value)
}

func (b *CodingBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Coding.
func (b *CodingBuilder) Build() (*Coding, error) {
	var c checker
	e := &Coding{
		elementBase:  b.elementBuilder.build(&c),
		system:       b.system,
		version:      b.version,
		code:         b.code,
		display:      b.display,
		userSelected: b.userSelected,
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Coding")
	}
	return e, nil
}

// CodeableConcept is a concept that may be defined by a formal reference to a terminology or ontology or may be provided by text.
type CodeableConcept struct {
	elementBase
	coding []*Coding
	text   *String

	hash model.HashCache
}

var codeableConceptDescriptor = model.NewDescriptor("CodeableConcept", model.ComplexKind, append(elementFields(),
	model.ListField("coding", "Coding", func(e *CodeableConcept) []*Coding { return e.coding }),
	model.ElementField("text", "string", func(e *CodeableConcept) *String { return e.text }),
)...)

func (e *CodeableConcept) TypeName() string { return "CodeableConcept" }
func (e *CodeableConcept) Descriptor() *model.Descriptor { return codeableConceptDescriptor }
func (e *CodeableConcept) HasChildren() bool { return model.HasChildren(e) }
func (e *CodeableConcept) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *CodeableConcept) Equal(o *CodeableConcept) bool { return model.Equal(e, o) }
func (e *CodeableConcept) String() string { return stringify(e) }

func (e *CodeableConcept) Coding() []*Coding { return slices.Clone(e.coding) }
func (e *CodeableConcept) Text() *String { return e.text }

// ToBuilder returns a builder initialized with the fields of e.
func (e *CodeableConcept) ToBuilder() *CodeableConceptBuilder {
	return &CodeableConceptBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		coding:         slices.Clip(e.coding),
		text:           e.text,
	}
}

// CodeableConceptBuilder builds a CodeableConcept.
type CodeableConceptBuilder struct {
	elementBuilder
	coding []*Coding
	text   *String
}

func NewCodeableConceptBuilder() *CodeableConceptBuilder { return &CodeableConceptBuilder{} }

func (b *CodeableConceptBuilder) SetId(id string) *CodeableConceptBuilder {
	b.id = id
	return b
}

func (b *CodeableConceptBuilder) AddExtension(v ...*Extension) *CodeableConceptBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *CodeableConceptBuilder) AddCoding(v ...*Coding) *CodeableConceptBuilder {
	b.coding = append(b.coding, v...)
	return b
}

func (b *CodeableConceptBuilder) SetText(v *String) *CodeableConceptBuilder {
	b.text = v
	return b
}

func (b *CodeableConceptBuilder) SetField(name string, value any) error {
	switch name {
	case "coding":
		return validation.AppendTo(&b.coding, name, value)
	case "text":
		return validation.Assign(&b.text, name, value)
	}
	return b.setElementField("CodeableConcept", name, value)
}

func (b *CodeableConceptBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the CodeableConcept.
func (b *CodeableConceptBuilder) Build() (*CodeableConcept, error) {
	var c checker
	e := &CodeableConcept{
		elementBase: b.elementBuilder.build(&c),
		coding:      checkList(&c, b.coding, "coding"),
		text:        b.text,
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("CodeableConcept")
	}
	return e, nil
}

// Identifier is a numeric or alphanumeric string that is associated with a single object or entity within a given system.
type Identifier struct {
	elementBase
	use      *Code
	typ      *CodeableConcept
	system   *Uri
	value    *String
	period   *Period
	assigner *Reference

	hash model.HashCache
}

var identifierDescriptor = model.NewDescriptor("Identifier", model.ComplexKind, append(elementFields(),
	model.ElementField("use", "code", func(e *Identifier) *Code { return e.use }),
	model.ElementField("type", "CodeableConcept", func(e *Identifier) *CodeableConcept { return e.typ }),
	model.ElementField("system", "uri", func(e *Identifier) *Uri { return e.system }),
	model.ElementField("value", "string", func(e *Identifier) *String { return e.value }),
	model.ElementField("period", "Period", func(e *Identifier) *Period { return e.period }),
	model.ElementField("assigner", "Reference", func(e *Identifier) *Reference { return e.assigner }).WithTargets("Organization"),
)...)

func (e *Identifier) TypeName() string { return "Identifier" }
func (e *Identifier) Descriptor() *model.Descriptor { return identifierDescriptor }
func (e *Identifier) HasChildren() bool { return model.HasChildren(e) }
func (e *Identifier) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Identifier) Equal(o *Identifier) bool { return model.Equal(e, o) }
func (e *Identifier) String() string { return stringify(e) }

func (e *Identifier) Use() *Code { return e.use }
func (e *Identifier) Type() *CodeableConcept { return e.typ }
func (e *Identifier) System() *Uri { return e.system }
func (e *Identifier) Value() *String { return e.value }
func (e *Identifier) Period() *Period { return e.period }
func (e *Identifier) Assigner() *Reference { return e.assigner }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Identifier) ToBuilder() *IdentifierBuilder {
	return &IdentifierBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		use:            e.use,
		typ:            e.typ,
		system:         e.system,
		value:          e.value,
		period:         e.period,
		assigner:       e.assigner,
	}
}

// IdentifierBuilder builds an Identifier.
type IdentifierBuilder struct {
	elementBuilder
	use      *Code
	typ      *CodeableConcept
	system   *Uri
	value    *String
	period   *Period
	assigner *Reference
}

func NewIdentifierBuilder() *IdentifierBuilder { return &IdentifierBuilder{} }

func (b *IdentifierBuilder) SetId(id string) *IdentifierBuilder {
	b.id = id
	return b
}

func (b *IdentifierBuilder) AddExtension(v ...*Extension) *IdentifierBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *IdentifierBuilder) SetUse(v *Code) *IdentifierBuilder {
	b.use = v
	return b
}

func (b *IdentifierBuilder) SetType(v *CodeableConcept) *IdentifierBuilder {
	b.typ = v
	return b
}

func (b *IdentifierBuilder) SetSystem(v *Uri) *IdentifierBuilder {
	b.system = v
	return b
}

func (b *IdentifierBuilder) SetValue(v *String) *IdentifierBuilder {
	b.value = v
	return b
}

func (b *IdentifierBuilder) SetPeriod(v *Period) *IdentifierBuilder {
	b.period = v
	return b
}

func (b *IdentifierBuilder) SetAssigner(v *Reference) *IdentifierBuilder {
	b.assigner = v
	return b
}

func (b *IdentifierBuilder) SetField(name string, value any) error {
	switch name {
	case "use":
		return validation.Assign(&b.use, name, value)
	case "type":
		return validation.Assign(&b.typ, name, value)
	case "system":
		return validation.Assign(&b.system, name, value)
	case "value":
		return validation.Assign(&b.value, name, value)
	case "period":
		return validation.Assign(&b.period, name, value)
	case "assigner":
		return validation.Assign(&b.assigner, name, value)
	}
	return b.setElementField("Identifier", name, value)
}

func (b *IdentifierBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Identifier.
func (b *IdentifierBuilder) Build() (*Identifier, error) {
	var c checker
	e := &Identifier{
		elementBase: b.elementBuilder.build(&c),
		use:         b.use,
		typ:         b.typ,
		system:      b.system,
		value:       b.value,
		period:      b.period,
		assigner:    b.assigner,
	}
	c.check(validation.CheckReferenceType(e.assigner, "assigner", "Organization"))
	identifierUseBinding.check(&c, e.use, "use")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Identifier")
	}
	return e, nil
}

// Reference is a reference from one resource to another.
type Reference struct {
	elementBase
	reference  *String
	typ        *Uri
	identifier *Identifier
	display    *String

	hash model.HashCache
}

var referenceDescriptor = model.NewDescriptor("Reference", model.ComplexKind, append(elementFields(),
	model.ElementField("reference", "string", func(e *Reference) *String { return e.reference }),
	model.ElementField("type", "uri", func(e *Reference) *Uri { return e.typ }),
	model.ElementField("identifier", "Identifier", func(e *Reference) *Identifier { return e.identifier }),
	model.ElementField("display", "string", func(e *Reference) *String { return e.display }),
)...)

func (e *Reference) TypeName() string { return "Reference" }
func (e *Reference) Descriptor() *model.Descriptor { return referenceDescriptor }
func (e *Reference) HasChildren() bool { return model.HasChildren(e) }
func (e *Reference) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Reference) Equal(o *Reference) bool { return model.Equal(e, o) }
func (e *Reference) String() string { return stringify(e) }

func (e *Reference) Reference() *String { return e.reference }
func (e *Reference) Type() *Uri { return e.typ }
func (e *Reference) Identifier() *Identifier { return e.identifier }
func (e *Reference) Display() *String { return e.display }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Reference) ToBuilder() *ReferenceBuilder {
	return &ReferenceBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		reference:      e.reference,
		typ:            e.typ,
		identifier:     e.identifier,
		display:        e.display,
	}
}

// ReferenceBuilder builds a Reference.
type ReferenceBuilder struct {
	elementBuilder
	reference  *String
	typ        *Uri
	identifier *Identifier
	display    *String
}

func NewReferenceBuilder() *ReferenceBuilder { return &ReferenceBuilder{} }

func (b *ReferenceBuilder) SetId(id string) *ReferenceBuilder {
	b.id = id
	return b
}

func (b *ReferenceBuilder) AddExtension(v ...*Extension) *ReferenceBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *ReferenceBuilder) SetReference(v *String) *ReferenceBuilder {
	b.reference = v
	return b
}

func (b *ReferenceBuilder) SetType(v *Uri) *ReferenceBuilder {
	b.typ = v
	return b
}

func (b *ReferenceBuilder) SetIdentifier(v *Identifier) *ReferenceBuilder {
	b.identifier = v
	return b
}

func (b *ReferenceBuilder) SetDisplay(v *String) *ReferenceBuilder {
	b.display = v
	return b
}

func (b *ReferenceBuilder) SetField(name string, value any) error {
	switch name {
	case "reference":
		return validation.Assign(&b.reference, name, value)
	case "type":
		return validation.Assign(&b.typ, name, value)
	case "identifier":
		return validation.Assign(&b.identifier, name, value)
	case "display":
		return validation.Assign(&b.display, name, value)
	}
	return b.setElementField("Reference", name, value)
}

func (b *ReferenceBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Reference.
func (b *ReferenceBuilder) Build() (*Reference, error) {
	var c checker
	e := &Reference{
		elementBase: b.elementBuilder.build(&c),
		reference:   b.reference,
		typ:         b.typ,
		identifier:  b.identifier,
		display:     b.display,
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Reference")
	}
	return e, nil
}

// Period is a time period defined by a start and end date and optionally time.
type Period struct {
	elementBase
	start *DateTime
	end   *DateTime

	hash model.HashCache
}

var periodDescriptor = model.NewDescriptor("Period", model.ComplexKind, append(elementFields(),
	model.ElementField("start", "dateTime", func(e *Period) *DateTime { return e.start }),
	model.ElementField("end", "dateTime", func(e *Period) *DateTime { return e.end }),
)...).WithConstraints(
	model.Constraint{
		Key:        "per-1",
		Severity:   "error",
		Human:      "If present, start SHALL have a lower value than end",
		Expression: "start.hasValue().not() or end.hasValue().not() or (start <= end)",
	},
)

func (e *Period) TypeName() string { return "Period" }
func (e *Period) Descriptor() *model.Descriptor { return periodDescriptor }
func (e *Period) HasChildren() bool { return model.HasChildren(e) }
func (e *Period) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Period) Equal(o *Period) bool { return model.Equal(e, o) }
func (e *Period) String() string { return stringify(e) }

func (e *Period) Start() *DateTime { return e.start }
func (e *Period) End() *DateTime { return e.end }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Period) ToBuilder() *PeriodBuilder {
	return &PeriodBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		start:          e.start,
		end:            e.end,
	}
}

// PeriodBuilder builds a Period.
type PeriodBuilder struct {
	elementBuilder
	start *DateTime
	end   *DateTime
}

func NewPeriodBuilder() *PeriodBuilder { return &PeriodBuilder{} }

func (b *PeriodBuilder) SetId(id string) *PeriodBuilder {
	b.id = id
	return b
}

func (b *PeriodBuilder) AddExtension(v ...*Extension) *PeriodBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *PeriodBuilder) SetStart(v *DateTime) *PeriodBuilder {
	b.start = v
	return b
}

func (b *PeriodBuilder) SetEnd(v *DateTime) *PeriodBuilder {
	b.end = v
	return b
}

func (b *PeriodBuilder) SetField(name string, value any) error {
	switch name {
	case "start":
		return validation.Assign(&b.start, name, value)
	case "end":
		return validation.Assign(&b.end, name, value)
	}
	return b.setElementField("Period", name, value)
}

func (b *PeriodBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Period.
func (b *PeriodBuilder) Build() (*Period, error) {
	var c checker
	e := &Period{
		elementBase: b.elementBuilder.build(&c),
		start:       b.start,
		end:         b.end,
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Period")
	}
	return e, nil
}

// Quantity is a measured amount (or an amount that can potentially be measured).
type Quantity struct {
	elementBase
	value      *Decimal
	comparator *Code
	unit       *String
	system     *Uri
	code       *Code

	hash model.HashCache
}

var quantityDescriptor = model.NewDescriptor("Quantity", model.ComplexKind, append(elementFields(),
	model.ElementField("value", "decimal", func(e *Quantity) *Decimal { return e.value }),
	model.ElementField("comparator", "code", func(e *Quantity) *Code { return e.comparator }),
	model.ElementField("unit", "string", func(e *Quantity) *String { return e.unit }),
	model.ElementField("system", "uri", func(e *Quantity) *Uri { return e.system }),
	model.ElementField("code", "code", func(e *Quantity) *Code { return e.code }),
)...).WithConstraints(
	model.Constraint{
		Key:        "qty-3",
		Severity:   "error",
		Human:      "If a code for the unit is present, the system SHALL also be present",
		Expression: "code.empty() or system.exists()",
	},
)

func (e *Quantity) TypeName() string { return "Quantity" }
func (e *Quantity) Descriptor() *model.Descriptor { return quantityDescriptor }
func (e *Quantity) HasChildren() bool { return model.HasChildren(e) }
func (e *Quantity) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Quantity) Equal(o *Quantity) bool { return model.Equal(e, o) }
func (e *Quantity) String() string { return stringify(e) }

func (e *Quantity) Value() *Decimal { return e.value }
func (e *Quantity) Comparator() *Code { return e.comparator }
func (e *Quantity) Unit() *String { return e.unit }
func (e *Quantity) System() *Uri { return e.system }
func (e *Quantity) Code() *Code { return e.code }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Quantity) ToBuilder() *QuantityBuilder {
	return &QuantityBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		value:          e.value,
		comparator:     e.comparator,
		unit:           e.unit,
		system:         e.system,
		code:           e.code,
	}
}

// QuantityBuilder builds a Quantity.
type QuantityBuilder struct {
	elementBuilder
	value      *Decimal
	comparator *Code
	unit       *String
	system     *Uri
	code       *Code
}

func NewQuantityBuilder() *QuantityBuilder { return &QuantityBuilder{} }

func (b *QuantityBuilder) SetId(id string) *QuantityBuilder {
	b.id = id
	return b
}

func (b *QuantityBuilder) AddExtension(v ...*Extension) *QuantityBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *QuantityBuilder) SetValue(v *Decimal) *QuantityBuilder {
	b.value = v
	return b
}

func (b *QuantityBuilder) SetComparator(v *Code) *QuantityBuilder {
	b.comparator = v
	return b
}

func (b *QuantityBuilder) SetUnit(v *String) *QuantityBuilder {
	b.unit = v
	return b
}

func (b *QuantityBuilder) SetSystem(v *Uri) *QuantityBuilder {
	b.system = v
	return b
}

func (b *QuantityBuilder) SetCode(v *Code) *QuantityBuilder {
	b.code = v
	return b
}

func (b *QuantityBuilder) SetField(name string, value any) error {
	switch name {
	case "value":
		return validation.Assign(&b.value, name, value)
	case "comparator":
		return validation.Assign(&b.comparator, name, value)
	case "unit":
		return validation.Assign(&b.unit, name, value)
	case "system":
		return validation.Assign(&b.system, name, value)
	case "code":
		return validation.Assign(&b.code, name, value)
	}
	return b.setElementField("Quantity", name, value)
}

func (b *QuantityBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Quantity.
func (b *QuantityBuilder) Build() (*Quantity, error) {
	var c checker
	e := &Quantity{
		elementBase: b.elementBuilder.build(&c),
		value:       b.value,
		comparator:  b.comparator,
		unit:        b.unit,
		system:      b.system,
		code:        b.code,
	}
	quantityComparatorBinding.check(&c, e.comparator, "comparator")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Quantity")
	}
	return e, nil
}

// Range is a set of ordered Quantities defined by a low and high limit.
type Range struct {
	elementBase
	low  *Quantity
	high *Quantity

	hash model.HashCache
}

var rangeDescriptor = model.NewDescriptor("Range", model.ComplexKind, append(elementFields(),
	model.ElementField("low", "Quantity", func(e *Range) *Quantity { return e.low }),
	model.ElementField("high", "Quantity", func(e *Range) *Quantity { return e.high }),
)...).WithConstraints(
	model.Constraint{
		Key:        "rng-2",
		Severity:   "error",
		Human:      "If present, low SHALL have a lower value than high",
		Expression: "low.empty() or high.empty() or (low <= high)",
	},
)

func (e *Range) TypeName() string { return "Range" }
func (e *Range) Descriptor() *model.Descriptor { return rangeDescriptor }
func (e *Range) HasChildren() bool { return model.HasChildren(e) }
func (e *Range) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Range) Equal(o *Range) bool { return model.Equal(e, o) }
func (e *Range) String() string { return stringify(e) }

func (e *Range) Low() *Quantity { return e.low }
func (e *Range) High() *Quantity { return e.high }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Range) ToBuilder() *RangeBuilder {
	return &RangeBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		low:            e.low,
		high:           e.high,
	}
}

// RangeBuilder builds a Range.
type RangeBuilder struct {
	elementBuilder
	low  *Quantity
	high *Quantity
}

func NewRangeBuilder() *RangeBuilder { return &RangeBuilder{} }

func (b *RangeBuilder) SetId(id string) *RangeBuilder {
	b.id = id
	return b
}

func (b *RangeBuilder) AddExtension(v ...*Extension) *RangeBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *RangeBuilder) SetLow(v *Quantity) *RangeBuilder {
	b.low = v
	return b
}

func (b *RangeBuilder) SetHigh(v *Quantity) *RangeBuilder {
	b.high = v
	return b
}

func (b *RangeBuilder) SetField(name string, value any) error {
	switch name {
	case "low":
		return validation.Assign(&b.low, name, value)
	case "high":
		return validation.Assign(&b.high, name, value)
	}
	return b.setElementField("Range", name, value)
}

func (b *RangeBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Range.
func (b *RangeBuilder) Build() (*Range, error) {
	var c checker
	e := &Range{
		elementBase: b.elementBuilder.build(&c),
		low:         b.low,
		high:        b.high,
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Range")
	}
	return e, nil
}

// Ratio is a relationship of two Quantity values expressed as a numerator and a denominator.
type Ratio struct {
	elementBase
	numerator   *Quantity
	denominator *Quantity

	hash model.HashCache
}

var ratioDescriptor = model.NewDescriptor("Ratio", model.ComplexKind, append(elementFields(),
	model.ElementField("numerator", "Quantity", func(e *Ratio) *Quantity { return e.numerator }),
	model.ElementField("denominator", "Quantity", func(e *Ratio) *Quantity { return e.denominator }),
)...).WithConstraints(
	model.Constraint{
		Key:        "rat-1",
		Severity:   "error",
		Human:      "Numerator and denominator SHALL both be present, or both are absent. If both are absent, there SHALL be some extension present",
		Expression: "(numerator.empty() xor denominator.exists()) and (numerator.exists() or extension.exists())",
	},
)

func (e *Ratio) TypeName() string { return "Ratio" }
func (e *Ratio) Descriptor() *model.Descriptor { return ratioDescriptor }
func (e *Ratio) HasChildren() bool { return model.HasChildren(e) }
func (e *Ratio) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Ratio) Equal(o *Ratio) bool { return model.Equal(e, o) }
func (e *Ratio) String() string { return stringify(e) }

func (e *Ratio) Numerator() *Quantity { return e.numerator }
func (e *Ratio) Denominator() *Quantity { return e.denominator }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Ratio) ToBuilder() *RatioBuilder {
	return &RatioBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		numerator:      e.numerator,
		denominator:    e.denominator,
	}
}

// RatioBuilder builds a Ratio.
type RatioBuilder struct {
	elementBuilder
	numerator   *Quantity
	denominator *Quantity
}

func NewRatioBuilder() *RatioBuilder { return &RatioBuilder{} }

func (b *RatioBuilder) SetId(id string) *RatioBuilder {
	b.id = id
	return b
}

func (b *RatioBuilder) AddExtension(v ...*Extension) *RatioBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *RatioBuilder) SetNumerator(v *Quantity) *RatioBuilder {
	b.numerator = v
	return b
}

func (b *RatioBuilder) SetDenominator(v *Quantity) *RatioBuilder {
	b.denominator = v
	return b
}

func (b *RatioBuilder) SetField(name string, value any) error {
	switch name {
	case "numerator":
		return validation.Assign(&b.numerator, name, value)
	case "denominator":
		return validation.Assign(&b.denominator, name, value)
	}
	return b.setElementField("Ratio", name, value)
}

func (b *RatioBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Ratio.
func (b *RatioBuilder) Build() (*Ratio, error) {
	var c checker
	e := &Ratio{
		elementBase: b.elementBuilder.build(&c),
		numerator:   b.numerator,
		denominator: b.denominator,
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Ratio")
	}
	return e, nil
}

// Attachment holds content in a format defined elsewhere, inline or by url.
type Attachment struct {
	elementBase
	contentType *Code
	language    *Code
	data        *Base64Binary
	url         *Url
	size        *UnsignedInt
	dataHash    *Base64Binary
	title       *String
	creation    *DateTime

	hash model.HashCache
}

var attachmentDescriptor = model.NewDescriptor("Attachment", model.ComplexKind, append(elementFields(),
	model.ElementField("contentType", "code", func(e *Attachment) *Code { return e.contentType }),
	model.ElementField("language", "code", func(e *Attachment) *Code { return e.language }),
	model.ElementField("data", "base64Binary", func(e *Attachment) *Base64Binary { return e.data }),
	model.ElementField("url", "url", func(e *Attachment) *Url { return e.url }),
	model.ElementField("size", "unsignedInt", func(e *Attachment) *UnsignedInt { return e.size }),
	model.ElementField("hash", "base64Binary", func(e *Attachment) *Base64Binary { return e.dataHash }),
	model.ElementField("title", "string", func(e *Attachment) *String { return e.title }),
	model.ElementField("creation", "dateTime", func(e *Attachment) *DateTime { return e.creation }),
)...).WithConstraints(
	model.Constraint{
		Key:        "att-1",
		Severity:   "error",
		Human:      "If the Attachment has data, it SHALL have a contentType",
		Expression: "data.empty() or contentType.exists()",
	},
)

func (e *Attachment) TypeName() string { return "Attachment" }
func (e *Attachment) Descriptor() *model.Descriptor { return attachmentDescriptor }
func (e *Attachment) HasChildren() bool { return model.HasChildren(e) }
func (e *Attachment) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Attachment) Equal(o *Attachment) bool { return model.Equal(e, o) }
func (e *Attachment) String() string { return stringify(e) }

func (e *Attachment) ContentType() *Code { return e.contentType }
func (e *Attachment) Language() *Code { return e.language }
func (e *Attachment) Data() *Base64Binary { return e.data }
func (e *Attachment) Url() *Url { return e.url }
func (e *Attachment) Size() *UnsignedInt { return e.size }
func (e *Attachment) DataHash() *Base64Binary { return e.dataHash }
func (e *Attachment) Title() *String { return e.title }
func (e *Attachment) Creation() *DateTime { return e.creation }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Attachment) ToBuilder() *AttachmentBuilder {
	return &AttachmentBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		contentType:    e.contentType,
		language:       e.language,
		data:           e.data,
		url:            e.url,
		size:           e.size,
		dataHash:       e.dataHash,
		title:          e.title,
		creation:       e.creation,
	}
}

// AttachmentBuilder builds an Attachment.
type AttachmentBuilder struct {
	elementBuilder
	contentType *Code
	language    *Code
	data        *Base64Binary
	url         *Url
	size        *UnsignedInt
	dataHash    *Base64Binary
	title       *String
	creation    *DateTime
}

func NewAttachmentBuilder() *AttachmentBuilder { return &AttachmentBuilder{} }

func (b *AttachmentBuilder) SetId(id string) *AttachmentBuilder {
	b.id = id
	return b
}

func (b *AttachmentBuilder) AddExtension(v ...*Extension) *AttachmentBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *AttachmentBuilder) SetContentType(v *Code) *AttachmentBuilder {
	b.contentType = v
	return b
}

func (b *AttachmentBuilder) SetLanguage(v *Code) *AttachmentBuilder {
	b.language = v
	return b
}

func (b *AttachmentBuilder) SetData(v *Base64Binary) *AttachmentBuilder {
	b.data = v
	return b
}

func (b *AttachmentBuilder) SetUrl(v *Url) *AttachmentBuilder {
	b.url = v
	return b
}

func (b *AttachmentBuilder) SetSize(v *UnsignedInt) *AttachmentBuilder {
	b.size = v
	return b
}

func (b *AttachmentBuilder) SetDataHash(v *Base64Binary) *AttachmentBuilder {
	b.dataHash = v
	return b
}

func (b *AttachmentBuilder) SetTitle(v *String) *AttachmentBuilder {
	b.title = v
	return b
}

func (b *AttachmentBuilder) SetCreation(v *DateTime) *AttachmentBuilder {
	b.creation = v
	return b
}

func (b *AttachmentBuilder) SetField(name string, value any) error {
	switch name {
	case "contentType":
		return validation.Assign(&b.contentType, name, value)
	case "language":
		return validation.Assign(&b.language, name, value)
	case "data":
		return validation.Assign(&b.data, name, value)
	case "url":
		return validation.Assign(&b.url, name, value)
	case "size":
		return validation.Assign(&b.size, name, value)
	case "hash":
		return validation.Assign(&b.dataHash, name, value)
	case "title":
		return validation.Assign(&b.title, name, value)
	case "creation":
		return validation.Assign(&b.creation, name, value)
	}
	return b.setElementField("Attachment", name, value)
}

func (b *AttachmentBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Attachment.
func (b *AttachmentBuilder) Build() (*Attachment, error) {
	var c checker
	e := &Attachment{
		elementBase: b.elementBuilder.build(&c),
		contentType: b.contentType,
		language:    b.language,
		data:        b.data,
		url:         b.url,
		size:        b.size,
		dataHash:    b.dataHash,
		title:       b.title,
		creation:    b.creation,
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Attachment")
	}
	return e, nil
}

// Annotation is a text note which also contains information about who made the statement and when.
type Annotation struct {
	elementBase
	author AnnotationAuthor
	time   *DateTime
	text   *Markdown

	hash model.HashCache
}

// AnnotationAuthor is the closed set of types Annotation.author[x] can hold: Reference or
// String.
type AnnotationAuthor interface {
	model.Element
	isAnnotationAuthor()
}

var annotationAuthorTypes = []string{"Reference", "string"}

func (*Reference) isAnnotationAuthor() {}
func (*String) isAnnotationAuthor() {}

var annotationDescriptor = model.NewDescriptor("Annotation", model.ComplexKind, append(elementFields(),
	model.ChoiceField("author", func(e *Annotation) AnnotationAuthor { return e.author }, annotationAuthorTypes...).WithTargets("Practitioner", "Patient", "RelatedPerson", "Organization"),
	model.ElementField("time", "dateTime", func(e *Annotation) *DateTime { return e.time }),
	model.ElementField("text", "markdown", func(e *Annotation) *Markdown { return e.text }).Require(),
)...)

func (e *Annotation) TypeName() string { return "Annotation" }
func (e *Annotation) Descriptor() *model.Descriptor { return annotationDescriptor }
func (e *Annotation) HasChildren() bool { return model.HasChildren(e) }
func (e *Annotation) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Annotation) Equal(o *Annotation) bool { return model.Equal(e, o) }
func (e *Annotation) String() string { return stringify(e) }

func (e *Annotation) Author() AnnotationAuthor { return e.author }
func (e *Annotation) Time() *DateTime { return e.time }
func (e *Annotation) Text() *Markdown { return e.text }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Annotation) ToBuilder() *AnnotationBuilder {
	return &AnnotationBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		author:         e.author,
		time:           e.time,
		text:           e.text,
	}
}

// AnnotationBuilder builds an Annotation.
type AnnotationBuilder struct {
	elementBuilder
	author AnnotationAuthor
	time   *DateTime
	text   *Markdown
}

func NewAnnotationBuilder() *AnnotationBuilder { return &AnnotationBuilder{} }

func (b *AnnotationBuilder) SetId(id string) *AnnotationBuilder {
	b.id = id
	return b
}

func (b *AnnotationBuilder) AddExtension(v ...*Extension) *AnnotationBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *AnnotationBuilder) SetAuthor(v AnnotationAuthor) *AnnotationBuilder {
	b.author = v
	return b
}

func (b *AnnotationBuilder) SetTime(v *DateTime) *AnnotationBuilder {
	b.time = v
	return b
}

func (b *AnnotationBuilder) SetText(v *Markdown) *AnnotationBuilder {
	b.text = v
	return b
}

func (b *AnnotationBuilder) SetField(name string, value any) error {
	switch name {
	case "author":
		return validation.AssignChoice(&b.author, name, value, annotationAuthorTypes...)
	case "time":
		return validation.Assign(&b.time, name, value)
	case "text":
		return validation.Assign(&b.text, name, value)
	}
	return b.setElementField("Annotation", name, value)
}

func (b *AnnotationBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Annotation.
func (b *AnnotationBuilder) Build() (*Annotation, error) {
	var c checker
	e := &Annotation{
		elementBase: b.elementBuilder.build(&c),
		author:      b.author,
		time:        b.time,
		text:        b.text,
	}
	c.check(validation.RequireNonNull(e.text, "text"))
	c.check(validation.ChoiceElement(e.author, "author", annotationAuthorTypes...))
	if ref, ok := e.author.(*Reference); ok {
		c.check(validation.CheckReferenceType(ref, "author", "Practitioner", "Patient", "RelatedPerson", "Organization"))
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Annotation")
	}
	return e, nil
}

// HumanName is a human's name with the ability to identify parts and usage.
type HumanName struct {
	elementBase
	use    *Code
	text   *String
	family *String
	given  []*String
	prefix []*String
	suffix []*String
	period *Period

	hash model.HashCache
}

var humanNameDescriptor = model.NewDescriptor("HumanName", model.ComplexKind, append(elementFields(),
	model.ElementField("use", "code", func(e *HumanName) *Code { return e.use }),
	model.ElementField("text", "string", func(e *HumanName) *String { return e.text }),
	model.ElementField("family", "string", func(e *HumanName) *String { return e.family }),
	model.ListField("given", "string", func(e *HumanName) []*String { return e.given }),
	model.ListField("prefix", "string", func(e *HumanName) []*String { return e.prefix }),
	model.ListField("suffix", "string", func(e *HumanName) []*String { return e.suffix }),
	model.ElementField("period", "Period", func(e *HumanName) *Period { return e.period }),
)...)

func (e *HumanName) TypeName() string { return "HumanName" }
func (e *HumanName) Descriptor() *model.Descriptor { return humanNameDescriptor }
func (e *HumanName) HasChildren() bool { return model.HasChildren(e) }
func (e *HumanName) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *HumanName) Equal(o *HumanName) bool { return model.Equal(e, o) }
func (e *HumanName) String() string { return stringify(e) }

func (e *HumanName) Use() *Code { return e.use }
func (e *HumanName) Text() *String { return e.text }
func (e *HumanName) Family() *String { return e.family }
func (e *HumanName) Given() []*String { return slices.Clone(e.given) }
func (e *HumanName) Prefix() []*String { return slices.Clone(e.prefix) }
func (e *HumanName) Suffix() []*String { return slices.Clone(e.suffix) }
func (e *HumanName) Period() *Period { return e.period }

// ToBuilder returns a builder initialized with the fields of e.
func (e *HumanName) ToBuilder() *HumanNameBuilder {
	return &HumanNameBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		use:            e.use,
		text:           e.text,
		family:         e.family,
		given:          slices.Clip(e.given),
		prefix:         slices.Clip(e.prefix),
		suffix:         slices.Clip(e.suffix),
		period:         e.period,
	}
}

// HumanNameBuilder builds a HumanName.
type HumanNameBuilder struct {
	elementBuilder
	use    *Code
	text   *String
	family *String
	given  []*String
	prefix []*String
	suffix []*String
	period *Period
}

func NewHumanNameBuilder() *HumanNameBuilder { return &HumanNameBuilder{} }

func (b *HumanNameBuilder) SetId(id string) *HumanNameBuilder {
	b.id = id
	return b
}

func (b *HumanNameBuilder) AddExtension(v ...*Extension) *HumanNameBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *HumanNameBuilder) SetUse(v *Code) *HumanNameBuilder {
	b.use = v
	return b
}

func (b *HumanNameBuilder) SetText(v *String) *HumanNameBuilder {
	b.text = v
	return b
}

func (b *HumanNameBuilder) SetFamily(v *String) *HumanNameBuilder {
	b.family = v
	return b
}

func (b *HumanNameBuilder) AddGiven(v ...*String) *HumanNameBuilder {
	b.given = append(b.given, v...)
	return b
}

func (b *HumanNameBuilder) AddPrefix(v ...*String) *HumanNameBuilder {
	b.prefix = append(b.prefix, v...)
	return b
}

func (b *HumanNameBuilder) AddSuffix(v ...*String) *HumanNameBuilder {
	b.suffix = append(b.suffix, v...)
	return b
}

func (b *HumanNameBuilder) SetPeriod(v *Period) *HumanNameBuilder {
	b.period = v
	return b
}

func (b *HumanNameBuilder) SetField(name string, value any) error {
	switch name {
	case "use":
		return validation.Assign(&b.use, name, value)
	case "text":
		return validation.Assign(&b.text, name, value)
	case "family":
		return validation.Assign(&b.family, name, value)
	case "given":
		return validation.AppendTo(&b.given, name, value)
	case "prefix":
		return validation.AppendTo(&b.prefix, name, value)
	case "suffix":
		return validation.AppendTo(&b.suffix, name, value)
	case "period":
		return validation.Assign(&b.period, name, value)
	}
	return b.setElementField("HumanName", name, value)
}

func (b *HumanNameBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the HumanName.
func (b *HumanNameBuilder) Build() (*HumanName, error) {
	var c checker
	e := &HumanName{
		elementBase: b.elementBuilder.build(&c),
		use:         b.use,
		text:        b.text,
		family:      b.family,
		given:       checkList(&c, b.given, "given"),
		prefix:      checkList(&c, b.prefix, "prefix"),
		suffix:      checkList(&c, b.suffix, "suffix"),
		period:      b.period,
	}
	nameUseBinding.check(&c, e.use, "use")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("HumanName")
	}
	return e, nil
}

// ContactPoint holds details for all kinds of technology-mediated contact points, e.g. telephone or email.
type ContactPoint struct {
	elementBase
	system *Code
	value  *String
	use    *Code
	rank   *PositiveInt
	period *Period

	hash model.HashCache
}

var contactPointDescriptor = model.NewDescriptor("ContactPoint", model.ComplexKind, append(elementFields(),
	model.ElementField("system", "code", func(e *ContactPoint) *Code { return e.system }),
	model.ElementField("value", "string", func(e *ContactPoint) *String { return e.value }),
	model.ElementField("use", "code", func(e *ContactPoint) *Code { return e.use }),
	model.ElementField("rank", "positiveInt", func(e *ContactPoint) *PositiveInt { return e.rank }),
	model.ElementField("period", "Period", func(e *ContactPoint) *Period { return e.period }),
)...).WithConstraints(
	model.Constraint{
		Key:        "cpt-2",
		Severity:   "error",
		Human:      "A system is required if a value is provided.",
		Expression: "value.empty() or system.exists()",
	},
)

func (e *ContactPoint) TypeName() string { return "ContactPoint" }
func (e *ContactPoint) Descriptor() *model.Descriptor { return contactPointDescriptor }
func (e *ContactPoint) HasChildren() bool { return model.HasChildren(e) }
func (e *ContactPoint) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *ContactPoint) Equal(o *ContactPoint) bool { return model.Equal(e, o) }
func (e *ContactPoint) String() string { return stringify(e) }

func (e *ContactPoint) System() *Code { return e.system }
func (e *ContactPoint) Value() *String { return e.value }
func (e *ContactPoint) Use() *Code { return e.use }
func (e *ContactPoint) Rank() *PositiveInt { return e.rank }
func (e *ContactPoint) Period() *Period { return e.period }

// ToBuilder returns a builder initialized with the fields of e.
func (e *ContactPoint) ToBuilder() *ContactPointBuilder {
	return &ContactPointBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		system:         e.system,
		value:          e.value,
		use:            e.use,
		rank:           e.rank,
		period:         e.period,
	}
}

// ContactPointBuilder builds a ContactPoint.
type ContactPointBuilder struct {
	elementBuilder
	system *Code
	value  *String
	use    *Code
	rank   *PositiveInt
	period *Period
}

func NewContactPointBuilder() *ContactPointBuilder { return &ContactPointBuilder{} }

func (b *ContactPointBuilder) SetId(id string) *ContactPointBuilder {
	b.id = id
	return b
}

func (b *ContactPointBuilder) AddExtension(v ...*Extension) *ContactPointBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *ContactPointBuilder) SetSystem(v *Code) *ContactPointBuilder {
	b.system = v
	return b
}

func (b *ContactPointBuilder) SetValue(v *String) *ContactPointBuilder {
	b.value = v
	return b
}

func (b *ContactPointBuilder) SetUse(v *Code) *ContactPointBuilder {
	b.use = v
	return b
}

func (b *ContactPointBuilder) SetRank(v *PositiveInt) *ContactPointBuilder {
	b.rank = v
	return b
}

func (b *ContactPointBuilder) SetPeriod(v *Period) *ContactPointBuilder {
	b.period = v
	return b
}

func (b *ContactPointBuilder) SetField(name string, value any) error {
	switch name {
	case "system":
		return validation.Assign(&b.system, name, value)
	case "value":
		return validation.Assign(&b.value, name, value)
	case "use":
		return validation.Assign(&b.use, name, value)
	case "rank":
		return validation.Assign(&b.rank, name, value)
	case "period":
		return validation.Assign(&b.period, name, value)
	}
	return b.setElementField("ContactPoint", name, value)
}

func (b *ContactPointBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the ContactPoint.
func (b *ContactPointBuilder) Build() (*ContactPoint, error) {
	var c checker
	e := &ContactPoint{
		elementBase: b.elementBuilder.build(&c),
		system:      b.system,
		value:       b.value,
		use:         b.use,
		rank:        b.rank,
		period:      b.period,
	}
	contactPointSystemBinding.check(&c, e.system, "system")
	contactPointUseBinding.check(&c, e.use, "use")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("ContactPoint")
	}
	return e, nil
}

// Address is an address expressed using postal conventions.
type Address struct {
	elementBase
	use        *Code
	typ        *Code
	text       *String
	line       []*String
	city       *String
	district   *String
	state      *String
	postalCode *String
	country    *String
	period     *Period

	hash model.HashCache
}

var addressDescriptor = model.NewDescriptor("Address", model.ComplexKind, append(elementFields(),
	model.ElementField("use", "code", func(e *Address) *Code { return e.use }),
	model.ElementField("type", "code", func(e *Address) *Code { return e.typ }),
	model.ElementField("text", "string", func(e *Address) *String { return e.text }),
	model.ListField("line", "string", func(e *Address) []*String { return e.line }),
	model.ElementField("city", "string", func(e *Address) *String { return e.city }),
	model.ElementField("district", "string", func(e *Address) *String { return e.district }),
	model.ElementField("state", "string", func(e *Address) *String { return e.state }),
	model.ElementField("postalCode", "string", func(e *Address) *String { return e.postalCode }),
	model.ElementField("country", "string", func(e *Address) *String { return e.country }),
	model.ElementField("period", "Period", func(e *Address) *Period { return e.period }),
)...)

func (e *Address) TypeName() string { return "Address" }
func (e *Address) Descriptor() *model.Descriptor { return addressDescriptor }
func (e *Address) HasChildren() bool { return model.HasChildren(e) }
func (e *Address) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Address) Equal(o *Address) bool { return model.Equal(e, o) }
func (e *Address) String() string { return stringify(e) }

func (e *Address) Use() *Code { return e.use }
func (e *Address) Type() *Code { return e.typ }
func (e *Address) Text() *String { return e.text }
func (e *Address) Line() []*String { return slices.Clone(e.line) }
func (e *Address) City() *String { return e.city }
func (e *Address) District() *String { return e.district }
func (e *Address) State() *String { return e.state }
func (e *Address) PostalCode() *String { return e.postalCode }
func (e *Address) Country() *String { return e.country }
func (e *Address) Period() *Period { return e.period }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Address) ToBuilder() *AddressBuilder {
	return &AddressBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		use:            e.use,
		typ:            e.typ,
		text:           e.text,
		line:           slices.Clip(e.line),
		city:           e.city,
		district:       e.district,
		state:          e.state,
		postalCode:     e.postalCode,
		country:        e.country,
		period:         e.period,
	}
}

// AddressBuilder builds an Address.
type AddressBuilder struct {
	elementBuilder
	use        *Code
	typ        *Code
	text       *String
	line       []*String
	city       *String
	district   *String
	state      *String
	postalCode *String
	country    *String
	period     *Period
}

func NewAddressBuilder() *AddressBuilder { return &AddressBuilder{} }

func (b *AddressBuilder) SetId(id string) *AddressBuilder {
	b.id = id
	return b
}

func (b *AddressBuilder) AddExtension(v ...*Extension) *AddressBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *AddressBuilder) SetUse(v *Code) *AddressBuilder {
	b.use = v
	return b
}

func (b *AddressBuilder) SetType(v *Code) *AddressBuilder {
	b.typ = v
	return b
}

func (b *AddressBuilder) SetText(v *String) *AddressBuilder {
	b.text = v
	return b
}

func (b *AddressBuilder) AddLine(v ...*String) *AddressBuilder {
	b.line = append(b.line, v...)
	return b
}

func (b *AddressBuilder) SetCity(v *String) *AddressBuilder {
	b.city = v
	return b
}

func (b *AddressBuilder) SetDistrict(v *String) *AddressBuilder {
	b.district = v
	return b
}

func (b *AddressBuilder) SetState(v *String) *AddressBuilder {
	b.state = v
	return b
}

func (b *AddressBuilder) SetPostalCode(v *String) *AddressBuilder {
	b.postalCode = v
	return b
}

func (b *AddressBuilder) SetCountry(v *String) *AddressBuilder {
	b.country = v
	return b
}

func (b *AddressBuilder) SetPeriod(v *Period) *AddressBuilder {
	b.period = v
	return b
}

func (b *AddressBuilder) SetField(name string, value any) error {
	switch name {
	case "use":
		return validation.Assign(&b.use, name, value)
	case "type":
		return validation.Assign(&b.typ, name, value)
	case "text":
		return validation.Assign(&b.text, name, value)
	case "line":
		return validation.AppendTo(&b.line, name, value)
	case "city":
		return validation.Assign(&b.city, name, value)
	case "district":
		return validation.Assign(&b.district, name, value)
	case "state":
		return validation.Assign(&b.state, name, value)
	case "postalCode":
		return validation.Assign(&b.postalCode, name, value)
	case "country":
		return validation.Assign(&b.country, name, value)
	case "period":
		return validation.Assign(&b.period, name, value)
	}
	return b.setElementField("Address", name, value)
}

func (b *AddressBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Address.
func (b *AddressBuilder) Build() (*Address, error) {
	var c checker
	e := &Address{
		elementBase: b.elementBuilder.build(&c),
		use:         b.use,
		typ:         b.typ,
		text:        b.text,
		line:        checkList(&c, b.line, "line"),
		city:        b.city,
		district:    b.district,
		state:       b.state,
		postalCode:  b.postalCode,
		country:     b.country,
		period:      b.period,
	}
	addressUseBinding.check(&c, e.use, "use")
	addressTypeBinding.check(&c, e.typ, "type")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Address")
	}
	return e, nil
}

// Meta holds the metadata about a resource.
type Meta struct {
	elementBase
	versionId   *Id
	lastUpdated *Instant
	source      *Uri
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding

	hash model.HashCache
}

var metaDescriptor = model.NewDescriptor("Meta", model.ComplexKind, append(elementFields(),
	model.ElementField("versionId", "id", func(e *Meta) *Id { return e.versionId }),
	model.ElementField("lastUpdated", "instant", func(e *Meta) *Instant { return e.lastUpdated }),
	model.ElementField("source", "uri", func(e *Meta) *Uri { return e.source }),
	model.ListField("profile", "canonical", func(e *Meta) []*Canonical { return e.profile }),
	model.ListField("security", "Coding", func(e *Meta) []*Coding { return e.security }),
	model.ListField("tag", "Coding", func(e *Meta) []*Coding { return e.tag }),
)...)

func (e *Meta) TypeName() string { return "Meta" }
func (e *Meta) Descriptor() *model.Descriptor { return metaDescriptor }
func (e *Meta) HasChildren() bool { return model.HasChildren(e) }
func (e *Meta) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Meta) Equal(o *Meta) bool { return model.Equal(e, o) }
func (e *Meta) String() string { return stringify(e) }

func (e *Meta) VersionId() *Id { return e.versionId }
func (e *Meta) LastUpdated() *Instant { return e.lastUpdated }
func (e *Meta) Source() *Uri { return e.source }
func (e *Meta) Profile() []*Canonical { return slices.Clone(e.profile) }
func (e *Meta) Security() []*Coding { return slices.Clone(e.security) }
func (e *Meta) Tag() []*Coding { return slices.Clone(e.tag) }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Meta) ToBuilder() *MetaBuilder {
	return &MetaBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		versionId:      e.versionId,
		lastUpdated:    e.lastUpdated,
		source:         e.source,
		profile:        slices.Clip(e.profile),
		security:       slices.Clip(e.security),
		tag:            slices.Clip(e.tag),
	}
}

// MetaBuilder builds a Meta.
type MetaBuilder struct {
	elementBuilder
	versionId   *Id
	lastUpdated *Instant
	source      *Uri
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
}

func NewMetaBuilder() *MetaBuilder { return &MetaBuilder{} }

func (b *MetaBuilder) SetId(id string) *MetaBuilder {
	b.id = id
	return b
}

func (b *MetaBuilder) AddExtension(v ...*Extension) *MetaBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *MetaBuilder) SetVersionId(v *Id) *MetaBuilder {
	b.versionId = v
	return b
}

func (b *MetaBuilder) SetLastUpdated(v *Instant) *MetaBuilder {
	b.lastUpdated = v
	return b
}

func (b *MetaBuilder) SetSource(v *Uri) *MetaBuilder {
	b.source = v
	return b
}

func (b *MetaBuilder) AddProfile(v ...*Canonical) *MetaBuilder {
	b.profile = append(b.profile, v...)
	return b
}

func (b *MetaBuilder) AddSecurity(v ...*Coding) *MetaBuilder {
	b.security = append(b.security, v...)
	return b
}

func (b *MetaBuilder) AddTag(v ...*Coding) *MetaBuilder {
	b.tag = append(b.tag, v...)
	return b
}

func (b *MetaBuilder) SetField(name string, value any) error {
	switch name {
	case "versionId":
		return validation.Assign(&b.versionId, name, value)
	case "lastUpdated":
		return validation.Assign(&b.lastUpdated, name, value)
	case "source":
		return validation.Assign(&b.source, name, value)
	case "profile":
		return validation.AppendTo(&b.profile, name, value)
	case "security":
		return validation.AppendTo(&b.security, name, value)
	case "tag":
		return validation.AppendTo(&b.tag, name, value)
	}
	return b.setElementField("Meta", name, value)
}

func (b *MetaBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Meta.
func (b *MetaBuilder) Build() (*Meta, error) {
	var c checker
	e := &Meta{
		elementBase: b.elementBuilder.build(&c),
		versionId:   b.versionId,
		lastUpdated: b.lastUpdated,
		source:      b.source,
		profile:     checkList(&c, b.profile, "profile"),
		security:    checkList(&c, b.security, "security"),
		tag:         checkList(&c, b.tag, "tag"),
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Meta")
	}
	return e, nil
}

// Narrative is a human-readable summary of the resource.
type Narrative struct {
	elementBase
	status *Code
	div    *Xhtml

	hash model.HashCache
}

var narrativeDescriptor = model.NewDescriptor("Narrative", model.ComplexKind, append(elementFields(),
	model.ElementField("status", "code", func(e *Narrative) *Code { return e.status }).Require(),
	model.ElementField("div", "xhtml", func(e *Narrative) *Xhtml { return e.div }).Require(),
)...)

func (e *Narrative) TypeName() string { return "Narrative" }
func (e *Narrative) Descriptor() *model.Descriptor { return narrativeDescriptor }
func (e *Narrative) HasChildren() bool { return model.HasChildren(e) }
func (e *Narrative) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Narrative) Equal(o *Narrative) bool { return model.Equal(e, o) }
func (e *Narrative) String() string { return stringify(e) }

func (e *Narrative) Status() *Code { return e.status }
func (e *Narrative) Div() *Xhtml { return e.div }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Narrative) ToBuilder() *NarrativeBuilder {
	return &NarrativeBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		status:         e.status,
		div:            e.div,
	}
}

// NarrativeBuilder builds a Narrative.
type NarrativeBuilder struct {
	elementBuilder
	status *Code
	div    *Xhtml
}

func NewNarrativeBuilder() *NarrativeBuilder { return &NarrativeBuilder{} }

func (b *NarrativeBuilder) SetId(id string) *NarrativeBuilder {
	b.id = id
	return b
}

func (b *NarrativeBuilder) AddExtension(v ...*Extension) *NarrativeBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *NarrativeBuilder) SetStatus(v *Code) *NarrativeBuilder {
	b.status = v
	return b
}

func (b *NarrativeBuilder) SetDiv(v *Xhtml) *NarrativeBuilder {
	b.div = v
	return b
}

func (b *NarrativeBuilder) SetField(name string, value any) error {
	switch name {
	case "status":
		return validation.Assign(&b.status, name, value)
	case "div":
		return validation.Assign(&b.div, name, value)
	}
	return b.setElementField("Narrative", name, value)
}

func (b *NarrativeBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Narrative.
func (b *NarrativeBuilder) Build() (*Narrative, error) {
	var c checker
	e := &Narrative{
		elementBase: b.elementBuilder.build(&c),
		status:      b.status,
		div:         b.div,
	}
	c.check(validation.RequireNonNull(e.status, "status"))
	c.check(validation.RequireNonNull(e.div, "div"))
	narrativeStatusBinding.check(&c, e.status, "status")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Narrative")
	}
	return e, nil
}

// Timing specifies an event that may occur multiple times.
type Timing struct {
	backboneElementBase
	event  []*DateTime
	repeat *TimingRepeat
	code   *CodeableConcept

	hash model.HashCache
}

var timingDescriptor = model.NewDescriptor("Timing", model.ComplexKind, append(backboneElementFields(),
	model.ListField("event", "dateTime", func(e *Timing) []*DateTime { return e.event }),
	model.ElementField("repeat", "Timing.Repeat", func(e *Timing) *TimingRepeat { return e.repeat }),
	model.ElementField("code", "CodeableConcept", func(e *Timing) *CodeableConcept { return e.code }),
)...)

func (e *Timing) TypeName() string { return "Timing" }
func (e *Timing) Descriptor() *model.Descriptor { return timingDescriptor }
func (e *Timing) HasChildren() bool { return model.HasChildren(e) }
func (e *Timing) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *Timing) Equal(o *Timing) bool { return model.Equal(e, o) }
func (e *Timing) String() string { return stringify(e) }

func (e *Timing) Event() []*DateTime { return slices.Clone(e.event) }
func (e *Timing) Repeat() *TimingRepeat { return e.repeat }
func (e *Timing) Code() *CodeableConcept { return e.code }

// ToBuilder returns a builder initialized with the fields of e.
func (e *Timing) ToBuilder() *TimingBuilder {
	return &TimingBuilder{
		backboneElementBuilder: e.backboneElementBase.toBuilder(),
		event:                  slices.Clip(e.event),
		repeat:                 e.repeat,
		code:                   e.code,
	}
}

// TimingBuilder builds a Timing.
type TimingBuilder struct {
	backboneElementBuilder
	event  []*DateTime
	repeat *TimingRepeat
	code   *CodeableConcept
}

func NewTimingBuilder() *TimingBuilder { return &TimingBuilder{} }

func (b *TimingBuilder) SetId(id string) *TimingBuilder {
	b.id = id
	return b
}

func (b *TimingBuilder) AddExtension(v ...*Extension) *TimingBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *TimingBuilder) AddModifierExtension(v ...*Extension) *TimingBuilder {
	b.modifierExtension = append(b.modifierExtension, v...)
	return b
}

func (b *TimingBuilder) AddEvent(v ...*DateTime) *TimingBuilder {
	b.event = append(b.event, v...)
	return b
}

func (b *TimingBuilder) SetRepeat(v *TimingRepeat) *TimingBuilder {
	b.repeat = v
	return b
}

func (b *TimingBuilder) SetCode(v *CodeableConcept) *TimingBuilder {
	b.code = v
	return b
}

func (b *TimingBuilder) SetField(name string, value any) error {
	switch name {
	case "event":
		return validation.AppendTo(&b.event, name, value)
	case "repeat":
		return validation.Assign(&b.repeat, name, value)
	case "code":
		return validation.Assign(&b.code, name, value)
	}
	return b.setBackboneField("Timing", name, value)
}

func (b *TimingBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the Timing.
func (b *TimingBuilder) Build() (*Timing, error) {
	var c checker
	e := &Timing{
		backboneElementBase: b.backboneElementBuilder.build(&c),
		event:               checkList(&c, b.event, "event"),
		repeat:              b.repeat,
		code:                b.code,
	}
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Timing")
	}
	return e, nil
}

// TimingRepeat is a set of rules that describe when the event is scheduled.
type TimingRepeat struct {
	elementBase
	bounds       TimingRepeatBounds
	count        *PositiveInt
	countMax     *PositiveInt
	duration     *Decimal
	durationMax  *Decimal
	durationUnit *Code
	frequency    *PositiveInt
	frequencyMax *PositiveInt
	period       *Decimal
	periodMax    *Decimal
	periodUnit   *Code
	dayOfWeek    []*Code
	timeOfDay    []*Time
	offset       *UnsignedInt

	hash model.HashCache
}

// TimingRepeatBounds is the closed set of types Timing.Repeat.bounds[x] can hold: Range or
// Period.
type TimingRepeatBounds interface {
	model.Element
	isTimingRepeatBounds()
}

var timingRepeatBoundsTypes = []string{"Range", "Period"}

func (*Range) isTimingRepeatBounds() {}
func (*Period) isTimingRepeatBounds() {}

var timingRepeatDescriptor = model.NewDescriptor("Timing.Repeat", model.BackboneKind, append(elementFields(),
	model.ChoiceField("bounds", func(e *TimingRepeat) TimingRepeatBounds { return e.bounds }, timingRepeatBoundsTypes...),
	model.ElementField("count", "positiveInt", func(e *TimingRepeat) *PositiveInt { return e.count }),
	model.ElementField("countMax", "positiveInt", func(e *TimingRepeat) *PositiveInt { return e.countMax }),
	model.ElementField("duration", "decimal", func(e *TimingRepeat) *Decimal { return e.duration }),
	model.ElementField("durationMax", "decimal", func(e *TimingRepeat) *Decimal { return e.durationMax }),
	model.ElementField("durationUnit", "code", func(e *TimingRepeat) *Code { return e.durationUnit }),
	model.ElementField("frequency", "positiveInt", func(e *TimingRepeat) *PositiveInt { return e.frequency }),
	model.ElementField("frequencyMax", "positiveInt", func(e *TimingRepeat) *PositiveInt { return e.frequencyMax }),
	model.ElementField("period", "decimal", func(e *TimingRepeat) *Decimal { return e.period }),
	model.ElementField("periodMax", "decimal", func(e *TimingRepeat) *Decimal { return e.periodMax }),
	model.ElementField("periodUnit", "code", func(e *TimingRepeat) *Code { return e.periodUnit }),
	model.ListField("dayOfWeek", "code", func(e *TimingRepeat) []*Code { return e.dayOfWeek }),
	model.ListField("timeOfDay", "time", func(e *TimingRepeat) []*Time { return e.timeOfDay }),
	model.ElementField("offset", "unsignedInt", func(e *TimingRepeat) *UnsignedInt { return e.offset }),
)...).WithConstraints(
	model.Constraint{
		Key:        "tim-1",
		Severity:   "error",
		Human:      "if there's a duration, there needs to be duration units",
		Expression: "duration.empty() or durationUnit.exists()",
	},
	model.Constraint{
		Key:        "tim-2",
		Severity:   "error",
		Human:      "if there's a period, there needs to be period units",
		Expression: "period.empty() or periodUnit.exists()",
	},
	model.Constraint{
		Key:        "tim-4",
		Severity:   "error",
		Human:      "duration SHALL be a non-negative value",
		Expression: "duration.exists() implies duration >= 0",
	},
	model.Constraint{
		Key:        "tim-5",
		Severity:   "error",
		Human:      "period SHALL be a non-negative value",
		Expression: "period.exists() implies period >= 0",
	},
)

func (e *TimingRepeat) TypeName() string { return "Timing.Repeat" }
func (e *TimingRepeat) Descriptor() *model.Descriptor { return timingRepeatDescriptor }
func (e *TimingRepeat) HasChildren() bool { return model.HasChildren(e) }
func (e *TimingRepeat) Hash() uint64 { return e.hash.Get(func() uint64 { return model.ComputeHash(e) }) }
func (e *TimingRepeat) Equal(o *TimingRepeat) bool { return model.Equal(e, o) }
func (e *TimingRepeat) String() string { return stringify(e) }

func (e *TimingRepeat) Bounds() TimingRepeatBounds { return e.bounds }
func (e *TimingRepeat) Count() *PositiveInt { return e.count }
func (e *TimingRepeat) CountMax() *PositiveInt { return e.countMax }
func (e *TimingRepeat) Duration() *Decimal { return e.duration }
func (e *TimingRepeat) DurationMax() *Decimal { return e.durationMax }
func (e *TimingRepeat) DurationUnit() *Code { return e.durationUnit }
func (e *TimingRepeat) Frequency() *PositiveInt { return e.frequency }
func (e *TimingRepeat) FrequencyMax() *PositiveInt { return e.frequencyMax }
func (e *TimingRepeat) Period() *Decimal { return e.period }
func (e *TimingRepeat) PeriodMax() *Decimal { return e.periodMax }
func (e *TimingRepeat) PeriodUnit() *Code { return e.periodUnit }
func (e *TimingRepeat) DayOfWeek() []*Code { return slices.Clone(e.dayOfWeek) }
func (e *TimingRepeat) TimeOfDay() []*Time { return slices.Clone(e.timeOfDay) }
func (e *TimingRepeat) Offset() *UnsignedInt { return e.offset }

// ToBuilder returns a builder initialized with the fields of e.
func (e *TimingRepeat) ToBuilder() *TimingRepeatBuilder {
	return &TimingRepeatBuilder{
		elementBuilder: e.elementBase.toBuilder(),
		bounds:         e.bounds,
		count:          e.count,
		countMax:       e.countMax,
		duration:       e.duration,
		durationMax:    e.durationMax,
		durationUnit:   e.durationUnit,
		frequency:      e.frequency,
		frequencyMax:   e.frequencyMax,
		period:         e.period,
		periodMax:      e.periodMax,
		periodUnit:     e.periodUnit,
		dayOfWeek:      slices.Clip(e.dayOfWeek),
		timeOfDay:      slices.Clip(e.timeOfDay),
		offset:         e.offset,
	}
}

// TimingRepeatBuilder builds a TimingRepeat.
type TimingRepeatBuilder struct {
	elementBuilder
	bounds       TimingRepeatBounds
	count        *PositiveInt
	countMax     *PositiveInt
	duration     *Decimal
	durationMax  *Decimal
	durationUnit *Code
	frequency    *PositiveInt
	frequencyMax *PositiveInt
	period       *Decimal
	periodMax    *Decimal
	periodUnit   *Code
	dayOfWeek    []*Code
	timeOfDay    []*Time
	offset       *UnsignedInt
}

func NewTimingRepeatBuilder() *TimingRepeatBuilder { return &TimingRepeatBuilder{} }

func (b *TimingRepeatBuilder) SetId(id string) *TimingRepeatBuilder {
	b.id = id
	return b
}

func (b *TimingRepeatBuilder) AddExtension(v ...*Extension) *TimingRepeatBuilder {
	b.extension = append(b.extension, v...)
	return b
}

func (b *TimingRepeatBuilder) SetBounds(v TimingRepeatBounds) *TimingRepeatBuilder {
	b.bounds = v
	return b
}

func (b *TimingRepeatBuilder) SetCount(v *PositiveInt) *TimingRepeatBuilder {
	b.count = v
	return b
}

func (b *TimingRepeatBuilder) SetCountMax(v *PositiveInt) *TimingRepeatBuilder {
	b.countMax = v
	return b
}

func (b *TimingRepeatBuilder) SetDuration(v *Decimal) *TimingRepeatBuilder {
	b.duration = v
	return b
}

func (b *TimingRepeatBuilder) SetDurationMax(v *Decimal) *TimingRepeatBuilder {
	b.durationMax = v
	return b
}

func (b *TimingRepeatBuilder) SetDurationUnit(v *Code) *TimingRepeatBuilder {
	b.durationUnit = v
	return b
}

func (b *TimingRepeatBuilder) SetFrequency(v *PositiveInt) *TimingRepeatBuilder {
	b.frequency = v
	return b
}

func (b *TimingRepeatBuilder) SetFrequencyMax(v *PositiveInt) *TimingRepeatBuilder {
	b.frequencyMax = v
	return b
}

func (b *TimingRepeatBuilder) SetPeriod(v *Decimal) *TimingRepeatBuilder {
	b.period = v
	return b
}

func (b *TimingRepeatBuilder) SetPeriodMax(v *Decimal) *TimingRepeatBuilder {
	b.periodMax = v
	return b
}

func (b *TimingRepeatBuilder) SetPeriodUnit(v *Code) *TimingRepeatBuilder {
	b.periodUnit = v
	return b
}

func (b *TimingRepeatBuilder) AddDayOfWeek(v ...*Code) *TimingRepeatBuilder {
	b.dayOfWeek = append(b.dayOfWeek, v...)
	return b
}

func (b *TimingRepeatBuilder) AddTimeOfDay(v ...*Time) *TimingRepeatBuilder {
	b.timeOfDay = append(b.timeOfDay, v...)
	return b
}

func (b *TimingRepeatBuilder) SetOffset(v *UnsignedInt) *TimingRepeatBuilder {
	b.offset = v
	return b
}

func (b *TimingRepeatBuilder) SetField(name string, value any) error {
	switch name {
	case "bounds":
		return validation.AssignChoice(&b.bounds, name, value, timingRepeatBoundsTypes...)
	case "count":
		return validation.Assign(&b.count, name, value)
	case "countMax":
		return validation.Assign(&b.countMax, name, value)
	case "duration":
		return validation.Assign(&b.duration, name, value)
	case "durationMax":
		return validation.Assign(&b.durationMax, name, value)
	case "durationUnit":
		return validation.Assign(&b.durationUnit, name, value)
	case "frequency":
		return validation.Assign(&b.frequency, name, value)
	case "frequencyMax":
		return validation.Assign(&b.frequencyMax, name, value)
	case "period":
		return validation.Assign(&b.period, name, value)
	case "periodMax":
		return validation.Assign(&b.periodMax, name, value)
	case "periodUnit":
		return validation.Assign(&b.periodUnit, name, value)
	case "dayOfWeek":
		return validation.AppendTo(&b.dayOfWeek, name, value)
	case "timeOfDay":
		return validation.AppendTo(&b.timeOfDay, name, value)
	case "offset":
		return validation.Assign(&b.offset, name, value)
	}
	return b.setElementField("Timing.Repeat", name, value)
}

func (b *TimingRepeatBuilder) BuildElement() (model.Element, error) {
	e, err := b.Build()
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Build validates the builder state and returns the TimingRepeat.
func (b *TimingRepeatBuilder) Build() (*TimingRepeat, error) {
	var c checker
	e := &TimingRepeat{
		elementBase:  b.elementBuilder.build(&c),
		bounds:       b.bounds,
		count:        b.count,
		countMax:     b.countMax,
		duration:     b.duration,
		durationMax:  b.durationMax,
		durationUnit: b.durationUnit,
		frequency:    b.frequency,
		frequencyMax: b.frequencyMax,
		period:       b.period,
		periodMax:    b.periodMax,
		periodUnit:   b.periodUnit,
		dayOfWeek:    checkList(&c, b.dayOfWeek, "dayOfWeek"),
		timeOfDay:    checkList(&c, b.timeOfDay, "timeOfDay"),
		offset:       b.offset,
	}
	c.check(validation.ChoiceElement(e.bounds, "bounds", timingRepeatBoundsTypes...))
	unitsOfTimeBinding.check(&c, e.durationUnit, "durationUnit")
	unitsOfTimeBinding.check(&c, e.periodUnit, "periodUnit")
	checkBindings(&c, daysOfWeekBinding, e.dayOfWeek, "dayOfWeek")
	c.check(validation.RequireChildren(e))
	if c.err != nil {
		return nil, c.result("Timing.Repeat")
	}
	return e, nil
}
