package r4

import (
	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

// Boolean is a true or false value.
type Boolean struct {
	primitive[bool]
	hash model.HashCache
}

var booleanDescriptor = primitiveDescriptor("boolean")

// NewBoolean returns a Boolean holding v.
func NewBoolean(v bool) *Boolean {
	return &Boolean{primitive: primitive[bool]{value: &v}}
}

func (p *Boolean) TypeName() string { return "boolean" }
func (p *Boolean) Descriptor() *model.Descriptor { return booleanDescriptor }
func (p *Boolean) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Boolean) Equal(o *Boolean) bool { return model.Equal(p, o) }
func (p *Boolean) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Boolean) ToBuilder() *BooleanBuilder {
	return &BooleanBuilder{p.toPrimitiveBuilder()}
}

// BooleanBuilder builds a Boolean.
type BooleanBuilder struct {
	primitiveBuilder[bool]
}

func NewBooleanBuilder() *BooleanBuilder { return &BooleanBuilder{} }

func (b *BooleanBuilder) SetValue(v bool) *BooleanBuilder {
	b.value = &v
	return b
}

func (b *BooleanBuilder) SetId(id string) *BooleanBuilder {
	b.id = id
	return b
}

func (b *BooleanBuilder) AddExtension(ext ...*Extension) *BooleanBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *BooleanBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "boolean", name, value, asBool)
}

func (b *BooleanBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Boolean.
func (b *BooleanBuilder) Build() (*Boolean, error) {
	var c checker
	p := &Boolean{primitive: buildPrimitive(&b.primitiveBuilder, &c, nil)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("boolean")
	}
	return p, nil
}

// Integer is a signed 32 bit integer.
type Integer struct {
	primitive[int32]
	hash model.HashCache
}

var integerDescriptor = primitiveDescriptor("integer")

// NewInteger returns an Integer holding v.
func NewInteger(v int32) *Integer {
	return &Integer{primitive: primitive[int32]{value: &v}}
}

func (p *Integer) TypeName() string { return "integer" }
func (p *Integer) Descriptor() *model.Descriptor { return integerDescriptor }
func (p *Integer) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Integer) Equal(o *Integer) bool { return model.Equal(p, o) }
func (p *Integer) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Integer) ToBuilder() *IntegerBuilder {
	return &IntegerBuilder{p.toPrimitiveBuilder()}
}

// IntegerBuilder builds an Integer.
type IntegerBuilder struct {
	primitiveBuilder[int32]
}

func NewIntegerBuilder() *IntegerBuilder { return &IntegerBuilder{} }

func (b *IntegerBuilder) SetValue(v int32) *IntegerBuilder {
	b.value = &v
	return b
}

func (b *IntegerBuilder) SetId(id string) *IntegerBuilder {
	b.id = id
	return b
}

func (b *IntegerBuilder) AddExtension(ext ...*Extension) *IntegerBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *IntegerBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "integer", name, value, asInt32)
}

func (b *IntegerBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Integer.
func (b *IntegerBuilder) Build() (*Integer, error) {
	var c checker
	p := &Integer{primitive: buildPrimitive(&b.primitiveBuilder, &c, nil)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("integer")
	}
	return p, nil
}

// PositiveInt is an integer between 1 and 2147483647.
type PositiveInt struct {
	primitive[uint32]
	hash model.HashCache
}

var positiveIntDescriptor = primitiveDescriptor("positiveInt")

// NewPositiveInt returns a PositiveInt holding v or an error if v is not a valid positiveInt.
func NewPositiveInt(v uint32) (*PositiveInt, error) {
	return NewPositiveIntBuilder().SetValue(v).Build()
}

// MustPositiveInt is like NewPositiveInt but panics on error.
func MustPositiveInt(v uint32) *PositiveInt {
	p, err := NewPositiveInt(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *PositiveInt) TypeName() string { return "positiveInt" }
func (p *PositiveInt) Descriptor() *model.Descriptor { return positiveIntDescriptor }
func (p *PositiveInt) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *PositiveInt) Equal(o *PositiveInt) bool { return model.Equal(p, o) }
func (p *PositiveInt) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *PositiveInt) ToBuilder() *PositiveIntBuilder {
	return &PositiveIntBuilder{p.toPrimitiveBuilder()}
}

// PositiveIntBuilder builds a PositiveInt.
type PositiveIntBuilder struct {
	primitiveBuilder[uint32]
}

func NewPositiveIntBuilder() *PositiveIntBuilder { return &PositiveIntBuilder{} }

func (b *PositiveIntBuilder) SetValue(v uint32) *PositiveIntBuilder {
	b.value = &v
	return b
}

func (b *PositiveIntBuilder) SetId(id string) *PositiveIntBuilder {
	b.id = id
	return b
}

func (b *PositiveIntBuilder) AddExtension(ext ...*Extension) *PositiveIntBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *PositiveIntBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "positiveInt", name, value, asUint32)
}

func (b *PositiveIntBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the PositiveInt.
func (b *PositiveIntBuilder) Build() (*PositiveInt, error) {
	var c checker
	p := &PositiveInt{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkPositiveInt)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("positiveInt")
	}
	return p, nil
}

// UnsignedInt is an integer between 0 and 2147483647.
type UnsignedInt struct {
	primitive[uint32]
	hash model.HashCache
}

var unsignedIntDescriptor = primitiveDescriptor("unsignedInt")

// NewUnsignedInt returns an UnsignedInt holding v or an error if v is not a valid unsignedInt.
func NewUnsignedInt(v uint32) (*UnsignedInt, error) {
	return NewUnsignedIntBuilder().SetValue(v).Build()
}

// MustUnsignedInt is like NewUnsignedInt but panics on error.
func MustUnsignedInt(v uint32) *UnsignedInt {
	p, err := NewUnsignedInt(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *UnsignedInt) TypeName() string { return "unsignedInt" }
func (p *UnsignedInt) Descriptor() *model.Descriptor { return unsignedIntDescriptor }
func (p *UnsignedInt) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *UnsignedInt) Equal(o *UnsignedInt) bool { return model.Equal(p, o) }
func (p *UnsignedInt) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *UnsignedInt) ToBuilder() *UnsignedIntBuilder {
	return &UnsignedIntBuilder{p.toPrimitiveBuilder()}
}

// UnsignedIntBuilder builds an UnsignedInt.
type UnsignedIntBuilder struct {
	primitiveBuilder[uint32]
}

func NewUnsignedIntBuilder() *UnsignedIntBuilder { return &UnsignedIntBuilder{} }

func (b *UnsignedIntBuilder) SetValue(v uint32) *UnsignedIntBuilder {
	b.value = &v
	return b
}

func (b *UnsignedIntBuilder) SetId(id string) *UnsignedIntBuilder {
	b.id = id
	return b
}

func (b *UnsignedIntBuilder) AddExtension(ext ...*Extension) *UnsignedIntBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *UnsignedIntBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "unsignedInt", name, value, asUint32)
}

func (b *UnsignedIntBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the UnsignedInt.
func (b *UnsignedIntBuilder) Build() (*UnsignedInt, error) {
	var c checker
	p := &UnsignedInt{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkUnsignedInt)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("unsignedInt")
	}
	return p, nil
}

// String is a sequence of Unicode characters.
type String struct {
	primitive[string]
	hash model.HashCache
}

var stringDescriptor = primitiveDescriptor("string")

// NewString returns a String holding v, nil if v is empty.
func NewString(v string) *String {
	if v == "" {
		return nil
	}
	return &String{primitive: primitive[string]{value: &v}}
}

func (p *String) TypeName() string { return "string" }
func (p *String) Descriptor() *model.Descriptor { return stringDescriptor }
func (p *String) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *String) Equal(o *String) bool { return model.Equal(p, o) }
func (p *String) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *String) ToBuilder() *StringBuilder {
	return &StringBuilder{p.toPrimitiveBuilder()}
}

// StringBuilder builds a String.
type StringBuilder struct {
	primitiveBuilder[string]
}

func NewStringBuilder() *StringBuilder { return &StringBuilder{} }

func (b *StringBuilder) SetValue(v string) *StringBuilder {
	b.value = &v
	return b
}

func (b *StringBuilder) SetId(id string) *StringBuilder {
	b.id = id
	return b
}

func (b *StringBuilder) AddExtension(ext ...*Extension) *StringBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *StringBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "string", name, value, asString)
}

func (b *StringBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the String.
func (b *StringBuilder) Build() (*String, error) {
	var c checker
	p := &String{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkNonEmpty)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("string")
	}
	return p, nil
}

// Code is a token taken from a set of controlled strings.
type Code struct {
	primitive[string]
	hash model.HashCache
}

var codeDescriptor = primitiveDescriptor("code")

// NewCode returns a Code holding v or an error if v is not a valid code.
func NewCode(v string) (*Code, error) {
	return NewCodeBuilder().SetValue(v).Build()
}

// MustCode is like NewCode but panics on error.
func MustCode(v string) *Code {
	p, err := NewCode(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Code) TypeName() string { return "code" }
func (p *Code) Descriptor() *model.Descriptor { return codeDescriptor }
func (p *Code) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Code) Equal(o *Code) bool { return model.Equal(p, o) }
func (p *Code) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Code) ToBuilder() *CodeBuilder {
	return &CodeBuilder{p.toPrimitiveBuilder()}
}

// CodeBuilder builds a Code.
type CodeBuilder struct {
	primitiveBuilder[string]
}

func NewCodeBuilder() *CodeBuilder { return &CodeBuilder{} }

func (b *CodeBuilder) SetValue(v string) *CodeBuilder {
	b.value = &v
	return b
}

func (b *CodeBuilder) SetId(id string) *CodeBuilder {
	b.id = id
	return b
}

func (b *CodeBuilder) AddExtension(ext ...*Extension) *CodeBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *CodeBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "code", name, value, asString)
}

func (b *CodeBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Code.
func (b *CodeBuilder) Build() (*Code, error) {
	var c checker
	p := &Code{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkCode)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("code")
	}
	return p, nil
}

// Id is an identifier of up to 64 characters.
type Id struct {
	primitive[string]
	hash model.HashCache
}

var idDescriptor = primitiveDescriptor("id")

// NewId returns an Id holding v or an error if v is not a valid id.
func NewId(v string) (*Id, error) {
	return NewIdBuilder().SetValue(v).Build()
}

// MustId is like NewId but panics on error.
func MustId(v string) *Id {
	p, err := NewId(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Id) TypeName() string { return "id" }
func (p *Id) Descriptor() *model.Descriptor { return idDescriptor }
func (p *Id) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Id) Equal(o *Id) bool { return model.Equal(p, o) }
func (p *Id) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Id) ToBuilder() *IdBuilder {
	return &IdBuilder{p.toPrimitiveBuilder()}
}

// IdBuilder builds an Id.
type IdBuilder struct {
	primitiveBuilder[string]
}

func NewIdBuilder() *IdBuilder { return &IdBuilder{} }

func (b *IdBuilder) SetValue(v string) *IdBuilder {
	b.value = &v
	return b
}

func (b *IdBuilder) SetId(id string) *IdBuilder {
	b.id = id
	return b
}

func (b *IdBuilder) AddExtension(ext ...*Extension) *IdBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *IdBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "id", name, value, asString)
}

func (b *IdBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Id.
func (b *IdBuilder) Build() (*Id, error) {
	var c checker
	p := &Id{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkIdValue)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("id")
	}
	return p, nil
}

// Uri is a Uniform Resource Identifier.
type Uri struct {
	primitive[string]
	hash model.HashCache
}

var uriDescriptor = primitiveDescriptor("uri")

// NewUri returns an Uri holding v, nil if v is empty.
func NewUri(v string) *Uri {
	if v == "" {
		return nil
	}
	return &Uri{primitive: primitive[string]{value: &v}}
}

func (p *Uri) TypeName() string { return "uri" }
func (p *Uri) Descriptor() *model.Descriptor { return uriDescriptor }
func (p *Uri) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Uri) Equal(o *Uri) bool { return model.Equal(p, o) }
func (p *Uri) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Uri) ToBuilder() *UriBuilder {
	return &UriBuilder{p.toPrimitiveBuilder()}
}

// UriBuilder builds an Uri.
type UriBuilder struct {
	primitiveBuilder[string]
}

func NewUriBuilder() *UriBuilder { return &UriBuilder{} }

func (b *UriBuilder) SetValue(v string) *UriBuilder {
	b.value = &v
	return b
}

func (b *UriBuilder) SetId(id string) *UriBuilder {
	b.id = id
	return b
}

func (b *UriBuilder) AddExtension(ext ...*Extension) *UriBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *UriBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "uri", name, value, asString)
}

func (b *UriBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Uri.
func (b *UriBuilder) Build() (*Uri, error) {
	var c checker
	p := &Uri{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkNonEmpty)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("uri")
	}
	return p, nil
}

// Url is a Uniform Resource Locator.
type Url struct {
	primitive[string]
	hash model.HashCache
}

var urlDescriptor = primitiveDescriptor("url")

// NewUrl returns an Url holding v, nil if v is empty.
func NewUrl(v string) *Url {
	if v == "" {
		return nil
	}
	return &Url{primitive: primitive[string]{value: &v}}
}

func (p *Url) TypeName() string { return "url" }
func (p *Url) Descriptor() *model.Descriptor { return urlDescriptor }
func (p *Url) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Url) Equal(o *Url) bool { return model.Equal(p, o) }
func (p *Url) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Url) ToBuilder() *UrlBuilder {
	return &UrlBuilder{p.toPrimitiveBuilder()}
}

// UrlBuilder builds an Url.
type UrlBuilder struct {
	primitiveBuilder[string]
}

func NewUrlBuilder() *UrlBuilder { return &UrlBuilder{} }

func (b *UrlBuilder) SetValue(v string) *UrlBuilder {
	b.value = &v
	return b
}

func (b *UrlBuilder) SetId(id string) *UrlBuilder {
	b.id = id
	return b
}

func (b *UrlBuilder) AddExtension(ext ...*Extension) *UrlBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *UrlBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "url", name, value, asString)
}

func (b *UrlBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Url.
func (b *UrlBuilder) Build() (*Url, error) {
	var c checker
	p := &Url{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkNonEmpty)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("url")
	}
	return p, nil
}

// Canonical is a URI that refers to a resource by its canonical URL.
type Canonical struct {
	primitive[string]
	hash model.HashCache
}

var canonicalDescriptor = primitiveDescriptor("canonical")

// NewCanonical returns a Canonical holding v, nil if v is empty.
func NewCanonical(v string) *Canonical {
	if v == "" {
		return nil
	}
	return &Canonical{primitive: primitive[string]{value: &v}}
}

func (p *Canonical) TypeName() string { return "canonical" }
func (p *Canonical) Descriptor() *model.Descriptor { return canonicalDescriptor }
func (p *Canonical) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Canonical) Equal(o *Canonical) bool { return model.Equal(p, o) }
func (p *Canonical) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Canonical) ToBuilder() *CanonicalBuilder {
	return &CanonicalBuilder{p.toPrimitiveBuilder()}
}

// CanonicalBuilder builds a Canonical.
type CanonicalBuilder struct {
	primitiveBuilder[string]
}

func NewCanonicalBuilder() *CanonicalBuilder { return &CanonicalBuilder{} }

func (b *CanonicalBuilder) SetValue(v string) *CanonicalBuilder {
	b.value = &v
	return b
}

func (b *CanonicalBuilder) SetId(id string) *CanonicalBuilder {
	b.id = id
	return b
}

func (b *CanonicalBuilder) AddExtension(ext ...*Extension) *CanonicalBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *CanonicalBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "canonical", name, value, asString)
}

func (b *CanonicalBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Canonical.
func (b *CanonicalBuilder) Build() (*Canonical, error) {
	var c checker
	p := &Canonical{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkNonEmpty)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("canonical")
	}
	return p, nil
}

// Markdown is a string that may contain GFM markdown syntax.
type Markdown struct {
	primitive[string]
	hash model.HashCache
}

var markdownDescriptor = primitiveDescriptor("markdown")

// NewMarkdown returns a Markdown holding v, nil if v is empty.
func NewMarkdown(v string) *Markdown {
	if v == "" {
		return nil
	}
	return &Markdown{primitive: primitive[string]{value: &v}}
}

func (p *Markdown) TypeName() string { return "markdown" }
func (p *Markdown) Descriptor() *model.Descriptor { return markdownDescriptor }
func (p *Markdown) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Markdown) Equal(o *Markdown) bool { return model.Equal(p, o) }
func (p *Markdown) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Markdown) ToBuilder() *MarkdownBuilder {
	return &MarkdownBuilder{p.toPrimitiveBuilder()}
}

// MarkdownBuilder builds a Markdown.
type MarkdownBuilder struct {
	primitiveBuilder[string]
}

func NewMarkdownBuilder() *MarkdownBuilder { return &MarkdownBuilder{} }

func (b *MarkdownBuilder) SetValue(v string) *MarkdownBuilder {
	b.value = &v
	return b
}

func (b *MarkdownBuilder) SetId(id string) *MarkdownBuilder {
	b.id = id
	return b
}

func (b *MarkdownBuilder) AddExtension(ext ...*Extension) *MarkdownBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *MarkdownBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "markdown", name, value, asString)
}

func (b *MarkdownBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Markdown.
func (b *MarkdownBuilder) Build() (*Markdown, error) {
	var c checker
	p := &Markdown{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkNonEmpty)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("markdown")
	}
	return p, nil
}

// Date is a date or partial date (year, year-month) without a time zone.
type Date struct {
	primitive[string]
	hash model.HashCache
}

var dateDescriptor = primitiveDescriptor("date")

// NewDate returns a Date holding v or an error if v is not a valid date.
func NewDate(v string) (*Date, error) {
	return NewDateBuilder().SetValue(v).Build()
}

// MustDate is like NewDate but panics on error.
func MustDate(v string) *Date {
	p, err := NewDate(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Date) TypeName() string { return "date" }
func (p *Date) Descriptor() *model.Descriptor { return dateDescriptor }
func (p *Date) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Date) Equal(o *Date) bool { return model.Equal(p, o) }
func (p *Date) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Date) ToBuilder() *DateBuilder {
	return &DateBuilder{p.toPrimitiveBuilder()}
}

// DateBuilder builds a Date.
type DateBuilder struct {
	primitiveBuilder[string]
}

func NewDateBuilder() *DateBuilder { return &DateBuilder{} }

func (b *DateBuilder) SetValue(v string) *DateBuilder {
	b.value = &v
	return b
}

func (b *DateBuilder) SetId(id string) *DateBuilder {
	b.id = id
	return b
}

func (b *DateBuilder) AddExtension(ext ...*Extension) *DateBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *DateBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "date", name, value, asString)
}

func (b *DateBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Date.
func (b *DateBuilder) Build() (*Date, error) {
	var c checker
	p := &Date{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkDate)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("date")
	}
	return p, nil
}

// DateTime is a date, date-time or partial date. A time requires a time zone.
type DateTime struct {
	primitive[string]
	hash model.HashCache
}

var dateTimeDescriptor = primitiveDescriptor("dateTime")

// NewDateTime returns a DateTime holding v or an error if v is not a valid dateTime.
func NewDateTime(v string) (*DateTime, error) {
	return NewDateTimeBuilder().SetValue(v).Build()
}

// MustDateTime is like NewDateTime but panics on error.
func MustDateTime(v string) *DateTime {
	p, err := NewDateTime(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *DateTime) TypeName() string { return "dateTime" }
func (p *DateTime) Descriptor() *model.Descriptor { return dateTimeDescriptor }
func (p *DateTime) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *DateTime) Equal(o *DateTime) bool { return model.Equal(p, o) }
func (p *DateTime) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *DateTime) ToBuilder() *DateTimeBuilder {
	return &DateTimeBuilder{p.toPrimitiveBuilder()}
}

// DateTimeBuilder builds a DateTime.
type DateTimeBuilder struct {
	primitiveBuilder[string]
}

func NewDateTimeBuilder() *DateTimeBuilder { return &DateTimeBuilder{} }

func (b *DateTimeBuilder) SetValue(v string) *DateTimeBuilder {
	b.value = &v
	return b
}

func (b *DateTimeBuilder) SetId(id string) *DateTimeBuilder {
	b.id = id
	return b
}

func (b *DateTimeBuilder) AddExtension(ext ...*Extension) *DateTimeBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *DateTimeBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "dateTime", name, value, asString)
}

func (b *DateTimeBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the DateTime.
func (b *DateTimeBuilder) Build() (*DateTime, error) {
	var c checker
	p := &DateTime{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkDateTime)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("dateTime")
	}
	return p, nil
}

// Instant is a point in time with at least second precision and a time zone.
type Instant struct {
	primitive[string]
	hash model.HashCache
}

var instantDescriptor = primitiveDescriptor("instant")

// NewInstant returns an Instant holding v or an error if v is not a valid instant.
func NewInstant(v string) (*Instant, error) {
	return NewInstantBuilder().SetValue(v).Build()
}

// MustInstant is like NewInstant but panics on error.
func MustInstant(v string) *Instant {
	p, err := NewInstant(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Instant) TypeName() string { return "instant" }
func (p *Instant) Descriptor() *model.Descriptor { return instantDescriptor }
func (p *Instant) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Instant) Equal(o *Instant) bool { return model.Equal(p, o) }
func (p *Instant) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Instant) ToBuilder() *InstantBuilder {
	return &InstantBuilder{p.toPrimitiveBuilder()}
}

// InstantBuilder builds an Instant.
type InstantBuilder struct {
	primitiveBuilder[string]
}

func NewInstantBuilder() *InstantBuilder { return &InstantBuilder{} }

func (b *InstantBuilder) SetValue(v string) *InstantBuilder {
	b.value = &v
	return b
}

func (b *InstantBuilder) SetId(id string) *InstantBuilder {
	b.id = id
	return b
}

func (b *InstantBuilder) AddExtension(ext ...*Extension) *InstantBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *InstantBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "instant", name, value, asString)
}

func (b *InstantBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Instant.
func (b *InstantBuilder) Build() (*Instant, error) {
	var c checker
	p := &Instant{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkInstant)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("instant")
	}
	return p, nil
}

// Time is a time during the day, without a time zone.
type Time struct {
	primitive[string]
	hash model.HashCache
}

var timeDescriptor = primitiveDescriptor("time")

// NewTime returns a Time holding v or an error if v is not a valid time.
func NewTime(v string) (*Time, error) {
	return NewTimeBuilder().SetValue(v).Build()
}

// MustTime is like NewTime but panics on error.
func MustTime(v string) *Time {
	p, err := NewTime(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Time) TypeName() string { return "time" }
func (p *Time) Descriptor() *model.Descriptor { return timeDescriptor }
func (p *Time) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Time) Equal(o *Time) bool { return model.Equal(p, o) }
func (p *Time) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Time) ToBuilder() *TimeBuilder {
	return &TimeBuilder{p.toPrimitiveBuilder()}
}

// TimeBuilder builds a Time.
type TimeBuilder struct {
	primitiveBuilder[string]
}

func NewTimeBuilder() *TimeBuilder { return &TimeBuilder{} }

func (b *TimeBuilder) SetValue(v string) *TimeBuilder {
	b.value = &v
	return b
}

func (b *TimeBuilder) SetId(id string) *TimeBuilder {
	b.id = id
	return b
}

func (b *TimeBuilder) AddExtension(ext ...*Extension) *TimeBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *TimeBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "time", name, value, asString)
}

func (b *TimeBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Time.
func (b *TimeBuilder) Build() (*Time, error) {
	var c checker
	p := &Time{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkTime)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("time")
	}
	return p, nil
}

// Base64Binary is a stream of bytes, base64 encoded.
type Base64Binary struct {
	primitive[string]
	hash model.HashCache
}

var base64BinaryDescriptor = primitiveDescriptor("base64Binary")

// NewBase64Binary returns a Base64Binary holding v or an error if v is not a valid base64Binary.
func NewBase64Binary(v string) (*Base64Binary, error) {
	return NewBase64BinaryBuilder().SetValue(v).Build()
}

// MustBase64Binary is like NewBase64Binary but panics on error.
func MustBase64Binary(v string) *Base64Binary {
	p, err := NewBase64Binary(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Base64Binary) TypeName() string { return "base64Binary" }
func (p *Base64Binary) Descriptor() *model.Descriptor { return base64BinaryDescriptor }
func (p *Base64Binary) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Base64Binary) Equal(o *Base64Binary) bool { return model.Equal(p, o) }
func (p *Base64Binary) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Base64Binary) ToBuilder() *Base64BinaryBuilder {
	return &Base64BinaryBuilder{p.toPrimitiveBuilder()}
}

// Base64BinaryBuilder builds a Base64Binary.
type Base64BinaryBuilder struct {
	primitiveBuilder[string]
}

func NewBase64BinaryBuilder() *Base64BinaryBuilder { return &Base64BinaryBuilder{} }

func (b *Base64BinaryBuilder) SetValue(v string) *Base64BinaryBuilder {
	b.value = &v
	return b
}

func (b *Base64BinaryBuilder) SetId(id string) *Base64BinaryBuilder {
	b.id = id
	return b
}

func (b *Base64BinaryBuilder) AddExtension(ext ...*Extension) *Base64BinaryBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *Base64BinaryBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "base64Binary", name, value, asString)
}

func (b *Base64BinaryBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Base64Binary.
func (b *Base64BinaryBuilder) Build() (*Base64Binary, error) {
	var c checker
	p := &Base64Binary{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkBase64)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("base64Binary")
	}
	return p, nil
}

// Uuid is a UUID expressed as a URI (urn:uuid:...).
type Uuid struct {
	primitive[string]
	hash model.HashCache
}

var uuidDescriptor = primitiveDescriptor("uuid")

// NewUuid returns an Uuid holding v or an error if v is not a valid uuid.
func NewUuid(v string) (*Uuid, error) {
	return NewUuidBuilder().SetValue(v).Build()
}

// MustUuid is like NewUuid but panics on error.
func MustUuid(v string) *Uuid {
	p, err := NewUuid(v)
	if err != nil {
		panic(err)
	}
	return p
}

func (p *Uuid) TypeName() string { return "uuid" }
func (p *Uuid) Descriptor() *model.Descriptor { return uuidDescriptor }
func (p *Uuid) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Uuid) Equal(o *Uuid) bool { return model.Equal(p, o) }
func (p *Uuid) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Uuid) ToBuilder() *UuidBuilder {
	return &UuidBuilder{p.toPrimitiveBuilder()}
}

// UuidBuilder builds an Uuid.
type UuidBuilder struct {
	primitiveBuilder[string]
}

func NewUuidBuilder() *UuidBuilder { return &UuidBuilder{} }

func (b *UuidBuilder) SetValue(v string) *UuidBuilder {
	b.value = &v
	return b
}

func (b *UuidBuilder) SetId(id string) *UuidBuilder {
	b.id = id
	return b
}

func (b *UuidBuilder) AddExtension(ext ...*Extension) *UuidBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *UuidBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "uuid", name, value, asString)
}

func (b *UuidBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Uuid.
func (b *UuidBuilder) Build() (*Uuid, error) {
	var c checker
	p := &Uuid{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkUuid)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("uuid")
	}
	return p, nil
}

// Oid is an OID expressed as a URI (urn:oid:...).
type Oid struct {
	primitive[string]
	hash model.HashCache
}

var oidDescriptor = primitiveDescriptor("oid")

// NewOid returns an Oid holding v or an error if v is not a valid oid.
func NewOid(v string) (*Oid, error) {
	return NewOidBuilder().SetValue(v).Build()
}

func (p *Oid) TypeName() string { return "oid" }
func (p *Oid) Descriptor() *model.Descriptor { return oidDescriptor }
func (p *Oid) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Oid) Equal(o *Oid) bool { return model.Equal(p, o) }
func (p *Oid) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Oid) ToBuilder() *OidBuilder {
	return &OidBuilder{p.toPrimitiveBuilder()}
}

// OidBuilder builds an Oid.
type OidBuilder struct {
	primitiveBuilder[string]
}

func NewOidBuilder() *OidBuilder { return &OidBuilder{} }

func (b *OidBuilder) SetValue(v string) *OidBuilder {
	b.value = &v
	return b
}

func (b *OidBuilder) SetId(id string) *OidBuilder {
	b.id = id
	return b
}

func (b *OidBuilder) AddExtension(ext ...*Extension) *OidBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *OidBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "oid", name, value, asString)
}

func (b *OidBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Oid.
func (b *OidBuilder) Build() (*Oid, error) {
	var c checker
	p := &Oid{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkOid)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("oid")
	}
	return p, nil
}

// Xhtml is XHTML content of a narrative.
type Xhtml struct {
	primitive[string]
	hash model.HashCache
}

var xhtmlDescriptor = primitiveDescriptor("xhtml")

// NewXhtml returns a Xhtml holding v, nil if v is empty.
func NewXhtml(v string) *Xhtml {
	if v == "" {
		return nil
	}
	return &Xhtml{primitive: primitive[string]{value: &v}}
}

func (p *Xhtml) TypeName() string { return "xhtml" }
func (p *Xhtml) Descriptor() *model.Descriptor { return xhtmlDescriptor }
func (p *Xhtml) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Xhtml) Equal(o *Xhtml) bool { return model.Equal(p, o) }
func (p *Xhtml) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Xhtml) ToBuilder() *XhtmlBuilder {
	return &XhtmlBuilder{p.toPrimitiveBuilder()}
}

// XhtmlBuilder builds a Xhtml.
type XhtmlBuilder struct {
	primitiveBuilder[string]
}

func NewXhtmlBuilder() *XhtmlBuilder { return &XhtmlBuilder{} }

func (b *XhtmlBuilder) SetValue(v string) *XhtmlBuilder {
	b.value = &v
	return b
}

func (b *XhtmlBuilder) SetId(id string) *XhtmlBuilder {
	b.id = id
	return b
}

func (b *XhtmlBuilder) AddExtension(ext ...*Extension) *XhtmlBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *XhtmlBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "xhtml", name, value, asString)
}

func (b *XhtmlBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Xhtml.
func (b *XhtmlBuilder) Build() (*Xhtml, error) {
	var c checker
	p := &Xhtml{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkNonEmpty)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("xhtml")
	}
	return p, nil
}
