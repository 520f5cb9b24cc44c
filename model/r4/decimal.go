package r4

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

// Decimal is a rational number with implicit precision.
//
// The value keeps the scale it was created with, 1.50 and 1.5 are different values.
type Decimal struct {
	primitive[*apd.Decimal]
	hash model.HashCache
}

var decimalDescriptor = primitiveDescriptor("decimal")

// NewDecimal returns a Decimal holding a copy of d.
func NewDecimal(d *apd.Decimal) (*Decimal, error) {
	return NewDecimalBuilder().SetValue(d).Build()
}

// MustDecimal is like NewDecimal but panics on error.
func MustDecimal(d *apd.Decimal) *Decimal {
	p, err := NewDecimal(d)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseDecimal parses s, preserving its scale.
func ParseDecimal(s string) (*Decimal, error) {
	d, err := asDecimal(s)
	if err != nil {
		return nil, validation.WrapBuild("decimal", err)
	}
	return NewDecimal(d)
}

// Value returns a copy of the value.
func (p *Decimal) Value() (*apd.Decimal, bool) {
	if p.value == nil {
		return nil, false
	}
	return new(apd.Decimal).Set(*p.value), true
}

// rawValue returns a copy, visitors must not reach the stored value.
func (p *Decimal) rawValue() (any, bool) {
	if p.value == nil {
		return nil, false
	}
	return new(apd.Decimal).Set(*p.value), true
}

func (p *Decimal) TypeName() string { return "decimal" }
func (p *Decimal) Descriptor() *model.Descriptor { return decimalDescriptor }
func (p *Decimal) Hash() uint64 { return p.hash.Get(func() uint64 { return model.ComputeHash(p) }) }
func (p *Decimal) Equal(o *Decimal) bool { return model.Equal(p, o) }
func (p *Decimal) String() string { return stringify(p) }

// ToBuilder returns a builder initialized with the fields of p.
func (p *Decimal) ToBuilder() *DecimalBuilder {
	return &DecimalBuilder{p.toPrimitiveBuilder()}
}

// DecimalBuilder builds a Decimal.
type DecimalBuilder struct {
	primitiveBuilder[*apd.Decimal]
}

func NewDecimalBuilder() *DecimalBuilder { return &DecimalBuilder{} }

// SetValue sets a copy of d, nil clears the value.
func (b *DecimalBuilder) SetValue(d *apd.Decimal) *DecimalBuilder {
	if d == nil {
		b.value = nil
		return b
	}
	v := new(apd.Decimal).Set(d)
	b.value = &v
	return b
}

func (b *DecimalBuilder) SetId(id string) *DecimalBuilder {
	b.id = id
	return b
}

func (b *DecimalBuilder) AddExtension(ext ...*Extension) *DecimalBuilder {
	b.extension = append(b.extension, ext...)
	return b
}

func (b *DecimalBuilder) SetField(name string, value any) error {
	return setPrimitiveField(&b.primitiveBuilder, "decimal", name, value, asDecimal)
}

func (b *DecimalBuilder) BuildElement() (model.Element, error) {
	p, err := b.Build()
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Build validates the builder state and returns the Decimal.
func (b *DecimalBuilder) Build() (*Decimal, error) {
	var c checker
	p := &Decimal{primitive: buildPrimitive(&b.primitiveBuilder, &c, checkDecimal)}
	c.check(validation.RequireValueOrChildren(p, p.value != nil))
	if c.err != nil {
		return nil, c.result("decimal")
	}
	return p, nil
}
