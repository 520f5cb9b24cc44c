package r4

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

// primitive is embedded by all primitive types.
type primitive[V any] struct {
	elementBase
	value *V
}

// Value returns the value, false if the element only carries extensions.
func (p *primitive[V]) Value() (V, bool) {
	if p.value == nil {
		var zero V
		return zero, false
	}
	return *p.value, true
}

// HasValue reports whether the element has a value.
func (p *primitive[V]) HasValue() bool { return p.value != nil }

// HasChildren reports whether the element carries extensions.
func (p *primitive[V]) HasChildren() bool { return len(p.extension) > 0 }

func (p *primitive[V]) rawValue() (any, bool) {
	if p.value == nil {
		return nil, false
	}
	return *p.value, true
}

func (p *primitive[V]) toPrimitiveBuilder() primitiveBuilder[V] {
	return primitiveBuilder[V]{
		elementBuilder: p.elementBase.toBuilder(),
		value:          p.value,
	}
}

type valuer interface {
	elementHolder
	rawValue() (any, bool)
}

func primitiveDescriptor(name string) *model.Descriptor {
	return model.NewDescriptor(name, model.PrimitiveKind, append(elementFields(),
		model.ValueField("value", func(p valuer) (any, bool) { return p.rawValue() }),
	)...)
}

type primitiveBuilder[V any] struct {
	elementBuilder
	value *V
}

func setPrimitiveField[V any](b *primitiveBuilder[V], typeName, name string, value any, conv func(any) (V, error)) error {
	if name != "value" {
		return b.setElementField(typeName, name, value)
	}
	if model.IsNil(value) {
		b.value = nil
		return nil
	}
	v, err := conv(value)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

func buildPrimitive[V any](b *primitiveBuilder[V], c *checker, lexical func(V) error) primitive[V] {
	p := primitive[V]{
		elementBase: b.elementBuilder.build(c),
		value:       b.value,
	}
	if p.value != nil && lexical != nil {
		c.check(lexical(*p.value))
	}
	return p
}

func wrongValueType(value any, want string) error {
	return &validation.InvalidElementTypeError{Field: "value", Index: -1, Type: fmt.Sprintf("%T", value), Want: want}
}

func invalidValue(value any, reason string) error {
	return &validation.InvalidValueError{Field: "value", Value: fmt.Sprint(value), Reason: reason}
}

func asString(value any) (string, error) {
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", wrongValueType(value, "string")
}

func asBool(value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	return false, wrongValueType(value, "bool")
}

func asInt64(value any) (int64, error) {
	switch v := value.(type) {
	case int32:
		return int64(v), nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint32:
		return int64(v), nil
	case json.Number:
		i, err := strconv.ParseInt(string(v), 10, 64)
		if err != nil {
			return 0, invalidValue(v, "not an integer")
		}
		return i, nil
	}
	return 0, wrongValueType(value, "integer")
}

func asInt32(value any) (int32, error) {
	i, err := asInt64(value)
	if err != nil {
		return 0, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, invalidValue(i, "out of 32 bit range")
	}
	return int32(i), nil
}

func asUint32(value any) (uint32, error) {
	i, err := asInt64(value)
	if err != nil {
		return 0, err
	}
	if i < 0 || i > math.MaxInt32 {
		return 0, invalidValue(i, "must be between 0 and 2147483647")
	}
	return uint32(i), nil
}

func asDecimal(value any) (*apd.Decimal, error) {
	var s string
	switch v := value.(type) {
	case *apd.Decimal:
		return new(apd.Decimal).Set(v), nil
	case apd.Decimal:
		return new(apd.Decimal).Set(&v), nil
	case json.Number:
		s = string(v)
	case string:
		s = v
	case int32:
		return apd.New(int64(v), 0), nil
	case int:
		return apd.New(int64(v), 0), nil
	case int64:
		return apd.New(v, 0), nil
	default:
		return nil, wrongValueType(value, "decimal")
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, invalidValue(s, "not a decimal")
	}
	return d, nil
}

const yearPattern = `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)`
const timePattern = `([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?`
const zonePattern = `(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00))`

var (
	codeRegex     = regexp.MustCompile(`^[^\s]+( [^\s]+)*$`)
	idRegex       = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	dateRegex     = regexp.MustCompile(`^` + yearPattern + `(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1]))?)?$`)
	dateTimeRegex = regexp.MustCompile(`^` + yearPattern + `(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1])(T` + timePattern + zonePattern + `)?)?)?$`)
	instantRegex  = regexp.MustCompile(`^` + yearPattern + `-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])T` + timePattern + zonePattern + `$`)
	timeRegex     = regexp.MustCompile(`^` + timePattern + `$`)
	oidRegex      = regexp.MustCompile(`^urn:oid:[0-2](\.(0|[1-9][0-9]*))+$`)
)

func matching(re *regexp.Regexp, typeName string) func(string) error {
	return func(v string) error {
		if !re.MatchString(v) {
			return invalidValue(v, "not a valid "+typeName)
		}
		return nil
	}
}

var (
	checkCode     = matching(codeRegex, "code")
	checkDate     = matching(dateRegex, "date")
	checkDateTime = matching(dateTimeRegex, "dateTime")
	checkInstant  = matching(instantRegex, "instant")
	checkTime     = matching(timeRegex, "time")
	checkOid      = matching(oidRegex, "oid")
)

// checkNonEmpty rejects the empty string, which no FHIR string-based type admits.
func checkNonEmpty(v string) error {
	if v == "" {
		return invalidValue(v, "must not be empty")
	}
	return nil
}

func checkId(v string, field string) error {
	if !idRegex.MatchString(v) {
		return &validation.InvalidValueError{Field: field, Value: v, Reason: "not a valid id"}
	}
	return nil
}

func checkIdValue(v string) error { return checkId(v, "value") }

func checkPositiveInt(v uint32) error {
	if v == 0 {
		return invalidValue(v, "must be positive")
	}
	return nil
}

func checkBase64(v string) error {
	if _, err := base64.StdEncoding.DecodeString(stripSpace(v)); err != nil {
		return invalidValue(v, "not valid base64")
	}
	return nil
}

func checkUuid(v string) error {
	rest, ok := strings.CutPrefix(v, "urn:uuid:")
	if !ok {
		return invalidValue(v, "must start with urn:uuid:")
	}
	if _, err := uuid.Parse(rest); err != nil {
		return invalidValue(v, err.Error())
	}
	return nil
}

func checkDecimal(v *apd.Decimal) error {
	if v.Form != apd.Finite {
		return invalidValue(v, "must be finite")
	}
	return nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}

func checkUnsignedInt(v uint32) error {
	if v > math.MaxInt32 {
		return invalidValue(v, "must not exceed 2147483647")
	}
	return nil
}

// CodeValues returns the code without a system.
func (p *Code) CodeValues() []validation.CodeValue {
	if p == nil || p.value == nil {
		return nil
	}
	return []validation.CodeValue{{Code: *p.value}}
}

// NewRandomUuid returns a Uuid holding a random (version 4) UUID.
func NewRandomUuid() *Uuid {
	v := "urn:uuid:" + uuid.NewString()
	return &Uuid{primitive: primitive[string]{value: &v}}
}

// Bytes decodes the value.
func (p *Base64Binary) Bytes() ([]byte, error) {
	if p.value == nil {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(stripSpace(*p.value))
}

// NewBase64BinaryFromBytes returns a Base64Binary holding data.
func NewBase64BinaryFromBytes(data []byte) *Base64Binary {
	v := base64.StdEncoding.EncodeToString(data)
	return &Base64Binary{primitive: primitive[string]{value: &v}}
}
