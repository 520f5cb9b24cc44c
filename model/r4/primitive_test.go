package r4_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/r4"
	"github.com/damedic/fhir-model-go/model/validation"
)

func TestPrimitiveLexicalSpace(t *testing.T) {
	tests := []struct {
		name    string
		build   func() error
		wantErr bool
	}{
		{"date", func() error { _, err := r4.NewDate("2024-02-29"); return err }, false},
		{"partial date", func() error { _, err := r4.NewDate("2024-02"); return err }, false},
		{"date with month 13", func() error { _, err := r4.NewDate("2024-13-01"); return err }, true},
		{"dateTime", func() error { _, err := r4.NewDateTime("2024-02-29T10:00:00+01:00"); return err }, false},
		{"dateTime without zone", func() error { _, err := r4.NewDateTime("2024-02-29T10:00:00"); return err }, true},
		{"instant", func() error { _, err := r4.NewInstant("2024-02-29T10:00:00.123Z"); return err }, false},
		{"instant without time", func() error { _, err := r4.NewInstant("2024-02-29"); return err }, true},
		{"time", func() error { _, err := r4.NewTime("23:59:59"); return err }, false},
		{"time out of range", func() error { _, err := r4.NewTime("24:00:00"); return err }, true},
		{"code", func() error { _, err := r4.NewCode("entered-in-error"); return err }, false},
		{"code with leading space", func() error { _, err := r4.NewCode(" x"); return err }, true},
		{"id", func() error { _, err := r4.NewId("a-1.b"); return err }, false},
		{"id too long", func() error { _, err := r4.NewId(strings.Repeat("a", 65)); return err }, true},
		{"positiveInt", func() error { _, err := r4.NewPositiveInt(1); return err }, false},
		{"positiveInt zero", func() error { _, err := r4.NewPositiveInt(0); return err }, true},
		{"unsignedInt zero", func() error { _, err := r4.NewUnsignedInt(0); return err }, false},
		{"unsignedInt too large", func() error { _, err := r4.NewUnsignedInt(math.MaxInt32 + 1); return err }, true},
		{"uuid", func() error { _, err := r4.NewUuid("urn:uuid:c757873d-ec9a-4326-a141-556f43239520"); return err }, false},
		{"uuid without prefix", func() error { _, err := r4.NewUuid("c757873d-ec9a-4326-a141-556f43239520"); return err }, true},
		{"oid", func() error { _, err := r4.NewOid("urn:oid:2.16.840.1.113883"); return err }, false},
		{"oid without prefix", func() error { _, err := r4.NewOid("2.16.840"); return err }, true},
		{"base64Binary", func() error { _, err := r4.NewBase64Binary("aGVs bG8="); return err }, false},
		{"base64Binary invalid", func() error { _, err := r4.NewBase64Binary("!!"); return err }, true},
		{"decimal", func() error { _, err := r4.ParseDecimal("-0.001e3"); return err }, false},
		{"decimal invalid", func() error { _, err := r4.ParseDecimal("one"); return err }, true},
		{"decimal infinite", func() error { _, err := r4.ParseDecimal("Infinity"); return err }, true},
		{"string", func() error { _, err := r4.NewStringBuilder().SetValue(" ").Build(); return err }, false},
		{"string empty", func() error { _, err := r4.NewStringBuilder().SetValue("").Build(); return err }, true},
		{"uri empty", func() error { _, err := r4.NewUriBuilder().SetValue("").Build(); return err }, true},
		{"url empty", func() error { _, err := r4.NewUrlBuilder().SetValue("").Build(); return err }, true},
		{"canonical empty", func() error { _, err := r4.NewCanonicalBuilder().SetValue("").Build(); return err }, true},
		{"markdown empty", func() error { _, err := r4.NewMarkdownBuilder().SetValue("").Build(); return err }, true},
		{"xhtml empty", func() error { _, err := r4.NewXhtmlBuilder().SetValue("").Build(); return err }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.build()
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, validation.ErrInvalidValue) {
				t.Errorf("error %v is not an InvalidValueError", err)
			}
		})
	}
}

func TestPrimitiveSetField(t *testing.T) {
	b := r4.NewIntegerBuilder()
	if err := b.SetField("value", "42"); !errors.Is(err, validation.ErrInvalidElementType) {
		t.Errorf("SetField(value, string) error = %v", err)
	}
	if err := b.SetField("value", int64(math.MaxInt32)+1); !errors.Is(err, validation.ErrInvalidValue) {
		t.Errorf("SetField(value, overflow) error = %v", err)
	}
	if err := b.SetField("value", int32(42)); err != nil {
		t.Fatal(err)
	}
	i, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := i.Value(); !ok || v != 42 {
		t.Errorf("Value() = %d, %v", v, ok)
	}
}

func TestDecimalScale(t *testing.T) {
	a, err := r4.ParseDecimal("1.50")
	if err != nil {
		t.Fatal(err)
	}
	b, err := r4.ParseDecimal("1.5")
	if err != nil {
		t.Fatal(err)
	}

	v, _ := a.Value()
	if v.String() != "1.50" {
		t.Errorf("Value() = %s, want 1.50", v)
	}
	if a.Equal(b) {
		t.Error("1.50 and 1.5 must differ")
	}

	v.SetInt64(7)
	if again, _ := a.Value(); again.String() != "1.50" {
		t.Errorf("modifying Value() changed the element to %s", again)
	}
}

type decimalMutator struct {
	model.BaseVisitor
}

func (decimalMutator) VisitValue(_ string, value any) error {
	if d, ok := value.(*apd.Decimal); ok {
		d.SetInt64(42)
	}
	return nil
}

func TestDecimalVisitValueIsCopy(t *testing.T) {
	d, err := r4.ParseDecimal("1.50")
	if err != nil {
		t.Fatal(err)
	}
	hash := d.Hash()

	if err := model.Walk(decimalMutator{}, "value", -1, d); err != nil {
		t.Fatal(err)
	}

	if v, _ := d.Value(); v.String() != "1.50" {
		t.Errorf("visitor changed the element to %s", v)
	}
	fresh, err := r4.ParseDecimal("1.50")
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equal(fresh) {
		t.Error("element no longer equals a fresh 1.50")
	}
	if d.Hash() != hash || fresh.Hash() != hash {
		t.Errorf("Hash() = %d, fresh %d, before walk %d", d.Hash(), fresh.Hash(), hash)
	}
}

func TestNewStringEmpty(t *testing.T) {
	if s := r4.NewString(""); s != nil {
		t.Errorf("NewString(\"\") = %v, want nil", s)
	}
	if r := r4.NewReference(""); r != nil {
		t.Errorf("NewReference(\"\") = %v, want nil", r)
	}
}

func TestBase64Bytes(t *testing.T) {
	data := []byte{0, 1, 2, 0xff}
	b := r4.NewBase64BinaryFromBytes(data)
	got, err := b.Bytes()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(data, got); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
}

func TestRandomUuid(t *testing.T) {
	a, b := r4.NewRandomUuid(), r4.NewRandomUuid()
	va, _ := a.Value()
	if _, err := r4.NewUuid(va); err != nil {
		t.Errorf("NewRandomUuid() = %s is not a valid uuid: %v", va, err)
	}
	if a.Equal(b) {
		t.Error("two random uuids are equal")
	}
}

func TestPrimitiveWithExtensionOnly(t *testing.T) {
	ext, err := r4.NewExtensionBuilder().
		SetUrl("http://hl7.org/fhir/StructureDefinition/data-absent-reason").
		SetValue(r4.MustCode("asked-unknown")).
		Build()
	if err != nil {
		t.Fatal(err)
	}
	d, err := r4.NewDateBuilder().AddExtension(ext).Build()
	if err != nil {
		t.Fatal(err)
	}
	if d.HasValue() {
		t.Error("HasValue() = true")
	}
	if !d.HasChildren() {
		t.Error("HasChildren() = false")
	}
	if model.Equal(d, r4.MustDate("2024")) {
		t.Error("extension-only date equals a date with value")
	}
}
