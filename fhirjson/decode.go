package fhirjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/buger/jsonparser"

	"github.com/damedic/fhir-model-go/model"
	"github.com/damedic/fhir-model-go/model/validation"
)

// Error locates a decoding failure, e.g. at "ServiceRequest.identifier[0].period".
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string { return e.Path + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }

func atPath(path string, err error) error {
	if err == nil {
		return nil
	}
	var pe *Error
	if errors.As(err, &pe) {
		return err
	}
	var be *validation.BuildError
	if errors.As(err, &be) && be.Type == path {
		return err
	}
	return &Error{Path: path, Err: err}
}

// Decoder reads FHIR JSON into the types of a registry.
type Decoder struct {
	reg model.Registry
	cfg config
}

// NewDecoder returns a decoder resolving type names with reg.
func NewDecoder(reg model.Registry, opts ...Option) *Decoder {
	return &Decoder{reg: reg, cfg: newConfig(opts)}
}

// Unmarshal decodes the resource in data.
func Unmarshal(reg model.Registry, data []byte, opts ...Option) (model.Resource, error) {
	return NewDecoder(reg, opts...).Decode(data)
}

// UnmarshalElement decodes an element of the named type.
func UnmarshalElement(reg model.Registry, typeName string, data []byte, opts ...Option) (model.Element, error) {
	return NewDecoder(reg, opts...).DecodeElement(typeName, data)
}

// Decode decodes a resource, its type is taken from the resourceType property.
func (d *Decoder) Decode(data []byte) (model.Resource, error) {
	value, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}
	return d.resource(entry{value, typ}, "")
}

// DecodeElement decodes an element of the named type.
//
// Primitives are read from their bare JSON value, or from an object holding
// id, extension and value as written by Marshal.
func (d *Decoder) DecodeElement(typeName string, data []byte) (model.Element, error) {
	desc, ok := d.reg.Descriptor(typeName)
	if !ok {
		return nil, fmt.Errorf("unknown type %s", typeName)
	}
	value, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, err
	}
	if desc.Kind == model.PrimitiveKind {
		if typ != jsonparser.Object {
			return d.primitive(typeName, entry{value, typ}, entry{}, typeName)
		}
		props, err := readObject(entry{value, typ})
		if err != nil {
			return nil, atPath(typeName, err)
		}
		return d.primitive(typeName, props.values["value"], entry{value, typ}, typeName, "value")
	}
	if desc.Kind == model.ResourceKind {
		return d.resource(entry{value, typ}, "")
	}
	return d.complex(typeName, entry{value, typ}, typeName)
}

// entry is a raw JSON value, strings are unquoted but still escaped.
type entry struct {
	value []byte
	typ   jsonparser.ValueType
}

func (e entry) present() bool {
	return e.typ != jsonparser.NotExist && e.typ != jsonparser.Null
}

type properties struct {
	keys   []string
	values map[string]entry
}

func readObject(e entry) (properties, error) {
	if e.typ != jsonparser.Object {
		return properties{}, fmt.Errorf("expected object, got %s", e.typ)
	}
	props := properties{values: map[string]entry{}}
	err := jsonparser.ObjectEach(e.value, func(key, value []byte, typ jsonparser.ValueType, _ int) error {
		k, err := jsonparser.ParseString(key)
		if err != nil {
			return err
		}
		if _, ok := props.values[k]; ok {
			return fmt.Errorf("duplicate property %q", k)
		}
		props.keys = append(props.keys, k)
		props.values[k] = entry{value, typ}
		return nil
	})
	return props, err
}

func readArray(e entry) ([]entry, error) {
	if !e.present() {
		return nil, nil
	}
	if e.typ != jsonparser.Array {
		return nil, fmt.Errorf("expected array, got %s", e.typ)
	}
	var items []entry
	var itemErr error
	_, err := jsonparser.ArrayEach(e.value, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if err != nil && itemErr == nil {
			itemErr = err
		}
		items = append(items, entry{value, typ})
	})
	if err != nil {
		return nil, err
	}
	return items, itemErr
}

func (d *Decoder) resource(e entry, path string) (model.Resource, error) {
	props, err := readObject(e)
	if err != nil {
		return nil, atPath(orRoot(path, "Resource"), err)
	}
	rt, ok := props.values["resourceType"]
	if !ok || rt.typ != jsonparser.String {
		return nil, atPath(orRoot(path, "Resource"), &validation.MissingRequiredFieldError{Field: "resourceType"})
	}
	typeName, err := jsonparser.ParseString(rt.value)
	if err != nil {
		return nil, atPath(orRoot(path, "Resource"), err)
	}
	path = orRoot(path, typeName)

	desc, ok := d.reg.Descriptor(typeName)
	if !ok || desc.Kind != model.ResourceKind {
		return nil, atPath(path, fmt.Errorf("unknown resource type %s", typeName))
	}
	b, _ := d.reg.NewBuilder(typeName)
	if err := d.fields(desc, b, props, path, "resourceType"); err != nil {
		return nil, err
	}
	el, err := b.BuildElement()
	if err != nil {
		return nil, atPath(path, err)
	}
	return el.(model.Resource), nil
}

func orRoot(path, typeName string) string {
	if path == "" {
		return typeName
	}
	return path
}

func (d *Decoder) complex(typeName string, e entry, path string) (model.Element, error) {
	desc, ok := d.reg.Descriptor(typeName)
	if !ok {
		return nil, atPath(path, fmt.Errorf("unknown type %s", typeName))
	}
	props, err := readObject(e)
	if err != nil {
		return nil, atPath(path, err)
	}
	b, _ := d.reg.NewBuilder(typeName)
	if err := d.fields(desc, b, props, path); err != nil {
		return nil, err
	}
	el, err := b.BuildElement()
	return el, atPath(path, err)
}

func (d *Decoder) primitive(typeName string, value, ext entry, path string, ignore ...string) (model.Element, error) {
	desc, ok := d.reg.Descriptor(typeName)
	if !ok {
		return nil, atPath(path, fmt.Errorf("unknown type %s", typeName))
	}
	b, _ := d.reg.NewBuilder(typeName)

	var v any
	switch value.typ {
	case jsonparser.NotExist, jsonparser.Null:
	case jsonparser.String:
		s, err := jsonparser.ParseString(value.value)
		if err != nil {
			return nil, atPath(path, err)
		}
		v = s
	case jsonparser.Number:
		v = json.Number(value.value)
	case jsonparser.Boolean:
		bv, err := jsonparser.ParseBoolean(value.value)
		if err != nil {
			return nil, atPath(path, err)
		}
		v = bv
	default:
		return nil, atPath(path, &validation.InvalidElementTypeError{
			Field: "value",
			Index: -1,
			Type:  value.typ.String(),
			Want:  typeName,
		})
	}
	if v != nil {
		if err := b.SetField("value", v); err != nil {
			return nil, atPath(path, err)
		}
	}

	if ext.present() {
		props, err := readObject(ext)
		if err != nil {
			return nil, atPath(path, err)
		}
		if err := d.fields(desc, b, props, path, ignore...); err != nil {
			return nil, err
		}
	}

	el, err := b.BuildElement()
	return el, atPath(path, err)
}

// fields decodes the declared fields of desc from props into b.
func (d *Decoder) fields(desc *model.Descriptor, b model.Builder, props properties, path string, ignore ...string) error {
	consumed := map[string]bool{}
	for _, k := range ignore {
		consumed[k] = true
	}

	for _, f := range desc.Fields {
		fieldPath := path + "." + f.Name
		switch f.Kind {
		case model.FieldValue:
			if f.Name == "value" && desc.Kind == model.PrimitiveKind {
				continue
			}
			e, ok := props.values[f.Name]
			if !ok {
				continue
			}
			consumed[f.Name] = true
			if e.typ == jsonparser.Null {
				continue
			}
			if e.typ != jsonparser.String {
				return atPath(fieldPath, fmt.Errorf("expected string, got %s", e.typ))
			}
			s, err := jsonparser.ParseString(e.value)
			if err != nil {
				return atPath(fieldPath, err)
			}
			if err := b.SetField(f.Name, s); err != nil {
				return atPath(path, err)
			}

		case model.FieldElement:
			if err := d.field(b, f, f.Name, f.Types[0], props, consumed, fieldPath); err != nil {
				return err
			}

		case model.FieldChoice:
			var found []string
			for _, t := range f.Types {
				key := f.Name + upperFirst(t)
				if _, ok := props.values[key]; !ok {
					if _, ok := props.values["_"+key]; !ok {
						continue
					}
				}
				found = append(found, key)
				if err := d.field(b, f, key, t, props, consumed, path+"."+key); err != nil {
					return err
				}
			}
			if len(found) > 1 {
				return atPath(fieldPath, fmt.Errorf("%w: more than one value for %s[x]: %s",
					validation.ErrInvalidChoiceType, f.Name, strings.Join(found, ", ")))
			}

		case model.FieldResource:
			e, ok := props.values[f.Name]
			if !ok {
				continue
			}
			consumed[f.Name] = true
			items := []entry{e}
			if f.Repeated {
				var err error
				if items, err = readArray(e); err != nil {
					return atPath(fieldPath, err)
				}
			}
			for i, item := range items {
				itemPath := fieldPath
				if f.Repeated {
					itemPath = fmt.Sprintf("%s[%d]", fieldPath, i)
				}
				r, err := d.resource(item, itemPath)
				if err != nil {
					return err
				}
				if err := b.SetField(f.Name, r); err != nil {
					return atPath(itemPath, err)
				}
			}
		}
	}

	for _, k := range props.keys {
		if consumed[k] {
			continue
		}
		if err := d.unknown(desc, k, path); err != nil {
			return err
		}
	}
	return nil
}

// field decodes the property key (and _key for primitives) holding elements of type typeName.
func (d *Decoder) field(b model.Builder, f model.FieldDescriptor, key, typeName string, props properties, consumed map[string]bool, path string) error {
	td, ok := d.reg.Descriptor(typeName)
	if !ok {
		return atPath(path, fmt.Errorf("unknown type %s", typeName))
	}
	value, hasValue := props.values[key]
	ext, hasExt := props.values["_"+key]
	if !hasValue && !hasExt {
		return nil
	}
	if td.Kind != model.PrimitiveKind {
		// a _key of a complex field is left to the unknown property check
		if !hasValue {
			return nil
		}
		consumed[key] = true
		if !f.Repeated {
			if !value.present() {
				return nil
			}
			el, err := d.complex(typeName, value, path)
			if err != nil {
				return err
			}
			return atPath(path, b.SetField(f.Name, el))
		}
		items, err := readArray(value)
		if err != nil {
			return atPath(path, err)
		}
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			el, err := d.complex(typeName, item, itemPath)
			if err != nil {
				return err
			}
			if err := b.SetField(f.Name, el); err != nil {
				return atPath(itemPath, err)
			}
		}
		return nil
	}

	consumed[key], consumed["_"+key] = hasValue, hasExt
	if !f.Repeated {
		if !value.present() && !ext.present() {
			return nil
		}
		el, err := d.primitive(typeName, value, ext, path)
		if err != nil {
			return err
		}
		return atPath(path, b.SetField(f.Name, el))
	}

	values, err := readArray(value)
	if err != nil {
		return atPath(path, err)
	}
	exts, err := readArray(ext)
	if err != nil {
		return atPath(path, err)
	}
	if len(exts) > 0 && len(values) > 0 && len(exts) != len(values) {
		return atPath(path, fmt.Errorf("%s and _%s differ in length", key, key))
	}
	for i := range max(len(values), len(exts)) {
		var v, x entry
		if i < len(values) {
			v = values[i]
		}
		if i < len(exts) {
			x = exts[i]
		}
		itemPath := fmt.Sprintf("%s[%d]", path, i)
		el, err := d.primitive(typeName, v, x, itemPath)
		if err != nil {
			return err
		}
		if err := b.SetField(f.Name, el); err != nil {
			return atPath(itemPath, err)
		}
	}
	return nil
}

func (d *Decoder) unknown(desc *model.Descriptor, key, path string) error {
	name := strings.TrimPrefix(key, "_")
	for _, f := range desc.Fields {
		if f.Kind != model.FieldChoice || !strings.HasPrefix(name, f.Name) || len(name) == len(f.Name) {
			continue
		}
		suffix := name[len(f.Name):]
		if r, _ := utf8.DecodeRuneInString(suffix); unicode.IsUpper(r) {
			return atPath(path, &validation.InvalidChoiceTypeError{Field: f.Name, Type: suffix, Allowed: f.Types})
		}
	}

	if d.cfg.lenient {
		d.cfg.logger.Warn().
			Str("path", path).
			Str("property", key).
			Msg("skipping unknown property")
		return nil
	}
	return atPath(path, &validation.UnknownFieldError{Type: desc.Name, Field: key})
}
