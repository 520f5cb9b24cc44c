package fhirjson

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/cockroachdb/apd/v3"

	"github.com/damedic/fhir-model-go/model"
)

// Marshal returns the FHIR JSON representation of e.
//
// Resources start with their resourceType, all other properties follow in
// declaration order. A primitive is represented by its bare value, or by an
// object holding id, extension and value when it carries any of the former.
func Marshal(e model.Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode(&buf, e); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalIndent is like Marshal but applies json.Indent to the output.
func MarshalIndent(e model.Element, prefix, indent string) ([]byte, error) {
	b, err := Marshal(e)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, prefix, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encoder writes FHIR JSON to an output stream.
type Encoder struct {
	w   io.Writer
	cfg config
}

// NewEncoder returns an encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, cfg: newConfig(opts)}
}

// Encode writes the JSON representation of e followed by a newline.
func (enc *Encoder) Encode(e model.Element) error {
	var buf bytes.Buffer
	if err := encode(&buf, e); err != nil {
		return err
	}
	if enc.cfg.prefix != "" || enc.cfg.indent != "" {
		var indented bytes.Buffer
		if err := json.Indent(&indented, buf.Bytes(), enc.cfg.prefix, enc.cfg.indent); err != nil {
			return err
		}
		buf = indented
	}
	buf.WriteByte('\n')
	_, err := enc.w.Write(buf.Bytes())
	return err
}

func encode(buf *bytes.Buffer, e model.Element) error {
	if model.IsNil(e) {
		buf.WriteString("null")
		return nil
	}
	var v treeBuilder
	if err := model.Walk(&v, e.TypeName(), -1, e); err != nil {
		return err
	}
	var root any = v.root.obj
	if e.Descriptor().Kind == model.PrimitiveKind {
		if len(v.root.obj.keys) == 0 {
			root = v.root.value
		} else if v.root.hasValue {
			v.root.obj.set("value", v.root.value)
		}
	}
	return writeValue(buf, root)
}

// object is a JSON object keeping the insertion order of its keys.
type object struct {
	keys   []string
	values map[string]any
}

func newObject() *object {
	return &object{values: map[string]any{}}
}

func (o *object) set(key string, v any) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// array is a JSON array whose entries may be set out of order.
type array struct {
	items []any
}

func (a *array) setAt(i int, v any) {
	for len(a.items) <= i {
		a.items = append(a.items, nil)
	}
	a.items[i] = v
}

func (a *array) allNull() bool {
	for _, v := range a.items {
		if v != nil {
			return false
		}
	}
	return true
}

type frame struct {
	elem     model.Element
	obj      *object
	value    any
	hasValue bool
}

// treeBuilder collects the JSON tree of an element while it is walked.
type treeBuilder struct {
	model.BaseVisitor
	stack []*frame
	root  *frame
}

func (t *treeBuilder) VisitStart(_ string, _ int, e model.Element) error {
	f := &frame{elem: e, obj: newObject()}
	if r, ok := e.(model.Resource); ok {
		f.obj.set("resourceType", r.ResourceType())
	}
	t.stack = append(t.stack, f)
	return nil
}

func (t *treeBuilder) VisitValue(name string, value any) error {
	f := t.stack[len(t.stack)-1]
	if name == "value" && f.elem.Descriptor().Kind == model.PrimitiveKind {
		f.value, f.hasValue = jsonScalar(value), true
		return nil
	}
	f.obj.set(name, jsonScalar(value))
	return nil
}

func (t *treeBuilder) VisitEnd(name string, index int, e model.Element) error {
	f := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	if len(t.stack) == 0 {
		t.root = f
		return nil
	}

	parent := t.stack[len(t.stack)-1]
	field, ok := parent.elem.Descriptor().Field(name)
	if !ok {
		return fmt.Errorf("%s has no field %s", parent.elem.TypeName(), name)
	}
	key := name
	if field.Kind == model.FieldChoice {
		key = name + upperFirst(e.TypeName())
	}

	if e.Descriptor().Kind != model.PrimitiveKind {
		place(parent.obj, key, field.Repeated, index, f.obj, true)
		return nil
	}
	var ext any
	if len(f.obj.keys) > 0 {
		ext = f.obj
	}
	// primitive arrays are always written in pairs, all null arrays are dropped on output
	place(parent.obj, key, field.Repeated, index, f.value, f.hasValue || field.Repeated)
	place(parent.obj, "_"+key, field.Repeated, index, ext, ext != nil || field.Repeated)
	return nil
}

func place(obj *object, key string, repeated bool, index int, v any, present bool) {
	if !present {
		return
	}
	if !repeated {
		obj.set(key, v)
		return
	}
	a, ok := obj.values[key].(*array)
	if !ok {
		a = &array{}
		obj.set(key, a)
	}
	a.setAt(index, v)
}

func jsonScalar(v any) any {
	if d, ok := v.(*apd.Decimal); ok {
		return json.Number(d.String())
	}
	return v
}

func upperFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[n:]
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch v := v.(type) {
	case nil:
		buf.WriteString("null")
	case *object:
		buf.WriteByte('{')
		first := true
		for _, k := range v.keys {
			item := v.values[k]
			if a, ok := item.(*array); ok && a.allNull() {
				continue
			}
			if !first {
				buf.WriteByte(',')
			}
			first = false
			if err := writeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case *array:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case string:
		return writeString(buf, v)
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case int32:
		buf.WriteString(strconv.FormatInt(int64(v), 10))
	case uint32:
		buf.WriteString(strconv.FormatUint(uint64(v), 10))
	case json.Number:
		buf.WriteString(v.String())
	default:
		return fmt.Errorf("unsupported value of type %T", v)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode terminates with a newline
	buf.Truncate(buf.Len() - 1)
	return nil
}
