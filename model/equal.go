package model

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/fnv"
	"reflect"
	"strconv"
	"sync/atomic"
)

// Equal reports whether a and b are structurally equal.
//
// Every declared field is compared recursively, including the inherited base
// fields. Lists are compared in order.
func Equal(a, b Element) bool {
	if IsNil(a) || IsNil(b) {
		return IsNil(a) && IsNil(b)
	}
	if a.TypeName() != b.TypeName() {
		return false
	}
	if a.Hash() != b.Hash() {
		return false
	}

	for _, f := range a.Descriptor().Fields {
		if f.Kind == FieldValue {
			av, aok := f.Value(a)
			bv, bok := f.Value(b)
			if aok != bok || (aok && !ValueEqual(av, bv)) {
				return false
			}
			continue
		}

		as, bs := f.Elements(a), f.Elements(b)
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if !Equal(as[i], bs[i]) {
				return false
			}
		}
	}
	return true
}

// ValueEqual compares two scalar values by type and canonical text.
func ValueEqual(a, b any) bool {
	return reflect.TypeOf(a) == reflect.TypeOf(b) && valueString(a) == valueString(b)
}

func valueString(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint32:
		return strconv.FormatUint(uint64(v), 10)
	case fmt.Stringer:
		return v.String()
	}
	return fmt.Sprint(v)
}

// ComputeHash hashes the type name and every declared field of e.
//
// Child elements contribute their own (cached) hash.
func ComputeHash(e Element) uint64 {
	h := fnv.New64a()
	writeString(h, e.TypeName())

	for i, f := range e.Descriptor().Fields {
		if f.Kind == FieldValue {
			if v, ok := f.Value(e); ok {
				writeUint(h, uint64(i))
				writeString(h, valueString(v))
			}
			continue
		}

		children := f.Elements(e)
		if len(children) == 0 {
			continue
		}
		writeUint(h, uint64(i))
		writeUint(h, uint64(len(children)))
		for _, c := range children {
			writeUint(h, c.Hash())
		}
	}
	return h.Sum64()
}

func writeString(h hash.Hash64, s string) {
	writeUint(h, uint64(len(s)))
	h.Write([]byte(s))
}

func writeUint(h hash.Hash64, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// HashCache memoizes the hash of an immutable element.
//
// Concurrent first calls may compute the hash more than once, they always
// store the same value. The zero value is ready to use and must not be copied.
type HashCache struct {
	v atomic.Uint64
}

// Get returns the cached hash, computing it on first use.
func (c *HashCache) Get(compute func() uint64) uint64 {
	if h := c.v.Load(); h != 0 {
		return h
	}
	h := compute()
	// zero marks "not computed"
	if h == 0 {
		h = 1
	}
	c.v.Store(h)
	return h
}

// HasChildren reports whether any element or resource field of e is non-empty.
func HasChildren(e Element) bool {
	for _, f := range e.Descriptor().Fields {
		if f.Kind != FieldValue && !f.IsEmpty(e) {
			return true
		}
	}
	return false
}
