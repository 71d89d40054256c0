package voxtype

import (
	"iter"
	"strconv"
	"strings"
)

// Well-known attribute keys.
const (
	KeyName        = "_name"
	KeyHidden      = "_hidden"
	KeyRotation    = "_r"
	KeyTranslation = "_t"
	KeyFrame       = "_f"
)

// Dict is an insertion-ordered string to string mapping.
//
// The zero value is an empty dictionary ready for use.
type Dict struct {
	keys   []string
	values map[string]string
}

// NewDict returns a dictionary with room for n entries.
func NewDict(n int) Dict {
	return Dict{
		keys:   make([]string, 0, n),
		values: make(map[string]string, n),
	}
}

// Set stores value under key. A repeated key keeps its first position.
func (d *Dict) Set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, ok := d.values[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// Get returns the value stored under key.
func (d Dict) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Len returns the number of distinct keys.
func (d Dict) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// All iterates over entries in insertion order.
func (d Dict) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range d.keys {
			if !yield(k, d.values[k]) {
				return
			}
		}
	}
}

// Map returns an unordered copy of the entries.
func (d Dict) Map() map[string]string {
	out := make(map[string]string, len(d.keys))
	for k, v := range d.values {
		out[k] = v
	}
	return out
}

// Name returns the _name attribute.
func (d Dict) Name() (string, bool) {
	return d.Get(KeyName)
}

// Hidden reports whether the _hidden attribute is "1".
func (d Dict) Hidden() bool {
	v, _ := d.Get(KeyHidden)
	return v == "1"
}

// Float parses the value under key as a 32-bit float.
func (d Dict) Float(key string) (float32, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
	if err != nil {
		return 0, false
	}
	return float32(f), true
}

// Int parses the value under key as a base-10 integer.
func (d Dict) Int(key string) (int, bool) {
	v, ok := d.Get(key)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Rotation returns the packed _r rotation of a transform frame.
func (d Dict) Rotation() (Rotation, bool) {
	n, ok := d.Int(KeyRotation)
	if !ok || n < 0 || n > 0xFF {
		return 0, false
	}
	return Rotation(n), true
}

// Translation returns the _t translation of a transform frame, stored as
// three space separated integers.
func (d Dict) Translation() ([3]int32, bool) {
	var t [3]int32
	v, ok := d.Get(KeyTranslation)
	if !ok {
		return t, false
	}
	fields := strings.Fields(v)
	if len(fields) != 3 {
		return t, false
	}
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			return [3]int32{}, false
		}
		t[i] = int32(n)
	}
	return t, true
}

// Frame returns the _f animation frame index.
func (d Dict) Frame() (int, bool) {
	return d.Int(KeyFrame)
}
