// Package literal parses the log-source literal dialect into plain data
// values. The dialect is Python-flavoured (single or double quoted strings,
// True/False/None, trailing commas, # comments) but absent values may also
// be spelled with JSON's null. Parsing only ever produces data; nothing in
// the source is treated as executable.
package literal

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind int

// Value kinds.
const (
	Null Kind = iota
	Bool
	Number
	String
	List
	Map
)

// MapEntry is one key/value pair of a map literal. Entries keep the order
// they appear in the source.
type MapEntry struct {
	Key   string
	Value Value
}

// Value is one parsed literal: null, bool, number, string, list or map.
// The zero Value is null, which is also how an absent field reads.
type Value struct {
	kind    Kind
	boolean bool
	number  float64
	text    string // string content, or the original number lexeme
	list    []Value
	entries []MapEntry
}

// Constructors, used by the parser and by tests building raw entries.

// NullValue returns the null value.
func NullValue() Value { return Value{kind: Null} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: Bool, boolean: b} }

// NumberValue returns a numeric value. The lexeme renders in plain decimal
// notation, without a trailing fraction when the number is integral.
func NumberValue(f float64) Value {
	return Value{kind: Number, number: f, text: strconv.FormatFloat(f, 'f', -1, 64)}
}

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// ListValue returns a list value.
func ListValue(items ...Value) Value { return Value{kind: List, list: items} }

// MapValue returns a map value with the given entries.
func MapValue(entries ...MapEntry) Value { return Value{kind: Map, entries: entries} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == Null }

// Bool returns the boolean content, if any.
func (v Value) Bool() (bool, bool) { return v.boolean, v.kind == Bool }

// Number returns the numeric content, if any.
func (v Value) Number() (float64, bool) { return v.number, v.kind == Number }

// Str returns the string content, if any.
func (v Value) Str() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.text, true
}

// Items returns the list elements, if any.
func (v Value) Items() ([]Value, bool) {
	if v.kind != List {
		return nil, false
	}
	return v.list, true
}

// Entries returns the map entries in source order, if any.
func (v Value) Entries() ([]MapEntry, bool) {
	if v.kind != Map {
		return nil, false
	}
	return v.entries, true
}

// Get looks up a key in a map value.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Map {
		return Value{}, false
	}
	for _, e := range v.entries {
		if e.Key == key {
			return e.Value, true
		}
	}
	return Value{}, false
}

// Text renders a scalar value as the string the cleaning rules operate on:
// string content verbatim, the original lexeme for numbers, "true"/"false"
// for booleans, and "" for null. Lists and maps render as "".
func (v Value) Text() string {
	switch v.kind {
	case String, Number:
		return v.text
	case Bool:
		if v.boolean {
			return "true"
		}
		return "false"
	default:
		return ""
	}
}

// MarshalJSON renders the value as JSON, preserving map entry order and the
// original number lexeme.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(v.Text())
	case Number:
		buf.WriteString(v.text)
	case String:
		b, err := json.Marshal(v.text)
		if err != nil {
			return err
		}
		buf.Write(b)
	case List:
		buf.WriteByte('[')
		for i, item := range v.list {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Map:
		buf.WriteByte('{')
		for i, e := range v.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := json.Marshal(e.Key)
			if err != nil {
				return err
			}
			buf.Write(b)
			buf.WriteByte(':')
			if err := e.Value.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
