// Package models defines the in-memory representation of decoded NDJSON
// records. The Value interface is a closed union over the six JSON value
// kinds; the unexported marker method keeps the set sealed so the encoder's
// switch over variants stays exhaustive.
package models

import "encoding/json"

// Value is implemented by exactly the JSON value kinds: Null, Bool, Number,
// String, Array and Object. Values are trees built bottom-up from text; a
// child is owned by exactly one parent and no cycles can occur.
type Value interface {
	isValue()
}

// Null represents the JSON literal null.
type Null struct{}

// Bool represents a JSON boolean.
type Bool bool

// Number holds the decimal text of a JSON number, exactly as it appeared in
// the input. It carries json.Number semantics: no coercion to a machine
// numeric type happens during decode.
type Number json.Number

// String represents a JSON string (already unescaped).
type String string

// Array represents a JSON array, element order preserved.
type Array []Value

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object represents a JSON object as an ordered collection of members, in
// the order they appeared in the input or were constructed.
type Object []Member

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// Get returns the value of the first member with the given key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Kind names for each variant, used by the report and in error text.
const (
	KindNull    = "null"
	KindBoolean = "boolean"
	KindNumber  = "number"
	KindString  = "string"
	KindArray   = "array"
	KindObject  = "object"
)

// Kind returns the kind name of v.
func Kind(v Value) string {
	switch v.(type) {
	case Null:
		return KindNull
	case Bool:
		return KindBoolean
	case Number:
		return KindNumber
	case String:
		return KindString
	case Array:
		return KindArray
	case Object:
		return KindObject
	default:
		return "unknown"
	}
}
