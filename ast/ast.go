// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines a value model for JSON, a parser that constructs values
// from the tokens of JSON source, and a serializer that renders values as
// compact JSON text.
package ast

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/creachadair/jcodec"
)

// A Value is an arbitrary JSON value. Values produced by this package have
// concrete type Null, Bool, Number, String, Array, or Object.
type Value interface {
	// JSON returns the compact JSON encoding of the value.
	JSON() string
}

// Null represents the null constant.
type Null struct{}

// JSON satisfies the Value interface.
func (Null) JSON() string { return "null" }

func (Null) String() string { return "null" }

// A Bool is a Boolean constant, true or false.
type Bool bool

// JSON satisfies the Value interface.
func (b Bool) JSON() string {
	if b {
		return "true"
	}
	return "false"
}

// A Number is a numeric value. It holds either an exact integer or a
// floating-point value, and does not convert between them.
type Number struct {
	isFloat bool
	z       int64
	f       float64
}

// Int constructs an integer Number.
func Int(z int64) Number { return Number{z: z} }

// Float constructs a floating-point Number.
func Float(f float64) Number { return Number{isFloat: true, f: f} }

// IsInt reports whether n holds an integer.
func (n Number) IsInt() bool { return !n.isFloat }

// Int64 returns n as an int64, truncating a floating-point value.
func (n Number) Int64() int64 {
	if n.isFloat {
		return int64(n.f)
	}
	return n.z
}

// Float64 returns n as a float64.
func (n Number) Float64() float64 {
	if n.isFloat {
		return n.f
	}
	return float64(n.z)
}

// JSON satisfies the Value interface. It panics if n is a non-finite
// floating-point value.
func (n Number) JSON() string {
	if n.isFloat {
		return formatFloat(n.f)
	}
	return strconv.FormatInt(n.z, 10)
}

func (n Number) String() string { return n.JSON() }

// Equal reports whether n and m hold the same kind of number with the same
// value.
func (n Number) Equal(m Number) bool {
	if n.isFloat != m.isFloat {
		return false
	}
	return n.z == m.z && n.f == m.f
}

// A String is a string value. The text is decoded, without escapes or
// enclosing quotation marks.
type String string

// JSON satisfies the Value interface.
func (s String) JSON() string { return jcodec.Quote(string(s)) }

// An Array is a sequence of values.
type Array []Value

// JSON satisfies the Value interface.
func (a Array) JSON() string {
	if len(a) == 0 {
		return "[]"
	}
	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(Serialize(a[0]))
	for _, elt := range a[1:] {
		sb.WriteByte(',')
		sb.WriteString(Serialize(elt))
	}
	sb.WriteByte(']')
	return sb.String()
}

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// ArrayOf constructs an array of values. Each argument is converted as by
// ToValue.
func ArrayOf(vs ...any) Array {
	out := make(Array, len(vs))
	for i, v := range vs {
		out[i] = ToValue(v)
	}
	return out
}

// An Object is an ordered collection of key-value members.
type Object []*Member

// JSON satisfies the Value interface.
func (o Object) JSON() string {
	if len(o) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	sb.WriteString(o[0].encode())
	for _, m := range o[1:] {
		sb.WriteByte(',')
		sb.WriteString(m.encode())
	}
	sb.WriteByte('}')
	return sb.String()
}

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	for _, m := range o {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Keys returns the keys of o in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// encode renders the member as "key":value. A Member is not itself a Value.
func (m *Member) encode() string { return jcodec.Quote(m.Key) + ":" + Serialize(m.Value) }

func (m Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value is converted as by ToValue.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// ToValue converts a string, int, int64, float64, bool, nil, or Value into a
// Value. It panics if v does not have one of those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case bool:
		return Bool(t)
	case string:
		return String(t)
	case int:
		return Int(int64(t))
	case int64:
		return Int(t)
	case float64:
		return Float(t)
	default:
		panic(fmt.Sprintf("ast: unsupported value type %T", v))
	}
}
