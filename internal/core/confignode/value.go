package confignode

import (
	"fmt"
	"strconv"
)

// Kind is the runtime classification of a value as it appears in reports.
type Kind string

const (
	KindBoolean   Kind = "boolean"
	KindNumber    Kind = "number"
	KindString    Kind = "string"
	KindObject    Kind = "object"
	KindUndefined Kind = "undefined"
)

// tag discriminates the Value variants. Null and Object share KindObject but
// must stay distinct so that only real nested nodes are walked.
type tag uint8

const (
	tagUndefined tag = iota
	tagNull
	tagBool
	tagNumber
	tagString
	tagObject
)

// Value is a tagged variant holding one configuration value.
// The zero Value is Undefined.
type Value struct {
	tag  tag
	b    bool
	n    float64
	s    string
	node *Node
}

// Bool creates a boolean value.
func Bool(b bool) Value { return Value{tag: tagBool, b: b} }

// Number creates a numeric value.
func Number(n float64) Value { return Value{tag: tagNumber, n: n} }

// Int is a convenience wrapper around Number.
func Int(n int) Value { return Number(float64(n)) }

// String creates a string value.
func String(s string) Value { return Value{tag: tagString, s: s} }

// Null creates an explicit null value.
func Null() Value { return Value{tag: tagNull} }

// Undefined creates a value that is present but undefined.
func Undefined() Value { return Value{} }

// Object wraps a nested node. A nil node is stored as an empty node.
func Object(n *Node) Value {
	if n == nil {
		n = NewNode()
	}
	return Value{tag: tagObject, node: n}
}

// Kind classifies the value. Null classifies as KindObject.
func (v Value) Kind() Kind {
	switch v.tag {
	case tagBool:
		return KindBoolean
	case tagNumber:
		return KindNumber
	case tagString:
		return KindString
	case tagNull, tagObject:
		return KindObject
	default:
		return KindUndefined
	}
}

// Node returns the nested node and true when the value is a non-null object.
func (v Value) Node() (*Node, bool) {
	if v.tag != tagObject {
		return nil, false
	}
	return v.node, true
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) { return v.s, v.tag == tagString }

// Equal reports deep equality, including key order of nested nodes.
func (v Value) Equal(other Value) bool {
	if v.tag != other.tag {
		return false
	}
	switch v.tag {
	case tagBool:
		return v.b == other.b
	case tagNumber:
		return v.n == other.n
	case tagString:
		return v.s == other.s
	case tagObject:
		return v.node.Equal(other.node)
	default:
		return true
	}
}

func (v Value) String() string {
	switch v.tag {
	case tagBool:
		return strconv.FormatBool(v.b)
	case tagNumber:
		return strconv.FormatFloat(v.n, 'g', -1, 64)
	case tagString:
		return strconv.Quote(v.s)
	case tagNull:
		return "null"
	case tagObject:
		return fmt.Sprintf("{%d keys}", v.node.Len())
	default:
		return "undefined"
	}
}
