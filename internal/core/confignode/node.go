// Package confignode models configuration snapshots as ordered, immutable
// key/value trees.
//
// A Node remembers the order in which its keys were first set, and every
// operation that enumerates keys (Keys, Each) follows that order. Nodes are
// never modified after construction; use NewNode or a Builder to create them.
// A nil *Node behaves as an empty node.
package confignode

import (
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Field is a single key/value pair used to construct a Node.
type Field struct {
	Key   string
	Value Value
}

// F is shorthand for constructing a Field.
func F(key string, value Value) Field {
	return Field{Key: key, Value: value}
}

// Node is an ordered mapping from string keys to values.
type Node struct {
	pairs *orderedmap.OrderedMap[string, Value]
}

// NewNode builds a node from fields in order. A repeated key keeps the
// position of its first occurrence and the value of its last.
func NewNode(fields ...Field) *Node {
	b := NewBuilder()
	for _, f := range fields {
		b.Set(f.Key, f.Value)
	}
	return b.Build()
}

// Len returns the number of keys.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	return n.pairs.Len()
}

// IsEmpty reports whether the node has no keys.
func (n *Node) IsEmpty() bool { return n.Len() == 0 }

// Keys returns a copy of the keys in insertion order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	keys := make([]string, 0, n.pairs.Len())
	for pair := n.pairs.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Has reports whether key is present. A key mapped to Undefined is present.
func (n *Node) Has(key string) bool {
	_, ok := n.Get(key)
	return ok
}

// Get returns the value stored under key.
func (n *Node) Get(key string) (Value, bool) {
	if n == nil {
		return Value{}, false
	}
	return n.pairs.Get(key)
}

// Lookup resolves a dotted key path such as "transaction.timeout".
func (n *Node) Lookup(path string) (Value, bool) {
	current := n
	parts := strings.Split(path, ".")
	for i, part := range parts {
		v, ok := current.Get(part)
		if !ok {
			return Value{}, false
		}
		if i == len(parts)-1 {
			return v, true
		}
		child, isNode := v.Node()
		if !isNode {
			return Value{}, false
		}
		current = child
	}
	return Value{}, false
}

// Each calls fn for every key in insertion order until fn returns false.
func (n *Node) Each(fn func(key string, value Value) bool) {
	if n == nil {
		return
	}
	for pair := n.pairs.Oldest(); pair != nil; pair = pair.Next() {
		if !fn(pair.Key, pair.Value) {
			return
		}
	}
}

// Equal reports whether both nodes hold the same keys, in the same order,
// with deeply equal values.
func (n *Node) Equal(other *Node) bool {
	if n.Len() != other.Len() {
		return false
	}
	if n.Len() == 0 {
		return true
	}
	for a, b := n.pairs.Oldest(), other.pairs.Oldest(); a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}

// With returns a copy of the node with key set to value.
func (n *Node) With(key string, value Value) *Node {
	b := n.ToBuilder()
	b.Set(key, value)
	return b.Build()
}

// Without returns a copy of the node without key.
func (n *Node) Without(key string) *Node {
	b := n.ToBuilder()
	b.pairs.Delete(key)
	return b.Build()
}

// ToBuilder returns a builder seeded with the node's fields.
func (n *Node) ToBuilder() *Builder {
	b := NewBuilder()
	n.Each(func(k string, v Value) bool {
		b.Set(k, v)
		return true
	})
	return b
}

// Builder accumulates fields for a Node. It is not safe for concurrent use.
type Builder struct {
	pairs *orderedmap.OrderedMap[string, Value]
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{pairs: orderedmap.New[string, Value]()}
}

// Set stores value under key, keeping the key's first position.
func (b *Builder) Set(key string, value Value) *Builder {
	b.pairs.Set(key, value)
	return b
}

// Build produces an immutable node. The builder may be reused afterwards
// without affecting the returned node.
func (b *Builder) Build() *Node {
	pairs := orderedmap.New[string, Value]()
	for pair := b.pairs.Oldest(); pair != nil; pair = pair.Next() {
		pairs.Set(pair.Key, pair.Value)
	}
	return &Node{pairs: pairs}
}
