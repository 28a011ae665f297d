package testfixtures

import (
	"fmt"

	"pgregory.net/rapid"

	"predeploy.dev/cli/internal/core/confignode"
)

// TreeBuilder provides a builder pattern for creating test snapshots
type TreeBuilder struct {
	b *confignode.Builder
}

// NewTreeBuilder creates an empty TreeBuilder
func NewTreeBuilder() *TreeBuilder {
	return &TreeBuilder{b: confignode.NewBuilder()}
}

// WithString sets a string field
func (t *TreeBuilder) WithString(key, value string) *TreeBuilder {
	t.b.Set(key, confignode.String(value))
	return t
}

// WithNumber sets a numeric field
func (t *TreeBuilder) WithNumber(key string, value float64) *TreeBuilder {
	t.b.Set(key, confignode.Number(value))
	return t
}

// WithBool sets a boolean field
func (t *TreeBuilder) WithBool(key string, value bool) *TreeBuilder {
	t.b.Set(key, confignode.Bool(value))
	return t
}

// WithNull sets a null field
func (t *TreeBuilder) WithNull(key string) *TreeBuilder {
	t.b.Set(key, confignode.Null())
	return t
}

// WithUndefined sets a field that is present but undefined
func (t *TreeBuilder) WithUndefined(key string) *TreeBuilder {
	t.b.Set(key, confignode.Undefined())
	return t
}

// WithChild sets a nested node built by fn
func (t *TreeBuilder) WithChild(key string, fn func(*TreeBuilder)) *TreeBuilder {
	child := NewTreeBuilder()
	fn(child)
	t.b.Set(key, confignode.Object(child.Build()))
	return t
}

// WithCommit sets the commit field
func (t *TreeBuilder) WithCommit(commit string) *TreeBuilder {
	return t.WithString("commit", commit)
}

// Build creates the node
func (t *TreeBuilder) Build() *confignode.Node {
	return t.b.Build()
}

// Generators for property-based tests

// KeyGen draws short keys so that random trees share keys often.
func KeyGen() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-f][a-z0-9]{0,3}`)
}

// PrimitiveGen draws any non-object value.
func PrimitiveGen() *rapid.Generator[confignode.Value] {
	return rapid.OneOf(
		rapid.Map(rapid.Bool(), confignode.Bool),
		rapid.Map(rapid.Float64Range(-1e6, 1e6), confignode.Number),
		rapid.Map(rapid.String(), confignode.String),
		rapid.Just(confignode.Null()),
		rapid.Just(confignode.Undefined()),
	)
}

// NodeGen draws a tree of at most maxDepth levels of nesting.
func NodeGen(maxDepth int) *rapid.Generator[*confignode.Node] {
	return rapid.Custom(func(t *rapid.T) *confignode.Node {
		return drawNode(t, maxDepth, "node")
	})
}

func drawNode(t *rapid.T, depth int, label string) *confignode.Node {
	b := confignode.NewBuilder()
	size := rapid.IntRange(0, 4).Draw(t, label+".size")
	for i := 0; i < size; i++ {
		key := KeyGen().Draw(t, fmt.Sprintf("%s.key%d", label, i))
		if depth > 0 && rapid.Bool().Draw(t, fmt.Sprintf("%s.nested%d", label, i)) {
			b.Set(key, confignode.Object(drawNode(t, depth-1, label+"."+key)))
			continue
		}
		b.Set(key, PrimitiveGen().Draw(t, fmt.Sprintf("%s.value%d", label, i)))
	}
	return b.Build()
}
