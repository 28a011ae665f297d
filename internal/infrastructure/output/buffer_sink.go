package output

import (
	"strings"
	"sync"

	"predeploy.dev/cli/internal/core/ports"
)

// Line is one buffered report line
type Line struct {
	Style ports.LineStyle
	Text  string
}

// BufferSink collects report lines in memory
type BufferSink struct {
	mu    sync.Mutex
	lines []Line
}

// NewBufferSink creates an empty buffer sink
func NewBufferSink() *BufferSink {
	return &BufferSink{}
}

// Clear implements ports.OutputSink
func (b *BufferSink) Clear() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
	return nil
}

// AppendLine implements ports.OutputSink
func (b *BufferSink) AppendLine(style ports.LineStyle, line string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, Line{Style: style, Text: line})
	return nil
}

// Lines returns a copy of the buffered lines
func (b *BufferSink) Lines() []Line {
	b.mu.Lock()
	defer b.mu.Unlock()
	lines := make([]Line, len(b.lines))
	copy(lines, b.lines)
	return lines
}

// Texts returns the buffered line texts
func (b *BufferSink) Texts() []string {
	lines := b.Lines()
	texts := make([]string, len(lines))
	for i, l := range lines {
		texts[i] = l.Text
	}
	return texts
}

// String joins the buffered texts with newlines
func (b *BufferSink) String() string {
	return strings.Join(b.Texts(), "\n")
}

// Render joins the buffered lines, styled with styles
func (b *BufferSink) Render(styles Styles) string {
	lines := b.Lines()
	rendered := make([]string, len(lines))
	for i, l := range lines {
		rendered[i] = styles.Render(l.Style, l.Text)
	}
	return strings.Join(rendered, "\n")
}

var _ ports.OutputSink = (*BufferSink)(nil)
