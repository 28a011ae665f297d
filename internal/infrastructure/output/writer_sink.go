package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"predeploy.dev/cli/internal/core/ports"
)

// Styles maps each line style to its lipgloss rendering
type Styles map[ports.LineStyle]lipgloss.Style

// DefaultStyles returns the color scheme used for terminal output
func DefaultStyles() Styles {
	return Styles{
		ports.StylePlain:   lipgloss.NewStyle(),
		ports.StyleHeader:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		ports.StyleError:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		ports.StyleWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		ports.StyleSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	}
}

// Render applies the style for a line. Unknown styles and empty lines are
// returned unchanged.
func (s Styles) Render(style ports.LineStyle, line string) string {
	st, ok := s[style]
	if !ok || line == "" {
		return line
	}
	return st.Render(line)
}

// WriterSink writes report lines to an io.Writer, optionally styled
type WriterSink struct {
	mu     sync.Mutex
	w      io.Writer
	styles Styles
}

// NewWriterSink creates a plain sink
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// NewStyledWriterSink creates a sink that colors lines with lipgloss
func NewStyledWriterSink(w io.Writer, styles Styles) *WriterSink {
	return &WriterSink{w: w, styles: styles}
}

// Clear is a no-op: a stream cannot be rewound.
func (s *WriterSink) Clear() error {
	return nil
}

// AppendLine implements ports.OutputSink
func (s *WriterSink) AppendLine(style ports.LineStyle, line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.styles != nil {
		line = s.styles.Render(style, line)
	}
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

var _ ports.OutputSink = (*WriterSink)(nil)
