package drift

import (
	"fmt"

	"predeploy.dev/cli/internal/core/confignode"
)

// IssueKind categorizes a discrepancy
type IssueKind string

const (
	IssueMissingKey   IssueKind = "missing_key"
	IssueTypeMismatch IssueKind = "type_mismatch"
	IssueExtraKey     IssueKind = "extra_key"
)

// Icons used when rendering report lines
const (
	IconError   = "❌"
	IconWarning = "⚠️"
	IconSuccess = "✔"
)

// Discrepancy is one finding of a structural comparison.
type Discrepancy struct {
	Kind        IssueKind
	Path        string
	BaseType    confignode.Kind // set for type mismatches
	TargetType  confignode.Kind // set for type mismatches
	BaseLabel   string
	TargetLabel string
}

// Icon returns the icon shown in front of the rendered line
func (d Discrepancy) Icon() string {
	if d.Kind == IssueMissingKey {
		return IconError
	}
	return IconWarning
}

// IsError reports whether the finding is rendered as an error rather than a warning
func (d Discrepancy) IsError() bool {
	return d.Kind == IssueMissingKey
}

// String renders the discrepancy as a single report line.
func (d Discrepancy) String() string {
	switch d.Kind {
	case IssueMissingKey:
		return fmt.Sprintf("%s [%s] Missing key: %s", d.Icon(), d.TargetLabel, d.Path)
	case IssueTypeMismatch:
		return fmt.Sprintf("%s [%s] Type mismatch on %s: expected %q, got %q",
			d.Icon(), d.TargetLabel, d.Path, string(d.BaseType), string(d.TargetType))
	case IssueExtraKey:
		return fmt.Sprintf("%s [%s] Extra key: %s", d.Icon(), d.TargetLabel, d.Path)
	default:
		return fmt.Sprintf("%s [%s] %s: %s", d.Icon(), d.TargetLabel, d.Kind, d.Path)
	}
}

// Report is the ordered result of one comparison pass.
type Report []Discrepancy

// Lines renders every discrepancy in order
func (r Report) Lines() []string {
	lines := make([]string, 0, len(r))
	for _, d := range r {
		lines = append(lines, d.String())
	}
	return lines
}

// Count returns the number of discrepancies of the given kind
func (r Report) Count(kind IssueKind) int {
	count := 0
	for _, d := range r {
		if d.Kind == kind {
			count++
		}
	}
	return count
}

// Paths returns the key paths of the discrepancies of the given kind, in order
func (r Report) Paths(kind IssueKind) []string {
	var paths []string
	for _, d := range r {
		if d.Kind == kind {
			paths = append(paths, d.Path)
		}
	}
	return paths
}

// IsClean reports whether the comparison found no drift
func (r Report) IsClean() bool {
	return len(r) == 0
}
