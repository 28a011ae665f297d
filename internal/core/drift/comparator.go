// Package drift compares configuration snapshots and reports structural drift.
package drift

//go:generate mockgen -source=comparator.go -destination=mocks/comparator_mock.go -package=mocks

import "predeploy.dev/cli/internal/core/confignode"

// Comparator defines the interface for structural comparison of snapshots
type Comparator interface {
	Compare(base, target *confignode.Node, baseLabel, targetLabel string) Report
}

// StructuralComparator walks the base tree depth-first and reports missing
// keys, type mismatches and extra keys against the target tree.
type StructuralComparator struct{}

// NewStructuralComparator creates a new structural comparator
func NewStructuralComparator() *StructuralComparator {
	return &StructuralComparator{}
}

// Compare implements Comparator
func (c *StructuralComparator) Compare(base, target *confignode.Node, baseLabel, targetLabel string) Report {
	return Compare(base, target, baseLabel, targetLabel)
}

// Compare reports every discrepancy between base and target.
//
// Base keys are visited in insertion order. A key absent from target is
// reported as missing and not descended into. A key whose kinds differ is
// reported as a type mismatch, and nested base nodes are still walked; a
// non-node target side is then treated as empty. After all base keys, target
// keys unknown to base are reported as extra, without expanding their
// subtrees. Empty inputs yield an empty report.
func Compare(base, target *confignode.Node, baseLabel, targetLabel string) Report {
	w := walker{baseLabel: baseLabel, targetLabel: targetLabel}
	w.walk(base, target, "")
	return w.report
}

type walker struct {
	baseLabel   string
	targetLabel string
	report      Report
}

func (w *walker) walk(base, target *confignode.Node, prefix string) {
	base.Each(func(key string, baseValue confignode.Value) bool {
		fullKey := joinPath(prefix, key)

		targetValue, ok := target.Get(key)
		if !ok {
			w.add(IssueMissingKey, fullKey, "", "")
			return true
		}

		if baseValue.Kind() != targetValue.Kind() {
			w.add(IssueTypeMismatch, fullKey, baseValue.Kind(), targetValue.Kind())
		}

		if baseChild, isNode := baseValue.Node(); isNode {
			// nil when the target is null or a primitive
			targetChild, _ := targetValue.Node()
			w.walk(baseChild, targetChild, fullKey)
		}
		return true
	})

	target.Each(func(key string, _ confignode.Value) bool {
		if !base.Has(key) {
			w.add(IssueExtraKey, joinPath(prefix, key), "", "")
		}
		return true
	})
}

func (w *walker) add(kind IssueKind, path string, baseType, targetType confignode.Kind) {
	w.report = append(w.report, Discrepancy{
		Kind:        kind,
		Path:        path,
		BaseType:    baseType,
		TargetType:  targetType,
		BaseLabel:   w.baseLabel,
		TargetLabel: w.targetLabel,
	})
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

var _ Comparator = (*StructuralComparator)(nil)
