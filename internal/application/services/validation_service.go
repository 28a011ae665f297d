package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"predeploy.dev/cli/internal/core/confignode"
	"predeploy.dev/cli/internal/core/drift"
	"predeploy.dev/cli/internal/core/ports"
	"predeploy.dev/cli/internal/logging"
)

// Snapshot labels used in report lines
const (
	LabelProd        = "prod"
	LabelDev         = "dev"
	LabelQA          = "qa"
	LabelMainProd    = "main-prod"
	LabelFeatureProd = "feature-prod"
)

// CompletionNotice is shown to the operator once a run finishes
const CompletionNotice = "Validation completed. Check 'Pre-Deploy Validator' output panel."

// Snapshots holds the configuration trees compared by a validation run
type Snapshots struct {
	Prod        *confignode.Node
	Dev         *confignode.Node
	QA          *confignode.Node
	MainProd    *confignode.Node
	FeatureProd *confignode.Node
}

// PassResult is the outcome of one structural comparison pass
type PassResult struct {
	BaseLabel   string
	TargetLabel string
	Report      drift.Report
}

// Summary aggregates everything a validation run found
type Summary struct {
	Environment     []PassResult
	Commits         []drift.CommitStatus
	Branch          PassResult
	Repository      ports.RepositoryInfo
	RepositoryFound bool
}

// TotalIssues counts structural discrepancies across all passes
func (s Summary) TotalIssues() int {
	total := len(s.Branch.Report)
	for _, p := range s.Environment {
		total += len(p.Report)
	}
	return total
}

// CommitsBehind counts environments whose commit differs from production
func (s Summary) CommitsBehind() int {
	behind := 0
	for _, c := range s.Commits {
		if !c.UpToDate {
			behind++
		}
	}
	return behind
}

// ValidationService runs the environment, commit and branch drift checks and
// writes the report to an output sink.
type ValidationService struct {
	comparator drift.Comparator
	repository ports.RepositoryInfoProvider
	snapshots  Snapshots
	logger     *logging.Logger
}

// NewValidationService creates a new validation service. A nil repository
// provider is treated as an absent source-control integration.
func NewValidationService(comparator drift.Comparator, repository ports.RepositoryInfoProvider, snapshots Snapshots, logger *logging.Logger) *ValidationService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &ValidationService{
		comparator: comparator,
		repository: repository,
		snapshots:  snapshots,
		logger:     logger.Child("validation"),
	}
}

// Run clears the sink and writes the full report. Findings never cause an
// error; only a failing sink does.
func (s *ValidationService) Run(ctx context.Context, sink ports.OutputSink) (Summary, error) {
	var summary Summary
	w := &reportWriter{sink: sink}

	if err := sink.Clear(); err != nil {
		return summary, fmt.Errorf("failed to clear output: %w", err)
	}

	w.line(ports.StyleHeader, "=== Pre-Deploy Validator Started ===")
	w.blank()

	summary.Environment = s.environmentDriftCheck(w)
	summary.Commits = s.commitDriftCheck(w)
	summary.Branch = s.branchDriftCheck(w)
	summary.Repository, summary.RepositoryFound = s.repositoryInfo(ctx, w)

	w.line(ports.StyleHeader, "=== Validation Completed ===")

	if w.err != nil {
		return summary, fmt.Errorf("failed to write report: %w", w.err)
	}

	s.logger.Info().
		Int("issues", summary.TotalIssues()).
		Int("commits_behind", summary.CommitsBehind()).
		Bool("repository_found", summary.RepositoryFound).
		Msg("validation run complete")

	return summary, nil
}

func (s *ValidationService) environmentDriftCheck(w *reportWriter) []PassResult {
	w.line(ports.StyleHeader, "=== ENVIRONMENT CONFIG DRIFT CHECK ===")
	w.blank()

	prodToDev := s.compare(s.snapshots.Prod, s.snapshots.Dev, LabelProd, LabelDev)
	prodToQA := s.compare(s.snapshots.Prod, s.snapshots.QA, LabelProd, LabelQA)

	w.pass(prodToDev)
	w.blank()
	w.pass(prodToQA)

	w.blank()
	w.line(ports.StylePlain, "Environment drift check complete.")
	w.blank()

	return []PassResult{prodToDev, prodToQA}
}

func (s *ValidationService) commitDriftCheck(w *reportWriter) []drift.CommitStatus {
	w.line(ports.StyleHeader, "=== COMMIT DRIFT CHECK ===")

	statuses := []drift.CommitStatus{
		drift.CheckCommit(LabelDev, s.snapshots.Prod, s.snapshots.Dev),
		drift.CheckCommit(LabelQA, s.snapshots.Prod, s.snapshots.QA),
	}
	for _, status := range statuses {
		style := ports.StyleSuccess
		if !status.UpToDate {
			style = ports.StyleError
		}
		w.line(style, status.String())
	}

	w.blank()
	w.line(ports.StylePlain, "Commit drift check complete.")
	w.blank()

	return statuses
}

func (s *ValidationService) branchDriftCheck(w *reportWriter) PassResult {
	w.line(ports.StyleHeader, "=== BRANCH CONFIG DRIFT CHECK ===")

	result := s.compare(s.snapshots.MainProd, s.snapshots.FeatureProd, LabelMainProd, LabelFeatureProd)
	w.pass(result)

	w.blank()
	w.line(ports.StylePlain, "Branch drift check complete.")
	w.blank()

	return result
}

func (s *ValidationService) repositoryInfo(ctx context.Context, w *reportWriter) (ports.RepositoryInfo, bool) {
	w.blank()
	w.line(ports.StyleHeader, "=== Repository Info ===")

	info, found := s.lookupRepository(ctx)
	if !found {
		w.line(ports.StyleWarning, "⚠ No Git repository found.")
		return info, false
	}

	url := info.RemoteURL
	if url == "" {
		url = "No remote origin found"
	}
	w.line(ports.StylePlain, "📁 Repo URL: "+url)
	return info, true
}

func (s *ValidationService) lookupRepository(ctx context.Context) (ports.RepositoryInfo, bool) {
	if s.repository == nil {
		return ports.RepositoryInfo{}, false
	}

	info, err := s.repository.Origin(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrRepositoryNotFound) {
			s.logger.Warn().Err(err).Msg("repository lookup failed")
		}
		return ports.RepositoryInfo{}, false
	}
	return info, true
}

func (s *ValidationService) compare(base, target *confignode.Node, baseLabel, targetLabel string) PassResult {
	report := s.comparator.Compare(base, target, baseLabel, targetLabel)
	s.logger.Debug().
		Str("base", baseLabel).
		Str("target", targetLabel).
		Int("issues", len(report)).
		Msg("comparison pass")
	return PassResult{BaseLabel: baseLabel, TargetLabel: targetLabel, Report: report}
}

// reportWriter remembers the first sink error so the run can finish its
// bookkeeping and report it once.
type reportWriter struct {
	sink ports.OutputSink
	err  error
}

func (w *reportWriter) line(style ports.LineStyle, text string) {
	if w.err != nil {
		return
	}
	w.err = w.sink.AppendLine(style, text)
}

func (w *reportWriter) blank() {
	w.line(ports.StylePlain, "")
}

func (w *reportWriter) pass(result PassResult) {
	w.line(ports.StyleHeader, fmt.Sprintf("--- %s → %s Issues ---", sectionLabel(result.BaseLabel), sectionLabel(result.TargetLabel)))
	for _, d := range result.Report {
		style := ports.StyleWarning
		if d.IsError() {
			style = ports.StyleError
		}
		w.line(style, d.String())
	}
}

// sectionLabel turns "main-prod" into "MAIN PROD"
func sectionLabel(label string) string {
	return strings.ToUpper(strings.ReplaceAll(label, "-", " "))
}
