package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"predeploy.dev/cli/internal/core/drift"
	driftmocks "predeploy.dev/cli/internal/core/drift/mocks"
	"predeploy.dev/cli/internal/core/fixtures"
	"predeploy.dev/cli/internal/core/ports"
	"predeploy.dev/cli/internal/core/ports/mocks"
	"predeploy.dev/cli/internal/core/testfixtures"
	"predeploy.dev/cli/internal/infrastructure/output"
)

func sampleSnapshots() Snapshots {
	return Snapshots{
		Prod:        fixtures.ProdConfig(),
		Dev:         fixtures.DevConfig(),
		QA:          fixtures.QAConfig(),
		MainProd:    fixtures.MainProdConfig(),
		FeatureProd: fixtures.FeatureBranchProdConfig(),
	}
}

const expectedSampleReport = `=== Pre-Deploy Validator Started ===

=== ENVIRONMENT CONFIG DRIFT CHECK ===

--- PROD → DEV Issues ---
⚠️ [dev] Type mismatch on transaction.timeout: expected "number", got "string"
❌ [dev] Missing key: transaction.retries
❌ [dev] Missing key: featureFlags.enableDiscounts
⚠️ [dev] Extra key: featureFlags.enableBetaTesting

--- PROD → QA Issues ---
❌ [qa] Missing key: transaction

Environment drift check complete.

=== COMMIT DRIFT CHECK ===
❌ DEV commit (dev-xyz888) is behind PROD (prod-abc123)
❌ QA commit (qa-55fa22) is behind PROD (prod-abc123)

Commit drift check complete.

=== BRANCH CONFIG DRIFT CHECK ===
--- MAIN PROD → FEATURE PROD Issues ---
❌ [feature-prod] Missing key: transaction.maxAmount

Branch drift check complete.


=== Repository Info ===
📁 Repo URL: https://github.com/acme/payment-service.git
=== Validation Completed ===`

// TestValidationService_Run_SampleData_WritesFullReport tests the complete report for the bundled snapshots
func TestValidationService_Run_SampleData_WritesFullReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockRepositoryInfoProvider(ctrl)
	repo.EXPECT().Origin(gomock.Any()).Return(ports.RepositoryInfo{
		Path:       "/src/payment-service",
		RemoteName: "origin",
		RemoteURL:  "https://github.com/acme/payment-service.git",
	}, nil)

	service := NewValidationService(drift.NewStructuralComparator(), repo, sampleSnapshots(), nil)
	sink := output.NewBufferSink()

	summary, err := service.Run(context.Background(), sink)

	require.NoError(t, err)
	assert.Equal(t, expectedSampleReport, sink.String())

	assert.Equal(t, 6, summary.TotalIssues())
	assert.Equal(t, 2, summary.CommitsBehind())
	assert.True(t, summary.RepositoryFound)
	require.Len(t, summary.Environment, 2)
	assert.Equal(t, LabelDev, summary.Environment[0].TargetLabel)
	assert.Equal(t, LabelQA, summary.Environment[1].TargetLabel)
	assert.Equal(t, LabelFeatureProd, summary.Branch.TargetLabel)
}

// TestValidationService_Run_RepositoryLookup_RendersEachOutcome tests the repository info section
func TestValidationService_Run_RepositoryLookup_RendersEachOutcome(t *testing.T) {
	tests := []struct {
		name          string
		info          ports.RepositoryInfo
		err           error
		expectedLine  string
		expectedFound bool
	}{
		{
			name:          "RemoteFound",
			info:          ports.RepositoryInfo{RemoteName: "origin", RemoteURL: "git@github.com:acme/app.git"},
			expectedLine:  "📁 Repo URL: git@github.com:acme/app.git",
			expectedFound: true,
		},
		{
			name:          "RepositoryWithoutOrigin",
			info:          ports.RepositoryInfo{RemoteName: "origin"},
			expectedLine:  "📁 Repo URL: No remote origin found",
			expectedFound: true,
		},
		{
			name:          "NoRepository",
			err:           ports.ErrRepositoryNotFound,
			expectedLine:  "⚠ No Git repository found.",
			expectedFound: false,
		},
		{
			name:          "ProviderFailure_TreatedAsNotFound",
			err:           errors.New("permission denied"),
			expectedLine:  "⚠ No Git repository found.",
			expectedFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mocks.NewMockRepositoryInfoProvider(ctrl)
			repo.EXPECT().Origin(gomock.Any()).Return(tt.info, tt.err)

			service := NewValidationService(drift.NewStructuralComparator(), repo, sampleSnapshots(), nil)
			sink := output.NewBufferSink()

			summary, err := service.Run(context.Background(), sink)

			require.NoError(t, err, "Repository lookup problems must never fail the run")
			texts := sink.Texts()
			assert.Equal(t, tt.expectedLine, texts[len(texts)-2])
			assert.Equal(t, tt.expectedFound, summary.RepositoryFound)
		})
	}
}

// TestValidationService_Run_NilProvider_ReportsNotFound tests the absent integration
func TestValidationService_Run_NilProvider_ReportsNotFound(t *testing.T) {
	service := NewValidationService(drift.NewStructuralComparator(), nil, sampleSnapshots(), nil)
	sink := output.NewBufferSink()

	summary, err := service.Run(context.Background(), sink)

	require.NoError(t, err)
	assert.False(t, summary.RepositoryFound)
	assert.Contains(t, sink.Texts(), "⚠ No Git repository found.")
}

// TestValidationService_Run_CleanSnapshots_SucceedsWithoutFindings tests a run with zero drift
func TestValidationService_Run_CleanSnapshots_SucceedsWithoutFindings(t *testing.T) {
	tree := testfixtures.NewTreeBuilder().
		WithChild("service", func(b *testfixtures.TreeBuilder) { b.WithString("name", "api") }).
		WithCommit("abc").
		Build()
	snapshots := Snapshots{Prod: tree, Dev: tree, QA: tree, MainProd: tree, FeatureProd: tree}

	service := NewValidationService(drift.NewStructuralComparator(), nil, snapshots, nil)
	sink := output.NewBufferSink()

	summary, err := service.Run(context.Background(), sink)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.TotalIssues())
	assert.Equal(t, 0, summary.CommitsBehind())
	assert.Contains(t, sink.Texts(), "✔ DEV is up-to-date with PROD (abc)")
	assert.Contains(t, sink.Texts(), "✔ QA is up-to-date with PROD (abc)")
	assert.Equal(t, "=== Validation Completed ===", sink.Texts()[len(sink.Texts())-1])
}

// TestValidationService_Run_PassesInFixedOrder tests the comparator invocation order and labels
func TestValidationService_Run_PassesInFixedOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	comparator := driftmocks.NewMockComparator(ctrl)
	snapshots := sampleSnapshots()

	gomock.InOrder(
		comparator.EXPECT().Compare(snapshots.Prod, snapshots.Dev, LabelProd, LabelDev).Return(nil),
		comparator.EXPECT().Compare(snapshots.Prod, snapshots.QA, LabelProd, LabelQA).Return(nil),
		comparator.EXPECT().Compare(snapshots.MainProd, snapshots.FeatureProd, LabelMainProd, LabelFeatureProd).
			Return(drift.Report{{Kind: drift.IssueExtraKey, Path: "x", TargetLabel: LabelFeatureProd}}),
	)

	service := NewValidationService(comparator, nil, snapshots, nil)
	sink := output.NewBufferSink()

	summary, err := service.Run(context.Background(), sink)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalIssues())
	assert.True(t, strings.Contains(sink.String(), "⚠️ [feature-prod] Extra key: x"))
}

// TestValidationService_Run_LineStyles tests that findings carry the right presentation style
func TestValidationService_Run_LineStyles(t *testing.T) {
	service := NewValidationService(drift.NewStructuralComparator(), nil, sampleSnapshots(), nil)
	sink := output.NewBufferSink()

	_, err := service.Run(context.Background(), sink)
	require.NoError(t, err)

	styles := map[string]ports.LineStyle{}
	for _, line := range sink.Lines() {
		styles[line.Text] = line.Style
	}
	assert.Equal(t, ports.StyleHeader, styles["=== COMMIT DRIFT CHECK ==="])
	assert.Equal(t, ports.StyleError, styles["❌ [qa] Missing key: transaction"])
	assert.Equal(t, ports.StyleWarning, styles["⚠️ [dev] Extra key: featureFlags.enableBetaTesting"])
	assert.Equal(t, ports.StyleWarning, styles["⚠ No Git repository found."])
}

// TestValidationService_Run_SinkFailures tests that output errors are surfaced
func TestValidationService_Run_SinkFailures(t *testing.T) {
	t.Run("ClearFails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := mocks.NewMockOutputSink(ctrl)
		sink.EXPECT().Clear().Return(errors.New("panel closed"))

		service := NewValidationService(drift.NewStructuralComparator(), nil, sampleSnapshots(), nil)
		_, err := service.Run(context.Background(), sink)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to clear output")
	})

	t.Run("AppendFailsOnce_StopsWriting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		sink := mocks.NewMockOutputSink(ctrl)
		sink.EXPECT().Clear().Return(nil)
		sink.EXPECT().AppendLine(ports.StyleHeader, "=== Pre-Deploy Validator Started ===").Return(errors.New("broken pipe")).Times(1)

		service := NewValidationService(drift.NewStructuralComparator(), nil, sampleSnapshots(), nil)
		summary, err := service.Run(context.Background(), sink)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken pipe")
		assert.Equal(t, 6, summary.TotalIssues(), "Comparisons still complete")
	})
}

func TestSectionLabel(t *testing.T) {
	assert.Equal(t, "PROD", sectionLabel("prod"))
	assert.Equal(t, "MAIN PROD", sectionLabel("main-prod"))
	assert.Equal(t, "FEATURE PROD", sectionLabel("feature-prod"))
}
