package evaluate

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/codeval-2025.net/internal/adapter/logging"
	"gitlab.com/codeval-2025.net/internal/core/services/analysis"
	"gitlab.com/codeval-2025.net/internal/domain"
)

// fakeBuilder passes the test case through so the fake runner can script a
// per-case outcome.
type fakeBuilder struct {
	err error
}

func (f *fakeBuilder) BuildHarnessSource(_ domain.Language, _, _ string, testCase domain.TestCase) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("harness-%v", testCase.Input), nil
}

// fakeRunner maps harness source to a scripted outcome.
type fakeRunner struct {
	outcomes map[string]domain.ExecutionOutcome
	calls    []string
}

func (f *fakeRunner) Run(_ context.Context, harnessSource string, _ domain.Language, _ string, _ time.Duration) domain.ExecutionOutcome {
	f.calls = append(f.calls, harnessSource)
	if outcome, ok := f.outcomes[harnessSource]; ok {
		return outcome
	}
	return domain.ExecutionOutcome{ErrorMessage: "unscripted harness"}
}

func newTestService(builder *fakeBuilder, runner *fakeRunner, scratchRoot string) *EvaluationService {
	return NewEvaluationService(
		builder,
		runner,
		analysis.NewQualityScanner(),
		analysis.NewSuspicionScanner(),
		logging.NewNopLogger(),
		scratchRoot,
	)
}

func submissionWithCases(cases ...domain.TestCase) *domain.CodeSubmission {
	return domain.NewCodeSubmission("function add(a,b){return a+b;}", domain.LanguageJavaScript, "add", cases)
}

func TestEvaluateAllPassing(t *testing.T) {
	builder := &fakeBuilder{}
	runner := &fakeRunner{outcomes: map[string]domain.ExecutionOutcome{
		"harness-[2 3]": {Succeeded: true, Value: 5.0, ElapsedMs: 3},
		"harness-[1 1]": {Succeeded: true, Value: 2.0, ElapsedMs: 2},
	}}
	service := newTestService(builder, runner, t.TempDir())

	submission := submissionWithCases(
		domain.TestCase{Input: []interface{}{2, 3}, ExpectedOutput: 5},
		domain.TestCase{Input: []interface{}{1, 1}, ExpectedOutput: 2},
	)

	report, err := service.Evaluate(context.Background(), submission)
	require.NoError(t, err)

	assert.Equal(t, domain.ReportStatusAccepted, report.Status)
	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, 2, report.PassedCount)
	assert.Equal(t, 0, report.FailedCount)
	assert.Equal(t, int64(5), report.TotalElapsedMs)
}

func TestEvaluateWrongAnswer(t *testing.T) {
	builder := &fakeBuilder{}
	runner := &fakeRunner{outcomes: map[string]domain.ExecutionOutcome{
		"harness-[2 3]": {Succeeded: true, Value: 6.0, ElapsedMs: 1},
	}}
	service := newTestService(builder, runner, t.TempDir())

	submission := submissionWithCases(domain.TestCase{Input: []interface{}{2, 3}, ExpectedOutput: 5})

	report, err := service.Evaluate(context.Background(), submission)
	require.NoError(t, err)

	assert.Equal(t, domain.ReportStatusRejected, report.Status)
	require.Len(t, report.Verdicts, 1)
	assert.False(t, report.Verdicts[0].Passed)
	assert.Equal(t, 6.0, report.Verdicts[0].ActualValue)
}

func TestEvaluateFailedOutcomeNeverPasses(t *testing.T) {
	builder := &fakeBuilder{}
	runner := &fakeRunner{outcomes: map[string]domain.ExecutionOutcome{
		// the "right" value rides along, but the run did not succeed
		"harness-[2 3]": {Succeeded: false, Value: 5.0, ErrorMessage: "timed out"},
	}}
	service := newTestService(builder, runner, t.TempDir())

	submission := submissionWithCases(domain.TestCase{Input: []interface{}{2, 3}, ExpectedOutput: 5})

	report, err := service.Evaluate(context.Background(), submission)
	require.NoError(t, err)

	require.Len(t, report.Verdicts, 1)
	assert.False(t, report.Verdicts[0].Passed)
	assert.Equal(t, "timed out", report.Verdicts[0].Outcome.ErrorMessage)
}

func TestEvaluateHarnessErrorDegradesToVerdict(t *testing.T) {
	builder := &fakeBuilder{err: fmt.Errorf("failed to initialize the stateful object")}
	runner := &fakeRunner{}
	service := newTestService(builder, runner, t.TempDir())

	submission := submissionWithCases(
		domain.TestCase{Input: []interface{}{1}, ExpectedOutput: 1},
		domain.TestCase{Input: []interface{}{2}, ExpectedOutput: 2},
	)

	report, err := service.Evaluate(context.Background(), submission)
	require.NoError(t, err)

	// both cases were still judged, no process was ever spawned
	assert.Equal(t, 2, report.TotalCount)
	assert.Equal(t, 0, report.PassedCount)
	assert.Empty(t, runner.calls)
	assert.Contains(t, report.Verdicts[0].Outcome.ErrorMessage, "failed to initialize")
}

func TestEvaluateVerdictOrderMatchesInput(t *testing.T) {
	builder := &fakeBuilder{}
	runner := &fakeRunner{outcomes: map[string]domain.ExecutionOutcome{
		"harness-[1]": {Succeeded: true, Value: 1.0},
		"harness-[2]": {Succeeded: false, ErrorMessage: "boom"},
		"harness-[3]": {Succeeded: true, Value: 3.0},
	}}
	service := newTestService(builder, runner, t.TempDir())

	submission := submissionWithCases(
		domain.TestCase{Input: []interface{}{1}, ExpectedOutput: 1},
		domain.TestCase{Input: []interface{}{2}, ExpectedOutput: 2},
		domain.TestCase{Input: []interface{}{3}, ExpectedOutput: 3},
	)

	report, err := service.Evaluate(context.Background(), submission)
	require.NoError(t, err)

	require.Len(t, report.Verdicts, 3)
	assert.Equal(t, []interface{}{1}, report.Verdicts[0].TestCase.Input)
	assert.Equal(t, []interface{}{2}, report.Verdicts[1].TestCase.Input)
	assert.Equal(t, []interface{}{3}, report.Verdicts[2].TestCase.Input)
	assert.Equal(t, []string{"harness-[1]", "harness-[2]", "harness-[3]"}, runner.calls)
	assert.Equal(t, 2, report.PassedCount)
}

func TestEvaluateFoldsAnalyzerSignals(t *testing.T) {
	builder := &fakeBuilder{}
	runner := &fakeRunner{outcomes: map[string]domain.ExecutionOutcome{
		"harness-[1]": {Succeeded: true, Value: 1.0},
	}}
	service := newTestService(builder, runner, t.TempDir())

	submission := domain.NewCodeSubmission(
		"// from https://leetcode.com/problems\nconst f = (x) => x;",
		domain.LanguageJavaScript,
		"f",
		[]domain.TestCase{{Input: []interface{}{1}, ExpectedOutput: 1}},
	)

	report, err := service.Evaluate(context.Background(), submission)
	require.NoError(t, err)

	assert.True(t, report.Suspicion.PossibleCopyPaste)
	assert.Equal(t, domain.ComplexityLow, report.Quality.ComplexityLevel)
	assert.Contains(t, report.Quality.NotedPractices, "uses arrow functions")
}

func TestEvaluateIsDeterministic(t *testing.T) {
	builder := &fakeBuilder{}
	runner := &fakeRunner{outcomes: map[string]domain.ExecutionOutcome{
		"harness-[2 3]": {Succeeded: true, Value: 5.0, ElapsedMs: 3},
	}}
	service := newTestService(builder, runner, t.TempDir())

	submission := submissionWithCases(domain.TestCase{Input: []interface{}{2, 3}, ExpectedOutput: 5})

	first, err := service.Evaluate(context.Background(), submission)
	require.NoError(t, err)
	second, err := service.Evaluate(context.Background(), submission)
	require.NoError(t, err)

	assert.Equal(t, first.Verdicts, second.Verdicts)
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.PassedCount, second.PassedCount)
}

func TestEvaluateScratchDirFailureIsFatal(t *testing.T) {
	builder := &fakeBuilder{}
	runner := &fakeRunner{}
	service := newTestService(builder, runner, "/nonexistent/scratch/root")

	submission := submissionWithCases(domain.TestCase{Input: []interface{}{1}, ExpectedOutput: 1})

	report, err := service.Evaluate(context.Background(), submission)

	require.Error(t, err)
	assert.Nil(t, report)
	assert.Empty(t, runner.calls)
}
