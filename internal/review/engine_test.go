package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Validate(Input{Source: ""}), ErrEmptyInput)
	assert.ErrorIs(t, Validate(Input{Source: "  \n\t "}), ErrEmptyInput)
	assert.NoError(t, Validate(Input{Source: "x"}))
}

func TestRun_EmptyInputNeverGenerates(t *testing.T) {
	report, err := Run(context.Background(), Input{Source: "   ", Language: "javascript"}, nil, time.Hour)
	assert.Nil(t, report)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestRun_TrimsAndReports(t *testing.T) {
	report, err := Run(context.Background(), Input{Source: "\n  var x = 1; // ok  \n", Language: "JavaScript"}, nil, 0)
	require.NoError(t, err)

	assert.Equal(t, ToolName, report.Tool)
	assert.Equal(t, ToolVersion, report.Version)
	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "javascript", report.Input.Language)
	assert.Equal(t, FamilyJavaScript, report.Input.Family)
	assert.Equal(t, len("var x = 1; // ok"), report.Input.Bytes)
	assert.Equal(t, 1, report.Input.Lines)
	assert.Equal(t, []string{"var-declaration"}, checkIDs(report.Result.Findings))
}

func TestRun_WaitsForDelay(t *testing.T) {
	start := time.Now()
	report, err := Run(context.Background(), Input{Source: "eval(x)"}, nil, 20*time.Millisecond)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, int64(20), report.Timing.DelayMs)
}

func TestRun_ContextCancelledDuringDelay(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Input{Source: "eval(x)"}, nil, time.Hour)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_CustomGenerator(t *testing.T) {
	g := NewGenerator(Options{Extended: true})
	report, err := Run(context.Background(), Input{Source: "system(cmd) # x", Language: "c"}, g, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"shell-exec"}, checkIDs(report.Result.Findings))
}

func TestBuildReport_UniqueRunIDs(t *testing.T) {
	a := BuildReport(Input{Source: "x"}, Result{}, 0, 0)
	b := BuildReport(Input{Source: "x"}, Result{}, 0, 0)
	assert.NotEqual(t, a.RunID, b.RunID)
}
