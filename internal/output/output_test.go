package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/glint/internal/review"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleReport has one finding per category: issue, security, suggestion.
func sampleReport(t *testing.T) *review.Report {
	t.Helper()
	src := "query = \"SELECT * FROM users WHERE id = \" + id\n" +
		strings.Repeat("total = total + 1\n", 5)
	res := review.Generate(src, "python")
	require.Equal(t, review.Counts{Total: 3, Issues: 1, Security: 1, Suggestions: 1}, res.Counts)
	return review.BuildReport(review.Input{Source: src, Language: "python"}, res, 0, 0)
}

func emptyReport() *review.Report {
	res := review.Generate("x := 1 // ok", "go")
	return review.BuildReport(review.Input{Source: "x := 1 // ok", Language: "go"}, res, 0, 0)
}

func TestGetWriter(t *testing.T) {
	for _, format := range Formats() {
		w, err := GetWriter(format)
		require.NoError(t, err, format)
		assert.NotNil(t, w)
	}
	_, err := GetWriter("yaml")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestWriteReport_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	var stdout bytes.Buffer
	require.NoError(t, WriteReport(sampleReport(t), "json", path, &stdout))
	assert.Zero(t, stdout.Len(), "file output must not touch stdout")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got review.Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, 3, got.Result.Counts.Total)
	assert.Equal(t, "glint", got.Tool)
}

func TestWriteReport_Stdout(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, WriteReport(sampleReport(t), "json", "", &stdout))

	var got review.Report
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &got))
	assert.Equal(t, 3, got.Result.Counts.Total)
}

func TestWriteReport_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.json")
	err := WriteReport(sampleReport(t), "json", path, io.Discard)
	assert.ErrorContains(t, err, "creating output file")
}

func TestWriteReport_BadFormat(t *testing.T) {
	assert.Error(t, WriteReport(sampleReport(t), "pdf", "", io.Discard))
}

func TestJSONWriter_FieldNames(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONWriter{}).Write(&buf, sampleReport(t)))

	out := buf.String()
	for _, key := range []string{`"runId"`, `"findings"`, `"counts"`, `"suggestions"`, `"line"`, `"check"`} {
		assert.Contains(t, out, key)
	}
}

func TestTextWriter_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextWriter{}).Write(&buf, emptyReport()))

	out := buf.String()
	assert.Contains(t, out, "go")
	assert.Contains(t, out, "Findings: 0 total")
	assert.Contains(t, out, "Great! No issues found")
}

func TestTextWriter_WithFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TextWriter{}).Write(&buf, sampleReport(t)))

	out := buf.String()
	assert.Contains(t, out, "Findings: 3 total (1 issues, 1 security, 1 suggestions)")
	assert.Contains(t, out, "[!!] HIGH SECURITY  Line 2")
	assert.Contains(t, out, "Suggestion:")

	// Issues render before security findings, which render before suggestions.
	issue := strings.Index(out, "ISSUE")
	security := strings.Index(out, "SECURITY")
	suggestion := strings.Index(out, "SUGGESTION ")
	assert.True(t, issue < security && security < suggestion, out)
}

func TestTextWriter_WriteError(t *testing.T) {
	err := (&TextWriter{}).Write(failingWriter{}, sampleReport(t))
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, os.ErrClosed }

func TestMarkdownWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownWriter{}).Write(&buf, sampleReport(t)))

	out := buf.String()
	assert.Contains(t, out, "## Code Review Summary")
	assert.Contains(t, out, "**Total Issues Found:** 3")
	assert.Contains(t, out, "| Security | 1 |")
	assert.Contains(t, out, "### 2. 🟠 Security (High)")
	assert.Contains(t, out, "**Suggestion:** Use parameterized queries or prepared statements")
}

func TestMarkdownWriter_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&MarkdownWriter{}).Write(&buf, emptyReport()))
	assert.Contains(t, buf.String(), "No issues found")
	assert.NotContains(t, buf.String(), "Detailed Analysis")
}

func TestSARIFWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&SARIFWriter{}).Write(&buf, sampleReport(t)))

	var log sarifLog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &log))
	require.Len(t, log.Runs, 1)

	run := log.Runs[0]
	assert.Equal(t, "glint", run.Tool.Driver.Name)
	require.Len(t, run.Results, 3)
	assert.Len(t, run.Tool.Driver.Rules, 3)

	sec := run.Results[1]
	assert.Equal(t, "glint/sql-concat", sec.RuleID)
	assert.Equal(t, "error", sec.Level)
	assert.Equal(t, 2, sec.Locations[0].PhysicalLocation.Region.StartLine)
	require.Len(t, sec.Fixes, 1)
}

func TestSARIFWriter_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&SARIFWriter{}).Write(&buf, emptyReport()))
	assert.Contains(t, buf.String(), `"results": []`)
	assert.Contains(t, buf.String(), `"rules": []`)

	var log sarifLog
	require.NoError(t, json.Unmarshal(buf.Bytes(), &log))
	require.Len(t, log.Runs, 1)
	assert.NotNil(t, log.Runs[0].Tool.Driver.Rules)
}

func TestSeverityToLevel(t *testing.T) {
	assert.Equal(t, "error", severityToLevel(review.SeverityCritical))
	assert.Equal(t, "error", severityToLevel(review.SeverityHigh))
	assert.Equal(t, "warning", severityToLevel(review.SeverityMedium))
	assert.Equal(t, "note", severityToLevel(review.SeverityLow))
	assert.Equal(t, "note", severityToLevel(review.Severity("bogus")))
}

func TestTableWriter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableWriter{}).Write(&buf, sampleReport(t)))

	out := buf.String()
	assert.Contains(t, out, "Found 3 findings")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "Potential SQL injection vulnerability detected")
}

func TestTableWriter_NoFindings(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&TableWriter{}).Write(&buf, emptyReport()))
	assert.Contains(t, buf.String(), "No issues found")
}
