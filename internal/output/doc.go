// Package output formats review reports for display or machine consumption.
//
// Six formats are supported:
//   - text     - human-readable terminal output (default)
//   - json     - full structured JSON report
//   - markdown - summary table plus numbered findings with severity emoji
//   - sarif    - SARIF v2.1.0 for CI tooling
//   - table    - pterm table, one row per finding
//   - html     - result markup with injected style rules and count slots
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*review.Report]. [WriteReport]
// handles destination selection.
//
// The severity and category mappings in style.go are shared by every format
// and by the terminal UI. Unknown values fall back to low-severity styling and
// an info icon rather than failing.
package output
