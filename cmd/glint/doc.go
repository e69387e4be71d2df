// Glint is a CLI and terminal demo for simulated code review of snippets.
//
// It runs a fixed battery of pattern checks over pasted or piped code and
// reports issues, security findings and suggestions, with deterministic exit
// codes suitable for CI gating.
//
// Usage:
//
//	glint review app.js                  # review a file
//	cat snippet.py | glint review --lang python
//	glint review --format sarif --fail-on high main.go
//	glint demo                           # interactive demo
//	glint checks --extended              # list the active battery
package main
