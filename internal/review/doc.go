// Package review contains the core types and the simulated review engine.
//
// It defines the Finding, Result, and Report types and a Generator that runs a
// fixed battery of substring checks over pasted source text. The generator is
// a pure function of its inputs: the same source and language always yield the
// same findings, grouped as issues, then security findings, then suggestions.
//
// An opt-in extended battery adds a few more heuristics. Rules packs (rules.go)
// can enable it, disable individual checks, and override severities per
// category.
//
// Run (engine.go) validates input and waits a fixed simulated delay before
// generating, standing in for a remote analysis call.
package review
