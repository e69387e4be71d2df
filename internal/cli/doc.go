// Package cli wires together the Cobra command tree for the glint binary.
//
// It defines the root command and all subcommands (review, demo, checks,
// languages, config, version), binds flags, reads configuration, runs the
// simulated review, and returns deterministic exit codes for CI gating.
package cli
