// Package config loads and merges glint configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GLINT_LANGUAGE, GLINT_FAIL_ON, GLINT_DEMO_DELAY_MS, etc.)
//  3. Config file ($XDG_CONFIG_HOME/glint/config.toml, or GLINT_CONFIG)
//  4. Built-in defaults
//
// Layering is done by viper. Use [Load] to obtain a merged [Config], [Save] to
// write a config file, and [SetField] to update a single key.
package config
