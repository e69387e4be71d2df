// Package tabs implements the mutually exclusive tab switcher.
//
// A Switcher owns a fixed set of triggers and panels. Exactly one trigger and
// its panel are active at any time; activation is the only mutation, and
// listeners are told about every one.
package tabs
