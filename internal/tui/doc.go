// Package tui is the interactive demo: an overview tab, a demo tab with an
// editor and simulated review, and a tab of canned examples.
//
// Model is the single UI context. It is built once by New and threaded through
// the bubbletea update loop; nothing lives in package state except styles.
package tui
