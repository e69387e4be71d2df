// Package notify shows transient notifications.
//
// In the terminal UI a Stack holds toasts that slide in, dwell, slide out and
// are removed, each driven by its own bubbletea timers. On the command line
// Print renders a one-line pterm notice instead.
package notify
