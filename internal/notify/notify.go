package notify

import (
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/pterm/pterm"
)

// Kind selects a notification's styling.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Color returns the accent color for k. Unknown kinds use the info color.
func (k Kind) Color() lipgloss.Color {
	switch k {
	case KindSuccess:
		return lipgloss.Color("#10b981")
	case KindError:
		return lipgloss.Color("#ef4444")
	default:
		return lipgloss.Color("#6366f1")
	}
}

// Phase is where a toast is in its lifecycle.
type Phase int

const (
	PhaseEntering Phase = iota
	PhaseVisible
	PhaseLeaving
)

func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// Timings controls the toast lifecycle. SlideIn and Dwell are both measured
// from the moment the toast is pushed.
type Timings struct {
	SlideIn  time.Duration
	Dwell    time.Duration
	SlideOut time.Duration
}

// DefaultTimings returns 100ms in, 3s dwell, 300ms out.
func DefaultTimings() Timings {
	return Timings{
		SlideIn:  100 * time.Millisecond,
		Dwell:    3 * time.Second,
		SlideOut: 300 * time.Millisecond,
	}
}

// Toast is one notification on the stack.
type Toast struct {
	ID    string
	Text  string
	Kind  Kind
	Phase Phase
}

// ShownMsg moves a toast from entering to visible.
type ShownMsg struct{ ID string }

// HideMsg starts a toast's slide-out.
type HideMsg struct{ ID string }

// RemoveMsg drops a toast from the stack.
type RemoveMsg struct{ ID string }

// Stack holds the live toasts, oldest first.
type Stack struct {
	timings Timings
	toasts  []Toast
}

// NewStack creates an empty stack.
func NewStack(t Timings) *Stack {
	return &Stack{timings: t}
}

// Push appends a toast and returns the commands for its slide-in and dwell timers.
func (s *Stack) Push(text string, kind Kind) tea.Cmd {
	id := uuid.NewString()
	s.toasts = append(s.toasts, Toast{ID: id, Text: text, Kind: kind, Phase: PhaseEntering})

	return tea.Batch(
		tea.Tick(s.timings.SlideIn, func(time.Time) tea.Msg { return ShownMsg{ID: id} }),
		tea.Tick(s.timings.Dwell, func(time.Time) tea.Msg { return HideMsg{ID: id} }),
	)
}

// Update applies a lifecycle message. handled is false for messages the stack
// does not own. Messages for toasts that are already gone are ignored.
func (s *Stack) Update(msg tea.Msg) (handled bool, cmd tea.Cmd) {
	switch msg := msg.(type) {
	case ShownMsg:
		if t := s.find(msg.ID); t != nil && t.Phase == PhaseEntering {
			t.Phase = PhaseVisible
		}
		return true, nil
	case HideMsg:
		t := s.find(msg.ID)
		if t == nil || t.Phase == PhaseLeaving {
			return true, nil
		}
		t.Phase = PhaseLeaving
		id := msg.ID
		return true, tea.Tick(s.timings.SlideOut, func(time.Time) tea.Msg { return RemoveMsg{ID: id} })
	case RemoveMsg:
		s.remove(msg.ID)
		return true, nil
	}
	return false, nil
}

// Toasts returns a snapshot of the stack.
func (s *Stack) Toasts() []Toast {
	out := make([]Toast, len(s.toasts))
	copy(out, s.toasts)
	return out
}

// Len returns the number of live toasts.
func (s *Stack) Len() int { return len(s.toasts) }

func (s *Stack) find(id string) *Toast {
	for i := range s.toasts {
		if s.toasts[i].ID == id {
			return &s.toasts[i]
		}
	}
	return nil
}

func (s *Stack) remove(id string) {
	for i := range s.toasts {
		if s.toasts[i].ID == id {
			s.toasts = append(s.toasts[:i], s.toasts[i+1:]...)
			return
		}
	}
}

// View renders the toasts stacked vertically, right-aligned within width.
func (s *Stack) View(width int) string {
	if len(s.toasts) == 0 {
		return ""
	}
	lines := make([]string, 0, len(s.toasts))
	for _, t := range s.toasts {
		style := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Kind.Color()).
			Padding(0, 2).
			MarginTop(1)
		if t.Phase != PhaseVisible {
			style = style.Faint(true)
		}
		box := style.Render(t.Text)
		if width > 0 {
			box = lipgloss.PlaceHorizontal(width, lipgloss.Right, box)
		}
		lines = append(lines, box)
	}
	return strings.Join(lines, "\n")
}

// Print writes a one-line console notification.
func Print(w io.Writer, kind Kind, text string) error {
	var line string
	switch kind {
	case KindSuccess:
		line = pterm.Success.Sprintln(text)
	case KindError:
		line = pterm.Error.Sprintln(text)
	default:
		line = pterm.Info.Sprintln(text)
	}
	_, err := io.WriteString(w, line)
	return err
}
