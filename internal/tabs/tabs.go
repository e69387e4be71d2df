package tabs

import (
	"errors"
	"fmt"
)

// ErrUnknownTrigger is returned when activating a trigger the switcher does not own.
var ErrUnknownTrigger = errors.New("unknown tab trigger")

// Trigger is a selectable tab. Target names the panel it reveals.
type Trigger struct {
	ID     string
	Target string
	Label  string
}

// Event describes one activation. From and To are trigger IDs.
type Event struct {
	From string
	To   string
}

// Listener is notified after every activation.
type Listener func(Event)

// Switcher keeps exactly one trigger and one panel active.
type Switcher struct {
	triggers  []Trigger
	panels    map[string]bool
	active    int
	listeners []*Listener
}

// New builds a switcher with the first trigger active.
func New(triggers []Trigger, panels []string) (*Switcher, error) {
	if len(triggers) == 0 {
		return nil, errors.New("tabs: at least one trigger is required")
	}

	panelSet := make(map[string]bool, len(panels))
	for _, p := range panels {
		if panelSet[p] {
			return nil, fmt.Errorf("tabs: duplicate panel %q", p)
		}
		panelSet[p] = true
	}

	seen := make(map[string]bool, len(triggers))
	for _, t := range triggers {
		if seen[t.ID] {
			return nil, fmt.Errorf("tabs: duplicate trigger %q", t.ID)
		}
		seen[t.ID] = true
		if !panelSet[t.Target] {
			return nil, fmt.Errorf("tabs: trigger %q targets missing panel %q", t.ID, t.Target)
		}
	}

	out := make([]Trigger, len(triggers))
	copy(out, triggers)
	return &Switcher{triggers: out, panels: panelSet}, nil
}

// Triggers returns the triggers in display order.
func (s *Switcher) Triggers() []Trigger {
	out := make([]Trigger, len(s.triggers))
	copy(out, s.triggers)
	return out
}

// Active returns the active trigger.
func (s *Switcher) Active() Trigger {
	return s.triggers[s.active]
}

// ActivePanel returns the panel revealed by the active trigger.
func (s *Switcher) ActivePanel() string {
	return s.triggers[s.active].Target
}

// IsActive reports whether id names the active trigger.
func (s *Switcher) IsActive(id string) bool {
	return s.triggers[s.active].ID == id
}

// PanelActive reports whether panel is the one currently shown.
func (s *Switcher) PanelActive(panel string) bool {
	return s.ActivePanel() == panel
}

// Activate makes id the only active trigger. Unknown ids change nothing.
func (s *Switcher) Activate(id string) error {
	for i, t := range s.triggers {
		if t.ID == id {
			s.set(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownTrigger, id)
}

// Next activates the following trigger, wrapping at the end.
func (s *Switcher) Next() {
	s.set((s.active + 1) % len(s.triggers))
}

// Prev activates the preceding trigger, wrapping at the start.
func (s *Switcher) Prev() {
	s.set((s.active - 1 + len(s.triggers)) % len(s.triggers))
}

// Subscribe registers l and returns a func that removes it.
func (s *Switcher) Subscribe(l Listener) (unsubscribe func()) {
	ref := &l
	s.listeners = append(s.listeners, ref)
	return func() {
		for i, other := range s.listeners {
			if other == ref {
				s.listeners = append(s.listeners[:i:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

func (s *Switcher) set(idx int) {
	from := s.triggers[s.active].ID
	s.active = idx
	ev := Event{From: from, To: s.triggers[idx].ID}
	listeners := make([]*Listener, len(s.listeners))
	copy(listeners, s.listeners)
	for _, l := range listeners {
		(*l)(ev)
	}
}
