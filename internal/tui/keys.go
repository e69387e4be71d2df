package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Overview  key.Binding
	Demo      key.Binding
	Examples  key.Binding
	Submit    key.Binding
	Language  key.Binding
	Up        key.Binding
	Down      key.Binding
	Load      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextTab:   key.NewBinding(key.WithKeys("ctrl+right"), key.WithHelp("ctrl+→", "next tab")),
		PrevTab:   key.NewBinding(key.WithKeys("ctrl+left"), key.WithHelp("ctrl+←", "prev tab")),
		Overview:  key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "overview")),
		Demo:      key.NewBinding(key.WithKeys("f2"), key.WithHelp("f2", "demo")),
		Examples:  key.NewBinding(key.WithKeys("f3"), key.WithHelp("f3", "examples")),
		Submit:    key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "review code")),
		Language:  key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "language")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Load:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "load example")),
	}
}

// helpFor returns the bindings shown in the footer for a panel.
func (k keyMap) helpFor(panel string) []key.Binding {
	nav := []key.Binding{k.Overview, k.Demo, k.Examples, k.NextTab}
	switch panel {
	case panelDemo:
		return append(nav, k.Submit, k.Language, k.ForceQuit)
	case panelExamples:
		return append(nav, k.Up, k.Down, k.Load, k.Quit)
	default:
		return append(nav, k.Quit)
	}
}
