package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/dshills/glint/internal/config"
	"github.com/dshills/glint/internal/notify"
	"github.com/dshills/glint/internal/redact"
	"github.com/dshills/glint/internal/review"
	"github.com/dshills/glint/internal/tabs"
)

const (
	panelOverview = "overview-panel"
	panelDemo     = "demo-panel"
	panelExamples = "examples-panel"

	emptyInputNotice = "Please enter some code to review"
	placeholder      = "// Paste your code here...\nfunction example() {\n    // Your code will be analyzed here\n    return 'Hello World';\n}"
)

// Options wires the model's collaborators.
type Options struct {
	Config    config.Config
	Logger    *zap.Logger
	Generator *review.Generator
}

// reviewDoneMsg fires when the simulated delay for run seq has elapsed.
type reviewDoneMsg struct {
	seq      int
	source   string
	language string
}

// Model is the UI context for the demo.
type Model struct {
	log    *zap.Logger
	gen    *review.Generator
	delay  time.Duration
	keys   keyMap
	tabs   *tabs.Switcher
	toasts *notify.Stack

	input     textarea.Model
	spinner   spinner.Model
	languages []string
	langIdx   int

	busy       bool
	seq        int
	result     *review.Result
	resultLang string

	selected int
	width    int
	height   int
}

// New builds the model. It fails only if the tab layout is inconsistent.
func New(opts Options) (Model, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	gen := opts.Generator
	if gen == nil {
		gen = review.NewGenerator(review.Options{})
	}

	sw, err := tabs.New([]tabs.Trigger{
		{ID: "overview", Target: panelOverview, Label: "Overview"},
		{ID: "demo", Target: panelDemo, Label: "Demo"},
		{ID: "examples", Target: panelExamples, Label: "Examples"},
	}, []string{panelOverview, panelDemo, panelExamples})
	if err != nil {
		return Model{}, err
	}
	sw.Subscribe(func(ev tabs.Event) {
		log.Debug("tab activated", zap.String("from", ev.From), zap.String("to", ev.To))
	})

	slideIn, dwell, slideOut := opts.Config.Notify.Durations()

	ta := textarea.New()
	ta.Placeholder = placeholder
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.SetWidth(80)
	ta.SetHeight(12)

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	languages := review.KnownLanguages()
	langIdx := 0
	want := review.NormalizeLanguage(opts.Config.Language)
	for i, l := range languages {
		if l == want {
			langIdx = i
			break
		}
	}

	return Model{
		log:       log,
		gen:       gen,
		delay:     opts.Config.Demo.Delay(),
		keys:      defaultKeyMap(),
		tabs:      sw,
		toasts:    notify.NewStack(notify.Timings{SlideIn: slideIn, Dwell: dwell, SlideOut: slideOut}),
		input:     ta,
		spinner:   sp,
		languages: languages,
		langIdx:   langIdx,
	}, nil
}

// Run starts the program on the alternate screen and blocks until it exits.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handled, cmd := m.toasts.Update(msg); handled {
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.input.SetWidth(min(max(msg.Width-4, 20), 100))
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case reviewDoneMsg:
		return m.finishReview(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// The editor owns cursor blink and focus messages.
	if m.tabs.ActivePanel() == panelDemo {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Overview):
		return m.activate("overview")
	case key.Matches(msg, m.keys.Demo):
		return m.activate("demo")
	case key.Matches(msg, m.keys.Examples):
		return m.activate("examples")
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Next()
		cmd := m.syncFocus()
		return m, cmd
	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Prev()
		cmd := m.syncFocus()
		return m, cmd
	}

	switch m.tabs.ActivePanel() {
	case panelDemo:
		return m.handleDemoKey(msg)
	case panelExamples:
		return m.handleExamplesKey(msg)
	default:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleDemoKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	case key.Matches(msg, m.keys.Language):
		m.langIdx = (m.langIdx + 1) % len(m.languages)
		if m.result != nil && !m.busy && strings.TrimSpace(m.input.Value()) != "" {
			return m.submit()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleExamplesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
	case key.Matches(msg, m.keys.Down):
		if m.selected < len(examples)-1 {
			m.selected++
		}
	case key.Matches(msg, m.keys.Load):
		return m.loadExample(examples[m.selected])
	}
	return m, nil
}

func (m Model) activate(id string) (tea.Model, tea.Cmd) {
	if err := m.tabs.Activate(id); err != nil {
		m.log.Warn("tab activation failed", zap.Error(err))
		return m, nil
	}
	cmd := m.syncFocus()
	return m, cmd
}

// syncFocus gives the editor focus only while the demo panel is shown.
func (m *Model) syncFocus() tea.Cmd {
	if m.tabs.PanelActive(panelDemo) {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

func (m Model) loadExample(ex example) (tea.Model, tea.Cmd) {
	m.input.SetValue(ex.Source)
	for i, l := range m.languages {
		if l == ex.Language {
			m.langIdx = i
		}
	}
	_ = m.tabs.Activate("demo")
	m.log.Debug("example loaded", zap.String("title", ex.Title))
	focus := m.syncFocus()
	return m, tea.Batch(focus, m.toasts.Push("Loaded example: "+ex.Title, notify.KindInfo))
}

func (m Model) language() string {
	return m.languages[m.langIdx]
}

// submit starts a review. While busy the trigger is disabled, so repeat
// submissions are dropped.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	in := review.Input{Source: m.input.Value(), Language: m.language()}
	if err := review.Validate(in); err != nil {
		m.log.Debug("review rejected", zap.Error(err))
		return m, m.toasts.Push(emptyInputNotice, notify.KindError)
	}

	m.busy = true
	m.seq++
	done := reviewDoneMsg{seq: m.seq, source: in.Source, language: in.Language}
	m.log.Info("review started",
		zap.Int("run", m.seq),
		zap.String("language", in.Language),
		zap.String("excerpt", redact.Excerpt(in.Source, 60)))

	return m, tea.Batch(
		m.spinner.Tick,
		tea.Tick(m.delay, func(time.Time) tea.Msg { return done }),
	)
}

func (m Model) finishReview(msg reviewDoneMsg) Model {
	if msg.seq != m.seq {
		return m
	}
	res := m.gen.Generate(strings.TrimSpace(msg.source), msg.language)
	m.result = &res
	m.resultLang = msg.language
	m.busy = false
	m.log.Info("review finished",
		zap.Int("run", msg.seq),
		zap.Int("total", res.Counts.Total),
		zap.Int("security", res.Counts.Security))
	return m
}
