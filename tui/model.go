package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/session"
)

// minTick keeps the frame loop from spinning when no interval is configured.
const minTick = time.Millisecond

// Options configures a Model.
type Options struct {
	// Tick is the delay between replayed events.
	Tick time.Duration
	// Seed is the first terrain seed; each regenerate increments it.
	Seed int64
	// Styled selects colored output.
	Styled bool
	// Context cancels searches started from the keyboard. Nil means
	// context.Background.
	Context context.Context
}

// tickMsg asks the model to replay one event of generation gen.
type tickMsg struct{ gen uint64 }

// Model is the Bubble Tea model of an interactive session.
type Model struct {
	sess     *session.Session
	keys     keyMap
	help     help.Model
	opts     Options
	status   string
	quitting bool
}

// New returns a model driving s.
func New(s *session.Session, opts Options) Model {
	if opts.Tick < minTick {
		opts.Tick = minTick
	}
	if opts.Context == nil {
		opts.Context = context.Background()
	}

	return Model{
		sess:   s,
		keys:   defaultKeyMap(),
		help:   help.New(),
		opts:   opts,
		status: "press 1-4 to search",
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// a reset or a newer search retires older frame loops
		if msg.gen != m.sess.Generation() || !m.sess.Tick() {
			return m, nil
		}
		return m, m.tick(msg.gen)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if algo, ok := m.keys.algorithmFor(msg); ok {
		return m.begin(algo)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		m.sess.Escape()
		m.status = "reset"
	case key.Matches(msg, m.keys.Reference):
		m.status = "greedy reference: " + m.sess.ToggleGreedyReference().String()
	case key.Matches(msg, m.keys.Regenerate):
		m.opts.Seed++
		n := m.sess.Regenerate(m.opts.Seed)
		m.status = fmt.Sprintf("terrain seed %d: %d expensive tiles", m.opts.Seed, n)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

func (m Model) begin(algo pathfind.Algorithm) (tea.Model, tea.Cmd) {
	res, err := m.sess.Begin(m.opts.Context, algo)
	if err != nil {
		m.status = "error: " + err.Error()
		return m, nil
	}
	m.status = Status(res)

	return m, m.tick(res.Generation)
}

func (m Model) tick(gen uint64) tea.Cmd {
	return tea.Tick(m.opts.Tick, func(time.Time) tea.Msg { return tickMsg{gen: gen} })
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("gridpath"))
	b.WriteString("  ")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n\n")
	b.WriteString(Render(m.sess.Board(), m.opts.Styled))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Status summarizes a search result on one line.
func Status(r session.Result) string {
	s := r.Summary
	name := r.Algorithm.String()
	if r.Algorithm == pathfind.AlgoGreedy {
		name += "/" + r.Reference.String()
	}
	if !s.Found {
		return fmt.Sprintf("%s: no route (expanded %d)", name, s.Expanded)
	}

	return fmt.Sprintf("%s: length %d, weight %d, expanded %d, events %d",
		name, s.PathLength, s.PathWeight, s.Expanded, s.Events)
}
