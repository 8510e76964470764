package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/gridpath/pathfind"
)

// keyMap lists every binding; it implements help.KeyMap.
type keyMap struct {
	BFS        key.Binding
	Dijkstra   key.Binding
	AStar      key.Binding
	Greedy     key.Binding
	Reset      key.Binding
	Reference  key.Binding
	Regenerate key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		BFS:        key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "bfs")),
		Dijkstra:   key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "dijkstra")),
		AStar:      key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "a*")),
		Greedy:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "greedy")),
		Reset:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "reset")),
		Reference:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "greedy ref")),
		Regenerate: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "new terrain")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// algorithmFor maps a search binding to its algorithm.
func (k keyMap) algorithmFor(msg tea.KeyMsg) (pathfind.Algorithm, bool) {
	switch {
	case key.Matches(msg, k.BFS):
		return pathfind.AlgoBFS, true
	case key.Matches(msg, k.Dijkstra):
		return pathfind.AlgoDijkstra, true
	case key.Matches(msg, k.AStar):
		return pathfind.AlgoAStar, true
	case key.Matches(msg, k.Greedy):
		return pathfind.AlgoGreedy, true
	default:
		return 0, false
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.BFS, k.Dijkstra, k.AStar, k.Greedy, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.BFS, k.Dijkstra, k.AStar, k.Greedy},
		{k.Reset, k.Reference, k.Regenerate},
		{k.Help, k.Quit},
	}
}
