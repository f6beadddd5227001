package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/todava/todomvc/internal/todo"
)

// keyMap declares every binding the model reacts to. It feeds both
// Update and the help bar.
type keyMap struct {
	Up             key.Binding
	Down           key.Binding
	Toggle         key.Binding
	Remove         key.Binding
	Add            key.Binding
	ToggleAll      key.Binding
	ClearCompleted key.Binding
	CycleFilter    key.Binding
	Help           key.Binding
	Quit           key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:             key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:           key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Remove:         key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove")),
		Add:            key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		ToggleAll:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle all")),
		ClearCompleted: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear completed")),
		CycleFilter:    key.NewBinding(key.WithKeys("f", "tab"), key.WithHelp("f", "filter")),
		Help:           key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:           key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Toggle, k.Remove, k.CycleFilter, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Add, k.Toggle, k.Remove},
		{k.ToggleAll, k.ClearCompleted, k.CycleFilter},
		{k.Help, k.Quit},
	}
}

// Model is the rendering collaborator: it translates key events into
// intents, applies them to the store and re-derives the view from the
// new state. The cursor is a position inside the filtered view and is
// clamped after every intent, so the model never holds a stale index.
type Model struct {
	store  *todo.Store
	cursor int

	// Inline add
	adding bool
	input  textinput.Model

	keys keyMap
	help help.Model

	status string // last store error, shown until the next intent

	width  int
	height int
}

// NewModel returns a ready-to-run model over an empty store.
func NewModel() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200

	return Model{
		store: todo.NewStore(),
		input: ti,
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = ws.Width
		m.height = ws.Height
		m.help.Width = ws.Width
		return m, nil
	}

	// add mode: the text input owns the keyboard until enter/esc
	if m.adding {
		return m.updateAdding(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.store.Visible())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(keyMsg, m.keys.Toggle):
		m.dispatch(todo.ToggleIntent{Index: m.cursor})
		return m, nil

	case key.Matches(keyMsg, m.keys.Remove):
		m.dispatch(todo.RemoveIntent{Index: m.cursor})
		return m, nil

	case key.Matches(keyMsg, m.keys.Add):
		m.adding = true
		m.input.SetValue(m.store.Draft())
		m.input.CursorEnd()
		m.input.Focus()
		return m, nil

	case key.Matches(keyMsg, m.keys.ToggleAll):
		m.dispatch(todo.ToggleAllIntent{})
		return m, nil

	case key.Matches(keyMsg, m.keys.ClearCompleted):
		m.dispatch(todo.ClearCompletedIntent{})
		return m, nil

	case key.Matches(keyMsg, m.keys.CycleFilter):
		next := m.store.Filter() + 1
		if next > todo.Completed {
			next = todo.All
		}
		m.dispatch(todo.SetFilterIntent{Mode: next})
		return m, nil

	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch keyMsg.String() {
	case "1":
		m.dispatch(todo.SetFilterIntent{Mode: todo.All})
	case "2":
		m.dispatch(todo.SetFilterIntent{Mode: todo.Active})
	case "3":
		m.dispatch(todo.SetFilterIntent{Mode: todo.Completed})
	default:
		m.dispatch(todo.NoOpIntent{})
	}
	return m, nil
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			m.dispatch(todo.AddIntent{})
			m.input.SetValue("")
			m.input.Blur()
			m.adding = false
			// land on the new entry when the filter shows it
			if vis := len(m.store.Visible()); vis > 0 && m.store.Filter() != todo.Completed {
				m.cursor = vis - 1
			}
			return m, nil
		case "esc":
			m.dispatch(todo.UpdateDraftIntent{})
			m.input.SetValue("")
			m.input.Blur()
			m.adding = false
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.dispatch(todo.UpdateDraftIntent{Text: m.input.Value()})
	return m, cmd
}

// dispatch applies one intent and reconciles the cursor with the new
// filtered view. Store errors land in the status line instead of
// crashing the terminal.
func (m *Model) dispatch(in todo.Intent) {
	if err := m.store.Apply(in); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
	if n := len(m.store.Visible()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
