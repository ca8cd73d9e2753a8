package ui

import (
	"context"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/atomicstack/kls/internal/command"
	"github.com/atomicstack/kls/internal/logging"
	"github.com/atomicstack/kls/internal/logging/events"
)

// confirmOverlay blocks all input until the destructive command is
// confirmed or dismissed.
type confirmOverlay struct {
	binding  command.Binding
	cmdline  string
	resource string
}

func (m *Model) handleConfirmKey(keyMsg tea.KeyMsg) tea.Cmd {
	overlay := m.confirm
	switch keyMsg.String() {
	case "y", "enter":
		m.confirm = nil
		return m.execBinding(overlay.binding, overlay.cmdline)
	case "n", "esc":
		m.confirm = nil
	}
	return nil
}

// contextPicker is the kubeconfig context switcher popup. Unlike the panel
// filters it matches fuzzily, since context names tend to be long and
// hierarchical.
type contextPicker struct {
	all      []string
	filter   string
	selected int
	loading  bool
}

func (cp *contextPicker) visible() []string {
	if cp.filter == "" {
		return cp.all
	}
	return fuzzy.FindFold(cp.filter, cp.all)
}

func (cp *contextPicker) clampSelected() {
	n := len(cp.visible())
	if n == 0 {
		cp.selected = 0
		return
	}
	if cp.selected >= n {
		cp.selected = n - 1
	}
	if cp.selected < 0 {
		cp.selected = 0
	}
}

type contextsLoadedMsg struct {
	rows []string
	err  error
}

type contextSwitchedMsg struct {
	name string
	err  error
}

func (m *Model) openContextPicker() tea.Cmd {
	m.picker = &contextPicker{loading: true}
	return func() tea.Msg {
		rows, err := m.fetch.Contexts(context.Background())
		return contextsLoadedMsg{rows: rows, err: err}
	}
}

func (m *Model) handleContextsLoadedMsg(msg tea.Msg) tea.Cmd {
	loaded := msg.(contextsLoadedMsg)
	if m.picker == nil {
		return nil
	}
	if loaded.err != nil {
		logging.Error(loaded.err)
		m.picker = nil
		return nil
	}
	m.picker.all = loaded.rows
	m.picker.loading = false
	return nil
}

func (m *Model) handlePickerKey(keyMsg tea.KeyMsg) tea.Cmd {
	cp := m.picker
	switch keyMsg.Type {
	case tea.KeyEscape:
		m.picker = nil
		return nil
	case tea.KeyEnter:
		visible := cp.visible()
		if cp.loading || len(visible) == 0 {
			return nil
		}
		name := visible[cp.selected]
		return func() tea.Msg {
			err := m.fetch.SwitchContext(context.Background(), name)
			return contextSwitchedMsg{name: name, err: err}
		}
	case tea.KeyUp:
		cp.selected--
		cp.clampSelected()
		return nil
	case tea.KeyDown:
		cp.selected++
		cp.clampSelected()
		return nil
	case tea.KeyBackspace:
		if cp.filter != "" {
			runes := []rune(cp.filter)
			cp.filter = string(runes[:len(runes)-1])
			cp.clampSelected()
		}
		return nil
	case tea.KeyRunes:
		if keyMsg.Alt {
			return nil
		}
		for _, r := range keyMsg.Runes {
			if unicode.IsPrint(r) {
				cp.filter += string(r)
			}
		}
		cp.selected = 0
		return nil
	}
	return nil
}

// handleContextSwitchedMsg closes the picker and restarts the whole cascade
// against the new context.
func (m *Model) handleContextSwitchedMsg(msg tea.Msg) tea.Cmd {
	switched := msg.(contextSwitchedMsg)
	m.picker = nil
	if switched.err != nil {
		logging.Error(switched.err)
		return nil
	}
	events.Command.ContextSwitch(switched.name)
	return m.startCascade()
}
