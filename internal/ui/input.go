package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/kls/internal/logging/events"
	"github.com/atomicstack/kls/internal/ui/state"
)

// handleKeyMsg routes one keystroke. Overlays intercept everything; the
// filter machine gets the key classes it claims; navigation, refresh, and
// configured command bindings handle the rest.
func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg := msg.(tea.KeyMsg)

	if m.confirm != nil {
		return m.handleConfirmKey(keyMsg)
	}
	if m.picker != nil {
		return m.handlePickerKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		events.App.Quit()
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Up):
		return m.moveVertical(func() bool { return m.panels[m.active].MoveSelection(-1) })
	case key.Matches(keyMsg, m.keys.Down):
		return m.moveVertical(func() bool { return m.panels[m.active].MoveSelection(1) })
	case key.Matches(keyMsg, m.keys.PageUp):
		return m.moveVertical(func() bool { return m.panels[m.active].Page(-1) })
	case key.Matches(keyMsg, m.keys.PageDown):
		return m.moveVertical(func() bool { return m.panels[m.active].Page(1) })
	case key.Matches(keyMsg, m.keys.Home):
		return m.moveVertical(func() bool { return m.panels[m.active].Home() })
	case key.Matches(keyMsg, m.keys.End):
		return m.moveVertical(func() bool { return m.panels[m.active].End() })
	case key.Matches(keyMsg, m.keys.Left):
		m.moveHorizontal(-1)
		return nil
	case key.Matches(keyMsg, m.keys.Right):
		m.moveHorizontal(1)
		return nil
	case key.Matches(keyMsg, m.keys.Refresh):
		return m.startCascade()
	case key.Matches(keyMsg, m.keys.Contexts):
		return m.openContextPicker()
	}

	// While a filter is open, typed runes extend it; a binding on a bare
	// letter must not shadow filter input.
	if m.panels[m.active].Mode() != state.ModeNormal {
		if cmd, claimed := m.filterMachineKey(keyMsg); claimed {
			return cmd
		}
	}

	if binding, ok := m.bindings.Lookup(keyMsg.String()); ok {
		return m.runBinding(binding)
	}

	cmd, _ := m.filterMachineKey(keyMsg)
	return cmd
}

// filterMachineKey feeds the keystroke to the active panel's filter
// machine and reports whether the machine claimed it. A cancel with no
// filter active quits; a changed row set propagates down the cascade.
func (m *Model) filterMachineKey(keyMsg tea.KeyMsg) (tea.Cmd, bool) {
	p := m.panels[m.active]
	ev, r, ok := classifyFilterKey(keyMsg)
	var outcome state.FilterOutcome
	if ok {
		outcome = p.HandleFilterKey(ev, r)
	}
	if outcome.Quit {
		events.App.Quit()
		return tea.Quit, true
	}
	if !outcome.Handled {
		if keyMsg.String() == "q" && p.Mode() == state.ModeNormal {
			events.App.Quit()
			return tea.Quit, true
		}
		return nil, false
	}
	switch ev {
	case state.EventRune:
		events.Filter.Append(p.Title, p.Filter())
	case state.EventErase:
		events.Filter.Backspace(p.Title, p.Filter())
	case state.EventCancel:
		events.Filter.Clear(p.Title)
	}
	if outcome.RowsChanged {
		return m.propagate(p), true
	}
	return nil, true
}

func classifyFilterKey(keyMsg tea.KeyMsg) (state.FilterEvent, rune, bool) {
	switch keyMsg.Type {
	case tea.KeyEscape:
		return state.EventCancel, 0, true
	case tea.KeyBackspace:
		return state.EventErase, 0, true
	case tea.KeyRunes:
		if keyMsg.Alt || len(keyMsg.Runes) != 1 {
			return 0, 0, false
		}
		r := keyMsg.Runes[0]
		if r == '/' {
			return state.EventStartFilter, 0, true
		}
		if state.FilterableRune(r) {
			return state.EventRune, r, true
		}
	}
	return 0, 0, false
}
