package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/kls/internal/logging/events"
)

// moveVertical handles line, page, and edge movement within the active
// panel. Any in-flight fetch is cancelled and awaited before the panel is
// touched, so a stale result can never overwrite the navigation. A
// navigation that turns out to be a no-op leaves the in-flight work
// undisturbed: a loading or near-empty panel returns before cancelling,
// and a move that does not change anything reissues what it cancelled.
func (m *Model) moveVertical(move func() bool) tea.Cmd {
	p := m.panels[m.active]
	if p.Loading() || p.VisibleCount() <= 1 {
		return nil
	}
	resume := m.suspendInflight()
	if !move() {
		return resume()
	}
	row, _ := p.SelectedRow()
	events.Panel.Cursor(p.Title, row, p.SelectedOffset())
	return m.propagate(p)
}

// moveHorizontal changes the active panel by delta in cascade order,
// wrapping at both ends. Panel content is untouched.
func (m *Model) moveHorizontal(delta int) {
	n := len(m.panels)
	next := ((m.active+delta)%n + n) % n
	if next == m.active {
		return
	}
	m.active = next
	events.Panel.Activate(m.panels[m.active].Title)
}

// handleMouseMsg resolves pointer input to a panel by column range. Clicks
// beyond the panel bounds nudge the active panel toward the pointer by up
// to two steps; clicks on a visible row select it.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	mouse := msg.(tea.MouseMsg)
	if m.confirm != nil || m.picker != nil {
		return nil
	}
	if mouse.Action != tea.MouseActionPress {
		return nil
	}
	switch mouse.Button {
	case tea.MouseButtonWheelUp:
		return m.moveVertical(func() bool { return m.panels[m.active].MoveSelection(-1) })
	case tea.MouseButtonWheelDown:
		return m.moveVertical(func() bool { return m.panels[m.active].MoveSelection(1) })
	case tea.MouseButtonLeft:
		return m.handleClick(mouse.X, mouse.Y)
	}
	return nil
}

func (m *Model) handleClick(x, y int) tea.Cmd {
	target := m.panelAt(x)
	if target < 0 {
		first := m.panels[0]
		last := m.panels[len(m.panels)-1]
		if x < first.OriginCol {
			m.stepActive(-2)
		} else if x >= last.OriginCol+last.Width {
			m.stepActive(2)
		}
		return nil
	}
	if target != m.active {
		m.active = target
		events.Panel.Activate(m.panels[m.active].Title)
	}
	p := m.panels[m.active]
	// Row 0 is the panel title; visible rows start beneath it.
	offset := y - 1
	return m.moveVertical(func() bool { return p.SetSelected(offset) })
}

func (m *Model) panelAt(x int) int {
	for i, p := range m.panels {
		if x >= p.OriginCol && x < p.OriginCol+p.Width {
			return i
		}
	}
	return -1
}

// stepActive advances or retreats the active panel by up to steps without
// wrapping, stopping at the cascade's edge.
func (m *Model) stepActive(steps int) {
	next := m.active + steps
	if next < 0 {
		next = 0
	}
	if next > len(m.panels)-1 {
		next = len(m.panels) - 1
	}
	if next == m.active {
		return
	}
	m.active = next
	events.Panel.Activate(m.panels[m.active].Title)
}
