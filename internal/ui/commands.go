package ui

import (
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/kls/internal/command"
	"github.com/atomicstack/kls/internal/logging/events"
)

// execDoneMsg arrives when a suspended external command has finished and
// the terminal UI has been rebuilt.
type execDoneMsg struct {
	key     string
	err     error
	release func()
}

// runBinding executes a configured key binding against the current
// selection. Bindings apply only when a resource is selected and the
// binding's applicability covers the selected kind; destructive bindings
// detour through the confirmation overlay first.
func (m *Model) runBinding(b command.Binding) tea.Cmd {
	namespace, _ := m.panels[panelNamespaces].SelectedRow()
	kind, _ := m.panels[panelKinds].SelectedRow()
	resource, ok := m.panels[panelResources].SelectedRow()
	if !ok || !b.Applies(kind) {
		return nil
	}
	cmdline := b.Resolve(namespace, kind, resource)
	if b.Confirm {
		m.confirm = &confirmOverlay{binding: b, cmdline: cmdline, resource: resource}
		return nil
	}
	return m.execBinding(b, cmdline)
}

// execBinding suspends the UI and runs the resolved command with the
// terminal inherited. The in-flight fetch is cancelled and the guard held
// for the command's whole run, so no refresh redraw can race the teardown
// and rebuild of the display.
func (m *Model) execBinding(b command.Binding, cmdline string) tea.Cmd {
	m.cancelInflight()
	release := m.gate.Acquire()
	events.Command.Run(b.Key, cmdline)
	c := exec.Command("sh", "-c", cmdline)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return execDoneMsg{key: b.Key, err: err, release: release}
	})
}

// handleExecDoneMsg releases the guard and refreshes the rightmost panel,
// since the command may have mutated the resources it listed. The command's
// own exit status is not surfaced; the user already saw its output.
func (m *Model) handleExecDoneMsg(msg tea.Msg) tea.Cmd {
	done := msg.(execDoneMsg)
	done.release()
	events.Command.Done(done.key, done.err)
	m.errMsg = ""
	if done.err != nil && m.verbose {
		m.errMsg = done.err.Error()
	}
	return m.startFetch(panelResources, nil, true)
}
