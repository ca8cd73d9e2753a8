package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/kls/internal/backend"
	"github.com/atomicstack/kls/internal/logging"
	"github.com/atomicstack/kls/internal/logging/events"
	"github.com/atomicstack/kls/internal/ui/state"
)

// panelRowsMsg delivers one completed fetch. The handle identifies the fetch
// so results from superseded or cancelled generations can be dropped.
type panelRowsMsg struct {
	panel  int
	handle *backend.Handle
}

// refreshTickMsg drives the idle refresh of the rightmost panel.
type refreshTickMsg struct{}

// startCascade refreshes every panel, serialised left to right.
func (m *Model) startCascade() tea.Cmd {
	m.cancelInflight()
	for _, p := range m.panels {
		p.SetLoading()
	}
	return m.startFetch(panelNamespaces, []int{panelKinds, panelResources}, false)
}

// propagate re-fetches every dependent of p, serialised left to right so
// each dependent's fetch parameters reflect its parent's committed rows.
func (m *Model) propagate(p *state.Panel) tea.Cmd {
	if len(p.Dependents) == 0 {
		return nil
	}
	m.cancelInflight()
	for _, idx := range p.Dependents {
		m.panels[idx].SetLoading()
	}
	return m.startFetch(p.Dependents[0], p.Dependents[1:], false)
}

// startFetch launches the fetch for one panel, remembering the rest of the
// cascade to run once it commits. Quiet fetches leave the panel rendered
// as-is instead of showing the loading placeholder.
func (m *Model) startFetch(panel int, rest []int, quiet bool) tea.Cmd {
	fetch := m.fetchFor(panel)
	h := m.refresher.Start(fetch)
	m.inflight = h
	m.inflightPanel = panel
	m.inflightQuiet = quiet
	m.cascadeRest = append([]int(nil), rest...)
	events.Fetch.Start(m.panels[panel].Title, h.Generation())
	return func() tea.Msg {
		<-h.Done()
		return panelRowsMsg{panel: panel, handle: h}
	}
}

// fetchFor captures the fetch parameters for a panel at issue time: the
// current selections of the panels to its left.
func (m *Model) fetchFor(panel int) backend.Fetch {
	switch panel {
	case panelNamespaces:
		return m.fetch.Namespaces
	case panelKinds:
		return m.fetch.APIResources
	default:
		namespace, _ := m.panels[panelNamespaces].SelectedRow()
		kind, _ := m.panels[panelKinds].SelectedRow()
		return func(ctx context.Context) ([]string, error) {
			return m.fetch.Resources(ctx, namespace, kind)
		}
	}
}

// suspendInflight cancels the current fetch and returns a func that
// reissues it with its remaining cascade, for callers that may turn out
// not to mutate anything after all.
func (m *Model) suspendInflight() func() tea.Cmd {
	if m.inflight == nil {
		return func() tea.Cmd { return nil }
	}
	panel, rest, quiet := m.inflightPanel, m.cascadeRest, m.inflightQuiet
	m.cancelInflight()
	return func() tea.Cmd { return m.startFetch(panel, rest, quiet) }
}

// cancelInflight cancels the current fetch and awaits its teardown, then
// drops the rest of its cascade. A cancelled fetch's result never commits.
func (m *Model) cancelInflight() {
	if m.inflight == nil {
		return
	}
	m.inflight.Cancel()
	events.Fetch.Cancelled(m.panels[m.inflightPanel].Title, m.inflight.Generation())
	m.inflight = nil
	m.cascadeRest = nil
}

func (m *Model) handlePanelRowsMsg(msg tea.Msg) tea.Cmd {
	res := msg.(panelRowsMsg)
	if res.handle != m.inflight {
		events.Fetch.Stale(m.panels[res.panel].Title, res.handle.Generation(), m.refresher.Generation())
		return nil
	}
	if res.handle.Cancelled() {
		return nil
	}
	m.inflight = nil

	rows, err := res.handle.Result()
	if err != nil {
		// A failed fetch degrades to an empty panel.
		logging.Error(err)
		rows = nil
	}
	p := m.panels[res.panel]
	changed := p.SetRows(rows)
	events.Fetch.Done(p.Title, res.handle.Generation(), len(rows), err)
	if changed {
		events.Panel.Rows(p.Title, len(rows))
	}

	if len(m.cascadeRest) > 0 {
		next, rest := m.cascadeRest[0], m.cascadeRest[1:]
		return m.startFetch(next, rest, m.inflightQuiet)
	}
	m.cascadeRest = nil
	return nil
}

func (m *Model) scheduleTick() tea.Cmd {
	if m.refreshEvery <= 0 {
		return nil
	}
	return tea.Tick(m.refreshEvery, func(time.Time) tea.Msg {
		return refreshTickMsg{}
	})
}

// handleRefreshTickMsg opportunistically refreshes the rightmost panel when
// nothing else is going on. An unchanged result leaves panel state alone.
func (m *Model) handleRefreshTickMsg(tea.Msg) tea.Cmd {
	cmds := []tea.Cmd{m.scheduleTick()}
	if m.inflight == nil && m.confirm == nil && m.picker == nil {
		cmds = append(cmds, m.startFetch(panelResources, nil, true))
	}
	return tea.Batch(cmds...)
}
