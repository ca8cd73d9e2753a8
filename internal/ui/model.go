package ui

import (
	"context"
	"reflect"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/kls/internal/backend"
	"github.com/atomicstack/kls/internal/command"
	"github.com/atomicstack/kls/internal/theme"
	"github.com/atomicstack/kls/internal/ui/state"
)

// Panel ordinals in cascade order.
const (
	panelNamespaces = iota
	panelKinds
	panelResources
	panelCount
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Fetcher provides the rows backing each panel plus kubeconfig context
// operations. Failures degrade to empty row sets upstream; they are never
// fatal here.
type Fetcher interface {
	Namespaces(ctx context.Context) ([]string, error)
	APIResources(ctx context.Context) ([]string, error)
	Resources(ctx context.Context, namespace, kind string) ([]string, error)
	Contexts(ctx context.Context) ([]string, error)
	SwitchContext(ctx context.Context, name string) error
}

// Model implements the Bubble Tea model for the cascading resource browser.
type Model struct {
	panels []*state.Panel
	active int

	width  int
	height int

	fetch     Fetcher
	bindings  *command.Set
	refresher *backend.Refresher
	gate      *backend.Gate

	refreshEvery time.Duration
	verbose      bool

	inflight      *backend.Handle
	inflightPanel int
	inflightQuiet bool
	cascadeRest   []int

	confirm *confirmOverlay
	picker  *contextPicker

	errMsg string

	keys     keyMap
	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the three-panel cascade in its pre-fetch state.
func NewModel(fetch Fetcher, bindings *command.Set, refreshEvery time.Duration, verbose bool) *Model {
	gate := &backend.Gate{}
	m := &Model{
		panels: []*state.Panel{
			state.NewPanel("namespaces", panelNamespaces, []int{panelKinds, panelResources}),
			state.NewPanel("api resources", panelKinds, []int{panelResources}),
			state.NewPanel("resources", panelResources, nil),
		},
		fetch:        fetch,
		bindings:     bindings,
		refresher:    backend.NewRefresher(gate),
		gate:         gate,
		refreshEvery: refreshEvery,
		verbose:      verbose,
		keys:         newKeyMap(),
	}
	m.registerHandlers()
	return m
}

// Gate exposes the guard serialising refreshes against external commands.
func (m *Model) Gate() *backend.Gate {
	return m.gate
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.startCascade()}
	if cmd := m.scheduleTick(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(panelRowsMsg{}):       m.handlePanelRowsMsg,
		reflect.TypeOf(refreshTickMsg{}):     m.handleRefreshTickMsg,
		reflect.TypeOf(execDoneMsg{}):        m.handleExecDoneMsg,
		reflect.TypeOf(contextsLoadedMsg{}):  m.handleContextsLoadedMsg,
		reflect.TypeOf(contextSwitchedMsg{}): m.handleContextSwitchedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size := msg.(tea.WindowSizeMsg)
	m.width = size.Width
	m.height = size.Height
	m.layout()
	return nil
}

// layout splits the terminal into three columns: one fifth for namespaces
// and two fifths each for kinds and resources. Each panel keeps one line of
// title and one line of filter footer; the app keeps one help line.
func (m *Model) layout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	widths := [panelCount]int{m.width / 5, m.width * 2 / 5, 0}
	widths[panelResources] = m.width - widths[panelNamespaces] - widths[panelKinds]
	rows := m.height - 3
	if rows < 0 {
		rows = 0
	}
	origin := 0
	for i, p := range m.panels {
		p.SetGeometry(origin, widths[i], rows)
		origin += widths[i]
	}
}
