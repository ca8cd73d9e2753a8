package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestViewEmptyBeforeFirstSize(t *testing.T) {
	f := newFakeFetcher()
	m := NewModel(f, nil, 0, false)
	if out := m.View(); out != "" {
		t.Fatalf("expected empty view before sizing, got %q", out)
	}
}

func TestViewShowsPanelsAndRows(t *testing.T) {
	f := newFakeFetcher()
	m := newTestModel(t, f)
	out := m.View()
	for _, want := range []string{"namespaces", "api resources", "resources", "web-0", "press / to filter"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewShowsLoadingPlaceholder(t *testing.T) {
	f := newFakeFetcher()
	m := NewModel(f, nil, 0, false)
	drive(t, m, func() tea.Msg { return tea.WindowSizeMsg{Width: 100, Height: 20} })
	m.panels[panelResources].SetLoading()
	m.bindings = nil
	out := m.renderPanel(m.panels[panelResources], false)
	if !strings.Contains(out, loadingPlaceholder) {
		t.Fatalf("loading panel missing placeholder:\n%s", out)
	}
}

func TestViewShowsActiveFilterText(t *testing.T) {
	f := newFakeFetcher()
	m := newTestModel(t, f)
	drive(t, m, func() tea.Msg { return keyRunes('/') })
	drive(t, m, func() tea.Msg { return keyRunes('s') })
	out := m.View()
	if !strings.Contains(out, "/") || !strings.Contains(out, "s") {
		t.Fatalf("view missing filter indicator:\n%s", out)
	}
}

func TestInactivePanelStillHighlightsSelection(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	f := newFakeFetcher()
	m := newTestModel(t, f)
	out := m.renderPanel(m.panels[panelResources], false)
	var selected, rest string
	for _, line := range strings.Split(out, "\n") {
		switch {
		case strings.Contains(line, "web-0"):
			selected = line
		case strings.Contains(line, "web-1"):
			rest = line
		}
	}
	if !strings.Contains(selected, "48;5;238") {
		t.Fatalf("selected row of inactive panel not highlighted: %q", selected)
	}
	if strings.Contains(rest, "48;5;238") {
		t.Fatalf("unselected row should not carry the highlight: %q", rest)
	}
}

func TestViewConfirmOverlayReplacesPanels(t *testing.T) {
	f := newFakeFetcher()
	m := newTestModel(t, f)
	m.Update(tea.KeyMsg{Type: tea.KeyDelete})
	out := m.View()
	if !strings.Contains(out, "web-0?") {
		t.Fatalf("overlay missing target resource:\n%s", out)
	}
	if !strings.Contains(out, "y/enter to confirm") {
		t.Fatalf("overlay missing confirm hint:\n%s", out)
	}
}
