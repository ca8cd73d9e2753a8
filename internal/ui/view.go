package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/atomicstack/kls/internal/ui/state"
)

const loadingPlaceholder = "loading..."

// View implements tea.Model.
func (m *Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.confirm != nil {
		return m.viewConfirm()
	}
	if m.picker != nil {
		return m.viewPicker()
	}
	columns := make([]string, len(m.panels))
	for i, p := range m.panels {
		columns[i] = m.renderPanel(p, i == m.active)
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.renderFooter())
}

// renderPanel lays out one column: title, the visible window, and the
// filter footer.
func (m *Model) renderPanel(p *state.Panel, active bool) string {
	width := p.Width
	pad := lipgloss.NewStyle().Width(width)

	titleStyle := styles.Title
	if active {
		titleStyle = styles.TitleActive
	}
	lines := make([]string, 0, p.Height+2)
	lines = append(lines, pad.Render(titleStyle.Render(clip(p.Title, width))))

	if p.Loading() {
		lines = append(lines, pad.Render(styles.Loading.Render(clip(loadingPlaceholder, width))))
		for len(lines) < p.Height+1 {
			lines = append(lines, pad.Render(""))
		}
	} else {
		visible := p.VisibleRows()
		for i, row := range visible {
			style := styles.Row
			if i == p.SelectedOffset() {
				style = styles.SelectedRow
			}
			lines = append(lines, pad.Render(style.Render(clip(row, width))))
		}
		for len(lines) < p.Height+1 {
			lines = append(lines, pad.Render(""))
		}
	}

	lines = append(lines, pad.Render(m.renderFilterLine(p, width)))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) renderFilterLine(p *state.Panel, width int) string {
	switch p.Mode() {
	case state.ModeFilterEmpty:
		return styles.FilterPrompt.Render("/")
	case state.ModeFilterActive:
		return styles.FilterPrompt.Render("/") + styles.Filter.Render(clip(p.Filter(), width-1))
	default:
		return styles.FilterHint.Render(clip("press / to filter", width))
	}
}

// renderFooter shows the configured key bindings, or the last error when
// one is pending.
func (m *Model) renderFooter() string {
	if m.errMsg != "" {
		return styles.Error.Render(clip(m.errMsg, m.width))
	}
	parts := make([]string, 0, 8)
	for _, b := range m.bindings.All() {
		parts = append(parts, fmt.Sprintf("%s:%s", b.Key, b.Description))
	}
	parts = append(parts, "ctrl+s:context", "ctrl+r:refresh", "q:quit")
	return styles.Footer.Render(clip(strings.Join(parts, "  "), m.width))
}

func (m *Model) viewConfirm() string {
	overlay := m.confirm
	body := lipgloss.JoinVertical(lipgloss.Left,
		styles.OverlayTitle.Render(fmt.Sprintf("%s %s?", overlay.binding.Description, overlay.resource)),
		styles.OverlayBody.Render(overlay.cmdline),
		styles.FilterHint.Render("y/enter to confirm, n/esc to cancel"),
	)
	return m.centered(styles.OverlayFrame.Render(body))
}

func (m *Model) viewPicker() string {
	cp := m.picker
	lines := []string{styles.OverlayTitle.Render("switch context")}
	if cp.loading {
		lines = append(lines, styles.Loading.Render(loadingPlaceholder))
	} else {
		for i, name := range cp.visible() {
			style := styles.Row
			if i == cp.selected {
				style = styles.SelectedRow
			}
			lines = append(lines, style.Render(clip(name, m.width-4)))
		}
	}
	lines = append(lines, styles.FilterPrompt.Render("/")+styles.Filter.Render(cp.filter))
	return m.centered(styles.OverlayFrame.Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
}

func (m *Model) centered(content string) string {
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), "…")
}
