package state

import "strings"

// Panel holds the state of one cascading selection list: the full row set,
// the active filter, the circular window over the filtered rows, and the
// selection within the visible window.
type Panel struct {
	Title      string
	Index      int
	Dependents []int

	OriginCol int
	Width     int
	Height    int

	all      []string
	filter   string
	mode     FilterMode
	ring     *Ring
	selected int
	loading  bool
}

// NewPanel constructs an empty panel. Dependents lists the ordinals of every
// panel to the right whose content depends on this panel's selection.
func NewPanel(title string, index int, dependents []int) *Panel {
	return &Panel{
		Title:      title,
		Index:      index,
		Dependents: append([]int(nil), dependents...),
		ring:       NewRing(nil),
	}
}

// SetGeometry fixes the panel's column origin, width, and visible row count.
func (p *Panel) SetGeometry(originCol, width, height int) {
	p.OriginCol = originCol
	p.Width = width
	if height < 0 {
		height = 0
	}
	p.Height = height
	p.clampSelected()
}

// SetRows replaces the full row set wholesale and recomputes the filtered
// window. Unchanged content leaves the window and selection untouched, so
// an idle refresh never disturbs the scroll position. Otherwise the
// selection is reset only when the visible row count changed, and clamped.
// It reports whether the row content changed.
func (p *Panel) SetRows(rows []string) bool {
	p.loading = false
	if equalRows(p.all, rows) {
		return false
	}
	prevVisible := p.VisibleCount()
	p.all = append([]string(nil), rows...)
	p.rebuild()
	if p.VisibleCount() != prevVisible {
		p.selected = 0
	}
	p.clampSelected()
	return true
}

// SetLoading marks the panel as awaiting its first fetch result.
func (p *Panel) SetLoading() {
	p.loading = true
}

// Loading reports whether a fetch placeholder should be rendered.
func (p *Panel) Loading() bool {
	return p.loading
}

// Rows returns the unfiltered row set.
func (p *Panel) Rows() []string {
	return p.all
}

// Filter returns the active lowercase filter text.
func (p *Panel) Filter() string {
	return p.filter
}

// Mode returns the panel's filter machine state.
func (p *Panel) Mode() FilterMode {
	return p.mode
}

// FilteredLen returns the number of rows matching the filter.
func (p *Panel) FilteredLen() int {
	return p.ring.Len()
}

// VisibleCount returns how many rows the visible window currently holds.
func (p *Panel) VisibleCount() int {
	if p.ring.Len() < p.Height {
		return p.ring.Len()
	}
	return p.Height
}

// VisibleRows returns the rows of the visible window in display order.
func (p *Panel) VisibleRows() []string {
	return p.ring.View(p.VisibleCount())
}

// SelectedOffset returns the selection index within the visible window.
func (p *Panel) SelectedOffset() int {
	return p.selected
}

// SelectedRow returns the currently selected row, or false when the visible
// window is empty or the panel is still loading.
func (p *Panel) SelectedRow() (string, bool) {
	if p.loading {
		return "", false
	}
	visible := p.VisibleRows()
	if len(visible) == 0 || p.selected >= len(visible) {
		return "", false
	}
	return visible[p.selected], true
}

// MoveSelection advances the selection by delta rows. When the filtered set
// exceeds the window the ring rotates and the selection offset stays put;
// otherwise the offset wraps modulo the visible count. Returns false when
// there is nothing to navigate.
func (p *Panel) MoveSelection(delta int) bool {
	if p.loading {
		return false
	}
	visible := p.VisibleCount()
	if visible <= 1 {
		return false
	}
	if p.ring.Len() > p.Height {
		p.ring.Shift(delta)
		return true
	}
	p.selected = ((p.selected+delta)%visible + visible) % visible
	return true
}

// Page moves by a full screenful in the given direction (-1 up, +1 down).
// When the filtered set fits in the window it jumps to the window edge
// instead.
func (p *Panel) Page(dir int) bool {
	if p.loading {
		return false
	}
	visible := p.VisibleCount()
	if visible <= 1 {
		return false
	}
	if p.ring.Len() > p.Height {
		p.ring.Shift(dir * visible)
		return true
	}
	target := 0
	if dir > 0 {
		target = visible - 1
	}
	if p.selected == target {
		return false
	}
	p.selected = target
	return true
}

// Home jumps to the first filtered row.
func (p *Panel) Home() bool {
	if p.loading || p.VisibleCount() == 0 {
		return false
	}
	moved := p.ring.Offset() != 0 || p.selected != 0
	p.ring.Shift(-p.ring.Offset())
	p.selected = 0
	return moved
}

// End jumps to the last filtered row.
func (p *Panel) End() bool {
	if p.loading {
		return false
	}
	visible := p.VisibleCount()
	if visible == 0 {
		return false
	}
	if p.ring.Len() > p.Height {
		p.ring.Shift(p.ring.Len() - p.Height - p.ring.Offset())
		p.selected = visible - 1
		return true
	}
	if p.selected == visible-1 {
		return false
	}
	p.selected = visible - 1
	return true
}

// SetSelected places the selection at the given visible-window offset,
// for pointer interaction. Returns false when the offset is out of range.
func (p *Panel) SetSelected(offset int) bool {
	if p.loading || offset < 0 || offset >= p.VisibleCount() {
		return false
	}
	if p.selected == offset {
		return false
	}
	p.selected = offset
	return true
}

// rebuild recomputes the filtered window from (all, filter). The rotation
// is discarded: the window restarts at the first match.
func (p *Panel) rebuild() {
	p.ring = NewRing(FilterRows(p.all, p.filter))
}

func (p *Panel) clampSelected() {
	visible := p.VisibleCount()
	if visible == 0 {
		p.selected = 0
		return
	}
	if p.selected >= visible {
		p.selected = visible - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
}

// FilterRows selects, in original order, every row containing filter as a
// case-insensitive substring. The filter is expected to be lowercase.
func FilterRows(rows []string, filter string) []string {
	if filter == "" {
		return append([]string(nil), rows...)
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row), filter) {
			out = append(out, row)
		}
	}
	return out
}

func equalRows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
