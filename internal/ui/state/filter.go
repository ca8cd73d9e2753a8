package state

import "unicode"

// FilterMode enumerates the per-panel filter machine states.
type FilterMode int

const (
	// ModeNormal means no filter is active; all rows are shown.
	ModeNormal FilterMode = iota
	// ModeFilterEmpty means filter mode was entered but no text typed yet.
	ModeFilterEmpty
	// ModeFilterActive means a non-empty filter narrows the rows.
	ModeFilterActive
)

// Redraw tells the view how much of a panel the transition invalidated.
type Redraw int

const (
	RedrawNone Redraw = iota
	RedrawFooter
	RedrawFull
)

// FilterEvent classifies a keystroke for the filter machine.
type FilterEvent int

const (
	// EventStartFilter is the enter-filter key ("/").
	EventStartFilter FilterEvent = iota
	// EventCancel is the cancel key (escape).
	EventCancel
	// EventErase is the erase-character key (backspace).
	EventErase
	// EventRune is a printable filter character.
	EventRune
)

// FilterOutcome reports how the machine handled an event.
type FilterOutcome struct {
	Handled bool
	Redraw  Redraw
	// Quit is set when cancel arrives with no filter active: the machine's
	// terminal transition, meaning the process should exit.
	Quit bool
	// RowsChanged is set when the filtered row set differs after the event,
	// which is what makes cascade propagation to dependents necessary.
	RowsChanged bool
}

// FilterableRune reports whether r is accepted as filter input
// (alphanumerics and hyphen).
func FilterableRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-'
}

// HandleFilterKey runs one transition of the panel's filter state machine.
func (p *Panel) HandleFilterKey(ev FilterEvent, r rune) FilterOutcome {
	switch p.mode {
	case ModeNormal:
		return p.filterFromNormal(ev)
	case ModeFilterEmpty:
		return p.filterFromEmpty(ev, r)
	case ModeFilterActive:
		return p.filterFromActive(ev, r)
	}
	return FilterOutcome{}
}

func (p *Panel) filterFromNormal(ev FilterEvent) FilterOutcome {
	switch ev {
	case EventStartFilter:
		p.mode = ModeFilterEmpty
		p.filter = ""
		return FilterOutcome{Handled: true, Redraw: RedrawFooter}
	case EventCancel:
		return FilterOutcome{Handled: true, Quit: true}
	}
	return FilterOutcome{}
}

func (p *Panel) filterFromEmpty(ev FilterEvent, r rune) FilterOutcome {
	switch ev {
	case EventCancel:
		p.mode = ModeNormal
		return FilterOutcome{Handled: true, Redraw: RedrawFooter}
	case EventRune:
		if !FilterableRune(r) {
			return FilterOutcome{}
		}
		p.mode = ModeFilterActive
		p.filter += string(unicode.ToLower(r))
		changed := p.recomputeFiltered()
		return filteredOutcome(changed)
	case EventErase, EventStartFilter:
		return FilterOutcome{Handled: true}
	}
	return FilterOutcome{}
}

func (p *Panel) filterFromActive(ev FilterEvent, r rune) FilterOutcome {
	switch ev {
	case EventCancel:
		p.mode = ModeNormal
		p.filter = ""
		changed := p.recomputeFiltered()
		return FilterOutcome{Handled: true, Redraw: RedrawFull, RowsChanged: changed}
	case EventErase:
		runes := []rune(p.filter)
		p.filter = string(runes[:len(runes)-1])
		if p.filter == "" {
			p.mode = ModeFilterEmpty
		}
		changed := p.recomputeFiltered()
		return filteredOutcome(changed)
	case EventRune:
		if !FilterableRune(r) {
			return FilterOutcome{}
		}
		p.filter += string(unicode.ToLower(r))
		changed := p.recomputeFiltered()
		return filteredOutcome(changed)
	case EventStartFilter:
		return FilterOutcome{Handled: true}
	}
	return FilterOutcome{}
}

func filteredOutcome(changed bool) FilterOutcome {
	redraw := RedrawFooter
	if changed {
		redraw = RedrawFull
	}
	return FilterOutcome{Handled: true, Redraw: redraw, RowsChanged: changed}
}

// recomputeFiltered rebuilds the circular window from (all, filter) and
// resets the selection when the visible content set changed.
func (p *Panel) recomputeFiltered() bool {
	next := FilterRows(p.all, p.filter)
	changed := !equalRows(p.ring.rows, next)
	p.ring = NewRing(next)
	if changed {
		p.selected = 0
	}
	p.clampSelected()
	return changed
}
