package state

import (
	"reflect"
	"testing"
)

func TestEnterFilterRedrawsFooterOnly(t *testing.T) {
	p := newTestPanel(5, "alpha", "beta")
	out := p.HandleFilterKey(EventStartFilter, 0)
	if !out.Handled || out.Redraw != RedrawFooter {
		t.Fatalf("unexpected outcome %#v", out)
	}
	if p.Mode() != ModeFilterEmpty {
		t.Fatalf("expected empty-filter mode, got %v", p.Mode())
	}
	if p.Filter() != "" {
		t.Fatalf("expected cleared filter, got %q", p.Filter())
	}
}

func TestCancelFromNormalSignalsQuit(t *testing.T) {
	p := newTestPanel(5, "alpha")
	out := p.HandleFilterKey(EventCancel, 0)
	if !out.Quit {
		t.Fatalf("expected quit outcome, got %#v", out)
	}
}

func TestTypingNarrowsAndLowercases(t *testing.T) {
	p := newTestPanel(2, "alpha", "beta", "gamma")
	p.HandleFilterKey(EventStartFilter, 0)
	out := p.HandleFilterKey(EventRune, 'A')
	if !out.Handled || out.Redraw != RedrawFull || !out.RowsChanged {
		t.Fatalf("unexpected outcome %#v", out)
	}
	if p.Mode() != ModeFilterActive {
		t.Fatalf("expected active filter, got %v", p.Mode())
	}
	if p.Filter() != "a" {
		t.Fatalf("expected lowercased filter, got %q", p.Filter())
	}
	out = p.HandleFilterKey(EventRune, 'm')
	if !reflect.DeepEqual(p.VisibleRows(), []string{"gamma"}) {
		t.Fatalf("expected narrowed rows, got %#v", p.VisibleRows())
	}
	if p.SelectedOffset() != 0 {
		t.Fatalf("expected selection reset, got %d", p.SelectedOffset())
	}
	_ = out
}

func TestFilterScenarioOrderPreserved(t *testing.T) {
	p := newTestPanel(2, "alpha", "beta", "gamma")
	p.HandleFilterKey(EventStartFilter, 0)
	p.HandleFilterKey(EventRune, 'a')
	if got := FilterRows(p.Rows(), p.Filter()); !reflect.DeepEqual(got, []string{"alpha", "beta", "gamma"}) {
		t.Fatalf("expected all rows to contain 'a', got %#v", got)
	}
	p.HandleFilterKey(EventErase, 0)
	p.HandleFilterKey(EventRune, 'a')
	p.HandleFilterKey(EventRune, 'l')
	if got := p.VisibleRows(); !reflect.DeepEqual(got, []string{"alpha"}) {
		t.Fatalf("expected only alpha visible, got %#v", got)
	}
}

func TestEraseToEmptyReturnsToEmptyFilterNotNormal(t *testing.T) {
	p := newTestPanel(5, "alpha", "beta")
	p.HandleFilterKey(EventStartFilter, 0)
	p.HandleFilterKey(EventRune, 'a')
	p.HandleFilterKey(EventRune, 'b')
	p.HandleFilterKey(EventErase, 0)
	if p.Mode() != ModeFilterActive {
		t.Fatalf("expected still-active filter, got %v", p.Mode())
	}
	p.HandleFilterKey(EventErase, 0)
	if p.Mode() != ModeFilterEmpty {
		t.Fatalf("expected empty-filter mode after erasing all text, got %v", p.Mode())
	}
	if p.Filter() != "" {
		t.Fatalf("expected empty filter text, got %q", p.Filter())
	}
	out := p.HandleFilterKey(EventCancel, 0)
	if out.Quit || p.Mode() != ModeNormal {
		t.Fatalf("expected cancel to reach normal mode, got %#v mode %v", out, p.Mode())
	}
}

func TestCancelFromActiveClearsAndRestores(t *testing.T) {
	p := newTestPanel(5, "alpha", "beta", "gamma")
	p.HandleFilterKey(EventStartFilter, 0)
	p.HandleFilterKey(EventRune, 'g')
	if p.FilteredLen() != 1 {
		t.Fatalf("expected one match, got %d", p.FilteredLen())
	}
	out := p.HandleFilterKey(EventCancel, 0)
	if out.Redraw != RedrawFull || !out.RowsChanged {
		t.Fatalf("expected full redraw with row change, got %#v", out)
	}
	if p.Mode() != ModeNormal || p.Filter() != "" {
		t.Fatalf("expected normal mode with empty filter, got %v %q", p.Mode(), p.Filter())
	}
	if p.FilteredLen() != 3 {
		t.Fatalf("expected all rows restored, got %d", p.FilteredLen())
	}
}

func TestRejectedRunesAreUnhandled(t *testing.T) {
	p := newTestPanel(5, "alpha")
	p.HandleFilterKey(EventStartFilter, 0)
	out := p.HandleFilterKey(EventRune, '!')
	if out.Handled {
		t.Fatalf("expected punctuation to be rejected, got %#v", out)
	}
	out = p.HandleFilterKey(EventRune, '-')
	if !out.Handled {
		t.Fatal("expected hyphen to be accepted")
	}
}

func TestRetypingSameNarrowingRedrawsFooterOnly(t *testing.T) {
	p := newTestPanel(5, "aa", "ab")
	p.HandleFilterKey(EventStartFilter, 0)
	out := p.HandleFilterKey(EventRune, 'a')
	if out.Redraw != RedrawFooter || out.RowsChanged {
		t.Fatalf("expected footer-only redraw when match set is unchanged, got %#v", out)
	}
	out = p.HandleFilterKey(EventRune, 'a')
	if out.Redraw != RedrawFull || !out.RowsChanged {
		t.Fatalf("expected full redraw when rows narrowed, got %#v", out)
	}
	out = p.HandleFilterKey(EventErase, 0)
	if out.Redraw != RedrawFull {
		t.Fatalf("expected full redraw on widening, got %#v", out)
	}
	out = p.HandleFilterKey(EventErase, 0)
	if out.Redraw != RedrawFooter || p.Filter() != "" || p.Mode() != ModeFilterEmpty {
		t.Fatalf("expected footer redraw back at empty filter, got %#v filter %q", out, p.Filter())
	}
}
