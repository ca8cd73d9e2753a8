package events

import "github.com/atomicstack/kls/internal/logging"

type PanelTracer struct{}

var Panel = PanelTracer{}

func (PanelTracer) Activate(title string) {
	logging.Trace("panel.activate", map[string]interface{}{"panel": title})
}

func (PanelTracer) Cursor(title, row string, offset int) {
	logging.Trace("panel.cursor", map[string]interface{}{"panel": title, "row": row, "offset": offset})
}

func (PanelTracer) Rows(title string, count int) {
	logging.Trace("panel.rows", map[string]interface{}{"panel": title, "count": count})
}
