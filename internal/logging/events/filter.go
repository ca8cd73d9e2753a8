package events

import "github.com/atomicstack/kls/internal/logging"

type FilterTracer struct{}

var Filter = FilterTracer{}

func (FilterTracer) Append(panel, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"panel": panel, "filter": filter})
}

func (FilterTracer) Backspace(panel, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"panel": panel, "filter": filter})
}

func (FilterTracer) Clear(panel string) {
	logging.Trace("filter.clear", map[string]interface{}{"panel": panel})
}
