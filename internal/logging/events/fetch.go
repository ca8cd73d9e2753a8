package events

import "github.com/atomicstack/kls/internal/logging"

type FetchTracer struct{}

var Fetch = FetchTracer{}

func (FetchTracer) Start(panel string, generation uint64) {
	logging.Trace("fetch.start", map[string]interface{}{"panel": panel, "generation": generation})
}

func (FetchTracer) Done(panel string, generation uint64, rows int, err error) {
	payload := map[string]interface{}{"panel": panel, "generation": generation, "rows": rows}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("fetch.done", payload)
}

func (FetchTracer) Cancelled(panel string, generation uint64) {
	logging.Trace("fetch.cancelled", map[string]interface{}{"panel": panel, "generation": generation})
}

func (FetchTracer) Stale(panel string, generation, current uint64) {
	logging.Trace("fetch.stale", map[string]interface{}{"panel": panel, "generation": generation, "current": current})
}
