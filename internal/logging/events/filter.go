package events

import "github.com/nikbrunner/cbm/internal/logging"

type FilterTracer struct{}

var Filter = FilterTracer{}

func (FilterTracer) Append(view, filter string) {
	logging.Trace("filter.append", map[string]any{"view": view, "filter": filter})
}

func (FilterTracer) Backspace(view, filter string) {
	logging.Trace("filter.backspace", map[string]any{"view": view, "filter": filter})
}

func (FilterTracer) Mode(view, mode string) {
	logging.Trace("filter.mode", map[string]any{"view": view, "mode": mode})
}

func (FilterTracer) Applied(view, filter string, matches int) {
	logging.Trace("filter.apply", map[string]any{"view": view, "filter": filter, "matches": matches})
}
