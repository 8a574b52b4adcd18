package events

import "github.com/nikbrunner/cbm/internal/logging"

type ResolveTracer struct{}

var Resolve = ResolveTracer{}

func (ResolveTracer) Success(name string, length int) {
	logging.Trace("resolve.success", map[string]any{"bookmark": name, "length": length})
}

func (ResolveTracer) Error(name string, err error) {
	if err == nil {
		return
	}
	logging.Trace("resolve.error", map[string]any{"bookmark": name, "error": err.Error()})
}
