package events

import "github.com/nikbrunner/cbm/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]any) {
	logging.Trace("app.start", payload)
}

func (AppTracer) View(view string) {
	logging.Trace("app.view", map[string]any{"view": view})
}

func (AppTracer) Key(key string) {
	logging.Trace("app.key", map[string]any{"key": key})
}

func (AppTracer) Edit(path string) {
	logging.Trace("app.edit", map[string]any{"path": path})
}
