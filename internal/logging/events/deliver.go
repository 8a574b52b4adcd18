package events

import "github.com/nikbrunner/cbm/internal/logging"

type DeliverTracer struct{}

var Deliver = DeliverTracer{}

func (DeliverTracer) Sent(mode, target string, length int) {
	logging.Trace("deliver.sent", map[string]any{"mode": mode, "target": target, "length": length})
}

func (DeliverTracer) Fallback(from, to string, err error) {
	payload := map[string]any{"from": from, "to": to}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("deliver.fallback", payload)
}
