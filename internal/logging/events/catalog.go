package events

import "github.com/nikbrunner/cbm/internal/logging"

type CatalogTracer struct{}

var Catalog = CatalogTracer{}

func (CatalogTracer) Loaded(path string, bookmarks, labels int) {
	logging.Trace("catalog.load", map[string]any{"path": path, "bookmarks": bookmarks, "labels": labels})
}

func (CatalogTracer) Created(path string) {
	logging.Trace("catalog.create", map[string]any{"path": path})
}

func (CatalogTracer) Changed(path, op string) {
	logging.Trace("catalog.change", map[string]any{"path": path, "op": op})
}

func (CatalogTracer) Reload(path string, err error) {
	payload := map[string]any{"path": path}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("catalog.reload", payload)
}
