package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed assets/widget.js
var widgetJS []byte

// WidgetJSHandler serves the embeddable widget loader script.
type WidgetJSHandler struct{}

// NewWidgetJSHandler creates the loader script handler.
func NewWidgetJSHandler() *WidgetJSHandler {
	return &WidgetJSHandler{}
}

// HandleWidgetJS handles GET /widget.js requests. The script is served to
// third-party pages, so it is cacheable and CORS-open.
func (h *WidgetJSHandler) HandleWidgetJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	_, _ = w.Write(widgetJS)
}
