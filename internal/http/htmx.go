package http

import (
	"encoding/json"
	"net/http"
)

// hxResponse builds htmx responses: an HX-Trigger header naming the events
// the client should react to, plus an HTML fragment body.
type hxResponse struct {
	triggers map[string]any
	status   int
	body     string
}

func newHXResponse() *hxResponse {
	return &hxResponse{
		triggers: make(map[string]any),
		status:   http.StatusOK,
	}
}

func (b *hxResponse) Status(code int) *hxResponse {
	b.status = code
	return b
}

func (b *hxResponse) Trigger(name string, data any) *hxResponse {
	b.triggers[name] = data
	return b
}

// TriggerRecordsChanged tells the client to refresh the table, the summary
// figures, and the charts.
func (b *hxResponse) TriggerRecordsChanged() *hxResponse {
	return b.Trigger("records:changed", struct{}{})
}

// TriggerThemeChanged tells the client to restyle and redraw the charts.
func (b *hxResponse) TriggerThemeChanged(primary, accent string) *hxResponse {
	return b.Trigger("theme:changed", map[string]string{"primary": primary, "accent": accent})
}

func (b *hxResponse) HTML(fragment string) *hxResponse {
	b.body = fragment
	return b
}

func (b *hxResponse) Write(w http.ResponseWriter) {
	if len(b.triggers) > 0 {
		if payload, err := json.Marshal(b.triggers); err == nil {
			w.Header().Set("HX-Trigger", string(payload))
		}
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(b.status)
	_, _ = w.Write([]byte(b.body))
}
