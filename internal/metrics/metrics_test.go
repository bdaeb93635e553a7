package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestHookAndHandler(t *testing.T) {
	m := New()
	m.SubscriberAdded()
	m.SubscriberAdded()
	m.SubscriberRemoved()
	m.EventBroadcast("new_order")
	m.EventDropped("new_order")

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status: %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "kebab_active_subscribers 1") {
		t.Fatalf("gauge missing:\n%s", body)
	}
	if !strings.Contains(body, `kebab_events_broadcast_total{kind="new_order"} 1`) {
		t.Fatalf("broadcast counter missing:\n%s", body)
	}
	if !strings.Contains(body, `kebab_events_dropped_total{kind="new_order"} 1`) {
		t.Fatalf("dropped counter missing:\n%s", body)
	}
}
