package observability

import (
	"testing"
	"time"
)

func TestMetrics_RecordRequest(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.RecordRequest("/api/tickets", "GET", 200, 5*time.Millisecond)
	m.RecordRequest("/api/tickets", "GET", 200, 3*time.Millisecond)
	m.RecordRequest("/api/tickets", "POST", 201, time.Millisecond)

	if got := m.RequestCount("/api/tickets", "GET", 200); got != 2 {
		t.Errorf("RequestCount(GET 200) = %d, want 2", got)
	}
	if got := m.RequestCount("/api/tickets", "POST", 201); got != 1 {
		t.Errorf("RequestCount(POST 201) = %d, want 1", got)
	}
	if got := m.RequestCount("/api/tickets", "DELETE", 204); got != 0 {
		t.Errorf("RequestCount(DELETE 204) = %d, want 0", got)
	}
}

func TestMetrics_RecordError(t *testing.T) {
	t.Parallel()

	m := NewMetrics()
	m.RecordError("/api/usuarios", "POST", "VALIDATION_FAILED")

	if got := m.ErrorCount("/api/usuarios", "POST", "VALIDATION_FAILED"); got != 1 {
		t.Errorf("ErrorCount = %d, want 1", got)
	}
}

func TestMetrics_NilSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.RecordRequest("/x", "GET", 200, 0)
	m.RecordError("/x", "GET", "INTERNAL_ERROR")
	if got := m.RequestCount("/x", "GET", 200); got != 0 {
		t.Errorf("RequestCount on nil = %d, want 0", got)
	}
}
