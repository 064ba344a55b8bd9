package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func metricSampleColumns() []string {
	return []string{
		"captured_at", "process_rss_bytes", "system_memory_total_bytes",
		"system_memory_used_bytes", "disk_total_bytes", "disk_used_bytes",
		"process_cpu_load", "system_cpu_load",
	}
}

func TestMetricsHistory_NonAdminForbidden(t *testing.T) {
	server, mock := newTestServer(t)

	mock.ExpectQuery(`FROM users WHERE id =`).
		WithArgs("u1").
		WillReturnRows(userRow("u1", "ana@example.com", "user", nil))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/metrics/history", nil)
	req.Header.Set("Authorization", bearerFor(t, server, "u1"))
	recorder := doRequest(server, req)

	if recorder.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", recorder.Code)
	}
}

func TestMetricsHistory_OldestFirst(t *testing.T) {
	server, mock := newTestServer(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`FROM users WHERE id =`).
		WithArgs("a1").
		WillReturnRows(userRow("a1", "admin@example.com", "admin", nil))
	mock.ExpectQuery(`FROM server_metric_samples`).
		WithArgs(120).
		WillReturnRows(sqlmock.NewRows(metricSampleColumns()).
			AddRow(now, int64(2000), int64(16e9), int64(8e9), int64(500e9), int64(100e9), 0.2, 0.4).
			AddRow(now.Add(-5*time.Second), int64(1000), int64(16e9), int64(8e9), int64(500e9), int64(100e9), 0.1, 0.3))

	req := httptest.NewRequest(http.MethodGet, "/api/admin/metrics/history", nil)
	req.Header.Set("Authorization", bearerFor(t, server, "a1"))
	recorder := doRequest(server, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", recorder.Code, recorder.Body.String())
	}
	var resp MetricsHistoryResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Items) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(resp.Items))
	}
	if !resp.Items[0].CapturedAt.Before(resp.Items[1].CapturedAt) {
		t.Fatalf("samples not oldest first: %+v", resp.Items)
	}
	if resp.Items[1].ProcessRSSBytes != 2000 {
		t.Fatalf("unexpected newest sample: %+v", resp.Items[1])
	}
}
