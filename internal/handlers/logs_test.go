package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"chiller_guard/internal/models"
	"chiller_guard/internal/service"
)

func TestLogsHandler_ListAndValidation(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	events := []models.Event{
		{EventID: "e1", OccurredAt: now, Type: models.EventRejected, Description: "rejected"},
		{EventID: "e2", OccurredAt: now.Add(time.Second), Type: models.EventWarning, Description: "warning"},
	}
	logs := &mockEventLog{resp: events}
	r := newTestRouter(&service.Service{EventLog: logs})

	if w := doJSON(t, r, http.MethodGet, "/api/v1/logs?from=notatime", nil); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid 'from', got %d", w.Code)
	}

	q := "/api/v1/logs?from=" + now.Format(time.RFC3339) + "&to=" + now.Add(2*time.Second).Format(time.RFC3339) + "&type=warning&asset_id=CH-001"
	w := doJSON(t, r, http.MethodGet, q, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("logs status=%d, body=%s", w.Code, w.Body.String())
	}
	var out struct {
		Count  int            `json:"count"`
		Events []models.Event `json:"events"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if out.Count != 2 || len(out.Events) != 2 {
		t.Fatalf("unexpected response: %+v", out)
	}
	if logs.lastFilter.Type != models.EventWarning || logs.lastFilter.AssetID != "CH-001" || !logs.lastFilter.From.Equal(now) {
		t.Fatalf("unexpected filter: %+v", logs.lastFilter)
	}

	logs.err = errors.New("db down")
	if w := doJSON(t, r, http.MethodGet, "/api/v1/logs", nil); w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}

func TestParseQueryTime(t *testing.T) {
	cases := map[string]time.Time{
		"2025-08-27T15:04:05+02:00": time.Date(2025, 8, 27, 13, 4, 5, 0, time.UTC),
		"2025-08-27 15:04:05":       time.Date(2025, 8, 27, 15, 4, 5, 0, time.UTC),
		"2025-08-27":                time.Date(2025, 8, 27, 0, 0, 0, 0, time.UTC),
	}
	for in, want := range cases {
		got, err := parseQueryTime(in)
		if err != nil || !got.Equal(want) {
			t.Errorf("parseQueryTime(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := parseQueryTime("27/08/2025"); err == nil {
		t.Errorf("expected error for unsupported layout")
	}
}
