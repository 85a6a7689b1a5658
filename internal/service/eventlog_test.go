package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chiller_guard/internal/models"
)

func mustTimeIn(offsetHours int, y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.FixedZone("", offsetHours*3600))
}

func Test_normalizeToUTC(t *testing.T) {
	t.Parallel()

	if got := normalizeToUTC(time.Time{}); !got.IsZero() {
		t.Fatalf("zero time should stay zero, got %v", got)
	}
	got := normalizeToUTC(mustTimeIn(3, 2025, time.August, 1, 12, 34))
	want := time.Date(2025, time.August, 1, 9, 34, 0, 0, time.UTC)
	if got.Location() != time.UTC || !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func Test_normalizeEventType(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in, exp string
	}{
		{"", ""},
		{"  REJECTED ", "REJECTED"},
		{"warning", "WARNING"},
		{" health_alert ", "HEALTH_ALERT"},
	}
	for _, c := range cases {
		if got := normalizeEventType(c.in); got != c.exp {
			t.Errorf("normalizeEventType(%q) = %q; want %q", c.in, got, c.exp)
		}
	}
}

func Test_normalizeAndValidateFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       LogFilter
		wantFrom time.Time
		wantTo   time.Time
		wantType string
		wantErr  error
	}{
		{
			name: "all zero ok",
			in:   LogFilter{},
		},
		{
			name: "from after to",
			in: LogFilter{
				From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			},
			wantErr: errInvalidTimeRange,
		},
		{
			name: "normalize tz and type",
			in: LogFilter{
				From: mustTimeIn(2, 2025, time.September, 10, 10, 0),
				To:   time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC),
				Type: " rejected ",
			},
			wantFrom: time.Date(2025, time.September, 10, 8, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, time.September, 10, 12, 0, 0, 0, time.UTC),
			wantType: "REJECTED",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := normalizeAndValidateFilter(tc.in)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected err %v; got %v", tc.wantErr, err)
			}
			if !got.From.Equal(tc.wantFrom) || !got.To.Equal(tc.wantTo) {
				t.Fatalf("window = [%v, %v]; want [%v, %v]", got.From, got.To, tc.wantFrom, tc.wantTo)
			}
			if got.Type != tc.wantType {
				t.Fatalf("type = %q; want %q", got.Type, tc.wantType)
			}
		})
	}
}

func TestEventLogService_List_DelegatesNormalizedParams(t *testing.T) {
	t.Parallel()

	repo := &memEventRepo{events: []models.Event{{EventID: "1"}}}
	svc := NewEventLogService(repo)

	out, err := svc.List(context.Background(), LogFilter{
		From:    mustTimeIn(5, 2025, time.October, 1, 10, 0),
		To:      mustTimeIn(-2, 2025, time.October, 1, 12, 30),
		Type:    "  warning ",
		AssetID: " CH-001 ",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].EventID != "1" {
		t.Fatalf("unexpected events: %+v", out)
	}
	if repo.calls != 1 {
		t.Fatalf("repo List should be called once, got %d", repo.calls)
	}

	f := repo.gotFilter
	if !f.From.Equal(time.Date(2025, time.October, 1, 5, 0, 0, 0, time.UTC)) ||
		!f.To.Equal(time.Date(2025, time.October, 1, 14, 30, 0, 0, time.UTC)) {
		t.Fatalf("repo window = [%v, %v]", f.From, f.To)
	}
	if f.Type != "WARNING" || f.AssetID != "CH-001" {
		t.Fatalf("repo filter = %+v", f)
	}
}

func TestEventLogService_List_ValidationError(t *testing.T) {
	t.Parallel()

	repo := &memEventRepo{}
	svc := NewEventLogService(repo)

	_, err := svc.List(context.Background(), LogFilter{
		From: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, errInvalidTimeRange) {
		t.Fatalf("expected errInvalidTimeRange; got %v", err)
	}
	if repo.calls != 0 {
		t.Fatalf("repo should not be called on validation error, calls=%d", repo.calls)
	}
}

func TestEventLogService_List_RepoErrorPropagation(t *testing.T) {
	t.Parallel()

	svc := NewEventLogService(&memEventRepo{listErr: errors.New("db down")})
	if _, err := svc.List(context.Background(), LogFilter{}); err == nil {
		t.Fatalf("expected repo error")
	}
}
