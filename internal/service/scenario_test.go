package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"chiller_guard/internal/logger"
	"chiller_guard/internal/models"
	"chiller_guard/internal/scenario"
)

func newScenarioService(t *testing.T) (*ScenarioService, *memReadingRepo, *memEventRepo) {
	t.Helper()
	d := testDeps(t)
	ingest, readings, events := newIngest(t, d)
	svc := NewScenarioService(d.Generator, ingest, events, nil, logger.Nop())
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 30, 0, time.UTC) }
	return svc, readings, events
}

func TestScenarioService_GenerateReturnsReadings(t *testing.T) {
	t.Parallel()
	svc, readings, events := newScenarioService(t)

	res, err := svc.Generate(context.Background(), GenerateParams{Type: models.FailureTubeFouling, Days: 1, Seed: 7})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Generated != 288 || len(res.Readings) != 288 || res.Batch != nil {
		t.Fatalf("generated=%d readings=%d batch=%v", res.Generated, len(res.Readings), res.Batch)
	}
	wantStart := time.Date(2025, 2, 28, 12, 0, 0, 0, time.UTC)
	if !res.Start.Equal(wantStart) || !res.End.Equal(wantStart.Add(24*time.Hour)) {
		t.Fatalf("window = [%v, %v]", res.Start, res.End)
	}
	if res.Scenario.DefaultDays != 1 || res.Readings[0].AssetID != scenario.DefaultAssetID {
		t.Fatalf("unexpected scenario info or asset: %+v", res.Scenario)
	}
	if readings.count() != 0 {
		t.Fatalf("nothing should be stored without ingest")
	}
	if len(events.ofType(models.EventScenario)) != 1 {
		t.Fatalf("expected a SCENARIO event, got %+v", events.events)
	}
}

func TestScenarioService_GenerateAndIngest(t *testing.T) {
	t.Parallel()
	svc, readings, _ := newScenarioService(t)

	res, err := svc.Generate(context.Background(), GenerateParams{
		Type:    models.FailureHealthy,
		AssetID: "CH-009",
		Days:    1,
		Seed:    42,
		Ingest:  true,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Batch == nil || res.Readings != nil {
		t.Fatalf("expected batch summary only")
	}
	b := res.Batch
	if b.Total != 288 || b.Rejected != 0 || b.Failed != 0 || b.Accepted+b.Warnings != 288 || b.Items != nil {
		t.Fatalf("unexpected batch: %+v", b)
	}
	if readings.count() != 288 {
		t.Fatalf("stored = %d", readings.count())
	}
}

func TestScenarioService_SameSeedSameData(t *testing.T) {
	t.Parallel()
	svc, _, _ := newScenarioService(t)
	p := GenerateParams{Type: models.FailureBearingWear, Days: 2, Seed: 3}

	a, err := svc.Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _ := svc.Generate(context.Background(), p)
	for i := range a.Readings {
		if *a.Readings[i].VibrationRMS != *b.Readings[i].VibrationRMS {
			t.Fatalf("reading %d differs", i)
		}
	}
}

func TestScenarioService_RequestErrors(t *testing.T) {
	t.Parallel()
	svc, _, _ := newScenarioService(t)
	ctx := context.Background()

	_, err := svc.Generate(ctx, GenerateParams{Type: "compressor_fire"})
	if !errors.Is(err, ErrInvalidScenario) || !errors.Is(err, scenario.ErrUnknownType) {
		t.Fatalf("unknown type: got %v", err)
	}
	if _, err := svc.Generate(ctx, GenerateParams{Type: models.FailureHealthy, Days: -1}); !errors.Is(err, ErrInvalidScenario) {
		t.Fatalf("negative days: got %v", err)
	}
	_, err = svc.Generate(ctx, GenerateParams{Type: models.FailureHealthy, Days: 100, Interval: time.Minute})
	if !errors.Is(err, ErrTooManyReadings) {
		t.Fatalf("oversized request: got %v", err)
	}
	if _, err := svc.Details("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("details: got %v", err)
	}
}

func TestScenarioService_IngestHasLowerCap(t *testing.T) {
	t.Parallel()
	svc, readings, events := newScenarioService(t)
	p := GenerateParams{Type: models.FailureHealthy, Days: 30, Interval: time.Minute, Ingest: true}

	_, err := svc.Generate(context.Background(), p)
	if !errors.Is(err, ErrTooManyReadings) {
		t.Fatalf("30 days at 1 minute with ingest: got %v", err)
	}
	if readings.count() != 0 || len(events.events) != 0 {
		t.Fatalf("a refused request must not store anything")
	}

	// the same run without ingest stays under the general cap
	p.Ingest = false
	if _, err := svc.Preview(p, 3); err != nil {
		t.Fatalf("preview without ingest: %v", err)
	}
}

func TestScenarioService_LibraryDefaults(t *testing.T) {
	t.Parallel()
	svc, _, _ := newScenarioService(t)

	if len(svc.Library()) != 7 {
		t.Fatalf("library size = %d", len(svc.Library()))
	}
	res, err := svc.Generate(context.Background(), GenerateParams{Type: models.FailureLowLoadInefficiency, Interval: time.Hour})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Generated != 14*24 {
		t.Fatalf("default duration not applied: %d readings", res.Generated)
	}
}

func TestScenarioService_Preview(t *testing.T) {
	t.Parallel()
	svc, _, _ := newScenarioService(t)
	p := GenerateParams{Type: models.FailureElectricalIssue, Days: 1}

	got, err := svc.Preview(p, 5)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(got) != 5 {
		t.Fatalf("samples = %d", len(got))
	}
	step := got[4].Timestamp.Sub(got[0].Timestamp)
	if step != 287*scenario.DefaultInterval {
		t.Fatalf("preview should span first to last reading, got %v", step)
	}

	all, _ := svc.Preview(GenerateParams{Type: models.FailureHealthy, Days: 1, Interval: 6 * time.Hour}, 50)
	if len(all) != 4 {
		t.Fatalf("short sequence should be returned whole, got %d", len(all))
	}
}
