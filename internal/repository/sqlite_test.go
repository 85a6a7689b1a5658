package repository

import (
	"path/filepath"
	"testing"
	"time"

	"chiller_guard/internal/models"
	"chiller_guard/internal/repository/db"
)

// Round trip against a real SQLite file: schema, upsert, ordering and
// aggregation together.
func TestSQLite_RoundTrip(t *testing.T) {
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "chiller.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repos := NewRepository(conn)
	c := ctx(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for i, score := range []float64{90, 80, 70} {
		s := score
		rec := models.ReadingRecord{
			RawReading:       models.RawReading{AssetID: "CH-001", Timestamp: base.Add(time.Duration(i) * time.Hour), VibrationRMS: f64(2 + float64(i))},
			Derived:          models.DerivedMetrics{DeltaT: f64(5.5)},
			ValidationStatus: models.StatusAccepted,
			HealthScore:      &s,
			HealthCategory:   models.CategoryGood,
		}
		if err := repos.ReadingRepo.Save(c, rec); err != nil {
			t.Fatalf("Save %d: %v", i, err)
		}
	}
	// same key replaces
	if err := repos.ReadingRepo.Save(c, models.ReadingRecord{
		RawReading:       models.RawReading{AssetID: "CH-001", Timestamp: base.Add(2 * time.Hour), VibrationRMS: f64(9)},
		ValidationStatus: models.StatusAcceptedWithWarnings,
		HealthScore:      f64(40),
		HealthCategory:   models.CategoryPoor,
	}); err != nil {
		t.Fatalf("Save replace: %v", err)
	}

	latest, err := repos.ReadingRepo.Latest(c, "CH-001")
	if err != nil || latest == nil {
		t.Fatalf("Latest: %v %v", latest, err)
	}
	if *latest.VibrationRMS != 9 || latest.ValidationStatus != models.StatusAcceptedWithWarnings || latest.Derived.DeltaT != nil {
		t.Fatalf("latest = %+v", latest)
	}

	prev, err := repos.ReadingRepo.Previous(c, "CH-001", base.Add(2*time.Hour))
	if err != nil || prev == nil || *prev.VibrationRMS != 3 {
		t.Fatalf("Previous = %+v, %v", prev, err)
	}

	list, err := repos.ReadingRepo.List(c, "CH-001", base.Add(time.Hour), time.Time{}, 0)
	if err != nil || len(list) != 2 || !list[0].Timestamp.Equal(base.Add(time.Hour)) {
		t.Fatalf("List = %+v, %v", list, err)
	}

	sum, err := repos.ReadingRepo.Summary(c, "CH-001", base, base.Add(3*time.Hour))
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Readings != 3 || *sum.Min != 40 || *sum.Max != 90 || *sum.Avg != 70 || sum.LatestCategory != models.CategoryPoor {
		t.Fatalf("summary = %+v", sum)
	}

	if err := repos.EventRepo.Append(c, models.Event{AssetID: "CH-001", OccurredAt: base, Type: "warning", Description: "w", Metadata: map[string]any{"rules": []string{"vibration_rms_range"}}}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	events, err := repos.EventRepo.List(c, EventFilter{Type: models.EventWarning, AssetID: "CH-001"})
	if err != nil || len(events) != 1 || events[0].Type != models.EventWarning || events[0].EventID == "" {
		t.Fatalf("events = %+v, %v", events, err)
	}

	assets, err := repos.ReadingRepo.Assets(c)
	if err != nil || len(assets) != 1 || assets[0] != "CH-001" {
		t.Fatalf("assets = %v, %v", assets, err)
	}

	n, err := repos.ReadingRepo.Delete(c, "CH-001")
	if err != nil || n != 3 {
		t.Fatalf("Delete = %d, %v", n, err)
	}
	if latest, err := repos.ReadingRepo.Latest(c, "CH-001"); err != nil || latest != nil {
		t.Fatalf("Latest after delete = %+v, %v", latest, err)
	}
	// events are an audit trail and survive
	if events, err := repos.EventRepo.List(c, EventFilter{AssetID: "CH-001"}); err != nil || len(events) != 1 {
		t.Fatalf("events after delete = %+v, %v", events, err)
	}
}
