package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"chiller_guard/internal/models"
)

type ReadingSQLite struct {
	db *sql.DB
}

func NewReadingSQLite(db *sql.DB) *ReadingSQLite { return &ReadingSQLite{db: db} }

// DefaultListLimit caps List when the caller passes limit <= 0.
const DefaultListLimit = 1000

const (
	upsertReadingSQL = `
		INSERT INTO readings (asset_id, ts, raw, delta_t, kw_per_ton, approach_temp, phase_imbalance, cooling_tons, cop, validation_status, health_score, health_category)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(asset_id, ts) DO UPDATE SET
			raw=excluded.raw,
			delta_t=excluded.delta_t,
			kw_per_ton=excluded.kw_per_ton,
			approach_temp=excluded.approach_temp,
			phase_imbalance=excluded.phase_imbalance,
			cooling_tons=excluded.cooling_tons,
			cop=excluded.cop,
			validation_status=excluded.validation_status,
			health_score=excluded.health_score,
			health_category=excluded.health_category
	`

	readingColumns = `raw, delta_t, kw_per_ton, approach_temp, phase_imbalance, cooling_tons, cop, validation_status, health_score, health_category`

	selectLatestSQL = `SELECT ` + readingColumns + ` FROM readings WHERE asset_id = ? ORDER BY ts DESC LIMIT 1`

	selectPreviousSQL = `SELECT raw FROM readings WHERE asset_id = ? AND ts < ? ORDER BY ts DESC LIMIT 1`

	selectAssetsSQL = `SELECT DISTINCT asset_id FROM readings ORDER BY asset_id`

	selectSummarySQL = `
		SELECT COUNT(health_score), MIN(health_score), AVG(health_score), MAX(health_score)
		FROM readings WHERE asset_id = ? AND ts >= ? AND ts <= ?
	`

	deleteReadingsSQL = `DELETE FROM readings WHERE asset_id = ?`

	selectLatestCategorySQL = `
		SELECT health_category FROM readings
		WHERE asset_id = ? AND ts >= ? AND ts <= ? AND health_category IS NOT NULL
		ORDER BY ts DESC LIMIT 1
	`
)

// Save inserts a record, replacing any stored record of the same asset and timestamp.
func (r *ReadingSQLite) Save(ctx context.Context, rec models.ReadingRecord) error {
	raw, err := json.Marshal(rec.RawReading)
	if err != nil {
		return fmt.Errorf("marshal reading: %w", err)
	}

	var category *string
	if rec.HealthCategory != "" {
		c := string(rec.HealthCategory)
		category = &c
	}

	d := rec.Derived
	_, err = r.db.ExecContext(ctx, upsertReadingSQL,
		rec.AssetID,
		formatTime(rec.Timestamp),
		string(raw),
		d.DeltaT,
		d.KWPerTon,
		d.ApproachTemp,
		d.PhaseImbalance,
		d.CoolingTons,
		d.COP,
		string(rec.ValidationStatus),
		rec.HealthScore,
		category,
	)
	return err
}

// Latest returns nil, nil when the asset has no stored readings.
func (r *ReadingSQLite) Latest(ctx context.Context, assetID string) (*models.ReadingRecord, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, selectLatestSQL, assetID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// Previous returns nil, nil when nothing older is stored.
func (r *ReadingSQLite) Previous(ctx context.Context, assetID string, at time.Time) (*models.RawReading, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, selectPreviousSQL, assetID, formatTime(at)).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var reading models.RawReading
	if err := json.Unmarshal([]byte(raw), &reading); err != nil {
		return nil, fmt.Errorf("decode stored reading: %w", err)
	}
	return &reading, nil
}

// List returns records in [from, to] (inclusive, zero means open), oldest first.
func (r *ReadingSQLite) List(ctx context.Context, assetID string, from, to time.Time, limit int) ([]models.ReadingRecord, error) {
	conds := []string{"asset_id = ?"}
	args := []any{assetID}

	if !from.IsZero() {
		conds = append(conds, "ts >= ?")
		args = append(args, formatTime(from))
	}
	if !to.IsZero() {
		conds = append(conds, "ts <= ?")
		args = append(args, formatTime(to))
	}
	if limit <= 0 {
		limit = DefaultListLimit
	}
	args = append(args, limit)

	q := `SELECT ` + readingColumns + ` FROM readings WHERE ` + strings.Join(conds, " AND ") + ` ORDER BY ts ASC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]models.ReadingRecord, 0, 64)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ReadingSQLite) Assets(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, selectAssetsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// Summary aggregates stored health scores in [from, to].
func (r *ReadingSQLite) Summary(ctx context.Context, assetID string, from, to time.Time) (models.HealthSummary, error) {
	s := models.HealthSummary{AssetID: assetID, From: from.UTC(), To: to.UTC()}
	fromStr, toStr := formatTime(from), formatTime(to)

	var minV, avgV, maxV sql.NullFloat64
	if err := r.db.QueryRowContext(ctx, selectSummarySQL, assetID, fromStr, toStr).
		Scan(&s.Readings, &minV, &avgV, &maxV); err != nil {
		return models.HealthSummary{}, err
	}
	s.Min, s.Avg, s.Max = nullFloat(minV), nullFloat(avgV), nullFloat(maxV)

	var category string
	err := r.db.QueryRowContext(ctx, selectLatestCategorySQL, assetID, fromStr, toStr).Scan(&category)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return models.HealthSummary{}, err
	default:
		s.LatestCategory = models.HealthCategory(category)
	}
	return s, nil
}

func (r *ReadingSQLite) Delete(ctx context.Context, assetID string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteReadingsSQL, assetID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (models.ReadingRecord, error) {
	var (
		rec      models.ReadingRecord
		raw      string
		derived  [6]sql.NullFloat64
		status   string
		score    sql.NullFloat64
		category sql.NullString
	)
	if err := sc.Scan(&raw,
		&derived[0], &derived[1], &derived[2], &derived[3], &derived[4], &derived[5],
		&status, &score, &category,
	); err != nil {
		return models.ReadingRecord{}, err
	}
	if err := json.Unmarshal([]byte(raw), &rec.RawReading); err != nil {
		return models.ReadingRecord{}, fmt.Errorf("decode stored reading: %w", err)
	}
	rec.Derived = models.DerivedMetrics{
		DeltaT:         nullFloat(derived[0]),
		KWPerTon:       nullFloat(derived[1]),
		ApproachTemp:   nullFloat(derived[2]),
		PhaseImbalance: nullFloat(derived[3]),
		CoolingTons:    nullFloat(derived[4]),
		COP:            nullFloat(derived[5]),
	}
	rec.ValidationStatus = models.ValidationStatus(status)
	rec.HealthScore = nullFloat(score)
	rec.HealthCategory = models.HealthCategory(category.String)
	return rec, nil
}

func nullFloat(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}
