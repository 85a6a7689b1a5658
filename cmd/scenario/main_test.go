package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"chiller_guard/internal/logger"
	"chiller_guard/internal/models"
)

func writeSpec(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "run.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

func TestRun_YAMLSpecToJSON(t *testing.T) {
	path := writeSpec(t, `
type: tube_fouling
asset_id: CH-042
start: 2024-06-01T00:00:00Z
days: 1
interval: 1h
seed: 9
`)
	var out bytes.Buffer
	if err := run([]string{"-spec", path}, &out, logger.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	var readings []models.RawReading
	if err := json.Unmarshal(out.Bytes(), &readings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(readings) != 24 {
		t.Fatalf("got %d readings, want 24", len(readings))
	}
	first, last := readings[0], readings[23]
	if first.AssetID != "CH-042" || !first.Timestamp.Equal(time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("first reading: %+v", first)
	}
	if !last.Timestamp.Equal(first.Timestamp.Add(23 * time.Hour)) {
		t.Fatalf("last timestamp = %v", last.Timestamp)
	}
}

func TestRun_FlagsOverrideSpecAndAreDeterministic(t *testing.T) {
	path := writeSpec(t, "type: healthy\ndays: 30\n")
	args := []string{"-spec", path, "-type", "bearing_wear", "-days", "1", "-interval", "2h", "-seed", "3"}

	var a, b bytes.Buffer
	if err := run(args, &a, logger.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(args, &b, logger.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if a.String() != b.String() {
		t.Fatalf("same seed produced different output")
	}
	var readings []models.RawReading
	_ = json.Unmarshal(a.Bytes(), &readings)
	if len(readings) != 12 {
		t.Fatalf("got %d readings, want 12", len(readings))
	}
}

func TestRun_CSVToFile(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "run.csv")
	args := []string{"-type", "electrical_issue", "-days", "1", "-interval", "6h", "-format", "csv", "-out", outPath}
	var stdout bytes.Buffer
	if err := run(args, &stdout, logger.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stdout.Len() != 0 {
		t.Fatalf("stdout must stay empty when -out is set, got %q", stdout.String())
	}

	f, err := os.Open(outPath)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 5 {
		t.Fatalf("got %d rows, want header + 4", len(rows))
	}
	header := rows[0]
	if header[0] != "asset_id" || header[1] != "time" || header[2] != models.ChannelChwSupplyTemp {
		t.Fatalf("header = %v", header)
	}
	for _, row := range rows[1:] {
		if len(row) != len(header) {
			t.Fatalf("row width %d != header %d", len(row), len(header))
		}
		if _, err := time.Parse(time.RFC3339, row[1]); err != nil {
			t.Fatalf("bad time cell %q", row[1])
		}
	}
}

func TestRun_List(t *testing.T) {
	var out bytes.Buffer
	if err := run([]string{"-list"}, &out, logger.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	var lib []models.ScenarioInfo
	if err := json.Unmarshal(out.Bytes(), &lib); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(lib) != 7 {
		t.Fatalf("library has %d entries", len(lib))
	}
}

func TestRun_PartialBaselineKeepsDefaults(t *testing.T) {
	path := writeSpec(t, `
type: healthy
days: 1
interval: 6h
seed: 1
baseline:
  chw_supply_temp: 7.5
  chw_return_temp: 13
`)
	var out bytes.Buffer
	if err := run([]string{"-spec", path}, &out, logger.Nop()); err != nil {
		t.Fatalf("run: %v", err)
	}
	var readings []models.RawReading
	if err := json.Unmarshal(out.Bytes(), &readings); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(readings) != 4 {
		t.Fatalf("got %d readings, want 4", len(readings))
	}
	for _, r := range readings {
		if r.PowerKW == nil || *r.PowerKW <= 0 || r.ChwFlowGPM == nil || *r.ChwFlowGPM <= 0 {
			t.Fatalf("default baseline fields lost: %+v", r)
		}
	}
}

func TestRun_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no type", []string{"-days", "1"}, ""},
		{"unknown type", []string{"-type", "compressor_fire", "-days", "1"}, "unknown failure type"},
		{"bad format", []string{"-type", "healthy", "-format", "xml"}, "unknown format"},
		{"missing spec file", []string{"-spec", filepath.Join(t.TempDir(), "nope.yml")}, "no such file"},
		{"reading count over the cap", []string{"-type", "healthy", "-days", "60", "-interval", "1ns"}, "too many readings"},
		{"unusable baseline", []string{"-spec", writeSpec(t, "type: healthy\ndays: 1\nbaseline: {chw_supply_temp: 14}\n")}, "invalid baseline"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := run(tc.args, &out, logger.Nop())
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.want == "" {
				if !errors.Is(err, errUsage) {
					t.Fatalf("err = %v, want usage", err)
				}
				return
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want %q", err, tc.want)
			}
		})
	}
}
