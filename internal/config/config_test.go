package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"chiller_guard/internal/guard"
	"chiller_guard/internal/health"
	"chiller_guard/internal/models"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "8080" || cfg.DB.Path != "chiller.db" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Physics.SaturationOffset != 2.5 {
		t.Fatalf("saturation offset = %.2f", cfg.Physics.SaturationOffset)
	}
	if len(cfg.Health.Weights) != 5 || len(cfg.Guard.Ranges) != len(guard.DefaultConfig().Ranges) {
		t.Fatalf("domain defaults not applied: %+v", cfg.Health.Weights)
	}
	if cfg.Server.WriteTimeout != 60*time.Second {
		t.Fatalf("write timeout = %v", cfg.Server.WriteTimeout)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := writeConfig(t, `
port: "9000"
log_level: debug
db:
  path: /tmp/x.db
physics:
  saturation_offset: 3.0
guard:
  strict: true
  ranges:
    power_kw: {min: 0, max: 3000, warn_min: 0, warn_max: 1500}
health:
  weights:
    vibration_rms: 0.5
    approach_temp: 0.5
replay:
  enabled: true
  scenario: tube_fouling
  interval: 10m
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "9000" || cfg.LogLevel != "debug" || !cfg.Guard.Strict {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Physics.SaturationOffset != 3.0 {
		t.Fatalf("offset = %.2f", cfg.Physics.SaturationOffset)
	}
	if got := cfg.Guard.Ranges[models.ChannelPowerKW].Max; got != 3000 {
		t.Fatalf("power range max = %g", got)
	}
	if _, ok := cfg.Guard.Ranges[models.ChannelChwSupplyTemp]; !ok {
		t.Fatalf("unlisted ranges must keep their defaults")
	}
	if len(cfg.Health.Weights) != 2 {
		t.Fatalf("weights must be taken whole, got %v", cfg.Health.Weights)
	}
	if cfg.Replay.Days != 60 || cfg.Replay.Interval != 10*time.Minute {
		t.Fatalf("replay = %+v", cfg.Replay)
	}
	spec := cfg.ReplaySpec()
	if spec.Duration != 60*24*time.Hour || spec.Type != models.FailureTubeFouling {
		t.Fatalf("replay spec = %+v", spec)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("CHILLER_PORT", "7070")
	t.Setenv("CHILLER_GUARD_STRICT", "true")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7070" || !cfg.Guard.Strict {
		t.Fatalf("env not applied: port=%s strict=%v", cfg.Port, cfg.Guard.Strict)
	}
}

func TestLoad_PartialEntriesKeepDefaultFields(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
guard:
  ranges:
    chw_supply_temp: {warn_max: 10}
  rates:
    power_kw: {warn: 100}
health:
  bands:
    vibration_rms: {poor: 12}
`))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	gd := guard.DefaultConfig()

	want := gd.Ranges["chw_supply_temp"]
	want.WarnMax = 10
	if got := cfg.Guard.Ranges["chw_supply_temp"]; got != want {
		t.Fatalf("chw_supply_temp range = %+v, want %+v", got, want)
	}
	wantRate := gd.Rates["power_kw"]
	wantRate.Warn = 100
	if got := cfg.Guard.Rates["power_kw"]; got != wantRate {
		t.Fatalf("power_kw rate = %+v, want %+v", got, wantRate)
	}
	wantBand := health.DefaultBands()["vibration_rms"]
	wantBand.Poor = 12
	if got := cfg.Health.Bands["vibration_rms"]; got != wantBand {
		t.Fatalf("vibration_rms band = %+v, want %+v", got, wantBand)
	}
	if got := cfg.Guard.Ranges["power_kw"]; got != gd.Ranges["power_kw"] {
		t.Fatalf("untouched range changed: %+v", got)
	}
}

func TestLoad_FailsFast(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"weights do not sum to one", `
health:
  weights: {vibration_rms: 0.5, approach_temp: 0.4}
`, health.ErrWeightSum},
		{"unknown weight key", `
health:
  weights: {oil_pressure: 1.0}
`, health.ErrUnknownMetric},
		{"inverted guard range", `
guard:
  ranges:
    power_kw: {min: 100, max: 0, warn_min: 0, warn_max: 0}
`, guard.ErrInvalidRange},
		{"negative offset", `
physics: {saturation_offset: -1}
`, ErrInvalid},
		{"unknown replay scenario", `
replay: {enabled: true, scenario: surge}
`, ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Fatalf("expected error for missing explicit file")
	}
}
