package guard

import (
	"errors"
	"strings"
	"testing"
	"time"

	"chiller_guard/internal/models"
	"chiller_guard/internal/physics"
)

// ---- helpers ----

func f(v float64) *float64 { return &v }

func newGuard(t *testing.T, cfg Config) *Guard {
	t.Helper()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func validate(g *Guard, r models.RawReading, prev *models.RawReading, strict bool) models.ValidationResult {
	d := physics.NewCalculator(physics.DefaultConstants()).Derive(r)
	return g.Validate(&r, &d, prev, strict)
}

func healthyReading() models.RawReading {
	return models.RawReading{
		AssetID:       "CH-001",
		Timestamp:     time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		ChwSupplyTemp: f(6.7),
		ChwReturnTemp: f(12.2),
		CdwInletTemp:  f(29.4),
		CdwOutletTemp: f(35.0),
		AmbientTemp:   f(25),
		VibrationRMS:  f(2.0),
		VibrationFreq: f(60),
		CurrentR:      f(200),
		CurrentY:      f(201),
		CurrentB:      f(199),
		PowerKW:       f(280),
		LoadPercent:   f(80),
		ChwFlowGPM:    f(2400),
		RuntimeHours:  f(15000),
	}
}

// ---- tests ----

func TestValidate_SpecExampleAccepted(t *testing.T) {
	g := newGuard(t, DefaultConfig())
	r := models.RawReading{
		ChwSupplyTemp: f(6.7),
		ChwReturnTemp: f(12.2),
		CdwInletTemp:  f(29.4),
		CdwOutletTemp: f(35.0),
		PowerKW:       f(280),
		VibrationRMS:  f(2.1),
	}
	res := validate(g, r, nil, false)
	if res.Status != models.StatusAccepted {
		t.Fatalf("status = %s, issues = %+v", res.Status, res.Issues)
	}
	if len(res.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", res.Issues)
	}
}

func TestValidate_HealthyFullReadingAccepted(t *testing.T) {
	g := newGuard(t, DefaultConfig())
	res := validate(g, healthyReading(), nil, true)
	if res.Status != models.StatusAccepted {
		t.Fatalf("status = %s, issues = %+v", res.Status, res.Issues)
	}
}

func TestValidate_ThermalDirectionRejected(t *testing.T) {
	g := newGuard(t, DefaultConfig())

	cases := []struct {
		name        string
		supply, ret float64
	}{
		{"inverted", 15.0, 6.0},
		{"equal", 7.0, 7.0},
		{"barely inverted", 7.01, 7.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := validate(g, models.RawReading{ChwSupplyTemp: f(tc.supply), ChwReturnTemp: f(tc.ret)}, nil, false)
			if res.Status != models.StatusRejected {
				t.Fatalf("status = %s, want rejected", res.Status)
			}
			if len(res.Issues) == 0 || res.Issues[0].RuleID != RuleChwThermalDirection {
				t.Fatalf("first issue should be %s, got %+v", RuleChwThermalDirection, res.Issues)
			}
			if res.Issues[0].Severity != models.SeverityViolation {
				t.Fatalf("severity = %s", res.Issues[0].Severity)
			}
		})
	}
}

func TestValidate_CondenserDirection(t *testing.T) {
	g := newGuard(t, DefaultConfig())
	r := healthyReading()
	r.CdwInletTemp, r.CdwOutletTemp = f(35), f(30)
	res := validate(g, r, nil, false)
	if !res.Has(RuleCdwThermalDirection) || res.Status != models.StatusRejected {
		t.Fatalf("expected cdw violation, got %+v", res)
	}
}

func TestValidate_MissingChannelsSkipRules(t *testing.T) {
	g := newGuard(t, DefaultConfig())
	res := validate(g, models.RawReading{AssetID: "CH-001", ChwSupplyTemp: f(6.7)}, nil, false)
	if res.Status != models.StatusAccepted || len(res.Issues) != 0 {
		t.Fatalf("missing channels must not trigger rules: %+v", res)
	}
}

func TestValidate_ExhaustiveAndOrdered(t *testing.T) {
	g := newGuard(t, DefaultConfig())
	r := healthyReading()
	r.ChwSupplyTemp, r.ChwReturnTemp = f(15), f(6)
	r.CdwInletTemp, r.CdwOutletTemp = f(36), f(34)
	r.VibrationRMS = f(60) // beyond the sane range
	r.LoadPercent = f(80)
	r.PowerKW = f(0)

	res := validate(g, r, nil, false)
	for _, id := range []string{
		RuleChwThermalDirection,
		RuleCdwThermalDirection,
		RangeRuleID(models.ChannelVibrationRMS),
		RulePowerLoadConsistency,
		RulePowerVibrationConsistency,
	} {
		if !res.Has(id) {
			t.Fatalf("expected %s in %+v", id, res.Issues)
		}
	}

	order := g.Rules()
	pos := make(map[string]int, len(order))
	for i, id := range order {
		pos[id] = i
	}
	for i := 1; i < len(res.Issues); i++ {
		if pos[res.Issues[i-1].RuleID] > pos[res.Issues[i].RuleID] {
			t.Fatalf("issues out of evaluation order: %s before %s", res.Issues[i-1].RuleID, res.Issues[i].RuleID)
		}
	}
}

func TestValidate_ApproachToleranceBand(t *testing.T) {
	g := newGuard(t, DefaultConfig())

	cases := []struct {
		name     string
		sat      float64
		wantSev  models.Severity
		wantFire bool
	}{
		{"positive", 37.5, 0, false},
		{"zero", 35.0, 0, false},
		{"within tolerance", 34.7, models.SeverityWarning, true},
		{"beyond tolerance", 34.0, models.SeverityViolation, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := healthyReading()
			r.RefrigerantSatTemp = f(tc.sat)
			res := validate(g, r, nil, false)
			var got *models.Issue
			for i := range res.Issues {
				if res.Issues[i].RuleID == RuleApproachNonNegative {
					got = &res.Issues[i]
				}
			}
			if (got != nil) != tc.wantFire {
				t.Fatalf("fired = %v, want %v (%+v)", got != nil, tc.wantFire, res.Issues)
			}
			if got != nil && got.Severity != tc.wantSev {
				t.Fatalf("severity = %s, want %s", got.Severity, tc.wantSev)
			}
		})
	}
}

func TestValidate_RangeWarningVsViolation(t *testing.T) {
	g := newGuard(t, DefaultConfig())

	r := healthyReading()
	r.VibrationRMS = f(9) // above warn 8, below max 50
	res := validate(g, r, nil, false)
	if res.Status != models.StatusAcceptedWithWarnings {
		t.Fatalf("status = %s, want accepted_with_warnings (%+v)", res.Status, res.Issues)
	}

	r.VibrationRMS = f(-1)
	res = validate(g, r, nil, false)
	if res.Status != models.StatusRejected {
		t.Fatalf("negative vibration must be rejected, got %s", res.Status)
	}
}

func TestValidate_StrictPromotesWarnings(t *testing.T) {
	r := healthyReading()
	r.VibrationRMS = f(9)

	g := newGuard(t, DefaultConfig())
	if res := validate(g, r, nil, true); res.Status != models.StatusRejected {
		t.Fatalf("strict argument: status = %s, want rejected", res.Status)
	} else if res.Count(models.SeverityWarning) != 0 {
		t.Fatalf("strict mode must leave no warnings: %+v", res.Issues)
	} else if !strings.HasSuffix(res.Issues[0].Message, "(strict)") {
		t.Fatalf("promoted issue should be marked, got %q", res.Issues[0].Message)
	}

	cfg := DefaultConfig()
	cfg.Strict = true
	gs := newGuard(t, cfg)
	if !gs.Strict() {
		t.Fatalf("Strict() = false")
	}
	if res := validate(gs, r, nil, false); res.Status != models.StatusRejected {
		t.Fatalf("configured strict: status = %s, want rejected", res.Status)
	}
}

func TestValidate_RateOfChange(t *testing.T) {
	g := newGuard(t, DefaultConfig())
	prev := healthyReading()
	cur := healthyReading()
	cur.Timestamp = prev.Timestamp.Add(5 * time.Minute)

	cases := []struct {
		name   string
		supply float64
		want   models.ValidationStatus
	}{
		{"small step", 7.5, models.StatusAccepted},
		{"glitch", 6.7 + 4, models.StatusAcceptedWithWarnings},
		{"impossible jump", 6.7 + 11, models.StatusRejected},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := cur
			c.ChwSupplyTemp = f(tc.supply)
			c.ChwReturnTemp = f(tc.supply + 5.5)
			res := validate(g, c, &prev, false)
			if !res.Has(RateRuleID(models.ChannelChwSupplyTemp)) && tc.want != models.StatusAccepted {
				t.Fatalf("expected rate rule to fire, got %+v", res.Issues)
			}
			if res.Has(RateRuleID(models.ChannelChwSupplyTemp)) && tc.want == models.StatusAccepted {
				t.Fatalf("rate rule should not fire for %.2f", tc.supply)
			}
			worst := models.StatusAccepted
			for _, is := range res.Issues {
				if is.RuleID == RateRuleID(models.ChannelChwSupplyTemp) || is.RuleID == RateRuleID(models.ChannelChwReturnTemp) {
					if is.Severity == models.SeverityViolation {
						worst = models.StatusRejected
					} else if worst != models.StatusRejected {
						worst = models.StatusAcceptedWithWarnings
					}
				}
			}
			if worst != tc.want {
				t.Fatalf("rate outcome = %s, want %s", worst, tc.want)
			}
		})
	}
}

func TestValidate_RateIgnoresForeignOrNewerPrevious(t *testing.T) {
	g := newGuard(t, DefaultConfig())
	cur := healthyReading()
	cur.ChwSupplyTemp, cur.ChwReturnTemp = f(11), f(16)

	other := healthyReading()
	other.AssetID = "CH-002"
	if res := validate(g, cur, &other, false); res.Has(RateRuleID(models.ChannelChwSupplyTemp)) {
		t.Fatalf("previous from another asset must be ignored")
	}

	newer := healthyReading()
	newer.Timestamp = cur.Timestamp.Add(time.Hour)
	if res := validate(g, cur, &newer, false); res.Has(RateRuleID(models.ChannelChwSupplyTemp)) {
		t.Fatalf("previous newer than reading must be ignored")
	}
}

func TestValidate_DoesNotMutateInputs(t *testing.T) {
	g := newGuard(t, DefaultConfig())
	r := healthyReading()
	r.ChwSupplyTemp, r.ChwReturnTemp = f(15), f(6)
	before := *r.ChwSupplyTemp
	_ = validate(g, r, nil, true)
	if *r.ChwSupplyTemp != before {
		t.Fatalf("reading mutated")
	}
}

func TestValidate_NilReadingPanics(t *testing.T) {
	g := newGuard(t, DefaultConfig())
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	g.Validate(nil, nil, nil, false)
}

func TestNew_RejectsBadConfig(t *testing.T) {
	cases := []struct {
		name string
		mut  func(c *Config)
		want error
	}{
		{"inverted range", func(c *Config) {
			c.Ranges[models.ChannelPowerKW] = Range{Min: 10, Max: 0}
		}, ErrInvalidRange},
		{"warn outside sane", func(c *Config) {
			c.Ranges[models.ChannelPowerKW] = Range{Min: 0, Max: 10, WarnMin: 0, WarnMax: 20}
		}, ErrInvalidRange},
		{"unknown range key", func(c *Config) {
			c.Ranges["oil_pressure"] = Range{Max: 1, WarnMax: 1}
		}, ErrUnknownKey},
		{"rate warn above max", func(c *Config) {
			c.Rates[models.ChannelPowerKW] = RateLimit{Warn: 10, Max: 5}
		}, ErrInvalidRate},
		{"rate on derived metric", func(c *Config) {
			c.Rates[models.MetricKWPerTon] = RateLimit{Warn: 1, Max: 2}
		}, ErrUnknownKey},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mut(&cfg)
			if _, err := New(cfg); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	cfg := DefaultConfig()
	cfg.ApproachTolerance = -1
	if _, err := New(cfg); err == nil {
		t.Fatalf("negative tolerance must be rejected")
	}
}
