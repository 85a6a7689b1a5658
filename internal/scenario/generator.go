// Package scenario synthesizes multi-day chiller sensor trajectories for known
// degradation modes. Output is a pure function of the spec and the seed.
package scenario

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"math/rand/v2"
	"time"

	"chiller_guard/internal/models"
)

const (
	DefaultInterval = 5 * time.Minute
	DefaultAssetID  = "CH-001"

	// MaxReadings bounds one sequence: 90 days at 10 s.
	MaxReadings = 777_600
)

// DefaultStart anchors generated timestamps when the spec leaves Start zero.
var DefaultStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

var (
	ErrUnknownType      = errors.New("unknown failure type")
	ErrNegativeDuration = errors.New("duration must not be negative")
	ErrNegativeInterval = errors.New("interval must not be negative")
	ErrTooManyReadings  = errors.New("too many readings")
	ErrInvalidBaseline  = errors.New("invalid baseline")
)

// DefaultBaseline is a 550-ton water-cooled centrifugal chiller at design load.
func DefaultBaseline() models.Baseline {
	return models.Baseline{
		ChwSupplyTemp: 6.7,
		ChwReturnTemp: 12.2,
		CdwInletTemp:  29.4,
		CdwOutletTemp: 35.0,
		AmbientTemp:   25.0,
		ApproachTemp:  2.5,
		VibrationRMS:  2.0,
		VibrationFreq: 60.0,
		PhaseCurrent:  200.0,
		PowerKW:       280.0,
		LoadPercent:   80.0,
		ChwFlowGPM:    2400.0,
		RuntimeHours:  15000.0,
	}
}

// Generator builds scenario sequences around a baseline.
type Generator struct {
	baseline models.Baseline
}

func NewGenerator(b models.Baseline) *Generator {
	return &Generator{baseline: b}
}

// Generate validates spec and returns a lazily evaluated sequence. A zero
// duration yields an empty sequence.
func (g *Generator) Generate(spec models.ScenarioSpec, seed int64) (Sequence, error) {
	if spec.Duration < 0 {
		return Sequence{}, ErrNegativeDuration
	}
	if spec.Interval < 0 {
		return Sequence{}, ErrNegativeInterval
	}
	if spec.Interval == 0 {
		spec.Interval = DefaultInterval
	}
	if spec.Start.IsZero() {
		spec.Start = DefaultStart
	}
	if spec.AssetID == "" {
		spec.AssetID = DefaultAssetID
	}
	base := g.baseline
	if spec.Baseline != nil {
		base = *spec.Baseline
	}
	if err := ValidateBaseline(base); err != nil {
		return Sequence{}, err
	}

	d, err := driftFor(spec.Type, spec.Duration)
	if err != nil {
		return Sequence{}, err
	}

	n := ReadingCount(spec.Duration, spec.Interval)
	if n > MaxReadings {
		return Sequence{}, fmt.Errorf("%w: %d > %d", ErrTooManyReadings, n, MaxReadings)
	}
	return Sequence{spec: spec, base: base, drift: d, seed: seed, n: int(n)}, nil
}

// ReadingCount is the number of samples in [0, duration) at interval, that is
// ceil(duration / interval). It does not overflow for any positive interval.
func ReadingCount(duration, interval time.Duration) int64 {
	if duration <= 0 || interval <= 0 {
		return 0
	}
	n := int64(duration / interval)
	if duration%interval != 0 {
		n++
	}
	return n
}

// ValidateBaseline rejects operating points the generator cannot scale from:
// every divisor must be positive and both water loops must warm up.
func ValidateBaseline(b models.Baseline) error {
	for name, v := range map[string]float64{
		"chw_supply_temp": b.ChwSupplyTemp,
		"chw_return_temp": b.ChwReturnTemp,
		"cdw_inlet_temp":  b.CdwInletTemp,
		"cdw_outlet_temp": b.CdwOutletTemp,
		"ambient_temp":    b.AmbientTemp,
		"approach_temp":   b.ApproachTemp,
		"vibration_rms":   b.VibrationRMS,
		"vibration_freq":  b.VibrationFreq,
		"phase_current":   b.PhaseCurrent,
		"power_kw":        b.PowerKW,
		"load_percent":    b.LoadPercent,
		"chw_flow_gpm":    b.ChwFlowGPM,
		"runtime_hours":   b.RuntimeHours,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidBaseline, name)
		}
	}
	switch {
	case b.PowerKW <= 0:
		return fmt.Errorf("%w: power_kw must be > 0", ErrInvalidBaseline)
	case b.PhaseCurrent <= 0:
		return fmt.Errorf("%w: phase_current must be > 0", ErrInvalidBaseline)
	case b.ChwFlowGPM <= 0:
		return fmt.Errorf("%w: chw_flow_gpm must be > 0", ErrInvalidBaseline)
	case b.LoadPercent <= 0 || b.LoadPercent > 100:
		return fmt.Errorf("%w: load_percent must be within (0, 100]", ErrInvalidBaseline)
	case b.ChwReturnTemp <= b.ChwSupplyTemp:
		return fmt.Errorf("%w: chw_return_temp must exceed chw_supply_temp", ErrInvalidBaseline)
	case b.CdwOutletTemp <= b.CdwInletTemp:
		return fmt.Errorf("%w: cdw_outlet_temp must exceed cdw_inlet_temp", ErrInvalidBaseline)
	case b.VibrationRMS < 0 || b.VibrationFreq < 0 || b.RuntimeHours < 0 || b.ApproachTemp < 0:
		return fmt.Errorf("%w: vibration, runtime and approach must not be negative", ErrInvalidBaseline)
	}
	return nil
}

// Sequence is finite and restartable. Every element is computed from
// (spec, index, seed) alone, so At can be called in any order.
type Sequence struct {
	spec  models.ScenarioSpec
	base  models.Baseline
	drift drift
	seed  int64
	n     int
}

func (s Sequence) Len() int { return s.n }

// Spec returns the normalized spec the sequence was built from.
func (s Sequence) Spec() models.ScenarioSpec { return s.spec }

// At returns the i-th reading. It panics when i is out of range.
func (s Sequence) At(i int) models.RawReading {
	if i < 0 || i >= s.n {
		panic(fmt.Sprintf("scenario: index %d out of range [0, %d)", i, s.n))
	}
	return s.reading(i)
}

// All yields the readings in time order.
func (s Sequence) All() iter.Seq[models.RawReading] {
	return func(yield func(models.RawReading) bool) {
		for i := 0; i < s.n; i++ {
			if !yield(s.reading(i)) {
				return
			}
		}
	}
}

// Collect materializes the whole sequence.
func (s Sequence) Collect() []models.RawReading {
	out := make([]models.RawReading, 0, s.n)
	for r := range s.All() {
		out = append(out, r)
	}
	return out
}

func (s Sequence) reading(i int) models.RawReading {
	rng := rand.New(rand.NewPCG(uint64(s.seed), uint64(i)))
	elapsed := time.Duration(i) * s.spec.Interval
	ts := s.spec.Start.Add(elapsed)
	progress := float64(elapsed) / float64(s.spec.Duration)

	load := diurnalLoad(rng, ts.Hour())
	if ls, ok := s.drift.(loadShaper); ok {
		load = ls.shapeLoad(progress, elapsed, load)
	}
	load = clamp(load, 0.1, 1.0)

	smp := baseSample(rng, s.base, load, ts.Hour(), days(elapsed))
	s.drift.apply(progress, elapsed, &smp)

	return toReading(s.spec.AssetID, ts, smp)
}

// diurnalLoad is a commercial building profile: low overnight, ramping in the
// morning, peaking over lunch.
func diurnalLoad(rng *rand.Rand, hour int) float64 {
	var base, lo, hi float64
	switch {
	case hour < 6:
		base, lo, hi = 0.30, 0, 0.10
	case hour < 9:
		base, lo, hi = 0.35+0.40*float64(hour-6)/3, -0.05, 0.08
	case hour < 12:
		base, lo, hi = 0.75+0.05*float64(hour-9), -0.05, 0.10
	case hour < 14:
		base, lo, hi = 0.85, -0.05, 0.15
	case hour < 18:
		base, lo, hi = 0.80, -0.08, 0.12
	case hour < 21:
		base, lo, hi = 0.70-0.25*float64(hour-18)/3, -0.05, 0.05
	default:
		base, lo, hi = 0.35, 0, 0.08
	}
	return base + lo + rng.Float64()*(hi-lo)
}

// partLoadEfficiency is worst at very low load and best around 50-80 %.
func partLoadEfficiency(load float64) float64 {
	switch {
	case load < 0.3:
		return 0.75
	case load < 0.5:
		return 0.85
	case load < 0.8:
		return 0.95
	default:
		return 0.90
	}
}

func baseSample(rng *rand.Rand, b models.Baseline, load float64, hour int, day float64) sample {
	designLoad := b.LoadPercent / 100
	diurnal := math.Sin(float64(hour-6) * math.Pi / 12)

	power := b.PowerKW * (load / designLoad) / partLoadEfficiency(load)
	power = math.Max(10, power+noise(rng, power*0.02))

	supply := b.ChwSupplyTemp + noise(rng, 0.15)
	// constant-flow plant: delta-T tracks load
	dt := (b.ChwReturnTemp-b.ChwSupplyTemp)*(load/designLoad)*0.95 + noise(rng, 0.2)

	inlet := b.CdwInletTemp + 2.5*diurnal + noise(rng, 0.5)
	rise := (b.CdwOutletTemp-b.CdwInletTemp)*(0.6+0.5*load) + noise(rng, 0.3)

	ambient := b.AmbientTemp + 6*diurnal + 2*math.Sin(day*0.3) + noise(rng, 1.0)

	vib := math.Max(0.5, b.VibrationRMS*(0.9+0.2*load)+noise(rng, 0.2))
	freq := b.VibrationFreq + noise(rng, 0.3)

	current := b.PhaseCurrent * power / b.PowerKW
	ir := current * (1 + noise(rng, 0.008))
	iy := current * (1 + noise(rng, 0.008))
	ib := current * (1 + noise(rng, 0.008))

	return sample{
		load:      load,
		chwSupply: supply,
		chwReturn: supply + dt,
		cdwInlet:  inlet,
		cdwOutlet: inlet + rise,
		ambient:   ambient,
		approach:  b.ApproachTemp + noise(rng, 0.1),
		vibRMS:    vib,
		vibFreq:   freq,
		ir:        ir,
		iy:        iy,
		ib:        ib,
		power:     power,
		flow:      b.ChwFlowGPM + noise(rng, 10),
		runtime:   b.RuntimeHours + day*12 + rng.Float64()*0.5,
		cycles:    1 + rng.IntN(4),
	}
}

func toReading(assetID string, ts time.Time, s sample) models.RawReading {
	mode := "AUTO"
	alarm := false
	cycles := s.cycles
	return models.RawReading{
		AssetID:            assetID,
		Timestamp:          ts,
		ChwSupplyTemp:      round2(s.chwSupply),
		ChwReturnTemp:      round2(s.chwReturn),
		CdwInletTemp:       round2(s.cdwInlet),
		CdwOutletTemp:      round2(s.cdwOutlet),
		AmbientTemp:        round2(s.ambient),
		RefrigerantSatTemp: round2(s.cdwOutlet + s.approach),
		VibrationRMS:       round2(s.vibRMS),
		VibrationFreq:      round2(s.vibFreq),
		RuntimeHours:       round2(s.runtime),
		StartStopCycles:    &cycles,
		CurrentR:           round2(s.ir),
		CurrentY:           round2(s.iy),
		CurrentB:           round2(s.ib),
		PowerKW:            round2(s.power),
		LoadPercent:        round2(s.load * 100),
		ChwFlowGPM:         round2(s.flow),
		OperatingMode:      &mode,
		AlarmStatus:        &alarm,
	}
}

// noise is Gaussian with the tails cut at 3 sigma.
func noise(rng *rand.Rand, sigma float64) float64 {
	return clamp(rng.NormFloat64(), -3, 3) * sigma
}

func clamp(v, lo, hi float64) float64 { return math.Max(lo, math.Min(hi, v)) }

func round2(v float64) *float64 {
	r := math.Round(v*100) / 100
	return &r
}
