package health

import (
	"errors"
	"fmt"
	"math"

	"chiller_guard/internal/models"
)

// Direction fixes which way a metric improves. It is a property of the band
// table and never inferred from the numbers.
type Direction string

const (
	LowerBetter  Direction = "lower_better"
	HigherBetter Direction = "higher_better"
	Target       Direction = "target"
)

// Band is the normalization table of one metric. For Target, the thresholds
// are allowed deviations from Target.
type Band struct {
	Direction   Direction `mapstructure:"direction" json:"direction"`
	Excellent   float64   `mapstructure:"excellent" json:"excellent"`
	Good        float64   `mapstructure:"good" json:"good"`
	Fair        float64   `mapstructure:"fair" json:"fair"`
	Poor        float64   `mapstructure:"poor" json:"poor"`
	Target      float64   `mapstructure:"target" json:"target,omitempty"`
	Unit        string    `mapstructure:"unit" json:"unit"`
	Description string    `mapstructure:"description" json:"description"`
}

// Config is the weight map plus band tables.
type Config struct {
	Weights map[string]float64 `mapstructure:"weights" json:"weights"`
	Bands   map[string]Band    `mapstructure:"bands" json:"bands"`
}

const weightTolerance = 1e-6

var (
	ErrWeightSum     = errors.New("weights must sum to 1.0")
	ErrWeightValue   = errors.New("weight must be positive")
	ErrUnknownMetric = errors.New("unknown metric")
	ErrNoWeights     = errors.New("weight map is empty")
	ErrInvalidBand   = errors.New("invalid band")
)

// scoredMetrics is the canonical aggregation order.
var scoredMetrics = []string{
	models.ChannelVibrationRMS,
	models.MetricApproachTemp,
	models.MetricPhaseImbalance,
	models.MetricKWPerTon,
	models.MetricDeltaT,
	models.MetricCOP,
}

// ScoredMetrics lists every metric the engine can score, in aggregation order.
func ScoredMetrics() []string {
	return append([]string(nil), scoredMetrics...)
}

// DefaultWeights favours the failure modes that destroy equipment fastest.
func DefaultWeights() map[string]float64 {
	return map[string]float64{
		models.ChannelVibrationRMS:  0.35,
		models.MetricApproachTemp:   0.25,
		models.MetricPhaseImbalance: 0.20,
		models.MetricKWPerTon:       0.15,
		models.MetricDeltaT:         0.05,
	}
}

// DefaultBands returns the stock normalization tables.
func DefaultBands() map[string]Band {
	return map[string]Band{
		models.ChannelVibrationRMS: {
			Direction: LowerBetter, Excellent: 2.0, Good: 4.0, Fair: 7.0, Poor: 11.0,
			Unit: "mm/s", Description: "mechanical vibration level",
		},
		models.MetricApproachTemp: {
			Direction: LowerBetter, Excellent: 2.0, Good: 3.0, Fair: 4.5, Poor: 6.0,
			Unit: "°C", Description: "condenser heat transfer",
		},
		models.MetricPhaseImbalance: {
			Direction: LowerBetter, Excellent: 1.0, Good: 2.0, Fair: 3.5, Poor: 5.0,
			Unit: "%", Description: "electrical supply balance",
		},
		models.MetricKWPerTon: {
			Direction: LowerBetter, Excellent: 0.55, Good: 0.70, Fair: 0.85, Poor: 1.0,
			Unit: "kW/ton", Description: "energy efficiency",
		},
		models.MetricDeltaT: {
			Direction: Target, Target: 5.5, Excellent: 1.0, Good: 2.0, Fair: 3.5, Poor: 5.0,
			Unit: "°C", Description: "chilled water temperature differential",
		},
		models.MetricCOP: {
			Direction: HigherBetter, Excellent: 6.0, Good: 5.0, Fair: 4.0, Poor: 3.0,
			Description: "coefficient of performance",
		},
	}
}

// DefaultConfig returns the stock weights and bands.
func DefaultConfig() Config {
	return Config{Weights: DefaultWeights(), Bands: DefaultBands()}
}

// ValidateWeights fails on unknown keys, non-positive weights or a sum that is
// not 1.0 within tolerance. It never renormalizes.
func ValidateWeights(w map[string]float64) error {
	if len(w) == 0 {
		return ErrNoWeights
	}
	sum := 0.0
	for name, v := range w {
		if !knownMetric(name) {
			return fmt.Errorf("weight %q: %w", name, ErrUnknownMetric)
		}
		if !(v > 0) || math.IsInf(v, 0) {
			return fmt.Errorf("weight %q = %g: %w", name, v, ErrWeightValue)
		}
		sum += v
	}
	if math.Abs(sum-1) > weightTolerance {
		return fmt.Errorf("%w: got %.6f", ErrWeightSum, sum)
	}
	return nil
}

// Validate checks weights and that every band is ordered for its direction.
func (c Config) Validate() error {
	if err := ValidateWeights(c.Weights); err != nil {
		return err
	}
	for name, b := range c.Bands {
		if !knownMetric(name) {
			return fmt.Errorf("band %q: %w", name, ErrUnknownMetric)
		}
		if err := b.validate(); err != nil {
			return fmt.Errorf("band %q: %w", name, err)
		}
	}
	for name := range c.Weights {
		if _, ok := c.Bands[name]; !ok {
			return fmt.Errorf("weight %q has no band: %w", name, ErrInvalidBand)
		}
	}
	return nil
}

func (b Band) validate() error {
	switch b.Direction {
	case LowerBetter, Target:
		if !(0 < b.Excellent && b.Excellent < b.Good && b.Good < b.Fair && b.Fair < b.Poor) {
			return fmt.Errorf("%w: %s needs 0 < excellent < good < fair < poor", ErrInvalidBand, b.Direction)
		}
	case HigherBetter:
		if !(b.Excellent > b.Good && b.Good > b.Fair && b.Fair > b.Poor && b.Poor > 0) {
			return fmt.Errorf("%w: %s needs excellent > good > fair > poor > 0", ErrInvalidBand, b.Direction)
		}
	default:
		return fmt.Errorf("%w: direction %q", ErrInvalidBand, b.Direction)
	}
	return nil
}

func knownMetric(name string) bool {
	for _, m := range scoredMetrics {
		if m == name {
			return true
		}
	}
	return false
}
