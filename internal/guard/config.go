package guard

import (
	"errors"
	"fmt"

	"chiller_guard/internal/models"
)

// DefaultApproachTolerance is how far below zero the approach may sit before
// a warning becomes a violation.
const DefaultApproachTolerance = 0.5 // °C

// Range bounds one channel. Outside [Min, Max] is a violation, outside
// [WarnMin, WarnMax] a warning.
type Range struct {
	Min     float64 `mapstructure:"min" json:"min"`
	Max     float64 `mapstructure:"max" json:"max"`
	WarnMin float64 `mapstructure:"warn_min" json:"warn_min"`
	WarnMax float64 `mapstructure:"warn_max" json:"warn_max"`
}

// RateLimit bounds the single-step change of one channel.
type RateLimit struct {
	Warn float64 `mapstructure:"warn" json:"warn"`
	Max  float64 `mapstructure:"max" json:"max"`
}

// Config holds every validation bound. Keys of Ranges and Rates are raw
// channel or derived metric names.
type Config struct {
	ApproachTolerance float64              `mapstructure:"approach_tolerance" json:"approach_tolerance"`
	Strict            bool                 `mapstructure:"strict" json:"strict"`
	Ranges            map[string]Range     `mapstructure:"ranges" json:"ranges"`
	Rates             map[string]RateLimit `mapstructure:"rates" json:"rates"`
}

var (
	ErrInvalidRange = errors.New("invalid range")
	ErrInvalidRate  = errors.New("invalid rate limit")
	ErrUnknownKey   = errors.New("unknown channel")
)

// DefaultConfig returns the stock sensor-fault bounds for a water-cooled
// centrifugal chiller.
func DefaultConfig() Config {
	return Config{
		ApproachTolerance: DefaultApproachTolerance,
		Ranges: map[string]Range{
			models.ChannelChwSupplyTemp: {Min: 0, Max: 25, WarnMin: 4, WarnMax: 12},
			models.ChannelChwReturnTemp: {Min: 0, Max: 30, WarnMin: 5, WarnMax: 20},
			models.ChannelCdwInletTemp:  {Min: 0, Max: 50, WarnMin: 18, WarnMax: 38},
			models.ChannelCdwOutletTemp: {Min: 0, Max: 60, WarnMin: 23, WarnMax: 45},
			models.ChannelAmbientTemp:   {Min: -40, Max: 60, WarnMin: -10, WarnMax: 50},
			models.ChannelVibrationRMS:  {Min: 0, Max: 50, WarnMin: 0, WarnMax: 8},
			models.ChannelVibrationFreq: {Min: 0, Max: 1000, WarnMin: 10, WarnMax: 200},
			models.ChannelCurrentR:      {Min: 0, Max: 2000, WarnMin: 0, WarnMax: 1200},
			models.ChannelCurrentY:      {Min: 0, Max: 2000, WarnMin: 0, WarnMax: 1200},
			models.ChannelCurrentB:      {Min: 0, Max: 2000, WarnMin: 0, WarnMax: 1200},
			models.ChannelPowerKW:       {Min: 0, Max: 5000, WarnMin: 0, WarnMax: 2000},
			models.ChannelLoadPercent:   {Min: 0, Max: 100, WarnMin: 0, WarnMax: 100},
			models.ChannelChwFlowGPM:    {Min: 0, Max: 20000, WarnMin: 0, WarnMax: 10000},
			models.ChannelRuntimeHours:  {Min: 0, Max: 1e6, WarnMin: 0, WarnMax: 1e6},
			models.MetricPhaseImbalance: {Min: 0, Max: 20, WarnMin: 0, WarnMax: 5},
			models.MetricKWPerTon:       {Min: 0.1, Max: 5, WarnMin: 0.35, WarnMax: 1.5},
			models.MetricDeltaT:         {Min: 0, Max: 25, WarnMin: 1.0, WarnMax: 12},
			models.MetricApproachTemp:   {Min: -50, Max: 20, WarnMin: -50, WarnMax: 6},
		},
		Rates: map[string]RateLimit{
			models.ChannelChwSupplyTemp: {Warn: 3, Max: 10},
			models.ChannelChwReturnTemp: {Warn: 3, Max: 10},
			models.ChannelCdwInletTemp:  {Warn: 6, Max: 15},
			models.ChannelCdwOutletTemp: {Warn: 6, Max: 15},
			models.ChannelVibrationRMS:  {Warn: 3, Max: 10},
			models.ChannelPowerKW:       {Warn: 200, Max: 800},
			models.ChannelLoadPercent:   {Warn: 40, Max: 90},
		},
	}
}

// Validate checks the bounds are self-consistent.
func (c Config) Validate() error {
	if c.ApproachTolerance < 0 {
		return fmt.Errorf("approach_tolerance %.3f: must be >= 0", c.ApproachTolerance)
	}
	for name, r := range c.Ranges {
		if !knownRangeKey(name) {
			return fmt.Errorf("ranges.%s: %w", name, ErrUnknownKey)
		}
		if r.Min > r.Max || r.WarnMin > r.WarnMax {
			return fmt.Errorf("ranges.%s: %w: min must not exceed max", name, ErrInvalidRange)
		}
		if r.WarnMin < r.Min || r.WarnMax > r.Max {
			return fmt.Errorf("ranges.%s: %w: warn band must lie inside [min, max]", name, ErrInvalidRange)
		}
	}
	for name, rl := range c.Rates {
		if !knownRawChannel(name) {
			return fmt.Errorf("rates.%s: %w", name, ErrUnknownKey)
		}
		if rl.Warn <= 0 || rl.Max < rl.Warn {
			return fmt.Errorf("rates.%s: %w: need 0 < warn <= max", name, ErrInvalidRate)
		}
	}
	return nil
}

// rawChannels is the evaluation order for raw range and rate rules.
var rawChannels = []string{
	models.ChannelChwSupplyTemp,
	models.ChannelChwReturnTemp,
	models.ChannelCdwInletTemp,
	models.ChannelCdwOutletTemp,
	models.ChannelAmbientTemp,
	models.ChannelRefrigerantSatTemp,
	models.ChannelVibrationRMS,
	models.ChannelVibrationFreq,
	models.ChannelRuntimeHours,
	models.ChannelCurrentR,
	models.ChannelCurrentY,
	models.ChannelCurrentB,
	models.ChannelPowerKW,
	models.ChannelLoadPercent,
	models.ChannelChwFlowGPM,
}

// derivedMetrics is the evaluation order for derived range rules.
var derivedMetrics = []string{
	models.MetricDeltaT,
	models.MetricKWPerTon,
	models.MetricApproachTemp,
	models.MetricPhaseImbalance,
	models.MetricCoolingTons,
	models.MetricCOP,
}

func knownRawChannel(name string) bool {
	for _, c := range rawChannels {
		if c == name {
			return true
		}
	}
	return false
}

func knownRangeKey(name string) bool {
	if knownRawChannel(name) {
		return true
	}
	for _, m := range derivedMetrics {
		if m == name {
			return true
		}
	}
	return false
}
