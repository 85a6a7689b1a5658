package models

import "time"

// RawReading is one sample of chiller sensor channels. A nil channel means the
// sensor is not installed or dropped out for this sample; it is never zero.
type RawReading struct {
	AssetID   string    `json:"asset_id" yaml:"asset_id"`
	Timestamp time.Time `json:"time" yaml:"time"`

	// thermal, °C
	ChwSupplyTemp      *float64 `json:"chw_supply_temp,omitempty"`
	ChwReturnTemp      *float64 `json:"chw_return_temp,omitempty"`
	CdwInletTemp       *float64 `json:"cdw_inlet_temp,omitempty"`
	CdwOutletTemp      *float64 `json:"cdw_outlet_temp,omitempty"`
	AmbientTemp        *float64 `json:"ambient_temp,omitempty"`
	RefrigerantSatTemp *float64 `json:"refrigerant_sat_temp,omitempty"` // condenser saturation, from pressure

	// mechanical
	VibrationRMS    *float64 `json:"vibration_rms,omitempty"`  // mm/s
	VibrationFreq   *float64 `json:"vibration_freq,omitempty"` // Hz
	RuntimeHours    *float64 `json:"runtime_hours,omitempty"`
	StartStopCycles *int     `json:"start_stop_cycles,omitempty"`

	// electrical
	CurrentR *float64 `json:"current_r,omitempty"` // A
	CurrentY *float64 `json:"current_y,omitempty"` // A
	CurrentB *float64 `json:"current_b,omitempty"` // A
	PowerKW  *float64 `json:"power_kw,omitempty"`

	// operational
	LoadPercent   *float64 `json:"load_percent,omitempty"`
	ChwFlowGPM    *float64 `json:"chw_flow_gpm,omitempty"`
	OperatingMode *string  `json:"operating_mode,omitempty"`
	AlarmStatus   *bool    `json:"alarm_status,omitempty"`
}

// Numeric channel names. They double as JSON keys, rule channels and column names.
const (
	ChannelChwSupplyTemp      = "chw_supply_temp"
	ChannelChwReturnTemp      = "chw_return_temp"
	ChannelCdwInletTemp       = "cdw_inlet_temp"
	ChannelCdwOutletTemp      = "cdw_outlet_temp"
	ChannelAmbientTemp        = "ambient_temp"
	ChannelRefrigerantSatTemp = "refrigerant_sat_temp"
	ChannelVibrationRMS       = "vibration_rms"
	ChannelVibrationFreq      = "vibration_freq"
	ChannelRuntimeHours       = "runtime_hours"
	ChannelCurrentR           = "current_r"
	ChannelCurrentY           = "current_y"
	ChannelCurrentB           = "current_b"
	ChannelPowerKW            = "power_kw"
	ChannelLoadPercent        = "load_percent"
	ChannelChwFlowGPM         = "chw_flow_gpm"
)

// Channel returns the value of a numeric raw channel by name, or nil when the
// channel is absent or unknown.
func (r *RawReading) Channel(name string) *float64 {
	switch name {
	case ChannelChwSupplyTemp:
		return r.ChwSupplyTemp
	case ChannelChwReturnTemp:
		return r.ChwReturnTemp
	case ChannelCdwInletTemp:
		return r.CdwInletTemp
	case ChannelCdwOutletTemp:
		return r.CdwOutletTemp
	case ChannelAmbientTemp:
		return r.AmbientTemp
	case ChannelRefrigerantSatTemp:
		return r.RefrigerantSatTemp
	case ChannelVibrationRMS:
		return r.VibrationRMS
	case ChannelVibrationFreq:
		return r.VibrationFreq
	case ChannelRuntimeHours:
		return r.RuntimeHours
	case ChannelCurrentR:
		return r.CurrentR
	case ChannelCurrentY:
		return r.CurrentY
	case ChannelCurrentB:
		return r.CurrentB
	case ChannelPowerKW:
		return r.PowerKW
	case ChannelLoadPercent:
		return r.LoadPercent
	case ChannelChwFlowGPM:
		return r.ChwFlowGPM
	default:
		return nil
	}
}

// DerivedMetrics holds engineering metrics computed from a RawReading.
// Each field is nil when its inputs were missing or degenerate.
type DerivedMetrics struct {
	DeltaT         *float64 `json:"delta_t,omitempty"`         // °C
	KWPerTon       *float64 `json:"kw_per_ton,omitempty"`      // kW/ton
	ApproachTemp   *float64 `json:"approach_temp,omitempty"`   // °C
	PhaseImbalance *float64 `json:"phase_imbalance,omitempty"` // %
	CoolingTons    *float64 `json:"cooling_tons,omitempty"`
	COP            *float64 `json:"cop,omitempty"`
}

// Derived metric names.
const (
	MetricDeltaT         = "delta_t"
	MetricKWPerTon       = "kw_per_ton"
	MetricApproachTemp   = "approach_temp"
	MetricPhaseImbalance = "phase_imbalance"
	MetricCoolingTons    = "cooling_tons"
	MetricCOP            = "cop"
)

// Metric returns a derived metric by name, or nil.
func (d *DerivedMetrics) Metric(name string) *float64 {
	switch name {
	case MetricDeltaT:
		return d.DeltaT
	case MetricKWPerTon:
		return d.KWPerTon
	case MetricApproachTemp:
		return d.ApproachTemp
	case MetricPhaseImbalance:
		return d.PhaseImbalance
	case MetricCoolingTons:
		return d.CoolingTons
	case MetricCOP:
		return d.COP
	default:
		return nil
	}
}

// Float returns a pointer to v. Handy for building readings in code and tests.
func Float(v float64) *float64 { return &v }

// ReadingRecord is what the ingestion path persists: the raw sample, its derived
// metrics and the outcome of validation and scoring.
type ReadingRecord struct {
	RawReading
	Derived          DerivedMetrics   `json:"derived"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	HealthScore      *float64         `json:"health_score,omitempty"`
	HealthCategory   HealthCategory   `json:"health_category,omitempty"`
}
