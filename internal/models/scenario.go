package models

import "time"

// FailureType names a simulated degradation mode.
type FailureType string

const (
	FailureHealthy                     FailureType = "healthy"
	FailureTubeFouling                 FailureType = "tube_fouling"
	FailureBearingWear                 FailureType = "bearing_wear"
	FailureRefrigerantLeak             FailureType = "refrigerant_leak"
	FailureElectricalIssue             FailureType = "electrical_issue"
	FailurePostMaintenanceMisalignment FailureType = "post_maintenance_misalignment"
	FailureLowLoadInefficiency         FailureType = "low_load_inefficiency"
)

// Baseline is the nominal operating point of a healthy chiller at design load.
type Baseline struct {
	ChwSupplyTemp float64 `json:"chw_supply_temp" yaml:"chw_supply_temp"`
	ChwReturnTemp float64 `json:"chw_return_temp" yaml:"chw_return_temp"`
	CdwInletTemp  float64 `json:"cdw_inlet_temp" yaml:"cdw_inlet_temp"`
	CdwOutletTemp float64 `json:"cdw_outlet_temp" yaml:"cdw_outlet_temp"`
	AmbientTemp   float64 `json:"ambient_temp" yaml:"ambient_temp"`
	ApproachTemp  float64 `json:"approach_temp" yaml:"approach_temp"`
	VibrationRMS  float64 `json:"vibration_rms" yaml:"vibration_rms"`
	VibrationFreq float64 `json:"vibration_freq" yaml:"vibration_freq"`
	PhaseCurrent  float64 `json:"phase_current" yaml:"phase_current"`
	PowerKW       float64 `json:"power_kw" yaml:"power_kw"`
	LoadPercent   float64 `json:"load_percent" yaml:"load_percent"`
	ChwFlowGPM    float64 `json:"chw_flow_gpm" yaml:"chw_flow_gpm"`
	RuntimeHours  float64 `json:"runtime_hours" yaml:"runtime_hours"`
}

// ScenarioSpec drives the scenario generator. It is configuration, not state.
type ScenarioSpec struct {
	Type     FailureType   `json:"type" yaml:"type"`
	AssetID  string        `json:"asset_id" yaml:"asset_id"`
	Start    time.Time     `json:"start" yaml:"start"`
	Duration time.Duration `json:"duration" yaml:"duration"`
	Interval time.Duration `json:"interval" yaml:"interval"`
	Baseline *Baseline     `json:"baseline,omitempty" yaml:"baseline,omitempty"`
}

// ScenarioInfo describes a library entry.
type ScenarioInfo struct {
	Type            FailureType `json:"type"`
	Name            string      `json:"name"`
	Description     string      `json:"description"`
	DefaultDays     int         `json:"default_duration_days"`
	AffectedMetrics []string    `json:"affected_metrics"`
}
