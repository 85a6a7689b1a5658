package scenario

import (
	"time"

	"chiller_guard/internal/models"
)

var library = []models.ScenarioInfo{
	{
		Type:            models.FailureHealthy,
		Name:            "Healthy Operation",
		Description:     "Normal operation; every metric fluctuates narrowly around the baseline",
		DefaultDays:     30,
		AffectedMetrics: []string{},
	},
	{
		Type:        models.FailureTubeFouling,
		Name:        "Condenser Tube Fouling",
		Description: "Scale and biofilm build up in the condenser tubes and cut heat transfer",
		DefaultDays: 60,
		AffectedMetrics: []string{
			models.MetricApproachTemp, models.MetricKWPerTon,
			models.ChannelCdwOutletTemp, models.ChannelPowerKW,
		},
	},
	{
		Type:        models.FailureBearingWear,
		Name:        "Compressor Bearing Wear",
		Description: "Progressive bearing degradation; vibration accelerates in the final third",
		DefaultDays: 45,
		AffectedMetrics: []string{
			models.ChannelVibrationRMS, models.ChannelVibrationFreq,
			models.ChannelPowerKW, models.ChannelCurrentR, models.ChannelCurrentY, models.ChannelCurrentB,
		},
	},
	{
		Type:        models.FailureRefrigerantLeak,
		Name:        "Refrigerant Leak",
		Description: "Slow loss of charge; cooling capacity drops and kW/ton climbs",
		DefaultDays: 30,
		AffectedMetrics: []string{
			models.MetricDeltaT, models.MetricCoolingTons, models.MetricKWPerTon,
			models.MetricApproachTemp, models.ChannelLoadPercent,
		},
	},
	{
		Type:        models.FailureElectricalIssue,
		Name:        "Electrical Phase Imbalance",
		Description: "A loose or corroded connection unbalances the phase currents",
		DefaultDays: 14,
		AffectedMetrics: []string{
			models.MetricPhaseImbalance,
			models.ChannelCurrentR, models.ChannelCurrentY, models.ChannelCurrentB,
		},
	},
	{
		Type:            models.FailurePostMaintenanceMisalignment,
		Name:            "Post-Maintenance Misalignment",
		Description:     "Shaft misalignment introduced during maintenance; vibration steps up and stays high",
		DefaultDays:     7,
		AffectedMetrics: []string{models.ChannelVibrationRMS, models.ChannelVibrationFreq},
	},
	{
		Type:            models.FailureLowLoadInefficiency,
		Name:            "Low Load Inefficiency",
		Description:     "Extended part-load operation with poor efficiency; not a fault",
		DefaultDays:     14,
		AffectedMetrics: []string{models.ChannelLoadPercent, models.MetricKWPerTon, models.ChannelPowerKW},
	},
}

// Library lists every supported failure type.
func Library() []models.ScenarioInfo {
	out := make([]models.ScenarioInfo, len(library))
	copy(out, library)
	return out
}

// Lookup returns the library entry of a failure type.
func Lookup(t models.FailureType) (models.ScenarioInfo, bool) {
	for _, info := range library {
		if info.Type == t {
			return info, true
		}
	}
	return models.ScenarioInfo{}, false
}

// AffectedMetrics is the fixed set of channels and metrics a failure type
// drifts.
func AffectedMetrics(t models.FailureType) []string {
	info, ok := Lookup(t)
	if !ok {
		return nil
	}
	return append([]string(nil), info.AffectedMetrics...)
}

// DefaultDuration is the library duration of a failure type, or zero.
func DefaultDuration(t models.FailureType) time.Duration {
	info, ok := Lookup(t)
	if !ok {
		return 0
	}
	return time.Duration(info.DefaultDays) * 24 * time.Hour
}
