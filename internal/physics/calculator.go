// Package physics derives chiller engineering metrics from raw sensor channels.
//
// Every metric is computed only when its inputs are present and non-degenerate.
// Otherwise the metric is left nil; partial sensor failure is normal and must
// not stop the stages downstream.
package physics

import (
	"math"

	"chiller_guard/internal/models"
)

// Conversion factors.
const (
	GPMFactor      = 500.0   // GPM x ΔT -> BTU/hr (8.33 lb/gal x 60 min/hr x 1.0 BTU/lb·°)
	BTUPerTonHour  = 12000.0 // BTU/hr per ton of refrigeration
	KWPerTonFactor = 3.517   // kW of cooling per ton
)

// DefaultSaturationOffset approximates condensing temperature as
// cdw_outlet + offset when no condenser pressure transducer is fitted.
const DefaultSaturationOffset = 2.5 // °C

// Constants tunes the approximations used by the calculator.
type Constants struct {
	// SaturationOffset is added to the condenser-water outlet temperature to
	// estimate refrigerant condensing temperature. An approximation, not a
	// refrigerant property lookup.
	SaturationOffset float64 `mapstructure:"saturation_offset"`
}

// DefaultConstants returns the stock approximation constants.
func DefaultConstants() Constants {
	return Constants{SaturationOffset: DefaultSaturationOffset}
}

// Calculator is stateless; the zero value uses a zero saturation offset, so
// prefer NewCalculator.
type Calculator struct {
	c Constants
}

// NewCalculator returns a calculator using the given constants.
func NewCalculator(c Constants) *Calculator {
	return &Calculator{c: c}
}

// Derive computes every derived metric it has inputs for.
func (calc *Calculator) Derive(r models.RawReading) models.DerivedMetrics {
	var d models.DerivedMetrics

	d.DeltaT = DeltaT(r.ChwReturnTemp, r.ChwSupplyTemp)
	d.CoolingTons = CoolingTons(r.ChwFlowGPM, d.DeltaT)
	d.KWPerTon = KWPerTon(r.PowerKW, d.CoolingTons)
	d.ApproachTemp = calc.ApproachTemp(r.CdwOutletTemp, r.RefrigerantSatTemp)
	d.PhaseImbalance = PhaseImbalance(r.CurrentR, r.CurrentY, r.CurrentB)
	d.COP = COP(d.CoolingTons, r.PowerKW)

	return d
}

// DeltaT is chilled-water return minus supply.
func DeltaT(chwReturn, chwSupply *float64) *float64 {
	if chwReturn == nil || chwSupply == nil {
		return nil
	}
	return finite(*chwReturn - *chwSupply)
}

// CoolingTons = flow x ΔT x 500 / 12000. Needs ΔT > 0 and flow > 0.
func CoolingTons(flowGPM, deltaT *float64) *float64 {
	if flowGPM == nil || deltaT == nil || *flowGPM <= 0 || *deltaT <= 0 {
		return nil
	}
	return finite(*flowGPM * *deltaT * GPMFactor / BTUPerTonHour)
}

// KWPerTon = power / cooling tons. Needs tons > 0.
func KWPerTon(powerKW, tons *float64) *float64 {
	if powerKW == nil || tons == nil || *tons <= 0 {
		return nil
	}
	return finite(*powerKW / *tons)
}

// ApproachTemp is condensing temperature minus condenser-water outlet.
// A measured saturation temperature wins over the offset approximation.
func (calc *Calculator) ApproachTemp(cdwOutlet, satTemp *float64) *float64 {
	if cdwOutlet == nil {
		return nil
	}
	condensing := *cdwOutlet + calc.c.SaturationOffset
	if satTemp != nil {
		condensing = *satTemp
	}
	return finite(condensing - *cdwOutlet)
}

// PhaseImbalance is the largest phase deviation from the mean current, as a
// percentage of the mean. Needs all three phases and a positive mean.
func PhaseImbalance(ir, iy, ib *float64) *float64 {
	if ir == nil || iy == nil || ib == nil {
		return nil
	}
	avg := (*ir + *iy + *ib) / 3
	if avg <= 0 {
		return nil
	}
	dev := math.Max(math.Abs(*ir-avg), math.Max(math.Abs(*iy-avg), math.Abs(*ib-avg)))
	return finite(dev / avg * 100)
}

// COP = tons x 3.517 / power. Needs power > 0.
func COP(tons, powerKW *float64) *float64 {
	if tons == nil || powerKW == nil || *powerKW <= 0 {
		return nil
	}
	return finite(*tons * KWPerTonFactor / *powerKW)
}

// finite drops NaN and Inf, which only come from garbage inputs.
func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
