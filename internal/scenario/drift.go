package scenario

import (
	"fmt"
	"math"
	"time"

	"chiller_guard/internal/models"
)

// sample is one reading before rounding. Drifts edit it in place.
type sample struct {
	load float64 // fraction 0..1

	chwSupply, chwReturn float64
	cdwInlet, cdwOutlet  float64
	ambient              float64
	approach             float64 // added to cdwOutlet to get the saturation temperature
	vibRMS, vibFreq      float64
	ir, iy, ib           float64
	power                float64
	flow                 float64
	runtime              float64
	cycles               int
}

// drift is one failure mode. progress runs from 0 at the start of the
// scenario towards 1 at its end.
type drift interface {
	apply(progress float64, elapsed time.Duration, s *sample)
}

// loadShaper is implemented by drifts that override the diurnal load profile.
type loadShaper interface {
	shapeLoad(progress float64, elapsed time.Duration, load float64) float64
}

func days(elapsed time.Duration) float64 { return elapsed.Hours() / 24 }

type healthy struct{}

func (healthy) apply(float64, time.Duration, *sample) {}

// tubeFouling: scale in the condenser tubes cuts heat transfer, so the
// approach opens up and the compressor works harder for the same load.
type tubeFouling struct {
	approachRise float64
	exponent     float64
	outletRise   float64
	powerRise    float64
}

func (d tubeFouling) apply(p float64, _ time.Duration, s *sample) {
	s.approach += d.approachRise * math.Pow(p, d.exponent)
	s.cdwOutlet += d.outletRise * p
	s.power *= 1 + d.powerRise*p
}

// bearingWear: slow linear growth, then a steep quadratic knee in the final
// third as the race spalls.
type bearingWear struct {
	linear   float64
	knee     float64 // progress at which wear accelerates
	kneeRise float64 // extra rms reached at progress 1
}

func (d bearingWear) apply(p float64, _ time.Duration, s *sample) {
	late := math.Max(0, (p-d.knee)/(1-d.knee))
	s.vibRMS += d.linear*p + d.kneeRise*late*late
	if p > 0.5 {
		s.vibFreq *= 1 + 0.3*(p-0.5)
	}
	if p > 0.6 {
		f := 1 + 0.03*(p-0.6)/0.4
		s.ir *= f
		s.iy *= f
		s.ib *= f
	}
	if p > 0.7 {
		s.power *= 1 + 0.05*(p-0.7)/0.3
	}
}

// refrigerantLeak: less charge means less capacity. Delta-T collapses while
// power holds, so kW/ton climbs.
type refrigerantLeak struct {
	deltaTDrop float64
	minDeltaT  float64
}

func (d refrigerantLeak) apply(p float64, _ time.Duration, s *sample) {
	dt := s.chwReturn - s.chwSupply
	s.chwReturn = s.chwSupply + math.Max(d.minDeltaT, dt-d.deltaTDrop*p)
	if p < 0.3 {
		s.approach -= 0.5 * p
	} else {
		s.approach += 0.8 * (p - 0.3)
	}
}

func (refrigerantLeak) shapeLoad(p float64, _ time.Duration, load float64) float64 {
	if p > 0.4 {
		load -= 0.15 * (p - 0.4) / 0.6
	}
	return load
}

// electricalIssue: a high-resistance joint on one phase shifts current
// between phases.
type electricalIssue struct {
	rRise, yDrop, bRise float64
}

func (d electricalIssue) apply(p float64, _ time.Duration, s *sample) {
	s.ir *= 1 + d.rRise*p
	s.iy *= 1 - d.yDrop*p
	s.ib *= 1 + d.bRise*p
}

// misalignment: a step in vibration at a single early instant, then slow
// creep as the coupling wears. Running at 2x shaft frequency is the tell.
type misalignment struct {
	at          time.Duration
	jump        float64
	creepPerDay float64
}

func (d misalignment) apply(_ float64, elapsed time.Duration, s *sample) {
	if elapsed < d.at {
		return
	}
	s.vibRMS += d.jump + d.creepPerDay*days(elapsed-d.at)
	s.vibFreq *= 2
}

// lowLoad is not a fault: long stretches at part load where fixed losses
// dominate the power draw.
type lowLoad struct {
	center, swing float64
	powerPenalty  float64
}

func (d lowLoad) apply(_ float64, _ time.Duration, s *sample) {
	s.power *= d.powerPenalty
}

func (d lowLoad) shapeLoad(_ float64, elapsed time.Duration, _ float64) float64 {
	return d.center + d.swing*math.Sin(days(elapsed)*0.5)
}

// driftFor returns the drift of a failure type. duration places the
// misalignment event.
func driftFor(t models.FailureType, duration time.Duration) (drift, error) {
	switch t {
	case models.FailureHealthy:
		return healthy{}, nil
	case models.FailureTubeFouling:
		return tubeFouling{approachRise: 4.0, exponent: 1.3, outletRise: 2.5, powerRise: 0.25}, nil
	case models.FailureBearingWear:
		return bearingWear{linear: 1.5, knee: 2.0 / 3.0, kneeRise: 6.5}, nil
	case models.FailureRefrigerantLeak:
		return refrigerantLeak{deltaTDrop: 2.5, minDeltaT: 1.5}, nil
	case models.FailureElectricalIssue:
		return electricalIssue{rRise: 0.10, yDrop: 0.06, bRise: 0.01}, nil
	case models.FailurePostMaintenanceMisalignment:
		return misalignment{at: duration / 10, jump: 5.0, creepPerDay: 0.4}, nil
	case models.FailureLowLoadInefficiency:
		return lowLoad{center: 0.25, swing: 0.10, powerPenalty: 1.4}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
}
