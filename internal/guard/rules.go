package guard

import (
	"fmt"
	"math"

	"chiller_guard/internal/models"
)

// Rule ids that are not derived from a channel name.
const (
	RuleChwThermalDirection       = "chw_thermal_direction"
	RuleCdwThermalDirection       = "cdw_thermal_direction"
	RuleApproachNonNegative       = "approach_non_negative"
	RulePowerLoadConsistency      = "power_load_consistency"
	RulePowerVibrationConsistency = "power_vibration_consistency"
)

// Operational consistency thresholds.
const (
	idleLoadPercent  = 10.0
	idleVibrationRMS = 5.0
)

// Input is everything a rule may look at. Derived is never nil.
type Input struct {
	Reading  *models.RawReading
	Derived  *models.DerivedMetrics
	Previous *models.RawReading
}

// Rule is a pure check. It returns the finding and true when it fires.
type Rule interface {
	ID() string
	Check(in Input) (models.Issue, bool)
}

// RangeRuleID names the range rule of a channel or derived metric.
func RangeRuleID(channel string) string { return channel + "_range" }

// RateRuleID names the rate-of-change rule of a channel.
func RateRuleID(channel string) string { return channel + "_rate" }

// directionRule fires when hot <= cold, i.e. the water did not pick up or
// reject heat across the exchanger.
type directionRule struct {
	id        string
	hot, cold string
	hint      string
}

func (r directionRule) ID() string { return r.id }

func (r directionRule) Check(in Input) (models.Issue, bool) {
	hot, cold := in.Reading.Channel(r.hot), in.Reading.Channel(r.cold)
	if hot == nil || cold == nil || *hot > *cold {
		return models.Issue{}, false
	}
	return models.Issue{
		RuleID:   r.id,
		Severity: models.SeverityViolation,
		Channel:  r.hot,
		Value:    hot,
		Message:  fmt.Sprintf("%s %.2f must exceed %s %.2f", r.hot, *hot, r.cold, *cold),
		Hint:     r.hint,
	}, true
}

type approachRule struct {
	tolerance float64
}

func (approachRule) ID() string { return RuleApproachNonNegative }

func (r approachRule) Check(in Input) (models.Issue, bool) {
	a := in.Derived.ApproachTemp
	if a == nil || *a >= 0 {
		return models.Issue{}, false
	}
	is := models.Issue{
		RuleID:  RuleApproachNonNegative,
		Channel: models.MetricApproachTemp,
		Value:   a,
		Hint:    "check refrigerant saturation and condenser-water outlet sensors",
	}
	if *a < -r.tolerance {
		is.Severity = models.SeverityViolation
		is.Message = fmt.Sprintf("approach temperature %.2f is below -%.2f", *a, r.tolerance)
	} else {
		is.Severity = models.SeverityWarning
		is.Message = fmt.Sprintf("approach temperature %.2f is slightly negative", *a)
	}
	return is, true
}

type rangeRule struct {
	key     string
	derived bool
	bounds  Range
}

func (r rangeRule) ID() string { return RangeRuleID(r.key) }

func (r rangeRule) Check(in Input) (models.Issue, bool) {
	var v *float64
	if r.derived {
		v = in.Derived.Metric(r.key)
	} else {
		v = in.Reading.Channel(r.key)
	}
	if v == nil {
		return models.Issue{}, false
	}
	b := r.bounds
	is := models.Issue{RuleID: r.ID(), Channel: r.key, Value: v}
	switch {
	case math.IsNaN(*v) || *v < b.Min || *v > b.Max:
		is.Severity = models.SeverityViolation
		is.Message = fmt.Sprintf("%s %.2f outside sane range [%g, %g]", r.key, *v, b.Min, b.Max)
		is.Hint = "possible sensor fault; check wiring and calibration"
	case *v < b.WarnMin || *v > b.WarnMax:
		is.Severity = models.SeverityWarning
		is.Message = fmt.Sprintf("%s %.2f outside normal band [%g, %g]", r.key, *v, b.WarnMin, b.WarnMax)
	default:
		return models.Issue{}, false
	}
	return is, true
}

// consistencyRule fires when a running signal is present with zero power.
type consistencyRule struct {
	id        string
	channel   string
	threshold float64
}

func (r consistencyRule) ID() string { return r.id }

func (r consistencyRule) Check(in Input) (models.Issue, bool) {
	p, v := in.Reading.PowerKW, in.Reading.Channel(r.channel)
	if p == nil || v == nil || *p != 0 || *v <= r.threshold {
		return models.Issue{}, false
	}
	return models.Issue{
		RuleID:   r.id,
		Severity: models.SeverityWarning,
		Channel:  models.ChannelPowerKW,
		Value:    p,
		Message:  fmt.Sprintf("power is 0 while %s is %.2f", r.channel, *v),
		Hint:     "check power meter",
	}, true
}

type rateRule struct {
	channel string
	limit   RateLimit
}

func (r rateRule) ID() string { return RateRuleID(r.channel) }

func (r rateRule) Check(in Input) (models.Issue, bool) {
	if in.Previous == nil {
		return models.Issue{}, false
	}
	cur, prev := in.Reading.Channel(r.channel), in.Previous.Channel(r.channel)
	if cur == nil || prev == nil {
		return models.Issue{}, false
	}
	step := math.Abs(*cur - *prev)
	is := models.Issue{RuleID: r.ID(), Channel: r.channel, Value: cur}
	switch {
	case step > r.limit.Max:
		is.Severity = models.SeverityViolation
		is.Message = fmt.Sprintf("%s changed by %.2f in one step (max %g)", r.channel, step, r.limit.Max)
		is.Hint = "implausible jump; likely a sensor glitch"
	case step > r.limit.Warn:
		is.Severity = models.SeverityWarning
		is.Message = fmt.Sprintf("%s changed by %.2f in one step (warn %g)", r.channel, step, r.limit.Warn)
		is.Hint = "possible sensor glitch"
	default:
		return models.Issue{}, false
	}
	return is, true
}

// buildRules lays the rules out in evaluation order.
func buildRules(c Config) []Rule {
	rules := []Rule{
		directionRule{
			id:   RuleChwThermalDirection,
			hot:  models.ChannelChwReturnTemp,
			cold: models.ChannelChwSupplyTemp,
			hint: "chilled-water return must be warmer than supply; check sensor placement or swapped probes",
		},
		directionRule{
			id:   RuleCdwThermalDirection,
			hot:  models.ChannelCdwOutletTemp,
			cold: models.ChannelCdwInletTemp,
			hint: "condenser-water outlet must be warmer than inlet; check sensor placement or swapped probes",
		},
		approachRule{tolerance: c.ApproachTolerance},
	}

	for _, ch := range rawChannels {
		if b, ok := c.Ranges[ch]; ok {
			rules = append(rules, rangeRule{key: ch, bounds: b})
		}
	}
	for _, m := range derivedMetrics {
		if b, ok := c.Ranges[m]; ok {
			rules = append(rules, rangeRule{key: m, derived: true, bounds: b})
		}
	}

	rules = append(rules,
		consistencyRule{id: RulePowerLoadConsistency, channel: models.ChannelLoadPercent, threshold: idleLoadPercent},
		consistencyRule{id: RulePowerVibrationConsistency, channel: models.ChannelVibrationRMS, threshold: idleVibrationRMS},
	)

	for _, ch := range rawChannels {
		if l, ok := c.Rates[ch]; ok {
			rules = append(rules, rateRule{channel: ch, limit: l})
		}
	}
	return rules
}
