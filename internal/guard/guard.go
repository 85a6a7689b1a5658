// Package guard rejects physically impossible chiller readings before they are
// stored. Rules run exhaustively in a fixed order; the worst finding decides
// the status.
package guard

import (
	"fmt"

	"chiller_guard/internal/models"
)

// Guard is immutable after New and safe for concurrent use.
type Guard struct {
	rules  []Rule
	strict bool
}

// New validates cfg and builds the ordered rule list.
func New(cfg Config) (*Guard, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("guard config: %w", err)
	}
	return &Guard{rules: buildRules(cfg), strict: cfg.Strict}, nil
}

// Rules returns the rule ids in evaluation order.
func (g *Guard) Rules() []string {
	ids := make([]string, len(g.rules))
	for i, r := range g.rules {
		ids[i] = r.ID()
	}
	return ids
}

// Strict reports whether the configured default is strict mode.
func (g *Guard) Strict() bool { return g.strict }

// Validate runs every rule against the reading. previous is the asset's last
// accepted reading and may be nil; it is ignored when it belongs to another
// asset or is newer than the reading. strict, or the configured strict flag,
// promotes warnings to violations.
//
// A nil reading is a programming error and panics.
func (g *Guard) Validate(r *models.RawReading, d *models.DerivedMetrics, previous *models.RawReading, strict bool) models.ValidationResult {
	if r == nil {
		panic("guard: Validate called with nil reading")
	}
	if d == nil {
		d = &models.DerivedMetrics{}
	}
	if previous != nil && (previous.AssetID != r.AssetID || previous.Timestamp.After(r.Timestamp)) {
		previous = nil
	}
	strict = strict || g.strict

	in := Input{Reading: r, Derived: d, Previous: previous}
	issues := make([]models.Issue, 0, 4)
	worst := models.SeverityNone
	for _, rule := range g.rules {
		is, fired := rule.Check(in)
		if !fired {
			continue
		}
		if strict && is.Severity == models.SeverityWarning {
			is.Severity = models.SeverityViolation
			is.Message += " (strict)"
		}
		worst = max(worst, is.Severity)
		issues = append(issues, is)
	}

	return models.ValidationResult{Status: statusOf(worst), Issues: issues}
}

func statusOf(s models.Severity) models.ValidationStatus {
	switch s {
	case models.SeverityViolation:
		return models.StatusRejected
	case models.SeverityWarning:
		return models.StatusAcceptedWithWarnings
	default:
		return models.StatusAccepted
	}
}
