package models

// ValidationStatus is the overall outcome of Physics-Guard validation.
type ValidationStatus string

const (
	StatusAccepted             ValidationStatus = "accepted"
	StatusAcceptedWithWarnings ValidationStatus = "accepted_with_warnings"
	StatusRejected             ValidationStatus = "rejected"
)

// Severity of a single rule finding. Ordered: a higher value is worse.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	SeverityViolation
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityViolation:
		return "violation"
	default:
		return "none"
	}
}

// MarshalText encodes the severity by name.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText decodes a severity name.
func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "warning":
		*s = SeverityWarning
	case "violation":
		*s = SeverityViolation
	default:
		*s = SeverityNone
	}
	return nil
}

// Issue is one triggered rule.
type Issue struct {
	RuleID   string   `json:"rule_id"`
	Severity Severity `json:"severity"`
	Channel  string   `json:"channel,omitempty"`
	Value    *float64 `json:"value,omitempty"`
	Message  string   `json:"message"`
	Hint     string   `json:"hint,omitempty"`
}

// ValidationResult lists every triggered rule in evaluation order.
type ValidationResult struct {
	Status ValidationStatus `json:"status"`
	Issues []Issue          `json:"issues"`
}

// Accepted reports whether the reading may be stored.
func (v ValidationResult) Accepted() bool { return v.Status != StatusRejected }

// Count returns how many issues carry the given severity.
func (v ValidationResult) Count(s Severity) int {
	n := 0
	for _, is := range v.Issues {
		if is.Severity == s {
			n++
		}
	}
	return n
}

// Has reports whether a rule with the given id fired.
func (v ValidationResult) Has(ruleID string) bool {
	for _, is := range v.Issues {
		if is.RuleID == ruleID {
			return true
		}
	}
	return false
}
