package health

import (
	"fmt"

	"chiller_guard/internal/models"
)

// Sub-score at each band edge, best to worst.
var edgeScores = [...]float64{100, 90, 75, 55, 30, 0}

// Normalize maps a raw value to a 0-100 sub-score, linear inside each band
// and continuous across band edges. Critical reaches 0 at twice the poor
// distance (lower_better, target) or at zero (higher_better).
func (b Band) Normalize(v float64) float64 {
	var x float64
	var edges [6]float64
	switch b.Direction {
	case HigherBetter:
		// mirror so that smaller x is better
		x = -v
		edges = [6]float64{-2 * b.Excellent, -b.Excellent, -b.Good, -b.Fair, -b.Poor, 0}
	case Target:
		x = v - b.Target
		if x < 0 {
			x = -x
		}
		edges = [6]float64{0, b.Excellent, b.Good, b.Fair, b.Poor, 2 * b.Poor}
	default:
		x = v
		edges = [6]float64{0, b.Excellent, b.Good, b.Fair, b.Poor, 2 * b.Poor}
	}

	if x <= edges[0] {
		return edgeScores[0]
	}
	for i := 1; i < len(edges); i++ {
		if x <= edges[i] {
			t := (x - edges[i-1]) / (edges[i] - edges[i-1])
			return edgeScores[i-1] + t*(edgeScores[i]-edgeScores[i-1])
		}
	}
	return edgeScores[len(edgeScores)-1]
}

// Categorize applies the fixed category cutoffs.
func Categorize(score float64) models.HealthCategory {
	switch {
	case score >= 90:
		return models.CategoryExcellent
	case score >= 75:
		return models.CategoryGood
	case score >= 55:
		return models.CategoryFair
	case score >= 30:
		return models.CategoryPoor
	default:
		return models.CategoryCritical
	}
}

func (b Band) message(status models.HealthCategory, v float64) string {
	label := map[models.HealthCategory]string{
		models.CategoryExcellent: "Excellent",
		models.CategoryGood:      "Good",
		models.CategoryFair:      "Fair",
		models.CategoryPoor:      "Poor",
		models.CategoryCritical:  "Critical",
	}[status]

	msg := fmt.Sprintf("%s %s: %.2f", label, b.Description, v)
	if b.Unit != "" {
		msg += " " + b.Unit
	}
	if b.Direction == Target {
		msg += fmt.Sprintf(" (target %.1f)", b.Target)
	}
	switch status {
	case models.CategoryFair:
		msg += " - monitor closely"
	case models.CategoryPoor:
		msg += " - action recommended"
	case models.CategoryCritical:
		msg += " - immediate action required"
	}
	return msg
}
