package health

import "chiller_guard/internal/models"

const fallbackRecommendation = "Monitor and investigate as needed"

type playbook map[models.HealthCategory][]string

var recommendations = map[string]playbook{
	models.ChannelVibrationRMS: {
		models.CategoryFair: {
			"Schedule vibration analysis within 2 weeks",
			"Check bearing lubrication levels",
			"Inspect visible components for looseness",
		},
		models.CategoryPoor: {
			"Schedule vibration analysis within 1 week",
			"Check bearing condition and listen for unusual sounds",
			"Verify coupling alignment",
			"Review maintenance history for recent changes",
		},
		models.CategoryCritical: {
			"URGENT: reduce load immediately",
			"Schedule emergency inspection within 24-48 hours",
			"Prepare for potential bearing replacement",
			"Check for loose mounting bolts or foundation issues",
			"Document vibration readings for trending",
		},
	},
	models.MetricApproachTemp: {
		models.CategoryFair: {
			"Schedule condenser inspection within 1 month",
			"Check condenser water flow rate",
			"Verify cooling tower performance",
		},
		models.CategoryPoor: {
			"Schedule condenser tube cleaning within 2 weeks",
			"Check for scaling or biological growth",
			"Verify water treatment program effectiveness",
			"Check refrigerant charge",
		},
		models.CategoryCritical: {
			"URGENT: condenser severely fouled",
			"Schedule immediate tube cleaning",
			"Check for non-condensables (air) in system",
			"Verify refrigerant charge and purity",
		},
	},
	models.MetricPhaseImbalance: {
		models.CategoryFair: {
			"Check utility power quality",
			"Inspect main electrical connections",
			"Verify power factor correction equipment",
		},
		models.CategoryPoor: {
			"Schedule electrical inspection within 1 week",
			"Check for loose terminal connections",
			"Verify all three phases at motor terminals",
			"Check for single-phasing protection",
		},
		models.CategoryCritical: {
			"URGENT: motor damage risk, reduce load",
			"Immediate electrical inspection required",
			"Check for single-phasing condition",
			"Verify utility power quality",
		},
	},
	models.MetricKWPerTon: {
		models.CategoryFair: {
			"Compare to baseline/design efficiency",
			"Check operating conditions vs design",
			"Review control sequences",
		},
		models.CategoryPoor: {
			"Full efficiency audit recommended",
			"Check refrigerant charge level",
			"Verify all heat exchangers are clean",
			"Review control system operation",
		},
		models.CategoryCritical: {
			"Major efficiency degradation",
			"Full diagnostic inspection required",
			"Check compressor condition",
			"Verify refrigerant charge and oil level",
		},
	},
	models.MetricDeltaT: {
		models.CategoryFair: {
			"Check chilled water flow rate",
			"Verify control valve operation",
			"Review building load distribution",
		},
		models.CategoryPoor: {
			"Check pump operation and speed",
			"Verify no air in chilled water system",
			"Check for bypass or three-way valve issues",
			"Review chilled water reset schedule",
		},
		models.CategoryCritical: {
			"System balance issue",
			"Check all pumps for proper operation",
			"Verify no major leaks or bypasses",
			"Review entire chilled water distribution",
		},
	},
	models.MetricCOP: {
		models.CategoryFair: {
			"Compare to baseline/design efficiency",
			"Review chilled and condenser water setpoints",
		},
		models.CategoryPoor: {
			"Full efficiency audit recommended",
			"Verify all heat exchangers are clean",
		},
		models.CategoryCritical: {
			"Full diagnostic inspection required",
			"Check compressor condition",
		},
	},
}

// Recommend returns the canned actions for a metric in the given state.
// Excellent and good states need none.
func Recommend(metric string, status models.HealthCategory) []string {
	switch status {
	case models.CategoryFair, models.CategoryPoor, models.CategoryCritical:
	default:
		return nil
	}
	if recs, ok := recommendations[metric][status]; ok {
		return recs
	}
	return []string{fallbackRecommendation}
}
