package models

import "time"

// Event types written by the ingestion path.
const (
	EventRejected    = "REJECTED"
	EventWarning     = "WARNING"
	EventHealthAlert = "HEALTH_ALERT"
	EventScenario    = "SCENARIO"
)

// Event is a single log entry.
type Event struct {
	EventID     string    `json:"event_id"`
	AssetID     string    `json:"asset_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // REJECTED | WARNING | HEALTH_ALERT | SCENARIO
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}
