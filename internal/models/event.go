package models

// Event types published to Kafka
const (
	EventHealthLogCreated      = "health_log.created"
	EventMedicalReportUploaded = "medical_report.uploaded"
	EventInsightGenerated      = "insight.generated"
)

// Event represents a domain event emitted after a successful write.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	UserID    string `json:"user_id"`   // UserID is the owner of the affected entity.
	EntityID  string `json:"entity_id"` // EntityID identifies the created row, empty for insights.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (seconds) of the event.
}
