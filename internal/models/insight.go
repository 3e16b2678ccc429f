package models

// HealthRecord is one health log as sent to the insight endpoint.
// Optional fields are omitted from JSON when absent.
// swagger:model HealthRecord
type HealthRecord struct {
	Date          string   `json:"date"`
	Symptoms      []string `json:"symptoms,omitempty"`
	Temperature   *float64 `json:"temperature,omitempty"`
	HeartRate     *int     `json:"heartRate,omitempty"`
	BloodPressure *string  `json:"bloodPressure,omitempty"`
	BloodSugar    *float64 `json:"bloodSugar,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// InsightRequest represents the JSON body of an insight request
// swagger:model InsightRequest
type InsightRequest struct {
	// Recent health records, most recent first
	// required: true
	HealthData []HealthRecord `json:"healthData"`
}

// InsightResponse represents a generated health summary
// swagger:model InsightResponse
type InsightResponse struct {
	// Generated narrative
	// example: Your heart rate has been stable...
	Insights string `json:"insights"`
}

// ErrorResponse is the uniform error body
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// example: AI gateway error: 502
	Error string `json:"error"`
}

// ChatMessage is a role-tagged message in a chat-completion conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatCompletionRequest is the body sent to the chat-completion endpoint.
type ChatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// ChatCompletionResponse is the subset of the chat-completion reply we read.
type ChatCompletionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
}

// DashboardStats represents the counters shown on the dashboard
// swagger:model DashboardStats
type DashboardStats struct {
	Logs     int   `json:"logs"`
	Reports  int   `json:"reports"`
	Insights int64 `json:"insights"`
}
