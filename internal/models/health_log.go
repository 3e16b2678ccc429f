package models

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// DateLayout is the calendar-date format used for log dates on the wire.
const DateLayout = "2006-01-02"

// HealthLogDB represents a health_logs row in the database
type HealthLogDB struct {
	ID                     uuid.UUID      `json:"id" db:"id"`                                             // Primary key
	UserID                 uuid.UUID      `json:"user_id" db:"user_id"`                                   // Owning user
	LogDate                time.Time      `json:"log_date" db:"log_date"`                                 // Calendar date of the entry
	Symptoms               pq.StringArray `json:"symptoms" db:"symptoms"`                                 // Free-text symptoms, NULL when none
	Temperature            *float64       `json:"temperature" db:"temperature"`                           // Body temperature
	BloodPressureSystolic  *int           `json:"blood_pressure_systolic" db:"blood_pressure_systolic"`   // Systolic pressure
	BloodPressureDiastolic *int           `json:"blood_pressure_diastolic" db:"blood_pressure_diastolic"` // Diastolic pressure
	BloodSugar             *float64       `json:"blood_sugar" db:"blood_sugar"`                           // Blood sugar level
	HeartRate              *int           `json:"heart_rate" db:"heart_rate"`                             // Heart rate (bpm)
	Notes                  *string        `json:"notes" db:"notes"`                                       // Free-text notes
	CreatedAt              time.Time      `json:"created_at" db:"created_at"`                             // Creation timestamp
	UpdatedAt              time.Time      `json:"updated_at" db:"updated_at"`                             // Last update timestamp
}

// CreateHealthLogRequest represents the JSON body for adding a health log
// swagger:model CreateHealthLogRequest
type CreateHealthLogRequest struct {
	// Log date (YYYY-MM-DD), defaults to today
	// example: 2025-01-15
	LogDate string `json:"log_date"`

	// Symptoms, as a list or a comma-separated string
	// example: ["headache","fatigue"]
	Symptoms SymptomList `json:"symptoms" swaggertype:"array,string"`

	// Body temperature
	// example: 36.6
	Temperature *float64 `json:"temperature"`

	// Systolic blood pressure
	// example: 120
	BloodPressureSystolic *int `json:"blood_pressure_systolic"`

	// Diastolic blood pressure
	// example: 80
	BloodPressureDiastolic *int `json:"blood_pressure_diastolic"`

	// Blood sugar
	// example: 5.4
	BloodSugar *float64 `json:"blood_sugar"`

	// Heart rate
	// example: 72
	HeartRate *int `json:"heart_rate"`

	// Notes
	// example: Slept badly
	Notes *string `json:"notes"`
}

// SymptomList decodes from either a JSON array of strings or a single
// comma-separated string.
type SymptomList []string

func (s *SymptomList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = list
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*s = strings.Split(joined, ",")
	return nil
}

// HealthLogResponse represents a single health log
// swagger:model HealthLogResponse
type HealthLogResponse struct {
	ID                     uuid.UUID `json:"id"`
	LogDate                string    `json:"log_date"`
	Symptoms               []string  `json:"symptoms,omitempty"`
	Temperature            *float64  `json:"temperature,omitempty"`
	BloodPressureSystolic  *int      `json:"blood_pressure_systolic,omitempty"`
	BloodPressureDiastolic *int      `json:"blood_pressure_diastolic,omitempty"`
	BloodSugar             *float64  `json:"blood_sugar,omitempty"`
	HeartRate              *int      `json:"heart_rate,omitempty"`
	Notes                  *string   `json:"notes,omitempty"`
	CreatedAt              time.Time `json:"created_at"`
}

// NewHealthLogResponse converts a database row into its API representation.
func NewHealthLogResponse(l HealthLogDB) HealthLogResponse {
	return HealthLogResponse{
		ID:                     l.ID,
		LogDate:                l.LogDate.Format(DateLayout),
		Symptoms:               l.Symptoms,
		Temperature:            l.Temperature,
		BloodPressureSystolic:  l.BloodPressureSystolic,
		BloodPressureDiastolic: l.BloodPressureDiastolic,
		BloodSugar:             l.BloodSugar,
		HeartRate:              l.HeartRate,
		Notes:                  l.Notes,
		CreatedAt:              l.CreatedAt,
	}
}

// HealthLogsResponse represents a list of health logs
// swagger:model HealthLogsResponse
type HealthLogsResponse struct {
	Logs []HealthLogResponse `json:"logs"`
}

// TrendPoint is one day of charted vitals
// swagger:model TrendPoint
type TrendPoint struct {
	Date        string   `json:"date"`
	Temperature *float64 `json:"temperature,omitempty"`
	HeartRate   *int     `json:"heartRate,omitempty"`
	BloodSugar  *float64 `json:"bloodSugar,omitempty"`
}

// TrendsResponse represents the charted vitals for a date window
// swagger:model TrendsResponse
type TrendsResponse struct {
	Points []TrendPoint `json:"points"`
}
