package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported report categories
const (
	CategoryLab          = "lab"
	CategoryPrescription = "prescription"
	CategoryDiagnosis    = "diagnosis"
	CategoryImaging      = "imaging"
	CategoryOther        = "other"
)

// ReportCategories lists every accepted report category.
var ReportCategories = []string{
	CategoryLab,
	CategoryPrescription,
	CategoryDiagnosis,
	CategoryImaging,
	CategoryOther,
}

// MedicalReportDB represents a medical_reports row in the database
type MedicalReportDB struct {
	ID         uuid.UUID `json:"id" db:"id"`                   // Primary key
	UserID     uuid.UUID `json:"user_id" db:"user_id"`         // Owning user
	Title      string    `json:"title" db:"title"`             // Report title
	Category   string    `json:"category" db:"category"`       // One of ReportCategories
	FileName   string    `json:"file_name" db:"file_name"`     // Original file name
	FileURL    string    `json:"file_url" db:"file_url"`       // Retrieval URL in the object store
	Notes      *string   `json:"notes" db:"notes"`             // Optional notes
	UploadedAt time.Time `json:"uploaded_at" db:"uploaded_at"` // Upload timestamp
}

// ReportUpload carries the metadata of a report being uploaded.
type ReportUpload struct {
	Title       string
	Category    string
	Notes       *string
	FileName    string
	ContentType string
	Size        int64
}

// MedicalReportsResponse represents a list of uploaded reports
// swagger:model MedicalReportsResponse
type MedicalReportsResponse struct {
	Reports []MedicalReportDB `json:"reports"`
}
