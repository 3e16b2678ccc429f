package models

import (
	"time"

	"github.com/google/uuid"
)

// Supported user roles
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// ProfileDB represents a profiles row in the database
type ProfileDB struct {
	ID               uuid.UUID  `json:"id" db:"id"`                               // Primary key
	UserID           uuid.UUID  `json:"user_id" db:"user_id"`                     // Owning user
	FullName         string     `json:"full_name" db:"full_name"`                 // Full name
	DateOfBirth      *time.Time `json:"date_of_birth" db:"date_of_birth"`         // Date of birth
	BloodGroup       *string    `json:"blood_group" db:"blood_group"`             // Blood group
	Allergies        *string    `json:"allergies" db:"allergies"`                 // Known allergies
	EmergencyContact *string    `json:"emergency_contact" db:"emergency_contact"` // Emergency contact
	Phone            *string    `json:"phone" db:"phone"`                         // Phone number
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`               // Creation timestamp
	UpdatedAt        time.Time  `json:"updated_at" db:"updated_at"`               // Last update timestamp
}

// UserRoleDB represents a user_roles row in the database
type UserRoleDB struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Owning user
	Role      string    `json:"role" db:"role"`             // patient or doctor
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UpsertProfileRequest represents the JSON body for saving a profile
// swagger:model UpsertProfileRequest
type UpsertProfileRequest struct {
	// Full name
	// required: true
	// example: Jane Doe
	FullName string `json:"full_name"`

	// Date of birth (YYYY-MM-DD)
	// example: 1990-04-12
	DateOfBirth *string `json:"date_of_birth"`

	// Blood group
	// example: A+
	BloodGroup *string `json:"blood_group"`

	// Allergies
	// example: penicillin
	Allergies *string `json:"allergies"`

	// Emergency contact
	// example: John Doe +1 555 0100
	EmergencyContact *string `json:"emergency_contact"`

	// Phone
	// example: +1 555 0199
	Phone *string `json:"phone"`
}

// HasRoleResponse reports whether the caller holds a role
// swagger:model HasRoleResponse
type HasRoleResponse struct {
	Role    string `json:"role"`
	HasRole bool   `json:"has_role"`
}
