package services

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=services

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmptyFullName      = errors.New("full_name is required")
	ErrInvalidDateOfBirth = errors.New("invalid date_of_birth, expected YYYY-MM-DD in the past")
	ErrInvalidRole        = errors.New("invalid role")
)

// ProfileReader reads a user's profile.
type ProfileReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileWriter creates or updates a user's profile.
type ProfileWriter interface {
	Upsert(ctx context.Context, p models.ProfileDB) (*models.ProfileDB, error)
}

// RoleWriter assigns roles.
type RoleWriter interface {
	Assign(ctx context.Context, userID uuid.UUID, role string) error
}

// RoleReader checks roles.
type RoleReader interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
}

type ProfileService struct {
	profileReader ProfileReader
	profileWriter ProfileWriter
	roleReader    RoleReader
	roleWriter    RoleWriter
	now           func() time.Time
}

func NewProfileService(pr ProfileReader, pw ProfileWriter, rr RoleReader, rw RoleWriter) *ProfileService {
	return &ProfileService{
		profileReader: pr,
		profileWriter: pw,
		roleReader:    rr,
		roleWriter:    rw,
		now:           time.Now,
	}
}

// Get returns the profile of userID or ErrProfileNotFound.
func (s *ProfileService) Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	p, err := s.profileReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get profile", "userID", userID, "error", err)
		return nil, err
	}
	if p == nil {
		return nil, ErrProfileNotFound
	}
	return p, nil
}

// Save upserts the profile of userID and makes sure the user holds the
// patient role. Both writes join the transaction carried by ctx.
func (s *ProfileService) Save(ctx context.Context, userID uuid.UUID, req models.UpsertProfileRequest) (*models.ProfileDB, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, ErrEmptyFullName
	}

	var dob *time.Time
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		d, err := time.Parse(models.DateLayout, *req.DateOfBirth)
		if err != nil || d.After(s.now()) {
			return nil, ErrInvalidDateOfBirth
		}
		dob = &d
	}

	saved, err := s.profileWriter.Upsert(ctx, models.ProfileDB{
		UserID:           userID,
		FullName:         fullName,
		DateOfBirth:      dob,
		BloodGroup:       blankToNil(req.BloodGroup),
		Allergies:        blankToNil(req.Allergies),
		EmergencyContact: blankToNil(req.EmergencyContact),
		Phone:            blankToNil(req.Phone),
	})
	if err != nil {
		logger.Log.Errorw("failed to upsert profile", "userID", userID, "error", err)
		return nil, err
	}

	if err := s.roleWriter.Assign(ctx, userID, models.RolePatient); err != nil {
		logger.Log.Errorw("failed to assign default role", "userID", userID, "error", err)
		return nil, err
	}

	return saved, nil
}

// HasRole reports whether userID holds role.
func (s *ProfileService) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	if !slices.Contains([]string{models.RolePatient, models.RoleDoctor}, role) {
		return false, ErrInvalidRole
	}

	ok, err := s.roleReader.HasRole(ctx, userID, role)
	if err != nil {
		logger.Log.Errorw("failed to check role", "userID", userID, "role", role, "error", err)
		return false, err
	}
	return ok, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
