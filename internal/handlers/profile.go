package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/models"
	"github.com/sbilibin2017/gw-health-records/internal/services"
)

//go:generate mockgen -source=profile.go -destination=profile_mock.go -package=handlers

// ProfileGetter defines the interface that the service must implement.
type ProfileGetter interface {
	Get(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error)
}

// ProfileSaver defines the interface that the service must implement.
type ProfileSaver interface {
	Save(ctx context.Context, userID uuid.UUID, req models.UpsertProfileRequest) (*models.ProfileDB, error)
}

// RoleChecker defines the interface that the service must implement.
type RoleChecker interface {
	HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error)
}

// NewGetProfileHandler returns an HTTP handler for reading the caller's profile.
// @Summary Get my profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.ProfileDB "Profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "Profile not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /profile [get]
// @Security BearerAuth
func NewGetProfileHandler(svc ProfileGetter, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		profile, err := svc.Get(r.Context(), userID)
		if err != nil {
			if errors.Is(err, services.ErrProfileNotFound) {
				writeError(w, http.StatusNotFound, "Profile not found")
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, profile)
	}
}

// NewSaveProfileHandler returns an HTTP handler for creating or updating the caller's profile.
// @Summary Save my profile
// @Description Creates or replaces the profile and grants the patient role in one transaction.
// @Tags profile
// @Accept json
// @Produce json
// @Param request body models.UpsertProfileRequest true "Profile"
// @Success 200 {object} models.ProfileDB "Saved profile"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /profile [put]
// @Security BearerAuth
func NewSaveProfileHandler(svc ProfileSaver, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		var req models.UpsertProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		saved, err := svc.Save(r.Context(), userID, req)
		if err != nil {
			if errors.Is(err, services.ErrEmptyFullName) || errors.Is(err, services.ErrInvalidDateOfBirth) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("failed to save profile", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, saved)
	}
}

// NewHasRoleHandler returns an HTTP handler reporting whether the caller holds a role.
// @Summary Check my role
// @Tags profile
// @Produce json
// @Param role path string true "patient or doctor"
// @Success 200 {object} models.HasRoleResponse "Role check"
// @Failure 400 {object} models.ErrorResponse "Invalid role"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /roles/{role} [get]
// @Security BearerAuth
func NewHasRoleHandler(svc RoleChecker, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		role := chi.URLParam(r, "role")
		has, err := svc.HasRole(r.Context(), userID, role)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRole) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, models.HasRoleResponse{Role: role, HasRole: has})
	}
}
