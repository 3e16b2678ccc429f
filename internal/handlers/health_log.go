package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/models"
	"github.com/sbilibin2017/gw-health-records/internal/services"
)

//go:generate mockgen -source=health_log.go -destination=health_log_mock.go -package=handlers

// HealthLogCreator defines the interface that the service must implement.
type HealthLogCreator interface {
	Create(ctx context.Context, userID uuid.UUID, req models.CreateHealthLogRequest) (*models.HealthLogDB, error)
}

// HealthLogLister defines the interface that the service must implement.
type HealthLogLister interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.HealthLogDB, error)
}

// HealthTrendReader defines the interface that the service must implement.
type HealthTrendReader interface {
	Trends(ctx context.Context, userID uuid.UUID, days int) ([]models.TrendPoint, error)
}

// NewCreateHealthLogHandler returns an HTTP handler for adding a health log.
// @Summary Add a health log
// @Description Stores vitals and symptoms for a day. log_date defaults to today; symptoms are trimmed and blanks dropped.
// @Tags logs
// @Accept json
// @Produce json
// @Param request body models.CreateHealthLogRequest true "Health log"
// @Success 201 {object} models.HealthLogResponse "Created log"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /logs [post]
// @Security BearerAuth
func NewCreateHealthLogHandler(svc HealthLogCreator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		var req models.CreateHealthLogRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		saved, err := svc.Create(r.Context(), userID, req)
		if err != nil {
			if errors.Is(err, services.ErrInvalidLogDate) || errors.Is(err, services.ErrInvalidBloodPressure) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}
			logger.Log.Errorw("failed to create health log", "userID", userID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusCreated, models.NewHealthLogResponse(*saved))
	}
}

// NewListHealthLogsHandler returns an HTTP handler listing the caller's recent logs.
// @Summary List recent health logs
// @Description Most recent log date first.
// @Tags logs
// @Produce json
// @Param limit query int false "Maximum number of logs (default 10, max 100)"
// @Success 200 {object} models.HealthLogsResponse "Health logs"
// @Failure 400 {object} models.ErrorResponse "Invalid limit"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /logs [get]
// @Security BearerAuth
func NewListHealthLogsHandler(svc HealthLogLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		limit, err := intQuery(r, "limit")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}

		logs, err := svc.ListRecent(r.Context(), userID, limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		resp := models.HealthLogsResponse{Logs: make([]models.HealthLogResponse, 0, len(logs))}
		for _, l := range logs {
			resp.Logs = append(resp.Logs, models.NewHealthLogResponse(l))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// NewHealthTrendsHandler returns an HTTP handler with the caller's charted vitals.
// @Summary Health trends
// @Description Temperature, heart rate and blood sugar per log over the last days, oldest first.
// @Tags logs
// @Produce json
// @Param days query int false "Window in days (default 30, max 365)"
// @Success 200 {object} models.TrendsResponse "Trend points"
// @Failure 400 {object} models.ErrorResponse "Invalid days"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /logs/trends [get]
// @Security BearerAuth
func NewHealthTrendsHandler(svc HealthTrendReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		days, err := intQuery(r, "days")
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid days")
			return
		}

		points, err := svc.Trends(r.Context(), userID, days)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, models.TrendsResponse{Points: points})
	}
}

// intQuery parses an optional integer query parameter. Absent means 0.
func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
