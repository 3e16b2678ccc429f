package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/models"
	"github.com/sbilibin2017/gw-health-records/internal/services"
)

//go:generate mockgen -source=insights.go -destination=insights_mock.go -package=handlers

// InsightGenerator summarizes client-supplied health records.
type InsightGenerator interface {
	Ready() error
	Generate(ctx context.Context, records []models.HealthRecord) (string, error)
}

// UserInsightGenerator summarizes the stored health logs of a user.
type UserInsightGenerator interface {
	Ready() error
	GenerateForUser(ctx context.Context, userID uuid.UUID) (string, error)
}

// NewInsightsHandler returns an HTTP handler generating insights for the records in the body.
// @Summary Generate health insights
// @Description Summarizes the supplied health records with the language-model gateway. One gateway call, no retries.
// @Tags insights
// @Accept json
// @Produce json
// @Param request body models.InsightRequest true "Health records, most recent first"
// @Success 200 {object} models.InsightResponse "Generated insights"
// @Failure 400 {object} models.ErrorResponse "No health data / invalid request"
// @Failure 500 {object} models.ErrorResponse "Gateway not configured or gateway error"
// @Router /insights [post]
func NewInsightsHandler(svc InsightGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Ready(); err != nil {
			logger.Log.Errorw("insight gateway is not configured", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		// An empty body is a request without health data.
		var req models.InsightRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		insights, err := svc.Generate(r.Context(), req.HealthData)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.InsightResponse{Insights: insights})
	}
}

// NewMyInsightsHandler returns an HTTP handler generating insights from the caller's recent logs.
// @Summary Generate insights from my logs
// @Description Loads the caller's 10 most recent health logs and summarizes them.
// @Tags insights
// @Produce json
// @Success 200 {object} models.InsightResponse "Generated insights"
// @Failure 400 {object} models.ErrorResponse "No health data"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Gateway not configured or gateway error"
// @Router /me/insights [post]
// @Security BearerAuth
func NewMyInsightsHandler(svc UserInsightGenerator, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		if err := svc.Ready(); err != nil {
			logger.Log.Errorw("insight gateway is not configured", "error", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		insights, err := svc.GenerateForUser(r.Context(), userID)
		if err != nil {
			writeInsightError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.InsightResponse{Insights: insights})
	}
}

func writeInsightError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrNoHealthData) {
		writeError(w, http.StatusBadRequest, services.NoHealthDataMessage)
		return
	}
	logger.Log.Errorw("insight generation failed", "error", err)
	writeError(w, http.StatusInternalServerError, err.Error())
}
