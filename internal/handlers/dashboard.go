package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=handlers

// DashboardReader defines the interface that the service must implement.
type DashboardReader interface {
	Stats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error)
}

// NewDashboardHandler returns an HTTP handler with the caller's dashboard counters.
// @Summary Dashboard counters
// @Tags dashboard
// @Produce json
// @Success 200 {object} models.DashboardStats "Counters"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /dashboard [get]
// @Security BearerAuth
func NewDashboardHandler(svc DashboardReader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		stats, err := svc.Stats(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
