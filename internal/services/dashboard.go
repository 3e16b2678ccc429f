package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

//go:generate mockgen -source=dashboard.go -destination=dashboard_mock.go -package=services

// RowCounter counts rows owned by a user.
type RowCounter interface {
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}

// InsightCountReader reads the per-user insight counter.
type InsightCountReader interface {
	Get(ctx context.Context, userID uuid.UUID) (int64, error)
}

// DashboardService aggregates the counters shown on the dashboard.
type DashboardService struct {
	logs     RowCounter
	reports  RowCounter
	insights InsightCountReader
}

// NewDashboardService creates a new DashboardService. insights may be nil,
// in which case the insight count is always zero.
func NewDashboardService(logs, reports RowCounter, insights InsightCountReader) *DashboardService {
	return &DashboardService{logs: logs, reports: reports, insights: insights}
}

func (s *DashboardService) Stats(ctx context.Context, userID uuid.UUID) (*models.DashboardStats, error) {
	logs, err := s.logs.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count health logs", "userID", userID, "error", err)
		return nil, err
	}

	reports, err := s.reports.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count reports", "userID", userID, "error", err)
		return nil, err
	}

	stats := &models.DashboardStats{Logs: logs, Reports: reports}
	if s.insights != nil {
		n, err := s.insights.Get(ctx, userID)
		if err != nil {
			logger.Log.Warnw("failed to read insight counter", "userID", userID, "error", err)
		} else {
			stats.Insights = n
		}
	}

	return stats, nil
}
