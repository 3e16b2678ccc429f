package services

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDashboardService_Stats(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("with insight counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logs := NewMockRowCounter(ctrl)
		reports := NewMockRowCounter(ctrl)
		insights := NewMockInsightCountReader(ctrl)

		logs.EXPECT().CountByUserID(ctx, userID).Return(12, nil)
		reports.EXPECT().CountByUserID(ctx, userID).Return(3, nil)
		insights.EXPECT().Get(ctx, userID).Return(int64(5), nil)

		stats, err := NewDashboardService(logs, reports, insights).Stats(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, &models.DashboardStats{Logs: 12, Reports: 3, Insights: 5}, stats)
	})

	t.Run("without insight counter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logs := NewMockRowCounter(ctrl)
		reports := NewMockRowCounter(ctrl)

		logs.EXPECT().CountByUserID(ctx, userID).Return(1, nil)
		reports.EXPECT().CountByUserID(ctx, userID).Return(0, nil)

		stats, err := NewDashboardService(logs, reports, nil).Stats(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), stats.Insights)
	})

	t.Run("counter error degrades to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logs := NewMockRowCounter(ctrl)
		reports := NewMockRowCounter(ctrl)
		insights := NewMockInsightCountReader(ctrl)

		logs.EXPECT().CountByUserID(ctx, userID).Return(1, nil)
		reports.EXPECT().CountByUserID(ctx, userID).Return(2, nil)
		insights.EXPECT().Get(ctx, userID).Return(int64(0), errors.New("redis down"))

		stats, err := NewDashboardService(logs, reports, insights).Stats(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, 2, stats.Reports)
	})

	t.Run("count error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		logs := NewMockRowCounter(ctrl)
		logs.EXPECT().CountByUserID(ctx, userID).Return(0, errors.New("db down"))

		_, err := NewDashboardService(logs, NewMockRowCounter(ctrl), nil).Stats(ctx, userID)
		assert.EqualError(t, err, "db down")
	})
}
