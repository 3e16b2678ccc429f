package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-health-records/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func date(s string) time.Time {
	d, _ := time.Parse(models.DateLayout, s)
	return d
}

func TestFormatHealthRecords(t *testing.T) {
	logs := []models.HealthLogDB{
		{
			LogDate:                date("2025-01-12"),
			Symptoms:               pq.StringArray{"headache"},
			Temperature:            ptr(37.5),
			BloodPressureSystolic:  ptr(130),
			BloodPressureDiastolic: ptr(85),
			HeartRate:              ptr(90),
			BloodSugar:             ptr(6.1),
			Notes:                  ptr("after run"),
		},
		{
			LogDate:               date("2025-01-11"),
			Symptoms:              pq.StringArray{},
			BloodPressureSystolic: ptr(120),
		},
		{
			LogDate:                date("2025-01-10"),
			BloodPressureDiastolic: ptr(80),
		},
	}

	records := FormatHealthRecords(logs)
	require.Len(t, records, 3)

	assert.Equal(t, models.HealthRecord{
		Date:          "2025-01-12",
		Symptoms:      []string{"headache"},
		Temperature:   ptr(37.5),
		HeartRate:     ptr(90),
		BloodPressure: ptr("130/85"),
		BloodSugar:    ptr(6.1),
		Notes:         ptr("after run"),
	}, records[0])

	assert.Equal(t, models.HealthRecord{Date: "2025-01-11"}, records[1], "partial pressure and empty symptoms are absent")
	assert.Equal(t, models.HealthRecord{Date: "2025-01-10"}, records[2])
}

func TestBuildInsightPrompt(t *testing.T) {
	records := []models.HealthRecord{
		{Date: "2025-01-12", Symptoms: []string{"cough", "fever"}, Temperature: ptr(38.2), BloodPressure: ptr("120/80")},
		{Date: "2025-01-11", HeartRate: ptr(72), Notes: ptr("felt <fine> & rested")},
	}

	prompt, err := BuildInsightPrompt(records)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(prompt, "Analyze the following health data and provide personalized health insights and recommendations:\n\n[\n  {\n    \"date\": \"2025-01-12\","))
	for _, want := range []string{
		`"date": "2025-01-11"`,
		`"symptoms": [`,
		`"cough"`,
		`"temperature": 38.2`,
		`"bloodPressure": "120/80"`,
		`"heartRate": 72`,
		`"notes": "felt <fine> & rested"`,
		"1. Key observations about the health trends",
		"2. Any concerning patterns",
		"3. Preventive recommendations",
		"4. When to consult a healthcare provider",
		"under 300 words",
	} {
		assert.Contains(t, prompt, want)
	}

	assert.NotContains(t, prompt, "null")
	assert.NotContains(t, prompt, "undefined")
	assert.NotContains(t, prompt, "bloodSugar")

	again, err := BuildInsightPrompt(records)
	require.NoError(t, err)
	assert.Equal(t, prompt, again)
}

func TestInsightService_Generate(t *testing.T) {
	ctx := context.Background()
	records := []models.HealthRecord{{Date: "2025-01-12", HeartRate: ptr(70)}}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockInsightGateway(ctrl)

		prompt, _ := BuildInsightPrompt(records)
		gateway.EXPECT().Complete(ctx, prompt).Return("Looks good.", nil).Times(1)

		svc := NewInsightService(gateway, nil, nil, nil, nil)
		got, err := svc.Generate(ctx, records)
		assert.NoError(t, err)
		assert.Equal(t, "Looks good.", got)
	})

	t.Run("empty records never reach the gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockInsightGateway(ctrl)
		gateway.EXPECT().Complete(gomock.Any(), gomock.Any()).Times(0)

		svc := NewInsightService(gateway, nil, nil, nil, nil)
		_, err := svc.Generate(ctx, nil)
		assert.ErrorIs(t, err, ErrNoHealthData)
	})

	t.Run("gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockInsightGateway(ctrl)
		gateway.EXPECT().Complete(ctx, gomock.Any()).Return("", errors.New("AI gateway error: 502"))

		svc := NewInsightService(gateway, nil, nil, nil, nil)
		_, err := svc.Generate(ctx, records)
		assert.EqualError(t, err, "AI gateway error: 502")
	})
}

func TestInsightService_GenerateForUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	logs := []models.HealthLogDB{{UserID: userID, LogDate: date("2025-01-12"), HeartRate: ptr(75)}}

	t.Run("success counts and publishes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockInsightGateway(ctrl)
		reader := NewMockRecentHealthLogReader(ctrl)
		counter := NewMockInsightCounter(ctrl)
		publisher := NewMockEventPublisher(ctrl)

		reader.EXPECT().ListRecent(ctx, userID, RecentLogsLimit).Return(logs, nil)
		gateway.EXPECT().Complete(ctx, gomock.Any()).Return("Stable.", nil)
		counter.EXPECT().Increment(ctx, userID).Return(int64(3), nil)
		publisher.EXPECT().Publish(ctx, models.EventInsightGenerated, userID, "")

		svc := NewInsightService(gateway, reader, counter, publisher, nil)
		got, err := svc.GenerateForUser(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, "Stable.", got)
	})

	t.Run("counter failure does not fail the request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockInsightGateway(ctrl)
		reader := NewMockRecentHealthLogReader(ctrl)
		counter := NewMockInsightCounter(ctrl)
		publisher := NewMockEventPublisher(ctrl)

		reader.EXPECT().ListRecent(ctx, userID, RecentLogsLimit).Return(logs, nil)
		gateway.EXPECT().Complete(ctx, gomock.Any()).Return("Stable.", nil)
		counter.EXPECT().Increment(ctx, userID).Return(int64(0), errors.New("redis down"))
		publisher.EXPECT().Publish(ctx, models.EventInsightGenerated, userID, "")

		svc := NewInsightService(gateway, reader, counter, publisher, nil)
		_, err := svc.GenerateForUser(ctx, userID)
		assert.NoError(t, err)
	})

	t.Run("no logs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		gateway := NewMockInsightGateway(ctrl)
		reader := NewMockRecentHealthLogReader(ctrl)
		publisher := NewMockEventPublisher(ctrl)

		reader.EXPECT().ListRecent(ctx, userID, RecentLogsLimit).Return([]models.HealthLogDB{}, nil)

		svc := NewInsightService(gateway, reader, nil, publisher, nil)
		_, err := svc.GenerateForUser(ctx, userID)
		assert.ErrorIs(t, err, ErrNoHealthData)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		reader := NewMockRecentHealthLogReader(ctrl)
		reader.EXPECT().ListRecent(ctx, userID, RecentLogsLimit).Return(nil, errors.New("db down"))

		svc := NewInsightService(NewMockInsightGateway(ctrl), reader, nil, NewMockEventPublisher(ctrl), nil)
		_, err := svc.GenerateForUser(ctx, userID)
		assert.EqualError(t, err, "db down")
	})
}
