package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/metrics"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

//go:generate mockgen -source=insight.go -destination=insight_mock.go -package=services

// RecentLogsLimit bounds how many logs are summarized per insight.
const RecentLogsLimit = 10

// NoHealthDataMessage is shown to callers who have no logs to summarize.
const NoHealthDataMessage = "No health data found. Please add some health logs first."

// ErrNoHealthData is returned when there is nothing to summarize.
var ErrNoHealthData = errors.New("no health data")

const insightPromptTemplate = `Analyze the following health data and provide personalized health insights and recommendations:

%s

Please provide:
1. Key observations about the health trends
2. Any concerning patterns
3. Preventive recommendations
4. When to consult a healthcare provider

Keep the response clear, actionable, and under 300 words.`

// InsightGateway sends a prompt to the language-model gateway.
type InsightGateway interface {
	Ready() error
	Complete(ctx context.Context, prompt string) (string, error)
}

// RecentHealthLogReader reads the most recent logs of a user.
type RecentHealthLogReader interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.HealthLogDB, error)
}

// InsightCounter counts generated insights per user.
type InsightCounter interface {
	Increment(ctx context.Context, userID uuid.UUID) (int64, error)
}

// FormatHealthRecords maps log rows to insight records, preserving order.
func FormatHealthRecords(logs []models.HealthLogDB) []models.HealthRecord {
	records := make([]models.HealthRecord, 0, len(logs))
	for _, l := range logs {
		r := models.HealthRecord{
			Date:        l.LogDate.Format(models.DateLayout),
			Temperature: l.Temperature,
			HeartRate:   l.HeartRate,
			BloodSugar:  l.BloodSugar,
			Notes:       l.Notes,
		}
		if len(l.Symptoms) > 0 {
			r.Symptoms = append([]string(nil), l.Symptoms...)
		}
		if l.BloodPressureSystolic != nil && l.BloodPressureDiastolic != nil {
			bp := fmt.Sprintf("%d/%d", *l.BloodPressureSystolic, *l.BloodPressureDiastolic)
			r.BloodPressure = &bp
		}
		records = append(records, r)
	}
	return records
}

// BuildInsightPrompt renders the instruction text around records serialized
// as two-space indented JSON. Equal inputs yield byte-identical prompts.
func BuildInsightPrompt(records []models.HealthRecord) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return "", fmt.Errorf("marshal health records: %w", err)
	}

	return fmt.Sprintf(insightPromptTemplate, bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// InsightService turns health records into a generated narrative summary.
type InsightService struct {
	gateway   InsightGateway
	logs      RecentHealthLogReader
	counter   InsightCounter
	publisher EventPublisher
	metrics   *metrics.Collector
}

// NewInsightService creates a new InsightService. counter and m may be nil.
func NewInsightService(
	gateway InsightGateway,
	logs RecentHealthLogReader,
	counter InsightCounter,
	publisher EventPublisher,
	m *metrics.Collector,
) *InsightService {
	return &InsightService{
		gateway:   gateway,
		logs:      logs,
		counter:   counter,
		publisher: publisher,
		metrics:   m,
	}
}

// Ready reports whether insights can be generated at all.
func (s *InsightService) Ready() error {
	return s.gateway.Ready()
}

// Generate summarizes records with a single gateway call.
// An empty record set fails with ErrNoHealthData without calling the gateway.
func (s *InsightService) Generate(ctx context.Context, records []models.HealthRecord) (string, error) {
	if len(records) == 0 {
		s.metrics.IncNoData()
		return "", ErrNoHealthData
	}

	prompt, err := BuildInsightPrompt(records)
	if err != nil {
		logger.Log.Errorw("failed to build insight prompt", "error", err)
		return "", err
	}

	insights, err := s.gateway.Complete(ctx, prompt)
	if err != nil {
		logger.Log.Errorw("failed to generate insights", "records", len(records), "error", err)
		return "", err
	}

	return insights, nil
}

// GenerateForUser summarizes the most recent logs of userID.
func (s *InsightService) GenerateForUser(ctx context.Context, userID uuid.UUID) (string, error) {
	logs, err := s.logs.ListRecent(ctx, userID, RecentLogsLimit)
	if err != nil {
		logger.Log.Errorw("failed to load recent health logs", "userID", userID, "error", err)
		return "", err
	}

	insights, err := s.Generate(ctx, FormatHealthRecords(logs))
	if err != nil {
		return "", err
	}

	if s.counter != nil {
		if _, err := s.counter.Increment(ctx, userID); err != nil {
			logger.Log.Errorw("failed to increment insight counter", "userID", userID, "error", err)
		}
	}
	s.publisher.Publish(ctx, models.EventInsightGenerated, userID, "")

	return insights, nil
}
