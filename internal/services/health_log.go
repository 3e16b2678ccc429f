package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/metrics"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

//go:generate mockgen -source=health_log.go -destination=health_log_mock.go -package=services

const (
	DefaultLogsLimit = 10
	MaxLogsLimit     = 100
	DefaultTrendDays = 30
	MaxTrendDays     = 365
)

var (
	// ErrInvalidLogDate is returned when log_date is not a YYYY-MM-DD date.
	ErrInvalidLogDate = errors.New("invalid log_date, expected YYYY-MM-DD")
	// ErrInvalidBloodPressure is returned when a pressure value is not positive.
	ErrInvalidBloodPressure = errors.New("blood pressure values must be positive")
)

// HealthLogWriter persists health logs.
type HealthLogWriter interface {
	Save(ctx context.Context, l models.HealthLogDB) (*models.HealthLogDB, error)
}

// HealthLogReader reads health logs of a user.
type HealthLogReader interface {
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.HealthLogDB, error)
	ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.HealthLogDB, error)
}

// HealthLogService creates health logs and reads them back as lists and trends.
type HealthLogService struct {
	writer    HealthLogWriter
	reader    HealthLogReader
	publisher EventPublisher
	metrics   *metrics.Collector
	now       func() time.Time
}

// NewHealthLogService creates a new HealthLogService.
func NewHealthLogService(writer HealthLogWriter, reader HealthLogReader, publisher EventPublisher, m *metrics.Collector) *HealthLogService {
	return &HealthLogService{
		writer:    writer,
		reader:    reader,
		publisher: publisher,
		metrics:   m,
		now:       time.Now,
	}
}

// NormalizeSymptoms trims every symptom and drops blanks. No symptoms yields nil.
func NormalizeSymptoms(symptoms []string) pq.StringArray {
	var out pq.StringArray
	for _, s := range symptoms {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func (s *HealthLogService) today() time.Time {
	y, m, d := s.now().UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Create stores a new log for userID. An empty log date means today.
func (s *HealthLogService) Create(ctx context.Context, userID uuid.UUID, req models.CreateHealthLogRequest) (*models.HealthLogDB, error) {
	logDate := s.today()
	if req.LogDate != "" {
		d, err := time.Parse(models.DateLayout, req.LogDate)
		if err != nil {
			return nil, ErrInvalidLogDate
		}
		logDate = d
	}

	if (req.BloodPressureSystolic != nil && *req.BloodPressureSystolic <= 0) ||
		(req.BloodPressureDiastolic != nil && *req.BloodPressureDiastolic <= 0) {
		return nil, ErrInvalidBloodPressure
	}

	saved, err := s.writer.Save(ctx, models.HealthLogDB{
		UserID:                 userID,
		LogDate:                logDate,
		Symptoms:               NormalizeSymptoms(req.Symptoms),
		Temperature:            req.Temperature,
		BloodPressureSystolic:  req.BloodPressureSystolic,
		BloodPressureDiastolic: req.BloodPressureDiastolic,
		BloodSugar:             req.BloodSugar,
		HeartRate:              req.HeartRate,
		Notes:                  req.Notes,
	})
	if err != nil {
		logger.Log.Errorw("failed to save health log", "userID", userID, "error", err)
		return nil, err
	}

	s.metrics.IncHealthLogsCreated()
	s.publisher.Publish(ctx, models.EventHealthLogCreated, userID, saved.ID.String())

	return saved, nil
}

// ListRecent returns the most recent logs of userID. A limit outside
// 1..MaxLogsLimit falls back to DefaultLogsLimit or MaxLogsLimit.
func (s *HealthLogService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.HealthLogDB, error) {
	switch {
	case limit <= 0:
		limit = DefaultLogsLimit
	case limit > MaxLogsLimit:
		limit = MaxLogsLimit
	}

	logs, err := s.reader.ListRecent(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to list health logs", "userID", userID, "limit", limit, "error", err)
		return nil, err
	}
	return logs, nil
}

// Trends returns the charted vitals of the last days days, oldest first.
func (s *HealthLogService) Trends(ctx context.Context, userID uuid.UUID, days int) ([]models.TrendPoint, error) {
	switch {
	case days <= 0:
		days = DefaultTrendDays
	case days > MaxTrendDays:
		days = MaxTrendDays
	}

	since := s.today().AddDate(0, 0, -days)
	logs, err := s.reader.ListSince(ctx, userID, since)
	if err != nil {
		logger.Log.Errorw("failed to list health logs for trends", "userID", userID, "since", since, "error", err)
		return nil, err
	}

	points := make([]models.TrendPoint, 0, len(logs))
	for _, l := range logs {
		points = append(points, models.TrendPoint{
			Date:        l.LogDate.Format(models.DateLayout),
			Temperature: l.Temperature,
			HeartRate:   l.HeartRate,
			BloodSugar:  l.BloodSugar,
		})
	}
	return points, nil
}
