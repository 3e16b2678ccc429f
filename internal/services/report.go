package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/metrics"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

//go:generate mockgen -source=report.go -destination=report_mock.go -package=services

var (
	ErrEmptyTitle          = errors.New("title is required")
	ErrInvalidCategory     = errors.New("invalid category")
	ErrUnsupportedFileType = errors.New("unsupported file type, allowed: pdf, jpg, jpeg, png")
	ErrFileTooLarge        = errors.New("file is too large")
	ErrEmptyFile           = errors.New("file is empty")
)

// reportContentTypes maps accepted extensions to their content type.
var reportContentTypes = map[string]string{
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// ReportStorage stores report files in the object store.
type ReportStorage interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}

// MedicalReportWriter persists report metadata.
type MedicalReportWriter interface {
	Save(ctx context.Context, rep models.MedicalReportDB) (*models.MedicalReportDB, error)
}

// MedicalReportReader reads report metadata of a user.
type MedicalReportReader interface {
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MedicalReportDB, error)
}

// ReportService uploads medical reports and records their metadata.
type ReportService struct {
	storage   ReportStorage
	writer    MedicalReportWriter
	reader    MedicalReportReader
	publisher EventPublisher
	metrics   *metrics.Collector
	maxBytes  int64
	now       func() time.Time
}

// NewReportService creates a new ReportService accepting files up to maxBytes.
func NewReportService(
	storage ReportStorage,
	writer MedicalReportWriter,
	reader MedicalReportReader,
	publisher EventPublisher,
	m *metrics.Collector,
	maxBytes int64,
) *ReportService {
	return &ReportService{
		storage:   storage,
		writer:    writer,
		reader:    reader,
		publisher: publisher,
		metrics:   m,
		maxBytes:  maxBytes,
		now:       time.Now,
	}
}

// MaxBytes returns the largest accepted file size.
func (s *ReportService) MaxBytes() int64 {
	return s.maxBytes
}

// reportExtension returns the lower-cased extension of name without the dot.
func reportExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// ReportObjectKey returns the object key of a report uploaded at t.
func ReportObjectKey(userID uuid.UUID, t time.Time, ext string) string {
	return fmt.Sprintf("%s/%d.%s", userID, t.UnixMilli(), ext)
}

func (s *ReportService) validate(upload models.ReportUpload) (ext string, err error) {
	if strings.TrimSpace(upload.Title) == "" {
		return "", ErrEmptyTitle
	}
	if !slices.Contains(models.ReportCategories, upload.Category) {
		return "", ErrInvalidCategory
	}
	ext = reportExtension(upload.FileName)
	if _, ok := reportContentTypes[ext]; !ok {
		return "", ErrUnsupportedFileType
	}
	if upload.Size <= 0 {
		return "", ErrEmptyFile
	}
	if upload.Size > s.maxBytes {
		return "", ErrFileTooLarge
	}
	return ext, nil
}

// Upload stores body in the object store and then records its metadata.
// When the metadata insert fails the stored object is deleted again; if that
// delete fails too the object is logged as orphaned. The insert error is returned.
func (s *ReportService) Upload(ctx context.Context, userID uuid.UUID, upload models.ReportUpload, body io.Reader) (*models.MedicalReportDB, error) {
	ext, err := s.validate(upload)
	if err != nil {
		return nil, err
	}

	contentType := upload.ContentType
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = reportContentTypes[ext]
	}

	key := ReportObjectKey(userID, s.now(), ext)
	url, err := s.storage.Upload(ctx, key, contentType, body, upload.Size)
	if err != nil {
		logger.Log.Errorw("failed to upload report file", "userID", userID, "key", key, "error", err)
		return nil, err
	}

	saved, err := s.writer.Save(ctx, models.MedicalReportDB{
		UserID:   userID,
		Title:    strings.TrimSpace(upload.Title),
		Category: upload.Category,
		FileName: upload.FileName,
		FileURL:  url,
		Notes:    upload.Notes,
	})
	if err != nil {
		logger.Log.Errorw("failed to save report metadata, deleting uploaded file", "userID", userID, "key", key, "error", err)
		if delErr := s.storage.Delete(context.WithoutCancel(ctx), key); delErr != nil {
			s.metrics.IncOrphanedBlobs()
			logger.Log.Errorw("orphaned report object", "key", key, "error", delErr)
		}
		return nil, err
	}

	s.metrics.IncReportsUploaded()
	s.publisher.Publish(ctx, models.EventMedicalReportUploaded, userID, saved.ID.String())

	return saved, nil
}

// List returns the reports of userID, newest first.
func (s *ReportService) List(ctx context.Context, userID uuid.UUID) ([]models.MedicalReportDB, error) {
	reports, err := s.reader.ListByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list reports", "userID", userID, "error", err)
		return nil, err
	}
	return reports, nil
}
