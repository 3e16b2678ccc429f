package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-health-records/internal/logger"
	"github.com/sbilibin2017/gw-health-records/internal/models"
	"github.com/sbilibin2017/gw-health-records/internal/services"
)

//go:generate mockgen -source=report.go -destination=report_mock.go -package=handlers

// multipartMemory is how much of a multipart body is kept in memory before spilling to disk.
const multipartMemory = 1 << 20

// ReportUploader defines the interface that the service must implement.
type ReportUploader interface {
	MaxBytes() int64
	Upload(ctx context.Context, userID uuid.UUID, upload models.ReportUpload, body io.Reader) (*models.MedicalReportDB, error)
}

// ReportLister defines the interface that the service must implement.
type ReportLister interface {
	List(ctx context.Context, userID uuid.UUID) ([]models.MedicalReportDB, error)
}

// NewUploadReportHandler returns an HTTP handler for uploading a medical report.
// @Summary Upload a medical report
// @Description Stores the file under <user id>/<unix millis>.<ext> and records its metadata. pdf, jpg, jpeg, png up to 10 MiB.
// @Tags reports
// @Accept mpfd
// @Produce json
// @Param file formData file true "Report file"
// @Param title formData string true "Title"
// @Param category formData string true "lab, prescription, diagnosis, imaging or other"
// @Param notes formData string false "Notes"
// @Success 201 {object} models.MedicalReportDB "Uploaded report"
// @Failure 400 {object} models.ErrorResponse "Invalid upload"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 413 {object} models.ErrorResponse "File too large"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /reports [post]
// @Security BearerAuth
func NewUploadReportHandler(svc ReportUploader, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, svc.MaxBytes()+multipartMemory)
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusRequestEntityTooLarge, services.ErrFileTooLarge.Error())
				return
			}
			writeError(w, http.StatusBadRequest, "invalid multipart form")
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			writeError(w, http.StatusBadRequest, "file is required")
			return
		}
		defer file.Close()

		upload := models.ReportUpload{
			Title:       r.FormValue("title"),
			Category:    r.FormValue("category"),
			FileName:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
		}
		if notes := r.FormValue("notes"); notes != "" {
			upload.Notes = &notes
		}

		saved, err := svc.Upload(r.Context(), userID, upload, file)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFileTooLarge):
				writeError(w, http.StatusRequestEntityTooLarge, err.Error())
			case errors.Is(err, services.ErrEmptyTitle),
				errors.Is(err, services.ErrInvalidCategory),
				errors.Is(err, services.ErrUnsupportedFileType),
				errors.Is(err, services.ErrEmptyFile):
				writeError(w, http.StatusBadRequest, err.Error())
			default:
				logger.Log.Errorw("failed to upload report", "userID", userID, "error", err)
				writeError(w, http.StatusInternalServerError, "Internal server error")
			}
			return
		}

		writeJSON(w, http.StatusCreated, saved)
	}
}

// NewListReportsHandler returns an HTTP handler listing the caller's reports.
// @Summary List medical reports
// @Description Newest upload first.
// @Tags reports
// @Produce json
// @Success 200 {object} models.MedicalReportsResponse "Reports"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /reports [get]
// @Security BearerAuth
func NewListReportsHandler(svc ReportLister, tokener Tokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := callerID(w, r, tokener)
		if !ok {
			return
		}

		reports, err := svc.List(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if reports == nil {
			reports = []models.MedicalReportDB{}
		}

		writeJSON(w, http.StatusOK, models.MedicalReportsResponse{Reports: reports})
	}
}
