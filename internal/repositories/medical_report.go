package repositories

import (
	"context"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

var medicalReportColumns = []string{
	"id", "user_id", "title", "category", "file_name", "file_url", "notes", "uploaded_at",
}

// MedicalReportWriteRepository inserts report metadata rows.
type MedicalReportWriteRepository struct {
	db *sqlx.DB
}

func NewMedicalReportWriteRepository(db *sqlx.DB) *MedicalReportWriteRepository {
	return &MedicalReportWriteRepository{db: db}
}

// Save inserts the metadata of an uploaded report and returns the stored row.
func (r *MedicalReportWriteRepository) Save(ctx context.Context, rep models.MedicalReportDB) (*models.MedicalReportDB, error) {
	query, args, err := psql.Insert("medical_reports").
		Columns("user_id", "title", "category", "file_name", "file_url", "notes").
		Values(rep.UserID, rep.Title, rep.Category, rep.FileName, rep.FileURL, rep.Notes).
		Suffix("RETURNING " + strings.Join(medicalReportColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var saved models.MedicalReportDB
	err = r.db.GetContext(ctx, &saved, query, args...)
	logQuery(query, args, saved.ID, err)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// MedicalReportReadRepository reads report metadata scoped by owner.
type MedicalReportReadRepository struct {
	db *sqlx.DB
}

func NewMedicalReportReadRepository(db *sqlx.DB) *MedicalReportReadRepository {
	return &MedicalReportReadRepository{db: db}
}

// ListByUserID returns every report of userID, newest upload first.
func (r *MedicalReportReadRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]models.MedicalReportDB, error) {
	query, args, err := psql.Select(medicalReportColumns...).
		From("medical_reports").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("uploaded_at DESC").
		ToSql()
	if err != nil {
		return nil, err
	}

	reports := []models.MedicalReportDB{}
	err = r.db.SelectContext(ctx, &reports, query, args...)
	logQuery(query, args, len(reports), err)

	return reports, err
}

// CountByUserID returns the number of reports owned by userID.
func (r *MedicalReportReadRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	return countByUserID(ctx, r.db, "medical_reports", userID)
}
