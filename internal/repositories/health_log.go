package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

var healthLogColumns = []string{
	"id", "user_id", "log_date", "symptoms", "temperature",
	"blood_pressure_systolic", "blood_pressure_diastolic",
	"blood_sugar", "heart_rate", "notes", "created_at", "updated_at",
}

// HealthLogWriteRepository inserts health logs.
type HealthLogWriteRepository struct {
	db *sqlx.DB
}

func NewHealthLogWriteRepository(db *sqlx.DB) *HealthLogWriteRepository {
	return &HealthLogWriteRepository{db: db}
}

// Save inserts a single log owned by l.UserID and returns the stored row.
func (r *HealthLogWriteRepository) Save(ctx context.Context, l models.HealthLogDB) (*models.HealthLogDB, error) {
	query, args, err := psql.Insert("health_logs").
		Columns(
			"user_id", "log_date", "symptoms", "temperature",
			"blood_pressure_systolic", "blood_pressure_diastolic",
			"blood_sugar", "heart_rate", "notes",
		).
		Values(
			l.UserID, l.LogDate, l.Symptoms, l.Temperature,
			l.BloodPressureSystolic, l.BloodPressureDiastolic,
			l.BloodSugar, l.HeartRate, l.Notes,
		).
		Suffix("RETURNING " + strings.Join(healthLogColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var saved models.HealthLogDB
	err = r.db.GetContext(ctx, &saved, query, args...)
	logQuery(query, args, saved.ID, err)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// HealthLogReadRepository reads health logs scoped by owner.
type HealthLogReadRepository struct {
	db *sqlx.DB
}

func NewHealthLogReadRepository(db *sqlx.DB) *HealthLogReadRepository {
	return &HealthLogReadRepository{db: db}
}

// ListRecent returns at most limit logs of userID, most recent log date first.
func (r *HealthLogReadRepository) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.HealthLogDB, error) {
	query, args, err := psql.Select(healthLogColumns...).
		From("health_logs").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("log_date DESC", "created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, err
	}

	logs := []models.HealthLogDB{}
	err = r.db.SelectContext(ctx, &logs, query, args...)
	logQuery(query, args, len(logs), err)

	return logs, err
}

// ListSince returns the logs of userID dated on or after since, oldest first.
func (r *HealthLogReadRepository) ListSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]models.HealthLogDB, error) {
	query, args, err := psql.Select(healthLogColumns...).
		From("health_logs").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"log_date": since}).
		OrderBy("log_date ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, err
	}

	logs := []models.HealthLogDB{}
	err = r.db.SelectContext(ctx, &logs, query, args...)
	logQuery(query, args, len(logs), err)

	return logs, err
}

// CountByUserID returns the number of logs owned by userID.
func (r *HealthLogReadRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	return countByUserID(ctx, r.db, "health_logs", userID)
}

func countByUserID(ctx context.Context, db *sqlx.DB, table string, userID uuid.UUID) (int, error) {
	query, args, err := psql.Select("COUNT(*)").
		From(table).
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return 0, err
	}

	var count int
	err = db.GetContext(ctx, &count, query, args...)
	logQuery(query, args, count, err)

	return count, err
}
