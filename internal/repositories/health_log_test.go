package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sbilibin2017/gw-health-records/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func day(s string) time.Time {
	d, _ := time.Parse(models.DateLayout, s)
	return d
}

func TestHealthLogRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewHealthLogWriteRepository(db)
	readRepo := NewHealthLogReadRepository(db)

	alice := uuid.New()
	bob := uuid.New()

	saved, err := writeRepo.Save(ctx, models.HealthLogDB{
		UserID:                 alice,
		LogDate:                day("2025-01-10"),
		Symptoms:               pq.StringArray{"headache", "fatigue"},
		Temperature:            ptr(37.2),
		BloodPressureSystolic:  ptr(120),
		BloodPressureDiastolic: ptr(80),
		HeartRate:              ptr(72),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)
	assert.Equal(t, alice, saved.UserID)
	assert.Equal(t, pq.StringArray{"headache", "fatigue"}, saved.Symptoms)
	assert.Nil(t, saved.BloodSugar)

	_, err = writeRepo.Save(ctx, models.HealthLogDB{UserID: alice, LogDate: day("2025-01-12"), BloodSugar: ptr(5.4)})
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, models.HealthLogDB{UserID: alice, LogDate: day("2025-01-11")})
	require.NoError(t, err)
	_, err = writeRepo.Save(ctx, models.HealthLogDB{UserID: bob, LogDate: day("2025-01-13")})
	require.NoError(t, err)

	t.Run("ListRecent orders by date descending and limits", func(t *testing.T) {
		logs, err := readRepo.ListRecent(ctx, alice, 2)
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "2025-01-12", logs[0].LogDate.Format(models.DateLayout))
		assert.Equal(t, "2025-01-11", logs[1].LogDate.Format(models.DateLayout))
		assert.Nil(t, logs[0].Symptoms)
	})

	t.Run("ListRecent is scoped by owner", func(t *testing.T) {
		logs, err := readRepo.ListRecent(ctx, bob, 10)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, bob, logs[0].UserID)
	})

	t.Run("ListSince returns oldest first", func(t *testing.T) {
		logs, err := readRepo.ListSince(ctx, alice, day("2025-01-11"))
		require.NoError(t, err)
		require.Len(t, logs, 2)
		assert.Equal(t, "2025-01-11", logs[0].LogDate.Format(models.DateLayout))
		assert.Equal(t, "2025-01-12", logs[1].LogDate.Format(models.DateLayout))
	})

	t.Run("CountByUserID", func(t *testing.T) {
		count, err := readRepo.CountByUserID(ctx, alice)
		require.NoError(t, err)
		assert.Equal(t, 3, count)

		count, err = readRepo.CountByUserID(ctx, uuid.New())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}

func TestHealthLogReadRepository_ListRecent_SQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db := sqlx.NewDb(sqlDB, "sqlmock")
	repo := NewHealthLogReadRepository(db)
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "user_id", "log_date", "symptoms", "heart_rate"}).
			AddRow(uuid.New().String(), userID.String(), day("2025-02-01"), "{cough}", int64(80))

		mock.ExpectQuery(regexp.QuoteMeta("FROM health_logs WHERE user_id = $1 ORDER BY log_date DESC, created_at DESC LIMIT 10")).
			WithArgs(userID).
			WillReturnRows(rows)

		logs, err := repo.ListRecent(context.Background(), userID, 10)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, pq.StringArray{"cough"}, logs[0].Symptoms)
		assert.Equal(t, 80, *logs[0].HeartRate)
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("FROM health_logs").WillReturnError(errors.New("connection reset"))

		_, err := repo.ListRecent(context.Background(), userID, 10)
		assert.EqualError(t, err, "connection reset")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
