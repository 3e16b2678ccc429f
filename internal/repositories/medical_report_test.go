package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-records/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMedicalReportRepositories_Postgres(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	db, teardown := setupPostgres(t)
	defer teardown()

	ctx := context.Background()
	writeRepo := NewMedicalReportWriteRepository(db)
	readRepo := NewMedicalReportReadRepository(db)
	userID := uuid.New()

	first, err := writeRepo.Save(ctx, models.MedicalReportDB{
		UserID:   userID,
		Title:    "Blood panel",
		Category: models.CategoryLab,
		FileName: "panel.pdf",
		FileURL:  "https://cdn.example.com/medical-reports/a.pdf",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, first.ID)
	assert.False(t, first.UploadedAt.IsZero())

	time.Sleep(10 * time.Millisecond)

	notes := "follow-up in 3 months"
	second, err := writeRepo.Save(ctx, models.MedicalReportDB{
		UserID:   userID,
		Title:    "Chest X-ray",
		Category: models.CategoryImaging,
		FileName: "xray.png",
		FileURL:  "https://cdn.example.com/medical-reports/b.png",
		Notes:    &notes,
	})
	require.NoError(t, err)

	t.Run("invalid category is rejected", func(t *testing.T) {
		_, err := writeRepo.Save(ctx, models.MedicalReportDB{
			UserID: userID, Title: "x", Category: "misc", FileName: "x.pdf", FileURL: "u",
		})
		assert.Error(t, err)
	})

	t.Run("ListByUserID newest first", func(t *testing.T) {
		reports, err := readRepo.ListByUserID(ctx, userID)
		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, second.ID, reports[0].ID)
		assert.Equal(t, first.ID, reports[1].ID)
		require.NotNil(t, reports[0].Notes)
		assert.Equal(t, notes, *reports[0].Notes)
	})

	t.Run("CountByUserID", func(t *testing.T) {
		count, err := readRepo.CountByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})
}

func TestMedicalReportWriteRepository_Save_SQL(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	repo := NewMedicalReportWriteRepository(sqlx.NewDb(sqlDB, "sqlmock"))

	mock.ExpectQuery("INSERT INTO medical_reports").
		WillReturnError(errors.New("duplicate key"))

	saved, err := repo.Save(context.Background(), models.MedicalReportDB{UserID: uuid.New()})
	assert.Nil(t, saved)
	assert.EqualError(t, err, "duplicate key")
	assert.NoError(t, mock.ExpectationsWereMet())
}
