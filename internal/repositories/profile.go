package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-health-records/internal/models"
)

var profileColumns = []string{
	"id", "user_id", "full_name", "date_of_birth", "blood_group",
	"allergies", "emergency_contact", "phone", "created_at", "updated_at",
}

// ProfileReadRepository reads user profiles.
type ProfileReadRepository struct {
	db *sqlx.DB
}

func NewProfileReadRepository(db *sqlx.DB) *ProfileReadRepository {
	return &ProfileReadRepository{db: db}
}

// GetByUserID returns the profile of userID, or nil when none exists.
func (r *ProfileReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.ProfileDB, error) {
	query, args, err := psql.Select(profileColumns...).
		From("profiles").
		Where(squirrel.Eq{"user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}

	var profile models.ProfileDB
	err = r.db.GetContext(ctx, &profile, query, args...)
	logQuery(query, args, profile.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// ProfileWriteRepository creates and updates user profiles.
// It joins the request transaction when one is present in the context.
type ProfileWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewProfileWriteRepository(db *sqlx.DB, txGetter TxGetter) *ProfileWriteRepository {
	return &ProfileWriteRepository{db: db, txGetter: txGetter}
}

// Upsert creates the profile of p.UserID or replaces its fields.
func (r *ProfileWriteRepository) Upsert(ctx context.Context, p models.ProfileDB) (*models.ProfileDB, error) {
	query, args, err := psql.Insert("profiles").
		Columns("user_id", "full_name", "date_of_birth", "blood_group", "allergies", "emergency_contact", "phone").
		Values(p.UserID, p.FullName, p.DateOfBirth, p.BloodGroup, p.Allergies, p.EmergencyContact, p.Phone).
		Suffix(`ON CONFLICT (user_id) DO UPDATE
			SET full_name = EXCLUDED.full_name,
			    date_of_birth = EXCLUDED.date_of_birth,
			    blood_group = EXCLUDED.blood_group,
			    allergies = EXCLUDED.allergies,
			    emergency_contact = EXCLUDED.emergency_contact,
			    phone = EXCLUDED.phone,
			    updated_at = NOW()
			RETURNING ` + strings.Join(profileColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var saved models.ProfileDB
	err = sqlx.GetContext(ctx, pickExecutor(ctx, r.db, r.txGetter), &saved, query, args...)
	logQuery(query, args, saved.ID, err)
	if err != nil {
		return nil, err
	}

	return &saved, nil
}
