package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// UserRoleWriteRepository assigns roles to users.
type UserRoleWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserRoleWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserRoleWriteRepository {
	return &UserRoleWriteRepository{db: db, txGetter: txGetter}
}

// Assign grants role to userID. Assigning a role twice is a no-op.
func (r *UserRoleWriteRepository) Assign(ctx context.Context, userID uuid.UUID, role string) error {
	query, args, err := psql.Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, role).
		Suffix("ON CONFLICT (user_id, role) DO NOTHING").
		ToSql()
	if err != nil {
		return err
	}

	res, err := pickExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, args, rowsAffected, err)

	return err
}

// UserRoleReadRepository checks user roles.
type UserRoleReadRepository struct {
	db *sqlx.DB
}

func NewUserRoleReadRepository(db *sqlx.DB) *UserRoleReadRepository {
	return &UserRoleReadRepository{db: db}
}

// HasRole reports whether userID holds role.
func (r *UserRoleReadRepository) HasRole(ctx context.Context, userID uuid.UUID, role string) (bool, error) {
	query, args, err := psql.Select("1").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userID, "role": role}).
		Prefix("SELECT EXISTS (").
		Suffix(")").
		ToSql()
	if err != nil {
		return false, err
	}

	var exists bool
	err = r.db.GetContext(ctx, &exists, query, args...)
	logQuery(query, args, exists, err)

	return exists, err
}
