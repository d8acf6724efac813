package repository

import (
	"context"
	"database/sql"
	"errors"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
)

// uniqueViolation is the PostgreSQL SQLSTATE for a unique index violation.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

type panRepository struct {
	db *sqlx.DB
}

// NewPanRepository creates a PostgreSQL-backed PAN record repository.
func NewPanRepository(db *sqlx.DB) domain.PanRepository {
	return &panRepository{db: db}
}

func (r *panRepository) Save(ctx context.Context, record *domain.PanRecord) (*domain.PanRecord, error) {
	query := `INSERT INTO pan_data (pan_number, name, gender, dob, image_path, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		record.PanNumber,
		record.Name,
		record.Gender,
		record.DOB,
		record.ImagePath,
		record.UploadedBy,
		record.UploadedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("a document with this PAN number already exists", err)
		}
		return nil, err
	}

	saved := *record
	saved.ID = id
	return &saved, nil
}

func (r *panRepository) FindByID(ctx context.Context, id int64) (*domain.PanRecord, error) {
	var record domain.PanRecord
	query := `SELECT id, pan_number, name, gender, dob, image_path, uploaded_by, uploaded_at
		FROM pan_data WHERE id = $1`
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}
