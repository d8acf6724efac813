package repository

import (
	"context"
	"database/sql"
	"errors"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"

	"github.com/jmoiron/sqlx"
)

type passportRepository struct {
	db *sqlx.DB
}

// NewPassportRepository creates a PostgreSQL-backed Passport record repository.
func NewPassportRepository(db *sqlx.DB) domain.PassportRepository {
	return &passportRepository{db: db}
}

func (r *passportRepository) Save(ctx context.Context, record *domain.PassportRecord) (*domain.PassportRecord, error) {
	query := `INSERT INTO passport_data (passport_number, name, gender, dob, expiry_date, image_path, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		record.PassportNumber,
		record.Name,
		record.Gender,
		record.DOB,
		record.ExpiryDate,
		record.ImagePath,
		record.UploadedBy,
		record.UploadedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("a document with this passport number already exists", err)
		}
		return nil, err
	}

	saved := *record
	saved.ID = id
	return &saved, nil
}

func (r *passportRepository) FindByID(ctx context.Context, id int64) (*domain.PassportRecord, error) {
	var record domain.PassportRecord
	query := `SELECT id, passport_number, name, gender, dob, expiry_date, image_path, uploaded_by, uploaded_at
		FROM passport_data WHERE id = $1`
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}
