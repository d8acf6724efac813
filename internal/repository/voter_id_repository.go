package repository

import (
	"context"
	"database/sql"
	"errors"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"

	"github.com/jmoiron/sqlx"
)

type voterIDRepository struct {
	db *sqlx.DB
}

// NewVoterIDRepository creates a PostgreSQL-backed Voter ID record repository.
func NewVoterIDRepository(db *sqlx.DB) domain.VoterIDRepository {
	return &voterIDRepository{db: db}
}

func (r *voterIDRepository) Save(ctx context.Context, record *domain.VoterIDRecord) (*domain.VoterIDRecord, error) {
	query := `INSERT INTO voter_id_data (voter_id_number, name, gender, dob, image_path, uploaded_by, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	var id int64
	err := r.db.QueryRowxContext(ctx, query,
		record.VoterIDNumber,
		record.Name,
		record.Gender,
		record.DOB,
		record.ImagePath,
		record.UploadedBy,
		record.UploadedAt,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.NewConflictError("a document with this voter ID number already exists", err)
		}
		return nil, err
	}

	saved := *record
	saved.ID = id
	return &saved, nil
}

func (r *voterIDRepository) FindByID(ctx context.Context, id int64) (*domain.VoterIDRecord, error) {
	var record domain.VoterIDRecord
	query := `SELECT id, voter_id_number, name, gender, dob, image_path, uploaded_by, uploaded_at
		FROM voter_id_data WHERE id = $1`
	if err := r.db.GetContext(ctx, &record, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}
		return nil, err
	}
	return &record, nil
}
