package repository

import (
	"context"

	"doc-processor/internal/domain"

	"github.com/jmoiron/sqlx"
)

type documentLogRepository struct {
	db *sqlx.DB
}

// NewDocumentLogRepository creates a PostgreSQL-backed audit log repository.
func NewDocumentLogRepository(db *sqlx.DB) domain.DocumentLogRepository {
	return &documentLogRepository{db: db}
}

func (r *documentLogRepository) Save(ctx context.Context, entry *domain.DocumentLog) error {
	query := `INSERT INTO document_log (uploader, file_name, doc_type, status, details, created_at)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`

	return r.db.QueryRowxContext(ctx, query,
		entry.Uploader,
		entry.FileName,
		entry.DocType,
		entry.Status,
		entry.Details,
		entry.CreatedAt,
	).Scan(&entry.ID)
}

func (r *documentLogRepository) FindAll(ctx context.Context) ([]*domain.DocumentLog, error) {
	var logs []*domain.DocumentLog
	query := `SELECT id, uploader, file_name, doc_type, status, details, created_at
		FROM document_log ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &logs, query); err != nil {
		return nil, err
	}
	return logs, nil
}
