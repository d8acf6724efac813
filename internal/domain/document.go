package domain

import (
	"context"
	"time"
)

// DocumentType is the closed set of document kinds the system can persist.
// UNKNOWN is used when classification of the OCR label fails.
type DocumentType string

const (
	DocumentTypePanCard  DocumentType = "PAN_CARD"
	DocumentTypeVoterID  DocumentType = "VOTER_ID"
	DocumentTypePassport DocumentType = "PASSPORT"
	DocumentTypeUnknown  DocumentType = "UNKNOWN"
)

// DocumentStatus is the outcome of a single upload attempt.
type DocumentStatus string

const (
	StatusUploaded          DocumentStatus = "UPLOADED"
	StatusVerified          DocumentStatus = "VERIFIED"
	StatusRejected          DocumentStatus = "REJECTED"
	StatusFailedOCR         DocumentStatus = "FAILED_OCR"
	StatusFailedStorageMove DocumentStatus = "FAILED_STORAGE_MOVE"
)

// PanRecord is the structured data extracted from a PAN card.
// The PAN number is the natural identifier and carries a unique index.
type PanRecord struct {
	ID         int64      `db:"id" json:"id"`
	PanNumber  string     `db:"pan_number" json:"pan_number"`
	Name       *string    `db:"name" json:"name,omitempty"`
	Gender     *string    `db:"gender" json:"gender,omitempty"`
	DOB        *time.Time `db:"dob" json:"dob,omitempty"`
	ImagePath  string     `db:"image_path" json:"image_path"`
	UploadedBy string     `db:"uploaded_by" json:"uploaded_by"`
	UploadedAt time.Time  `db:"uploaded_at" json:"uploaded_at"`
}

// VoterIDRecord is the structured data extracted from a Voter ID card.
type VoterIDRecord struct {
	ID            int64      `db:"id" json:"id"`
	VoterIDNumber string     `db:"voter_id_number" json:"voter_id_number"`
	Name          *string    `db:"name" json:"name,omitempty"`
	Gender        *string    `db:"gender" json:"gender,omitempty"`
	DOB           *time.Time `db:"dob" json:"dob,omitempty"`
	ImagePath     string     `db:"image_path" json:"image_path"`
	UploadedBy    string     `db:"uploaded_by" json:"uploaded_by"`
	UploadedAt    time.Time  `db:"uploaded_at" json:"uploaded_at"`
}

// PassportRecord is the structured data extracted from a Passport.
type PassportRecord struct {
	ID             int64      `db:"id" json:"id"`
	PassportNumber string     `db:"passport_number" json:"passport_number"`
	Name           *string    `db:"name" json:"name,omitempty"`
	Gender         *string    `db:"gender" json:"gender,omitempty"`
	DOB            *time.Time `db:"dob" json:"dob,omitempty"`
	ExpiryDate     *time.Time `db:"expiry_date" json:"expiry_date,omitempty"`
	ImagePath      string     `db:"image_path" json:"image_path"`
	UploadedBy     string     `db:"uploaded_by" json:"uploaded_by"`
	UploadedAt     time.Time  `db:"uploaded_at" json:"uploaded_at"`
}

// DocumentLog is the audit row written exactly once per pipeline run.
// FileName stores the basename of the uploaded file, never path components.
type DocumentLog struct {
	ID        int64          `db:"id" json:"id"`
	Uploader  string         `db:"uploader" json:"uploader"`
	FileName  string         `db:"file_name" json:"file_name"`
	DocType   DocumentType   `db:"doc_type" json:"doc_type"`
	Status    DocumentStatus `db:"status" json:"status"`
	Details   *string        `db:"details" json:"details,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"created_at"`
}

// ProcessingResult is returned to the upload caller after a successful run.
type ProcessingResult struct {
	DocumentType DocumentType `json:"document_type"`
	Record       any          `json:"record"`
}

// PanRepository defines persistence operations for PAN records.
type PanRepository interface {
	Save(ctx context.Context, record *PanRecord) (*PanRecord, error)
	FindByID(ctx context.Context, id int64) (*PanRecord, error)
}

// VoterIDRepository defines persistence operations for Voter ID records.
type VoterIDRepository interface {
	Save(ctx context.Context, record *VoterIDRecord) (*VoterIDRecord, error)
	FindByID(ctx context.Context, id int64) (*VoterIDRecord, error)
}

// PassportRepository defines persistence operations for Passport records.
type PassportRepository interface {
	Save(ctx context.Context, record *PassportRecord) (*PassportRecord, error)
	FindByID(ctx context.Context, id int64) (*PassportRecord, error)
}

// DocumentLogRepository defines persistence operations for audit rows.
type DocumentLogRepository interface {
	Save(ctx context.Context, entry *DocumentLog) error
	FindAll(ctx context.Context) ([]*DocumentLog, error)
}
