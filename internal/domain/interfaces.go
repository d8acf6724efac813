package domain

import (
	"context"
	"time"
)

// FileStore owns the temp and permanent storage roots. Stage copies an
// upload into the temp area under a collision-resistant unique name;
// Relocate moves a staged file into permanent, type- and date-partitioned
// storage and returns a slash-separated path relative to the storage root.
type FileStore interface {
	Stage(upload *Upload) (path string, uniqueName string, err error)
	Relocate(stagedPath string, docType DocumentType, uploadedAt time.Time, uniqueName string) (relativePath string, err error)
	Remove(path string)
}

// PDFConverter detects PDF input and rasterizes page 1 to a PNG derivative.
type PDFConverter interface {
	IsPDF(contentType, filename string) bool
	ConvertFirstPage(pdfPath string) (pngPath string, err error)
}

// OCRGateway submits an image to the external OCR service and returns the
// first successful result. Transport failures and service-reported failures
// both surface as errors; a single attempt is made per call.
type OCRGateway interface {
	Submit(ctx context.Context, imagePath string) (*OCRResult, error)
}

// ProcessingService runs the document-processing pipeline end to end for
// one upload on behalf of the named uploader.
type ProcessingService interface {
	Process(ctx context.Context, upload *Upload, username string) (*ProcessingResult, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetTempDir() string
	GetStorageDir() string
	GetOCRURL() string
	GetDatabaseURL() string
	GetJWTSecret() string
	GetJWTExpiry() time.Duration
	GetMaxFileSize() int64
	GetLogLevel() string
	GetSuperAdminUsername() string
	GetSuperAdminPassword() string
}
