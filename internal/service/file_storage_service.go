package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"

	"github.com/google/uuid"
)

// unsafeChars matches everything outside the safe filename alphabet.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// FileStorage owns the temp staging area and the permanent storage root.
// Every pipeline run works on its own uniquely named file, so no locking
// is needed between concurrent runs.
type FileStorage struct {
	tempDir    string
	storageDir string
	logger     domain.Logger
}

// NewFileStorage creates both storage roots idempotently and returns the store.
func NewFileStorage(tempDir, storageDir string, logger domain.Logger) (*FileStorage, error) {
	for _, dir := range []string{tempDir, storageDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("could not create storage directory %s: %w", dir, err)
		}
	}
	return &FileStorage{
		tempDir:    tempDir,
		storageDir: storageDir,
		logger:     logger,
	}, nil
}

// Stage copies the upload into the temp area under a collision-resistant
// unique name. The file is fully written before Stage returns.
func (s *FileStorage) Stage(upload *domain.Upload) (string, string, error) {
	original := upload.Filename
	if original == "" {
		original = "unknownfile"
	}
	uniqueName := fmt.Sprintf("%d_%s_%s",
		time.Now().UnixNano(),
		uuid.New().String()[:8],
		sanitizeFilename(original),
	)

	target := filepath.Join(s.tempDir, uniqueName)
	out, err := os.Create(target)
	if err != nil {
		return "", "", apperrors.NewProcessingError(fmt.Sprintf("failed to store file %s", uniqueName), err)
	}

	if _, err := io.Copy(out, upload.Content); err != nil {
		out.Close()
		os.Remove(target)
		return "", "", apperrors.NewProcessingError(fmt.Sprintf("failed to store file %s", uniqueName), err)
	}
	if err := out.Close(); err != nil {
		os.Remove(target)
		return "", "", apperrors.NewProcessingError(fmt.Sprintf("failed to store file %s", uniqueName), err)
	}

	s.logger.Debug("Staged upload", "file", uniqueName)
	return target, uniqueName, nil
}

// Relocate moves a staged file into permanent storage partitioned by
// document type and upload day. It returns the stored path relative to the
// storage root with forward slashes, suitable for a database column.
func (s *FileStorage) Relocate(stagedPath string, docType domain.DocumentType, uploadedAt time.Time, uniqueName string) (string, error) {
	datePart := uploadedAt.Format("20060102")
	destDir := filepath.Join(s.storageDir, string(docType), datePart)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", apperrors.NewInternalError("failed to move file to permanent storage", err)
	}

	dest := filepath.Join(destDir, uniqueName)
	if err := os.Rename(stagedPath, dest); err != nil {
		return "", apperrors.NewInternalError("failed to move file to permanent storage", err)
	}

	relative := filepath.ToSlash(filepath.Join(string(docType), datePart, uniqueName))
	s.logger.Info("File relocated to permanent storage", "path", relative)
	return relative, nil
}

// Remove deletes a working file. Missing files are not an error; the
// cleanup contract may run after a successful move.
func (s *FileStorage) Remove(path string) {
	if path == "" {
		return
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn("Failed to remove working file", "path", path, "error", err)
	}
}

// sanitizeFilename strips everything outside the safe alphabet and
// collapses dot runs so the result carries no traversal sequences.
func sanitizeFilename(name string) string {
	sanitized := unsafeChars.ReplaceAllString(name, "_")
	for strings.Contains(sanitized, "..") {
		sanitized = strings.ReplaceAll(sanitized, "..", ".")
	}
	return sanitized
}
