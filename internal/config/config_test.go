package config

import (
	"testing"
	"time"
)

const defaultMaxFileSize int64 = 50 * 1024 * 1024

func TestNewConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("TEMP_DIR", "")
	t.Setenv("STORAGE_DIR", "")
	t.Setenv("OCR_URL", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_EXPIRATION", "")
	t.Setenv("MAX_FILE_SIZE", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SUPERADMIN_USERNAME", "")
	t.Setenv("SUPERADMIN_PASSWORD", "")

	cfg := NewConfig()

	if cfg.GetServerPort() != "8080" {
		t.Fatalf("expected default server port 8080, got %s", cfg.GetServerPort())
	}
	if cfg.GetTempDir() != "./uploads/tmp" {
		t.Fatalf("expected default temp dir ./uploads/tmp, got %s", cfg.GetTempDir())
	}
	if cfg.GetStorageDir() != "./uploads/documents" {
		t.Fatalf("expected default storage dir ./uploads/documents, got %s", cfg.GetStorageDir())
	}
	if cfg.GetOCRURL() != "http://localhost:8000" {
		t.Fatalf("expected default OCR url http://localhost:8000, got %s", cfg.GetOCRURL())
	}
	if cfg.GetJWTExpiry() != 24*time.Hour {
		t.Fatalf("expected default jwt expiry 24h, got %s", cfg.GetJWTExpiry())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "info" {
		t.Fatalf("expected default log level info, got %s", cfg.GetLogLevel())
	}
	if cfg.GetSuperAdminUsername() != "superadmin" {
		t.Fatalf("expected default superadmin username, got %s", cfg.GetSuperAdminUsername())
	}
}

func TestNewConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("TEMP_DIR", "/var/tmp/staging")
	t.Setenv("STORAGE_DIR", "/srv/documents")
	t.Setenv("OCR_URL", "http://ocr.internal:9000")
	t.Setenv("DATABASE_URL", "postgres://localhost/docs")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRATION", "2h")
	t.Setenv("MAX_FILE_SIZE", "12345")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9090" {
		t.Fatalf("expected server port 9090, got %s", cfg.GetServerPort())
	}
	if cfg.GetTempDir() != "/var/tmp/staging" {
		t.Fatalf("expected temp dir /var/tmp/staging, got %s", cfg.GetTempDir())
	}
	if cfg.GetStorageDir() != "/srv/documents" {
		t.Fatalf("expected storage dir /srv/documents, got %s", cfg.GetStorageDir())
	}
	if cfg.GetOCRURL() != "http://ocr.internal:9000" {
		t.Fatalf("expected OCR url http://ocr.internal:9000, got %s", cfg.GetOCRURL())
	}
	if cfg.GetDatabaseURL() != "postgres://localhost/docs" {
		t.Fatalf("expected database url, got %s", cfg.GetDatabaseURL())
	}
	if cfg.GetJWTSecret() != "secret" {
		t.Fatalf("expected jwt secret secret, got %s", cfg.GetJWTSecret())
	}
	if cfg.GetJWTExpiry() != 2*time.Hour {
		t.Fatalf("expected jwt expiry 2h, got %s", cfg.GetJWTExpiry())
	}
	if cfg.GetMaxFileSize() != 12345 {
		t.Fatalf("expected max file size 12345, got %d", cfg.GetMaxFileSize())
	}
	if cfg.GetLogLevel() != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.GetLogLevel())
	}
}

func TestNewConfig_Fallbacks(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "9091")
	t.Setenv("MAX_FILE_SIZE", "not-a-number")
	t.Setenv("JWT_EXPIRATION", "soon")

	cfg := NewConfig()

	if cfg.GetServerPort() != "9091" {
		t.Fatalf("expected server port 9091, got %s", cfg.GetServerPort())
	}
	if cfg.GetMaxFileSize() != defaultMaxFileSize {
		t.Fatalf("expected default max file size %d, got %d", defaultMaxFileSize, cfg.GetMaxFileSize())
	}
	if cfg.GetJWTExpiry() != 24*time.Hour {
		t.Fatalf("expected default jwt expiry 24h, got %s", cfg.GetJWTExpiry())
	}
}
