package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	apperrors "doc-processor/pkg/errors"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scan.png")
	if err := os.WriteFile(path, []byte("png-bytes"), 0o644); err != nil {
		t.Fatalf("Failed to write test image: %v", err)
	}
	return path
}

func ocrServer(t *testing.T, status int, body string, gotRequest *http.Request) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotRequest != nil {
			_ = r.ParseMultipartForm(1 << 20)
			*gotRequest = *r
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestOCRClient_Success(t *testing.T) {
	var got http.Request
	server := ocrServer(t, http.StatusOK,
		`{"results":[{"filename":"scan.png","document_type":"pan","ocr_results":{"pan":"ABCDE1234F","name":"John Doe"}}]}`,
		&got)
	defer server.Close()

	client := NewOCRClient(server.URL, NewMockLogger())
	result, err := client.Submit(context.Background(), writeTestImage(t))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if result.DocumentType != "pan" {
		t.Errorf("Expected document_type pan, got %s", result.DocumentType)
	}
	if result.Fields["pan"] != "ABCDE1234F" {
		t.Errorf("Expected pan field ABCDE1234F, got %s", result.Fields["pan"])
	}

	if got.Method != http.MethodPost {
		t.Errorf("Expected POST, got %s", got.Method)
	}
	if got.URL.Path != "/ocr/process/" {
		t.Errorf("Expected path /ocr/process/, got %s", got.URL.Path)
	}
	if got.MultipartForm == nil || len(got.MultipartForm.File["files"]) != 1 {
		t.Error("Expected multipart field 'files' with one file")
	}
}

func TestOCRClient_EmptyResultList(t *testing.T) {
	server := ocrServer(t, http.StatusOK, `{"results":[]}`, nil)
	defer server.Close()

	client := NewOCRClient(server.URL, NewMockLogger())
	_, err := client.Submit(context.Background(), writeTestImage(t))
	if err == nil {
		t.Fatal("Expected error for empty result list")
	}
	if !strings.Contains(err.Error(), "empty result list") {
		t.Errorf("Expected empty-result error, got %q", err.Error())
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNetwork) {
		t.Error("Expected a network-class error")
	}
}

func TestOCRClient_MessageWinsOverError(t *testing.T) {
	server := ocrServer(t, http.StatusOK,
		`{"results":[{"filename":"scan.png","document_type":"pan","message":"image too blurry","error":"internal failure"}]}`,
		nil)
	defer server.Close()

	client := NewOCRClient(server.URL, NewMockLogger())
	_, err := client.Submit(context.Background(), writeTestImage(t))
	if err == nil {
		t.Fatal("Expected error for failed OCR result")
	}
	if !strings.Contains(err.Error(), "image too blurry") {
		t.Errorf("Expected message text to win, got %q", err.Error())
	}
}

func TestOCRClient_ErrorFieldUsedWhenNoMessage(t *testing.T) {
	server := ocrServer(t, http.StatusOK,
		`{"results":[{"filename":"scan.png","document_type":"pan","error":"segmentation failed"}]}`,
		nil)
	defer server.Close()

	client := NewOCRClient(server.URL, NewMockLogger())
	_, err := client.Submit(context.Background(), writeTestImage(t))
	if err == nil {
		t.Fatal("Expected error for failed OCR result")
	}
	if !strings.Contains(err.Error(), "segmentation failed") {
		t.Errorf("Expected error text, got %q", err.Error())
	}
}

func TestOCRClient_MissingFieldsIsFailure(t *testing.T) {
	// ocr_results absent without message or error still marks the call failed
	server := ocrServer(t, http.StatusOK,
		`{"results":[{"filename":"scan.png","document_type":"pan"}]}`,
		nil)
	defer server.Close()

	client := NewOCRClient(server.URL, NewMockLogger())
	_, err := client.Submit(context.Background(), writeTestImage(t))
	if err == nil {
		t.Fatal("Expected error when ocr_results is absent")
	}
}

func TestOCRClient_NonSuccessStatus(t *testing.T) {
	server := ocrServer(t, http.StatusInternalServerError, `{"detail":"boom"}`, nil)
	defer server.Close()

	client := NewOCRClient(server.URL, NewMockLogger())
	_, err := client.Submit(context.Background(), writeTestImage(t))
	if err == nil {
		t.Fatal("Expected error for non-2xx status")
	}
	if !strings.Contains(err.Error(), "OCR service call failed") {
		t.Errorf("Expected uniform transport error, got %q", err.Error())
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeNetwork) {
		t.Error("Expected a network-class error")
	}
}

func TestOCRClient_MalformedBody(t *testing.T) {
	server := ocrServer(t, http.StatusOK, `{"results": not-json`, nil)
	defer server.Close()

	client := NewOCRClient(server.URL, NewMockLogger())
	_, err := client.Submit(context.Background(), writeTestImage(t))
	if err == nil {
		t.Fatal("Expected error for malformed body")
	}
	if !strings.Contains(err.Error(), "OCR service call failed") {
		t.Errorf("Expected uniform transport error, got %q", err.Error())
	}
}

func TestOCRClient_MissingImageFile(t *testing.T) {
	client := NewOCRClient("http://localhost:0", NewMockLogger())
	_, err := client.Submit(context.Background(), filepath.Join(t.TempDir(), "missing.png"))
	if err == nil {
		t.Fatal("Expected error for missing image file")
	}
}
