package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"
)

// ocrProcessPath is the OCR service endpoint, relative to the base URL.
const ocrProcessPath = "/ocr/process/"

// OCRClient calls the external OCR microservice over multipart HTTP.
// One attempt per upload; retry policy belongs to the caller.
type OCRClient struct {
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
}

// NewOCRClient creates a new OCR gateway for the given base URL.
func NewOCRClient(baseURL string, logger domain.Logger) *OCRClient {
	return &OCRClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		logger: logger,
	}
}

// Submit posts the image under the multipart field "files" and interprets
// the response. Transport failures and service-reported failures both come
// back as errors; on success the returned result carries the extracted
// field map and the document type label.
func (c *OCRClient) Submit(ctx context.Context, imagePath string) (*domain.OCRResult, error) {
	file, err := os.Open(imagePath)
	if err != nil {
		return nil, apperrors.NewNetworkError("OCR service call failed", err)
	}
	defer file.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("files", filepath.Base(imagePath))
	if err != nil {
		return nil, apperrors.NewNetworkError("OCR service call failed", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, apperrors.NewNetworkError("OCR service call failed", err)
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewNetworkError("OCR service call failed", err)
	}

	url := c.baseURL + ocrProcessPath
	c.logger.Info("Calling OCR service", "url", url, "image", filepath.Base(imagePath))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return nil, apperrors.NewNetworkError("OCR service call failed", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkError("OCR service call failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("OCR service returned error status", nil,
			"status", resp.StatusCode, "body", string(respBody))
		return nil, apperrors.NewNetworkError("OCR service call failed",
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody)))
	}

	var ocrResponse domain.OCRResponse
	if err := json.NewDecoder(resp.Body).Decode(&ocrResponse); err != nil {
		return nil, apperrors.NewNetworkError("OCR service call failed", err)
	}

	if len(ocrResponse.Results) == 0 {
		return nil, apperrors.NewNetworkError("OCR service returned an empty result list", nil)
	}

	result := ocrResponse.Results[0]
	if result.Message != nil && result.Error != nil {
		// Simultaneous message and error is unusual input; message wins.
		c.logger.Warn("OCR result carries both message and error",
			"message", *result.Message, "error", *result.Error)
	}
	if result.Failed() {
		return nil, apperrors.NewNetworkError(result.FailureDetail(), nil)
	}

	c.logger.Info("OCR service response received",
		"document_type", result.DocumentType, "fields", len(result.Fields))
	return &result, nil
}
