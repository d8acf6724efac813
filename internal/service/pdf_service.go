package service

import (
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"

	"github.com/gen2brain/go-fitz"
)

// renderDPI is the resolution used when rasterizing PDF pages for OCR.
const renderDPI = 300

var errNoPages = errors.New("PDF has no pages")

// PDFService rasterizes the first page of a PDF into a PNG derivative the
// OCR service can consume. The derivative is disposable; the original PDF
// remains the document of record.
type PDFService struct {
	logger domain.Logger
}

// NewPDFConverter creates a new PDF converter
func NewPDFConverter(logger domain.Logger) *PDFService {
	return &PDFService{logger: logger}
}

// IsPDF reports whether the upload should be treated as a PDF: either the
// declared content type or the file extension suffices.
func (s *PDFService) IsPDF(contentType, filename string) bool {
	if contentType == "application/pdf" {
		return true
	}
	return strings.EqualFold(filepath.Ext(filename), ".pdf")
}

// ConvertFirstPage renders page 1 of the PDF at 300 DPI and encodes it as a
// PNG file next to the source. The caller owns deleting the returned file.
func (s *PDFService) ConvertFirstPage(pdfPath string) (string, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return "", apperrors.NewProcessingError("failed to open PDF for conversion", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return "", apperrors.NewProcessingError("failed to convert PDF to image", errNoPages)
	}

	img, err := doc.ImageDPI(0, renderDPI)
	if err != nil {
		return "", apperrors.NewProcessingError("failed to convert PDF to image", err)
	}

	base := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	outPath := filepath.Join(filepath.Dir(pdfPath), base+"_page1.png")

	out, err := os.Create(outPath)
	if err != nil {
		return "", apperrors.NewProcessingError("failed to write converted image", err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		os.Remove(outPath)
		return "", apperrors.NewProcessingError("failed to write converted image", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(outPath)
		return "", apperrors.NewProcessingError("failed to write converted image", err)
	}

	s.logger.Info("PDF converted to image", "source", filepath.Base(pdfPath), "image", filepath.Base(outPath))
	return outPath, nil
}
