package service

import (
	"context"
	"path/filepath"
	"time"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"
)

// DocumentProcessor sequences the document-processing pipeline: stage,
// normalize, OCR, classify and map, relocate, persist, audit. It owns the
// temp-file lifecycle and guarantees exactly one audit row per run.
type DocumentProcessor struct {
	files        domain.FileStore
	converter    domain.PDFConverter
	ocr          domain.OCRGateway
	panRepo      domain.PanRepository
	voterRepo    domain.VoterIDRepository
	passportRepo domain.PassportRepository
	logRepo      domain.DocumentLogRepository
	logger       domain.Logger
}

// NewProcessingService wires the pipeline stages together.
func NewProcessingService(
	files domain.FileStore,
	converter domain.PDFConverter,
	ocr domain.OCRGateway,
	panRepo domain.PanRepository,
	voterRepo domain.VoterIDRepository,
	passportRepo domain.PassportRepository,
	logRepo domain.DocumentLogRepository,
	logger domain.Logger,
) *DocumentProcessor {
	return &DocumentProcessor{
		files:        files,
		converter:    converter,
		ocr:          ocr,
		panRepo:      panRepo,
		voterRepo:    voterRepo,
		passportRepo: passportRepo,
		logRepo:      logRepo,
		logger:       logger,
	}
}

// pipelineState tracks the working files a run creates. relocated is set
// immediately after a successful move so cleanup never deletes a file that
// already lives in permanent storage.
type pipelineState struct {
	stagedPath    string
	convertedPath string
	relocated     bool
	docType       domain.DocumentType
}

// Process runs the pipeline for a single upload. On failure the original
// error propagates unchanged to the caller after the failure audit row and
// the cleanup contract have run. An empty upload is rejected before the
// pipeline starts and is not logged as a run.
func (p *DocumentProcessor) Process(ctx context.Context, upload *domain.Upload, username string) (*domain.ProcessingResult, error) {
	if upload == nil || upload.Content == nil || upload.Size == 0 {
		return nil, apperrors.NewValidationError(domain.ErrEmptyUpload.Error())
	}

	state := &pipelineState{docType: domain.DocumentTypeUnknown}
	defer p.cleanup(state)

	result, err := p.run(ctx, upload, username, state)

	status := domain.StatusVerified
	detail := ""
	if err != nil {
		status = statusForError(err)
		detail = err.Error()
	}
	p.audit(ctx, username, upload.Filename, state.docType, status, detail)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// run executes the strictly sequential stages. Any returned error
// short-circuits to the single catch point in Process.
func (p *DocumentProcessor) run(ctx context.Context, upload *domain.Upload, username string, state *pipelineState) (*domain.ProcessingResult, error) {
	stagedPath, uniqueName, err := p.files.Stage(upload)
	if err != nil {
		return nil, err
	}
	state.stagedPath = stagedPath

	imageToProcess := stagedPath
	if p.converter.IsPDF(upload.ContentType, stagedPath) {
		p.logger.Info("PDF file detected, converting to image", "file", uniqueName)
		convertedPath, err := p.converter.ConvertFirstPage(stagedPath)
		if err != nil {
			return nil, err
		}
		state.convertedPath = convertedPath
		imageToProcess = convertedPath
	}

	ocrResult, err := p.ocr.Submit(ctx, imageToProcess)
	if err != nil {
		return nil, err
	}

	docType := ClassifyDocumentType(ocrResult.DocumentType)
	if docType == domain.DocumentTypeUnknown {
		return nil, apperrors.NewValidationError("unsupported document type: " + ocrResult.DocumentType)
	}
	state.docType = docType

	fields, err := MapFields(docType, ocrResult.Fields, p.logger)
	if err != nil {
		return nil, err
	}

	uploadedAt := time.Now().UTC()
	relativePath, err := p.files.Relocate(stagedPath, docType, uploadedAt, uniqueName)
	if err != nil {
		return nil, err
	}
	state.relocated = true

	record, err := p.persist(ctx, docType, fields, relativePath, username, uploadedAt)
	if err != nil {
		return nil, err
	}

	p.logger.Info("Document processed", "doc_type", docType, "uploader", username)
	return &domain.ProcessingResult{DocumentType: docType, Record: record}, nil
}

// persist constructs the typed record with all fields resolved and saves it.
// The store's unique index on the natural identifier is the only duplicate
// guard; a violation surfaces as a conflict error.
func (p *DocumentProcessor) persist(
	ctx context.Context,
	docType domain.DocumentType,
	fields *ExtractedFields,
	imagePath, username string,
	uploadedAt time.Time,
) (any, error) {
	switch docType {
	case domain.DocumentTypePanCard:
		return p.panRepo.Save(ctx, &domain.PanRecord{
			PanNumber:  fields.Identifier,
			Name:       fields.Name,
			Gender:     fields.Gender,
			DOB:        fields.DOB,
			ImagePath:  imagePath,
			UploadedBy: username,
			UploadedAt: uploadedAt,
		})
	case domain.DocumentTypeVoterID:
		return p.voterRepo.Save(ctx, &domain.VoterIDRecord{
			VoterIDNumber: fields.Identifier,
			Name:          fields.Name,
			Gender:        fields.Gender,
			DOB:           fields.DOB,
			ImagePath:     imagePath,
			UploadedBy:    username,
			UploadedAt:    uploadedAt,
		})
	case domain.DocumentTypePassport:
		return p.passportRepo.Save(ctx, &domain.PassportRecord{
			PassportNumber: fields.Identifier,
			Name:           fields.Name,
			Gender:         fields.Gender,
			DOB:            fields.DOB,
			ExpiryDate:     fields.ExpiryDate,
			ImagePath:      imagePath,
			UploadedBy:     username,
			UploadedAt:     uploadedAt,
		})
	}
	return nil, apperrors.NewValidationError("unsupported document type: " + string(docType))
}

// audit writes the single DocumentLog row for this run. Audit failures are
// logged but never override the pipeline outcome.
func (p *DocumentProcessor) audit(ctx context.Context, username, originalFilename string, docType domain.DocumentType, status domain.DocumentStatus, detail string) {
	fileName := filepath.Base(filepath.ToSlash(originalFilename))
	if originalFilename == "" {
		fileName = "unknownfile"
	}

	entry := &domain.DocumentLog{
		Uploader:  username,
		FileName:  fileName,
		DocType:   docType,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if detail != "" {
		entry.Details = &detail
	}

	if err := p.logRepo.Save(ctx, entry); err != nil {
		p.logger.Error("Failed to write audit log entry", err,
			"uploader", username, "file", fileName, "status", status)
		return
	}
	p.logger.Info("Audit entry recorded",
		"uploader", username, "file", fileName, "doc_type", docType, "status", status)
}

// cleanup runs unconditionally at pipeline exit: the converted derivative
// is always deleted; the staged file only when it was not relocated.
func (p *DocumentProcessor) cleanup(state *pipelineState) {
	if state.convertedPath != "" {
		p.files.Remove(state.convertedPath)
	}
	if state.stagedPath != "" && !state.relocated {
		p.files.Remove(state.stagedPath)
	}
}

// statusForError maps the failure taxonomy onto audit statuses: OCR
// transport and service failures are FAILED_OCR, a failed permanent move is
// FAILED_STORAGE_MOVE, everything else is REJECTED.
func statusForError(err error) domain.DocumentStatus {
	switch {
	case apperrors.IsType(err, apperrors.ErrorTypeNetwork):
		return domain.StatusFailedOCR
	case apperrors.IsType(err, apperrors.ErrorTypeInternal):
		return domain.StatusFailedStorageMove
	}
	return domain.StatusRejected
}
