package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"doc-processor/internal/domain"

	"github.com/gorilla/mux"
)

// DocumentHandler handles document upload and lookup HTTP requests
type DocumentHandler struct {
	processingService domain.ProcessingService
	panRepo           domain.PanRepository
	voterRepo         domain.VoterIDRepository
	passportRepo      domain.PassportRepository
	maxFileSize       int64
	logger            domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(
	processingService domain.ProcessingService,
	panRepo domain.PanRepository,
	voterRepo domain.VoterIDRepository,
	passportRepo domain.PassportRepository,
	maxFileSize int64,
	logger domain.Logger,
) *DocumentHandler {
	return &DocumentHandler{
		processingService: processingService,
		panRepo:           panRepo,
		voterRepo:         voterRepo,
		passportRepo:      passportRepo,
		maxFileSize:       maxFileSize,
		logger:            logger,
	}
}

// Upload accepts a multipart document (JPG, PNG, PDF) and runs the
// processing pipeline on behalf of the authenticated uploader.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := GetUserFromContext(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "User not found in context")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "File is required")
		return
	}
	defer file.Close()

	if header.Size == 0 {
		writeError(w, http.StatusBadRequest, domain.ErrEmptyUpload.Error())
		return
	}

	upload := &domain.Upload{
		Content:     file,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
		Size:        header.Size,
	}

	h.logger.Info("Upload received", "uploader", user.Username, "file", header.Filename)

	result, err := h.processingService.Process(r.Context(), upload, user.Username)
	if err != nil {
		h.logger.Error("Document processing failed", err,
			"uploader", user.Username, "file", header.Filename)
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// GetPanByID returns a processed PAN record by its database ID (ADMIN only)
func (h *DocumentHandler) GetPanByID(w http.ResponseWriter, r *http.Request) {
	h.findRecord(w, r, func(ctx context.Context, id int64) (any, error) {
		return h.panRepo.FindByID(ctx, id)
	})
}

// GetVoterIDByID returns a processed Voter ID record by its database ID (ADMIN only)
func (h *DocumentHandler) GetVoterIDByID(w http.ResponseWriter, r *http.Request) {
	h.findRecord(w, r, func(ctx context.Context, id int64) (any, error) {
		return h.voterRepo.FindByID(ctx, id)
	})
}

// GetPassportByID returns a processed Passport record by its database ID (ADMIN only)
func (h *DocumentHandler) GetPassportByID(w http.ResponseWriter, r *http.Request) {
	h.findRecord(w, r, func(ctx context.Context, id int64) (any, error) {
		return h.passportRepo.FindByID(ctx, id)
	})
}

func (h *DocumentHandler) findRecord(w http.ResponseWriter, r *http.Request, find func(context.Context, int64) (any, error)) {
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid record ID")
		return
	}

	record, err := find(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			writeError(w, http.StatusNotFound, "Record not found")
			return
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, record)
}
