package handler

import (
	"net/http"

	"doc-processor/internal/domain"
)

// LogHandler serves the audit trail of upload attempts
type LogHandler struct {
	logRepo domain.DocumentLogRepository
	logger  domain.Logger
}

// NewLogHandler creates a new log handler
func NewLogHandler(logRepo domain.DocumentLogRepository, logger domain.Logger) *LogHandler {
	return &LogHandler{
		logRepo: logRepo,
		logger:  logger,
	}
}

// List returns every audit entry, newest first (ADMIN only)
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.logRepo.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to fetch document logs", err)
		writeServiceError(w, err)
		return
	}

	// Ensure JSON is [] not null when there are no entries.
	if logs == nil {
		logs = make([]*domain.DocumentLog, 0)
	}

	writeJSON(w, http.StatusOK, logs)
}
