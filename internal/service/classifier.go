package service

import (
	"strings"
	"time"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"
)

// dateLayout is the fixed day/month/year pattern the OCR service emits.
const dateLayout = "02/01/2006"

// OCR field keys. One identifier key per document type is mandatory; the
// rest are best-effort.
const (
	fieldPan            = "pan"
	fieldVoterID        = "voter_id"
	fieldPassportNumber = "passport_number"
	fieldName           = "name"
	fieldGender         = "gender"
	fieldDOB            = "dob"
	fieldExpiryDate     = "expiry_date"
)

// ClassifyDocumentType maps the OCR service's free-form label onto the
// closed set of supported document types. Unrecognized labels map to
// UNKNOWN, which is always fatal for persistence purposes.
func ClassifyDocumentType(label string) domain.DocumentType {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "pan":
		return domain.DocumentTypePanCard
	case "passport":
		return domain.DocumentTypePassport
	case "voterid_new", "voterid_old":
		return domain.DocumentTypeVoterID
	}
	return domain.DocumentTypeUnknown
}

// ExtractedFields is the parsed, per-type view of the OCR field map. The
// identifier is always present; the rest are nil when missing or unparseable.
type ExtractedFields struct {
	Identifier string
	Name       *string
	Gender     *string
	DOB        *time.Time
	ExpiryDate *time.Time
}

// identifierField returns the mandatory field key and its human-readable
// name for a supported document type.
func identifierField(docType domain.DocumentType) (key, label string) {
	switch docType {
	case domain.DocumentTypePanCard:
		return fieldPan, "PAN number"
	case domain.DocumentTypeVoterID:
		return fieldVoterID, "voter ID number"
	case domain.DocumentTypePassport:
		return fieldPassportNumber, "passport number"
	}
	return "", ""
}

// MapFields validates the mandatory natural identifier and best-effort
// parses the optional fields. The identifier check runs first so a missing
// identifier is reported even when other fields are also malformed.
// Unparseable dates become absent values, never sentinels.
func MapFields(docType domain.DocumentType, fields map[string]string, logger domain.Logger) (*ExtractedFields, error) {
	key, label := identifierField(docType)
	if key == "" {
		return nil, apperrors.NewValidationError("unsupported document type: " + string(docType))
	}

	identifier := strings.TrimSpace(fields[key])
	if identifier == "" {
		return nil, apperrors.NewValidationError(label + " is required and was not extracted")
	}

	extracted := &ExtractedFields{
		Identifier: identifier,
		Name:       optionalString(fields, fieldName),
		Gender:     optionalString(fields, fieldGender),
		DOB:        optionalDate(fields, fieldDOB, docType, logger),
	}
	if docType == domain.DocumentTypePassport {
		extracted.ExpiryDate = optionalDate(fields, fieldExpiryDate, docType, logger)
	}
	return extracted, nil
}

func optionalString(fields map[string]string, key string) *string {
	value := strings.TrimSpace(fields[key])
	if value == "" {
		return nil
	}
	return &value
}

func optionalDate(fields map[string]string, key string, docType domain.DocumentType, logger domain.Logger) *time.Time {
	raw := strings.TrimSpace(fields[key])
	if raw == "" {
		return nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		logger.Warn("Unparseable date in OCR fields, storing as absent",
			"field", key, "value", raw, "doc_type", docType)
		return nil
	}
	return &parsed
}
