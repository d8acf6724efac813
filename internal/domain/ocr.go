package domain

// OCRResponse matches the root JSON object returned by the OCR microservice,
// e.g. {"results": [...]}.
type OCRResponse struct {
	Results []OCRResult `json:"results"`
}

// OCRResult is one element of the "results" list. Fields is nil when the
// service could not extract anything; Message and Error carry the
// service-supplied failure text.
type OCRResult struct {
	Filename     string            `json:"filename"`
	DocumentType string            `json:"document_type"`
	Fields       map[string]string `json:"ocr_results,omitempty"`
	Message      *string           `json:"message,omitempty"`
	Error        *string           `json:"error,omitempty"`
}

// Failed reports whether the service marked this result as a failure:
// no extracted fields, or a message, or an error is present.
func (r *OCRResult) Failed() bool {
	return r.Fields == nil || r.Message != nil || r.Error != nil
}

// FailureDetail returns the service-supplied failure text, preferring
// message over error, with a default when neither is present.
func (r *OCRResult) FailureDetail() string {
	if r.Message != nil && *r.Message != "" {
		return *r.Message
	}
	if r.Error != nil && *r.Error != "" {
		return *r.Error
	}
	return "OCR service reported a failure without detail"
}
