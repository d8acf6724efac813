package domain

import "io"

// Upload is the entire input contract of the processing pipeline: a byte
// stream, a declared content type and the client-supplied original filename.
// The filename is untrusted and may be empty or carry path components.
type Upload struct {
	Content     io.Reader
	ContentType string
	Filename    string
	Size        int64
}
