package types

import "errors"

var (
	// ErrExtractionFailed means the uploaded bytes could not be parsed as a PDF.
	ErrExtractionFailed = errors.New("failed to parse PDF")
	// ErrNoTextExtracted means the PDF parsed fine but yielded no text at all.
	ErrNoTextExtracted = errors.New("no text extracted from PDF")

	ErrDocumentNotFound   = errors.New("document not found")
	ErrInvalidAnswerShape = errors.New("AI answer is missing required keys")
	ErrStorageWriteFailed = errors.New("failed to write to storage")
)
