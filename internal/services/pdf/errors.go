package pdf

import (
	"errors"
	"fmt"
)

// ErrDocumentFormat matches every DocumentFormatError via errors.Is.
var ErrDocumentFormat = errors.New("pdf: invalid document")

// DocumentFormatError reports bytes that cannot be opened or rendered as a PDF.
type DocumentFormatError struct {
	Page  int // 1-based page that failed to render, 0 when the document itself failed to open
	Cause error
}

func (e *DocumentFormatError) Error() string {
	if e.Page > 0 {
		return fmt.Sprintf("failed to render PDF page %d: %v", e.Page, e.Cause)
	}
	return fmt.Sprintf("failed to open PDF document: %v", e.Cause)
}

func (e *DocumentFormatError) Unwrap() error {
	return e.Cause
}

func (e *DocumentFormatError) Is(target error) bool {
	return target == ErrDocumentFormat
}

var errMissingHeader = errors.New("missing %PDF- header")
