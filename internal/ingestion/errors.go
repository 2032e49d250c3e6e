package ingestion

import "fmt"

// HTMLExtractionError indicates that HTML-to-text conversion failed.
type HTMLExtractionError struct {
	Message string
	Cause   error
}

func (e *HTMLExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("html extraction: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("html extraction: %s", e.Message)
}

func (e *HTMLExtractionError) Unwrap() error {
	return e.Cause
}
