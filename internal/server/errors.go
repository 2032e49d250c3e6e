package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrDocumentNotFound indicates no stored document exists for the ID
type ErrDocumentNotFound struct {
	ID uuid.UUID
}

func (e *ErrDocumentNotFound) Error() string {
	return fmt.Sprintf("document not found: %s", e.ID)
}

// ErrStorageUnavailable indicates the server runs without a database
type ErrStorageUnavailable struct{}

func (e *ErrStorageUnavailable) Error() string {
	return "document storage is not configured"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrDocumentNotFound:
		return http.StatusNotFound
	case *ErrStorageUnavailable:
		return http.StatusServiceUnavailable
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
