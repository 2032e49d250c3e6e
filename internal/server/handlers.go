package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/ingestion"
	"github.com/jonathan/resume-parser/internal/parsing"
	"github.com/jonathan/resume-parser/internal/types"
)

// ParseRequest is the body of POST /parse.
type ParseRequest struct {
	Text    string `json:"text" validate:"required"`
	FromPDF bool   `json:"from_pdf"`
	Save    bool   `json:"save"`
}

// ParseResponse carries the recognized document and, when persisted, its ID.
type ParseResponse struct {
	ID       string          `json:"id,omitempty"`
	Document *types.Document `json:"document"`
}

// handleParse recognizes the posted resume text and optionally stores the
// result.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if err := s.validate.Struct(&req); err != nil {
		verr := &ErrValidation{Field: "text", Message: "text is required"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	text := ingestion.CleanText(req.Text)
	doc := parsing.New(parsing.Options{FromPDF: req.FromPDF}).Parse(text)

	resp := ParseResponse{Document: doc}
	if req.Save {
		if s.db == nil {
			err := &ErrStorageUnavailable{}
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		id, err := s.db.SaveDocument(r.Context(), doc)
		if err != nil {
			s.errorResponse(w, http.StatusInternalServerError, err.Error())
			return
		}
		resp.ID = id.String()
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleGetDocument fetches one stored document by ID.
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		verr := &ErrValidation{Field: "id", Message: "must be a UUID"}
		s.errorResponse(w, HTTPStatus(verr), verr.Error())
		return
	}

	stored, err := s.db.GetDocument(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if stored == nil {
		nf := &ErrDocumentNotFound{ID: id}
		s.errorResponse(w, HTTPStatus(nf), nf.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, stored)
}

// handleListDocuments returns the most recently stored documents.
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		err := &ErrStorageUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, _ = strconv.Atoi(v)
	}

	docs, err := s.db.ListDocuments(r.Context(), limit)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if docs == nil {
		docs = []db.StoredDocument{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"documents": docs})
}
