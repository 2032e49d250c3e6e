package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/resume-parser/internal/types"
)

// StoredDocument is one persisted parse result. Content holds the serialized
// document exactly as the recognizer produced it.
type StoredDocument struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	WordCount int             `json:"word_count"`
	Content   json.RawMessage `json:"content"`
	CreatedAt time.Time       `json:"created_at"`
}

// Document unmarshals the stored content back into the document model.
func (s *StoredDocument) Document() (*types.Document, error) {
	var doc types.Document
	if err := json.Unmarshal(s.Content, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stored document: %w", err)
	}
	return &doc, nil
}

// SaveDocument stores a parsed document and returns its new ID. The name is
// the candidate name when contact extraction found one.
func (db *DB) SaveDocument(ctx context.Context, doc *types.Document) (uuid.UUID, error) {
	content, err := json.Marshal(doc)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal document: %w", err)
	}

	name := ""
	if c := doc.Contact(); c != nil {
		name = c.Name
	}

	id := uuid.New()
	_, err = db.pool.Exec(ctx,
		`INSERT INTO documents (id, name, word_count, content)
		 VALUES ($1, $2, $3, $4)`,
		id, name, doc.Metadata.WordCount, content,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save document: %w", err)
	}
	return id, nil
}

// GetDocument fetches one stored document by ID.
// Returns (nil, nil) if no document with that ID exists.
func (db *DB) GetDocument(ctx context.Context, id uuid.UUID) (*StoredDocument, error) {
	var stored StoredDocument
	err := db.pool.QueryRow(ctx,
		`SELECT id, name, word_count, content, created_at
		 FROM documents WHERE id = $1`,
		id,
	).Scan(&stored.ID, &stored.Name, &stored.WordCount, &stored.Content, &stored.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &stored, nil
}

// ListDocuments returns the most recently stored documents, newest first.
// Content is omitted; fetch individual documents for the full payload.
func (db *DB) ListDocuments(ctx context.Context, limit int) ([]StoredDocument, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, name, word_count, created_at
		 FROM documents ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	var docs []StoredDocument
	for rows.Next() {
		var stored StoredDocument
		if err := rows.Scan(&stored.ID, &stored.Name, &stored.WordCount, &stored.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, stored)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read document rows: %w", err)
	}
	return docs, nil
}

// DeleteDocument removes one stored document. Deleting a missing ID is not
// an error.
func (db *DB) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	_, err := db.pool.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}
