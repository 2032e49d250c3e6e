package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Metadata describes one ingested resume source.
type Metadata struct {
	Source       string `json:"source,omitempty"` // originating file path
	SourceFormat string `json:"source_format"`    // "text", "html" or "pdf"
	Timestamp    string `json:"timestamp"`        // RFC3339 format
	Hash         string `json:"hash"`             // SHA256 hex digest of cleaned text
	WordCount    int    `json:"word_count"`
}

// NewMetadata creates a new Metadata instance with current timestamp
func NewMetadata(content string, source string, sourceFormat string) *Metadata {
	return &Metadata{
		Source:       source,
		SourceFormat: sourceFormat,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Hash:         computeHash(content),
		WordCount:    len(strings.Fields(content)),
	}
}

// computeHash computes SHA256 hash of content and returns hex string
func computeHash(content string) string {
	hash := sha256.Sum256([]byte(content))
	return hex.EncodeToString(hash[:])
}

// ToJSON marshals Metadata to pretty-printed JSON
func (m *Metadata) ToJSON() ([]byte, error) {
	jsonBytes, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return jsonBytes, nil
}
