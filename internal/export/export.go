// Package export serializes a recognized document back out of the model:
// indented JSON for storage and APIs, and formatted plain text whose re-parse
// preserves the document's item counts.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/resume-parser/internal/types"
)

// ToJSON marshals a document to pretty-printed JSON.
func ToJSON(doc *types.Document) ([]byte, error) {
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return out, nil
}

// FromJSON unmarshals a document previously produced by ToJSON.
func FromJSON(data []byte) (*types.Document, error) {
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return &doc, nil
}
