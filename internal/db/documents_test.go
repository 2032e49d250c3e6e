package db

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-parser/internal/parsing"
)

func TestStoredDocument_DocumentRoundTrip(t *testing.T) {
	doc := parsing.New(parsing.Options{}).Parse("John Smith\njohn@email.com\n\nSKILLS\nGo, Python")
	content, err := json.Marshal(doc)
	require.NoError(t, err)

	stored := StoredDocument{Content: content}
	back, err := stored.Document()
	require.NoError(t, err)
	require.NotNil(t, back.Contact())
	assert.Equal(t, "john@email.com", back.Contact().Email)
}

func TestStoredDocument_DocumentRejectsMalformedContent(t *testing.T) {
	stored := StoredDocument{Content: []byte("{broken")}
	_, err := stored.Document()
	require.Error(t, err)
}
