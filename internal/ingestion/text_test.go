package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	result := CleanText("line one\r\nline two\rline three")
	assert.Equal(t, "line one\nline two\nline three", result)
}

func TestCleanText_CollapsesExcessiveBlankLines(t *testing.T) {
	result := CleanText("SUMMARY\n\n\n\n\nExperienced engineer")
	assert.Equal(t, "SUMMARY\n\nExperienced engineer", result)
}

func TestCleanText_PreservesBulletIndentation(t *testing.T) {
	input := "EXPERIENCE\n- Built services\n  - Nested detail\n• Unicode bullet"
	result := CleanText(input)
	assert.Equal(t, "EXPERIENCE\n- Built services\n  - Nested detail\n• Unicode bullet", result)
}

func TestCleanText_CollapsesInternalSpaces(t *testing.T) {
	result := CleanText("John    Smith\nSoftware   Engineer  ")
	assert.Equal(t, "John Smith\nSoftware Engineer", result)
}

func TestCleanText_EmptyInput(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestIsBulletLine_KnownMarkers(t *testing.T) {
	assert.True(t, isBulletLine("- item"))
	assert.True(t, isBulletLine("  * item"))
	assert.True(t, isBulletLine("• item"))
	assert.False(t, isBulletLine("plain text"))
	assert.False(t, isBulletLine("-no space after dash"))
}

func TestIngestFromFile_TextFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Smith\r\njohn@email.com\n"), 0644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "John Smith\njohn@email.com", text)
	require.NotNil(t, meta)
	assert.Equal(t, "text", meta.SourceFormat)
	assert.Equal(t, path, meta.Source)
	assert.Equal(t, 3, meta.WordCount)
	assert.Len(t, meta.Hash, 64)
	assert.NotEmpty(t, meta.Timestamp)
}

func TestIngestFromFile_MissingFile(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestIngestFromFile_HTMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.html")
	html := `<html><body><h1>John Smith</h1><p>john@email.com</p></body></html>`
	require.NoError(t, os.WriteFile(path, []byte(html), 0644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "John Smith\njohn@email.com", text)
	assert.Equal(t, "html", meta.SourceFormat)
}

func TestWriteOutput_CreatesFiles(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	meta := NewMetadata("content", "resume.txt", "text")

	require.NoError(t, WriteOutput(outDir, "content", meta))

	cleaned, err := os.ReadFile(filepath.Join(outDir, "resume.cleaned.txt"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(cleaned))

	metaBytes, err := os.ReadFile(filepath.Join(outDir, "resume.meta.json"))
	require.NoError(t, err)
	assert.Contains(t, string(metaBytes), `"word_count": 1`)
}
