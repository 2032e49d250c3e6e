package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Smith
john@email.com | (555) 123-4567

EXPERIENCE
Engineer | Acme Inc. | 2015 - 2020
- Built things
`

func writeResumeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunParse_WritesValidatedJSON(t *testing.T) {
	in := writeResumeFile(t, sampleResume)
	out := filepath.Join(t.TempDir(), "doc.json")

	parseOut = out
	parseValidate = true
	defer func() { parseOut = ""; parseValidate = false }()

	require.NoError(t, runParse(nil, []string{in}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sections"`)
	assert.Contains(t, string(data), `"john@email.com"`)
}

func TestRunParse_TextOutput(t *testing.T) {
	in := writeResumeFile(t, sampleResume)
	out := filepath.Join(t.TempDir(), "doc.txt")

	parseOut = out
	parseAsText = true
	defer func() { parseOut = ""; parseAsText = false }()

	require.NoError(t, runParse(nil, []string{in}))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Engineer | Acme Inc.")
}

func TestRunParse_MissingFile(t *testing.T) {
	err := runParse(nil, []string{filepath.Join(t.TempDir(), "absent.txt")})
	require.Error(t, err)
}
