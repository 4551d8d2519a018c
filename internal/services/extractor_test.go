package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeslide/internal/apperrors"
)

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestExtractPlainTextVerbatim(t *testing.T) {
	content := "John Doe\nSoftware Engineer\n10 years of experience building backend systems."
	path := writeTempFile(t, "resume.txt", []byte(content))

	extractor := NewExtractorService()
	text, err := extractor.Extract(path, "text/plain")

	require.NoError(t, err)
	assert.Equal(t, content, text)
}

func TestExtractZeroByteFileFails(t *testing.T) {
	path := writeTempFile(t, "empty.txt", nil)

	extractor := NewExtractorService()
	_, err := extractor.Extract(path, "text/plain")

	require.Error(t, err)
	var extractionErr *apperrors.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestExtractZeroBytePDFFails(t *testing.T) {
	path := writeTempFile(t, "empty.pdf", nil)

	extractor := NewExtractorService()
	_, err := extractor.Extract(path, "application/pdf")

	require.Error(t, err)
	var extractionErr *apperrors.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestExtractCorruptPDFFails(t *testing.T) {
	path := writeTempFile(t, "broken.pdf", []byte("this is not a pdf at all"))

	extractor := NewExtractorService()
	_, err := extractor.Extract(path, "application/pdf")

	require.Error(t, err)
	var extractionErr *apperrors.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestExtractMissingFileFails(t *testing.T) {
	extractor := NewExtractorService()
	_, err := extractor.Extract(filepath.Join(t.TempDir(), "nope.txt"), "text/plain")

	require.Error(t, err)
	var extractionErr *apperrors.ExtractionError
	assert.ErrorAs(t, err, &extractionErr)
}

func TestExtractSniffsTypeWhenDeclaredGeneric(t *testing.T) {
	content := "plain text pretending to have no media type"
	path := writeTempFile(t, "resume.bin", []byte(content))

	extractor := NewExtractorService()
	text, err := extractor.Extract(path, "application/octet-stream")

	require.NoError(t, err)
	assert.Equal(t, content, text)
}
