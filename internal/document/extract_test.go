package document

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ibraheem715/syllabus-to-calendar/internal/common"
)

func TestExtractTextRejectsWrongSignature(t *testing.T) {
	for _, blob := range [][]byte{
		nil,
		{},
		[]byte("plain text syllabus"),
		[]byte("\x89PNG\r\n"),
		[]byte("%PD"),
	} {
		_, err := ExtractText(blob)
		require.Error(t, err)
		assert.True(t, errors.Is(err, common.ErrInvalidFormat), "blob %q", blob)
	}
}

func TestExtractTextRejectsGarbageAfterSignature(t *testing.T) {
	// right magic, not a decodable PDF body
	_, err := ExtractText([]byte("%PDF-1.7 not really a pdf at all"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInvalidFormat))
}

func TestCheckContentInsufficient(t *testing.T) {
	err := checkContent("too short", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrInsufficientContent))
}

func TestCheckContentScannedHeuristic(t *testing.T) {
	// 60 chars over 5 pages: enough total text, far too little per page
	err := checkContent(strings.Repeat("x", 60), 5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrScannedDocument))
}

func TestCheckContentTextBearingDocumentPasses(t *testing.T) {
	// 100+ chars per page must not trip the scanned heuristic
	assert.NoError(t, checkContent(strings.Repeat("a", 300), 3))
	assert.NoError(t, checkContent(strings.Repeat("a", 1000), 1))
}
