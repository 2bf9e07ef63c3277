package pdf

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ternarybob/arbor"
)

func TestInspect(t *testing.T) {
	inspector := NewInspector(arbor.NewLogger())
	data := buildPDF(t, []string{"one"}, []string{"two"})

	metadata, err := inspector.Inspect(data)

	require.NoError(t, err)
	assert.Equal(t, 2, metadata.PageCount)
	assert.Equal(t, int64(len(data)), metadata.FileSize)
	assert.False(t, metadata.IsEncrypted)
	assert.Equal(t, "Purchase Order", metadata.Title)
	assert.Equal(t, "attachtext tests", metadata.Author)
}

func TestInspect_MissingInfoEntries(t *testing.T) {
	inspector := NewInspector(arbor.NewLogger())
	data := buildUntitledPDF(t, []string{"one"})

	metadata, err := inspector.Inspect(data)

	require.NoError(t, err)
	assert.Equal(t, 1, metadata.PageCount)
	assert.Empty(t, metadata.Title)
	assert.Empty(t, metadata.Author)
	assert.Empty(t, metadata.Subject)
	assert.NotContains(t, metadata.Producer, "\x00")

	encoded, err := json.Marshal(metadata)
	require.NoError(t, err)
	assert.NotContains(t, string(encoded), `\u0000`)
	assert.NotContains(t, string(encoded), `"title"`)
	assert.NotContains(t, string(encoded), `"author"`)
}

func TestInspect_InvalidDocument(t *testing.T) {
	inspector := NewInspector(arbor.NewLogger())

	metadata, err := inspector.Inspect([]byte("not a pdf"))

	assert.Nil(t, metadata)
	assert.True(t, errors.Is(err, ErrDocumentFormat))
}
