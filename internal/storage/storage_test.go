package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowedDocumentType(t *testing.T) {
	assert.True(t, AllowedDocumentType("application/pdf"))
	assert.True(t, AllowedDocumentType("image/png"))
	assert.True(t, AllowedDocumentType("image/jpeg"))
	assert.False(t, AllowedDocumentType("application/octet-stream"))
	assert.False(t, AllowedDocumentType("text/html"))
	assert.False(t, AllowedDocumentType(""))
}

func TestDocumentName(t *testing.T) {
	pdf := DocumentName("verificationDocument", "license.pdf", "application/pdf")
	assert.True(t, strings.HasPrefix(pdf, "verificationDocument-"))
	assert.True(t, strings.HasSuffix(pdf, ".pdf"))

	// The stored extension comes from the MIME type when the original one
	// is not on the allowlist.
	disguised := DocumentName("verificationDocument", "sneaky.exe", "image/png")
	assert.True(t, strings.HasSuffix(disguised, ".png"))

	pdfRenamed := DocumentName("verificationDocument", "scan.html", "application/pdf")
	assert.True(t, strings.HasSuffix(pdfRenamed, ".pdf"))

	keptExt := DocumentName("verificationDocument", "photo.JPG", "image/jpeg")
	assert.True(t, strings.HasSuffix(keptExt, ".jpg"))
}

func TestDocumentNameCollisionResistance(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := DocumentName("verificationDocument", "license.pdf", "application/pdf")
		assert.False(t, seen[name], "duplicate name %s", name)
		seen[name] = true
	}
}

func TestLocalStoreSave(t *testing.T) {
	dir := t.TempDir()
	store := NewLocalStore(dir)

	ref, err := store.Save(context.Background(), "doc-1.pdf", "application/pdf", strings.NewReader("content"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/verification/doc-1.pdf", ref)

	data, err := os.ReadFile(filepath.Join(dir, "verification", "doc-1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}
