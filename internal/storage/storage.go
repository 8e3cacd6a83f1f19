package storage

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"path/filepath"
	"strings"
	"time"
)

// BlobStore persists uploaded documents and returns a reference under which
// the document can later be retrieved.
type BlobStore interface {
	Save(ctx context.Context, name string, contentType string, r io.Reader) (string, error)
}

// AllowedDocumentType reports whether an uploaded document may be stored.
// Only PDFs and images are accepted.
func AllowedDocumentType(contentType string) bool {
	return contentType == "application/pdf" || strings.HasPrefix(contentType, "image/")
}

var imageExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true,
}

// DocumentName builds a collision-resistant stored filename for an upload:
// the form field name, upload time, a random suffix and a sanitized extension.
// Extensions outside the PDF/image allowlist are replaced from the MIME type
// so nothing else is ever written or re-served.
func DocumentName(field, originalName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	if contentType == "application/pdf" {
		ext = ".pdf"
	} else if !imageExtensions[ext] {
		switch contentType {
		case "image/jpeg":
			ext = ".jpg"
		case "image/png":
			ext = ".png"
		case "image/gif":
			ext = ".gif"
		case "image/webp":
			ext = ".webp"
		default:
			ext = ".img"
		}
	}

	return fmt.Sprintf("%s-%d-%d%s", field, time.Now().UnixMilli(), randomSuffix(), ext)
}

func randomSuffix() int64 {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000_000))
	if err != nil {
		return time.Now().UnixNano() % 1_000_000_000
	}
	return n.Int64()
}
