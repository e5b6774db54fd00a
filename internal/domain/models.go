package domain

import (
	"path/filepath"
	"strings"
)

// UploadedDocument is a request-scoped document received from a client.
type UploadedDocument struct {
	Filename string
	Size     int64
	Content  []byte
}

// Extension returns the lower-cased extension of the declared filename without the dot.
func (d UploadedDocument) Extension() string {
	return FileExtension(d.Filename)
}

// FileExtension returns the lower-cased extension of name without the dot.
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}
