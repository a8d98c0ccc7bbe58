package ticket

import (
	"path"
	"strings"
)

// Document is a file attached to a ticket, identified by a server-assigned
// id and URL. The filename is the last path segment of the URL.
type Document struct {
	DocumentID  uint   `json:"document_id"`
	DocumentURL string `json:"document_url"`
}

// FileType classifies a document for preview purposes.
type FileType string

const (
	FileTypeImage FileType = "image"
	FileTypePDF   FileType = "pdf"
	FileTypeWord  FileType = "word"
	FileTypeOther FileType = "other"
)

// FileName returns the document's filename, the last segment of its URL.
func (d Document) FileName() string {
	name := path.Base(strings.TrimSuffix(d.DocumentURL, "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// Type infers the document's file-type class from its URL extension.
func (d Document) Type() FileType {
	return ClassifyFile(d.FileName())
}

// ClassifyFile infers a file-type class from a filename extension.
func ClassifyFile(name string) FileType {
	switch strings.ToLower(strings.TrimPrefix(path.Ext(name), ".")) {
	case "png", "jpg", "jpeg", "gif", "bmp", "webp", "svg":
		return FileTypeImage
	case "pdf":
		return FileTypePDF
	case "doc", "docx":
		return FileTypeWord
	default:
		return FileTypeOther
	}
}
