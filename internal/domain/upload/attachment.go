// Package upload stages local files for multipart submission and enforces
// the client-side size ceilings before any bytes go out.
package upload

import (
	"fmt"
	"os"

	"deskline/internal/shared/constants"
)

// Attachment is a local file staged for upload with a create or update
// submission.
type Attachment struct {
	Name string
	Size int64
	Path string
}

// NewAttachment stats the file at path and stages it for upload.
func NewAttachment(filePath string) (Attachment, error) {
	info, err := os.Stat(filePath)
	if err != nil {
		return Attachment{}, fmt.Errorf("stat attachment: %w", err)
	}
	if info.IsDir() {
		return Attachment{}, fmt.Errorf("attachment %s is a directory", filePath)
	}
	return Attachment{
		Name: info.Name(),
		Size: info.Size(),
		Path: filePath,
	}, nil
}

// CheckDocumentSize rejects ticket documents above the 10 MB ceiling.
// The boundary itself is accepted.
func (a Attachment) CheckDocumentSize() error {
	return a.checkSize(constants.MaxDocumentBytes, "document")
}

// CheckAvatarSize rejects profile photos above the 5 MB ceiling.
func (a Attachment) CheckAvatarSize() error {
	return a.checkSize(constants.MaxAvatarBytes, "profile photo")
}

func (a Attachment) checkSize(limit int64, kind string) error {
	if a.Size > limit {
		return fmt.Errorf("%s %s is %d bytes, exceeding the %d byte limit",
			kind, a.Name, a.Size, limit)
	}
	return nil
}

// SplitOversized partitions attachments into those within the document
// ceiling and those rejected by it, preserving order.
func SplitOversized(attachments []Attachment) (accepted, rejected []Attachment) {
	for _, a := range attachments {
		if a.CheckDocumentSize() != nil {
			rejected = append(rejected, a)
			continue
		}
		accepted = append(accepted, a)
	}
	return accepted, rejected
}
