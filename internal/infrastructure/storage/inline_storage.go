package storage

import (
	"context"
	"encoding/base64"

	"nelly_tech/internal/usecase/interfaces"
)

// Inline images are base64 encoded into the project record, so the raw size
// must leave room under the backend's record limit (400 KB per DynamoDB item,
// 1 MiB per Firestore document).
const (
	InlineMaxBytesDynamoDB  = 256 << 10
	InlineMaxBytesFirestore = 700 << 10
)

// InlineStorage keeps the image inside the project document as a data URL,
// which is how the site stored images before an object store existed.
type InlineStorage struct {
	maxBytes int
}

var _ interfaces.IImageStorage = InlineStorage{}

// NewInlineStorage rejects images over maxBytes; zero means no limit.
func NewInlineStorage(maxBytes int) InlineStorage { return InlineStorage{maxBytes: maxBytes} }

func (s InlineStorage) Save(ctx context.Context, key, contentType string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s.maxBytes > 0 && len(data) > s.maxBytes {
		return "", interfaces.ErrImageExceedsStorageLimit
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
