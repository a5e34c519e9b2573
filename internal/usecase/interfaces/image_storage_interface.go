package interfaces

import (
	"context"
	"errors"
)

// ErrImageExceedsStorageLimit is returned by a storage that cannot hold an
// image of that size.
var ErrImageExceedsStorageLimit = errors.New("image exceeds the storage limit")

// IImageStorage stores project images and returns the URL to persist on the project.
type IImageStorage interface {
	Save(ctx context.Context, key, contentType string, data []byte) (string, error)
}
