// Package media manages the uploaded asset library backing image fields.
package media

import (
	"context"
	"errors"
	"io"
	"time"
)

// ErrObjectNotFound is returned when deleting an asset that does not exist.
var ErrObjectNotFound = errors.New("media: object not found")

// Object describes one stored asset.
type Object struct {
	// Name is the storage key, unique within the library.
	Name string `json:"name"`
	// URL is the public address image fields reference.
	URL string `json:"url"`
	// Size is the stored size in bytes.
	Size int64 `json:"size"`
	// ContentType is the MIME type recorded at upload.
	ContentType string `json:"contentType"`
	// UploadedAt is when the asset was stored.
	UploadedAt time.Time `json:"uploadedAt"`
}

// Library is the asset store behind the media endpoints. Upload names are
// made unique by the implementation so repeated uploads of the same filename
// never overwrite each other.
type Library interface {
	// List returns every stored asset, newest first.
	List(ctx context.Context) ([]Object, error)
	// Put stores the content under a unique name derived from filename and
	// returns the resulting object.
	Put(ctx context.Context, filename, contentType string, content io.Reader) (Object, error)
	// Delete removes the asset by its storage name.
	Delete(ctx context.Context, name string) error
}
