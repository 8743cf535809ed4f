package media

import (
	"context"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

// GCS stores assets in a Google Cloud Storage bucket under a common prefix.
type GCS struct {
	bucket *storage.BucketHandle
	name   string
	prefix string
}

// NewGCS wraps an existing storage client. prefix namespaces the library
// inside the bucket and may be empty.
func NewGCS(client *storage.Client, bucket, prefix string) (*GCS, error) {
	if client == nil {
		return nil, fmt.Errorf("media: storage client is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("media: bucket name is required")
	}
	if prefix != "" && !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}
	return &GCS{bucket: client.Bucket(bucket), name: bucket, prefix: prefix}, nil
}

// List implements Library.
func (g *GCS) List(ctx context.Context) ([]Object, error) {
	it := g.bucket.Objects(ctx, &storage.Query{Prefix: g.prefix})

	var objects []Object
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("media: list objects: %w", err)
		}
		objects = append(objects, Object{
			Name:        attrs.Name,
			URL:         g.publicURL(attrs.Name),
			Size:        attrs.Size,
			ContentType: attrs.ContentType,
			UploadedAt:  attrs.Created,
		})
	}

	sort.Slice(objects, func(i, j int) bool {
		return objects[i].UploadedAt.After(objects[j].UploadedAt)
	})
	return objects, nil
}

// Put implements Library. The stored name carries a random prefix so two
// uploads of "photo.png" coexist.
func (g *GCS) Put(ctx context.Context, filename, contentType string, content io.Reader) (Object, error) {
	name := g.prefix + uuid.NewString() + "-" + path.Base(filename)

	w := g.bucket.Object(name).NewWriter(ctx)
	w.ContentType = contentType

	size, err := io.Copy(w, content)
	if err != nil {
		w.Close()
		return Object{}, fmt.Errorf("media: upload %q: %w", filename, err)
	}
	if err := w.Close(); err != nil {
		return Object{}, fmt.Errorf("media: upload %q: %w", filename, err)
	}

	return Object{
		Name:        name,
		URL:         g.publicURL(name),
		Size:        size,
		ContentType: contentType,
		UploadedAt:  w.Attrs().Created,
	}, nil
}

// Delete implements Library.
func (g *GCS) Delete(ctx context.Context, name string) error {
	err := g.bucket.Object(name).Delete(ctx)
	if err == storage.ErrObjectNotExist {
		return ErrObjectNotFound
	}
	if err != nil {
		return fmt.Errorf("media: delete %q: %w", name, err)
	}
	return nil
}

func (g *GCS) publicURL(name string) string {
	return "https://storage.googleapis.com/" + g.name + "/" + name
}
