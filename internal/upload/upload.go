package upload

import (
	"context"
	"io"
)

// Result is what the store hands back for a successfully uploaded image: the
// URL served to clients and the key needed to delete the object later.
type Result struct {
	URL      string
	PublicID string
}

// Uploader is the external image store collaborator. Implementations must
// treat Remove as idempotent; it is used both as a compensating action when
// persistence fails after an upload and as best-effort cleanup on delete.
type Uploader interface {
	Upload(ctx context.Context, filename string, body io.Reader) (*Result, error)
	Remove(ctx context.Context, publicID string) error
}
