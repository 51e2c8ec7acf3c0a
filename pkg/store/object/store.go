package object

import "context"

// Store archives report artifacts keyed by name. Each run writes
// independently keyed objects, so overlapping runs never conflict.
type Store interface {
	Put(ctx context.Context, key string, body []byte, contentType string) error
}
