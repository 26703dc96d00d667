package cache

import (
	"context"
	"errors"
	"time"

	"github.com/veracomply/sdk/evidence"
)

// Common errors returned by cache operations.
var (
	// ErrNotFound is returned when no live entry exists for the key.
	// Expired entries are reported as not found.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrInvalidKey is returned when a key is empty.
	ErrInvalidKey = errors.New("cache: invalid key")

	// ErrStorageFailed is returned when the underlying backend fails.
	ErrStorageFailed = errors.New("cache: storage operation failed")
)

// DefaultTTL is how long a classification result stays valid. Documents
// rarely change after upload; 30 days bounds staleness without re-running
// the classifier on every report.
const DefaultTTL = 30 * 24 * time.Hour

// Cache stores classification results keyed by document ID.
type Cache interface {
	// Get retrieves the cached result for a document.
	// Returns ErrNotFound if no entry exists or the entry has expired.
	Get(ctx context.Context, documentID string) (*evidence.Result, error)

	// Set stores a result for a document, replacing any existing entry and
	// restarting its TTL.
	// Returns ErrInvalidKey if the document ID is empty.
	Set(ctx context.Context, documentID string, result evidence.Result) error

	// Invalidate removes the entry for a document immediately. Removing a
	// missing entry is not an error.
	Invalidate(ctx context.Context, documentID string) error
}
