package docstore

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/veracomply/sdk/evidence"
)

// ErrNotFound is returned when a document descriptor does not exist.
var ErrNotFound = errors.New("docstore: document not found")

// Document is the stored descriptor for a piece of evidence. It carries
// routing metadata and the most recent classification outcome, never the
// document bytes themselves.
type Document struct {
	// ID uniquely identifies the document.
	ID string `json:"id"`

	// AssessmentID links the document to the assessment it supports.
	AssessmentID string `json:"assessment_id,omitempty"`

	// Filename is the original upload name, used by heuristic
	// classification for extension checks.
	Filename string `json:"filename"`

	// ContentLocator tells the ContentFetcher where the bytes live
	// (object key, file path, signed URL).
	ContentLocator string `json:"content_locator"`

	// CurrentTier is the tier from the most recent classification, empty
	// when the document has never been classified.
	CurrentTier evidence.Tier `json:"current_tier,omitempty"`

	// Classification is the full result of the most recent
	// classification, nil when the document has never been classified.
	Classification *evidence.Result `json:"classification,omitempty"`

	// UploadedAt records when the document entered the platform.
	UploadedAt time.Time `json:"uploaded_at"`
}

// NewDocument creates a document descriptor with a generated ID.
func NewDocument(filename, contentLocator string) *Document {
	return &Document{
		ID:             uuid.New().String(),
		Filename:       filename,
		ContentLocator: contentLocator,
		UploadedAt:     time.Now().UTC(),
	}
}

// Store provides access to document descriptors.
type Store interface {
	// Get retrieves a document descriptor by ID. Returns ErrNotFound when
	// no descriptor exists.
	Get(ctx context.Context, id string) (*Document, error)

	// UpdateClassification persists a classification result onto the
	// document, setting both the current tier and the full result.
	// Returns ErrNotFound when no descriptor exists.
	UpdateClassification(ctx context.Context, id string, result evidence.Result) error
}

// ContentFetcher retrieves document content given its locator.
// Implementations wrap whatever blob storage holds the bytes.
type ContentFetcher interface {
	// Fetch returns the document content as text. Binary formats should
	// return extracted text where possible.
	Fetch(ctx context.Context, locator string) (string, error)
}

// ContentFetcherFunc adapts a function to the ContentFetcher interface.
type ContentFetcherFunc func(ctx context.Context, locator string) (string, error)

// Fetch implements ContentFetcher.
func (f ContentFetcherFunc) Fetch(ctx context.Context, locator string) (string, error) {
	return f(ctx, locator)
}
