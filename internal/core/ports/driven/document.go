package driven

import (
	"context"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

// DocumentReader reads the structural body of a document from a
// document-storage API. Credentials are supplied at construction time.
type DocumentReader interface {
	// ReadDocument issues a single read request for the document's full
	// structural representation. Auth, permission, not-found and network
	// failures are all returned as errors; there is no retry.
	ReadDocument(ctx context.Context, ref domain.DocumentReference) (*domain.Body, error)
}
