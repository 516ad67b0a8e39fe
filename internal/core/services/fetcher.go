package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
)

// DocumentFetcher turns a document reference into its plain text.
type DocumentFetcher struct {
	reader driven.DocumentReader
}

// NewDocumentFetcher creates a fetcher backed by an authorised reader.
func NewDocumentFetcher(reader driven.DocumentReader) *DocumentFetcher {
	return &DocumentFetcher{reader: reader}
}

// Fetch reads the document once and flattens its paragraphs to text.
// Every failure is wrapped with domain.ErrFetchFailed; no partial content
// is returned.
func (f *DocumentFetcher) Fetch(ctx context.Context, ref domain.DocumentReference) (domain.DocumentContent, error) {
	if f.reader == nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, domain.ErrDocumentsUnavailable)
	}

	body, err := f.reader.ReadDocument(ctx, ref)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}
	if body == nil {
		return "", fmt.Errorf("%w: %w", domain.ErrFetchFailed, domain.ErrEmptyDocument)
	}

	return body.PlainText(), nil
}
