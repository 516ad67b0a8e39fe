// Package docs implements driven.DocumentReader on the Google Docs API.
package docs

import (
	"context"

	gdocs "google.golang.org/api/docs/v1"

	"github.com/custodia-labs/docproof/internal/connectors/google"
	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
	"github.com/custodia-labs/docproof/internal/logger"
)

// Ensure Reader implements the interface.
var _ driven.DocumentReader = (*Reader)(nil)

// bodyFields limits the response to what plain-text assembly needs.
const bodyFields = "title,body(content(paragraph(elements(textRun(content)))))"

// Reader reads documents through an authorised Docs API service.
type Reader struct {
	svc *gdocs.Service
}

// NewReader creates a Reader.
func NewReader(svc *gdocs.Service) *Reader {
	return &Reader{svc: svc}
}

// ReadDocument issues one documents.get request.
func (r *Reader) ReadDocument(ctx context.Context, ref domain.DocumentReference) (*domain.Body, error) {
	logger.Debug("docs: get %s", ref)

	doc, err := r.svc.Documents.Get(ref.String()).
		Fields(bodyFields).
		Context(ctx).
		Do()
	if err != nil {
		return nil, google.WrapError(err)
	}

	return convertDocument(doc), nil
}

// convertDocument maps the API shape onto the domain shape. Blocks and
// elements of other kinds become empty entries so PlainText skips them.
func convertDocument(doc *gdocs.Document) *domain.Body {
	body := &domain.Body{Title: doc.Title}
	if doc.Body == nil {
		return body
	}

	body.Content = make([]domain.StructuralElement, 0, len(doc.Body.Content))
	for _, block := range doc.Body.Content {
		if block == nil {
			continue
		}
		var el domain.StructuralElement
		if block.Paragraph != nil {
			el.Paragraph = convertParagraph(block.Paragraph)
		}
		body.Content = append(body.Content, el)
	}

	return body
}

func convertParagraph(p *gdocs.Paragraph) *domain.Paragraph {
	out := &domain.Paragraph{Elements: make([]domain.ParagraphElement, 0, len(p.Elements))}
	for _, e := range p.Elements {
		if e == nil {
			continue
		}
		var el domain.ParagraphElement
		if e.TextRun != nil {
			el.TextRun = &domain.TextRun{Content: e.TextRun.Content}
		}
		out.Elements = append(out.Elements, el)
	}
	return out
}
