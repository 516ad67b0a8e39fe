package domain

import "strings"

// DocumentReference is the opaque identifier Google assigns to a document,
// as embedded in its sharing URL.
type DocumentReference string

// String returns the identifier.
func (r DocumentReference) String() string {
	return string(r)
}

// URL returns the canonical editor URL for the document.
func (r DocumentReference) URL() string {
	return "https://docs.google.com/document/d/" + string(r) + "/edit"
}

// DocumentContent is the plain text of a document, assembled from its
// paragraph text runs in document order.
type DocumentContent string

// String returns the text.
func (c DocumentContent) String() string {
	return string(c)
}

// ProofreadResult is the text generated by the language model. No structure
// is imposed on it beyond being displayable text.
type ProofreadResult string

// String returns the text.
func (r ProofreadResult) String() string {
	return string(r)
}

// Body is the structural content of a document: an ordered list of blocks.
// Only the parts needed to assemble plain text are modelled.
type Body struct {
	Title   string
	Content []StructuralElement
}

// StructuralElement is a single block of the body. Paragraph is nil for
// blocks of any other kind (tables, section breaks, tables of contents).
type StructuralElement struct {
	Paragraph *Paragraph
}

// Paragraph is an ordered list of paragraph elements.
type Paragraph struct {
	Elements []ParagraphElement
}

// ParagraphElement is one element of a paragraph. TextRun is nil for
// elements that carry no literal text (inline images, page breaks, ...).
type ParagraphElement struct {
	TextRun *TextRun
}

// TextRun is the smallest unit of literal text within a paragraph.
type TextRun struct {
	Content string
}

// PlainText concatenates every text run of every paragraph in document
// order and trims surrounding whitespace from the result. Blocks without a
// paragraph and elements without a text run are skipped.
func (b *Body) PlainText() DocumentContent {
	if b == nil {
		return ""
	}

	var sb strings.Builder
	for _, block := range b.Content {
		if block.Paragraph == nil {
			continue
		}
		for _, el := range block.Paragraph.Elements {
			if el.TextRun == nil {
				continue
			}
			sb.WriteString(el.TextRun.Content)
		}
	}

	return DocumentContent(strings.TrimSpace(sb.String()))
}
