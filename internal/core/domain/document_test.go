package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func paragraph(runs ...string) StructuralElement {
	p := &Paragraph{}
	for _, r := range runs {
		p.Elements = append(p.Elements, ParagraphElement{TextRun: &TextRun{Content: r}})
	}
	return StructuralElement{Paragraph: p}
}

func TestBody_PlainText_ConcatenatesInDocumentOrder(t *testing.T) {
	body := &Body{
		Content: []StructuralElement{
			paragraph("First ", "paragraph.\n"),
			paragraph("Second paragraph.\n"),
			paragraph("Third ", "and ", "last.\n"),
		},
	}

	assert.Equal(t,
		DocumentContent("First paragraph.\nSecond paragraph.\nThird and last."),
		body.PlainText())
}

func TestBody_PlainText_TrimsSurroundingWhitespace(t *testing.T) {
	body := &Body{
		Content: []StructuralElement{
			paragraph("\n  "),
			paragraph("  Hello "),
			paragraph("world.  \n\n"),
		},
	}

	assert.Equal(t, DocumentContent("Hello world."), body.PlainText())
}

func TestBody_PlainText_SkipsNonParagraphBlocks(t *testing.T) {
	body := &Body{
		Content: []StructuralElement{
			{}, // section break
			paragraph("Hello "),
			{Paragraph: nil}, // table
			paragraph("world."),
		},
	}

	assert.Equal(t, DocumentContent("Hello world."), body.PlainText())
}

func TestBody_PlainText_SkipsElementsWithoutTextRun(t *testing.T) {
	body := &Body{
		Content: []StructuralElement{
			{Paragraph: &Paragraph{Elements: []ParagraphElement{
				{TextRun: &TextRun{Content: "Before "}},
				{}, // inline image
				{TextRun: &TextRun{Content: "after."}},
			}}},
			{Paragraph: &Paragraph{}},
		},
	}

	assert.Equal(t, DocumentContent("Before after."), body.PlainText())
}

func TestBody_PlainText_Empty(t *testing.T) {
	var nilBody *Body
	assert.Equal(t, DocumentContent(""), nilBody.PlainText())
	assert.Equal(t, DocumentContent(""), (&Body{}).PlainText())
}

func TestDocumentReference_URL(t *testing.T) {
	ref := DocumentReference("ABC123xyz")

	assert.Equal(t, "ABC123xyz", ref.String())
	assert.Equal(t, "https://docs.google.com/document/d/ABC123xyz/edit", ref.URL())
}
