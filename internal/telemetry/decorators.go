package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/custodia-labs/docproof/internal/core/domain"
	"github.com/custodia-labs/docproof/internal/core/ports/driven"
)

const instrumentationName = "github.com/custodia-labs/docproof"

func tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// Ensure the decorators implement their ports.
var (
	_ driven.DocumentReader = (*TracedReader)(nil)
	_ driven.LLMService     = (*TracedLLM)(nil)
)

// TracedReader wraps a DocumentReader with a span per read.
type TracedReader struct {
	next driven.DocumentReader
}

// NewTracedReader wraps next.
func NewTracedReader(next driven.DocumentReader) *TracedReader {
	return &TracedReader{next: next}
}

// ReadDocument implements driven.DocumentReader.
func (r *TracedReader) ReadDocument(ctx context.Context, ref domain.DocumentReference) (*domain.Body, error) {
	ctx, span := tracer().Start(ctx, "docs.ReadDocument",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("docproof.document_id", ref.String())),
	)
	body, err := r.next.ReadDocument(ctx, ref)
	if err == nil && body != nil {
		span.SetAttributes(attribute.Int("docproof.blocks", len(body.Content)))
	}
	endSpan(span, err)
	return body, err
}

// TracedLLM wraps an LLMService with a span per generation.
type TracedLLM struct {
	next driven.LLMService
}

// NewTracedLLM wraps next.
func NewTracedLLM(next driven.LLMService) *TracedLLM {
	return &TracedLLM{next: next}
}

// Generate implements driven.LLMService.
func (l *TracedLLM) Generate(ctx context.Context, prompt string, opts driven.GenerateOptions) (string, error) {
	ctx, span := tracer().Start(ctx, "llm.Generate",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("docproof.model", l.next.ModelName()),
			attribute.Int("docproof.prompt_chars", len(prompt)),
		),
	)
	out, err := l.next.Generate(ctx, prompt, opts)
	if err == nil {
		span.SetAttributes(attribute.Int("docproof.output_chars", len(out)))
	}
	endSpan(span, err)
	return out, err
}

// ModelName implements driven.LLMService.
func (l *TracedLLM) ModelName() string { return l.next.ModelName() }

// Ping implements driven.LLMService.
func (l *TracedLLM) Ping(ctx context.Context) error {
	ctx, span := tracer().Start(ctx, "llm.Ping", trace.WithSpanKind(trace.SpanKindClient))
	err := l.next.Ping(ctx)
	endSpan(span, err)
	return err
}

// Close implements driven.LLMService.
func (l *TracedLLM) Close() error { return l.next.Close() }
