package google

import (
	"context"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"google.golang.org/api/docs/v1"
	"google.golang.org/api/option"
)

// NewDocsService creates a Google Docs API service using the provided
// TokenSource. Outgoing requests are traced. Extra options are applied
// last, so tests can point the client at a fake endpoint.
func NewDocsService(ctx context.Context, ts oauth2.TokenSource, opts ...option.ClientOption) (*docs.Service, error) {
	client := &http.Client{
		Transport: otelhttp.NewTransport(&oauth2.Transport{
			Source: ts,
			Base:   http.DefaultTransport,
		}),
	}

	return docs.NewService(ctx, append([]option.ClientOption{option.WithHTTPClient(client)}, opts...)...)
}
