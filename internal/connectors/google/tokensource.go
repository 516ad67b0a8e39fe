package google

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/docs/v1"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

// Scopes requested for every token.
var Scopes = []string{docs.DocumentsReadonlyScope}

// NewTokenSource creates an oauth2.TokenSource from service-account
// credentials. Inline JSON takes precedence over a credentials file.
// The returned TokenSource can be used with option.WithTokenSource() or
// NewDocsService.
func NewTokenSource(ctx context.Context, settings domain.GoogleSettings) (oauth2.TokenSource, error) {
	data, err := credentialsJSON(settings)
	if err != nil {
		return nil, err
	}

	creds, err := googleoauth.CredentialsFromJSON(ctx, data, Scopes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrAuthInvalid, err)
	}

	return creds.TokenSource, nil
}

func credentialsJSON(settings domain.GoogleSettings) ([]byte, error) {
	switch {
	case settings.CredentialsJSON != "":
		return []byte(settings.CredentialsJSON), nil
	case settings.CredentialsFile != "":
		data, err := os.ReadFile(settings.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("%w: read credentials file: %w", domain.ErrAuthInvalid, err)
		}
		return data, nil
	default:
		return nil, domain.ErrAuthRequired
	}
}
