// Package google provides shared infrastructure for the Google Docs connector.
//
// This package contains:
//   - A TokenSource built from service-account credentials
//   - The Docs API client factory
//   - Classification of common Google API errors (401, 403, 404, 429)
//
// # Usage
//
//	ts, err := google.NewTokenSource(ctx, settings.Google)
//	svc, err := google.NewDocsService(ctx, ts)
//	reader := docs.NewReader(svc)
//
// # OAuth2 Scopes
//
// Only https://www.googleapis.com/auth/documents.readonly is requested.
// The service account can read any document shared with
// "Anyone with the link can view", or shared with its email directly.
package google
