// Package connectors holds the document-storage integrations. The google
// package owns credentials and API-client construction; google/docs reads
// a document body and maps it onto domain.Body.
package connectors
