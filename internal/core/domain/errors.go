package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidLink indicates the submitted link carries no document identifier.
	ErrInvalidLink = errors.New("invalid link: no document ID found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrEmptyDocument indicates the document body was missing from the API response.
	ErrEmptyDocument = errors.New("document has no body")

	// Pipeline stage errors. Every failure raised by a stage is wrapped
	// with one of these so callers can tell where the run stopped.

	// ErrFetchFailed wraps any failure from the document API.
	ErrFetchFailed = errors.New("fetch document")

	// ErrProofreadFailed wraps any failure from the generation API.
	ErrProofreadFailed = errors.New("proofread")

	// ErrLLMUnavailable indicates the LLM service is not configured.
	ErrLLMUnavailable = errors.New("LLM service unavailable")

	// ErrDocumentsUnavailable indicates the document API client is not configured.
	ErrDocumentsUnavailable = errors.New("document service unavailable")

	// Authentication Errors.

	// ErrAuthRequired indicates no credentials were supplied for the document API.
	ErrAuthRequired = errors.New("authentication required")

	// ErrAuthInvalid indicates the supplied credentials could not be parsed.
	ErrAuthInvalid = errors.New("authentication invalid")
)
