// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The proofreading pipeline is built from three stages:
//
//   - ParseLink: extracts the document identifier from a sharing link
//   - DocumentFetcher: reads the document and flattens it to plain text
//   - Proofreader: asks the language model for a revised version
//
// Pipeline runs them in order and reports each state transition.
//
// Services are pure Go with no CGO; uuid is their only third-party import.
package services
