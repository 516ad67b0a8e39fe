// Package domain defines the core business entities for docproof.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DocumentReference: the identifier extracted from a sharing link
//   - Body: the structural document (blocks, elements, text runs)
//   - DocumentContent: the flattened text of a document
//   - ProofreadResult: the revised text returned by the language model
//   - Run: a single pipeline execution and its state
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
