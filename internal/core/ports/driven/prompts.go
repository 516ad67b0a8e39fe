package driven

// PromptStore provides access to LLM prompt templates.
// Implementations may load prompts from files or embed them in the binary.
type PromptStore interface {
	// Load returns the prompt template for the given name.
	// If the prompt is not found, implementations should return the
	// embedded default or an error.
	Load(name string) (string, error)

	// Reload clears any cached prompts, forcing fresh loads on next access.
	// This is called when prompt files change on disk.
	Reload()
}

// Well-known prompt names.
const (
	// PromptProofread wraps the document text for proofreading.
	// The template expects exactly one %s placeholder for the text.
	PromptProofread = "proofread"
)
