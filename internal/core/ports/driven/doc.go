// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the pipeline to run:
//
//   - DocumentReader: Reads the structural body of a document (Google Docs)
//   - LLMService: Generates the proofread text (Gemini, OpenAI, Anthropic, Ollama)
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - PromptStore: User-editable prompt templates. Without it, the embedded default is used.
//   - PipelineMetrics: Run and stage instrumentation. Without it, nothing is recorded.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
