// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data under ~/.docproof.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - PromptStore: user-editable prompt templates
//   - PromptWatcher: reloads the PromptStore when a template changes on disk
package file
