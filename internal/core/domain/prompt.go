package domain

import (
	"fmt"
	"strings"
)

// ProofreadLeadIn is the fixed instruction placed before the document text.
const ProofreadLeadIn = "Please proofread and edit the following text for grammar, clarity, and tone:"

// DefaultProofreadTemplate is the lead-in, a blank line, then the text.
// It carries exactly one %s placeholder.
const DefaultProofreadTemplate = ProofreadLeadIn + "\n\n%s"

// BuildProofreadPrompt substitutes text verbatim into template. The text is
// not passed through fmt, so format verbs inside it are left untouched.
// A template without exactly one %s placeholder is rejected.
func BuildProofreadPrompt(template string, text DocumentContent) (string, error) {
	if n := strings.Count(template, "%s"); n != 1 {
		return "", fmt.Errorf("%w: prompt template must contain one %%s placeholder, found %d",
			ErrInvalidInput, n)
	}
	return strings.Replace(template, "%s", string(text), 1), nil
}
