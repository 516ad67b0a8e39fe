package services

import (
	"regexp"

	"github.com/custodia-labs/docproof/internal/core/domain"
)

// documentIDPattern matches the "/d/<id>" segment of a Google Docs link.
var documentIDPattern = regexp.MustCompile(`/d/([A-Za-z0-9_-]+)`)

// ParseLink extracts the document identifier from a sharing link.
// Only the first "/d/<id>" occurrence counts; anything around it (host,
// "/edit", query string, fragment) is ignored. ok is false when the link
// holds no identifier.
func ParseLink(link string) (ref domain.DocumentReference, ok bool) {
	m := documentIDPattern.FindStringSubmatch(link)
	if m == nil {
		return "", false
	}
	return domain.DocumentReference(m[1]), true
}
