// Package fields derives contact fields from resume plain text.
//
// Email and phone extraction are regex-based and best-effort: the first match
// wins and no match is reported as an empty string, never as an error. The
// phone pattern implements a North-American policy: 3-3-4 groupings with
// space, dash or dot separators, an optional parenthesised area code, an
// optional +1 prefix, or a bare 10-digit run. Digit sequences that happen to
// fit that shape (IDs, zip+4 runs) can false-positive; that is an accepted
// limitation of the heuristic.
package fields

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+?1[-.\s]?)?(?:\(\d{3}\)\s*|\d{3}[-.\s]?)\d{3}[-.\s]?\d{4}`)
)

// Contact holds the extracted contact fields. Empty strings mean no match.
type Contact struct {
	Name  string
	Email string
	Phone string
}

// Extractor extracts contact fields using a configurable name strategy.
type Extractor struct {
	nameStrategy NameStrategy
}

// NewExtractor creates an Extractor. A nil strategy defaults to the
// first-line heuristic.
func NewExtractor(strategy NameStrategy) *Extractor {
	if strategy == nil {
		strategy = &FirstLineStrategy{}
	}
	return &Extractor{nameStrategy: strategy}
}

// Extract derives name, email and phone from resume text.
func (e *Extractor) Extract(text string) Contact {
	return Contact{
		Name:  e.nameStrategy.ExtractName(text),
		Email: ExtractEmail(text),
		Phone: ExtractPhone(text),
	}
}

// ExtractEmail returns the first email-shaped substring, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone-shaped substring, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}
