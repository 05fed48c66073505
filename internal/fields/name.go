package fields

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// maxNameLength is the cutoff for the first-line heuristic: longer first
// lines are usually headers, addresses or objective statements, not names.
const maxNameLength = 40

// NameStrategy extracts a best-effort candidate name from resume text.
// Neither implementation guarantees correctness; an empty string means no
// plausible name was found.
type NameStrategy interface {
	ExtractName(text string) string
}

// FirstLineStrategy takes the first non-empty line of the text, trimmed, and
// discards it when it exceeds maxNameLength. Zero-dependency and
// deterministic, but fragile on letterheads.
type FirstLineStrategy struct{}

// ExtractName implements NameStrategy.
func (s *FirstLineStrategy) ExtractName(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if utf8.RuneCountInString(line) >= maxNameLength {
			return ""
		}
		return line
	}
	return ""
}

// personPattern matches two or three consecutive capitalised words, the shape
// of a person name heading a resume.
var personPattern = regexp.MustCompile(`\b[A-Z][a-z]+(?: [A-Z][a-z]+){1,2}\b`)

// nonNameWords are capitalised words that commonly start resume headings and
// disqualify a candidate span.
var nonNameWords = map[string]bool{
	"curriculum": true,
	"resume":     true,
	"summary":    true,
	"objective":  true,
	"experience": true,
	"education":  true,
	"skills":     true,
	"contact":    true,
	"senior":     true,
	"junior":     true,
}

// EntityNameStrategy scans for the first span that looks like a person
// entity: consecutive capitalised words not starting with a heading word.
// More tolerant of letterheads than the positional heuristic, but still a
// dictionary-backed approximation rather than a trained recognizer.
type EntityNameStrategy struct{}

// ExtractName implements NameStrategy.
func (s *EntityNameStrategy) ExtractName(text string) string {
	for _, candidate := range personPattern.FindAllString(text, 10) {
		first := strings.ToLower(strings.Fields(candidate)[0])
		if nonNameWords[first] {
			continue
		}
		return candidate
	}
	return ""
}
