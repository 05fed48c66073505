// Package skills matches resume text against a fixed skill vocabulary.
//
// The vocabulary is loaded once at startup, either the built-in default or a
// JSON config artifact, and is immutable afterwards, so a single Vocabulary
// is safe for concurrent use across parallel parse calls.
package skills

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// defaultTerms is the built-in skill vocabulary: programming languages,
// frameworks, tools and soft skills. Growing it is a deployment-time change
// (ship a vocabulary file), not a runtime operation.
var defaultTerms = []string{
	"python", "java", "c++", "javascript", "sql", "html", "css", "react", "node", "angular",
	"flask", "django", "api", "rest", "git", "docker", "kubernetes", "aws", "azure", "gcp",
	"machine learning", "deep learning", "data analysis", "tensorflow", "pytorch", "scikit-learn",
	"mysql", "postgresql", "mongodb", "agile", "scrum", "project management",
}

// displayOverrides maps lower-cased terms to canonical display casing where
// plain first-letter capitalisation would look wrong.
var displayOverrides = map[string]string{
	"javascript":   "JavaScript",
	"sql":          "SQL",
	"html":         "HTML",
	"css":          "CSS",
	"api":          "API",
	"rest":         "REST",
	"aws":          "AWS",
	"gcp":          "GCP",
	"mysql":        "MySQL",
	"postgresql":   "PostgreSQL",
	"mongodb":      "MongoDB",
	"tensorflow":   "TensorFlow",
	"pytorch":      "PyTorch",
	"scikit-learn": "scikit-learn",
}

// term is one vocabulary entry with its precompiled matcher.
type term struct {
	display string
	pattern *regexp.Regexp
}

// Vocabulary is an immutable set of recognized skill terms.
type Vocabulary struct {
	terms []term
}

// vocabularyFile is the on-disk shape of a vocabulary config artifact.
type vocabularyFile struct {
	Skills []string `json:"skills"`
}

// New builds a Vocabulary from raw terms. Terms are matched
// case-insensitively on whole-word/phrase boundaries and reported in
// canonical display casing. Duplicates (after lower-casing) collapse.
func New(rawTerms []string) (*Vocabulary, error) {
	v := &Vocabulary{terms: make([]term, 0, len(rawTerms))}
	seen := make(map[string]bool, len(rawTerms))

	for _, raw := range rawTerms {
		lower := strings.ToLower(strings.TrimSpace(raw))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true

		pattern, err := compileTermPattern(lower)
		if err != nil {
			return nil, fmt.Errorf("failed to compile pattern for term %q: %w", raw, err)
		}
		v.terms = append(v.terms, term{display: displayCasing(lower), pattern: pattern})
	}

	if len(v.terms) == 0 {
		return nil, fmt.Errorf("vocabulary is empty")
	}
	return v, nil
}

// Default returns the built-in vocabulary.
func Default() *Vocabulary {
	v, err := New(defaultTerms)
	if err != nil {
		// The built-in list is static; a compile failure is a programming error.
		panic(err)
	}
	return v
}

// Load reads a vocabulary config file, validates it against the vocabulary
// schema and builds the Vocabulary.
func Load(path string) (*Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file %s: %w", path, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(vocabularySchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to validate vocabulary file %s: %w", path, err)
	}
	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			messages = append(messages, desc.String())
		}
		return nil, fmt.Errorf("invalid vocabulary file %s: %s", path, strings.Join(messages, "; "))
	}

	var file vocabularyFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}
	return New(file.Skills)
}

// Terms returns the vocabulary terms in canonical display casing, in
// vocabulary order.
func (v *Vocabulary) Terms() []string {
	out := make([]string, len(v.terms))
	for i, t := range v.terms {
		out[i] = t.display
	}
	return out
}

// Match returns the subset of vocabulary terms present in the text, in
// canonical display casing. Matching is case-insensitive and boundary-safe:
// "java" does not match inside "javascript". The result order follows the
// vocabulary, independent of where terms occur in the text.
func (v *Vocabulary) Match(text string) []string {
	found := make([]string, 0)
	for _, t := range v.terms {
		if t.pattern.MatchString(text) {
			found = append(found, t.display)
		}
	}
	return found
}

// compileTermPattern builds a case-insensitive whole-token pattern. Word
// boundaries are only anchored where the term starts or ends with a word
// character; "c++" has no trailing boundary to assert.
func compileTermPattern(lower string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString(`(?i)`)
	if isWordChar(lower[0]) {
		sb.WriteString(`\b`)
	}
	sb.WriteString(regexp.QuoteMeta(lower))
	if isWordChar(lower[len(lower)-1]) {
		sb.WriteString(`\b`)
	}
	return regexp.Compile(sb.String())
}

func isWordChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// displayCasing maps a lower-cased term to its canonical display form:
// an override when one exists, otherwise first-letter capitalisation.
func displayCasing(lower string) string {
	if display, ok := displayOverrides[lower]; ok {
		return display
	}
	return strings.ToUpper(lower[:1]) + lower[1:]
}
