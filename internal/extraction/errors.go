package extraction

import "fmt"

// UnsupportedFormatError indicates a file extension outside the supported set.
type UnsupportedFormatError struct {
	Extension string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported document format: %q (supported: .pdf, .docx)", e.Extension)
}

// ExtractionError indicates the underlying document could not be read or parsed.
type ExtractionError struct {
	Path  string
	Cause error
}

func (e *ExtractionError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to extract text from %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("failed to extract text: %v", e.Cause)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
