// Package extraction converts PDF and DOCX documents into plain text.
//
// Extraction is best-effort at the page level: a PDF page with no extractable
// text (e.g. a scanned image) contributes an empty string instead of failing
// the whole document. A file that cannot be opened or parsed at all fails with
// an *ExtractionError; any extension outside {.pdf, .docx} fails with an
// *UnsupportedFormatError.
package extraction

import (
	"bytes"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// ExtractFile reads the document at path and returns its plain text,
// dispatching on the file extension.
func ExtractFile(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf", ".docx":
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &ExtractionError{Path: path, Cause: err}
	}

	text, err := ExtractBytes(data, ext)
	if err != nil {
		if extErr, ok := err.(*ExtractionError); ok {
			extErr.Path = path
		}
		return "", err
	}
	return text, nil
}

// ExtractBytes extracts plain text from an in-memory document. The ext
// argument is the lower-cased file extension including the dot.
func ExtractBytes(data []byte, ext string) (string, error) {
	r := bytes.NewReader(data)
	switch ext {
	case ".pdf":
		return ExtractPDF(r, int64(len(data)))
	case ".docx":
		return ExtractDOCX(r, int64(len(data)))
	default:
		return "", &UnsupportedFormatError{Extension: ext}
	}
}

// ExtractPDF reads a PDF page by page and concatenates the extracted text in
// page order, separated by a paragraph break. Pages that yield no text are
// skipped rather than treated as errors.
func ExtractPDF(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", &ExtractionError{Cause: err}
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// Text-less or malformed pages degrade gracefully.
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

// paragraphEnd and xmlTag are used to flatten WordprocessingML into plain text.
var (
	paragraphEnd = regexp.MustCompile(`</w:p>`)
	xmlTag       = regexp.MustCompile(`<[^>]+>`)
)

// ExtractDOCX reads a DOCX document and returns its paragraph texts in
// document order, one paragraph per line.
func ExtractDOCX(r io.ReaderAt, size int64) (string, error) {
	doc, err := docx.ReadDocxFromMemory(r, size)
	if err != nil {
		return "", &ExtractionError{Cause: err}
	}
	defer doc.Close()

	return docxContentToText(doc.Editable().GetContent()), nil
}

// docxContentToText flattens the document.xml body: one line per paragraph,
// all remaining markup stripped, XML entities decoded.
func docxContentToText(content string) string {
	text := paragraphEnd.ReplaceAllString(content, "\n")
	text = xmlTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)
	return strings.TrimRight(text, "\n")
}
