package services

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

type TextExtractor interface {
	// ExtractFromFile converts an uploaded document into bounded plain
	// text. PDFs get real structural parsing; other formats (and
	// unparseable PDFs) degrade to a byte-level scrub.
	ExtractFromFile(filePath string) (string, error)
}

type textExtractor struct {
	maxLen int
}

func NewTextExtractor(maxLen int) TextExtractor {
	return &textExtractor{maxLen: maxLen}
}

var disallowedChars = regexp.MustCompile(`[^\w\s.,;:!?()-]`)

func (e *textExtractor) ExtractFromFile(filePath string) (string, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", filePath)
	}

	if strings.ToLower(filepath.Ext(filePath)) == ".pdf" {
		if text, err := e.extractPDF(filePath); err == nil {
			return e.truncate(text), nil
		}
		// fall through to the plain scrub
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return e.ScrubText(data), nil
}

func (e *textExtractor) extractPDF(filePath string) (string, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// continue with other pages
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n\n")
	}

	text := CleanText(textBuilder.String())
	if text == "" {
		return "", fmt.Errorf("no text content found in PDF")
	}
	return text, nil
}

// ScrubText decodes raw bytes as text, strips characters outside the
// conservative allow-list and truncates to the configured maximum.
func (e *textExtractor) ScrubText(data []byte) string {
	text := disallowedChars.ReplaceAllString(string(data), "")
	return e.truncate(text)
}

func (e *textExtractor) truncate(text string) string {
	if len(text) <= e.maxLen {
		return text
	}
	// back up to a rune boundary so the cut never leaves invalid UTF-8
	cut := e.maxLen
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

// CleanText removes blank lines and trims surrounding whitespace.
func CleanText(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")

	var cleanedLines []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleanedLines = append(cleanedLines, line)
		}
	}
	return strings.Join(cleanedLines, "\n")
}
