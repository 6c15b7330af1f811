package parser

import (
	"io"
	"strings"
)

// TextParser handles plain text files. Form feeds mark page boundaries when
// present; otherwise the whole file is one page.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return splitPages(string(data)), nil
}

// splitPages splits extracted text on form feeds, the page separator the PDF
// extractor also emits.
func splitPages(text string) []string {
	return strings.Split(text, "\f")
}
