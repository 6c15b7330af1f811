package parser

import (
	"strings"
	"testing"
)

func TestTextParser_SinglePage(t *testing.T) {
	p := &TextParser{}
	pages, err := p.Parse(strings.NewReader("line one\nline two"), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	if pages[0] != "line one\nline two" {
		t.Errorf("unexpected page content: %q", pages[0])
	}
}

func TestTextParser_FormFeedSplitsPages(t *testing.T) {
	p := &TextParser{}
	pages, err := p.Parse(strings.NewReader("page one\fpage two\fpage three"), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(pages))
	}
	if pages[1] != "page two" {
		t.Errorf("expected %q, got %q", "page two", pages[1])
	}
}

func TestTextParser_Empty(t *testing.T) {
	p := &TextParser{}
	pages, err := p.Parse(strings.NewReader(""), "doc.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 || pages[0] != "" {
		t.Errorf("expected one empty page, got %v", pages)
	}
	if HasText(pages) {
		t.Error("expected HasText to be false for empty content")
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		filename string
		wantErr  bool
	}{
		{"contract.txt", false},
		{"contract.md", false},
		{"contract.html", false},
		{"contract.htm", false},
		{"contract.pdf", false},
		{"contract.docx", false},
		{"CONTRACT.TXT", false},
		{"contract.csv", true},
		{"contract", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.filename)
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
		}
	}
}

func TestIsSupportedExtension(t *testing.T) {
	if !IsSupportedExtension("a.pdf") {
		t.Error("expected .pdf supported")
	}
	if IsSupportedExtension("a.exe") {
		t.Error("expected .exe unsupported")
	}
}

func TestHasText(t *testing.T) {
	if HasText([]string{"", "  \n\t "}) {
		t.Error("expected false for whitespace-only pages")
	}
	if !HasText([]string{"", "words"}) {
		t.Error("expected true when any page has content")
	}
}
