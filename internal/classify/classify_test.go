package classify

import (
	"testing"

	"github.com/dgallion1/clauseparse/internal/lines"
)

func fromText(text string) []lines.Line {
	return lines.FromPages([]string{text})
}

func TestTitleAndType_UppercaseKeywordTitle(t *testing.T) {
	ls := fromText("MASTER SERVICES AGREEMENT\n\nThis agreement is made by the parties.")
	title, typ := TitleAndType(ls)
	if title != "MASTER SERVICES AGREEMENT" {
		t.Errorf("expected title %q, got %q", "MASTER SERVICES AGREEMENT", title)
	}
	if typ != "Master Services Agreement" {
		t.Errorf("expected type %q, got %q", "Master Services Agreement", typ)
	}
}

func TestTitleAndType_SkipsExhibitHeaders(t *testing.T) {
	ls := fromText("EXHIBIT A\n\nSOFTWARE LICENSE AGREEMENT\n\nPreamble text follows.")
	title, typ := TitleAndType(ls)
	if title != "SOFTWARE LICENSE AGREEMENT" {
		t.Errorf("expected exhibit header skipped, got title %q", title)
	}
	if typ != "Software License Agreement" {
		t.Errorf("expected type %q, got %q", "Software License Agreement", typ)
	}
}

func TestTitleAndType_RelaxesToAnyTitleLine(t *testing.T) {
	// No line carries an agreement keyword; the title-style line still wins.
	ls := fromText("ACME HOLDINGS\n\nsome lowercase preamble text here.")
	title, typ := TitleAndType(ls)
	if title != "ACME HOLDINGS" {
		t.Errorf("expected title %q, got %q", "ACME HOLDINGS", title)
	}
	if typ != "Agreement" {
		t.Errorf("expected default type, got %q", typ)
	}
}

func TestTitleAndType_FallsBackToFirstLine(t *testing.T) {
	// Nothing looks like a heading; the first surviving line is used verbatim.
	ls := fromText("this deed witnesses the following terms.\nmore prose.")
	title, _ := TitleAndType(ls)
	if title != "this deed witnesses the following terms." {
		t.Errorf("expected verbatim first line, got %q", title)
	}
}

func TestTitleAndType_EmptyInput(t *testing.T) {
	title, typ := TitleAndType(nil)
	if title != "Agreement" || typ != "Agreement" {
		t.Errorf("expected Agreement/Agreement defaults, got %q/%q", title, typ)
	}
}

func TestTitleAndType_OnlyScansFirstPage(t *testing.T) {
	ls := lines.FromPages([]string{"plain words here only.", "REAL ESTATE LEASE"})
	title, _ := TitleAndType(ls)
	if title != "plain words here only." {
		t.Errorf("expected first-page line, got %q", title)
	}
}

func TestTypeFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"MASTER SERVICES AGREEMENT", "Master Services Agreement"},
		{"Software License Agreement", "Software License Agreement"},
		{"EQUIPMENT LEASE", "Equipment Lease"},
		{"Consulting Contract", "Consulting Contract"},
		{"Statement of Work", "Statement Of Work"},
		{"Purchase Order Terms", "Agreement"},
		{"", "Agreement"},
	}
	for _, tt := range tests {
		if got := TypeFromTitle(tt.title); got != tt.want {
			t.Errorf("TypeFromTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestTypeFromTitle_MasterBeatsGenericAgreement(t *testing.T) {
	// The more specific pattern must win even though both match.
	got := TypeFromTitle("AMENDED MASTER SUPPLY AGREEMENT")
	if got != "Master Supply Agreement" {
		t.Errorf("expected %q, got %q", "Master Supply Agreement", got)
	}
}

func TestLooksLikeTitle(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"MASTER SERVICES AGREEMENT", true},
		{"Master Services Agreement", true},
		{"This sentence ends with a period.", false},
		{"abc", false},
		{"lowercase prose that no one would mistake for a heading", false},
	}
	for _, tt := range tests {
		if got := looksLikeTitle(tt.line); got != tt.want {
			t.Errorf("looksLikeTitle(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"MASTER SERVICES AGREEMENT", "Master Services Agreement"},
		{"non-disclosure agreement", "Non-Disclosure Agreement"},
		{"lease", "Lease"},
	}
	for _, tt := range tests {
		if got := titleCase(tt.in); got != tt.want {
			t.Errorf("titleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
