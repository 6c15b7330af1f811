package lines

import "testing"

func TestCollapse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  hello  ", "hello"},
		{"a\t\tb", "a b"},
		{"a \n b  c", "a b c"},
		{"already clean", "already clean"},
	}
	for _, tt := range tests {
		if got := Collapse(tt.in); got != tt.want {
			t.Errorf("Collapse(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromPages_TrimsAndTags(t *testing.T) {
	pages := []string{"  First line  \nSecond line", "Third line"}
	ls := FromPages(pages)

	if len(ls) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(ls))
	}
	if ls[0].Text != "First line" || ls[0].Page != 0 {
		t.Errorf("unexpected first line: %+v", ls[0])
	}
	if ls[1].Text != "Second line" || ls[1].Page != 0 {
		t.Errorf("unexpected second line: %+v", ls[1])
	}
	if ls[2].Text != "Third line" || ls[2].Page != 1 {
		t.Errorf("unexpected third line: %+v", ls[2])
	}
}

func TestFromPages_CollapsesBlankRuns(t *testing.T) {
	ls := FromPages([]string{"a\n\n\n\nb"})

	var texts []string
	for _, ln := range ls {
		texts = append(texts, ln.Text)
	}
	want := []string{"a", "", "b"}
	if len(texts) != len(want) {
		t.Fatalf("expected %d lines, got %d: %v", len(want), len(texts), texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, texts[i], want[i])
		}
	}
}

func TestFromPages_NormalizesLineEndings(t *testing.T) {
	ls := FromPages([]string{"a\r\nb\rc"})
	if len(ls) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(ls))
	}
	if ls[0].Text != "a" || ls[1].Text != "b" || ls[2].Text != "c" {
		t.Errorf("unexpected lines: %+v", ls)
	}
}

func TestFromPages_Empty(t *testing.T) {
	if ls := FromPages(nil); len(ls) != 0 {
		t.Errorf("expected no lines for no pages, got %d", len(ls))
	}
}

func TestFirstPage(t *testing.T) {
	ls := []Line{
		{Page: 0, Text: "a"},
		{Page: 0, Text: "b"},
		{Page: 1, Text: "c"},
	}
	first := FirstPage(ls)
	if len(first) != 2 {
		t.Fatalf("expected 2 first-page lines, got %d", len(first))
	}
	if first[1].Text != "b" {
		t.Errorf("expected %q, got %q", "b", first[1].Text)
	}
}

func TestFirstPage_SinglePage(t *testing.T) {
	ls := []Line{{Page: 0, Text: "only"}}
	if got := FirstPage(ls); len(got) != 1 {
		t.Errorf("expected whole stream back, got %d lines", len(got))
	}
}
