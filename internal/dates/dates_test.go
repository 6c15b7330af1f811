package dates

import "testing"

func TestExtract_CuePhrase(t *testing.T) {
	pages := []string{"This Agreement is entered into effective as of January 5, 2024, by the parties."}
	got := Extract(pages)
	if got == nil {
		t.Fatal("expected a date, got nil")
	}
	if *got != "2024-01-05" {
		t.Errorf("expected %q, got %q", "2024-01-05", *got)
	}
}

func TestExtract_CueRestrictsRegion(t *testing.T) {
	// The date before the cue must lose to the one after it.
	pages := []string{"Drafted March 1, 2020.\nThe agreement becomes effective on June 15, 2021."}
	got := Extract(pages)
	if got == nil {
		t.Fatal("expected a date, got nil")
	}
	if *got != "2021-06-15" {
		t.Errorf("expected %q, got %q", "2021-06-15", *got)
	}
}

func TestExtract_NoCueFallsBackToWindow(t *testing.T) {
	pages := []string{"Signed in duplicate on February 28, 2023 by both representatives."}
	got := Extract(pages)
	if got == nil {
		t.Fatal("expected a date, got nil")
	}
	if *got != "2023-02-28" {
		t.Errorf("expected %q, got %q", "2023-02-28", *got)
	}
}

func TestExtract_FallsBackToWholeDocument(t *testing.T) {
	pages := []string{"page one", "page two", "page three", "Executed on 2022-11-30 by all parties."}
	got := Extract(pages)
	if got == nil {
		t.Fatal("expected a date, got nil")
	}
	if *got != "2022-11-30" {
		t.Errorf("expected %q, got %q", "2022-11-30", *got)
	}
}

func TestExtract_NoDates(t *testing.T) {
	if got := Extract([]string{"no temporal references here at all"}); got != nil {
		t.Errorf("expected nil, got %q", *got)
	}
}

func TestExtract_EmptyPages(t *testing.T) {
	if got := Extract(nil); got != nil {
		t.Errorf("expected nil for no pages, got %q", *got)
	}
}

func TestExtract_ExtraCues(t *testing.T) {
	e := New([]string{"commencing on"})
	pages := []string{"Signed April 2, 2019.\nCommencing on May 10, 2019 the services begin."}
	got := e.Extract(pages)
	if got == nil {
		t.Fatal("expected a date, got nil")
	}
	if *got != "2019-05-10" {
		t.Errorf("expected %q, got %q", "2019-05-10", *got)
	}
}

func TestToISO(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-05", "2024-01-05"},
		{"January 5, 2024", "2024-01-05"},
		{"5 March 2023", "2023-03-05"},
		{"12/31/2023", "2023-12-31"},
		{"3/7/2024", "2024-03-07"},
	}
	for _, tt := range tests {
		got := ToISO(tt.in)
		if got == nil {
			t.Errorf("ToISO(%q) = nil, want %q", tt.in, tt.want)
			continue
		}
		if *got != tt.want {
			t.Errorf("ToISO(%q) = %q, want %q", tt.in, *got, tt.want)
		}
	}
}

func TestToISO_Unparseable(t *testing.T) {
	for _, in := range []string{"", "   ", "the fifth of never"} {
		if got := ToISO(in); got != nil {
			t.Errorf("ToISO(%q) = %q, want nil", in, *got)
		}
	}
}
