package pipeline

import (
	"strings"
	"testing"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	if ContentHashHex([]byte("aaa")) == ContentHashHex([]byte("bbb")) {
		t.Error("expected different hashes for different inputs")
	}
}

func TestNewJobID_UniqueAndSortable(t *testing.T) {
	seen := make(map[string]bool)
	var prev string
	for i := 0; i < 100; i++ {
		id := NewJobID()
		if len(id) != 26 {
			t.Fatalf("expected 26-char ULID, got %q", id)
		}
		if seen[id] {
			t.Fatalf("duplicate id %q", id)
		}
		seen[id] = true
		if prev != "" && id < prev {
			t.Fatalf("expected monotonic ids, got %q after %q", id, prev)
		}
		prev = id
	}
}

func TestDocIDFromHash(t *testing.T) {
	hash := ContentHashHex([]byte("doc"))
	id := DocIDFromHash(hash)
	if !strings.HasPrefix(id, "doc_") {
		t.Errorf("expected doc_ prefix, got %q", id)
	}
	if len(id) != len("doc_")+16 {
		t.Errorf("expected 16 hash chars, got %q", id)
	}
	if DocIDFromHash(hash) != id {
		t.Error("expected stable doc id for the same hash")
	}
}
