package parser

import (
	"strings"
	"testing"
)

func TestHTMLParser_ExtractsBlocks(t *testing.T) {
	input := `<html><head><title>ignored</title><style>p{color:red}</style></head>
<body>
<h1>SERVICES AGREEMENT</h1>
<p>Preamble text here.</p>
<ul><li>(a) First obligation applies.</li><li>(b) Second obligation applies.</li></ul>
</body></html>`

	p := &HTMLParser{}
	pages, err := p.Parse(strings.NewReader(input), "contract.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(pages))
	}
	page := pages[0]

	if !strings.Contains(page, "SERVICES AGREEMENT") {
		t.Errorf("expected heading in output, got %q", page)
	}
	if !strings.Contains(page, "Preamble text here.") {
		t.Errorf("expected paragraph in output, got %q", page)
	}
	if !strings.Contains(page, "(a) First obligation applies.") {
		t.Errorf("expected list item in output, got %q", page)
	}
	if strings.Contains(page, "color:red") {
		t.Errorf("expected style content excluded, got %q", page)
	}
	if strings.Contains(page, "ignored") {
		t.Errorf("expected head content excluded, got %q", page)
	}
}

func TestHTMLParser_SkipsChrome(t *testing.T) {
	input := `<body><nav>Home | About</nav><p>Real content.</p><footer>copyright</footer></body>`
	p := &HTMLParser{}
	pages, err := p.Parse(strings.NewReader(input), "page.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	page := pages[0]
	if strings.Contains(page, "Home | About") || strings.Contains(page, "copyright") {
		t.Errorf("expected nav/footer excluded, got %q", page)
	}
	if !strings.Contains(page, "Real content.") {
		t.Errorf("expected paragraph kept, got %q", page)
	}
}

func TestHTMLParser_HeadingOwnBlock(t *testing.T) {
	input := `<body><h2>1. DEFINITIONS</h2><p>(a) Foo means bar.</p></body>`
	p := &HTMLParser{}
	pages, err := p.Parse(strings.NewReader(input), "defs.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blocks := strings.Split(pages[0], "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d: %v", len(blocks), blocks)
	}
	if blocks[0] != "1. DEFINITIONS" {
		t.Errorf("expected heading block, got %q", blocks[0])
	}
	if blocks[1] != "(a) Foo means bar." {
		t.Errorf("expected clause block, got %q", blocks[1])
	}
}
