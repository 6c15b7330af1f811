package parser

import (
	"bytes"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings are emitted
// as their own lines so the segmenter sees them the way a PDF layout would
// present them; everything renders into a single page.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) ([]string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var page strings.Builder
	writeBlock := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if page.Len() > 0 {
			page.WriteString("\n\n")
		}
		page.WriteString(s)
	}

	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			writeBlock(string(node.Text(src)))
		case *ast.List:
			// Each item becomes its own line so "(a) ..." markers survive.
			var items []string
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				if t := extractText(item, src); t != "" {
					items = append(items, t)
				}
			}
			writeBlock(strings.Join(items, "\n"))
		default:
			writeBlock(extractText(n, src))
		}
	}

	return []string{page.String()}, nil
}

// extractText gets the text content of a goldmark AST node. Blocks that own
// raw source lines yield those directly; container nodes recurse.
func extractText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock && n.Lines().Len() > 0 {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
		return strings.TrimSpace(buf.String())
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t := extractText(c, src); t != "" {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(t)
		}
	}
	return strings.TrimSpace(buf.String())
}
