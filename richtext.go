package workbook

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	gmtext "github.com/yuin/goldmark/text"
)

// Span is a run of paragraph text with uniform styling.
type Span struct {
	Text   string
	Bold   bool
	Italic bool
}

// inlineParser is shared; goldmark.Markdown is safe for concurrent use.
var inlineParser = goldmark.New()

// parseSpans parses inline Markdown emphasis in s into styled spans.
// Only *italic* and **bold** are honored; any other markup passes
// through as literal text. Soft line breaks collapse to spaces.
func parseSpans(s string) []Span {
	source := []byte(s)
	root := inlineParser.Parser().Parse(gmtext.NewReader(source))

	var spans []Span
	bold, italic := 0, 0

	appendText := func(text string) {
		if text == "" {
			return
		}
		span := Span{Text: text, Bold: bold > 0, Italic: italic > 0}
		// Merge runs that share a style so wrapping sees whole words.
		if n := len(spans); n > 0 && spans[n-1].Bold == span.Bold && spans[n-1].Italic == span.Italic {
			spans[n-1].Text += span.Text
			return
		}
		spans = append(spans, span)
	}

	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Emphasis:
			if entering {
				if node.Level >= 2 {
					bold++
				} else {
					italic++
				}
			} else {
				if node.Level >= 2 {
					bold--
				} else {
					italic--
				}
			}
		case *ast.Text:
			if entering {
				appendText(string(node.Segment.Value(source)))
				if node.SoftLineBreak() || node.HardLineBreak() {
					appendText(" ")
				}
			}
		case *ast.Paragraph:
			// Paragraph boundaries inside one block collapse to a space.
			if !entering && node.NextSibling() != nil {
				appendText(" ")
			}
		}
		return ast.WalkContinue, nil
	})

	if spans == nil {
		return []Span{}
	}
	return spans
}
