package generator

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// tocTitle is the heading that holds the table of contents itself.
const tocTitle = "Table of Contents"

var markdown = goldmark.New()

// tableOfContents lists the level-2 headings of a rendered document, except
// the table of contents heading, in document order.
func tableOfContents(doc []byte) ([]TOCEntry, error) {
	root := markdown.Parser().Parse(text.NewReader(doc))

	var entries []TOCEntry
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		if h.Level == 2 {
			title := strings.TrimSpace(headingText(h, doc))
			if title != "" && title != tocTitle {
				entries = append(entries, TOCEntry{Title: title, Anchor: anchor(title)})
			}
		}
		return ast.WalkSkipChildren, nil
	})
	return entries, err
}

func headingText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(headingText(c, src))
		}
	}
	return buf.String()
}

// anchor returns the GitHub-style fragment for a heading title.
func anchor(title string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '-', r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteByte('-')
		}
	}
	return sb.String()
}
