/*
Package html extracts expressions from HTML documents.

Expressions are taken from the text content of a document, one per line.
Block-level elements and <br> end a line, just like newline characters in
text nodes do.
*/
package html

import (
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNilNode is flagged if InnerText is called for a nil node.
var ErrNilNode = errors.New("html: nil node")

// InnerText creates a text for the textual content of an HTML element and all
// its descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript (except that html.InnerText cannot respect CSS styling
// suppressing the visibility of the node's descendents). Contents of <script>
// and <style> elements are skipped.
func InnerText(n *html.Node) (string, error) {
	if n == nil {
		return "", ErrNilNode
	}
	var b strings.Builder
	collectText(n, &b)
	return b.String(), nil
}

// LinesFromHTML parses an HTML document or fragment and returns the lines of
// its text content. Lines are trimmed; empty lines are dropped, as they are
// an artifact of formatting the markup.
func LinesFromHTML(input io.Reader) ([]string, error) {
	doc, err := html.Parse(input)
	if err != nil {
		return nil, err
	}
	text, err := InnerText(doc)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
		if n.DataAtom == atom.Br {
			b.WriteByte('\n')
			return
		}
	}
	block := n.Type == html.ElementNode && isBlock(n.DataAtom)
	if block {
		b.WriteByte('\n')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if block {
		b.WriteByte('\n')
	}
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.Pre, atom.Tr, atom.Td, atom.Th,
		atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Ul, atom.Ol, atom.Table, atom.Blockquote, atom.Dd, atom.Dt:
		return true
	}
	return false
}
