// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markup turns raw bytes from NCBI into a queryable document
// tree. The tolerant HTML parser is used for XML records and HTML pages
// alike: tag names are lowercased and malformed input never fails the
// parse, so selectors are written in lowercase throughout.
package markup

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Parse builds a queryable document from raw markup bytes.
func Parse(data []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(data))
}

// DirectText returns the concatenated text of the immediate text-node
// children of every node in sel, skipping nested elements.
func DirectText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, node := range sel.Nodes {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				b.WriteString(c.Data)
			}
		}
	}
	return b.String()
}

// FlattenText returns all descendant text of the first node in sel in
// document order, with element tags ignored.
func FlattenText(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(sel.Nodes[0])
	return b.String()
}

// FoldASCII folds diacritics to their ASCII base characters: decompose,
// strip combining marks, recompose. Input that fails to transform is
// returned unchanged.
func FoldASCII(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
