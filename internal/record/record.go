// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package record extracts article metadata from PubMed efetch records.
// Extraction never fails as a whole: each field is extracted
// independently and degrades to the empty string on its own errors, so a
// malformed abstract cannot blank the title.
package record

import (
	"errors"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/citegraph/internal/markup"
	"github.com/pdiddy/citegraph/pkg/types"
)

const listSep = "; "

// recordFields is the extraction table: one independent extractor per
// output field. An extractor error empties that field only.
var recordFields = []struct {
	name    string
	extract func(*goquery.Document) (string, error)
}{
	{"title", extractTitle},
	{"abstract", extractAbstract},
	{"journal", extractJournal},
	{"year", extractYear},
	{"affiliation", extractAffiliation},
	{"authors", extractAuthors},
}

// Extract produces the metadata record for one parsed article tree.
func Extract(doc *goquery.Document) types.ArticleRecord {
	fields := make(map[string]string, len(recordFields))
	for _, f := range recordFields {
		value, err := f.extract(doc)
		if err != nil {
			value = ""
		}
		fields[f.name] = value
	}
	return types.ArticleRecord{
		Title:       fields["title"],
		Abstract:    fields["abstract"],
		Journal:     fields["journal"],
		Year:        fields["year"],
		Affiliation: fields["affiliation"],
		Authors:     fields["authors"],
	}
}

func extractTitle(doc *goquery.Document) (string, error) {
	var parts []string
	doc.Find("articletitle").Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, markup.DirectText(s))
	})
	return strings.Join(parts, " "), nil
}

func extractAbstract(doc *goquery.Document) (string, error) {
	sel := doc.Find("abstract")
	if sel.Length() == 0 {
		return "", errors.New("no abstract node")
	}
	return strings.TrimSpace(markup.FoldASCII(markup.FlattenText(sel.First()))), nil
}

func extractJournal(doc *goquery.Document) (string, error) {
	var parts []string
	doc.Find("article title").Each(func(_ int, s *goquery.Selection) {
		parts = append(parts, markup.DirectText(s))
	})
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

var yearRe = regexp.MustCompile(`^\d{4}$`)

func extractYear(doc *goquery.Document) (string, error) {
	sel := doc.Find(`pubmeddata history pubmedpubdate[pubstatus="medline"] year`)
	year := strings.TrimSpace(markup.DirectText(sel))
	if year == "" {
		return "", nil
	}
	if !yearRe.MatchString(year) {
		return "", errors.New("malformed year")
	}
	return year, nil
}

func extractAffiliation(doc *goquery.Document) (string, error) {
	var parts []string
	doc.Find("affiliationinfo affiliation").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(markup.DirectText(s)); text != "" {
			parts = append(parts, text)
		}
	})
	return strings.Join(parts, listSep), nil
}

func extractAuthors(doc *goquery.Document) (string, error) {
	var names []string
	doc.Find("authorlist author").Each(func(_ int, s *goquery.Selection) {
		fore := strings.TrimSpace(markup.DirectText(s.Find("forename").First()))
		last := strings.TrimSpace(markup.DirectText(s.Find("lastname").First()))
		// An author missing either part is dropped without affecting
		// the rest of the list.
		if fore == "" || last == "" {
			return
		}
		names = append(names, fore+" "+last)
	})
	return strings.Join(names, listSep), nil
}
