// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citations traverses the PMC citation graph: the paginated
// cited-by HTML listing for incoming citations and the eutils elink
// endpoint for outgoing ones.
package citations

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/citegraph/internal/idconv"
	"github.com/pdiddy/citegraph/pkg/types"
)

// pageSize is the number of rows PMC renders per cited-by listing page.
const pageSize = 30

// pageCount derives how many listing pages cover total citations.
func pageCount(total int) int {
	return total/pageSize + 1
}

// headingBoilerplate precedes the citation count in the listing heading.
const headingBoilerplate = "Is Cited by the Following "

// ExtractPage pulls the citation count and citer ids from one parsed
// cited-by listing page. A missing or reshuffled heading yields Count 0
// instead of an error so that cosmetic markup changes cannot abort
// pagination; on pages past the first a 0 means "unknown". The first
// listing row is the queried document's own placeholder and is skipped.
func ExtractPage(doc *goquery.Document) types.CitationPage {
	var page types.CitationPage

	heading := strings.TrimSpace(doc.Find("form h2.head").First().Text())
	heading = strings.TrimPrefix(heading, headingBoilerplate)
	if fields := strings.Fields(heading); len(fields) > 0 {
		if n, err := strconv.Atoi(fields[0]); err == nil && n >= 0 {
			page.Count = n
		}
	}

	doc.Find("div.rprt div.title a").Each(func(i int, s *goquery.Selection) {
		if i == 0 {
			return
		}
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		if id := citerID(href); id != "" {
			page.CiterIDs = append(page.CiterIDs, id)
		}
	})
	return page
}

// citerID extracts the bare PMC id from a listing row href: the last
// non-empty path segment with the namespace prefix stripped.
func citerID(href string) string {
	segments := strings.Split(href, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return idconv.BarePMC(segments[i])
		}
	}
	return ""
}
