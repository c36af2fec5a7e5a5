// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/citegraph/internal/fetch"
	"github.com/pdiddy/citegraph/internal/idconv"
	"github.com/pdiddy/citegraph/internal/markup"
	"github.com/pdiddy/citegraph/pkg/types"
)

// citedByBase is the PMC article URL prefix for cited-by listings.
// Declared as a var so tests can substitute an httptest server.
var citedByBase = "https://www.ncbi.nlm.nih.gov/pmc/articles/"

// IdentifierResolver translates a document id into its identifier
// triple. *idconv.Resolver is the production implementation.
type IdentifierResolver interface {
	Resolve(ctx context.Context, id string, ns idconv.Namespace) (types.IdentifierTriple, error)
}

// Crawler enumerates citation relationships for one document at a time.
// Page fetches are strictly sequential; no page is skipped or retried at
// this layer, and the first unrecoverable error aborts the crawl with no
// partial result.
type Crawler struct {
	Fetch    *fetch.Client
	Resolver IdentifierResolver

	// Progress receives one line per page fetch; nil discards.
	Progress io.Writer
}

func (c *Crawler) progress() io.Writer {
	if c.Progress == nil {
		return io.Discard
	}
	return c.Progress
}

// CrawlCitedBy resolves docID, then walks every page of its cited-by
// listing and aggregates the citing PMC ids in page order. The queried
// document's own id is filtered out even when the listing includes a
// self-referential row. Resolution failures surface as *ResolutionError;
// transport errors propagate from the fetch client unchanged.
func (c *Crawler) CrawlCitedBy(ctx context.Context, docID string, ns idconv.Namespace) (types.CitationGraphResult, error) {
	triple, err := c.Resolver.Resolve(ctx, docID, ns)
	if err != nil {
		return types.CitationGraphResult{}, err
	}

	first, err := c.fetchPage(ctx, triple.PMC, 1)
	if err != nil {
		return types.CitationGraphResult{}, err
	}

	total := first.Count
	pages := pageCount(total)
	citers := append([]string(nil), first.CiterIDs...)
	fmt.Fprintf(c.progress(), "fetched page 1/%d for %s (%d citers)\n", pages, triple.PMC, total)

	for p := 2; p <= pages; p++ {
		fmt.Fprintf(c.progress(), "fetching page %d/%d for %s\n", p, pages, triple.PMC)
		page, err := c.fetchPage(ctx, triple.PMC, p)
		if err != nil {
			return types.CitationGraphResult{}, err
		}
		citers = append(citers, page.CiterIDs...)
	}

	own := idconv.BarePMC(triple.PMC)
	filtered := make([]string, 0, len(citers))
	for _, id := range citers {
		if id != own {
			filtered = append(filtered, id)
		}
	}

	return types.CitationGraphResult{
		Count:   total,
		PMID:    triple.PMID,
		PMC:     own,
		DOI:     triple.DOI,
		Pages:   pages,
		CitedBy: filtered,
	}, nil
}

// fetchPage retrieves and extracts one cited-by listing page for the
// prefixed PMC id.
func (c *Crawler) fetchPage(ctx context.Context, pmc string, page int) (types.CitationPage, error) {
	url := fmt.Sprintf("%s%s/citedby/", citedByBase, pmc)
	if page > 1 {
		url = fmt.Sprintf("%s?page=%d", url, page)
	}

	body, err := c.Fetch.Get(ctx, url)
	if err != nil {
		return types.CitationPage{}, err
	}

	doc, err := markup.Parse(body)
	if err != nil {
		return types.CitationPage{}, fmt.Errorf("parsing cited-by page %d for %s: %w", page, pmc, err)
	}
	return ExtractPage(doc), nil
}
