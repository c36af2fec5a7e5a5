// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"context"
	"fmt"
	"net/url"

	"github.com/pdiddy/citegraph/internal/fetch"
	"github.com/pdiddy/citegraph/internal/markup"
	"github.com/pdiddy/citegraph/pkg/types"
)

// efetchBase is the PubMed efetch endpoint. Declared as a var so tests
// can substitute an httptest server.
var efetchBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/efetch.fcgi"

// FetchArticle retrieves the efetch XML record for pmid and extracts its
// metadata. Transport errors propagate; extraction itself never fails.
func FetchArticle(ctx context.Context, client *fetch.Client, pmid string) (types.ArticleRecord, error) {
	params := url.Values{
		"db":      {"pubmed"},
		"retmode": {"xml"},
		"id":      {pmid},
	}

	body, err := client.Get(ctx, efetchBase+"?"+params.Encode())
	if err != nil {
		return types.ArticleRecord{}, err
	}

	doc, err := markup.Parse(body)
	if err != nil {
		return types.ArticleRecord{}, fmt.Errorf("parsing article record for PMID %s: %w", pmid, err)
	}

	rec := Extract(doc)
	rec.PMID = pmid
	return rec, nil
}
