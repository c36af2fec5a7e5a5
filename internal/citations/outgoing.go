// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citations

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"github.com/pdiddy/citegraph/internal/idconv"
	"github.com/pdiddy/citegraph/pkg/types"
)

// elinkBase is the eutils elink endpoint. Declared as a var so tests can
// substitute an httptest server.
var elinkBase = "https://eutils.ncbi.nlm.nih.gov/entrez/eutils/elink.fcgi"

// linkSource maps a namespace to the elink source database and link
// name. Only the PMID and PMC namespaces have a link graph.
func linkSource(ns idconv.Namespace) (db, linkname string, err error) {
	switch ns {
	case idconv.NamespacePMC:
		return "pmc", "pmc_refs_pubmed", nil
	case idconv.NamespacePMID:
		return "pubmed", "pubmed_pubmed_refs", nil
	default:
		return "", "", &idconv.UnsupportedNamespaceError{
			Namespace: ns,
			Supported: []idconv.Namespace{idconv.NamespacePMID, idconv.NamespacePMC},
		}
	}
}

// eutils elink XML structures. Unlike the article records and cited-by
// pages, elink responses are well-formed XML (and contain <Link>
// elements, which an HTML-tolerant parse would mangle as void tags), so
// they decode with encoding/xml.
type elinkResult struct {
	LinkSets []elinkLinkSet `xml:"LinkSet"`
}

type elinkLinkSet struct {
	LinkSetDbs []elinkLinkSetDb `xml:"LinkSetDb"`
}

type elinkLinkSetDb struct {
	Links []elinkLink `xml:"Link"`
}

type elinkLink struct {
	ID string `xml:"Id"`
}

// CrawlOutgoing queries the elink graph for the articles docID cites and
// returns their PMIDs in response order. A response with zero linked ids
// returns (nil, nil): in practice an empty link set almost always means
// an invalid input id rather than an article citing nothing, so the
// absent result deliberately keeps that ambiguity visible to callers.
// Namespaces other than PMID and PMC fail with
// *idconv.UnsupportedNamespaceError.
func (c *Crawler) CrawlOutgoing(ctx context.Context, docID string, ns idconv.Namespace) (*types.OutgoingCitationResult, error) {
	db, linkname, err := linkSource(ns)
	if err != nil {
		return nil, err
	}

	id := docID
	if ns == idconv.NamespacePMC {
		id = idconv.BarePMC(docID)
	}

	params := url.Values{
		"dbfrom":   {db},
		"linkname": {linkname},
		"id":       {id},
	}

	body, err := c.Fetch.Get(ctx, elinkBase+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var result elinkResult
	if err := xml.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parsing elink response for %s: %w", docID, err)
	}

	var cited []string
	for _, set := range result.LinkSets {
		for _, setDb := range set.LinkSetDbs {
			for _, link := range setDb.Links {
				if id := strings.TrimSpace(link.ID); id != "" {
					cited = append(cited, id)
				}
			}
		}
	}

	if len(cited) == 0 {
		return nil, nil
	}

	return &types.OutgoingCitationResult{
		Count:     len(cited),
		DocID:     docID,
		Namespace: ns.String(),
		Cited:     cited,
	}, nil
}
