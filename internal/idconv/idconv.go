// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package idconv translates a document id in any supported namespace
// (PMID, PMC, DOI) into the full triple of identifiers known for that
// article, using the NCBI PMC ID-converter service.
// See https://www.ncbi.nlm.nih.gov/pmc/tools/id-converter-api/.
package idconv

import (
	"context"
	"net/url"

	"github.com/pdiddy/citegraph/internal/fetch"
	"github.com/pdiddy/citegraph/internal/markup"
	"github.com/pdiddy/citegraph/pkg/types"
)

// converterBase is the PMC ID-converter endpoint. Declared as a var so
// tests can substitute an httptest server.
var converterBase = "https://www.ncbi.nlm.nih.gov/pmc/utils/idconv/v1.0/"

const defaultTool = "citegraph"

// Resolver queries the ID-converter service.
type Resolver struct {
	Fetch *fetch.Client

	// Tool and Email identify the client per the converter's usage
	// guidelines; APIKey is optional.
	Tool   string
	Email  string
	APIKey string
}

// Resolve translates id in namespace ns into the identifier triple for
// the article. On success the PMC field is always populated (with its
// canonical prefix); PMID and DOI are empty when the converter omits
// them. A *ResolutionError is returned when the converter flags the
// lookup with a status attribute or omits the PMC id, both of which mean
// it could not map the supplied identifier.
func (r *Resolver) Resolve(ctx context.Context, id string, ns Namespace) (types.IdentifierTriple, error) {
	if ns == NamespaceUnknown {
		return types.IdentifierTriple{}, &UnsupportedNamespaceError{
			Namespace: ns,
			Supported: []Namespace{NamespacePMID, NamespacePMC, NamespaceDOI},
		}
	}

	lookup := id
	if ns == NamespacePMC {
		lookup = CanonicalPMC(id)
	}

	tool := r.Tool
	if tool == "" {
		tool = defaultTool
	}

	params := url.Values{"ids": {lookup}, "tool": {tool}}
	if r.Email != "" {
		params.Set("email", r.Email)
	}
	if r.APIKey != "" {
		params.Set("api_key", r.APIKey)
	}

	body, err := r.Fetch.Get(ctx, converterBase+"?"+params.Encode())
	if err != nil {
		return types.IdentifierTriple{}, err
	}

	doc, err := markup.Parse(body)
	if err != nil {
		return types.IdentifierTriple{}, &ResolutionError{ID: id, Namespace: ns, Reason: "unparseable converter response"}
	}

	record := doc.Find("record").First()
	if record.Length() == 0 {
		return types.IdentifierTriple{}, &ResolutionError{ID: id, Namespace: ns, Reason: "no record in converter response"}
	}
	if _, flagged := record.Attr("status"); flagged {
		return types.IdentifierTriple{}, &ResolutionError{ID: id, Namespace: ns, Reason: "converter reported an error status"}
	}

	pmcid, ok := record.Attr("pmcid")
	if !ok || pmcid == "" {
		return types.IdentifierTriple{}, &ResolutionError{ID: id, Namespace: ns, Reason: "no PMC id for document"}
	}
	if ns == NamespacePMC {
		// The prefixed lookup id is authoritative for PMC-namespace input.
		pmcid = lookup
	}

	return types.IdentifierTriple{
		PMID: record.AttrOr("pmid", ""),
		PMC:  CanonicalPMC(pmcid),
		DOI:  record.AttrOr("doi", ""),
	}, nil
}
