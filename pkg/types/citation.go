// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// CitationPage holds the result of extracting one page of a PMC
// cited-by listing.
type CitationPage struct {
	// Count is the total citation count read from the page heading.
	// Only meaningful on page 1; on later pages a 0 means "unknown",
	// not "zero".
	Count int `json:"count" yaml:"count"`

	// CiterIDs are the bare PMC ids found on this page, in listing order.
	CiterIDs []string `json:"citer_ids" yaml:"citer_ids"`
}

// CitationGraphResult aggregates a full cited-by crawl for one article.
type CitationGraphResult struct {
	// Count is the total citation count reported on page 1.
	Count int `json:"count" yaml:"count"`

	// PMID, PMC, and DOI identify the queried article. PMC is stored
	// bare, without the "PMC" prefix.
	PMID string `json:"pmid" yaml:"pmid"`
	PMC  string `json:"pmc" yaml:"pmc"`
	DOI  string `json:"doi" yaml:"doi"`

	// Pages is the number of listing pages fetched.
	Pages int `json:"pages" yaml:"pages"`

	// CitedBy are the bare PMC ids of citing articles in page order,
	// with the queried article's own id filtered out.
	CitedBy []string `json:"cited_by" yaml:"cited_by"`
}

// OutgoingCitationResult holds the articles a given document cites,
// as reported by the eutils elink endpoint.
type OutgoingCitationResult struct {
	// Count is the number of linked ids returned.
	Count int `json:"count" yaml:"count"`

	// DocID is the queried document id, in the namespace it was given.
	DocID string `json:"doc_id" yaml:"doc_id"`

	// Namespace names the id namespace of DocID ("pmid" or "pmc").
	Namespace string `json:"namespace" yaml:"namespace"`

	// Cited are the PMIDs of the cited articles in response order.
	Cited []string `json:"cited" yaml:"cited"`
}
