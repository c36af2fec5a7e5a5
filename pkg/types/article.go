// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the value types shared across citegraph packages.
// Every type here is constructed in one pass from remote responses and
// never mutated afterwards; persistence is a caller concern.
package types

// ArticleRecord holds the metadata extracted from one PubMed article
// record. Every field defaults to the empty string when the source tree
// is missing or malformed for that field; extraction never fails outright.
type ArticleRecord struct {
	// PMID is the PubMed id the record was fetched for. Empty when the
	// record was extracted from a caller-supplied tree.
	PMID string `json:"pmid,omitempty" yaml:"pmid,omitempty"`

	// Title is the article title, space-joined across title nodes.
	Title string `json:"title" yaml:"title"`

	// Abstract is the flattened abstract text, folded to ASCII.
	Abstract string `json:"abstract" yaml:"abstract"`

	// Journal is the container title, whitespace-trimmed.
	Journal string `json:"journal" yaml:"journal"`

	// Year is the medline publication year: four digits or empty.
	Year string `json:"year" yaml:"year"`

	// Affiliation is a "; "-joined list of all affiliations in the record.
	Affiliation string `json:"affiliation" yaml:"affiliation"`

	// Authors is a "; "-joined list of "forename lastname" entries.
	Authors string `json:"authors" yaml:"authors"`
}

// IdentifierTriple holds the three identifiers known for one article.
// Any field may be empty when the ID converter did not supply it, except
// that PMC is always populated on a successful resolution.
type IdentifierTriple struct {
	// PMID is the PubMed id.
	PMID string `json:"pmid" yaml:"pmid"`

	// PMC is the PubMed Central id with its canonical "PMC" prefix.
	PMC string `json:"pmc" yaml:"pmc"`

	// DOI is the article DOI.
	DOI string `json:"doi" yaml:"doi"`
}
