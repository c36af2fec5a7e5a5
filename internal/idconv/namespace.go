// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package idconv

import "strings"

// Namespace classifies which identifier scheme a document id belongs to.
type Namespace int

const (
	NamespaceUnknown Namespace = iota
	NamespacePMID
	NamespacePMC
	NamespaceDOI
)

func (n Namespace) String() string {
	switch n {
	case NamespacePMID:
		return "pmid"
	case NamespacePMC:
		return "pmc"
	case NamespaceDOI:
		return "doi"
	default:
		return "unknown"
	}
}

// ParseNamespace maps a user-supplied namespace name to its Namespace.
func ParseNamespace(s string) Namespace {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pmid", "pubmed":
		return NamespacePMID
	case "pmc", "pmcid":
		return NamespacePMC
	case "doi":
		return NamespaceDOI
	default:
		return NamespaceUnknown
	}
}

// pmcPrefix is the canonical prefix carried by PMC ids.
const pmcPrefix = "PMC"

// CanonicalPMC applies the "PMC" prefix to a PMC id, accepting ids that
// already carry it.
func CanonicalPMC(id string) string {
	return pmcPrefix + strings.TrimPrefix(id, pmcPrefix)
}

// BarePMC strips the "PMC" prefix from a PMC id if present.
func BarePMC(id string) string {
	return strings.TrimPrefix(id, pmcPrefix)
}
