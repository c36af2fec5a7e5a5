// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package idconv

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pdiddy/citegraph/internal/fetch"
)

func TestParseNamespace(t *testing.T) {
	tests := []struct {
		input string
		want  Namespace
	}{
		{"pmid", NamespacePMID},
		{"PMID", NamespacePMID},
		{"pubmed", NamespacePMID},
		{"pmc", NamespacePMC},
		{"pmcid", NamespacePMC},
		{" PMC ", NamespacePMC},
		{"doi", NamespaceDOI},
		{"", NamespaceUnknown},
		{"isbn", NamespaceUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseNamespace(tt.input); got != tt.want {
				t.Errorf("ParseNamespace(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalPMC(t *testing.T) {
	if got := CanonicalPMC("4363076"); got != "PMC4363076" {
		t.Errorf("CanonicalPMC(bare) = %q", got)
	}
	if got := CanonicalPMC("PMC4363076"); got != "PMC4363076" {
		t.Errorf("CanonicalPMC(prefixed) = %q, must not double-prefix", got)
	}
}

// converterServer serves a canned ID-converter response and records the
// query of the last request.
func converterServer(t *testing.T, body string, lastQuery *url.Values) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastQuery != nil {
			*lastQuery = r.URL.Query()
		}
		fmt.Fprint(w, body)
	}))
}

func withConverterBase(t *testing.T, base string) {
	t.Helper()
	orig := converterBase
	converterBase = base
	t.Cleanup(func() { converterBase = orig })
}

const converterOK = `<pmcids status="ok">
  <record requested-id="PMC4363076" pmcid="PMC4363076" pmid="25768442" doi="10.1371/journal.pcbi.1004137"></record>
</pmcids>`

func TestResolvePMIDNamespace(t *testing.T) {
	var query url.Values
	ts := converterServer(t, converterOK, &query)
	defer ts.Close()
	withConverterBase(t, ts.URL+"/")

	r := &Resolver{Fetch: fetch.New(), Tool: "citegraph-test", Email: "dev@example.org"}
	triple, err := r.Resolve(context.Background(), "25768442", NamespacePMID)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if triple.PMID != "25768442" {
		t.Errorf("PMID = %q", triple.PMID)
	}
	if triple.PMC != "PMC4363076" {
		t.Errorf("PMC = %q", triple.PMC)
	}
	if triple.DOI != "10.1371/journal.pcbi.1004137" {
		t.Errorf("DOI = %q", triple.DOI)
	}

	if query.Get("ids") != "25768442" {
		t.Errorf("ids param = %q", query.Get("ids"))
	}
	if query.Get("tool") != "citegraph-test" || query.Get("email") != "dev@example.org" {
		t.Errorf("tool/email params = %q/%q", query.Get("tool"), query.Get("email"))
	}
}

func TestResolvePMCNamespaceAppliesPrefix(t *testing.T) {
	var query url.Values
	ts := converterServer(t, converterOK, &query)
	defer ts.Close()
	withConverterBase(t, ts.URL+"/")

	r := &Resolver{Fetch: fetch.New()}
	triple, err := r.Resolve(context.Background(), "4363076", NamespacePMC)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}

	if query.Get("ids") != "PMC4363076" {
		t.Errorf("ids param = %q, want prefixed lookup", query.Get("ids"))
	}
	if triple.PMC != "PMC4363076" {
		t.Errorf("PMC = %q", triple.PMC)
	}
}

func TestResolveRoundTripIdempotence(t *testing.T) {
	ts := converterServer(t, converterOK, nil)
	defer ts.Close()
	withConverterBase(t, ts.URL+"/")

	r := &Resolver{Fetch: fetch.New()}
	first, err := r.Resolve(context.Background(), "4363076", NamespacePMC)
	if err != nil {
		t.Fatalf("first Resolve() error: %v", err)
	}

	second, err := r.Resolve(context.Background(), first.PMC, NamespacePMC)
	if err != nil {
		t.Fatalf("second Resolve() error: %v", err)
	}
	if first != second {
		t.Errorf("round trip changed triple: %+v vs %+v", first, second)
	}
}

func TestResolveStatusFlagFails(t *testing.T) {
	body := `<pmcids status="ok">
  <record requested-id="99999999" status="error"></record>
</pmcids>`
	ts := converterServer(t, body, nil)
	defer ts.Close()
	withConverterBase(t, ts.URL+"/")

	r := &Resolver{Fetch: fetch.New()}
	_, err := r.Resolve(context.Background(), "99999999", NamespacePMID)

	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("Resolve() error = %v, want *ResolutionError", err)
	}
	if resErr.ID != "99999999" || resErr.Namespace != NamespacePMID {
		t.Errorf("ResolutionError = %+v, must carry id and namespace", resErr)
	}
}

func TestResolveMissingPMCIDFails(t *testing.T) {
	// pmid and doi present but no pmcid: resolution still fails.
	body := `<pmcids status="ok">
  <record requested-id="25768442" pmid="25768442" doi="10.1371/journal.pcbi.1004137"></record>
</pmcids>`
	ts := converterServer(t, body, nil)
	defer ts.Close()
	withConverterBase(t, ts.URL+"/")

	r := &Resolver{Fetch: fetch.New()}
	_, err := r.Resolve(context.Background(), "25768442", NamespacePMID)

	var resErr *ResolutionError
	if !errors.As(err, &resErr) {
		t.Fatalf("Resolve() error = %v, want *ResolutionError", err)
	}
}

func TestResolveNoRecordFails(t *testing.T) {
	ts := converterServer(t, `<pmcids status="ok"></pmcids>`, nil)
	defer ts.Close()
	withConverterBase(t, ts.URL+"/")

	r := &Resolver{Fetch: fetch.New()}
	if _, err := r.Resolve(context.Background(), "1", NamespaceDOI); err == nil {
		t.Fatal("Resolve() = nil error, want failure on empty response")
	}
}

func TestResolveUnknownNamespace(t *testing.T) {
	r := &Resolver{Fetch: fetch.New()}
	_, err := r.Resolve(context.Background(), "1", NamespaceUnknown)

	var nsErr *UnsupportedNamespaceError
	if !errors.As(err, &nsErr) {
		t.Fatalf("Resolve() error = %v, want *UnsupportedNamespaceError", err)
	}
}

func TestResolveOmittedAttributesStayEmpty(t *testing.T) {
	body := `<pmcids status="ok">
  <record requested-id="PMC4363076" pmcid="PMC4363076"></record>
</pmcids>`
	ts := converterServer(t, body, nil)
	defer ts.Close()
	withConverterBase(t, ts.URL+"/")

	r := &Resolver{Fetch: fetch.New()}
	triple, err := r.Resolve(context.Background(), "PMC4363076", NamespacePMC)
	if err != nil {
		t.Fatalf("Resolve() error: %v", err)
	}
	if triple.PMID != "" || triple.DOI != "" {
		t.Errorf("triple = %+v, want empty PMID and DOI", triple)
	}
	if triple.PMC != "PMC4363076" {
		t.Errorf("PMC = %q", triple.PMC)
	}
}
