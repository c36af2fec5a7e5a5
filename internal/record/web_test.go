// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package record

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pdiddy/citegraph/internal/fetch"
)

func TestFetchArticle(t *testing.T) {
	var gotQuery url.Values
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(articleXML))
	}))
	defer ts.Close()

	orig := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = orig }()

	rec, err := FetchArticle(context.Background(), fetch.New(), "27899133")
	if err != nil {
		t.Fatalf("FetchArticle() error: %v", err)
	}

	if rec.PMID != "27899133" {
		t.Errorf("PMID = %q", rec.PMID)
	}
	if rec.Title != "A study of reproducible things" {
		t.Errorf("Title = %q", rec.Title)
	}

	if gotQuery.Get("db") != "pubmed" || gotQuery.Get("retmode") != "xml" || gotQuery.Get("id") != "27899133" {
		t.Errorf("efetch query = %v", gotQuery)
	}
}

func TestFetchArticleTransportErrorPropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	orig := efetchBase
	efetchBase = ts.URL
	defer func() { efetchBase = orig }()

	if _, err := FetchArticle(context.Background(), fetch.New(), "1"); err == nil {
		t.Fatal("FetchArticle() = nil error, want transport error")
	}
}
