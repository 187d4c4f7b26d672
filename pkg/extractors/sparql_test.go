package extractors_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpipe/rowpipe/pkg/etl"
	"github.com/rowpipe/rowpipe/pkg/extractors"
)

const sparqlResponse = `{
	"head": {"vars": ["s", "label"]},
	"results": {"bindings": [
		{"s": {"type": "uri", "value": "http://example.org/1"}, "label": {"type": "literal", "value": "first"}},
		{"s": {"type": "uri", "value": "http://example.org/2"}}
	]}
}`

func TestSPARQLExtractor(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "select distinct ?s ?label where { ?s rdfs:label ?label }", r.Form.Get("query"))
		assert.Equal(t, "application/sparql-results+json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/sparql-results+json")
		w.Write([]byte(sparqlResponse))
	}))
	defer server.Close()

	extractor := &extractors.SPARQLExtractor{
		Endpoint: server.URL,
		Query:    "select distinct ?s ?label where { ?s rdfs:label ?label }",
	}

	data, err := extractor.Extract(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []string{"s", "label"}, data.Columns)
	require.Equal(t, 2, data.Len())
	assert.Equal(t, etl.Record{"s": "http://example.org/1", "label": "first"}, data.Rows[0])
	// unbound variables stay nil
	assert.Nil(t, data.Rows[1]["label"])
}

func TestSPARQLExtractorEndpointError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "malformed query", http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := (&extractors.SPARQLExtractor{Endpoint: server.URL, Query: "broken"}).Extract(t.Context())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}
