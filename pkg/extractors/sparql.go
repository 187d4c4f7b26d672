package extractors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

// SPARQLExtractor queries a SPARQL endpoint and flattens the JSON result
// bindings into a dataset. Column order follows head.vars.
type SPARQLExtractor struct {
	Endpoint string
	Query    string
}

var _ etl.Extractor = &SPARQLExtractor{}

// sparqlResults mirrors the application/sparql-results+json layout.
type sparqlResults struct {
	Head struct {
		Vars []string `json:"vars"`
	} `json:"head"`
	Results struct {
		Bindings []map[string]struct {
			Value string `json:"value"`
		} `json:"bindings"`
	} `json:"results"`
}

func (e *SPARQLExtractor) Extract(ctx context.Context) (*etl.Dataset, error) {
	form := url.Values{"query": {e.Query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.Endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/sparql-results+json")

	res, err := httpClient(false).Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying SPARQL endpoint %s: %w", e.Endpoint, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SPARQL endpoint %s: unexpected status %s", e.Endpoint, res.Status)
	}

	var results sparqlResults
	if err := json.NewDecoder(res.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding SPARQL results: %w", err)
	}

	data := etl.NewDataset(results.Head.Vars...)
	for _, binding := range results.Results.Bindings {
		row := make(etl.Record, len(data.Columns))
		for _, name := range data.Columns {
			if bound, ok := binding[name]; ok {
				row[name] = bound.Value
			} else {
				row[name] = nil
			}
		}
		data.Append(row)
	}
	return data, nil
}
