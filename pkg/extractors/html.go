package extractors

import (
	"context"
	"errors"
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

// Parser turns a fetched HTML document into records. This is the override
// point of the HTML extractor: scraping logic lives entirely in the
// implementation, the extractor only handles the fetch.
type Parser interface {
	Parse(doc *goquery.Document) ([]etl.Record, error)
}

// ParserFunc adapts a plain function to the Parser interface.
type ParserFunc func(doc *goquery.Document) ([]etl.Record, error)

func (f ParserFunc) Parse(doc *goquery.Document) ([]etl.Record, error) {
	return f(doc)
}

// HTMLExtractor fetches a page and delegates its parsing to a Parser.
type HTMLExtractor struct {
	URL    string
	Parser Parser
}

var _ etl.Extractor = &HTMLExtractor{}

func (e *HTMLExtractor) Extract(ctx context.Context) (*etl.Dataset, error) {
	if e.Parser == nil {
		return nil, errors.New("HTMLExtractor needs a Parser")
	}

	body, err := openSource(ctx, e.URL)
	if err != nil {
		return nil, fmt.Errorf("fetching HTML from %s: %w", e.URL, err)
	}
	defer body.Close()

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML from %s: %w", e.URL, err)
	}

	records, err := e.Parser.Parse(doc)
	if err != nil {
		return nil, err
	}
	return etl.FromRecords(records), nil
}
