package loaders

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/elastic/go-elasticsearch/v8/esutil"
	"github.com/hashicorp/go-hclog"

	"github.com/rowpipe/rowpipe/pkg/convert"
	"github.com/rowpipe/rowpipe/pkg/etl"
)

// ESLoader bulk-indexes every dataset row as a document into an
// Elasticsearch index, creating the index when missing.
type ESLoader struct {
	Addresses []string
	Index     string
	// IDColumn optionally names the column holding the document ID; when
	// empty Elasticsearch assigns automatic IDs and repeated loads produce
	// duplicate documents.
	IDColumn string
	// Recreate drops an existing index before loading.
	Recreate bool
	Logger   hclog.Logger
}

var _ etl.Loader = &ESLoader{}

func (l *ESLoader) Load(ctx context.Context, data *etl.Dataset) error {
	log := l.Logger
	if log == nil {
		log = hclog.NewNullLogger()
	}

	client, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: l.Addresses})
	if err != nil {
		return fmt.Errorf("creating Elasticsearch client: %w", err)
	}

	if err := l.prepareIndex(ctx, client, log); err != nil {
		return err
	}

	indexer, err := esutil.NewBulkIndexer(esutil.BulkIndexerConfig{
		Client:     client,
		Index:      l.Index,
		NumWorkers: 1,
	})
	if err != nil {
		return fmt.Errorf("creating bulk indexer: %w", err)
	}

	for i, row := range data.Rows {
		payload, err := json.Marshal(row)
		if err != nil {
			return fmt.Errorf("encoding row %d: %w", i, err)
		}

		item := esutil.BulkIndexerItem{
			Action: "index",
			Body:   bytes.NewReader(payload),
			OnFailure: func(_ context.Context, _ esutil.BulkIndexerItem, res esutil.BulkIndexerResponseItem, err error) {
				log.Error("indexing document failed", "id", res.DocumentID, "error", err, "reason", res.Error.Reason)
			},
		}
		if l.IDColumn != "" {
			item.DocumentID = convert.ToString(row[l.IDColumn])
		}

		if err := indexer.Add(ctx, item); err != nil {
			return fmt.Errorf("queueing row %d: %w", i, err)
		}
	}

	if err := indexer.Close(ctx); err != nil {
		return fmt.Errorf("flushing bulk indexer: %w", err)
	}

	stats := indexer.Stats()
	if stats.NumFailed > 0 {
		return fmt.Errorf("indexing into %s: %d of %d documents failed", l.Index, stats.NumFailed, stats.NumAdded)
	}

	log.Info("Elasticsearch load done", "index", l.Index, "indexed", stats.NumFlushed)
	return nil
}

func (l *ESLoader) prepareIndex(ctx context.Context, client *elasticsearch.Client, log hclog.Logger) error {
	res, err := client.Indices.Exists([]string{l.Index}, client.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("checking index %s: %w", l.Index, err)
	}
	res.Body.Close()
	exists := res.StatusCode == http.StatusOK

	if exists && l.Recreate {
		log.Debug("deleting index", "index", l.Index)
		if err := checkResponse(client.Indices.Delete([]string{l.Index}, client.Indices.Delete.WithContext(ctx))); err != nil {
			return fmt.Errorf("deleting index %s: %w", l.Index, err)
		}
		exists = false
	}

	if !exists {
		log.Debug("creating index", "index", l.Index)
		if err := checkResponse(client.Indices.Create(l.Index, client.Indices.Create.WithContext(ctx))); err != nil {
			return fmt.Errorf("creating index %s: %w", l.Index, err)
		}
	}
	return nil
}

func checkResponse(res *esapi.Response, err error) error {
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("unexpected status %s", res.Status())
	}
	return nil
}
