package extractors

import (
	"context"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

// DatasetExtractor hands back an in-memory dataset. Useful to run already
// assembled data through a transformation and a loader, or as a no-op
// source: with a nil Data it yields an empty dataset.
type DatasetExtractor struct {
	Data *etl.Dataset
}

var _ etl.Extractor = &DatasetExtractor{}

func (e *DatasetExtractor) Extract(_ context.Context) (*etl.Dataset, error) {
	if e.Data == nil {
		return etl.NewDataset(), nil
	}
	return e.Data, nil
}
