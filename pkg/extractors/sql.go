package extractors

import (
	"context"
	"fmt"

	"github.com/rowpipe/rowpipe/pkg/database"
	"github.com/rowpipe/rowpipe/pkg/etl"
)

// SQLExtractor runs a query against a database addressed by URL and
// returns the result set as a dataset. The connection is opened and closed
// within the extract call.
type SQLExtractor struct {
	ConnURL string
	Query   string
}

var _ etl.Extractor = &SQLExtractor{}

func (e *SQLExtractor) Extract(ctx context.Context) (*etl.Dataset, error) {
	db, err := database.Open(ctx, e.ConnURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, e.Query)
	if err != nil {
		return nil, fmt.Errorf("running extraction query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	data := etl.NewDataset(columns...)
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		row := make(etl.Record, len(columns))
		for i, col := range columns {
			// drivers hand text columns back as []byte
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		data.Append(row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating result set: %w", err)
	}
	return data, nil
}
