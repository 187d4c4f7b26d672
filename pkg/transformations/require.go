package transformations

import (
	"fmt"
	"slices"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

// Require fails the run when any listed column is absent from the dataset
// or empty in a row. It passes the dataset through untouched.
type Require struct {
	Columns []string
}

var _ etl.Transformation = &Require{}

func (r *Require) Transform(data *etl.Dataset) (*etl.Dataset, error) {
	for _, col := range r.Columns {
		if !slices.Contains(data.Columns, col) {
			return nil, fmt.Errorf("required column %q is missing", col)
		}
	}
	for i, row := range data.Rows {
		for _, col := range r.Columns {
			if val, ok := row[col]; !ok || val == nil || val == "" {
				return nil, fmt.Errorf("row %d has no value for required column %q", i, col)
			}
		}
	}
	return data, nil
}

// Chain runs transformations in order, feeding each one's output to the
// next. An empty chain behaves like Identity.
type Chain []etl.Transformation

var _ etl.Transformation = Chain{}

func (c Chain) Transform(data *etl.Dataset) (*etl.Dataset, error) {
	out := data
	for i, step := range c {
		var err error
		out, err = step.Transform(out)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
	}
	return out, nil
}
