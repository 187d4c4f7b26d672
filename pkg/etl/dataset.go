package etl

import (
	"maps"
	"slices"
)

// Record is a single row, keyed by column name.
type Record map[string]any

// Dataset is the tabular container handed between the extract, transform
// and load phases. Columns carries the output order; Rows may hold values
// of any type the extractor produced.
type Dataset struct {
	Columns []string
	Rows    []Record
}

// NewDataset creates an empty dataset with the given column order.
func NewDataset(columns ...string) *Dataset {
	return &Dataset{Columns: columns}
}

// FromRecords builds a dataset out of plain records. Go maps carry no
// order, so the column set is the sorted union of the record keys.
// Extractors with an inherent order (CSV header, SPARQL head.vars,
// spreadsheet first row) build their datasets directly instead.
func FromRecords(rows []Record) *Dataset {
	seen := make(map[string]struct{})
	var columns []string
	for _, row := range rows {
		for key := range row {
			if _, ok := seen[key]; !ok {
				seen[key] = struct{}{}
				columns = append(columns, key)
			}
		}
	}
	slices.Sort(columns)
	return &Dataset{Columns: columns, Rows: rows}
}

// Append adds rows to the dataset.
func (d *Dataset) Append(rows ...Record) {
	d.Rows = append(d.Rows, rows...)
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Copy returns a dataset with cloned columns and rows, so that mutating
// the copy never touches the source. Row values themselves are shared.
func (d *Dataset) Copy() *Dataset {
	if d == nil {
		return nil
	}
	out := &Dataset{Columns: slices.Clone(d.Columns)}
	out.Rows = make([]Record, 0, len(d.Rows))
	for _, row := range d.Rows {
		out.Rows = append(out.Rows, maps.Clone(row))
	}
	return out
}
