// Package transformations provides reusable Transformation implementations
// for reshaping datasets between extract and load.
package transformations

import (
	"fmt"

	"github.com/rowpipe/rowpipe/pkg/convert"
	"github.com/rowpipe/rowpipe/pkg/etl"
)

// FieldMapping describes how one output column is produced.
type FieldMapping struct {
	// From is the source column name. It defaults to To when empty.
	From string `json:"from"`
	// To is the output column name.
	To string `json:"to"`
	// Type optionally coerces the value: "string", "int", "float" or
	// "datetime". An empty Type passes the value through unchanged.
	Type string `json:"type,omitempty"`
	// Format is the time layout used when Type is "datetime".
	Format string `json:"format,omitempty"`
}

// Mapping is a declarative column rename/select/coerce step. Only mapped
// columns survive, in the order the mappings are given.
type Mapping struct {
	Fields []FieldMapping
}

var _ etl.Transformation = &Mapping{}

func (m *Mapping) Transform(data *etl.Dataset) (*etl.Dataset, error) {
	columns := make([]string, 0, len(m.Fields))
	for _, f := range m.Fields {
		if f.To == "" {
			return nil, fmt.Errorf("field mapping from %q has no target column", f.From)
		}
		columns = append(columns, f.To)
	}

	out := etl.NewDataset(columns...)
	for i, row := range data.Rows {
		mapped := make(etl.Record, len(m.Fields))
		for _, f := range m.Fields {
			source := f.From
			if source == "" {
				source = f.To
			}
			val, err := coerce(row[source], f)
			if err != nil {
				return nil, fmt.Errorf("row %d, column %q: %w", i, f.To, err)
			}
			mapped[f.To] = val
		}
		out.Append(mapped)
	}
	return out, nil
}

func coerce(val any, f FieldMapping) (any, error) {
	if val == nil {
		return nil, nil
	}
	switch f.Type {
	case "", "any":
		return val, nil
	case "string":
		return convert.ToString(val), nil
	case "int":
		return convert.ToInt(val)
	case "float":
		return convert.ToFloat(val)
	case "datetime":
		return convert.ToTime(val, f.Format)
	default:
		return nil, fmt.Errorf("unknown type %q", f.Type)
	}
}
