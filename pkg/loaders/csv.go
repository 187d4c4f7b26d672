// Package loaders holds the built-in Loader implementations: CSV and JSON
// files, SQL tables (insert or keyed upsert), MongoDB collections and
// Elasticsearch indices.
package loaders

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/rowpipe/rowpipe/pkg/convert"
	"github.com/rowpipe/rowpipe/pkg/etl"
)

// DefaultSep is the field separator used when none is configured.
const DefaultSep = ';'

// DefaultLabel names the output file when no label is configured.
const DefaultLabel = "data"

// CSVLoader writes the dataset to <Dir>/<Label>.csv, creating the
// directory when missing.
type CSVLoader struct {
	Dir   string
	Label string
	// Sep is the field separator, DefaultSep when zero.
	Sep rune
	// Encoding is an IANA charset name for the output; empty means UTF-8.
	Encoding string
}

var _ etl.Loader = &CSVLoader{}

func (l *CSVLoader) Load(_ context.Context, data *etl.Dataset) error {
	if err := os.MkdirAll(l.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", l.Dir, err)
	}

	label := l.Label
	if label == "" {
		label = DefaultLabel
	}
	path := filepath.Join(l.Dir, label+".csv")

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := l.write(file, data); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return file.Close()
}

func (l *CSVLoader) write(w io.Writer, data *etl.Dataset) error {
	w, err := encodeCharset(w, l.Encoding)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	writer.Comma = l.Sep
	if writer.Comma == 0 {
		writer.Comma = DefaultSep
	}

	if err := writer.Write(data.Columns); err != nil {
		return err
	}
	cells := make([]string, len(data.Columns))
	for _, row := range data.Rows {
		for i, col := range data.Columns {
			cells[i] = convert.ToString(row[col])
		}
		if err := writer.Write(cells); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// encodeCharset wraps the writer with an encoder for the named IANA
// charset. UTF-8 and the empty name pass through untouched.
func encodeCharset(w io.Writer, name string) (io.Writer, error) {
	if name == "" || name == "utf-8" || name == "UTF-8" {
		return w, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return transform.NewWriter(w, enc.NewEncoder()), nil
}
