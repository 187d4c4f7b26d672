// Package extractors holds the built-in Extractor implementations: CSV
// (plain and zipped), SQL, spreadsheet (plain and zipped), HTML with a
// user-supplied parser, SPARQL and the in-memory passthrough.
package extractors

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

// DefaultSep is the field separator used when none is configured.
const DefaultSep = ';'

// CSVExtractor reads a CSV table from a remote URL or a local path. The
// first row (after SkipRows) is the header.
type CSVExtractor struct {
	// Source is a http(s) URL or a local file path.
	Source string
	// Sep is the field separator, DefaultSep when zero.
	Sep rune
	// SkipRows and SkipFooter drop leading and trailing rows.
	SkipRows   int
	SkipFooter int
	// Encoding is an IANA charset name ("ISO-8859-1", "windows-1252", ...).
	// Empty means UTF-8.
	Encoding string
	// NAValues lists the cell contents treated as missing. Nil selects the
	// default list; an empty non-nil slice disables NA handling.
	NAValues []string
}

var _ etl.Extractor = &CSVExtractor{}

func (e *CSVExtractor) Extract(ctx context.Context) (*etl.Dataset, error) {
	body, err := openSource(ctx, e.Source)
	if err != nil {
		return nil, fmt.Errorf("opening CSV source %s: %w", e.Source, err)
	}
	defer body.Close()

	return e.parse(body)
}

func (e *CSVExtractor) parse(r io.Reader) (*etl.Dataset, error) {
	r, err := decodeCharset(r, e.Encoding)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(r)
	reader.Comma = e.Sep
	if reader.Comma == 0 {
		reader.Comma = DefaultSep
	}
	// rows are validated against the header, not against each other
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV from %s: %w", e.Source, err)
	}
	return tableToDataset(rows, e.SkipRows, e.SkipFooter, e.NAValues)
}

// decodeCharset wraps the reader with a decoder for the named IANA
// charset. UTF-8 and the empty name pass through untouched.
func decodeCharset(r io.Reader, name string) (io.Reader, error) {
	if name == "" || name == "utf-8" || name == "UTF-8" {
		return r, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q", name)
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
