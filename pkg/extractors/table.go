package extractors

import (
	"fmt"
	"slices"
	"strings"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

const utf8BOM = "\xef\xbb\xbf"

// defaultNAValues are the cell contents treated as missing when an
// extractor has no explicit NA list configured.
var defaultNAValues = []string{"", "N/A", "NA", "NULL", "NaN", "null"}

// tableToDataset turns raw rows of cells into a dataset. The first row
// after skipRows is the header; skipFooter rows are dropped from the end.
// Cells matching an NA value become nil. Short rows are padded with nil,
// excess cells beyond the header are ignored.
func tableToDataset(rows [][]string, skipRows, skipFooter int, naValues []string) (*etl.Dataset, error) {
	if naValues == nil {
		naValues = defaultNAValues
	}

	if skipRows > 0 {
		if skipRows >= len(rows) {
			return nil, fmt.Errorf("cannot skip %d rows, source only has %d", skipRows, len(rows))
		}
		rows = rows[skipRows:]
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("source has no header row")
	}

	header := stripHeaderBOM(rows[0])
	body := rows[1:]
	if skipFooter > 0 {
		if skipFooter > len(body) {
			return nil, fmt.Errorf("cannot skip %d footer rows, source only has %d data rows", skipFooter, len(body))
		}
		body = body[:len(body)-skipFooter]
	}

	data := etl.NewDataset(header...)
	for _, cells := range body {
		row := make(etl.Record, len(header))
		for i, col := range header {
			if i >= len(cells) || slices.Contains(naValues, cells[i]) {
				row[col] = nil
				continue
			}
			row[col] = cells[i]
		}
		data.Append(row)
	}
	return data, nil
}

// stripHeaderBOM removes a UTF-8 BOM from the first header cell when
// present.
func stripHeaderBOM(header []string) []string {
	if len(header) == 0 || !strings.HasPrefix(header[0], utf8BOM) {
		return header
	}
	out := slices.Clone(header)
	out[0] = strings.TrimPrefix(out[0], utf8BOM)
	return out
}
