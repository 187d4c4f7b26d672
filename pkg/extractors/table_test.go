package extractors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

func TestTableToDataset(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"junk preamble"},
		{"name", "points"},
		{"ada", "10"},
		{"grace", "NULL"},
		{"short"},
		{"totals", "17"},
	}

	data, err := tableToDataset(rows, 1, 1, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "points"}, data.Columns)
	require.Equal(t, 3, data.Len())
	assert.Equal(t, etl.Record{"name": "ada", "points": "10"}, data.Rows[0])
	assert.Equal(t, etl.Record{"name": "grace", "points": nil}, data.Rows[1])
	assert.Equal(t, etl.Record{"name": "short", "points": nil}, data.Rows[2])
}

func TestTableToDatasetCustomNAValues(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"name"},
		{"missing"},
		{""},
	}

	data, err := tableToDataset(rows, 0, 0, []string{"missing"})
	require.NoError(t, err)
	assert.Nil(t, data.Rows[0]["name"])
	// empty non-nil NA list: the empty cell stays a value
	assert.Equal(t, "", data.Rows[1]["name"])
}

func TestTableToDatasetErrors(t *testing.T) {
	t.Parallel()

	_, err := tableToDataset([][]string{{"only header"}}, 2, 0, nil)
	assert.Error(t, err)

	_, err = tableToDataset([][]string{{"name"}, {"ada"}}, 0, 5, nil)
	assert.Error(t, err)

	_, err = tableToDataset(nil, 0, 0, nil)
	assert.Error(t, err)
}

func TestStripHeaderBOM(t *testing.T) {
	t.Parallel()

	header := []string{utf8BOM + "name", "points"}
	stripped := stripHeaderBOM(header)

	assert.Equal(t, []string{"name", "points"}, stripped)
	// input slice untouched
	assert.Equal(t, utf8BOM+"name", header[0])
	assert.Equal(t, []string{"name"}, stripHeaderBOM([]string{"name"}))
}
