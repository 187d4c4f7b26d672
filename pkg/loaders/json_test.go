package loaders_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpipe/rowpipe/pkg/etl"
	"github.com/rowpipe/rowpipe/pkg/loaders"
)

func TestJSONLoader(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "people.json")
	loader := &loaders.JSONLoader{Path: path}

	require.NoError(t, loader.Load(t.Context(), testDataset()))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(content, &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "ada", decoded[0]["name"])
	assert.Nil(t, decoded[1]["points"])
}

func TestJSONLoaderEmptyDataset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, (&loaders.JSONLoader{Path: path}).Load(t.Context(), etl.NewDataset("name")))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(content))
}
