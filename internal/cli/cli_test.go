package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpipe/rowpipe/pkg/extractors"
	"github.com/rowpipe/rowpipe/pkg/loaders"
	"github.com/rowpipe/rowpipe/pkg/models"
)

func TestRunCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "people.csv")
	require.NoError(t, os.WriteFile(src, []byte("name;points\nada;10\ngrace;7\n"), 0o644))

	outDir := filepath.Join(dir, "out")
	tasks := fmt.Sprintf(`{
		"tasks": [{
			"name": "people",
			"source": {"kind": "csv", "location": %q},
			"destination": {"kind": "csv", "location": %q, "label": "people"},
			"transform": {
				"require": ["name"],
				"mapping": [
					{"from": "name", "to": "nome"},
					{"from": "points", "to": "punti", "type": "int"}
				]
			}
		}]
	}`, src, outDir)
	tasksPath := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.WriteFile(tasksPath, []byte(tasks), 0o644))

	t.Setenv("ROWPIPE_LOG_LEVEL", "error")

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"run", "-f", tasksPath, "people"})
	require.NoError(t, rootCmd.Execute())

	written, err := os.ReadFile(filepath.Join(outDir, "people.csv"))
	require.NoError(t, err)
	assert.Equal(t, "nome;punti\nada;10\ngrace;7\n", string(written))
}

func TestRunCommandUnknownTask(t *testing.T) {
	dir := t.TempDir()
	tasksPath := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.WriteFile(tasksPath, []byte(`{"tasks": []}`), 0o644))

	t.Setenv("ROWPIPE_LOG_LEVEL", "error")

	rootCmd := NewRootCmd()
	rootCmd.SetArgs([]string{"run", "-f", tasksPath, "nope"})
	rootCmd.SetErr(&bytes.Buffer{})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `no task named "nope"`)
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	tasksPath := filepath.Join(dir, "tasks.json")
	require.NoError(t, os.WriteFile(tasksPath, []byte(`{
		"tasks": [
			{"name": "areas", "source": {"kind": "sql"}, "destination": {"kind": "csv"}},
			{"name": "people", "source": {"kind": "csv"}, "destination": {"kind": "es"}}
		]
	}`), 0o644))

	var out bytes.Buffer
	rootCmd := NewRootCmd()
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"list", "-f", tasksPath})
	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "areas")
	assert.Contains(t, out.String(), "people")
	assert.Contains(t, out.String(), "SOURCE")
}

func TestBuildExtractorKinds(t *testing.T) {
	t.Parallel()

	ext, err := buildExtractor(models.SourceSpec{Kind: "csv", Location: "data.csv", Sep: ","})
	require.NoError(t, err)
	csvExt, ok := ext.(*extractors.CSVExtractor)
	require.True(t, ok)
	assert.Equal(t, ',', csvExt.Sep)

	ext, err = buildExtractor(models.SourceSpec{Kind: "sparql", Location: "http://example.com/sparql", Query: "SELECT ?s WHERE {}"})
	require.NoError(t, err)
	assert.IsType(t, &extractors.SPARQLExtractor{}, ext)

	_, err = buildExtractor(models.SourceSpec{Kind: "ftp"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown source kind "ftp"`)
}

func TestBuildLoaderKinds(t *testing.T) {
	t.Parallel()

	log := hclog.NewNullLogger()

	ld, err := buildLoader(models.DestSpec{Kind: "mongo", Location: "mongodb://localhost", Database: "db", Collection: "c", KeyColumn: "id"}, log)
	require.NoError(t, err)
	mongoLd, ok := ld.(*loaders.MongoLoader)
	require.True(t, ok)
	assert.Equal(t, "id", mongoLd.IDColumn)

	ld, err = buildLoader(models.DestSpec{Kind: "es", Location: "http://localhost:9200", Index: "people"}, log)
	require.NoError(t, err)
	assert.IsType(t, &loaders.ESLoader{}, ld)

	_, err = buildLoader(models.DestSpec{Kind: "kafka"}, log)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown destination kind "kafka"`)
}
