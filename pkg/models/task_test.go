package models_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rowpipe/rowpipe/pkg/models"
)

func writeTaskFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tasks.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadTaskFile(t *testing.T) {
	t.Setenv("DB_URL", "postgres://demo:pw@localhost/demo")

	path := writeTaskFile(t, `{
		"version": "1",
		"tasks": [
			{
				"name": "areas",
				"source": {"kind": "sql", "location": "${DB_URL}", "query": "SELECT * FROM areas"},
				"destination": {"kind": "csv", "location": "./out", "label": "areas"},
				"transform": {
					"require": ["name"],
					"mapping": [{"from": "name", "to": "denominazione"}]
				}
			}
		]
	}`)

	tf, err := models.LoadTaskFile(path)
	require.NoError(t, err)
	require.Len(t, tf.Tasks, 1)

	task, err := tf.Find("areas")
	require.NoError(t, err)
	assert.Equal(t, "postgres://demo:pw@localhost/demo", task.Source.Location)
	assert.Equal(t, "SELECT * FROM areas", task.Source.Query)
	assert.Equal(t, "csv", task.Destination.Kind)
	require.NotNil(t, task.Transform)
	assert.Equal(t, []string{"name"}, task.Transform.Require)

	_, err = tf.Find("nope")
	require.Error(t, err)
}

func TestLoadTaskFileRejectsBadFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "invalid json",
			content: `{"tasks": [`,
			wantErr: "parsing task file",
		},
		{
			name:    "unnamed task",
			content: `{"tasks": [{"source": {"kind": "csv", "location": "x"}, "destination": {"kind": "json", "location": "y"}}]}`,
			wantErr: "has no name",
		},
		{
			name: "duplicate names",
			content: `{"tasks": [
				{"name": "a", "source": {"kind": "csv", "location": "x"}, "destination": {"kind": "json", "location": "y"}},
				{"name": "a", "source": {"kind": "csv", "location": "x"}, "destination": {"kind": "json", "location": "y"}}
			]}`,
			wantErr: `duplicate task name "a"`,
		},
		{
			name:    "missing source kind",
			content: `{"tasks": [{"name": "a", "source": {"location": "x"}, "destination": {"kind": "json", "location": "y"}}]}`,
			wantErr: "no source kind",
		},
		{
			name:    "missing destination kind",
			content: `{"tasks": [{"name": "a", "source": {"kind": "csv", "location": "x"}, "destination": {"location": "y"}}]}`,
			wantErr: "no destination kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := models.LoadTaskFile(writeTaskFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadTaskFileMissingFile(t *testing.T) {
	t.Parallel()

	_, err := models.LoadTaskFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading task file")
}
