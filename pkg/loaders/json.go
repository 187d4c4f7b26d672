package loaders

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

// JSONLoader writes the dataset rows as a JSON array of objects to Path.
type JSONLoader struct {
	Path string
}

var _ etl.Loader = &JSONLoader{}

func (l *JSONLoader) Load(_ context.Context, data *etl.Dataset) error {
	if dir := filepath.Dir(l.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(l.Path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", l.Path, err)
	}

	rows := data.Rows
	if rows == nil {
		rows = []etl.Record{}
	}
	if err := json.NewEncoder(file).Encode(rows); err != nil {
		file.Close()
		return fmt.Errorf("writing %s: %w", l.Path, err)
	}
	return file.Close()
}
