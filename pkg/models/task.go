// Package models defines the JSON schema of task files consumed by the
// rowpipe command.
package models

import (
	"encoding/json"
	"fmt"
	"os"
)

// TaskFile is the root of a JSON task file.
type TaskFile struct {
	Version string `json:"version,omitempty"`
	Tasks   []Task `json:"tasks"`
}

// Task wires one pipeline: a source, a destination and optional
// transformation steps run between them.
type Task struct {
	Name        string     `json:"name"`
	Source      SourceSpec `json:"source"`
	Destination DestSpec   `json:"destination"`
	Transform   *Transform `json:"transform,omitempty"`
}

// SourceSpec configures an extractor. Kind selects the implementation;
// the remaining fields apply to the kinds that use them.
type SourceSpec struct {
	// Kind is one of "csv", "zipcsv", "xls", "zipxls", "sql" or "sparql".
	Kind string `json:"kind"`
	// Location is a file path or URL for file-based kinds, the connection
	// URL for "sql" and the endpoint for "sparql". ${VAR} references are
	// expanded from the environment.
	Location string `json:"location"`
	Query    string `json:"query,omitempty"`
	Sep      string `json:"sep,omitempty"`
	Encoding string `json:"encoding,omitempty"`
	Sheet    string `json:"sheet,omitempty"`
	// PathInArchive selects a member of a zip archive for "zipxls".
	PathInArchive string   `json:"pathInArchive,omitempty"`
	SkipRows      int      `json:"skipRows,omitempty"`
	SkipFooter    int      `json:"skipFooter,omitempty"`
	NAValues      []string `json:"naValues,omitempty"`
	SkipTLSVerify bool     `json:"skipTlsVerify,omitempty"`
}

// DestSpec configures a loader.
type DestSpec struct {
	// Kind is one of "csv", "json", "sql", "mongo" or "es".
	Kind string `json:"kind"`
	// Location is the output directory for "csv", the file path for
	// "json", the connection URL for "sql" and "mongo" and the node
	// address for "es". ${VAR} references are expanded from the
	// environment.
	Location string `json:"location"`
	Label    string `json:"label,omitempty"`
	Sep      string `json:"sep,omitempty"`
	Encoding string `json:"encoding,omitempty"`
	Table    string `json:"table,omitempty"`
	// KeyColumn identifies rows for "sql" upserts, "mongo" documents and
	// "es" document IDs.
	KeyColumn  string `json:"keyColumn,omitempty"`
	Upsert     bool   `json:"upsert,omitempty"`
	Database   string `json:"database,omitempty"`
	Collection string `json:"collection,omitempty"`
	Index      string `json:"index,omitempty"`
	Recreate   bool   `json:"recreate,omitempty"`
}

// Transform lists the optional steps between extract and load, applied in
// order: required-column checks first, then the field mapping.
type Transform struct {
	Require []string       `json:"require,omitempty"`
	Mapping []MappingField `json:"mapping,omitempty"`
}

// MappingField mirrors one column mapping entry.
type MappingField struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Type   string `json:"type,omitempty"`
	Format string `json:"format,omitempty"`
}

// LoadTaskFile reads and validates a task file. Location fields are
// expanded with os.ExpandEnv so credentials can live in the environment.
func LoadTaskFile(path string) (*TaskFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading task file: %w", err)
	}

	var tf TaskFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, fmt.Errorf("parsing task file %s: %w", path, err)
	}

	seen := make(map[string]bool, len(tf.Tasks))
	for i := range tf.Tasks {
		task := &tf.Tasks[i]
		if task.Name == "" {
			return nil, fmt.Errorf("task %d has no name", i)
		}
		if seen[task.Name] {
			return nil, fmt.Errorf("duplicate task name %q", task.Name)
		}
		seen[task.Name] = true

		if task.Source.Kind == "" {
			return nil, fmt.Errorf("task %q has no source kind", task.Name)
		}
		if task.Destination.Kind == "" {
			return nil, fmt.Errorf("task %q has no destination kind", task.Name)
		}

		task.Source.Location = os.ExpandEnv(task.Source.Location)
		task.Destination.Location = os.ExpandEnv(task.Destination.Location)
	}
	return &tf, nil
}

// Find returns the named task.
func (tf *TaskFile) Find(name string) (*Task, error) {
	for i := range tf.Tasks {
		if tf.Tasks[i].Name == name {
			return &tf.Tasks[i], nil
		}
	}
	return nil, fmt.Errorf("no task named %q", name)
}
