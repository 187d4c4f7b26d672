package etl

import "context"

// Extractor reads a dataset from an external source. Implementations are
// parameterized at construction (URL, query, path) and must report every
// failure as an error instead of returning a silently empty dataset.
type Extractor interface {
	Extract(ctx context.Context) (*Dataset, error)
}

// Loader writes a dataset to an external destination. Implementations are
// parameterized at construction (path, label, connection) and report
// failures as errors.
type Loader interface {
	Load(ctx context.Context, data *Dataset) error
}

// Transformation turns the extracted dataset into the one handed to the
// loader. Implementations must not mutate the input.
type Transformation interface {
	Transform(data *Dataset) (*Dataset, error)
}
