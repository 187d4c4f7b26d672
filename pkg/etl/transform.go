package etl

// TransformFunc adapts a plain function to the Transformation interface.
type TransformFunc func(data *Dataset) (*Dataset, error)

func (f TransformFunc) Transform(data *Dataset) (*Dataset, error) {
	return f(data)
}

// Identity is the default transformation: it copies the extracted dataset
// unchanged, so runs without a custom transform still populate the
// processed data the loader reads.
type Identity struct{}

func (Identity) Transform(data *Dataset) (*Dataset, error) {
	return data.Copy(), nil
}
