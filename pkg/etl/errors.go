package etl

import "errors"

// ErrNoData signals that a phase was asked to operate on data that was
// never produced, e.g. Load called before Extract and Transform ran.
var ErrNoData = errors.New("no data available")

// ExtractionError reports a failure during the extract phase. The
// underlying extractor error is reachable through Unwrap.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string {
	return "extract: " + e.Err.Error()
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// TransformError reports a failure during the transform phase.
type TransformError struct {
	Err error
}

func (e *TransformError) Error() string {
	return "transform: " + e.Err.Error()
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// LoadError reports a failure during the load phase.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return "load: " + e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
