// Package etl holds the core orchestration contract: an ETL instance owns
// one Extractor and one Loader, sequences extract -> transform -> load and
// keeps the intermediate datasets as instance state.
//
// The phase methods return the receiver so runs can be chained:
//
//	err := etl.New(extractor, loader).
//		Extract(ctx).
//		Transform().
//		Load(ctx).
//		Err()
//
// or, equivalently:
//
//	err := etl.New(extractor, loader).Run(ctx)
//
// Once a phase fails the chain carries that first error and the remaining
// phases do nothing, so the loader is never invoked after a failed extract.
package etl

import (
	"context"

	"github.com/hashicorp/go-hclog"
)

// ETL sequences a single extract/transform/load run. Instances are built
// once per run and own their datasets exclusively; nothing in here is safe
// for concurrent use, callers wanting parallel runs create one ETL each.
type ETL struct {
	extractor      Extractor
	transformation Transformation
	loader         Loader
	log            hclog.Logger

	// OriginalData holds the raw extraction result; ProcessedData what the
	// transformation produced and the loader consumes.
	OriginalData  *Dataset
	ProcessedData *Dataset

	err error
}

// Option configures an ETL instance at construction.
type Option func(*ETL)

// WithTransformation replaces the default identity transformation.
func WithTransformation(t Transformation) Option {
	return func(e *ETL) {
		e.transformation = t
	}
}

// WithLogger sets the logger used to report phase progress.
func WithLogger(log hclog.Logger) Option {
	return func(e *ETL) {
		e.log = log
	}
}

// New creates an ETL run from an extractor and a loader. The
// transformation defaults to the identity.
func New(extractor Extractor, loader Loader, opts ...Option) *ETL {
	e := &ETL{
		extractor:      extractor,
		transformation: Identity{},
		loader:         loader,
		log:            hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract invokes the extractor and stores the result in OriginalData.
// A failure is recorded as an *ExtractionError and stops the chain.
func (e *ETL) Extract(ctx context.Context) *ETL {
	if e.err != nil {
		return e
	}

	data, err := e.extractor.Extract(ctx)
	if err != nil {
		e.err = &ExtractionError{Err: err}
		return e
	}

	e.OriginalData = data
	e.log.Debug("extract phase done", "rows", data.Len())
	return e
}

// Transform applies the transformation to OriginalData and stores the
// result in ProcessedData. A failure is recorded as a *TransformError.
func (e *ETL) Transform() *ETL {
	if e.err != nil {
		return e
	}

	data, err := e.transformation.Transform(e.OriginalData)
	if err != nil {
		e.err = &TransformError{Err: err}
		return e
	}

	e.ProcessedData = data
	e.log.Debug("transform phase done", "rows", data.Len())
	return e
}

// Load hands ProcessedData to the loader. Loading before Transform has run
// is rejected with a *LoadError wrapping ErrNoData. A loader failure is
// recorded as a *LoadError.
func (e *ETL) Load(ctx context.Context) *ETL {
	if e.err != nil {
		return e
	}

	if e.ProcessedData == nil {
		e.err = &LoadError{Err: ErrNoData}
		return e
	}

	if err := e.loader.Load(ctx, e.ProcessedData); err != nil {
		e.err = &LoadError{Err: err}
		return e
	}

	e.log.Debug("load phase done", "rows", e.ProcessedData.Len())
	return e
}

// Err returns the first error recorded by the chain, or nil.
func (e *ETL) Err() error {
	return e.err
}

// Run executes extract, transform and load in that fixed order and
// returns the first error, if any.
func (e *ETL) Run(ctx context.Context) error {
	return e.Extract(ctx).Transform().Load(ctx).Err()
}
