// Package etltest provides extractor and loader doubles for testing ETL
// runs without touching real sources or destinations.
package etltest

import (
	"context"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

var (
	_ etl.Extractor = &StubExtractor{}
	_ etl.Loader    = &SpyLoader{}
)

// StubExtractor returns a fixed dataset, or Err when set. Calls counts the
// number of Extract invocations.
type StubExtractor struct {
	Data  *etl.Dataset
	Err   error
	Calls int
}

func (s *StubExtractor) Extract(_ context.Context) (*etl.Dataset, error) {
	s.Calls++
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Data, nil
}

// SpyLoader records every dataset it receives and fails with Err when set.
type SpyLoader struct {
	Err    error
	Loaded []*etl.Dataset
}

func (s *SpyLoader) Load(_ context.Context, data *etl.Dataset) error {
	if s.Err != nil {
		return s.Err
	}
	s.Loaded = append(s.Loaded, data)
	return nil
}
