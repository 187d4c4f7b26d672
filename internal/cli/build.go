package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/rowpipe/rowpipe/pkg/etl"
	"github.com/rowpipe/rowpipe/pkg/extractors"
	"github.com/rowpipe/rowpipe/pkg/loaders"
	"github.com/rowpipe/rowpipe/pkg/models"
	"github.com/rowpipe/rowpipe/pkg/transformations"
)

func buildExtractor(spec models.SourceSpec) (etl.Extractor, error) {
	switch spec.Kind {
	case "csv":
		return &extractors.CSVExtractor{
			Source:     spec.Location,
			Sep:        sepRune(spec.Sep),
			SkipRows:   spec.SkipRows,
			SkipFooter: spec.SkipFooter,
			Encoding:   spec.Encoding,
			NAValues:   spec.NAValues,
		}, nil
	case "zipcsv":
		return &extractors.ZIPCSVExtractor{
			CSVExtractor: extractors.CSVExtractor{
				Source:     spec.Location,
				Sep:        sepRune(spec.Sep),
				SkipRows:   spec.SkipRows,
				SkipFooter: spec.SkipFooter,
				Encoding:   spec.Encoding,
				NAValues:   spec.NAValues,
			},
			SkipTLSVerify: spec.SkipTLSVerify,
		}, nil
	case "xls":
		return &extractors.XLSExtractor{
			Source:     spec.Location,
			Sheet:      spec.Sheet,
			SkipRows:   spec.SkipRows,
			SkipFooter: spec.SkipFooter,
			NAValues:   spec.NAValues,
		}, nil
	case "zipxls":
		return &extractors.ZIPXLSExtractor{
			XLSExtractor: extractors.XLSExtractor{
				Source:     spec.Location,
				Sheet:      spec.Sheet,
				SkipRows:   spec.SkipRows,
				SkipFooter: spec.SkipFooter,
				NAValues:   spec.NAValues,
			},
			PathInArchive: spec.PathInArchive,
			SkipTLSVerify: spec.SkipTLSVerify,
		}, nil
	case "sql":
		return &extractors.SQLExtractor{ConnURL: spec.Location, Query: spec.Query}, nil
	case "sparql":
		return &extractors.SPARQLExtractor{Endpoint: spec.Location, Query: spec.Query}, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", spec.Kind)
	}
}

func buildLoader(spec models.DestSpec, log hclog.Logger) (etl.Loader, error) {
	switch spec.Kind {
	case "csv":
		return &loaders.CSVLoader{
			Dir:      spec.Location,
			Label:    spec.Label,
			Sep:      sepRune(spec.Sep),
			Encoding: spec.Encoding,
		}, nil
	case "json":
		return &loaders.JSONLoader{Path: spec.Location}, nil
	case "sql":
		return &loaders.SQLLoader{
			ConnURL:   spec.Location,
			Table:     spec.Table,
			KeyColumn: spec.KeyColumn,
			Upsert:    spec.Upsert,
			Logger:    log,
		}, nil
	case "mongo":
		return &loaders.MongoLoader{
			ConnURL:    spec.Location,
			Database:   spec.Database,
			Collection: spec.Collection,
			IDColumn:   spec.KeyColumn,
			Logger:     log,
		}, nil
	case "es":
		return &loaders.ESLoader{
			Addresses: []string{spec.Location},
			Index:     spec.Index,
			IDColumn:  spec.KeyColumn,
			Recreate:  spec.Recreate,
			Logger:    log,
		}, nil
	default:
		return nil, fmt.Errorf("unknown destination kind %q", spec.Kind)
	}
}

func buildTransformation(spec *models.Transform) etl.Transformation {
	chain := transformations.Chain{}
	if len(spec.Require) > 0 {
		chain = append(chain, &transformations.Require{Columns: spec.Require})
	}
	if len(spec.Mapping) > 0 {
		fields := make([]transformations.FieldMapping, 0, len(spec.Mapping))
		for _, f := range spec.Mapping {
			fields = append(fields, transformations.FieldMapping{
				From:   f.From,
				To:     f.To,
				Type:   f.Type,
				Format: f.Format,
			})
		}
		chain = append(chain, &transformations.Mapping{Fields: fields})
	}
	return chain
}

func sepRune(s string) rune {
	if s == "" {
		return 0
	}
	return []rune(s)[0]
}
