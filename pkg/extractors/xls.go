package extractors

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/rowpipe/rowpipe/pkg/etl"
)

// XLSExtractor reads a sheet from a spreadsheet at a remote URL or a local
// path. The first row (after SkipRows) is the header.
type XLSExtractor struct {
	Source string
	// Sheet selects the sheet by name; empty means the first sheet.
	Sheet      string
	SkipRows   int
	SkipFooter int
	// NAValues lists cell contents treated as missing, see CSVExtractor.
	NAValues []string
}

var _ etl.Extractor = &XLSExtractor{}

func (e *XLSExtractor) Extract(ctx context.Context) (*etl.Dataset, error) {
	body, err := openSource(ctx, e.Source)
	if err != nil {
		return nil, fmt.Errorf("opening spreadsheet source %s: %w", e.Source, err)
	}
	defer body.Close()

	return e.parse(body)
}

func (e *XLSExtractor) parse(r io.Reader) (*etl.Dataset, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading spreadsheet from %s: %w", e.Source, err)
	}
	defer file.Close()

	sheet := e.Sheet
	if sheet == "" {
		sheet = file.GetSheetName(0)
	}

	rows, err := file.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q from %s: %w", sheet, e.Source, err)
	}
	return tableToDataset(rows, e.SkipRows, e.SkipFooter, e.NAValues)
}

// ZIPXLSExtractor downloads a zip archive and extracts a spreadsheet
// member identified by PathInArchive.
type ZIPXLSExtractor struct {
	XLSExtractor
	// PathInArchive identifies the member to extract; any member whose
	// name contains it matches.
	PathInArchive string
	SkipTLSVerify bool
}

var _ etl.Extractor = &ZIPXLSExtractor{}

func (e *ZIPXLSExtractor) Extract(ctx context.Context) (*etl.Dataset, error) {
	payload, err := fetch(ctx, e.Source, e.SkipTLSVerify)
	if err != nil {
		return nil, fmt.Errorf("downloading zip from %s: %w", e.Source, err)
	}

	archive, err := zip.NewReader(bytes.NewReader(payload), int64(len(payload)))
	if err != nil {
		return nil, fmt.Errorf("reading zip from %s: %w", e.Source, err)
	}

	for _, member := range archive.File {
		if !strings.Contains(member.Name, e.PathInArchive) {
			continue
		}
		file, err := member.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s inside %s: %w", member.Name, e.Source, err)
		}
		defer file.Close()
		return e.parse(file)
	}
	return nil, fmt.Errorf("could not find file %s in zip from %s", e.PathInArchive, e.Source)
}
