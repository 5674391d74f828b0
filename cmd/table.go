package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/openmfl/mfl-cli/internal/model"
	"github.com/openmfl/mfl-cli/internal/source"
)

// loadTable reads a source table from a local file or a published URL.
// The format is chosen by extension; anything that is not .xlsx is
// treated as CSV.
func loadTable(ctx context.Context, input, sheet string, skipRows int) (*source.Table, error) {
	xlsxOpts := source.XLSXOptions{SheetName: sheet, SkipRows: skipRows}

	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		data, err := fetchInput(ctx, input)
		if err != nil {
			return nil, err
		}
		u, err := url.Parse(input)
		if err != nil {
			return nil, eris.Wrapf(err, "parse url %s", input)
		}
		if strings.EqualFold(path.Ext(u.Path), ".xlsx") {
			return source.ReadXLSX(data, xlsxOpts)
		}
		return source.ReadCSV(bytes.NewReader(data), source.CSVOptions{TrimSpace: true})
	}

	if strings.EqualFold(filepath.Ext(input), ".xlsx") {
		return source.ReadXLSXFile(input, xlsxOpts)
	}
	return source.ReadCSVFile(input, source.CSVOptions{TrimSpace: true})
}

func fetchInput(ctx context.Context, rawURL string) ([]byte, error) {
	hostLimits := make(map[string]*rate.Limiter, len(cfg.Fetch.HostLimits))
	for host, perSec := range cfg.Fetch.HostLimits {
		hostLimits[host] = rate.NewLimiter(rate.Limit(perSec), 1)
	}
	f := source.NewFetcher(source.FetchOptions{
		UserAgent:  cfg.Fetch.UserAgent,
		Timeout:    time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
		MaxRetries: cfg.Fetch.MaxRetries,
		RatePerSec: cfg.Fetch.RatePerSec,
		Burst:      cfg.Fetch.Burst,
		HostLimits: hostLimits,
	})
	return f.Fetch(ctx, rawURL)
}

// writeJSON writes v as indented JSON to path.
func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return eris.Wrapf(err, "encode %s", path)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	return nil
}

// readRecords loads a harmonized collection written by the harmonize
// or batch command.
func readRecords(path string) ([]*model.FacilityRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read records %s", path)
	}
	var records []*model.FacilityRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, eris.Wrapf(err, "decode records %s", path)
	}
	return records, nil
}
