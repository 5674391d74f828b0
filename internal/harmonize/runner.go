package harmonize

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/openmfl/mfl-cli/internal/model"
)

// Result is one harmonized collection plus its batch report. The
// collection is written by exactly one producing run and is read-only
// to all consumers afterwards.
type Result struct {
	Records []*model.FacilityRecord `json:"records"`
	Report  *Report                 `json:"report"`
}

// Run harmonizes every data row in a single pass, accumulating row
// errors into the report instead of stopping at the first failure.
func (h *Harmonizer) Run(ctx context.Context, rows [][]string) (*Result, error) {
	log := zap.L().With(
		zap.String("component", "harmonize.runner"),
		zap.String("source", h.source),
	)

	report := newReport(h.source, h.asOf, h.res.Unmapped, h.res.Unused)
	report.RowsTotal = len(rows)

	// Expected, not an error: a country may simply not collect a field.
	if len(h.res.Unmapped) > 0 {
		log.Info("fields without bindings",
			zap.String("code", model.CodeUnmappedField),
			zap.Strings("fields", h.res.Unmapped),
		)
	}

	var records []*model.FacilityRecord
	for i, row := range rows {
		select {
		case <-ctx.Done():
			return nil, eris.Wrap(ctx.Err(), "harmonize: run cancelled")
		default:
		}

		rec, errs := h.Harmonize(row)
		if len(errs) > 0 {
			report.RowsRejected++
			report.RowErrors = append(report.RowErrors, RowError{Row: i, Errors: errs})
			log.Debug("row rejected", zap.Int("row", i), zap.Int("errors", len(errs)))
			continue
		}

		report.RowsHarmonized++
		records = append(records, rec)
		h.countCoverage(report, rec)
	}

	log.Info("batch complete",
		zap.String("run_id", report.RunID),
		zap.Int("rows", report.RowsTotal),
		zap.Int("harmonized", report.RowsHarmonized),
		zap.Int("rejected", report.RowsRejected),
	)

	return &Result{Records: records, Report: report}, nil
}

func (h *Harmonizer) countCoverage(report *Report, rec *model.FacilityRecord) {
	for _, path := range model.ScalarPaths() {
		if f, _ := rec.Field(path); f.Value != "" {
			report.FieldCoverage[path]++
		}
	}
	report.FieldCoverage["coordinates"]++
	if len(rec.LocalNames) > 0 {
		report.FieldCoverage[model.PathLocalNames]++
	}
	for path, n := range map[string]int{
		model.PathLegacyIdentifiers: rec.LegacyIdentifiers.Len(),
		model.PathPreviousNames:     rec.PreviousNames.Len(),
		model.PathServices:          rec.Services.Len(),
		model.PathInfrastructure:    rec.Infrastructure.Len(),
	} {
		if n > 0 {
			report.FieldCoverage[path]++
		}
	}
}

// SourceJob pairs one source's rows with its harmonizer.
type SourceJob struct {
	Name       string
	Harmonizer *Harmonizer
	Rows       [][]string
}

// RunSources harmonizes several sources concurrently. Each collection
// is produced by exactly one goroutine; results are read-only after
// Wait returns. Order of results matches the order of jobs.
func RunSources(ctx context.Context, jobs []SourceJob) ([]*Result, error) {
	results := make([]*Result, len(jobs))

	g, ctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			res, err := job.Harmonizer.Run(ctx, job.Rows)
			if err != nil {
				return eris.Wrapf(err, "harmonize: source %s", job.Name)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
