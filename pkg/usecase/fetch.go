package usecase

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ibirchl/refseqfetch/pkg/domain/interfaces"
	"github.com/ibirchl/refseqfetch/pkg/domain/model"
	"github.com/ibirchl/refseqfetch/pkg/domain/types"
)

type fetchUseCase struct {
	client interfaces.DatasetsClient
}

// NewFetch creates a new instance of FetchUseCase
func NewFetch(client interfaces.DatasetsClient) interfaces.FetchUseCase {
	return &fetchUseCase{
		client: client,
	}
}

// Run probes the datasets tool, then processes every family in sequence.
// Tool unavailability aborts the run before any output is produced;
// per-family failures are isolated and collected into the report.
func (uc *fetchUseCase) Run(ctx context.Context, cfg *model.RunConfig) (*model.RunReport, error) {
	logger := ctxlog.From(ctx)
	started := time.Now()

	version, err := uc.client.Version(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "NCBI datasets tool is not available",
			goerr.T(types.ErrTagToolUnavailable))
	}
	logger.Info("NCBI datasets tool ready", "version", version)

	// The archive is written under the output root, so the root must exist
	// before the first download. Kind subdirectories are created on demand
	// when the first file of a kind is moved.
	if err := os.MkdirAll(cfg.OutputRoot, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory",
			goerr.V("dir", cfg.OutputRoot))
	}

	report := model.NewRunReport(version, cfg)
	for _, family := range cfg.Families {
		report.Add(uc.processFamily(ctx, cfg, family))
	}
	report.Elapsed = time.Since(started)

	logger.Info("Fetch run finished",
		"succeeded", report.CountByStatus(model.StatusSucceeded),
		"empty", report.CountByStatus(model.StatusEmpty),
		"failed", report.CountByStatus(model.StatusFailed),
		"elapsed", report.Elapsed,
	)
	return report, nil
}

// processFamily runs the enumerate -> download -> organize sequence for one
// family. Failures are returned as a failed outcome, never as a panic or a
// run-level error.
func (uc *fetchUseCase) processFamily(ctx context.Context, cfg *model.RunConfig, family string) *model.FamilyOutcome {
	logger := ctxlog.From(ctx).With(slog.String("family", family))
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Processing family")

	// The summary step is diagnostic. A failed query degrades to attempting
	// the download anyway; zero matches skips the family unless configured
	// otherwise.
	summary, err := uc.client.GenomeSummary(ctx, family)
	switch {
	case err != nil:
		logger.Warn("Assembly summary query failed, attempting download anyway", "error", err)
	case summary.Count() == 0:
		logger.Warn("No species with chromosome-level assemblies found")
		if cfg.SkipEmpty {
			return &model.FamilyOutcome{Family: family, Status: model.StatusEmpty}
		}
	default:
		logger.Info("Found chromosome-level assemblies",
			"assemblies", summary.Count(),
			"taxa", summary.TaxonCount(),
		)
	}

	archivePath := cfg.ArchivePath(family)
	defer func() {
		if err := os.Remove(archivePath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove downloaded archive",
				"archive", archivePath,
				"error", err,
			)
		}
	}()

	req := &model.DownloadRequest{
		Family:      family,
		Include:     cfg.IncludeFilters(),
		ArchivePath: archivePath,
	}
	if err := uc.client.DownloadGenome(ctx, req); err != nil {
		logger.Error("Failed to download genome data", "error", err)
		return &model.FamilyOutcome{Family: family, Status: model.StatusFailed, Err: err}
	}

	organized, err := uc.organizeArchive(ctx, cfg, family, archivePath)
	if err != nil {
		logger.Error("Failed to organize downloaded archive", "error", err)
		return &model.FamilyOutcome{Family: family, Status: model.StatusFailed, Err: err}
	}

	logger.Info("Family processed",
		"cds_files", organized.Count(model.KindCDS),
		"gff_files", organized.Count(model.KindGFF),
	)
	return &model.FamilyOutcome{Family: family, Status: model.StatusSucceeded, Organized: organized}
}
