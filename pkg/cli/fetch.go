package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ibirchl/refseqfetch/pkg/cli/config"
	"github.com/ibirchl/refseqfetch/pkg/controller/report"
	"github.com/ibirchl/refseqfetch/pkg/domain/model"
	"github.com/ibirchl/refseqfetch/pkg/usecase"
)

func cmdFetch() *cli.Command {
	var (
		fetchCfg    config.Fetch
		datasetsCfg config.Datasets
	)

	flags := append(fetchCfg.Flags(), datasetsCfg.Flags()...)

	return &cli.Command{
		Name:    "fetch",
		Aliases: []string{"f"},
		Usage:   "Download chromosome-level RefSeq CDS/GFF files for one or more families",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, err := fetchCfg.Resolve()
			if err != nil {
				return err
			}

			logger := ctxlog.From(ctx).With(slog.String("run_id", uuid.NewString()))
			ctx = ctxlog.With(ctx, logger)

			logger.Info("Starting RefSeq fetch run",
				slog.Any("families", cfg.Families),
				slog.String("output_dir", cfg.OutputRoot),
				slog.Any("include", cfg.IncludeFilters()),
			)

			client, err := datasetsCfg.Configure()
			if err != nil {
				return err
			}

			fetchUC := usecase.NewFetch(client)
			result, err := fetchUC.Run(ctx, cfg)
			if err != nil {
				return err
			}

			console := report.NewConsole(os.Stdout)
			console.RunReport(result)

			if !result.OK() {
				return goerr.New("fetch run finished with failures",
					goerr.V("failed", result.CountByStatus(model.StatusFailed)))
			}
			return nil
		},
	}
}
