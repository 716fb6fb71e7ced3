package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/ibirchl/refseqfetch/pkg/cli/config"
	"github.com/ibirchl/refseqfetch/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var logger *slog.Logger
	closeLog := func() error { return nil }

	app := &cli.Command{
		Name:    "refseqfetch",
		Usage:   "Download and organize RefSeq CDS/GFF annotation data via NCBI datasets",
		Version: types.Version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, closeLog, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdFetch(),
			cmdList(),
		},
	}

	err := app.Run(ctx, args)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
	}
	if cerr := closeLog(); cerr != nil && err == nil {
		err = cerr
	}

	return err
}
