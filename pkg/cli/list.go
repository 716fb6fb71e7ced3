package cli

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/ibirchl/refseqfetch/pkg/cli/config"
	"github.com/ibirchl/refseqfetch/pkg/controller/report"
	"github.com/ibirchl/refseqfetch/pkg/domain/model"
	"github.com/ibirchl/refseqfetch/pkg/usecase"
)

func cmdList() *cli.Command {
	var datasetsCfg config.Datasets

	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List chromosome-level assemblies matching the given families",
		ArgsUsage: "FAMILY [FAMILY...]",
		Flags:     datasetsCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			families, err := model.NormalizeFamilies(c.Args().Slice())
			if err != nil {
				return err
			}

			client, err := datasetsCfg.Configure()
			if err != nil {
				return err
			}

			listUC := usecase.NewList(client)
			summaries, err := listUC.ListAssemblies(ctx, families)
			if err != nil {
				return err
			}

			console := report.NewConsole(os.Stdout)
			return console.AssemblyTable(summaries)
		},
	}
}
