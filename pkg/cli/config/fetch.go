package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ibirchl/refseqfetch/pkg/domain/model"
	"github.com/ibirchl/refseqfetch/pkg/domain/types"
)

// Fetch holds fetch pipeline configuration
type Fetch struct {
	Families  []string
	OutputDir string
	NoCDS     bool
	NoGFF     bool
	SkipEmpty bool
	Compress  bool
	Progress  bool
}

// Flags returns CLI flags for fetch configuration
func (c *Fetch) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "family",
			Usage:       "Taxonomic family to download (repeatable, e.g. gobiidae)",
			Destination: &c.Families,
			Sources:     cli.EnvVars("REFSEQFETCH_FAMILY"),
		},
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Output directory for downloaded files",
			Value:       "refseq_data",
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars("REFSEQFETCH_OUTPUT_DIR"),
		},
		&cli.BoolFlag{
			Name:        "no-cds",
			Usage:       "Skip downloading CDS files",
			Destination: &c.NoCDS,
			Sources:     cli.EnvVars("REFSEQFETCH_NO_CDS"),
		},
		&cli.BoolFlag{
			Name:        "no-gff",
			Usage:       "Skip downloading GFF files",
			Destination: &c.NoGFF,
			Sources:     cli.EnvVars("REFSEQFETCH_NO_GFF"),
		},
		&cli.BoolFlag{
			Name:        "skip-empty",
			Usage:       "Skip families with no matching assemblies instead of attempting the download",
			Value:       true,
			Destination: &c.SkipEmpty,
			Sources:     cli.EnvVars("REFSEQFETCH_SKIP_EMPTY"),
		},
		&cli.BoolFlag{
			Name:        "compress-output",
			Usage:       "Gzip saved files while relocating them",
			Destination: &c.Compress,
			Sources:     cli.EnvVars("REFSEQFETCH_COMPRESS_OUTPUT"),
		},
		&cli.BoolFlag{
			Name:        "progress",
			Usage:       "Render an extraction progress bar on stderr",
			Destination: &c.Progress,
			Sources:     cli.EnvVars("REFSEQFETCH_PROGRESS"),
		},
	}
}

// Resolve validates the configuration and produces the immutable run
// configuration
func (c *Fetch) Resolve() (*model.RunConfig, error) {
	families, err := model.NormalizeFamilies(c.Families)
	if err != nil {
		return nil, err
	}

	if c.NoCDS && c.NoGFF {
		return nil, goerr.New("nothing to fetch: both CDS and GFF retrieval are disabled",
			goerr.T(types.ErrTagConfiguration))
	}

	return &model.RunConfig{
		Families:   families,
		OutputRoot: c.OutputDir,
		IncludeCDS: !c.NoCDS,
		IncludeGFF: !c.NoGFF,
		SkipEmpty:  c.SkipEmpty,
		Compress:   c.Compress,
		Progress:   c.Progress,
	}, nil
}
