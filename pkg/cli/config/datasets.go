package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ibirchl/refseqfetch/pkg/domain/interfaces"
	"github.com/ibirchl/refseqfetch/pkg/domain/types"
	"github.com/ibirchl/refseqfetch/pkg/infra/datasets"
)

// DefaultToolPath is where the deployment environment installs the NCBI
// datasets executable
const DefaultToolPath = "/home5/ibirchl/Bioinformatics_tools/datasets"

// Datasets holds NCBI datasets tool configuration
type Datasets struct {
	ToolPath string
	APIKey   string `masq:"secret"`
	Timeout  time.Duration
}

// Flags returns CLI flags for datasets tool configuration
func (c *Datasets) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "datasets-tool",
			Usage:       "Path to NCBI datasets tool",
			Value:       DefaultToolPath,
			Destination: &c.ToolPath,
			Sources:     cli.EnvVars("REFSEQFETCH_DATASETS_TOOL"),
		},
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "NCBI API key passed to summary and download queries",
			Destination: &c.APIKey,
			Sources:     cli.EnvVars("REFSEQFETCH_API_KEY", "NCBI_API_KEY"),
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Per-invocation timeout for the datasets tool (0 = none)",
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("REFSEQFETCH_TIMEOUT"),
		},
	}
}

// Configure validates the configuration and builds the datasets client
func (c *Datasets) Configure() (interfaces.DatasetsClient, error) {
	if c.ToolPath == "" {
		return nil, goerr.New("datasets tool path must not be empty",
			goerr.T(types.ErrTagConfiguration))
	}

	return datasets.New(c.ToolPath,
		datasets.WithAPIKey(c.APIKey),
		datasets.WithTimeout(c.Timeout),
	), nil
}
