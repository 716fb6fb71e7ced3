package interfaces

import (
	"context"

	"github.com/ibirchl/refseqfetch/pkg/domain/model"
)

// DatasetsClient defines operations for interacting with the external NCBI
// datasets command-line tool
type DatasetsClient interface {
	// Version probes the tool with a version query and returns the reported
	// version string
	Version(ctx context.Context) (string, error)

	// GenomeSummary queries the matching chromosome-level assemblies for a
	// family
	GenomeSummary(ctx context.Context, family string) (*model.AssemblySummary, error)

	// DownloadGenome downloads the genome data archive described by the
	// request. The archive is guaranteed to exist on disk when no error is
	// returned.
	DownloadGenome(ctx context.Context, req *model.DownloadRequest) error
}
