package interfaces

import (
	"context"

	"github.com/ibirchl/refseqfetch/pkg/domain/model"
)

// FetchUseCase defines the interface for the fetch pipeline
type FetchUseCase interface {
	// Run processes every family in the run configuration and returns the
	// aggregated report
	Run(ctx context.Context, cfg *model.RunConfig) (*model.RunReport, error)
}

// ListUseCase defines operations for enumeration-only display
type ListUseCase interface {
	// ListAssemblies queries the matching assemblies for each family
	ListAssemblies(ctx context.Context, families []string) ([]*model.FamilyAssemblies, error)
}
