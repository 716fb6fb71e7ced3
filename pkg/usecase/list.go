package usecase

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ibirchl/refseqfetch/pkg/domain/interfaces"
	"github.com/ibirchl/refseqfetch/pkg/domain/model"
)

type listUseCase struct {
	client interfaces.DatasetsClient
}

// NewList creates a new instance of ListUseCase
func NewList(client interfaces.DatasetsClient) interfaces.ListUseCase {
	return &listUseCase{
		client: client,
	}
}

// ListAssemblies queries the matching chromosome-level assemblies for each
// family. Unlike the fetch pipeline, an enumeration failure here is the
// operation's own failure and aborts the listing.
func (uc *listUseCase) ListAssemblies(ctx context.Context, families []string) ([]*model.FamilyAssemblies, error) {
	logger := ctxlog.From(ctx)

	results := make([]*model.FamilyAssemblies, 0, len(families))
	for _, family := range families {
		summary, err := uc.client.GenomeSummary(ctx, family)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list assemblies", goerr.V("family", family))
		}

		logger.Debug("Listed assemblies",
			"family", family,
			"assemblies", summary.Count(),
			"taxa", summary.TaxonCount(),
		)
		results = append(results, &model.FamilyAssemblies{Family: family, Summary: summary})
	}
	return results, nil
}
