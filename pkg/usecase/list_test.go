package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ibirchl/refseqfetch/pkg/domain/model"
	"github.com/ibirchl/refseqfetch/pkg/usecase"
)

func TestListUseCase_ListAssemblies(t *testing.T) {
	ctx := context.Background()

	mockClient := &MockDatasetsClient{
		summaryFunc: func(ctx context.Context, family string) (*model.AssemblySummary, error) {
			if family == "apogonidae" {
				return &model.AssemblySummary{}, nil
			}
			return &model.AssemblySummary{
				Reports: []model.AssemblyReport{
					{
						Accession: "GCF_009829125.3",
						Organism:  model.Organism{OrganismName: "Sphaeramia orbicularis", TaxID: 375764},
					},
				},
				TotalCount: 1,
			}, nil
		},
	}

	uc := usecase.NewList(mockClient)
	results, err := uc.ListAssemblies(ctx, []string{"gobiidae", "apogonidae"})
	gt.NoError(t, err)
	gt.Number(t, len(results)).Equal(2)
	gt.Value(t, results[0].Family).Equal("gobiidae")
	gt.Number(t, results[0].Summary.Count()).Equal(1)
	gt.Value(t, results[1].Family).Equal("apogonidae")
	gt.Number(t, results[1].Summary.Count()).Equal(0)
	gt.Value(t, mockClient.summaryCalls).Equal([]string{"gobiidae", "apogonidae"})
}

func TestListUseCase_ListAssemblies_QueryError(t *testing.T) {
	ctx := context.Background()

	mockClient := &MockDatasetsClient{
		summaryFunc: func(ctx context.Context, family string) (*model.AssemblySummary, error) {
			return nil, errors.New("summary query failed")
		},
	}

	uc := usecase.NewList(mockClient)
	results, err := uc.ListAssemblies(ctx, []string{"gobiidae", "apogonidae"})
	gt.Error(t, err)
	gt.Value(t, results).Nil()
	gt.String(t, err.Error()).Contains("failed to list assemblies")

	// Listing aborts on the first failure rather than degrading
	gt.Number(t, len(mockClient.summaryCalls)).Equal(1)
}
