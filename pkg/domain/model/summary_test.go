package model_test

import (
	"encoding/json"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ibirchl/refseqfetch/pkg/domain/model"
)

// summaryJSON mirrors the shape of `datasets summary genome taxon` output
const summaryJSON = `{
  "reports": [
    {
      "accession": "GCF_009829125.3",
      "assembly_info": {
        "assembly_level": "Chromosome",
        "assembly_name": "fSphaOr1.pri"
      },
      "organism": {
        "organism_name": "Sphaeramia orbicularis",
        "tax_id": 375764
      }
    },
    {
      "accession": "GCF_016859285.1",
      "assembly_info": {
        "assembly_level": "Chromosome",
        "assembly_name": "ASM1685928v1"
      },
      "organism": {
        "organism_name": "Periophthalmus magnuspinnatus",
        "tax_id": 409849
      }
    }
  ],
  "total_count": 2
}`

func TestAssemblySummary_Parse(t *testing.T) {
	var summary model.AssemblySummary
	gt.NoError(t, json.Unmarshal([]byte(summaryJSON), &summary))

	gt.Number(t, summary.Count()).Equal(2)
	gt.Number(t, len(summary.Reports)).Equal(2)
	gt.Value(t, summary.Reports[0].Accession).Equal("GCF_009829125.3")
	gt.Value(t, summary.Reports[0].AssemblyInfo.AssemblyLevel).Equal("Chromosome")
	gt.Value(t, summary.Reports[1].Organism.OrganismName).Equal("Periophthalmus magnuspinnatus")
	gt.Value(t, summary.Reports[1].Organism.TaxID).Equal(int64(409849))
}

func TestAssemblySummary_Count(t *testing.T) {
	t.Run("total_count wins when present", func(t *testing.T) {
		summary := &model.AssemblySummary{
			Reports:    []model.AssemblyReport{{Accession: "GCF_009829125.3"}},
			TotalCount: 14,
		}
		gt.Number(t, summary.Count()).Equal(14)
	})

	t.Run("falls back to listed reports", func(t *testing.T) {
		summary := &model.AssemblySummary{
			Reports: []model.AssemblyReport{
				{Accession: "GCF_009829125.3"},
				{Accession: "GCF_016859285.1"},
			},
		}
		gt.Number(t, summary.Count()).Equal(2)
	})

	t.Run("empty summary", func(t *testing.T) {
		summary := &model.AssemblySummary{}
		gt.Number(t, summary.Count()).Equal(0)
	})
}

func TestAssemblySummary_TaxonCount(t *testing.T) {
	summary := &model.AssemblySummary{
		Reports: []model.AssemblyReport{
			{Accession: "GCF_1", Organism: model.Organism{TaxID: 375764}},
			{Accession: "GCF_2", Organism: model.Organism{TaxID: 375764}},
			{Accession: "GCF_3", Organism: model.Organism{TaxID: 409849}},
		},
	}
	gt.Number(t, summary.TaxonCount()).Equal(2)
}
