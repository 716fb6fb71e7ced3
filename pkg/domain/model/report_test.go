package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/ibirchl/refseqfetch/pkg/domain/model"
)

func TestRunReport_OK(t *testing.T) {
	tests := []struct {
		name     string
		statuses []model.FamilyStatus
		want     bool
	}{
		{
			name:     "all families succeeded",
			statuses: []model.FamilyStatus{model.StatusSucceeded, model.StatusSucceeded},
			want:     true,
		},
		{
			name:     "one failed but another succeeded",
			statuses: []model.FamilyStatus{model.StatusFailed, model.StatusSucceeded},
			want:     true,
		},
		{
			name:     "every family failed",
			statuses: []model.FamilyStatus{model.StatusFailed, model.StatusFailed},
			want:     false,
		},
		{
			name:     "single family failed",
			statuses: []model.FamilyStatus{model.StatusFailed},
			want:     false,
		},
		{
			name:     "only empty families",
			statuses: []model.FamilyStatus{model.StatusEmpty, model.StatusEmpty},
			want:     true,
		},
		{
			name:     "failed alongside only empty",
			statuses: []model.FamilyStatus{model.StatusEmpty, model.StatusFailed},
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := &model.RunReport{}
			for _, status := range tt.statuses {
				report.Add(&model.FamilyOutcome{Family: "gobiidae", Status: status})
			}
			gt.Value(t, report.OK()).Equal(tt.want)
		})
	}
}

func TestRunReport_Counts(t *testing.T) {
	cfg := &model.RunConfig{OutputRoot: "refseq_data"}
	report := model.NewRunReport("datasets version: 16.22.1", cfg)

	organized := &model.OrganizeResult{}
	organized.Add(model.SavedFile{Kind: model.KindCDS, Accession: "GCF_009829125.3"})
	organized.Add(model.SavedFile{Kind: model.KindGFF, Accession: "GCF_009829125.3"})
	report.Add(&model.FamilyOutcome{Family: "gobiidae", Status: model.StatusSucceeded, Organized: organized})

	moreOrganized := &model.OrganizeResult{}
	moreOrganized.Add(model.SavedFile{Kind: model.KindCDS, Accession: "GCF_016859285.1"})
	report.Add(&model.FamilyOutcome{Family: "apogonidae", Status: model.StatusSucceeded, Organized: moreOrganized})

	report.Add(&model.FamilyOutcome{Family: "cichlidae", Status: model.StatusFailed, Err: errors.New("download failed")})

	gt.Number(t, report.CountByStatus(model.StatusSucceeded)).Equal(2)
	gt.Number(t, report.CountByStatus(model.StatusFailed)).Equal(1)
	gt.Number(t, report.CountByStatus(model.StatusEmpty)).Equal(0)
	gt.Number(t, report.SavedTotal(model.KindCDS)).Equal(2)
	gt.Number(t, report.SavedTotal(model.KindGFF)).Equal(1)
	gt.Value(t, report.CDSDir).Equal(cfg.OutputDir(model.KindCDS))
	gt.Value(t, report.GFFDir).Equal(cfg.OutputDir(model.KindGFF))
}

func TestOrganizeResult_Count(t *testing.T) {
	result := &model.OrganizeResult{}
	gt.Number(t, result.Total()).Equal(0)

	result.Add(model.SavedFile{Kind: model.KindCDS, Accession: "GCF_1"})
	result.Add(model.SavedFile{Kind: model.KindCDS, Accession: "GCF_2"})
	result.Add(model.SavedFile{Kind: model.KindGFF, Accession: "GCF_1"})

	gt.Number(t, result.Count(model.KindCDS)).Equal(2)
	gt.Number(t, result.Count(model.KindGFF)).Equal(1)
	gt.Number(t, result.Total()).Equal(3)
}
