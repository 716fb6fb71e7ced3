package model_test

import (
	"testing"

	"github.com/ibirchl/refseqfetch/pkg/domain/model"
)

func TestClassifyFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		kind     model.FileKind
		matched  bool
	}{
		{
			name:     "CDS FASTA with the fixed RefSeq name",
			filename: "cds_from_genomic.fna",
			kind:     model.KindCDS,
			matched:  true,
		},
		{
			name:     "genomic GFF",
			filename: "genomic.gff",
			kind:     model.KindGFF,
			matched:  true,
		},
		{
			name:     "any .gff suffix",
			filename: "GCF_009829125.3_fSphaOr1.0.3_genomic.gff",
			kind:     model.KindGFF,
			matched:  true,
		},
		{
			name:     "gff3 extension is not the RefSeq convention",
			filename: "annotation.gff3",
			matched:  false,
		},
		{
			name:     "protein FASTA ignored",
			filename: "protein.faa",
			matched:  false,
		},
		{
			name:     "compressed CDS ignored",
			filename: "cds_from_genomic.fna.gz",
			matched:  false,
		},
		{
			name:     "other genomic FASTA ignored",
			filename: "GCF_009829125.3_fSphaOr1.0.3_genomic.fna",
			matched:  false,
		},
		{
			name:     "dataset metadata ignored",
			filename: "assembly_data_report.jsonl",
			matched:  false,
		},
		{
			name:     "README ignored",
			filename: "README.md",
			matched:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := model.ClassifyFile(tt.filename)
			if ok != tt.matched {
				t.Errorf("ClassifyFile(%q) matched = %v, want %v", tt.filename, ok, tt.matched)
			}
			if tt.matched && kind != tt.kind {
				t.Errorf("ClassifyFile(%q) kind = %v, want %v", tt.filename, kind, tt.kind)
			}
		})
	}
}

func TestFileKind_OutputName(t *testing.T) {
	if got := model.KindCDS.OutputName("GCF_009829125.3", "gobiidae"); got != "GCF_009829125.3_gobiidae.fna" {
		t.Errorf("CDS OutputName = %q", got)
	}
	if got := model.KindGFF.OutputName("GCF_009829125.3", "gobiidae"); got != "GCF_009829125.3_gobiidae.gff" {
		t.Errorf("GFF OutputName = %q", got)
	}

	// Distinct accessions must yield distinct names within one family run
	a := model.KindCDS.OutputName("GCF_009829125.3", "gobiidae")
	b := model.KindCDS.OutputName("GCF_016859285.1", "gobiidae")
	if a == b {
		t.Errorf("OutputName not injective: %q == %q", a, b)
	}
}

func TestFileKind_IncludeArg(t *testing.T) {
	if got := model.KindCDS.IncludeArg(); got != "cds" {
		t.Errorf("CDS IncludeArg = %q, want cds", got)
	}
	if got := model.KindGFF.IncludeArg(); got != "gff3" {
		t.Errorf("GFF IncludeArg = %q, want gff3", got)
	}
}

func TestFileKind_OutputSubdir(t *testing.T) {
	if got := model.KindCDS.OutputSubdir(); got != "cds_files" {
		t.Errorf("CDS OutputSubdir = %q, want cds_files", got)
	}
	if got := model.KindGFF.OutputSubdir(); got != "gff_files" {
		t.Errorf("GFF OutputSubdir = %q, want gff_files", got)
	}
}
