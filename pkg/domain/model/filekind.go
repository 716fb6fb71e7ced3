package model

import (
	"fmt"
	"strings"
)

// FileKind identifies one of the two annotation file kinds handled by the
// pipeline
type FileKind string

const (
	KindCDS FileKind = "cds"
	KindGFF FileKind = "gff"
)

// Kinds lists all file kinds in stable output order
var Kinds = []FileKind{KindCDS, KindGFF}

// RefSeq archives name the coding-sequence FASTA inside each assembly
// directory with this fixed name
const cdsFileName = "cds_from_genomic.fna"

// IncludeArg returns the value this kind contributes to the datasets
// --include filter
func (k FileKind) IncludeArg() string {
	if k == KindGFF {
		return "gff3"
	}
	return string(k)
}

// Ext returns the output file extension for this kind
func (k FileKind) Ext() string {
	if k == KindCDS {
		return "fna"
	}
	return "gff"
}

// OutputSubdir returns the subdirectory under the output root where files of
// this kind are collected
func (k FileKind) OutputSubdir() string {
	return string(k) + "_files"
}

// OutputName builds the destination filename for a classified file:
// {accession}_{family}.{ext}
func (k FileKind) OutputName(accession, family string) string {
	return fmt.Sprintf("%s_%s.%s", accession, family, k.Ext())
}

// ClassifyFile maps an extracted filename to a file kind. CDS files carry the
// fixed RefSeq name cds_from_genomic.fna, GFF files any .gff suffix. Anything
// else is ignored.
func ClassifyFile(name string) (FileKind, bool) {
	switch {
	case name == cdsFileName:
		return KindCDS, true
	case strings.HasSuffix(name, ".gff"):
		return KindGFF, true
	default:
		return "", false
	}
}
