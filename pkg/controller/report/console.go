package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/ibirchl/refseqfetch/pkg/domain/model"
)

// Console renders run reports and assembly listings for a terminal
type Console struct {
	out io.Writer
}

// NewConsole creates a console renderer writing to out
func NewConsole(out io.Writer) *Console {
	return &Console{
		out: out,
	}
}

// RunReport prints the final summary of a fetch run: per-family status
// lines, saved-file totals, and the output directory paths
func (c *Console) RunReport(r *model.RunReport) {
	fmt.Fprintf(c.out, "\nProcessed %d/%d families\n",
		r.CountByStatus(model.StatusSucceeded), len(r.Outcomes))

	for _, o := range r.Outcomes {
		switch o.Status {
		case model.StatusSucceeded:
			fmt.Fprintf(c.out, "  %s %s: %d CDS, %d GFF\n",
				color.GreenString("[ok]"), o.Family,
				o.Organized.Count(model.KindCDS), o.Organized.Count(model.KindGFF))
		case model.StatusEmpty:
			fmt.Fprintf(c.out, "  %s %s: no chromosome-level assemblies\n",
				color.YellowString("[--]"), o.Family)
		case model.StatusFailed:
			fmt.Fprintf(c.out, "  %s %s: %v\n",
				color.RedString("[NG]"), o.Family, o.Err)
		}
	}

	fmt.Fprintf(c.out, "Saved %d CDS and %d GFF files\n",
		r.SavedTotal(model.KindCDS), r.SavedTotal(model.KindGFF))
	fmt.Fprintf(c.out, "CDS files saved to: %s\n", r.CDSDir)
	fmt.Fprintf(c.out, "GFF files saved to: %s\n", r.GFFDir)
}

// AssemblyTable prints an aligned table of the assemblies matched per family
// followed by per-family counts
func (c *Console) AssemblyTable(families []*model.FamilyAssemblies) error {
	w := tabwriter.NewWriter(c.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FAMILY\tACCESSION\tORGANISM\tLEVEL")
	for _, f := range families {
		if len(f.Summary.Reports) == 0 {
			fmt.Fprintf(w, "%s\t-\t-\t-\n", f.Family)
			continue
		}
		for _, rep := range f.Summary.Reports {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				f.Family, rep.Accession, rep.Organism.OrganismName, rep.AssemblyInfo.AssemblyLevel)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(c.out)
	for _, f := range families {
		fmt.Fprintf(c.out, "%s: %d assemblies, %d taxa\n",
			f.Family, f.Summary.Count(), f.Summary.TaxonCount())
	}
	return nil
}
