package model

import "time"

// DownloadRequest describes one genome download invocation
type DownloadRequest struct {
	Family      string   // taxon to download
	Include     []string // datasets --include values
	ArchivePath string   // destination archive filename
}

// SavedFile records one annotation file relocated into an output directory
type SavedFile struct {
	Kind      FileKind
	Accession string
	Path      string // final path under the output root
}

// OrganizeResult aggregates the files saved while organizing one family's
// archive
type OrganizeResult struct {
	Saved []SavedFile
}

// Add records a saved file
func (r *OrganizeResult) Add(f SavedFile) {
	r.Saved = append(r.Saved, f)
}

// Count returns the number of saved files of the given kind
func (r *OrganizeResult) Count(kind FileKind) int {
	var n int
	for _, f := range r.Saved {
		if f.Kind == kind {
			n++
		}
	}
	return n
}

// Total returns the number of saved files across all kinds
func (r *OrganizeResult) Total() int {
	return len(r.Saved)
}

// FamilyStatus is the outcome classification of one processed family
type FamilyStatus string

const (
	StatusSucceeded FamilyStatus = "succeeded"
	StatusEmpty     FamilyStatus = "empty"
	StatusFailed    FamilyStatus = "failed"
)

// FamilyOutcome is the per-family result reported at the end of a run
type FamilyOutcome struct {
	Family    string
	Status    FamilyStatus
	Organized *OrganizeResult // set when Status is succeeded
	Err       error           // cause when Status is failed
}

// RunReport aggregates the outcomes of one fetch run for the final summary
type RunReport struct {
	ToolVersion string
	Outcomes    []*FamilyOutcome
	CDSDir      string
	GFFDir      string
	Elapsed     time.Duration
}

// NewRunReport creates a run report bound to the run's output directories
func NewRunReport(toolVersion string, cfg *RunConfig) *RunReport {
	return &RunReport{
		ToolVersion: toolVersion,
		CDSDir:      cfg.OutputDir(KindCDS),
		GFFDir:      cfg.OutputDir(KindGFF),
	}
}

// Add appends a family outcome
func (r *RunReport) Add(outcome *FamilyOutcome) {
	r.Outcomes = append(r.Outcomes, outcome)
}

// CountByStatus returns the number of families that finished with the given
// status
func (r *RunReport) CountByStatus(status FamilyStatus) int {
	var n int
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// SavedTotal returns the number of saved files of a kind across all families
func (r *RunReport) SavedTotal(kind FileKind) int {
	var n int
	for _, o := range r.Outcomes {
		if o.Organized != nil {
			n += o.Organized.Count(kind)
		}
	}
	return n
}

// OK reports whether the run counts as successful for the process exit
// status. Per-family failures are logged-and-continue as long as some family
// succeeded; a run where every attempted family failed is a failure. Runs
// with only empty families are fine.
func (r *RunReport) OK() bool {
	return r.CountByStatus(StatusFailed) == 0 || r.CountByStatus(StatusSucceeded) > 0
}
