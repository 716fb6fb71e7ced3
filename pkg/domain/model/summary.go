package model

// AssemblySummary is the parsed output of the datasets genome summary query
// for one family
type AssemblySummary struct {
	Reports    []AssemblyReport `json:"reports"`
	TotalCount int              `json:"total_count"`
}

// AssemblyReport describes a single matching genome assembly
type AssemblyReport struct {
	Accession    string       `json:"accession"`
	AssemblyInfo AssemblyInfo `json:"assembly_info"`
	Organism     Organism     `json:"organism"`
}

// AssemblyInfo carries the assembly quality metadata of a report
type AssemblyInfo struct {
	AssemblyLevel string `json:"assembly_level"`
	AssemblyName  string `json:"assembly_name"`
}

// Organism identifies the taxon an assembly belongs to
type Organism struct {
	OrganismName string `json:"organism_name"`
	TaxID        int64  `json:"tax_id"`
}

// Count returns the number of matching assemblies. The tool reports a
// total_count alongside the listed reports; the listed length is the
// fallback when the field is absent.
func (s *AssemblySummary) Count() int {
	if s.TotalCount > 0 {
		return s.TotalCount
	}
	return len(s.Reports)
}

// TaxonCount returns the number of distinct taxa among the listed reports. A
// family can map to multiple underlying taxonomic groups.
func (s *AssemblySummary) TaxonCount() int {
	seen := map[int64]struct{}{}
	for _, r := range s.Reports {
		seen[r.Organism.TaxID] = struct{}{}
	}
	return len(seen)
}

// FamilyAssemblies pairs a family name with its assembly summary for listing
type FamilyAssemblies struct {
	Family  string
	Summary *AssemblySummary
}
