package model

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/ibirchl/refseqfetch/pkg/domain/types"
)

// RunConfig is the immutable configuration of one fetch run, resolved once
// from CLI arguments at startup
type RunConfig struct {
	Families   []string // normalized to lowercase
	OutputRoot string
	IncludeCDS bool
	IncludeGFF bool
	SkipEmpty  bool
	Compress   bool
	Progress   bool
}

// IncludeFilters returns the datasets --include values for the enabled file
// kinds, in cds,gff3 order
func (c *RunConfig) IncludeFilters() []string {
	var filters []string
	for _, kind := range Kinds {
		if c.Includes(kind) {
			filters = append(filters, kind.IncludeArg())
		}
	}
	return filters
}

// Includes reports whether files of the given kind should be retrieved
func (c *RunConfig) Includes(kind FileKind) bool {
	switch kind {
	case KindCDS:
		return c.IncludeCDS
	case KindGFF:
		return c.IncludeGFF
	default:
		return false
	}
}

// ArchivePath returns the deterministic archive filename for a family,
// placed under the output root
func (c *RunConfig) ArchivePath(family string) string {
	return filepath.Join(c.OutputRoot, fmt.Sprintf("refseq_%s_chromosome_data.zip", family))
}

// OutputDir returns the destination directory for files of the given kind
func (c *RunConfig) OutputDir(kind FileKind) string {
	return filepath.Join(c.OutputRoot, kind.OutputSubdir())
}

// NormalizeFamilies trims and lowercases family names. It fails when no
// family is given or when any entry is empty after trimming.
func NormalizeFamilies(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, goerr.New("at least one family is required", goerr.T(types.ErrTagConfiguration))
	}

	families := make([]string, 0, len(raw))
	for _, r := range raw {
		family := strings.ToLower(strings.TrimSpace(r))
		if family == "" {
			return nil, goerr.New("family name must not be empty", goerr.T(types.ErrTagConfiguration))
		}
		families = append(families, family)
	}
	return families, nil
}
