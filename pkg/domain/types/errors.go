package types

import "github.com/m-mizutani/goerr/v2"

// Error tags classify failures by their blast radius. Configuration and
// tool-unavailable errors abort the whole run; enumeration errors are
// diagnostic only; download and extraction errors fail a single family.
var (
	ErrTagConfiguration   = goerr.NewTag("configuration")
	ErrTagToolUnavailable = goerr.NewTag("tool_unavailable")
	ErrTagEnumeration     = goerr.NewTag("enumeration")
	ErrTagDownload        = goerr.NewTag("download")
	ErrTagExtraction      = goerr.NewTag("extraction")
)
