package datasets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ibirchl/refseqfetch/pkg/domain/interfaces"
	"github.com/ibirchl/refseqfetch/pkg/domain/model"
	"github.com/ibirchl/refseqfetch/pkg/domain/types"
)

type client struct {
	toolPath string
	apiKey   string
	timeout  time.Duration
}

// Option is a functional option for client configuration
type Option func(*client)

// WithAPIKey sets the NCBI API key appended to summary and download
// invocations
func WithAPIKey(key string) Option {
	return func(c *client) {
		c.apiKey = key
	}
}

// WithTimeout bounds each tool invocation. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *client) {
		c.timeout = d
	}
}

// New creates a new client wrapping the NCBI datasets executable at toolPath
func New(toolPath string, opts ...Option) interfaces.DatasetsClient {
	c := &client{
		toolPath: toolPath,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// commandResult is the outcome of one tool invocation that could be started.
// A non-zero exit is reported here, not as an error, so callers must handle
// both branches explicitly.
type commandResult struct {
	exitCode int
	stdout   string
	stderr   string
}

// run invokes the tool synchronously, capturing both output streams. The
// returned error is non-nil only when the process could not be started at
// all (missing executable, permission).
func (c *client) run(ctx context.Context, args ...string) (*commandResult, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	ctxlog.From(ctx).Debug("Running datasets command",
		"tool", c.toolPath,
		"args", maskArgs(args),
	)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, c.toolPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, goerr.Wrap(err, "failed to invoke datasets tool",
				goerr.V("tool", c.toolPath))
		}
		return &commandResult{
			exitCode: exitErr.ExitCode(),
			stdout:   stdout.String(),
			stderr:   stderr.String(),
		}, nil
	}

	return &commandResult{
		stdout: stdout.String(),
		stderr: stderr.String(),
	}, nil
}

// withAPIKey appends the --api-key argument when a key is configured
func (c *client) withAPIKey(args []string) []string {
	if c.apiKey == "" {
		return args
	}
	return append(args, "--api-key", c.apiKey)
}

// maskArgs redacts the API key value so command logging never exposes it
func maskArgs(args []string) []string {
	masked := make([]string, len(args))
	copy(masked, args)
	for i := 0; i < len(masked)-1; i++ {
		if masked[i] == "--api-key" {
			masked[i+1] = "[REDACTED]"
		}
	}
	return masked
}

// Version probes the tool with a version query and returns the reported
// version string
func (c *client) Version(ctx context.Context) (string, error) {
	res, err := c.run(ctx, "--version")
	if err != nil {
		return "", goerr.Wrap(err, "datasets tool is not executable",
			goerr.T(types.ErrTagToolUnavailable),
			goerr.V("tool", c.toolPath))
	}
	if res.exitCode != 0 {
		return "", goerr.New("datasets version query failed",
			goerr.T(types.ErrTagToolUnavailable),
			goerr.V("tool", c.toolPath),
			goerr.V("exit_code", res.exitCode),
			goerr.V("stderr", res.stderr))
	}

	version, _, _ := strings.Cut(strings.TrimSpace(res.stdout), "\n")
	if version == "" {
		return "", goerr.New("datasets version query returned no output",
			goerr.T(types.ErrTagToolUnavailable),
			goerr.V("tool", c.toolPath))
	}
	return version, nil
}

// GenomeSummary queries the chromosome-level annotated assemblies matching a
// family and parses the JSON listing
func (c *client) GenomeSummary(ctx context.Context, family string) (*model.AssemblySummary, error) {
	args := c.withAPIKey([]string{
		"summary", "genome", "taxon", family,
		"--assembly-level", "chromosome",
		"--annotated",
	})

	res, err := c.run(ctx, args...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query assembly summary",
			goerr.T(types.ErrTagEnumeration),
			goerr.V("family", family))
	}
	if res.exitCode != 0 {
		return nil, goerr.New("assembly summary query failed",
			goerr.T(types.ErrTagEnumeration),
			goerr.V("family", family),
			goerr.V("exit_code", res.exitCode),
			goerr.V("stderr", res.stderr))
	}

	var summary model.AssemblySummary
	if err := json.Unmarshal([]byte(res.stdout), &summary); err != nil {
		return nil, goerr.Wrap(err, "failed to parse assembly summary output",
			goerr.T(types.ErrTagEnumeration),
			goerr.V("family", family))
	}
	return &summary, nil
}

// DownloadGenome downloads the genome data archive described by the request
func (c *client) DownloadGenome(ctx context.Context, req *model.DownloadRequest) error {
	logger := ctxlog.From(ctx)

	logger.Info("Downloading genome data",
		"family", req.Family,
		"include", strings.Join(req.Include, ","),
		"archive", req.ArchivePath,
	)

	args := c.withAPIKey([]string{
		"download", "genome", "taxon", req.Family,
		"--include", strings.Join(req.Include, ","),
		"--assembly-level", "chromosome",
		"--filename", req.ArchivePath,
	})

	res, err := c.run(ctx, args...)
	if err != nil {
		return goerr.Wrap(err, "failed to run genome download",
			goerr.T(types.ErrTagDownload),
			goerr.V("family", req.Family))
	}
	if res.exitCode != 0 {
		return goerr.New("genome download failed",
			goerr.T(types.ErrTagDownload),
			goerr.V("family", req.Family),
			goerr.V("exit_code", res.exitCode),
			goerr.V("stderr", res.stderr))
	}

	// The tool occasionally exits zero without producing a file, e.g. when
	// nothing matched the filters. Success requires the archive on disk.
	if _, err := os.Stat(req.ArchivePath); err != nil {
		return goerr.Wrap(err, "download reported success but archive is missing",
			goerr.T(types.ErrTagDownload),
			goerr.V("family", req.Family),
			goerr.V("archive", req.ArchivePath))
	}

	logger.Info("Download completed", "family", req.Family)
	return nil
}
