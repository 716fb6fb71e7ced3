package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	slogmulti "github.com/samber/slog-multi"
	"github.com/urfave/cli/v3"

	"github.com/ibirchl/refseqfetch/pkg/domain/types"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
	File   string
}

// Flags returns CLI flags for logger configuration
func (c *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &c.Level,
			Sources:     cli.EnvVars("REFSEQFETCH_LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, text, json)",
			Value:       "console",
			Destination: &c.Format,
			Sources:     cli.EnvVars("REFSEQFETCH_LOG_FORMAT"),
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "Also write JSON logs to this file",
			Destination: &c.File,
			Sources:     cli.EnvVars("REFSEQFETCH_LOG_FILE"),
		},
	}
}

// Configure builds the logger and returns a close function for the optional
// file sink. Secret values are redacted by masq in every handler.
func (c *Logger) Configure() (*slog.Logger, func() error, error) {
	noop := func() error { return nil }

	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return nil, noop, goerr.New("invalid log level",
			goerr.T(types.ErrTagConfiguration),
			goerr.V("level", c.Level))
	}

	redact := masq.New()
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: redact,
	}

	var handler slog.Handler
	switch strings.ToLower(c.Format) {
	case "console":
		handler = clog.New(
			clog.WithWriter(os.Stderr),
			clog.WithLevel(level),
			clog.WithColor(true),
			clog.WithReplaceAttr(redact),
		)
	case "text":
		handler = slog.NewTextHandler(os.Stderr, opts)
	case "json":
		handler = slog.NewJSONHandler(os.Stderr, opts)
	default:
		return nil, noop, goerr.New("invalid log format",
			goerr.T(types.ErrTagConfiguration),
			goerr.V("format", c.Format))
	}

	if c.File == "" {
		return slog.New(handler), noop, nil
	}

	f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, noop, goerr.Wrap(err, "failed to open log file",
			goerr.T(types.ErrTagConfiguration),
			goerr.V("file", c.File))
	}

	handler = slogmulti.Fanout(handler, slog.NewJSONHandler(f, opts))
	return slog.New(handler), f.Close, nil
}
