package app

import (
	"context"
	"io"
	"os"

	"github.com/footprint-tools/cmdtree/internal/config"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/log"
	"github.com/footprint-tools/cmdtree/internal/store"
	"github.com/footprint-tools/cmdtree/internal/ui"
	"github.com/footprint-tools/cmdtree/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Config options
	ConfigFile string
	Overrides  map[string]string

	// Output options
	Stdout        io.Writer
	Stderr        io.Writer
	PagerDisabled bool
	Pager         string
	StyleEnabled  bool

	// HistoryDisabled skips opening the history store.
	HistoryDisabled bool
}

// New creates a new Application with all dependencies wired up.
func New(ctx context.Context, opts Options) (*domain.Application, error) {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}

	cfg, err := config.Load(ctx, config.LoadOptions{
		ConfigFilePath: opts.ConfigFile,
		Overrides:      opts.Overrides,
	})
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg, opts.Stderr)

	var history domain.HistoryStore
	if !opts.HistoryDisabled && cfg.GetBool("history_enabled") {
		path, _ := cfg.Get("history_path")
		s, err := store.New(ctx, path)
		if err != nil {
			// History is optional; commands still run without it.
			logger.Warn("history disabled: %v", err)
		} else {
			history = s
		}
	}

	writerOpts := []ui.WriterOption{ui.WithConfig(cfg)}
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.Pager != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.Pager))
	}

	return &domain.Application{
		Config:  cfg,
		Logger:  logger,
		Styler:  style.New(opts.Stdout, opts.StyleEnabled && cfg.GetBool("color"), cfg),
		Output:  ui.NewWriter(opts.Stdout, writerOpts...),
		History: history,
	}, nil
}

// newLogger logs to log_file, or to stderr when it is empty. A log file that
// cannot be opened disables logging.
func newLogger(cfg domain.ConfigProvider, stderr io.Writer) domain.Logger {
	levelName, _ := cfg.Get("log_level")
	level := log.ParseLevel(levelName)

	path, _ := cfg.Get("log_file")
	if path == "" {
		return log.NewWriter(stderr, level)
	}

	l, err := log.New(path, level)
	if err != nil {
		return log.NopLogger{}
	}
	return l
}

// NewForTesting creates an Application suitable for testing.
// Uses an in-memory store, NopLogger, no styling and no pager.
func NewForTesting(ctx context.Context, out io.Writer, values map[string]string) (*domain.Application, error) {
	history, err := store.New(ctx, ":memory:")
	if err != nil {
		return nil, err
	}

	return &domain.Application{
		Config:  config.FromMap(values),
		Logger:  log.NopLogger{},
		Styler:  style.NopStyler{},
		Output:  ui.NewWriter(out, ui.WithPagerDisabled()),
		History: history,
	}, nil
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.History != nil {
		return app.History.Close()
	}
	return nil
}
