// Package ui provides terminal output helpers including pager support.
//
// The pager runs a user-configured command, the way git and man do.
package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

// Writer implements domain.OutputWriter.
type Writer struct {
	out           io.Writer
	pagerDisabled bool
	pagerOverride string
	config        domain.ConfigProvider
	envGetter     func(string) string
}

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithPagerDisabled disables the pager.
func WithPagerDisabled() WriterOption {
	return func(w *Writer) {
		w.pagerDisabled = true
	}
}

// WithPagerOverride sets a pager command override.
func WithPagerOverride(cmd string) WriterOption {
	return func(w *Writer) {
		w.pagerOverride = cmd
	}
}

// WithConfig reads the "pager" key from cfg.
func WithConfig(cfg domain.ConfigProvider) WriterOption {
	return func(w *Writer) {
		w.config = cfg
	}
}

// WithEnvGetter sets the environment variable getter function.
func WithEnvGetter(fn func(string) string) WriterOption {
	return func(w *Writer) {
		w.envGetter = fn
	}
}

// NewWriter creates a Writer for out.
func NewWriter(out io.Writer, opts ...WriterOption) *Writer {
	w := &Writer{
		out:       out,
		envGetter: os.Getenv,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Pager displays content through a pager when the output is a terminal.
func (w *Writer) Pager(content string) {
	cmd := w.pagerCommand()
	if cmd == "" {
		_, _ = fmt.Fprint(w.out, content)
		return
	}

	parts := strings.Fields(cmd)
	pager := exec.Command(parts[0], parts[1:]...)
	pager.Stdin = strings.NewReader(content)
	pager.Stdout = w.out
	pager.Stderr = os.Stderr

	if err := pager.Run(); err != nil {
		_, _ = fmt.Fprint(w.out, content)
	}
}

// pagerCommand resolves the pager to run, empty to print directly.
// Precedence: disabled, non-terminal output, override, config, $PAGER, less.
func (w *Writer) pagerCommand() string {
	if w.pagerDisabled {
		return ""
	}

	f, ok := w.out.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return ""
	}

	candidates := []string{w.pagerOverride}
	if w.config != nil {
		configPager, _ := w.config.Get("pager")
		candidates = append(candidates, configPager)
	}
	if w.envGetter != nil {
		candidates = append(candidates, w.envGetter("PAGER"))
	}
	candidates = append(candidates, "less -FRSX")

	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if c == "cat" {
			return ""
		}
		return c
	}
	return ""
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
