package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/footprint-tools/cmdtree/internal/actions"
	"github.com/footprint-tools/cmdtree/internal/app"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/invocation"
	"github.com/footprint-tools/cmdtree/internal/params"
	"github.com/footprint-tools/cmdtree/internal/tokens"
	"github.com/footprint-tools/cmdtree/internal/ui/picker"
	"github.com/footprint-tools/cmdtree/internal/usage"
)

// OutcomeOK is the history outcome of a successful invocation.
const OutcomeOK = "ok"

// Host runs invocations of a command tree on behalf of one application.
type Host struct {
	App    *domain.Application
	Engine *dispatchers.Engine
	Stdin  io.Reader
	Stderr io.Writer

	// Choose asks the user to pick one of several matching commands. When
	// nil, ambiguity is reported as an error.
	Choose func(ctx context.Context, options []picker.Option) (int, error)

	Now func() time.Time
}

// NewHost creates a host over tree, matching with the application's
// case_insensitive setting.
func NewHost(application *domain.Application, tree *dispatchers.Tree, opts ...dispatchers.Option) *Host {
	engineOpts := []dispatchers.Option{
		dispatchers.WithLogger(application.Logger),
		dispatchers.WithOptions(params.Options{CaseInsensitive: application.Config.GetBool("case_insensitive")}),
	}
	return &Host{
		App:    application,
		Engine: dispatchers.NewEngine(tree, append(engineOpts, opts...)...),
		Stdin:  os.Stdin,
		Stderr: os.Stderr,
		Now:    time.Now,
	}
}

// Run executes one invocation and returns the process exit code.
func (h *Host) Run(ctx context.Context, flags HostFlags, args []string) int {
	tree := h.Engine.Tree()

	switch {
	case flags.Help:
		h.App.Output.Pager(dispatchers.Help(tree, tree.Root(), h.App.Styler) + "\nHOST FLAGS\n" + FlagUsages())
		return 0
	case flags.Version:
		_, _ = h.App.Output.Println("cmdtree version " + app.Version)
		return 0
	case flags.Command == "" && flags.Input == "" && len(args) == 0:
		h.App.Output.Pager(dispatchers.Help(tree, tree.Root(), h.App.Styler))
		return 1
	}

	start := h.Now()
	input, out, err := h.search(flags, args)

	path := out.Matched
	var res dispatchers.Result
	if err == nil {
		var cand dispatchers.Candidate
		cand, err = h.resolve(ctx, out)
		if err == nil {
			path = cand.Path
			res, err = h.Engine.Dispatch(actions.WithApplication(ctx, h.App, tree), cand)
		}
	}

	code := 0
	if err != nil {
		code = h.report(err)
	} else if res.Payload != nil {
		_, _ = h.App.Output.Println(res.Payload)
	}

	h.record(ctx, domain.Invocation{
		RequestID: res.RequestID,
		Path:      path,
		Input:     input,
		Outcome:   outcomeOf(err),
		ExitCode:  code,
		Duration:  h.Now().Sub(start),
	})
	return code
}

// search runs the tree search for whichever input form the flags select
// and returns the input as recorded in history.
func (h *Host) search(flags HostFlags, args []string) (string, dispatchers.Outcome, error) {
	tree := h.Engine.Tree()
	opts := h.Engine.Options()

	switch {
	case flags.Input != "" && (flags.Command != "" || len(args) > 0):
		return strings.Join(args, " "), dispatchers.Outcome{}, usage.InvalidFlag("--input", errors.New("cannot be combined with a command"))

	case flags.Input != "":
		var req invocation.Request
		var err error
		if flags.Input == "-" {
			req, err = invocation.Read(h.Stdin, "stdin")
		} else {
			req, err = invocation.ReadFile(flags.Input)
		}
		if err != nil {
			return "", dispatchers.Outcome{}, usage.InvalidFlag("--input", err)
		}
		h.App.Logger.Debug("request: %s", req)
		return req.String(), tree.SearchNamed(req.Path, req.Options, opts), nil

	case flags.Command != "" && len(args) > 0:
		return flags.Command, dispatchers.Outcome{}, usage.InvalidFlag("--command", errors.New("cannot be combined with command words"))

	case flags.Command != "":
		toks, err := tokens.Lex(flags.Command)
		if err != nil {
			return flags.Command, dispatchers.Outcome{}, usage.Tokenization(err)
		}
		return flags.Command, tree.SearchTokens(toks, opts), nil

	default:
		return strings.Join(args, " "), tree.SearchTokens(tokens.FromArgs(args), opts), nil
	}
}

// resolve picks the single candidate, asking the user when several match
// and a chooser is available.
func (h *Host) resolve(ctx context.Context, out dispatchers.Outcome) (dispatchers.Candidate, error) {
	cand, err := h.Engine.Resolve(out)
	if !usage.Is(err, usage.ErrAmbiguousInvocation) || h.Choose == nil {
		return cand, err
	}

	tree := h.Engine.Tree()
	options := make([]picker.Option, len(out.Candidates))
	for i, c := range out.Candidates {
		options[i] = picker.Option{
			Label:  dispatchers.UsageLine(tree, c.Node),
			Detail: tree.Node(c.Node).Summary,
		}
	}

	idx, cerr := h.Choose(ctx, options)
	if cerr != nil {
		h.App.Logger.Info("picker: %v", cerr)
		return dispatchers.Candidate{}, err
	}
	return out.Candidates[idx], nil
}

func (h *Host) report(err error) int {
	_, _ = fmt.Fprintf(h.Stderr, "%s %v\n", h.App.Styler.Error("cmdtree:"), err)

	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

func (h *Host) record(ctx context.Context, inv domain.Invocation) {
	if h.App.History == nil {
		return
	}
	if _, err := h.App.History.Record(context.WithoutCancel(ctx), inv); err != nil {
		h.App.Logger.Warn("record invocation: %v", err)
	}
}

// outcomeOf names an invocation result for history: "ok", a usage error
// kind, "canceled" or "error".
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.Kind.String()
	}
	return "error"
}
