package completions

import (
	"context"
	"os"
	"path/filepath"

	"github.com/footprint-tools/cmdtree/internal/actions"
	"github.com/footprint-tools/cmdtree/internal/completions"
	"github.com/footprint-tools/cmdtree/internal/dispatchers"
)

type Deps struct {
	Tree      *dispatchers.Tree
	RootFlags []completions.FlagInfo
	Binary    string
	Home      string
	Detect    func() completions.Shell
	WriteFile func(path string, data []byte) error
}

func DefaultDeps(ctx context.Context) Deps {
	deps := Deps{
		RootFlags: completions.RootFlags(),
		Binary:    "cmdtree",
		Detect:    completions.RunningShell,
		WriteFile: writeFile,
	}
	if tree, ok := actions.TreeFrom(ctx); ok {
		deps.Tree = tree
		deps.Binary = completions.BinaryPath(tree.Name())
	}
	if home, err := os.UserHomeDir(); err == nil {
		deps.Home = home
	}
	return deps
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
