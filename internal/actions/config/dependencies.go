package config

import (
	"context"

	"github.com/footprint-tools/cmdtree/internal/actions"
	"github.com/footprint-tools/cmdtree/internal/config"
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/paths"
)

type Deps struct {
	Get    func(string) (string, bool)
	GetAll func() map[string]string
	Set    func(key, value string) error
	Unset  func(key string) (bool, error)
	Path   func() string
}

// DefaultDeps reads through the provider of the running application and
// writes to the file it was loaded from.
func DefaultDeps(ctx context.Context) Deps {
	var cfg domain.ConfigProvider = config.FromMap(nil)
	if app, ok := actions.ApplicationFrom(ctx); ok && app.Config != nil {
		cfg = app.Config
	}

	path := func() string {
		if p, ok := cfg.(interface{ Path() string }); ok && p.Path() != "" {
			return p.Path()
		}
		return paths.ConfigFilePath()
	}

	return Deps{
		Get:    cfg.Get,
		GetAll: cfg.GetAll,
		Set:    func(key, value string) error { return config.Set(path(), key, value) },
		Unset:  func(key string) (bool, error) { return config.Unset(path(), key) },
		Path:   path,
	}
}
