package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/footprint-tools/cmdtree/internal/domain"
)

func List(ctx context.Context, args []any) (any, error) {
	return list(args, DefaultDeps(ctx))
}

// list prints visible keys grouped by section, one key=value per line.
func list(_ []any, deps Deps) (any, error) {
	values := deps.GetAll()

	var b strings.Builder
	for i, section := range domain.ConfigSections() {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "# %s\n", section)
		for _, key := range domain.VisibleConfigKeys() {
			if key.Section != section {
				continue
			}
			fmt.Fprintf(&b, "%s=%s\n", key.Name, values[key.Name])
		}
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}
