package config

import (
	"github.com/footprint-tools/cmdtree/internal/domain"
	"github.com/footprint-tools/cmdtree/internal/paths"
)

// Dynamic defaults, computed when a configuration is loaded.
var dynamicDefaults = map[string]func() string{
	"log_file":     paths.LogFilePath,
	"history_path": paths.HistoryDBPath,
}

// Defaults returns the default value of every configuration key.
func Defaults() map[string]string {
	result := make(map[string]string, len(domain.ConfigKeys))
	for _, key := range domain.ConfigKeys {
		if fn, ok := dynamicDefaults[key.Name]; ok {
			result[key.Name] = fn()
			continue
		}
		result[key.Name] = key.Default
	}
	return result
}
