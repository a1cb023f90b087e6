package completions

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	rootFlagsMu sync.RWMutex
	rootFlags   []FlagInfo
)

// RegisterRootFlags stores the host flags accepted before the first command
// word. They are completed alongside the root's subcommands.
func RegisterRootFlags(flags []FlagInfo) {
	rootFlagsMu.Lock()
	defer rootFlagsMu.Unlock()
	rootFlags = append([]FlagInfo(nil), flags...)
}

// RootFlags returns the registered host flags.
func RootFlags() []FlagInfo {
	rootFlagsMu.RLock()
	defer rootFlagsMu.RUnlock()
	return append([]FlagInfo(nil), rootFlags...)
}

// BinaryPath returns the resolved path of the running executable, or
// fallback when it cannot be determined.
func BinaryPath(fallback string) string {
	exe, err := os.Executable()
	if err != nil {
		return fallback
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}
