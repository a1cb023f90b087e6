package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `config` output
	Hidden      bool   // Hidden keys are not shown in help or config output
}

// ConfigKeys defines all available configuration keys.
// This is the single source of truth for configuration.
var ConfigKeys = []ConfigKey{
	// Matching
	{
		Name:        "case_insensitive",
		Default:     "false",
		Description: "Compare command keys and parameter names ignoring case (true/false)",
		Section:     "Matching",
	},
	// Display
	{
		Name:        "color",
		Default:     "true",
		Description: "Colorize output when writing to a terminal (true/false)",
		Section:     "Display",
	},
	{
		Name:        "theme",
		Default:     "default",
		Description: "Color theme: default, neon, mono, ocean (optionally suffixed -dark or -light)",
		Section:     "Display",
	},
	{
		Name:        "display_date",
		Default:     "Jan 02",
		Description: "Date format in history output: mm/dd/yyyy, yyyy-mm-dd, dd/mm/yyyy or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "display_time",
		Default:     "24h",
		Description: "Time format in history output: 12h or 24h",
		Section:     "Display",
	},
	{
		Name:        "pager",
		Default:     "less -FRSX",
		Description: "Pager for help and history output; \"cat\" disables it",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "log_level",
		Default:     "warn",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	{
		Name:        "log_file",
		Default:     "", // Set dynamically to paths.LogFilePath()
		Description: "Path of the log file; empty logs to stderr",
		Section:     "Logging",
	},
	// History
	{
		Name:        "history_enabled",
		Default:     "true",
		Description: "Record every invocation in the history database (true/false)",
		Section:     "History",
	},
	{
		Name:        "history_path",
		Default:     "", // Set dynamically to paths.HistoryDBPath()
		Description: "Path of the history database",
		Section:     "History",
	},
}

// configKeyMap is a lookup map for configuration keys.
var configKeyMap map[string]ConfigKey

func init() {
	configKeyMap = make(map[string]ConfigKey, len(ConfigKeys))
	for _, key := range ConfigKeys {
		configKeyMap[key.Name] = key
	}
}

// GetConfigKey returns the ConfigKey for a given name.
func GetConfigKey(name string) (ConfigKey, bool) {
	key, ok := configKeyMap[name]
	return key, ok
}

// IsValidConfigKey checks if a key name is valid.
func IsValidConfigKey(name string) bool {
	_, ok := configKeyMap[name]
	return ok
}

// VisibleConfigKeys returns all non-hidden configuration keys.
func VisibleConfigKeys() []ConfigKey {
	var visible []ConfigKey
	for _, key := range ConfigKeys {
		if !key.Hidden {
			visible = append(visible, key)
		}
	}
	return visible
}

// ConfigSections returns the ordered list of section names.
func ConfigSections() []string {
	return []string{"Matching", "Display", "Logging", "History"}
}
