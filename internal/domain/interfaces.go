package domain

import "context"

// HistoryStore defines operations for recording and listing invocations.
type HistoryStore interface {
	// Record appends an invocation and returns its id.
	Record(ctx context.Context, inv Invocation) (int64, error)

	// List returns invocations matching the filter, newest first.
	List(ctx context.Context, filter HistoryFilter) ([]Invocation, error)

	// Clear deletes every invocation and returns how many were removed.
	Clear(ctx context.Context) (int64, error)

	// Close closes the store connection.
	Close() error
}

// ConfigProvider defines read access to configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// GetBool returns a boolean configuration value.
	GetBool(key string) bool

	// GetAll returns all configuration values.
	GetAll() map[string]string
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Styler defines text styling operations.
type Styler interface {
	// Enabled returns true if styling is enabled.
	Enabled() bool

	// Success styles text as success.
	Success(text string) string

	// Warning styles text as warning.
	Warning(text string) string

	// Error styles text as error.
	Error(text string) string

	// Info styles text as info.
	Info(text string) string

	// Muted styles text as muted.
	Muted(text string) string

	// Header styles text as header.
	Header(text string) string

	// Highlight styles the selected entry of a list.
	Highlight(text string) string
}

// OutputWriter defines output operations.
type OutputWriter interface {
	// Printf formats and prints to the output.
	Printf(format string, args ...any) (int, error)

	// Println prints a line to the output.
	Println(args ...any) (int, error)

	// Pager displays long content, through a pager on a terminal.
	Pager(content string)
}

// Application represents the main application context with all dependencies.
type Application struct {
	Config  ConfigProvider
	Logger  Logger
	Styler  Styler
	Output  OutputWriter
	History HistoryStore
}
