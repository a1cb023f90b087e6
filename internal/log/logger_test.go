package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLogger_BasicLogging(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	logger, err := New(logPath, LevelDebug)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}

	logger.Debug("debug %s", "message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")
	_ = logger.Close()

	logContent := readLog(t, logPath)

	for _, want := range []string{"debug message", "info message", "warning message", "error message", "cmdtree"} {
		if !strings.Contains(logContent, want) {
			t.Errorf("%q not found in log:\n%s", want, logContent)
		}
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below warn should have been filtered:\n%s", out)
	}
	if !strings.Contains(out, "warning message") || !strings.Contains(out, "error message") {
		t.Errorf("warn and error messages missing:\n%s", out)
	}

	logger.SetLevel(LevelDebug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("SetLevel(LevelDebug) did not lower the threshold")
	}
}

func TestLogger_FilePermissions(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	if err := os.WriteFile(logPath, nil, 0644); err != nil {
		t.Fatalf("Failed to seed log file: %v", err)
	}

	logger, err := New(logPath, LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	logger.Info("test message")
	_ = logger.Close()

	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Mode().Perm() != os.FileMode(0600) {
		t.Errorf("Log file permissions = %o, want %o", info.Mode().Perm(), 0600)
	}
}

func TestLogger_DirectoryPermissions(t *testing.T) {
	tmpDir := t.TempDir()
	logDir := filepath.Join(tmpDir, "logs")

	logger, err := New(filepath.Join(logDir, "test.log"), LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Close() }()

	info, err := os.Stat(logDir)
	if err != nil {
		t.Fatalf("Failed to stat log directory: %v", err)
	}
	if expected := os.FileMode(0700) | os.ModeDir; info.Mode() != expected {
		t.Errorf("Log directory permissions = %o, want %o", info.Mode(), expected)
	}
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	for _, msg := range []string{"first message", "second message"} {
		logger, err := New(logPath, LevelInfo)
		if err != nil {
			t.Fatalf("Failed to create logger: %v", err)
		}
		logger.Info("%s", msg)
		_ = logger.Close()
	}

	logContent := readLog(t, logPath)
	if !strings.Contains(logContent, "first message") || !strings.Contains(logContent, "second message") {
		t.Errorf("expected both messages, got:\n%s", logContent)
	}
}

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo)

	logger.Info("enabled message")
	logger.SetEnabled(false)
	logger.Info("disabled message")
	logger.SetEnabled(true)
	logger.Info("enabled again")

	out := buf.String()
	if !strings.Contains(out, "enabled message") {
		t.Error("First message not found")
	}
	if strings.Contains(out, "disabled message") {
		t.Error("Disabled message should not be present")
	}
	if !strings.Contains(out, "enabled again") {
		t.Error("Third message not found")
	}
}

func TestLogger_AfterClose(t *testing.T) {
	logger, err := New(filepath.Join(t.TempDir(), "test.log"), LevelInfo)
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	_ = logger.Close()

	// Writing after close must not panic.
	logger.Error("late message")
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() = %v, want nil", err)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"verbose", LevelWarn},
		{"", LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestLogger_NilReceiver(t *testing.T) {
	var logger *Logger
	logger.Info("ignored")
	logger.SetEnabled(true)
	logger.SetLevel(LevelDebug)
	if err := logger.Close(); err != nil {
		t.Errorf("nil Close() = %v", err)
	}
}

func TestNew_MkdirAllError(t *testing.T) {
	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "afile")

	f, err := os.Create(filePath)
	if err != nil {
		t.Fatalf("Failed to create file: %v", err)
	}
	_ = f.Close()

	// A regular file cannot act as a directory.
	if _, err := New(filepath.Join(filePath, "subdir", "test.log"), LevelInfo); err == nil {
		t.Error("New() should fail when path contains a file as directory")
	}
}
