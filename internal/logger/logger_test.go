package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestInit_RecordsPath(t *testing.T) {
	logPath := setupTestLogger(t)

	if Path() != logPath {
		t.Errorf("Path() = %q, want %q", Path(), logPath)
	}
	if !strings.Contains(readLog(t, logPath), "Logger initialized") {
		t.Error("log should record initialization")
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	if err := Init("/nonexistent/directory/notedeck.log"); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestLevels(t *testing.T) {
	logPath := setupTestLogger(t)

	Debug("hidden-debug-marker")
	Info("info-marker %d", 1)
	Warn("warn-marker")
	Error("error-marker")

	content := readLog(t, logPath)
	if strings.Contains(content, "hidden-debug-marker") {
		t.Error("debug message should be filtered at info level")
	}
	for _, want := range []string{"info-marker 1", "warn-marker", "error-marker"} {
		if !strings.Contains(content, want) {
			t.Errorf("log should contain %q", want)
		}
	}

	SetDebug(true)
	Debug("visible-debug-marker")
	if !strings.Contains(readLog(t, logPath), "visible-debug-marker") {
		t.Error("debug message should be written after SetDebug(true)")
	}
}

func TestComponentLogger(t *testing.T) {
	logPath := setupTestLogger(t)

	ComponentLogger("surface").Info("surface created", "instance", "abc")

	content := readLog(t, logPath)
	if !strings.Contains(content, "component=surface") {
		t.Errorf("expected component attribute, got: %s", content)
	}
	if !strings.Contains(content, "instance=abc") {
		t.Errorf("expected instance attribute, got: %s", content)
	}
}

func TestClose_StopsWriting(t *testing.T) {
	logPath := setupTestLogger(t)

	Close()
	Info("after-close-marker")

	if strings.Contains(readLog(t, logPath), "after-close-marker") {
		t.Error("nothing should be written after Close")
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				Info("concurrent test %d-%d", n, j)
			}
		}(i)
	}
	wg.Wait()
}
