package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func useTempLog(t *testing.T) string {
	t.Helper()
	resetForTest()
	path := filepath.Join(t.TempDir(), LogDirName, LogFileName)
	orig := resolveLogPath
	resolveLogPath = func() (string, error) { return path, nil }
	t.Cleanup(func() {
		resolveLogPath = orig
		Close()
		resetForTest()
	})
	return path
}

func TestInit_Disabled(t *testing.T) {
	path := useTempLog(t)

	if err := Init(false); err != nil {
		t.Fatalf("Init(false) failed: %v", err)
	}
	if Enabled() {
		t.Error("Enabled() should be false")
	}

	Logf("nothing %d", 1)
	Event("dialog.open", map[string]any{"kind": "add"})

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file when disabled, stat err = %v", err)
	}
}

func TestInit_EnabledWritesLines(t *testing.T) {
	path := useTempLog(t)

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}
	Logf("refresh %s", "species")
	Event("dialog.resolve", map[string]any{"state": "closed", "kind": "delete"})
	Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	text := string(content)
	for _, want := range []string{
		"biodex debug log started",
		"refresh species",
		"dialog.resolve kind=delete state=closed",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("log missing %q:\n%s", want, text)
		}
	}
}

func TestInit_TruncatesExistingLog(t *testing.T) {
	path := useTempLog(t)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("stale line\n"), 0600); err != nil {
		t.Fatalf("seed log: %v", err)
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}
	Close()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if strings.Contains(string(content), "stale line") {
		t.Error("expected previous log content to be truncated")
	}
}

func TestClose_Idempotent(t *testing.T) {
	useTempLog(t)
	if err := Init(true); err != nil {
		t.Fatalf("Init(true) failed: %v", err)
	}
	Close()
	Close()
}

func TestFormatEvent(t *testing.T) {
	if got := formatEvent("tick", nil); got != "tick" {
		t.Errorf("formatEvent without fields = %q", got)
	}
	got := formatEvent("submit", map[string]any{"b": 2, "a": "x"})
	if got != "submit a=x b=2" {
		t.Errorf("formatEvent = %q, want sorted keys", got)
	}
}

func TestLogPath(t *testing.T) {
	path, err := LogPath()
	if err != nil {
		t.Fatalf("LogPath() failed: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(LogDirName, LogFileName)) {
		t.Errorf("LogPath() = %q", path)
	}
}

func resetForTest() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		_ = logFile.Close()
		logFile = nil
	}
	enabled = false
	logger = nil
}
