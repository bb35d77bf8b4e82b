package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rook-computer/checkicons/internal/config"
)

func TestRunWritesIcons(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 0 {
		t.Fatalf("exit = %d, stderr = %q", code, stderr.String())
	}
	for _, name := range []string{"icon16.png", "icon48.png", "icon128.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("%s missing: %v", name, err)
		}
	}
	if !strings.HasPrefix(stdout.String(), "Created icon16.png\n") {
		t.Errorf("stdout = %q", stdout.String())
	}
}

func TestRunFailureClosesDebugLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "debug.log")
	t.Setenv(config.EnvDebugLog, logPath)

	// icon16.png as a directory makes the first write fail.
	work := filepath.Join(dir, "work")
	if err := os.MkdirAll(filepath.Join(work, "icon16.png"), 0755); err != nil {
		t.Fatal(err)
	}
	chdir(t, work)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"-debug"}, &stdout, &stderr); code != 1 {
		t.Fatalf("exit = %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "icon generation failed") {
		t.Errorf("stderr = %q", stderr.String())
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "[ERROR] app: render size 16") {
		t.Errorf("debug log = %q", data)
	}
}

func TestRunInvalidEnv(t *testing.T) {
	t.Setenv(config.EnvDebug, "sometimes")
	var stdout, stderr bytes.Buffer
	if code := run(nil, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

func TestRunUnknownFlag(t *testing.T) {
	chdir(t, t.TempDir())
	var stdout, stderr bytes.Buffer
	if code := run([]string{"-size", "32"}, &stdout, &stderr); code != 2 {
		t.Fatalf("exit = %d, want 2", code)
	}
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
