package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Luxem4ik23/debgraph/pkg/apt"
	"github.com/Luxem4ik23/debgraph/pkg/errors"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") error = %v", err)
	}

	if len(cfg.Index.Mirrors) != len(apt.DefaultMirrors) {
		t.Errorf("mirrors = %d entries, want %d", len(cfg.Index.Mirrors), len(apt.DefaultMirrors))
	}
	if got := cfg.timeout(); got != apt.DefaultTimeout {
		t.Errorf("timeout() = %v, want %v", got, apt.DefaultTimeout)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debgraph.toml")
	writeFile(t, path, `
[index]
mirrors = ["http://mirror.example.com/Packages.gz"]
timeout_seconds = 5
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if len(cfg.Index.Mirrors) != 1 || cfg.Index.Mirrors[0] != "http://mirror.example.com/Packages.gz" {
		t.Errorf("mirrors = %v, want the configured mirror", cfg.Index.Mirrors)
	}
	if got := cfg.timeout(); got != 5*time.Second {
		t.Errorf("timeout() = %v, want 5s", got)
	}
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debgraph.toml")
	writeFile(t, path, `
[index]
timeout_seconds = 10
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if len(cfg.Index.Mirrors) != len(apt.DefaultMirrors) {
		t.Errorf("mirrors = %v, want defaults for a file without mirrors", cfg.Index.Mirrors)
	}
	if got := cfg.timeout(); got != 10*time.Second {
		t.Errorf("timeout() = %v, want 10s", got)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("loadConfig() error = %v, want INVALID_INPUT", err)
	}
}

func TestLoadConfigMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debgraph.toml")
	writeFile(t, path, "[index\nmirrors = not toml")

	_, err := loadConfig(path)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("loadConfig() error = %v, want INVALID_INPUT", err)
	}
}
