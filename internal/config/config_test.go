package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultHasPythonTarget(t *testing.T) {
	cfg := Default()
	if len(cfg.Compile.Targets) != 1 || cfg.Compile.Targets[0] != "python" {
		t.Fatalf("unexpected default targets: %v", cfg.Compile.Targets)
	}
}

func TestLoadFallsBackToDefaultWhenMissing(t *testing.T) {
	dir := t.TempDir()
	cfg, ok, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false when icl.toml is absent")
	}
	if len(cfg.Compile.Targets) == 0 {
		t.Fatal("expected default targets to be populated")
	}
}

func TestLoadDecodesICLToml(t *testing.T) {
	dir := t.TempDir()
	content := "[compile]\ntargets = [\"python\", \"rust\"]\noptimize = true\n\n[plugins]\npaths = [\"./plugins\"]\n"
	if err := os.WriteFile(filepath.Join(dir, "icl.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg, ok, err := Load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected ok=true when icl.toml is present")
	}
	if len(cfg.Compile.Targets) != 2 || cfg.Compile.Targets[0] != "python" || cfg.Compile.Targets[1] != "rust" {
		t.Fatalf("unexpected targets: %v", cfg.Compile.Targets)
	}
	if !cfg.Compile.Optimize {
		t.Fatal("expected optimize=true")
	}
	if len(cfg.Plugins.Paths) != 1 || cfg.Plugins.Paths[0] != "./plugins" {
		t.Fatalf("unexpected plugin paths: %v", cfg.Plugins.Paths)
	}
}

func TestLoadRejectsEmptyTargets(t *testing.T) {
	dir := t.TempDir()
	content := "[compile]\ntargets = []\n"
	if err := os.WriteFile(filepath.Join(dir, "icl.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("expected an error for empty targets")
	}
}
