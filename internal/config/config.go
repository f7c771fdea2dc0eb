// Package config loads icl.toml, the project-level default configuration
// consulted by the CLI's compile subcommand when it isn't given explicit
// flags: default compile targets and the optimize flag. The [plugins] table
// is decoded but no component loads packs from it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the decoded shape of icl.toml.
type Config struct {
	Compile CompileConfig `toml:"compile"`
	Plugins PluginsConfig `toml:"plugins"`
}

// CompileConfig mirrors the [compile] table: the default target list and
// whether Intent Graph optimization runs by default.
type CompileConfig struct {
	Targets  []string `toml:"targets"`
	Optimize bool     `toml:"optimize"`
}

// PluginsConfig mirrors the [plugins] table: a list of pack plugin paths.
// The paths are decoded only; no pack is loaded from them.
type PluginsConfig struct {
	Paths []string `toml:"paths"`
}

// Default returns the configuration used when no icl.toml is found.
func Default() Config {
	return Config{Compile: CompileConfig{Targets: []string{"python"}, Optimize: false}}
}

// FindICLToml walks up from startDir looking for icl.toml.
func FindICLToml(startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "icl.toml")
		if _, statErr := os.Stat(candidate); statErr == nil {
			return candidate, true, nil
		} else if !errors.Is(statErr, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, statErr)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load locates and decodes icl.toml starting from startDir. If no icl.toml
// is found, Default is returned with ok=false.
func Load(startDir string) (cfg Config, ok bool, err error) {
	path, found, err := FindICLToml(startDir)
	if err != nil {
		return Config{}, false, err
	}
	if !found {
		return Default(), false, nil
	}
	cfg, err = decode(path)
	if err != nil {
		return Config{}, false, err
	}
	return cfg, true, nil
}

func decode(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if len(cfg.Compile.Targets) == 0 {
		return Config{}, fmt.Errorf("%s: [compile].targets must not be empty", path)
	}
	for _, t := range cfg.Compile.Targets {
		if strings.TrimSpace(t) == "" {
			return Config{}, fmt.Errorf("%s: [compile].targets entries must not be blank", path)
		}
	}
	return cfg, nil
}
