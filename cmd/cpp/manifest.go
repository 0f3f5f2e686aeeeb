package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ucfjimg/cpp/internal/driver"
)

// cpp.toml lets a project pin its include path and predefines next to the
// sources instead of repeating -I/-D on every invocation. Manifest
// directories are searched before the ones given by flags.
type manifestConfig struct {
	Preprocess preprocessConfig `toml:"preprocess"`
}

type preprocessConfig struct {
	Include []string `toml:"include"`
	Define  []string `toml:"define"`
}

// findCppToml walks from startDir toward the filesystem root looking for
// a cpp.toml.
func findCppToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "cpp.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*manifestConfig, error) {
	path, ok, err := findCppToml(startDir)
	if err != nil || !ok {
		return nil, err
	}
	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	// include dirs in the manifest are relative to the manifest itself
	base := filepath.Dir(path)
	for i, dir := range cfg.Preprocess.Include {
		if !filepath.IsAbs(dir) {
			cfg.Preprocess.Include[i] = filepath.Join(base, dir)
		}
	}
	return &cfg, nil
}

// buildOptions merges the manifest (if any) near the first input with the
// -I and -D flags.
func buildOptions(cmd *cobra.Command, firstInput string) (driver.Options, error) {
	var opts driver.Options

	cfg, err := loadManifest(filepath.Dir(firstInput))
	if err != nil {
		return opts, err
	}
	if cfg != nil {
		opts.IncludeDirs = append(opts.IncludeDirs, cfg.Preprocess.Include...)
		opts.Defines = append(opts.Defines, cfg.Preprocess.Define...)
	}

	flagIncludes, err := cmd.Root().PersistentFlags().GetStringArray("include")
	if err != nil {
		return opts, err
	}
	flagDefines, err := cmd.Root().PersistentFlags().GetStringArray("define")
	if err != nil {
		return opts, err
	}
	opts.IncludeDirs = append(opts.IncludeDirs, flagIncludes...)
	opts.Defines = append(opts.Defines, flagDefines...)
	return opts, nil
}
