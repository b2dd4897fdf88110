// Package configloader resolves parse options from configuration files.
// It discovers a project-level .gomdparse.yml by searching upward from
// the working directory, overlays an explicit --config path when given,
// and validates the result.
package configloader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/yaklabco/gomdparse/pkg/config"
)

// configFileNames are the project config file names, in preference order.
var configFileNames = []string{".gomdparse.yml", ".gomdparse.yaml"}

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// If set, project config discovery is skipped.
	ExplicitPath string
}

// LoadResult contains the resolved options and metadata.
type LoadResult struct {
	// Options is the final resolved option set.
	Options *config.Options

	// LoadedFrom is the file the options were loaded from, or empty when
	// only defaults apply.
	LoadedFrom string
}

// Load resolves the final options: defaults, overlaid by the discovered
// or explicit config file.
func Load(opts LoadOptions) (*LoadResult, error) {
	result := &LoadResult{Options: config.NewOptions()}

	path := opts.ExplicitPath
	if path == "" {
		workDir := opts.WorkingDir
		if workDir == "" {
			var err error
			workDir, err = os.Getwd()
			if err != nil {
				return nil, fmt.Errorf("get working directory: %w", err)
			}
		}
		path = discover(workDir)
	}

	if path != "" {
		if err := loadFile(path, result.Options); err != nil {
			return nil, err
		}
		result.LoadedFrom = path
	}

	if err := result.Options.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return result, nil
}

// discover walks upward from dir looking for a project config file.
// Returns the empty string when none exists.
func discover(dir string) string {
	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func loadFile(path string, opts *config.Options) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("config file not found: %s", path)
		}
		return fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, opts); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
