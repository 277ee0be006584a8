package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/smartreview/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project configuration file looked up in the review root.
const FileName = ".smartreview.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .smartreview.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .smartreview.yaml from rootPath. A file path is resolved to its
// directory. Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(rootPath string) (domain.ProjectConfig, error) {
	if info, err := os.Stat(rootPath); err == nil && !info.IsDir() {
		rootPath = filepath.Dir(rootPath)
	}

	data, err := os.ReadFile(filepath.Join(rootPath, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before defaults are filled so typos in the raw input surface.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg.WithDefaults(), nil
}
