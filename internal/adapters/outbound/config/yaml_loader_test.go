package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/abdidvp/smartreview/internal/adapters/outbound/config"
	"github.com/abdidvp/smartreview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, appconfig.FileName), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
exclude_paths:
  - build/**
  - "**/*_pb2.py"
workers: 8
analyzer: basic
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"build/**", "**/*_pb2.py"}, cfg.ExcludePaths)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, domain.AnalyzerBasic, cfg.Analyzer)
}

func TestYAMLLoader_PartialFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "exclude_paths: [migrations]\n")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"migrations"}, cfg.ExcludePaths)
	assert.Equal(t, domain.DefaultWorkers, cfg.Workers)
	assert.Equal(t, domain.AnalyzerAuto, cfg.Analyzer)
}

func TestYAMLLoader_EmptyFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_FilePathUsesItsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "workers: 2\n")
	src := filepath.Join(dir, "app.py")
	require.NoError(t, os.WriteFile(src, []byte("x = 1\n"), 0644))

	cfg, err := appconfig.New().Load(src)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .smartreview.yaml")
}

func TestYAMLLoader_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"negative workers", "workers: -3\n", "workers must be positive"},
		{"unknown analyzer", "analyzer: radon\n", `unknown analyzer "radon"`},
		{"bad glob", "exclude_paths: [\"src/[abc\"]\n", "invalid exclude pattern"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := appconfig.New().Load(dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid .smartreview.yaml")
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
