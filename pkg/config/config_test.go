package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1.0, cfg.Companion.PhysicalSizeZ)
	assert.Equal(t, "µm", cfg.Companion.PhysicalSizeZUnit)
	assert.Empty(t, cfg.Companion.FilenameTemplate)
	assert.False(t, cfg.Output.Verbose)
}

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omecompanion.yaml")
	data := `
companion:
  physicalSizeZ: 0.29
  physicalSizeZUnit: nm
  filenameTemplate: slice_{z}.ome.tiff
output:
  verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 0.29, cfg.Companion.PhysicalSizeZ)
	assert.Equal(t, "nm", cfg.Companion.PhysicalSizeZUnit)
	assert.Equal(t, "slice_{z}.ome.tiff", cfg.Companion.FilenameTemplate)
	assert.True(t, cfg.Output.Verbose)
}

func TestLoadConfigPartialFileKeepsOtherDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omecompanion.yaml")
	require.NoError(t, os.WriteFile(path, []byte("companion:\n  physicalSizeZUnit: mm\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "mm", cfg.Companion.PhysicalSizeZUnit)
	assert.Equal(t, 1.0, cfg.Companion.PhysicalSizeZ)
}

func TestLoadConfigRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "omecompanion.yaml")
	require.NoError(t, os.WriteFile(path, []byte("companion: [not a map"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Companion.FilenameTemplate = "z{z}.tiff"
	cfg.Companion.PhysicalSizeZ = 2.5

	path := filepath.Join(t.TempDir(), "sub", "omecompanion.yaml")
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
