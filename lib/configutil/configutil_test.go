package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type scrapeConfig struct {
	Listings  []string `json:"listings"`
	UserAgent string   `json:"userAgent"`
}

func writeFile(t *testing.T, path, contents string) {
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
}

func TestReadConfig(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{
		// comments are allowed
		listings: ["https://site/event/index.php?content=list"],
		userAgent: "default",
	}`)

	config, err := ReadConfig[scrapeConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, []string{"https://site/event/index.php?content=list"}, config.Listings)
	require.Equal(t, "default", config.UserAgent)
}

func TestReadConfigLocalOverride(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.json5"), `{
		listings: ["https://site/event/index.php?content=list"],
		userAgent: "default",
	}`)
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{
		userAgent: "local",
	}`)

	config, err := ReadConfig[scrapeConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "local", config.UserAgent)
	require.Equal(t, []string{"https://site/event/index.php?content=list"}, config.Listings)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.local.json5"), `{
		userAgent: "local",
	}`)

	config, err := ReadConfig[scrapeConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "local", config.UserAgent)
}

func TestReadConfigMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")
	writeFile(t, path, `{listings: [`)

	_, err := ReadConfig[scrapeConfig](path)
	require.Error(t, err)
	require.Contains(t, err.Error(), path)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()
	_, err := ReadConfig[scrapeConfig](filepath.Join(dir, "config.json5"))
	require.True(t, os.IsNotExist(err))
}

func TestLocalOverridePath(t *testing.T) {
	require.Equal(t, "config.local.json5", localOverridePath("config.json5"))
	require.Equal(t,
		filepath.Join("a", "b", "telemetry.local.json5"),
		localOverridePath(filepath.Join("a", "b", "telemetry.json5")),
	)
}
