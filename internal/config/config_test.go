package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/markdown"
	"github.com/XieGR365/xlsx2md/pkg/xlsx2md/parser"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, used, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Empty(t, used)
	assert.Equal(t, Config{
		Log:         LogConfig{Level: "warn", Format: "text"},
		EmptyMarker: "Empty sheet",
		XLSCharset:  "utf-8",
	}, cfg)
}

func TestDefaultsMatchRenderer(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	assert.Equal(t, markdown.DefaultEmptyMarker, v.GetString("empty_marker"))
	assert.Equal(t, parser.DefaultCharset, v.GetString("xls_charset"))
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", `
log:
  level: debug
  format: json
empty_marker: 空表
`)

	cfg, used, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "空表", cfg.EmptyMarker)
	assert.Equal(t, "utf-8", cfg.XLSCharset)
}

func TestLoadSearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "xlsx2md.yaml", "xls_charset: windows-1251\n")
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())

	cfg, used, err := Load(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, "xlsx2md.yaml", filepath.Base(used))
	assert.Equal(t, "windows-1251", cfg.XLSCharset)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "xlsx2md.yaml", "log:\n  level: info\nempty_marker: from-file\n")
	t.Setenv("XLSX2MD_LOG_LEVEL", "error")
	t.Setenv("XLSX2MD_EMPTY_MARKER", "from-env")

	cfg, _, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "from-env", cfg.EmptyMarker)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, _, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config")
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "log: [unterminated\n")

	_, _, err := Load(viper.New(), path)
	require.Error(t, err)
}

func TestDump(t *testing.T) {
	cfg := Config{
		Log:         LogConfig{Level: "info", Format: "text"},
		EmptyMarker: "none",
		XLSCharset:  "utf-8",
	}

	out, err := cfg.Dump()
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, cfg, back)
	assert.Contains(t, out, "empty_marker: none")
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
