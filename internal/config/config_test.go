package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/crumbline/pkg/breadcrumb"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultMatchesBreadcrumbDefaults(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "crumbline", cfg.App.Name)
	assert.Equal(t, breadcrumb.DefaultConfig(), cfg.Segment)
	assert.Equal(t, "text", cfg.Render.Output)
	assert.Equal(t, " > ", cfg.Render.SoftDivider)
	assert.Zero(t, cfg.Render.MaxWidth)
	assert.Equal(t, "250", cfg.Render.Colors.Contents)
	assert.Equal(t, "240", cfg.Render.Colors.Divider)
	require.NoError(t, cfg.Validate())
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	*a.Segment.Ellipsis = "changed"

	b, err := Default()
	require.NoError(t, err)
	assert.Equal(t, breadcrumb.DefaultEllipsis, *b.Segment.Ellipsis)
}

func TestDefaultConfigYAMLIsCopy(t *testing.T) {
	raw := DefaultConfigYAML()
	require.NotEmpty(t, raw)
	raw[0] = 'X'
	assert.NotEqual(t, raw[0], DefaultConfigYAML()[0])
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	def, err := Default()
	require.NoError(t, err)
	assert.Equal(t, def, cfg)
}

func TestLoadMergesUserOverrides(t *testing.T) {
	path := writeConfig(t, `segment:
  dir_shorten_len: 1
  dir_limit_depth: 2
  ellipsis: ""
render:
  output: json
  colors:
    divider: "#ff0000"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Segment.ShortenHome, "unset keys keep their defaults")
	assert.Equal(t, 1, cfg.Segment.DirShortenLen)
	assert.Equal(t, 2, cfg.Segment.DirLimitDepth)
	require.NotNil(t, cfg.Segment.Ellipsis)
	assert.Empty(t, *cfg.Segment.Ellipsis)
	assert.Equal(t, "json", cfg.Render.Output)
	assert.Equal(t, " > ", cfg.Render.SoftDivider)
	assert.Equal(t, "250", cfg.Render.Colors.Contents)
	assert.Equal(t, "#ff0000", cfg.Render.Colors.Divider)
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Render.Output)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		errMsg string
	}{
		{name: "unknown key", body: "segment:\n  shorten: true\n", errMsg: "field shorten not found"},
		{name: "wrong type", body: "segment:\n  dir_shorten_len: many\n", errMsg: "decode config file"},
		{name: "negative limit", body: "segment:\n  dir_limit_depth: -1\n", errMsg: "dir_limit_depth must be non-negative"},
		{name: "negative width", body: "render:\n  max_width: -3\n", errMsg: "max_width must be -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadedConfigRoundTripsThroughYAML(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	again, err := Load(writeConfig(t, string(out)))
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestResolvePath(t *testing.T) {
	t.Run("explicit wins", func(t *testing.T) {
		assert.Equal(t, "/etc/x.yaml", ResolvePath("/etc/x.yaml"))
	})

	t.Run("xdg file present", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", dir)
		path := filepath.Join(dir, "crumbline", "config.yaml")
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))
		assert.Equal(t, path, ResolvePath(""))
	})

	t.Run("xdg file missing", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		assert.Empty(t, ResolvePath(""))
	})
}
