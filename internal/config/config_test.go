package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every XDG lookup at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	return filepath.Join(root, "config", appName)
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, defaultWorkspaces, mgr.viper.GetInt("layout.workspaces"))
	assert.InDelta(t, defaultColumnWidth, mgr.viper.GetFloat64("layout.default_column_width"), 0)
	assert.InDelta(t, defaultScrollStep, mgr.viper.GetFloat64("layout.scroll_step"), 0)
	assert.InDelta(t, 0, mgr.viper.GetFloat64("viewport.padding.left"), 0)
	assert.Equal(t, "info", mgr.viper.GetString("logging.level"))
	assert.Equal(t, "#f5a97f", mgr.viper.GetString("appearance.accent_color"))
}

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, Validate(DefaultConfig()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		key    string
	}{
		{"zero workspaces", func(c *Config) { c.Layout.Workspaces = 0 }, "layout.workspaces"},
		{"negative default width", func(c *Config) { c.Layout.DefaultColumnWidth = -1 }, "layout.default_column_width"},
		{"max below min", func(c *Config) { c.Layout.MaxColumnWidth = 5 }, "layout.max_column_width"},
		{"default outside bounds", func(c *Config) { c.Layout.DefaultColumnWidth = 150 }, "layout.default_column_width"},
		{"zero resize step", func(c *Config) { c.Layout.ResizeStep = 0 }, "layout.resize_step"},
		{"zero scroll step", func(c *Config) { c.Layout.ScrollStep = 0 }, "layout.scroll_step"},
		{"negative padding", func(c *Config) { c.Viewport.Padding.Top = -2 }, "viewport.padding.top"},
		{"bad color", func(c *Config) { c.Appearance.BorderColor = "blue" }, "appearance.border_color"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"zero max size", func(c *Config) { c.Logging.MaxSize = 0 }, "logging.max_size"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate_AggregatesErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.Workspaces = 0
	cfg.Logging.Format = "xml"

	err := Validate(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.workspaces")
	assert.Contains(t, err.Error(), "logging.format")
	assert.Error(t, Validate(nil))
}

func TestLoad_CreatesDefaultConfig(t *testing.T) {
	dir := isolate(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, filepath.Join(dir, "config.toml"))
	assert.FileExists(t, filepath.Join(dir, "config.schema.json"))

	cfg := mgr.Get()
	assert.Equal(t, defaultWorkspaces, cfg.Layout.Workspaces)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.NotEmpty(t, cfg.Logging.LogDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("CANDLE_LAYOUT_WORKSPACES", "4")
	t.Setenv("CANDLE_LOG_LEVEL", "DEBUG")

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.Equal(t, 4, cfg.Layout.Workspaces)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(dir, dirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[layout]\nworkspaces = 0\n"), filePerm))

	mgr, err := NewManager()
	require.NoError(t, err)
	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layout.workspaces")
}

func TestSave_RoundTrip(t *testing.T) {
	isolate(t)

	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Layout.Workspaces = 3
	cfg.Viewport.Padding.Left = 8
	require.NoError(t, mgr.Save(cfg))
	assert.Equal(t, 3, mgr.Get().Layout.Workspaces)

	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())
	assert.Equal(t, 3, reloaded.Get().Layout.Workspaces)
	assert.InDelta(t, 8, reloaded.Get().Viewport.Padding.Left, 0)
}

func TestSave_RejectsInvalid(t *testing.T) {
	isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Layout.Workspaces = -1
	assert.Error(t, mgr.Save(cfg))
}

func TestConfigChange_ReloadsAndNotifies(t *testing.T) {
	dir := isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var got *Config
	mgr.OnConfigChange(func(c *Config) { got = c })

	cfg := DefaultConfig()
	cfg.Layout.Workspaces = 2
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, WriteConfigOrdered(cfg, path))

	mgr.handleConfigChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	require.NotNil(t, got)
	assert.Equal(t, 2, got.Layout.Workspaces)
	assert.Equal(t, 2, mgr.Get().Layout.Workspaces)
}

func TestConfigChange_SkipsChmodAndUnchanged(t *testing.T) {
	dir := isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	calls := 0
	mgr.OnConfigChange(func(*Config) { calls++ })

	cfg := DefaultConfig()
	cfg.Layout.Workspaces = 4
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, WriteConfigOrdered(cfg, path))

	mgr.handleConfigChange(fsnotify.Event{Name: path, Op: fsnotify.Chmod})
	assert.Equal(t, 0, calls)
	assert.Equal(t, defaultWorkspaces, mgr.Get().Layout.Workspaces)

	mgr.handleConfigChange(fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 4, mgr.Get().Layout.Workspaces)

	mgr.handleConfigChange(fsnotify.Event{Name: path, Op: fsnotify.Write})
	assert.Equal(t, 1, calls)
}

func TestConfigChange_InvalidKeepsPrevious(t *testing.T) {
	dir := isolate(t)
	mgr, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	called := false
	mgr.OnConfigChange(func(*Config) { called = true })

	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[layout]\nworkspaces = 0\n"), filePerm))
	mgr.handleConfigChange(fsnotify.Event{Name: path, Op: fsnotify.Write})

	assert.False(t, called)
	assert.Equal(t, defaultWorkspaces, mgr.Get().Layout.Workspaces)
}

func TestEncodeConfig_TableOrder(t *testing.T) {
	data, err := EncodeConfig(DefaultConfig())
	require.NoError(t, err)
	out := string(data)

	order := []string{"[layout]", "[viewport]", "[viewport.padding]", "[appearance]", "[logging]"}
	last := -1
	for _, header := range order {
		idx := strings.Index(out, header)
		require.GreaterOrEqual(t, idx, 0, "missing %s", header)
		assert.Greater(t, idx, last, "%s out of order", header)
		last = idx
	}
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.False(t, strings.HasSuffix(out, "\n\n"))
}

func TestOrderTOMLTables(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "known tables by rank",
			in:   "[logging]\nlevel = 'info'\n\n[layout]\nworkspaces = 10\n",
			want: "[layout]\nworkspaces = 10\n\n[logging]\nlevel = 'info'\n",
		},
		{
			name: "unknown tables last and sorted",
			in:   "[zeta]\nx = 1\n[alpha]\ny = 2\n[viewport]\n",
			want: "[viewport]\n\n[alpha]\ny = 2\n\n[zeta]\nx = 1\n",
		},
		{
			name: "nested table stays with parent",
			in:   "[viewport]\n  [viewport.padding]\n  top = 1.0\n[layout]\n",
			want: "[layout]\n\n[viewport]\n\n  [viewport.padding]\n  top = 1.0\n",
		},
		{
			name: "top level keys first",
			in:   "version = 1\n[layout]\nworkspaces = 3\n",
			want: "version = 1\n\n[layout]\nworkspaces = 3\n",
		},
		{name: "empty", in: "\n\n", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, orderTOMLTables(tt.in))
		})
	}
}

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, "Candle Configuration", schema["title"])
	assert.Contains(t, string(data), "default_column_width")
	assert.Contains(t, string(data), "scroll_step")
}

func TestXDGPaths(t *testing.T) {
	root := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(root, "state"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(root, "data"))

	logDir, err := GetLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "state", appName, "logs"), logDir)

	manDir, err := GetManDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "data", "man", "man1"), manDir)

	schema, err := GetSchemaFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "config", appName), filepath.Dir(schema))
}

func TestXDGPaths_DevMode(t *testing.T) {
	root := t.TempDir()
	t.Chdir(root)
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)
	dev := filepath.Join(cwd, ".dev", appName)
	assert.Equal(t, dev, dirs.ConfigHome)
	assert.Equal(t, dev, dirs.StateHome)
	assert.Equal(t, filepath.Join(dev, "config.toml"), dirs.ConfigFile())
	assert.Equal(t, filepath.Join(dev, "logs"), dirs.LogDir())
	assert.Equal(t, filepath.Join(dev, "share", "man", "man1"), dirs.ManDir())
}
