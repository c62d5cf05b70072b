package styles_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/candle/internal/cli/styles"
	"github.com/bnema/candle/internal/config"
	"github.com/bnema/candle/internal/domain/build"
	"github.com/bnema/candle/internal/domain/entity"
)

func TestNewTheme_UsesConfigColors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.AccentColor = "#010203"

	theme := styles.NewTheme(cfg)
	assert.Equal(t, "#010203", string(theme.Accent))

	fallback := styles.NewTheme(nil)
	assert.Equal(t, config.DefaultConfig().Appearance.AccentColor, string(fallback.Accent))
}

func TestNewThemeFromAppearance_FillsEmptyColors(t *testing.T) {
	def := config.DefaultConfig().Appearance
	theme := styles.NewThemeFromAppearance(config.AppearanceConfig{BorderColor: "#112233"})

	assert.Equal(t, "#112233", string(theme.Border))
	assert.Equal(t, def.AccentColor, string(theme.Accent))
	assert.Equal(t, def.TextColor, string(theme.Text))
	assert.Equal(t, def.MutedColor, string(theme.Muted))
}

func TestConfigRenderer(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(config.DefaultConfig()))

	require.Contains(t, r.RenderConfigPath("/tmp/candle/config.toml", false), "not created yet")
	require.Contains(t, r.RenderCreated("/tmp/candle/config.toml"), "config.toml")
	require.Contains(t, r.RenderExists("/tmp/candle/config.toml"), "--force")
	require.Contains(t, r.RenderError(errors.New("boom")), "boom")
}

func TestAboutRenderer(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(nil))
	out := r.Render(build.Info{Version: "v1.2.3", Commit: "abc123", GoVersion: "go1.25"})

	assert.Contains(t, out, "v1.2.3")
	assert.Contains(t, out, "abc123")
	assert.Contains(t, out, build.RepoURL())
	assert.NotContains(t, out, "dev build")

	dev := r.Render(build.Info{Version: "dev", Commit: "unknown"})
	assert.Contains(t, dev, "dev build")
}

func testSnapshot(t *testing.T) *entity.LayoutSnapshot {
	t.Helper()
	lm, err := entity.NewLayoutManager(2, entity.WithKeyGenerator(func() entity.WinKey { return "only" }))
	require.NoError(t, err)
	_, err = lm.AddWin(entity.NewContent(nil), 40)
	require.NoError(t, err)
	lm.CalcSizeInfo()
	return lm.Snapshot()
}

func TestLayoutRenderer_Table(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme(nil))

	out := r.RenderTable(testSnapshot(t))
	assert.Contains(t, out, "Key")
	assert.Contains(t, out, "only")
	assert.Contains(t, out, "40")

	empty, err := entity.NewLayoutManager(1)
	require.NoError(t, err)
	assert.Contains(t, r.RenderTable(empty.Snapshot()), "no windows")
}

func TestLayoutRenderer_Summary(t *testing.T) {
	r := styles.NewLayoutRenderer(styles.NewTheme(nil))

	out := r.RenderSummary(testSnapshot(t))
	assert.Contains(t, out, "workspace 0")
	assert.Contains(t, out, "40[1]")
	assert.NotContains(t, out, "workspace 1")
}

func TestWinTableColumns_FitsKeyColumn(t *testing.T) {
	keyWidth := func(rows []table.Row) int {
		for _, c := range styles.WinTableColumns(rows) {
			if c.Title == "Key" {
				return c.Width
			}
		}
		return -1
	}

	assert.Equal(t, 3, keyWidth(nil))
	assert.Equal(t, 5, keyWidth([]table.Row{{"0", "0", "short", "", "", "", "", ""}}))
	assert.Equal(t, 36, keyWidth([]table.Row{{"0", "0", strings.Repeat("k", 50), "", "", "", "", ""}}))
}
