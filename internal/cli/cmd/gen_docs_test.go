package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocs_Markdown(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "docs")

	files, err := generateDocs(rootCmd, "markdown", dir)
	require.NoError(t, err)

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	assert.Contains(t, names, "candle.md")
	assert.Contains(t, names, "candle_layout.md")
	assert.Contains(t, names, "candle_config_init.md")
	assert.IsNonDecreasing(t, names)

	data, err := os.ReadFile(filepath.Join(dir, "candle_layout.md"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "Auto generated by spf13/cobra")
}

func TestGenerateDocs_Man(t *testing.T) {
	t.Setenv("SOURCE_DATE_EPOCH", "0")
	dir := t.TempDir()

	files, err := generateDocs(rootCmd, "man", dir)
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Contains(t, files, filepath.Join(dir, "candle.1"))

	data, err := os.ReadFile(filepath.Join(dir, "candle.1"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Jan 1970")
}

func TestGenerateDocs_UnsupportedFormat(t *testing.T) {
	_, err := generateDocs(rootCmd, "html", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"html"`)
}

func TestDocDate(t *testing.T) {
	t.Setenv("SOURCE_DATE_EPOCH", "86400")
	assert.Equal(t, time.Unix(86400, 0).UTC(), docDate())

	t.Setenv("SOURCE_DATE_EPOCH", "soon")
	assert.WithinDuration(t, time.Now(), docDate(), time.Minute)
}

func TestPrintGenerated(t *testing.T) {
	var buf bytes.Buffer
	printGenerated(&buf, []string{"/tmp/out/candle.1", "/tmp/out/candle-tui.1"})
	assert.Equal(t, "Wrote 2 files to /tmp/out\n  - candle.1\n  - candle-tui.1\n", buf.String())

	buf.Reset()
	printGenerated(&buf, nil)
	assert.Equal(t, "No documentation written.\n", buf.String())
}
