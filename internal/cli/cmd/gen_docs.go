package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/candle/internal/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

// docFormat is one output of gen-docs.
type docFormat struct {
	ext        string
	defaultDir func() (string, error)
	generate   func(root *cobra.Command, dir string) error
}

var docFormats = map[string]docFormat{
	"man": {
		ext:        ".1",
		defaultDir: config.GetManDir,
		generate: func(root *cobra.Command, dir string) error {
			date := docDate()
			return doc.GenManTree(root, &doc.GenManHeader{
				Title:   "CANDLE",
				Section: "1",
				Source:  "candle " + buildInfo.Version,
				Manual:  "Candle Manual",
				Date:    &date,
			}, dir)
		},
	},
	"markdown": {
		ext:        ".md",
		defaultDir: func() (string, error) { return "./docs", nil },
		generate:   doc.GenMarkdownTree,
	},
}

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown from the command tree",
	Long: `Generate documentation for every candle command.

Formats:
  man       groff pages, installed to $XDG_DATA_HOME/man/man1 by default
  markdown  one .md file per command, written to ./docs by default

Man pages are dated from SOURCE_DATE_EPOCH when it is set. Run 'mandb'
if 'man candle' does not find the new pages.

Examples:
  candle gen-docs
  candle gen-docs --format markdown
  candle gen-docs --output ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	files, err := generateDocs(rootCmd, genDocsFormat, genDocsOutputDir)
	if err != nil {
		return err
	}
	printGenerated(cmd.OutOrStdout(), files)
	return nil
}

// generateDocs writes docs for root in format and returns the written
// files, sorted. An empty dir selects the format's default location.
func generateDocs(root *cobra.Command, format, dir string) ([]string, error) {
	f, ok := docFormats[format]
	if !ok {
		return nil, fmt.Errorf("unsupported format %q (use: man, markdown)", format)
	}
	if dir == "" {
		var err error
		if dir, err = f.defaultDir(); err != nil {
			return nil, fmt.Errorf("resolve %s directory: %w", format, err)
		}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	disableAutoGenTag(root)
	if err := f.generate(root, dir); err != nil {
		return nil, fmt.Errorf("generate %s docs: %w", format, err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "*"+f.ext))
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// disableAutoGenTag drops cobra's dated footer, which is checked per command.
func disableAutoGenTag(c *cobra.Command) {
	c.DisableAutoGenTag = true
	for _, child := range c.Commands() {
		disableAutoGenTag(child)
	}
}

func printGenerated(w io.Writer, files []string) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No documentation written.")
		return
	}
	fmt.Fprintf(w, "Wrote %d files to %s\n", len(files), filepath.Dir(files[0]))
	for _, f := range files {
		fmt.Fprintf(w, "  - %s\n", filepath.Base(f))
	}
}

func docDate() time.Time {
	if epoch, err := strconv.ParseInt(os.Getenv("SOURCE_DATE_EPOCH"), 10, 64); err == nil {
		return time.Unix(epoch, 0).UTC()
	}
	return time.Now()
}
