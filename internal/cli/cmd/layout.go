package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/candle/internal/application/usecase"
	"github.com/bnema/candle/internal/cli"
	"github.com/bnema/candle/internal/cli/styles"
	"github.com/bnema/candle/internal/domain/entity"
	"github.com/bnema/candle/internal/logging"
)

var layoutFormat string

var layoutCmd = &cobra.Command{
	Use:   "layout [ops...]",
	Short: "Replay layout operations and print the result",
	Long: `Apply a list of operations to a fresh layout and print the resulting tree.

Operations:
  open, below, above, left      open a window next to the focused one
  close                         close the focused window
  focus-left|right|up|down      move focus
  move-left|right               swap the focused column with its neighbor
  grow=N                        change the focused column width by N
  scroll=N                      scroll the current workspace by N
  head, tail                    scroll to the first or last column
  ws=N                          switch to workspace N (1-based)
  viewport=WxH                  set the host size used for frames

Examples:
  candle layout open open open                 # three columns, scrolled to the last
  candle layout open below focus-up grow=20    # split, then widen the column
  candle layout open ws=2 open --format table`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().StringVarP(&layoutFormat, "format", "f", "json", "Output format: json, table, summary")
}

func runLayout(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := logging.WithComponent(app.Ctx(), "layout")

	ops, err := cli.ParseLayoutOps(args)
	if err != nil {
		return err
	}
	ctx = logging.With(ctx, map[string]any{"ops": len(ops), "format": layoutFormat})

	lm, err := app.NewLayoutManager()
	if err != nil {
		return err
	}
	layoutCfg := app.Config.Layout
	uc := usecase.NewManageLayoutUseCase(lm, nil, usecase.ColumnLimits{
		Min: layoutCfg.MinColumnWidth,
		Max: layoutCfg.MaxColumnWidth,
	})
	defer uc.Close()

	pad := app.Config.Viewport.Padding
	padding := entity.SizeInfo{
		PaddingTop:    pad.Top,
		PaddingBottom: pad.Bottom,
		PaddingLeft:   pad.Left,
		PaddingRight:  pad.Right,
	}
	uc.SetViewport(ctx, padding)

	if err := cli.RunLayoutOps(ctx, uc, ops, padding); err != nil {
		return err
	}

	snap := uc.Snapshot()
	renderer := styles.NewLayoutRenderer(app.Theme)
	switch layoutFormat {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(snap)
	case "table":
		fmt.Println(renderer.RenderTable(snap))
	case "summary":
		fmt.Print(renderer.RenderSummary(snap))
	default:
		return fmt.Errorf("unsupported format %q (use: json, table, summary)", layoutFormat)
	}
	return nil
}
