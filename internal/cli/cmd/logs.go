package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/candle/internal/cli/styles"
	"github.com/bnema/candle/internal/config"
	"github.com/bnema/candle/internal/logging"
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

const (
	defaultLogsLines = 50
	followInterval   = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View application logs",
	Long: `View the candle log file.

File logging is controlled by logging.enable_file_log; rotated files are
kept next to the active one.

Examples:
  candle logs              # Last 50 lines of the active log
  candle logs -n 200       # Last 200 lines
  candle logs -f           # Follow the log in real-time
  candle logs list         # Active and rotated files
  candle logs clear --all  # Remove every rotated file`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var logsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active and rotated log files",
	RunE:  runLogsList,
}

var logsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the log directory",
	RunE: func(_ *cobra.Command, _ []string) error {
		fmt.Println(getLogDir())
		return nil
	},
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove old rotated log files",
	Long: `Remove rotated log files older than logging.max_age days.
Use --all to remove every rotated file. The active log is never removed.`,
	RunE: runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsListCmd)
	logsCmd.AddCommand(logsPathCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "remove all rotated logs")
}

// LogFileInfo describes one file in the log directory.
type LogFileInfo struct {
	Name    string
	Path    string
	Size    int64
	ModTime time.Time
	Active  bool
}

func runLogs(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	path := filepath.Join(getLogDir(), logging.DefaultLogFileName)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			fmt.Println(app.Theme.Subtle.Render("No log file yet. Enable logging.enable_file_log and run 'candle tui'."))
			return nil
		}
		return fmt.Errorf("stat log file: %w", err)
	}

	if logsFollow {
		ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt)
		defer stop()
		return followLog(ctx, path, os.Stdout, app.Theme)
	}
	return showLog(path, logsLines, os.Stdout, app.Theme)
}

// getLogDir returns the log directory path.
func getLogDir() string {
	if app := GetApp(); app != nil && app.Config != nil && app.Config.Logging.LogDir != "" {
		return app.Config.Logging.LogDir
	}
	logDir, err := config.GetLogDir()
	if err != nil {
		// Fallback to XDG default
		stateDir := os.Getenv("XDG_STATE_HOME")
		if stateDir == "" {
			home, _ := os.UserHomeDir()
			stateDir = filepath.Join(home, ".local", "state")
		}
		return filepath.Join(stateDir, "candle", "logs")
	}
	return logDir
}

// listLogFiles returns the active log first, then rotated files newest first.
func listLogFiles(logDir string) ([]LogFileInfo, error) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}

	var files []LogFileInfo
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, logging.DefaultLogFileName) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		files = append(files, LogFileInfo{
			Name:    name,
			Path:    filepath.Join(logDir, name),
			Size:    info.Size(),
			ModTime: info.ModTime(),
			Active:  name == logging.DefaultLogFileName,
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if files[i].Active != files[j].Active {
			return files[i].Active
		}
		return files[i].ModTime.After(files[j].ModTime)
	})
	return files, nil
}

func runLogsList(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	theme := app.Theme

	files, err := listLogFiles(getLogDir())
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println(theme.Subtle.Render("No log files found."))
		return nil
	}

	fmt.Println(theme.Title.Render("Log files (newest first):"))
	fmt.Println()
	for i := range files {
		f := &files[i]
		status := ""
		if f.Active {
			status = theme.SuccessStyle.Render("active")
		}
		fmt.Printf("  %s  %s  %s  %s\n",
			theme.Highlight.Render(f.Name),
			theme.Subtle.Render(f.ModTime.Format("2006-01-02 15:04:05")),
			status,
			theme.Subtle.Render(fmt.Sprintf("(%s)", formatSize(f.Size))),
		)
	}
	return nil
}

// staleLogFiles picks the rotated files to remove.
func staleLogFiles(files []LogFileInfo, cutoff time.Time, all bool) []LogFileInfo {
	var stale []LogFileInfo
	for _, f := range files {
		if f.Active {
			continue
		}
		if all || f.ModTime.Before(cutoff) {
			stale = append(stale, f)
		}
	}
	return stale
}

func runLogsClear(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	files, err := listLogFiles(getLogDir())
	if err != nil {
		return err
	}

	maxAge := config.DefaultConfig().Logging.MaxAge
	if app.Config != nil && app.Config.Logging.MaxAge > 0 {
		maxAge = app.Config.Logging.MaxAge
	}
	cutoff := time.Now().AddDate(0, 0, -maxAge)

	stale := staleLogFiles(files, cutoff, logsClearAll)
	if len(stale) == 0 {
		fmt.Println(app.Theme.Subtle.Render(fmt.Sprintf("No rotated logs older than %d days", maxAge)))
		return nil
	}

	var removed int
	for i := range stale {
		f := &stale[i]
		if err := os.Remove(f.Path); err != nil {
			fmt.Printf("%s %s: %v\n", app.Theme.ErrorStyle.Render(styles.IconX), f.Name, err)
			continue
		}
		fmt.Printf("%s %s (%s)\n", app.Theme.SuccessStyle.Render(styles.IconCheck), f.Name, formatSize(f.Size))
		removed++
	}
	fmt.Printf("\n%s\n", app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %d file(s)", removed)))
	return nil
}

// lastLines returns at most n trailing lines of r.
func lastLines(r io.Reader, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	ring := make([]string, 0, n)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if len(ring) == n {
			copy(ring, ring[1:])
			ring = ring[:n-1]
		}
		ring = append(ring, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ring, nil
}

// showLog prints the last lines of the log at path.
func showLog(path string, lines int, w io.Writer, theme *styles.Theme) (retErr error) {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	tail, err := lastLines(file, lines)
	if err != nil {
		return fmt.Errorf("read log file: %w", err)
	}
	for _, line := range tail {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// followLog prints lines appended to path until ctx is done.
func followLog(ctx context.Context, path string, w io.Writer, theme *styles.Theme) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	if _, err := file.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(w)

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		switch {
		case errors.Is(err, io.EOF):
			// No full line yet; keep partial data.
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followInterval):
			}
			continue
		case err != nil:
			return fmt.Errorf("read log file: %w", err)
		}
		fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
		pending = ""
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	// Fallback to pattern matching for console logs
	switch {
	case containsAny(line, " ERR ", " FTL ", " PNC "):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "fatal", "panic", "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render("["+entry.Component+"]") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
