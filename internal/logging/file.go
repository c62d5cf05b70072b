package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// DefaultLogFileName is the name of the active log file inside the log dir.
const DefaultLogFileName = "candle.log"

// FileConfig controls file output.
type FileConfig struct {
	Enabled       bool
	Dir           string
	MaxSizeMB     int
	MaxBackups    int
	MaxAgeDays    int
	Compress      bool
	WriteToStderr bool
}

// NewWithFile creates a logger that writes to a rotating file and, when
// WriteToStderr is set, to stderr as well. The returned cleanup closes the
// file. With file output disabled and stderr off, logging is discarded; the
// terminal UI relies on that to keep the screen clean.
func NewWithFile(cfg Config, fileCfg FileConfig) (zerolog.Logger, func(), error) {
	var writers []io.Writer
	cleanup := func() {}

	if fileCfg.Enabled {
		rotator, err := NewLogRotator(fileCfg.Dir, DefaultLogFileName,
			fileCfg.MaxSizeMB, fileCfg.MaxBackups, fileCfg.MaxAgeDays, fileCfg.Compress)
		if err != nil {
			return New(cfg), cleanup, err
		}
		writers = append(writers, rotator)
		cleanup = func() { _ = rotator.Close() }
	}
	if fileCfg.WriteToStderr {
		writers = append(writers, os.Stderr)
	}

	switch len(writers) {
	case 0:
		return zerolog.Nop(), cleanup, nil
	case 1:
		cfg.Output = writers[0]
	default:
		// Files stay machine readable; only the stderr copy gets console output.
		if cfg.Format == "console" {
			writers[1] = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: cfg.TimeFormat}
			cfg.Format = "json"
		}
		cfg.Output = zerolog.MultiLevelWriter(writers...)
	}

	return New(cfg), cleanup, nil
}
