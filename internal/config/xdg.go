package config

import (
	"os"
	"path/filepath"
)

const appName = "candle"

// XDGDirs is where candle keeps its files. ConfigHome and StateHome are the
// candle subdirectories; DataHome is the shared data root man pages go under.
type XDGDirs struct {
	ConfigHome string
	StateHome  string
	DataHome   string
}

// ConfigFile is the main TOML file.
func (d XDGDirs) ConfigFile() string { return filepath.Join(d.ConfigHome, "config.toml") }

// SchemaFile sits next to ConfigFile so editors can pick it up.
func (d XDGDirs) SchemaFile() string { return filepath.Join(d.ConfigHome, "config.schema.json") }

func (d XDGDirs) LogDir() string { return filepath.Join(d.StateHome, "logs") }

func (d XDGDirs) ManDir() string { return filepath.Join(d.DataHome, "man", "man1") }

// GetXDGDirs resolves the directories from XDG_CONFIG_HOME, XDG_STATE_HOME
// and XDG_DATA_HOME, falling back to the usual dot directories in $HOME.
// With ENV=dev everything lives in ./.dev/candle instead.
func GetXDGDirs() (*XDGDirs, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return &XDGDirs{ConfigHome: dev, StateHome: dev, DataHome: filepath.Join(dev, "share")}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	base := func(env string, fallback ...string) string {
		if v := os.Getenv(env); v != "" {
			return v
		}
		return filepath.Join(append([]string{home}, fallback...)...)
	}
	return &XDGDirs{
		ConfigHome: filepath.Join(base("XDG_CONFIG_HOME", ".config"), appName),
		StateHome:  filepath.Join(base("XDG_STATE_HOME", ".local", "state"), appName),
		DataHome:   base("XDG_DATA_HOME", ".local", "share"),
	}, nil
}

func xdgPath(pick func(XDGDirs) string) (string, error) {
	dirs, err := GetXDGDirs()
	if err != nil {
		return "", err
	}
	return pick(*dirs), nil
}

// GetConfigDir returns the candle config directory.
func GetConfigDir() (string, error) {
	return xdgPath(func(d XDGDirs) string { return d.ConfigHome })
}

// GetLogDir returns the default directory for rotated log files.
func GetLogDir() (string, error) { return xdgPath(XDGDirs.LogDir) }

// GetConfigFile returns the path to the main configuration file.
func GetConfigFile() (string, error) { return xdgPath(XDGDirs.ConfigFile) }

func GetSchemaFile() (string, error) { return xdgPath(XDGDirs.SchemaFile) }

// GetManDir returns the user man page directory for section 1.
func GetManDir() (string, error) { return xdgPath(XDGDirs.ManDir) }

// EnsureDirectories creates the config and state directories.
func EnsureDirectories() error {
	dirs, err := GetXDGDirs()
	if err != nil {
		return err
	}
	for _, dir := range []string{dirs.ConfigHome, dirs.StateHome} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
