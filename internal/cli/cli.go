package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/graphson/pkg/graphson"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "graphson"

	// configFile is the name of the optional configuration file.
	configFile = "graphson.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// =============================================================================
// Codec Factory
// =============================================================================

// loadConfig reads the configuration named by --config, or the default file
// when present.
func (c *CLI) loadConfig() (*Config, error) {
	if c.configPath != "" {
		return LoadConfig(c.configPath)
	}
	path, err := defaultConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	c.Logger.Debug("using config", "path", path)
	return LoadConfig(path)
}

// newCodec builds a writer and reader from the configuration.
func (c *CLI) newCodec() (*graphson.Writer, *graphson.Reader, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, nil, err
	}
	opts := append(cfg.Options(), graphson.WithLogger(c.Logger))

	w, err := graphson.NewWriter(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create writer: %w", err)
	}
	r, err := graphson.NewReader(opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("create reader: %w", err)
	}
	return w, r, nil
}

// =============================================================================
// Paths
// =============================================================================

// defaultConfigPath returns the config file path using XDG standard
// (~/.config/graphson/graphson.toml).
func defaultConfigPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, configFile), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, configFile), nil
}
