package opendoc

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/benjaminschreck/go-opendoc/pkg/opendoc/render"
)

// Config contains all configuration options for the opendoc engine
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string `yaml:"log_level"`
	// MaxDepth limits how deeply document elements may nest
	MaxDepth int `yaml:"max_depth"`
	// ReportUnknown logs a warning for every property no formatter handles
	ReportUnknown bool `yaml:"report_unknown"`
	// MergeRuns joins adjacent runs that carry identical run properties
	MergeRuns bool `yaml:"merge_runs"`
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		MaxDepth:      render.DefaultMaxDepth,
		ReportUnknown: false,
		MergeRuns:     false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// OPENDOC_LOG_LEVEL
	if val := os.Getenv("OPENDOC_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// OPENDOC_MAX_DEPTH
	if val := os.Getenv("OPENDOC_MAX_DEPTH"); val != "" {
		if depth, err := strconv.Atoi(val); err == nil {
			config.MaxDepth = depth
		}
	}

	// OPENDOC_REPORT_UNKNOWN
	if val := os.Getenv("OPENDOC_REPORT_UNKNOWN"); val != "" {
		config.ReportUnknown = parseBool(val)
	}

	// OPENDOC_MERGE_RUNS
	if val := os.Getenv("OPENDOC_MERGE_RUNS"); val != "" {
		config.MergeRuns = parseBool(val)
	}

	return config
}

// LoadConfigFile reads a YAML configuration file on top of the
// environment. Keys missing from the file keep their environment or
// default values.
func LoadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, NewDocumentError("read config", path, err)
	}
	config := ConfigFromEnvironment()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, NewDocumentError("parse config", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, NewDocumentError("validate config", path, err)
	}
	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}

	return nil
}

// GetGlobalConfig returns a copy of the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// outside the lock, UpdateLoggerFromConfig reads the config again
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
