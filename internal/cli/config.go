package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/viant/rlsdata/analysis"
	"github.com/viant/rlsdata/version"
	"gopkg.in/yaml.v3"
)

// Config holds options of the rlsdata command
type Config struct {
	CacheSize int    `yaml:"cacheSize"`
	Version   string `yaml:"version"` // schema version of inputs, detected when empty
	Output    string `yaml:"output"`  // output format: Json, JsonApi or Csv
	Indent    bool   `yaml:"indent"`
}

func DefaultConfig() *Config {
	return &Config{
		CacheSize: 64,
		Output:    analysis.Json.String(),
		Indent:    true,
	}
}

// LoadConfig reads defaults, then the YAML file at location (if any), then
// RLSDATA_* environment variables; a .env file in the working directory is loaded first
func LoadConfig(location string) (*Config, error) {
	_ = godotenv.Load()
	cfg := DefaultConfig()
	if location != "" {
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", location, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", location, err)
		}
	}
	if value := strings.TrimSpace(os.Getenv("RLSDATA_CACHE_SIZE")); value != "" {
		size, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid RLSDATA_CACHE_SIZE: %w", err)
		}
		cfg.CacheSize = size
	}
	if value := strings.TrimSpace(os.Getenv("RLSDATA_VERSION")); value != "" {
		cfg.Version = value
	}
	if value := strings.TrimSpace(os.Getenv("RLSDATA_OUTPUT")); value != "" {
		cfg.Output = value
	}
	if value := strings.TrimSpace(os.Getenv("RLSDATA_INDENT")); value != "" {
		indent, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("invalid RLSDATA_INDENT: %w", err)
		}
		cfg.Indent = indent
	}
	return cfg, cfg.Validate()
}

// Validate checks output format and schema version
func (c *Config) Validate() error {
	if _, err := c.OutputFormat(); err != nil {
		return err
	}
	_, err := c.SchemaVersion()
	return err
}

// OutputFormat returns the configured output format
func (c *Config) OutputFormat() (analysis.Format, error) {
	format, err := analysis.ParseFormat(c.Output)
	if err != nil {
		return 0, fmt.Errorf("invalid output format: %w", err)
	}
	return format, nil
}

// SchemaVersion returns the configured input schema version, empty when it is to be detected
func (c *Config) SchemaVersion() (version.Version, error) {
	if c.Version == "" {
		return "", nil
	}
	return version.Parse(c.Version)
}
