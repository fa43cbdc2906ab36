package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Stations StationsConfig `yaml:"stations" envconfig:"STATIONS"`
	Years    YearsConfig    `yaml:"years" envconfig:"YEARS"`
	Paths    PathsConfig    `yaml:"paths" envconfig:"PATHS"`
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
}

// StationsConfig holds the ordered station list. The last station is the
// primary ("Trade") station whose gaps are filled from the peer average.
type StationsConfig struct {
	Names []string `yaml:"names" envconfig:"NAMES" validate:"min=1,dive,required"`
}

// YearsConfig bounds the processed year range and drives the century
// heuristic for two-digit filename suffixes.
type YearsConfig struct {
	Start int `yaml:"start" envconfig:"START" validate:"required,min=1900"`
	End   int `yaml:"end" envconfig:"END" validate:"required,gtefield=Start,max=2099"`
}

// PathsConfig contains file system paths configuration
type PathsConfig struct {
	BaseDir string `yaml:"base_dir" envconfig:"BASE_DIR" validate:"required"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Format   string `yaml:"format" envconfig:"FORMAT"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Primary returns the primary (Trade) station name: the last configured one.
func (s StationsConfig) Primary() string {
	if len(s.Names) == 0 {
		return ""
	}
	return s.Names[len(s.Names)-1]
}

// Others returns every station except the primary, in configured order.
func (s StationsConfig) Others() []string {
	if len(s.Names) == 0 {
		return nil
	}
	return s.Names[:len(s.Names)-1]
}

// Range returns the processed years in ascending order.
func (y YearsConfig) Range() []int {
	years := make([]int, 0, y.End-y.Start+1)
	for year := y.Start; year <= y.End; year++ {
		years = append(years, year)
	}
	return years
}

// Count returns the number of years in the configured range.
func (y YearsConfig) Count() int {
	return y.End - y.Start + 1
}

// Load loads configuration starting from defaults, overlaid by an optional
// YAML file and then by environment variables; environment values win.
func Load(configFile string) (*Config, error) {
	cfg := *Default()

	if configFile != "" {
		fileCfg, err := loadFromFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(cfg, *fileCfg)
	}

	if err := envconfig.Process("CLIM", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs overlays file values onto the defaults; only fields the file
// actually set replace the base.
func mergeConfigs(base, file Config) Config {
	if len(file.Stations.Names) > 0 {
		base.Stations.Names = file.Stations.Names
	}
	if file.Years.Start != 0 {
		base.Years.Start = file.Years.Start
	}
	if file.Years.End != 0 {
		base.Years.End = file.Years.End
	}
	if file.Paths.BaseDir != "" {
		base.Paths.BaseDir = file.Paths.BaseDir
	}
	if file.Logging.Level != "" {
		base.Logging.Level = file.Logging.Level
	}
	if file.Logging.Format != "" {
		base.Logging.Format = file.Logging.Format
	}
	if file.Logging.Output != "" {
		base.Logging.Output = file.Logging.Output
	}
	if file.Logging.FilePath != "" {
		base.Logging.FilePath = file.Logging.FilePath
	}

	return base
}

// Validate checks structural constraints and normalizes logging settings.
// Station names and the base directory may still be filled in by the CLI
// after Load, so ValidateRun performs the final pre-run check.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c.Years); err != nil {
		return fmt.Errorf("invalid year range [%d, %d]: %w", c.Years.Start, c.Years.End, err)
	}

	for i, name := range c.Stations.Names {
		if strings.TrimSpace(name) == "" {
			return fmt.Errorf("station name %d is empty", i+1)
		}
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format != "json" {
		c.Logging.Format = "json"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "console"
	}
	if c.Logging.FilePath == "" {
		c.Logging.FilePath = "logs/climateproc.log"
	}

	return nil
}

// ValidateRun verifies everything a processing run needs: a non-empty
// station list and an existing base directory.
func (c *Config) ValidateRun() error {
	validate := validator.New()

	if err := validate.Struct(c.Stations); err != nil {
		return fmt.Errorf("at least one station must be configured: %w", err)
	}

	info, err := os.Stat(c.Paths.BaseDir)
	if err != nil {
		return fmt.Errorf("base directory %q not found: %w", c.Paths.BaseDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("base path %q is not a directory", c.Paths.BaseDir)
	}

	return nil
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Years: YearsConfig{
			Start: 1981,
			End:   2010,
		},
		Paths: PathsConfig{
			BaseDir: "data",
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "json",
			Output:   "console",
			FilePath: "logs/climateproc.log",
		},
	}
}
