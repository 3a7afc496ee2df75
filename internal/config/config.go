package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Input  InputConfig  `mapstructure:"input"`
	Output OutputConfig `mapstructure:"output"`
	Report ReportConfig `mapstructure:"report"`
}

// InputConfig holds settings for locating endpoint log files
type InputConfig struct {
	Dir         string `mapstructure:"dir"`          // Directory containing endpoint log files
	Pattern     string `mapstructure:"pattern"`      // Glob pattern for log files (e.g. "*.txt")
	SummaryFile string `mapstructure:"summary_file"` // Summary report file name within Dir
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir            string `mapstructure:"dir"`             // Output directory for Markdown files
	CollectionName string `mapstructure:"collection_name"` // File name stem for combined outputs
}

// ReportConfig holds rendering options for the beautified summary report.
// These are passed explicitly to the summary renderer.
type ReportConfig struct {
	Title          string `mapstructure:"title"`
	IncludeTOC     bool   `mapstructure:"include_toc"`
	IncludeSummary bool   `mapstructure:"include_summary"`
	IncludeBadges  bool   `mapstructure:"include_badges"`
	SortEndpoints  bool   `mapstructure:"sort_endpoints"`
	AddTimestamps  bool   `mapstructure:"add_timestamps"`
	GitHubBaseURL  string `mapstructure:"github_base_url"` // e.g. "https://github.com/org/repo/blob"
	GitHubBranch   string `mapstructure:"github_branch"`
}

// Load reads the configuration from a file or uses defaults.
// If configPath is empty, it looks for "config.yaml" in the current
// directory. A missing file is not an error; defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - defaults apply
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.normalizePaths(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.dir", "./endpoint_logs")
	v.SetDefault("input.pattern", "*.txt")
	v.SetDefault("input.summary_file", "summary.txt")

	v.SetDefault("output.dir", "./docs")
	v.SetDefault("output.collection_name", "api-documentation")

	v.SetDefault("report.title", "API Endpoints Documentation")
	v.SetDefault("report.include_toc", true)
	v.SetDefault("report.include_summary", true)
	v.SetDefault("report.include_badges", true)
	v.SetDefault("report.sort_endpoints", true)
	v.SetDefault("report.add_timestamps", false)
	v.SetDefault("report.github_base_url", "")
	v.SetDefault("report.github_branch", "main")
}

// normalizePaths converts relative paths to absolute paths
func (c *Config) normalizePaths() error {
	absInput, err := filepath.Abs(c.Input.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve input.dir: %w", err)
	}
	c.Input.Dir = absInput

	absOutput, err := filepath.Abs(c.Output.Dir)
	if err != nil {
		return fmt.Errorf("failed to resolve output.dir: %w", err)
	}
	c.Output.Dir = absOutput

	return nil
}

// EnsureOutputDir creates the output directory if it doesn't exist
func (c *Config) EnsureOutputDir() error {
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// OutputPathFor returns the output path for one converted input file,
// mirroring the input file name with the given extension.
// "GET__users.txt" -> "<output dir>/GET__users.md"
func (c *Config) OutputPathFor(inputName, ext string) string {
	stem := strings.TrimSuffix(filepath.Base(inputName), filepath.Ext(inputName))
	return filepath.Join(c.Output.Dir, stem+ext)
}

// CollectionPath returns the output path for batch-level artifacts
// (combined Markdown, Excel workbook, HTML reference, OpenAPI JSON).
func (c *Config) CollectionPath(ext string) string {
	return filepath.Join(c.Output.Dir, c.Output.CollectionName+ext)
}

// SummaryInputPath returns the path of the summary file inside the input
// directory, or "" when the summary feature is disabled by config.
func (c *Config) SummaryInputPath() string {
	if c.Input.SummaryFile == "" {
		return ""
	}
	return filepath.Join(c.Input.Dir, c.Input.SummaryFile)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if _, err := os.Stat(c.Input.Dir); os.IsNotExist(err) {
		return fmt.Errorf("input.dir does not exist: %s", c.Input.Dir)
	}

	if c.Input.Pattern == "" {
		return fmt.Errorf("input.pattern cannot be empty")
	}
	if _, err := filepath.Match(c.Input.Pattern, "probe.txt"); err != nil {
		return fmt.Errorf("input.pattern is not a valid glob: %w", err)
	}

	if c.Output.CollectionName == "" {
		return fmt.Errorf("output.collection_name cannot be empty")
	}

	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Endpoint Docgen Configuration ===")
	fmt.Printf("Input Directory:  %s\n", c.Input.Dir)
	fmt.Printf("Input Pattern:    %s\n", c.Input.Pattern)
	fmt.Printf("Summary File:     %s\n", c.Input.SummaryFile)
	fmt.Printf("Output Directory: %s\n", c.Output.Dir)
	fmt.Printf("Collection Name:  %s\n", c.Output.CollectionName)
	fmt.Printf("Report Title:     %s\n", c.Report.Title)
	fmt.Println("=====================================")
}
