// Package config provides configuration management for the filmlens CLI.
package config

// ServeConfig holds configuration for the web dashboard server.
type ServeConfig struct {
	Port     int  `koanf:"port"`
	Watch    bool `koanf:"watch"`
	AutoOpen bool `koanf:"auto_open"`
}

// DefaultServeConfig returns a ServeConfig with default values.
func DefaultServeConfig() *ServeConfig {
	return &ServeConfig{
		Port:     8765,
		Watch:    true,
		AutoOpen: true,
	}
}

// GetServeConfig returns the serve config with defaults applied for
// any unset values.
func (c *Config) GetServeConfig() *ServeConfig {
	if c.Serve == nil {
		return DefaultServeConfig()
	}
	s := c.Serve
	if s.Port == 0 {
		s.Port = 8765
	}
	return s
}

// Config holds all CLI configuration options.
type Config struct {
	Dataset       string       `koanf:"dataset"`
	Delimiter     string       `koanf:"delimiter"`
	TopN          int          `koanf:"top_n"`
	HistogramBins int          `koanf:"histogram_bins"`
	PreviewRows   int          `koanf:"preview_rows"`
	OutputFormat  string       `koanf:"output"`
	Verbose       bool         `koanf:"verbose"`
	Serve         *ServeConfig `koanf:"serve"`
}

// Default configuration values.
const (
	DefaultDataset       = "films.csv"
	DefaultDelimiter     = ","
	DefaultTopN          = 10
	DefaultHistogramBins = 25
	DefaultPreviewRows   = 5
	DefaultOutput        = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// DelimiterRune returns the configured delimiter as a rune, falling
// back to comma for empty or multi-rune values.
func (c *Config) DelimiterRune() rune {
	rs := []rune(c.Delimiter)
	if len(rs) != 1 {
		return ','
	}
	return rs[0]
}
