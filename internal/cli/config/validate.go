package config

import (
	"fmt"
	"os"
)

// Validate checks configuration values that would otherwise fail
// deep inside a command.
func (c *Config) Validate() error {
	if c.Dataset == "" {
		return fmt.Errorf("dataset is required")
	}
	if len([]rune(c.Delimiter)) > 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	if c.TopN < 0 {
		return fmt.Errorf("top_n must be positive, got %d", c.TopN)
	}
	if c.HistogramBins < 0 {
		return fmt.Errorf("histogram_bins must be positive, got %d", c.HistogramBins)
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("preview_rows must be positive, got %d", c.PreviewRows)
	}
	switch c.OutputFormat {
	case "", "auto", "text", "markdown", "json":
	default:
		return fmt.Errorf("unknown output format %q", c.OutputFormat)
	}
	return nil
}

// ValidateDataset checks that the dataset file exists. Kept separate
// from Validate so help and version commands work without one.
func (c *Config) ValidateDataset() error {
	if _, err := os.Stat(c.Dataset); os.IsNotExist(err) {
		return fmt.Errorf("dataset file does not exist: %s\nHint: use --dataset to point at your CSV file", c.Dataset)
	}
	return nil
}
