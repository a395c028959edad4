package commands

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/filmlens/internal/cli/config"
	"github.com/leapstack-labs/filmlens/internal/cli/output"
	"github.com/leapstack-labs/filmlens/internal/session"
)

// CommandContext holds common dependencies for CLI commands.
type CommandContext struct {
	Cfg      *config.Config
	Logger   *slog.Logger
	Session  *session.Session
	Renderer *output.Renderer
}

// NewCommandContext loads the dataset session and wires the renderer.
func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	cfg := getConfig()
	logger := config.GetLogger(cmd.Context())

	if err := cfg.ValidateDataset(); err != nil {
		return nil, err
	}

	sess, err := session.Open(cfg.Dataset, session.Options{
		Delimiter:   cfg.DelimiterRune(),
		TopN:        cfg.TopN,
		PreviewRows: cfg.PreviewRows,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	mode := output.Mode(cfg.OutputFormat)
	r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

	return &CommandContext{
		Cfg:      cfg,
		Logger:   logger,
		Session:  sess,
		Renderer: r,
	}, nil
}

// getConfig returns the current configuration. It uses
// config.GetCurrentConfig() if available, otherwise falls back to
// environment variables.
func getConfig() *config.Config {
	if cfg := config.GetCurrentConfig(); cfg != nil {
		return cfg
	}

	return &config.Config{
		Dataset:       getEnvOrDefault("FILMLENS_DATASET", config.DefaultDataset),
		Delimiter:     getEnvOrDefault("FILMLENS_DELIMITER", config.DefaultDelimiter),
		TopN:          getEnvIntOrDefault("FILMLENS_TOP_N", config.DefaultTopN),
		HistogramBins: getEnvIntOrDefault("FILMLENS_HISTOGRAM_BINS", config.DefaultHistogramBins),
		PreviewRows:   getEnvIntOrDefault("FILMLENS_PREVIEW_ROWS", config.DefaultPreviewRows),
		OutputFormat:  os.Getenv("FILMLENS_OUTPUT"),
		Verbose:       os.Getenv("FILMLENS_VERBOSE") == "true",
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvIntOrDefault(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}
