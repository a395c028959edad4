package commands

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/filmlens/internal/web"
)

// ServeOptions holds options for the serve command.
type ServeOptions struct {
	Port      int
	NoBrowser bool
	Watch     bool
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the interactive web dashboard",
		Long: `Start a local web server providing an interactive dashboard.

The dashboard provides:
- Genre and year-range filters per browser session
- Top-rated, trend, runtime, gross, and censor charts
- Live reload when the dataset file changes`,
		Example: `  # Start on default port
  filmlens serve

  # Start on custom port
  filmlens serve --port 3000

  # Start without auto-opening browser
  filmlens serve --no-browser`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.Port, "port", 0, "Port to serve on (default: 8765)")
	cmd.Flags().BoolVar(&opts.NoBrowser, "no-browser", false, "Don't auto-open browser")
	cmd.Flags().BoolVar(&opts.Watch, "watch", true, "Watch the dataset file for changes")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	cmdCtx, err := NewCommandContext(cmd)
	if err != nil {
		return err
	}

	serveCfg := cmdCtx.Cfg.GetServeConfig()

	// CLI flags override config file
	port := serveCfg.Port
	if opts.Port != 0 {
		port = opts.Port
	}

	autoOpen := serveCfg.AutoOpen
	if opts.NoBrowser {
		autoOpen = false
	}

	watch := serveCfg.Watch
	if cmd.Flags().Changed("watch") {
		watch = opts.Watch
	}

	server := web.NewServer(web.Config{
		Session:       cmdCtx.Session,
		Port:          port,
		Watch:         watch,
		HistogramBins: cmdCtx.Cfg.HistogramBins,
		SessionSecret: generateSessionSecret(),
		Logger:        cmdCtx.Logger,
		DatasetPath:   cmdCtx.Cfg.Dataset,
	})

	if autoOpen {
		url := fmt.Sprintf("http://localhost:%d", port)
		go openBrowser(url)
	}

	fmt.Printf("Serving dashboard on http://localhost:%d\n", port)
	fmt.Println("Press Ctrl+C to stop")

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	return server.Serve(ctx)
}

// generateSessionSecret generates a simple session secret.
// In production, this should be loaded from config or environment.
func generateSessionSecret() string {
	secret := os.Getenv("FILMLENS_SESSION_SECRET")
	if secret == "" {
		// Default secret for development (nolint:gosec)
		secret = "filmlens-dev-secret-change-in-production" //nolint:gosec
	}
	return secret
}

// openBrowser opens the default browser to the specified URL.
func openBrowser(url string) {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url) //nolint:noctx
	case "linux":
		cmd = exec.Command("xdg-open", url) //nolint:noctx
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url) //nolint:noctx
	default:
		return
	}

	_ = cmd.Start()
}
