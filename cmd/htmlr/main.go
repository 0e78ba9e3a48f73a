package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlr/internal/config"
	"github.com/vango-dev/htmlr/internal/errors"
	"github.com/vango-dev/htmlr/pkg/content"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬ ┬┌┬┐┌┬┐┬  ┬─┐
  ├─┤ │ ││││  ├┬┘
  ┴ ┴ ┴ ┴ ┴┴─┘┴└─
`

var (
	// configDir is the --config flag: the directory holding htmlr.json.
	configDir string

	// errorFormat is the --error-format flag.
	errorFormat string

	// logFormat is the logFormat of the last loaded config.
	logFormat string
)

func main() {
	if os.Getenv("NO_COLOR") != "" || !isTerminal(os.Stderr) {
		errors.DisableColors()
	}
	if err := newRootCmd().Execute(); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// reportError prints err in the style chosen by --error-format, falling
// back to JSON when the config logs JSON.
func reportError(w io.Writer, err error) {
	style, perr := errors.ParseStyle(errorFormat)
	if perr != nil || errorFormat == "" {
		style = errors.StyleText
		if logFormat == "json" {
			style = errors.StyleJSON
		}
	}
	errors.Fprint(w, err, style)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "htmlr",
		Short: "Build HTML from Go values",
		Long: `htmlr renders HTML documents built from nodes and placeholder tokens.

The CLI renders, serves and publishes the hello-world site:

  • render   write the page to stdout or a file
  • serve    serve the page with live updates
  • publish  upload the rendered page to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := errors.ParseStyle(errorFormat); err != nil {
				return errors.New("E144").
					WithDetail(err.Error()).
					WithSuggestion("Use --error-format text, compact or json")
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configDir, "config", "c", "", "Directory containing htmlr.json (default: search from the working directory)")
	rootCmd.PersistentFlags().StringVar(&errorFormat, "error-format", "", "How errors are printed: text, compact or json (default: json when logFormat is json, else text)")

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		publishCmd(),
		initCmd(),
		tagsCmd(),
		versionCmd(),
	)
	return rootCmd
}

// loadConfig loads htmlr.json from --config, or searches upwards from the
// working directory and falls back to the defaults.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configDir != "" {
		cfg, err = config.Load(configDir)
	} else {
		cfg, err = config.LoadFromWorkingDir()
	}
	if err != nil {
		return nil, err
	}
	logFormat = cfg.LogFormat
	return cfg, nil
}

// newLogger creates the logger used by every command, writing text or JSON
// records to stderr as the config asks.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// openStore opens the content store and prepares its schema.
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*content.Store, error) {
	store, err := content.Open(ctx, cfg.Content.Driver, cfg.Content.DSN)
	if err != nil {
		return nil, errors.New("E130").
			WithDetail("Cannot open " + cfg.Content.DSN).
			Wrap(err)
	}
	if err := store.Migrate(ctx); err != nil {
		store.Close()
		return nil, errors.New("E130").Wrap(err)
	}
	if cfg.Content.Seed {
		seeded, err := store.Seed(ctx)
		if err != nil {
			store.Close()
			return nil, errors.New("E130").Wrap(err)
		}
		if seeded {
			logger.Info("Seeded content store", "greetings", len(content.DefaultGreetings))
		}
	}
	logger.Debug("Opened content store", "driver", store.Driver(), "dsn", cfg.Content.DSN)
	return store, nil
}

// printBanner prints the htmlr banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
