package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/datacite/config"
	"github.com/s0up4200/datacite/datacite"
	"github.com/s0up4200/datacite/filter"
	"github.com/s0up4200/datacite/operations"
)

var (
	cfgFile      string
	cfg          *config.Config
	logger       zerolog.Logger
	client       *datacite.Client
	ops          *operations.Operations
	filters      *filter.Manager
	outputFormat string
	useTestAPI   bool
	dryRun       bool
	showDetails  bool
	showCounts   bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "datacite",
	Short: "A command line client for the DataCite REST API",
	Long: `datacite is a CLI tool for searching, inspecting and managing DOIs
through the DataCite REST API.

Public commands work without credentials. Creating, updating and deleting
DOIs needs member credentials (datacite.mode: member) in the config file
or the DATACITE_DATACITE_USERNAME and DATACITE_DATACITE_PASSWORD
environment variables.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", outputTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&useTestAPI, "test", false, "use the DataCite test API")
	rootCmd.PersistentFlags().BoolVarP(&dryRun, "dry-run", "d", false, "perform a dry run without making changes")
	rootCmd.PersistentFlags().BoolVar(&showDetails, "details", false, "show dates, subjects and abstracts in table output")
	rootCmd.PersistentFlags().BoolVar(&showCounts, "counts", false, "show citation, view and download counts in table output")
}

// initializeApp initializes the configuration and clients
func initializeApp(cmd *cobra.Command, args []string) error {
	if err := validateOutput(outputFormat); err != nil {
		return err
	}

	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging, os.Stderr)

	// Override dry-run from command line if specified
	if cmd.Flags().Changed("dry-run") {
		cfg.Safety.DryRun = dryRun
	}

	client, err = newClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create DataCite client: %w", err)
	}

	ops = operations.NewOperations(client, logger,
		operations.WithConcurrency(cfg.Client.Concurrency),
		operations.WithOutput(cmd.OutOrStdout()),
		operations.WithInput(cmd.InOrStdin()),
	)

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("url", client.BaseURL()).
		Str("mode", string(client.Mode())).
		Strs("presets", filters.ListFilters()).
		Msg("Initialized")

	return nil
}

// newClient builds a DataCite client from the configuration
func newClient(cfg *config.Config, logger zerolog.Logger) (*datacite.Client, error) {
	opts := []datacite.Option{
		datacite.WithBaseURL(cfg.DataCite.URL),
		datacite.WithMailto(cfg.DataCite.Mailto),
		datacite.WithUserAgent("datacite-cli/" + version),
	}
	if cfg.DataCite.Timeout > 0 {
		opts = append(opts, datacite.WithTimeout(cfg.DataCite.Timeout))
	}
	if useTestAPI {
		opts = append(opts, datacite.WithTestBaseURL())
	}
	if cfg.Member() {
		opts = append(opts, datacite.WithMemberAuth(cfg.DataCite.Username, cfg.DataCite.Password))
	}
	return datacite.NewClient(logger, opts...)
}

// setupLogger configures the zerolog logger. Color is dropped when out is not a terminal.
func setupLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(out).With().Timestamp().Logger()
	}

	// Console format
	output := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(out),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// skipInit replaces initializeApp for commands that need no config or client
func skipInit(cmd *cobra.Command, args []string) error {
	logger = setupLogger(config.LoggingConfig{Level: "info", Format: "console", Color: true}, os.Stderr)
	return nil
}

func newOutputPrinter(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), outputFormat, operations.FormatOptions{
		ShowDetails: showDetails,
		ShowCounts:  showCounts,
	})
}
