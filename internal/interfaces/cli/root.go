// Package cli implements the surfgen command line: slab building and
// adsorption analysis run fully in-process, no server required.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	appads "github.com/matgen-io/surfgen/internal/application/adsorption"
	appslab "github.com/matgen-io/surfgen/internal/application/slab"
	"github.com/matgen-io/surfgen/internal/config"
	"github.com/matgen-io/surfgen/internal/infrastructure/monitoring/logging"
)

// Build-time variables injected via ldflags.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// RootOptions holds the global CLI flags.
type RootOptions struct {
	ConfigPath string
	LogLevel   string
	Output     string // "table" | "json"
	NoColor    bool
}

// NewRootCommand creates the surfgen root command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:     "surfgen",
		Short:   "Deterministic FCC slab builder and adsorption-site explorer",
		Long:    "surfgen parses a surface query such as \"Au(111)\", builds a deterministic\nFCC slab with vacuum padding, and searches the surface for top, bridge and\nhollow adsorption sites scored with a heuristic binding-energy model.",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildDate),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if opts.NoColor {
				color.NoColor = true
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file path (optional)")
	cmd.PersistentFlags().StringVar(&opts.LogLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "table", "Output format: table|json")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		NewBuildCmd(opts),
		NewAnalyzeCmd(opts),
	)
	return cmd
}

// loadConfig resolves the effective configuration for a CLI invocation.
func loadConfig(opts *RootOptions) (*config.Config, error) {
	if opts.ConfigPath == "" {
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return nil, err
		}
		cfg.Log.Level = opts.LogLevel
		return cfg, nil
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.Log.Level = opts.LogLevel
	return cfg, nil
}

// newServices builds the application services the subcommands run against.
func newServices(opts *RootOptions) (appslab.Service, appads.Service, error) {
	cfg, err := loadConfig(opts)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.NewLogger(logging.LogConfig{
		Level:  cfg.Log.Level,
		Format: "console",
	})
	if err != nil {
		return nil, nil, err
	}

	slabSvc := appslab.NewService(cfg.Builder, logger)
	adsSvc := appads.NewService(cfg.Engine, slabSvc, logger)
	return slabSvc, adsSvc, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Execute runs the root command.  Errors are printed once, in red, here.
func Execute() {
	cmd := NewRootCommand()
	if err := cmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
